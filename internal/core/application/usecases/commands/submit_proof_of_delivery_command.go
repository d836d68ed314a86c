package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrSubmitProofOfDeliveryCommandIsNotConstructed = errors.New(
	"SubmitProofOfDeliveryCommand must be created via NewSubmitProofOfDeliveryCommand constructor",
)

// SubmitProofOfDeliveryCommand represents a driver completing a dropoff:
// the order moves to delivered, the proof is attached, and the driver is
// released for new work, all in one transaction.
type SubmitProofOfDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	proof   order.ProofOfDelivery

	guard guard.ConstructorGuard
}

// NewSubmitProofOfDeliveryCommand creates a command to deliver an order with
// proof. At least one proof field must be present.
func NewSubmitProofOfDeliveryCommand(
	orderID kernel.UUID,
	photoURL, signatureURL, recipientName, notes string,
) (SubmitProofOfDeliveryCommand, error) {
	cmd := SubmitProofOfDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	proof, err := order.NewProofOfDelivery(photoURL, signatureURL, recipientName, notes)
	if err != nil {
		return SubmitProofOfDeliveryCommand{}, err
	}
	cmd.proof = proof

	if err := cmd.setOrderID(orderID); err != nil {
		return SubmitProofOfDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitProofOfDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrSubmitProofOfDeliveryCommandIsNotConstructed)
}

// OrderID returns the order being delivered.
func (c SubmitProofOfDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Proof returns the proof of delivery to attach.
func (c SubmitProofOfDeliveryCommand) Proof() order.ProofOfDelivery {
	return c.proof
}

func (c *SubmitProofOfDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
