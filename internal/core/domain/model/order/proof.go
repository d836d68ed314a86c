package order

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrProofIsNotConstructed is returned when a ProofOfDelivery was not created
// via NewProofOfDelivery.
var ErrProofIsNotConstructed = errors.New("ProofOfDelivery must be created via NewProofOfDelivery constructor")

// ProofOfDelivery is the evidence attached to an order at the delivered
// transition. Each field is individually optional, but at least one must be
// present: an empty proof carries no evidence.
type ProofOfDelivery struct {
	photoURL      string
	signatureURL  string
	recipientName string
	notes         string

	guard guard.ConstructorGuard
}

// NewProofOfDelivery creates a proof record from its optional evidence fields.
// Fails when every field is empty.
func NewProofOfDelivery(photoURL, signatureURL, recipientName, notes string) (ProofOfDelivery, error) {
	if photoURL == "" && signatureURL == "" && recipientName == "" && notes == "" {
		return ProofOfDelivery{}, errs.NewValueIsRequiredError("proof of delivery evidence")
	}

	return ProofOfDelivery{
		photoURL:      photoURL,
		signatureURL:  signatureURL,
		recipientName: recipientName,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// PhotoURL returns the delivery photo URL, possibly empty.
func (p ProofOfDelivery) PhotoURL() string {
	return p.photoURL
}

// SignatureURL returns the recipient signature image URL, possibly empty.
func (p ProofOfDelivery) SignatureURL() string {
	return p.signatureURL
}

// RecipientName returns the name of the person who received the package, possibly empty.
func (p ProofOfDelivery) RecipientName() string {
	return p.recipientName
}

// Notes returns free-form delivery notes, possibly empty.
func (p ProofOfDelivery) Notes() string {
	return p.notes
}

// Validate ensures the proof was created through NewProofOfDelivery.
func (p ProofOfDelivery) Validate() error {
	return p.guard.Validate(ErrProofIsNotConstructed)
}
