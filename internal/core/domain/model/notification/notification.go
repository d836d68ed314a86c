package notification

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created via NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification or RestoreNotification constructor")

// Type classifies a notification for display.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// TypeInfo is a neutral lifecycle update, e.g. "driver assigned".
	TypeInfo

	// TypeSuccess marks a happy-path milestone, e.g. "order delivered".
	TypeSuccess

	// TypeWarning flags something needing attention, e.g. a failed CRM sync.
	TypeWarning
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "unknown",
		TypeInfo:    "info",
		TypeSuccess: "success",
		TypeWarning: "warning",
	}
}

// TypeFromString parses the wire representation of a notification type.
func TypeFromString(s string) (Type, error) {
	for typ, str := range getTypeStrings() {
		if typ != TypeUnknown && str == s {
			return typ, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("notification type",
		fmt.Errorf("%q is not a valid notification type", s))
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if t == TypeUnknown {
		return errs.NewValueIsInvalidError("notification type")
	}
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("notification type",
			fmt.Errorf("%d is not a valid notification type", t))
	}
	return nil
}

// String returns the wire name of the type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Notification is an in-app message emitted on order lifecycle events.
// Emission is fire-and-forget from the caller's perspective; a failure to
// record a notification never fails the business operation that produced it.
type Notification struct {
	// id is the unique identifier for the notification
	id kernel.UUID

	// recipientID identifies the user the notification is addressed to
	recipientID kernel.UUID

	// orderID links the notification to the order that produced it (nil for
	// notifications not tied to an order)
	orderID *kernel.UUID

	// typ classifies the notification for display
	typ Type

	// title is the short headline
	title string

	// message is the full notification text
	message string

	// read marks whether the recipient has seen the notification
	read bool

	// createdAt is the emission time
	createdAt time.Time

	// isConstructed ensures the notification was created via a constructor
	isConstructed bool
}

// NewNotification creates an unread Notification.
func NewNotification(
	id kernel.UUID,
	recipientID kernel.UUID,
	orderID *kernel.UUID,
	typ Type,
	title, message string,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setRecipientID(recipientID),
		n.setOrderID(orderID),
		n.setType(typ),
		n.setTitle(title),
		n.setMessage(message),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a Notification from persistent storage.
func RestoreNotification(
	id kernel.UUID,
	recipientID kernel.UUID,
	orderID *kernel.UUID,
	typ Type,
	title, message string,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, recipientID, orderID, typ, title, message, createdAt)
	if err != nil {
		return nil, err
	}

	n.read = read
	return n, nil
}

// Validate ensures the Notification was properly constructed through a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// RecipientID returns the addressed user's identifier.
func (n *Notification) RecipientID() kernel.UUID {
	return n.recipientID
}

// OrderID returns the linked order, nil when the notification is not order-bound.
func (n *Notification) OrderID() *kernel.UUID {
	return n.orderID
}

// Type returns the notification classification.
func (n *Notification) Type() Type {
	return n.typ
}

// Title returns the short headline.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the full notification text.
func (n *Notification) Message() string {
	return n.message
}

// IsRead reports whether the recipient has seen the notification.
func (n *Notification) IsRead() bool {
	return n.read
}

// CreatedAt returns the emission time.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead marks the notification as seen by its recipient. Only the
// addressed recipient may mark a notification read.
func (n *Notification) MarkRead(recipientID kernel.UUID) error {
	if !n.recipientID.IsEqual(recipientID) {
		return errs.NewObjectNotFoundError("notification", n.id.String())
	}

	n.read = true
	return nil
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	n.recipientID = recipientID
	return nil
}

func (n *Notification) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	n.orderID = orderID
	return nil
}

func (n *Notification) setType(typ Type) error {
	if err := typ.Validate(); err != nil {
		return err
	}
	n.typ = typ
	return nil
}

func (n *Notification) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("notification title")
	}
	n.title = title
	return nil
}

func (n *Notification) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("notification message")
	}
	n.message = message
	return nil
}
