// Package guard provides the constructor guard pattern used by domain value
// objects and commands. A zero-value guard marks an object that bypassed its
// constructor, allowing Validate methods to reject improperly built instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply its own "not constructed" error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether an object was created through its constructor.
// Embed one as a private field and initialize it with NewConstructorGuard inside
// the constructor; the zero value then identifies hand-built instances.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard marking the owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value guard
// it returns notConstructedErr, or ErrDefaultConstructorGuard when nil is given.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
