package driver

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents a driver's availability for new work.
//
// State transitions:
//
//	Available <──> Busy        (assignment / release)
//	Available <──> Offline     (shift end / shift start)
//
// Busy drivers cannot go offline: an active order must be finished or the
// lifecycle will leak a busy driver.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Available means the driver is on shift and can take an order.
	Available

	// Busy means the driver holds exactly one unfinished order.
	Busy

	// Offline means the driver is off shift and invisible to dispatch.
	Offline
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Available:     "available",
		Busy:          "busy",
		Offline:       "offline",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "available",
		Busy:      "busy",
		Offline:   "offline",
	}
}

// StatusFromString parses the wire representation of a driver status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("driver status",
		fmt.Errorf("%q is not a valid driver status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("driver status is invalid",
			fmt.Errorf("%d is not a valid driver status", s))
	}
	return nil
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
