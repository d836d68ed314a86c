package kernel

import (
	"errors"
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// LocationMinLat is the minimum valid latitude in degrees.
	LocationMinLat float64 = -90
	// LocationMaxLat is the maximum valid latitude in degrees.
	LocationMaxLat float64 = 90
	// LocationMinLng is the minimum valid longitude in degrees.
	LocationMinLng float64 = -180
	// LocationMaxLng is the maximum valid longitude in degrees.
	LocationMaxLng float64 = 180

	// earthRadiusMiles is the mean Earth radius used for haversine distances.
	earthRadiusMiles = 3958.8
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly initialized Location.
// Locations must be created via the NewLocation constructor to guarantee valid coordinates.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location represents a geographic point with validated latitude and longitude.
// It is an immutable value object; the zero value is invalid and fails validation.
//
// Example:
//
//	loc, err := kernel.NewLocation(40.7128, -74.0060)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Pickup at %s", loc) // Output: Location(40.712800,-74.006000)
type Location struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewLocation creates a new Location with the specified coordinates.
// Latitude must be within [LocationMinLat..LocationMaxLat] and longitude
// within [LocationMinLng..LocationMaxLng]. Returns a validation error otherwise.
func NewLocation(lat float64, lng float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLat(lat), loc.setLng(lng)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Lat returns the latitude in degrees.
func (l Location) Lat() float64 {
	return l.lat
}

// Lng returns the longitude in degrees.
func (l Location) Lng() float64 {
	return l.lng
}

// Validate ensures the Location was created through NewLocation.
// Returns ErrLocationIsNotConstructed for zero-value instances.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// IsEqual compares two locations by coordinates.
func (l Location) IsEqual(other Location) bool {
	return l.lat == other.lat && l.lng == other.lng
}

// String implements fmt.Stringer with six decimal places of precision.
func (l Location) String() string {
	return fmt.Sprintf("Location(%f,%f)", l.lat, l.lng)
}

// HaversineMilesTo returns the great-circle distance to another location in miles.
// Used as a fallback estimate when the external routing collaborator is unavailable;
// road distances from the routing API are preferred for pricing.
func (l Location) HaversineMilesTo(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := l.lat * math.Pi / 180
	lat2 := other.lat * math.Pi / 180
	dLat := (other.lat - l.lat) * math.Pi / 180
	dLng := (other.lng - l.lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c, nil
}

// setLat validates and sets the latitude. Used only during construction.
func (l *Location) setLat(lat float64) error {
	if lat < LocationMinLat || lat > LocationMaxLat {
		return errs.NewValueIsOutOfRangeError("lat", lat, LocationMinLat, LocationMaxLat)
	}
	l.lat = lat
	return nil
}

// setLng validates and sets the longitude. Used only during construction.
func (l *Location) setLng(lng float64) error {
	if lng < LocationMinLng || lng > LocationMaxLng {
		return errs.NewValueIsOutOfRangeError("lng", lng, LocationMinLng, LocationMaxLng)
	}
	l.lng = lng
	return nil
}
