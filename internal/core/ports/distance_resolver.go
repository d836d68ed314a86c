package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// DistanceResolver resolves the road distance in miles between two points.
//
// The primary implementation calls the external routing service and caches
// results; when the service is unreachable it falls back to straight-line
// distance so quoting stays available.
type DistanceResolver interface {
	// ResolveMiles returns the road distance between from and to.
	ResolveMiles(ctx context.Context, from, to kernel.Location) (float64, error)
}
