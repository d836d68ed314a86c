// Package geo resolves road distances through the external routing service.
// Resolved distances are cached in Redis, and when the routing service is
// unreachable the resolver falls back to straight-line distance so quoting
// stays available.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"dispatch/internal/core/domain/model/kernel"
)

const (
	requestTimeout = 5 * time.Second
	cacheTTL       = 24 * time.Hour
)

// RoutingResolver resolves road distance via the routing service HTTP API.
// Implements ports.DistanceResolver.
type RoutingResolver struct {
	baseURL string
	client  *http.Client
	cache   *redis.Client
	logger  *slog.Logger
}

// NewRoutingResolver creates a resolver calling the routing service at
// baseURL. The cache client is optional; pass nil to disable caching.
func NewRoutingResolver(baseURL string, cache *redis.Client, logger *slog.Logger) *RoutingResolver {
	return &RoutingResolver{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
		cache:   cache,
		logger:  logger,
	}
}

// routeResponse is the routing service's answer body.
type routeResponse struct {
	DistanceMiles float64 `json:"distance_miles"`
}

// ResolveMiles returns the road distance between from and to. Cache hits
// skip the routing call; routing failures fall back to straight-line
// distance with a log entry.
func (r *RoutingResolver) ResolveMiles(ctx context.Context, from, to kernel.Location) (float64, error) {
	key := cacheKey(from, to)

	if miles, ok := r.cacheGet(ctx, key); ok {
		return miles, nil
	}

	miles, err := r.route(ctx, from, to)
	if err != nil {
		r.logger.Warn("routing service unavailable, using straight-line distance",
			"from", from.String(),
			"to", to.String(),
			"error", err)
		return from.HaversineMilesTo(to)
	}

	r.cacheSet(ctx, key, miles)
	return miles, nil
}

func (r *RoutingResolver) route(ctx context.Context, from, to kernel.Location) (float64, error) {
	url := fmt.Sprintf("%s/route?from_lat=%s&from_lng=%s&to_lat=%s&to_lng=%s",
		r.baseURL,
		formatCoord(from.Lat()), formatCoord(from.Lng()),
		formatCoord(to.Lat()), formatCoord(to.Lng()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("routing service responded %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var route routeResponse
	if err = json.NewDecoder(resp.Body).Decode(&route); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	if route.DistanceMiles <= 0 {
		return 0, fmt.Errorf("routing service returned non-positive distance %f", route.DistanceMiles)
	}

	return route.DistanceMiles, nil
}

func (r *RoutingResolver) cacheGet(ctx context.Context, key string) (float64, bool) {
	if r.cache == nil {
		return 0, false
	}

	val, err := r.cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warn("distance cache read failed", "key", key, "error", err)
		}
		return 0, false
	}

	miles, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}

	return miles, true
}

func (r *RoutingResolver) cacheSet(ctx context.Context, key string, miles float64) {
	if r.cache == nil {
		return
	}

	err := r.cache.Set(ctx, key, strconv.FormatFloat(miles, 'f', -1, 64), cacheTTL).Err()
	if err != nil {
		r.logger.Warn("distance cache write failed", "key", key, "error", err)
	}
}

// cacheKey builds a deterministic key from both endpoints. Coordinates are
// rounded to five decimal places, about one meter of precision.
func cacheKey(from, to kernel.Location) string {
	return "dist:" + formatCoord(from.Lat()) + "," + formatCoord(from.Lng()) +
		":" + formatCoord(to.Lat()) + "," + formatCoord(to.Lng())
}

func formatCoord(c float64) string {
	return strconv.FormatFloat(c, 'f', 5, 64)
}
