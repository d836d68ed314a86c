package geo_test

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/adapters/out/geo"
	"dispatch/internal/core/domain/model/kernel"
)

func testLocations(t *testing.T) (kernel.Location, kernel.Location) {
	t.Helper()

	from, err := kernel.NewLocation(37.7749, -122.4194)
	require.NoError(t, err)
	to, err := kernel.NewLocation(37.8044, -122.2712)
	require.NoError(t, err)

	return from, to
}

func newCache(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestRoutingResolver_ResolveMiles_CallsRoutingService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/route", r.URL.Path)
		assert.Equal(t, "37.77490", r.URL.Query().Get("from_lat"))
		fmt.Fprint(w, `{"distance_miles": 12.5}`)
	}))
	defer server.Close()

	resolver := geo.NewRoutingResolver(server.URL, newCache(t), slog.Default())

	from, to := testLocations(t)
	miles, err := resolver.ResolveMiles(context.Background(), from, to)

	require.NoError(t, err)
	assert.InDelta(t, 12.5, miles, 0.0001)
}

func TestRoutingResolver_ResolveMiles_SecondCallHitsCache(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"distance_miles": 12.5}`)
	}))
	defer server.Close()

	resolver := geo.NewRoutingResolver(server.URL, newCache(t), slog.Default())

	from, to := testLocations(t)

	miles, err := resolver.ResolveMiles(context.Background(), from, to)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, miles, 0.0001)

	miles, err = resolver.ResolveMiles(context.Background(), from, to)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, miles, 0.0001)

	assert.Equal(t, int32(1), calls.Load(), "second resolve should be served from cache")
}

func TestRoutingResolver_ResolveMiles_FallsBackToHaversine(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	resolver := geo.NewRoutingResolver(server.URL, newCache(t), slog.Default())

	from, to := testLocations(t)
	miles, err := resolver.ResolveMiles(context.Background(), from, to)

	require.NoError(t, err)

	expected, err := from.HaversineMilesTo(to)
	require.NoError(t, err)
	assert.InDelta(t, expected, miles, 0.0001)
}

func TestRoutingResolver_ResolveMiles_RejectsNonPositiveDistance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"distance_miles": 0}`)
	}))
	defer server.Close()

	resolver := geo.NewRoutingResolver(server.URL, newCache(t), slog.Default())

	from, to := testLocations(t)
	miles, err := resolver.ResolveMiles(context.Background(), from, to)

	// Zero distance from the service counts as a failure, so the
	// straight-line fallback answers instead.
	require.NoError(t, err)
	assert.Positive(t, miles)
}

func TestRoutingResolver_ResolveMiles_NilCacheStillResolves(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"distance_miles": 3.25}`)
	}))
	defer server.Close()

	resolver := geo.NewRoutingResolver(server.URL, nil, slog.Default())

	from, to := testLocations(t)
	miles, err := resolver.ResolveMiles(context.Background(), from, to)

	require.NoError(t, err)
	assert.InDelta(t, 3.25, miles, 0.0001)
}
