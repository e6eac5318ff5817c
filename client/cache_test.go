package client_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hikmacare/hikma-admin/client"
)

func TestQueryCachePrefixInvalidation(t *testing.T) {
	cache := client.NewQueryCache()
	cache.Set("/api/admin/doctors?", "all")
	cache.Set("/api/admin/doctors?is_approved=false", "pending")
	cache.Set("/api/admin/doctors/3", "detail")
	cache.Set("/api/admin/clinics?", "clinics")

	// Dropping the doctors listing prefix leaves detail and other resources.
	cache.Invalidate("/api/admin/doctors?")
	require.Equal(t, 2, cache.Len())

	_, ok := cache.Get("/api/admin/doctors/3")
	require.True(t, ok)
	_, ok = cache.Get("/api/admin/doctors?is_approved=false")
	require.False(t, ok)

	cache.Invalidate("/api/admin/doctors/3", "/api/admin/clinics?")
	require.Equal(t, 0, cache.Len())
}

func TestQueryCacheGetMiss(t *testing.T) {
	cache := client.NewQueryCache()
	_, ok := cache.Get("/api/anything")
	require.False(t, ok)

	cache.Set("/api/anything", 42)
	v, ok := cache.Get("/api/anything")
	require.True(t, ok)
	require.Equal(t, 42, v)
}
