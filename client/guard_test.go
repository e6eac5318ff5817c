package client_test

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hikmacare/hikma-admin/client"
	"github.com/hikmacare/hikma-admin/models"
)

func TestGateCheckRedirectsWhenAnonymous(t *testing.T) {
	store := client.NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	c := client.New("http://unused", store)

	var redirects int
	gate := client.NewGate(c, func() { redirects++ })

	require.False(t, gate.Check())
	require.Equal(t, 1, redirects)

	store.SetAuth("tok", "ref", &models.User{ID: 1})
	require.True(t, gate.Check())
	require.Equal(t, 1, redirects)
}

func TestGateRedirectsOnLogout(t *testing.T) {
	store := client.NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	c := client.New("http://unused", store)

	var redirects int
	client.NewGate(c, func() { redirects++ })

	store.SetAuth("tok", "ref", &models.User{ID: 1})
	require.Equal(t, 0, redirects)

	store.Logout()
	require.Equal(t, 1, redirects)
}

func TestGateProtectBlocksAnonymousCalls(t *testing.T) {
	store := client.NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	c := client.New("http://unused", store)
	gate := client.NewGate(c, nil)

	err := gate.Protect(context.Background(), func(ctx context.Context) error {
		t.Error("protected fn must not run while anonymous")
		return nil
	})
	require.ErrorIs(t, err, client.ErrNotAuthenticated)
}

func TestGateProtectClearsSessionOn401(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelopeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Token has been revoked")
	}))
	c.Session().SetAuth("revoked-token", "", &models.User{ID: 1})

	var redirects int
	gate := client.NewGate(c, func() { redirects++ })

	err := gate.Protect(context.Background(), func(ctx context.Context) error {
		_, err := c.Me(ctx)
		return err
	})
	require.ErrorIs(t, err, client.ErrNotAuthenticated)

	// The 401 dropped the session, which in turn fired the redirect. There
	// is no silent refresh-and-retry.
	require.Empty(t, c.Session().Token())
	require.Equal(t, 1, redirects)
}

func TestGateProtectPassesThroughOtherErrors(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelopeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
	}))
	c.Session().SetAuth("valid-token", "", &models.User{ID: 1})

	gate := client.NewGate(c, nil)
	err := gate.Protect(context.Background(), func(ctx context.Context) error {
		_, err := c.Me(ctx)
		return err
	})
	require.True(t, client.IsNotFound(err))
	require.NotEmpty(t, c.Session().Token())
}
