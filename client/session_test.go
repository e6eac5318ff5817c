package client_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hikmacare/hikma-admin/client"
	"github.com/hikmacare/hikma-admin/models"
)

func TestSessionStorePersistsAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store := client.NewSessionStore(path)
	require.Empty(t, store.Token())

	user := &models.User{ID: 7, Phone: "+96170123456", FullName: "Admin User"}
	store.SetAuth("access-token", "refresh-token", user)

	// A brand new store against the same path sees the saved session.
	reloaded := client.NewSessionStore(path)
	snap := reloaded.Snapshot()
	require.Equal(t, "access-token", snap.Token)
	require.Equal(t, "refresh-token", snap.RefreshToken)
	require.NotNil(t, snap.User)
	require.Equal(t, uint(7), snap.User.ID)
}

func TestSessionStoreLogoutClearsEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store := client.NewSessionStore(path)
	store.SetAuth("tok", "ref", &models.User{ID: 1})
	store.Logout()

	snap := store.Snapshot()
	require.Empty(t, snap.Token)
	require.Empty(t, snap.RefreshToken)
	require.Nil(t, snap.User)

	// The cleared state is what survives a restart too.
	reloaded := client.NewSessionStore(path)
	require.Empty(t, reloaded.Token())
}

func TestSessionStoreToleratesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := client.NewSessionStore(path)
	require.Empty(t, store.Token())
}

func TestSessionStoreNotifiesSubscribers(t *testing.T) {
	store := client.NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	var calls int
	store.Subscribe(func() { calls++ })

	store.SetAuth("tok", "ref", &models.User{ID: 1})
	store.Logout()
	require.Equal(t, 2, calls)
}

func TestSessionFileHasTightPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := client.NewSessionStore(path)
	store.SetAuth("tok", "ref", nil)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
