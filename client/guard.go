package client

import (
	"context"
	"errors"
)

// ErrNotAuthenticated is returned by guarded calls when no session token is
// held, or when the server rejects the token mid-flight.
var ErrNotAuthenticated = errors.New("not authenticated")

// Gate guards access to the authenticated parts of the app. It watches the
// session store: whenever the session drops to anonymous, the registered
// redirect callback fires so the UI can send the user back to the login
// screen.
type Gate struct {
	session    *SessionStore
	onRedirect func()
}

// NewGate wires a gate to the client's session store. onRedirect may be nil
// when the caller only wants Check/Protect semantics.
func NewGate(c *Client, onRedirect func()) *Gate {
	g := &Gate{session: c.Session(), onRedirect: onRedirect}
	g.session.Subscribe(func() {
		if g.session.Token() == "" {
			g.redirect()
		}
	})
	return g
}

func (g *Gate) redirect() {
	if g.onRedirect != nil {
		g.onRedirect()
	}
}

// Check reports whether a session token is currently held. A false result
// also fires the redirect callback.
func (g *Gate) Check() bool {
	if g.session.Token() == "" {
		g.redirect()
		return false
	}
	return true
}

// Protect runs fn only when authenticated. A 401 from the server clears the
// session, which in turn fires the redirect via the store subscription;
// there is no silent refresh-and-retry.
func (g *Gate) Protect(ctx context.Context, fn func(context.Context) error) error {
	if !g.Check() {
		return ErrNotAuthenticated
	}
	err := fn(ctx)
	if IsUnauthorized(err) {
		g.session.Logout()
		return ErrNotAuthenticated
	}
	return err
}
