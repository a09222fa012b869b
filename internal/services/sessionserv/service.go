// Package sessionserv is the gateway between credentials and the stored
// bearer token. Expiry teardown lives in the repository's response
// middleware; this service only deals with explicit login and logout.
package sessionserv

import (
	"context"
	"sync/atomic"

	"github.com/zeebo/errs"

	"github.com/finpanel/finpanel-client/internal/logging"
	"github.com/finpanel/finpanel-client/internal/session"
)

// ErrLoginInFlight is returned when a login is attempted while a previous
// one has not finished yet.
var ErrLoginInFlight = errs.New("login already in progress")

type AuthAPI interface {
	Login(ctx context.Context, identifier, secret string) (string, error)
}

type Gateway struct {
	API      AuthAPI
	Sessions session.Store

	busy atomic.Bool
}

// LoggedIn reports whether a token is currently stored. The store is the
// sole source of truth across process restarts.
func (g *Gateway) LoggedIn() bool {
	_, ok := g.Sessions.Token()
	return ok
}

// Login exchanges credentials for a token and persists it. A failed login
// leaves any previously stored token untouched.
func (g *Gateway) Login(ctx context.Context, identifier, secret string) error {
	if !g.busy.CompareAndSwap(false, true) {
		return ErrLoginInFlight
	}
	defer g.busy.Store(false)

	log := logging.FromContext(ctx)

	token, err := g.API.Login(ctx, identifier, secret)
	if err != nil {
		return err
	}

	if err := g.Sessions.Save(token); err != nil {
		return errs.Wrap(err)
	}

	log.Info("session established")
	return nil
}

func (g *Gateway) Logout(ctx context.Context) error {
	log := logging.FromContext(ctx)

	if err := g.Sessions.Clear(); err != nil {
		return errs.Wrap(err)
	}

	log.Info("session cleared")
	return nil
}
