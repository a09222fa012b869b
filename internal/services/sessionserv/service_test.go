package sessionserv

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpanel/finpanel-client/internal/session"
	"github.com/finpanel/finpanel-client/internal/types"
)

type fakeAuth struct {
	token string
	err   error

	block chan struct{}
}

func (f *fakeAuth) Login(ctx context.Context, identifier, secret string) (string, error) {
	if f.block != nil {
		<-f.block
	}
	return f.token, f.err
}

func Test_LoginStoresToken(t *testing.T) {
	store := &session.MemoryStore{}
	g := &Gateway{
		API:      &fakeAuth{token: "tok-1"},
		Sessions: store,
	}

	assert.False(t, g.LoggedIn())

	require.NoError(t, g.Login(context.Background(), "ana@example.com", "s3cret"))

	assert.True(t, g.LoggedIn())
	got, _ := store.Token()
	assert.Equal(t, "tok-1", got)
}

func Test_RejectedLoginLeavesSessionUntouched(t *testing.T) {
	store := &session.MemoryStore{}
	require.NoError(t, store.Save("old-token"))

	g := &Gateway{
		API:      &fakeAuth{err: types.ErrAuth.New("credentials rejected")},
		Sessions: store,
	}

	err := g.Login(context.Background(), "ana@example.com", "wrong")
	assert.True(t, types.ErrAuth.Has(err))

	got, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "old-token", got)
}

func Test_ConcurrentLoginIsRejected(t *testing.T) {
	block := make(chan struct{})
	g := &Gateway{
		API:      &fakeAuth{token: "tok-1", block: block},
		Sessions: &session.MemoryStore{},
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = g.Login(context.Background(), "ana@example.com", "s3cret")
	}()

	// Wait until the first login is inside the API call.
	for !g.busy.Load() {
	}

	err := g.Login(context.Background(), "ana@example.com", "s3cret")
	assert.True(t, errors.Is(err, ErrLoginInFlight))

	close(block)
	wg.Wait()
}

func Test_LogoutClearsSession(t *testing.T) {
	store := &session.MemoryStore{}
	require.NoError(t, store.Save("tok"))

	g := &Gateway{API: &fakeAuth{}, Sessions: store}

	require.NoError(t, g.Logout(context.Background()))
	assert.False(t, g.LoggedIn())
}
