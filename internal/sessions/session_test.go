package sessions

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/folioview/folioview-cli/internal/fverrors"
	"github.com/folioview/folioview-cli/internal/models"
	"github.com/folioview/folioview-cli/internal/tokenstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, onInvalidated func(error)) (*Session, *tokenstore.MemoryTokenStore) {
	store := tokenstore.NewMemoryTokenStore()
	options := []SessionOption{WithTokenStore(store)}
	if onInvalidated != nil {
		options = append(options, WithOnInvalidated(onInvalidated))
	}
	session, err := NewSession(options...)
	require.NoError(t, err)
	return session, store
}

func TestNewSessionRequiresStore(t *testing.T) {
	_, err := NewSession()

	assert.Error(t, err)
}

func TestRefreshRotatesTokens(t *testing.T) {
	ctx := context.Background()
	session, store := newTestSession(t, nil)
	require.NoError(t, store.SetTokenSet(ctx, models.TokenSet{AccessToken: "old-access", RefreshToken: "old-refresh"}))

	refreshed, err := session.Refresh(ctx, "old-access", func(_ context.Context, refreshToken string) (models.TokenSet, error) {
		assert.Equal(t, "old-refresh", refreshToken)
		return models.TokenSet{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "new-access", refreshed.AccessToken)
	stored, err := store.GetTokenSet(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-access", stored.AccessToken)
	assert.Equal(t, "new-refresh", stored.RefreshToken)
}

func TestRefreshWithoutRefreshTokenFailsWithoutNetworkCall(t *testing.T) {
	ctx := context.Background()
	invalidations := 0
	session, store := newTestSession(t, func(error) { invalidations++ })
	refreshCalls := 0

	_, err := session.Refresh(ctx, "", func(context.Context, string) (models.TokenSet, error) {
		refreshCalls++
		return models.TokenSet{}, nil
	})

	assert.ErrorIs(t, err, fverrors.ErrSessionExpired)
	assert.Equal(t, 0, refreshCalls)
	assert.Equal(t, 1, invalidations)
	_, err = store.GetTokenSet(ctx)
	assert.ErrorIs(t, err, fverrors.ErrTokenNotFound)
}

func TestFailedRefreshInvalidatesSession(t *testing.T) {
	ctx := context.Background()
	var reason error
	session, store := newTestSession(t, func(err error) { reason = err })
	require.NoError(t, store.SetTokenSet(ctx, models.TokenSet{AccessToken: "a", RefreshToken: "r"}))

	_, err := session.Refresh(ctx, "a", func(context.Context, string) (models.TokenSet, error) {
		return models.TokenSet{}, fmt.Errorf("the refresh token is revoked")
	})

	assert.ErrorIs(t, err, fverrors.ErrSessionExpired)
	assert.ErrorContains(t, reason, "revoked")
	_, err = store.GetTokenSet(ctx)
	assert.ErrorIs(t, err, fverrors.ErrTokenNotFound)
}

func TestInvalidationCallbackFiresOnce(t *testing.T) {
	ctx := context.Background()
	invalidations := 0
	session, _ := newTestSession(t, func(error) { invalidations++ })

	for i := 0; i < 3; i++ {
		_, err := session.Refresh(ctx, "", func(context.Context, string) (models.TokenSet, error) {
			return models.TokenSet{}, nil
		})
		assert.ErrorIs(t, err, fverrors.ErrSessionExpired)
	}

	assert.Equal(t, 1, invalidations)
}

func TestConcurrentRefreshesShareOneCall(t *testing.T) {
	ctx := context.Background()
	session, store := newTestSession(t, nil)
	require.NoError(t, store.SetTokenSet(ctx, models.TokenSet{AccessToken: "a", RefreshToken: "r"}))

	var upstreamCalls atomic.Int32
	refresh := func(context.Context, string) (models.TokenSet, error) {
		upstreamCalls.Add(1)
		time.Sleep(50 * time.Millisecond)
		return models.TokenSet{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			refreshed, err := session.Refresh(ctx, "a", refresh)
			assert.NoError(t, err)
			assert.Equal(t, "new-access", refreshed.AccessToken)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), upstreamCalls.Load())
}

func TestRefreshSkipsNetworkCallWhenPairAlreadyRotated(t *testing.T) {
	ctx := context.Background()
	session, store := newTestSession(t, nil)
	// the store already holds a newer pair than the one that failed
	require.NoError(t, store.SetTokenSet(ctx, models.TokenSet{AccessToken: "new-access", RefreshToken: "new-refresh"}))

	upstreamCalls := 0
	refreshed, err := session.Refresh(ctx, "stale-access", func(context.Context, string) (models.TokenSet, error) {
		upstreamCalls++
		return models.TokenSet{}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "new-access", refreshed.AccessToken)
	assert.Equal(t, 0, upstreamCalls)
}

func TestClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	session, store := newTestSession(t, nil)
	require.NoError(t, store.SetTokenSet(ctx, models.TokenSet{AccessToken: "a", RefreshToken: "r"}))

	require.NoError(t, session.Clear(ctx))
	require.NoError(t, session.Clear(ctx))

	_, err := session.Tokens(ctx)
	assert.ErrorIs(t, err, fverrors.ErrTokenNotFound)
}
