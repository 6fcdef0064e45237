package refresher

import (
	"context"
	"testing"
	"time"

	"github.com/folioview/folioview-cli/internal/config"
	"github.com/folioview/folioview-cli/internal/models"
	"github.com/folioview/folioview-cli/internal/sessions"
	"github.com/folioview/folioview-cli/internal/tokenstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKeepAlive(t *testing.T, store *tokenstore.MemoryTokenStore, refreshCalls *int) *KeepAlive {
	t.Helper()
	session, err := sessions.NewSession(sessions.WithTokenStore(store))
	require.NoError(t, err)
	keepAlive, err := NewKeepAlive(
		WithConfig(config.KeepAliveConfig{ExpiryMarginMinutes: 3}),
		WithSession(session),
		WithRefreshFunc(func(context.Context, string) (models.TokenSet, error) {
			*refreshCalls++
			return models.TokenSet{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil
		}),
	)
	require.NoError(t, err)
	return keepAlive
}

func TestRefreshesTokenExpiringSoon(t *testing.T) {
	ctx := context.Background()
	store := tokenstore.NewMemoryTokenStore()
	refreshCalls := 0
	keepAlive := newKeepAlive(t, store, &refreshCalls)
	require.NoError(t, store.SetTokenSet(ctx, models.TokenSet{
		AccessToken:  "old-access",
		RefreshToken: "old-refresh",
		ExpiresAt:    time.Now().UTC().Add(time.Minute),
	}))

	err := keepAlive.refreshIfExpiringSoon(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, refreshCalls)
	stored, err := store.GetTokenSet(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-access", stored.AccessToken)
}

func TestLeavesFreshTokenAlone(t *testing.T) {
	ctx := context.Background()
	store := tokenstore.NewMemoryTokenStore()
	refreshCalls := 0
	keepAlive := newKeepAlive(t, store, &refreshCalls)
	require.NoError(t, store.SetTokenSet(ctx, models.TokenSet{
		AccessToken:  "old-access",
		RefreshToken: "old-refresh",
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
	}))

	err := keepAlive.refreshIfExpiringSoon(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, refreshCalls)
}

func TestNoopWhenLoggedOut(t *testing.T) {
	ctx := context.Background()
	store := tokenstore.NewMemoryTokenStore()
	refreshCalls := 0
	keepAlive := newKeepAlive(t, store, &refreshCalls)

	err := keepAlive.refreshIfExpiringSoon(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, refreshCalls)
}

func TestNewKeepAliveValidation(t *testing.T) {
	_, err := NewKeepAlive()
	assert.Error(t, err)

	_, err = NewKeepAlive(WithConfig(config.KeepAliveConfig{ExpiryMarginMinutes: 3}))
	assert.Error(t, err)
}
