package tokenstore

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/folioview/folioview-cli/internal/fverrors"
	"github.com/folioview/folioview-cli/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time checks that every store implements TokenStore.
var _ TokenStore = (*MemoryTokenStore)(nil)
var _ TokenStore = (*FileTokenStore)(nil)
var _ TokenStore = (*RedisTokenStore)(nil)

func testTokenSet() models.TokenSet {
	return models.TokenSet{
		AccessToken:  "access-value",
		RefreshToken: "refresh-value",
		ExpiresAt:    time.Now().UTC().Add(time.Hour).Truncate(time.Second),
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTokenStore()

	_, err := store.GetTokenSet(ctx)
	assert.ErrorIs(t, err, fverrors.ErrTokenNotFound)

	tokens := testTokenSet()
	require.NoError(t, store.SetTokenSet(ctx, tokens))

	loaded, err := store.GetTokenSet(ctx)
	require.NoError(t, err)
	assert.Equal(t, tokens, loaded)

	require.NoError(t, store.ClearTokenSet(ctx))
	_, err = store.GetTokenSet(ctx)
	assert.ErrorIs(t, err, fverrors.ErrTokenNotFound)
	// clearing an already empty store is a no-op
	assert.NoError(t, store.ClearTokenSet(ctx))
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session", "tokens.json")
	store, err := NewFileTokenStore(path)
	require.NoError(t, err)

	_, err = store.GetTokenSet(ctx)
	assert.ErrorIs(t, err, fverrors.ErrTokenNotFound)

	tokens := testTokenSet()
	require.NoError(t, store.SetTokenSet(ctx, tokens))

	loaded, err := store.GetTokenSet(ctx)
	require.NoError(t, err)
	assert.Equal(t, tokens.AccessToken, loaded.AccessToken)
	assert.Equal(t, tokens.RefreshToken, loaded.RefreshToken)
	assert.True(t, tokens.ExpiresAt.Equal(loaded.ExpiresAt))

	require.NoError(t, store.ClearTokenSet(ctx))
	_, err = store.GetTokenSet(ctx)
	assert.ErrorIs(t, err, fverrors.ErrTokenNotFound)
	assert.NoError(t, store.ClearTokenSet(ctx))
}

func TestFileStorePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tokens.json")
	store, err := NewFileTokenStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetTokenSet(ctx, testTokenSet()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	store, err := NewFileTokenStore(path)
	require.NoError(t, err)

	_, err = store.GetTokenSet(ctx)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, fverrors.ErrTokenNotFound)
}

func TestNewFileTokenStoreRequiresPath(t *testing.T) {
	_, err := NewFileTokenStore("")

	assert.Error(t, err)
}

func TestNewRedisTokenStoreRequiresClient(t *testing.T) {
	_, err := NewRedisTokenStore()

	assert.Error(t, err)
}
