// Package tokenstore persists the session's token pair between requests and,
// depending on the backing store, between runs. It is the client-side analog
// of the browser's local storage in the web dashboard.
package tokenstore

import (
	"context"

	"github.com/folioview/folioview-cli/internal/models"
)

// TokenStore reads and writes the current token pair.
// GetTokenSet returns fverrors.ErrTokenNotFound when no pair is stored.
// ClearTokenSet on an empty store is a no-op.
type TokenStore interface {
	GetTokenSet(ctx context.Context) (models.TokenSet, error)
	SetTokenSet(ctx context.Context, tokens models.TokenSet) error
	ClearTokenSet(ctx context.Context) error
}
