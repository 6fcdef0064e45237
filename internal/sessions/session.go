// Package sessions holds the client-side session: the current token pair,
// its backing store and the coordination around refreshing it.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/folioview/folioview-cli/internal/fverrors"
	"github.com/folioview/folioview-cli/internal/models"
	"github.com/folioview/folioview-cli/internal/tokenstore"
	"golang.org/x/sync/singleflight"
)

var ulidGenerator models.IDGenerator = models.ULIDGenerator{}

// RefreshFunc exchanges a refresh token for a new token pair. Provided by the
// API client, which owns the HTTP call to the refresh endpoint.
type RefreshFunc func(ctx context.Context, refreshToken string) (models.TokenSet, error)

// Session owns the token pair for one authenticated dashboard account.
// Concurrent requests hitting the 401 path share a single refresh round-trip
// through the singleflight group.
type Session struct {
	// ID correlates all log lines of one session, it never reaches the backend.
	ID string

	store         tokenstore.TokenStore
	onInvalidated func(reason error)
	refreshGroup  singleflight.Group

	lock        sync.Mutex
	invalidated bool
}

// Tokens returns the currently stored token pair.
func (s *Session) Tokens(ctx context.Context) (models.TokenSet, error) {
	return s.store.GetTokenSet(ctx)
}

// SetTokens stores a freshly issued token pair and re-arms the invalidation
// callback, this is what a new login calls.
func (s *Session) SetTokens(ctx context.Context, tokens models.TokenSet) error {
	err := s.store.SetTokenSet(ctx, tokens.WithDerivedExpiry())
	if err != nil {
		return err
	}
	s.lock.Lock()
	s.invalidated = false
	s.lock.Unlock()
	return nil
}

// Clear removes the stored credentials. Used by logout, safe to call any
// number of times.
func (s *Session) Clear(ctx context.Context) error {
	return s.store.ClearTokenSet(ctx)
}

// Refresh rotates the token pair through the given RefreshFunc. At most one
// refresh round-trip is in flight at any time, concurrent callers share its
// outcome. failedAccessToken is the access token the caller saw rejected: if
// the store already holds a different one, another request rotated the pair
// in the meantime and the stored pair is returned without a network call.
// A missing refresh token or a failed refresh is fatal for the whole session:
// the store is cleared, the invalidation callback fires and
// fverrors.ErrSessionExpired is returned.
func (s *Session) Refresh(ctx context.Context, failedAccessToken string, refresh RefreshFunc) (models.TokenSet, error) {
	result, err, shared := s.refreshGroup.Do("refresh", func() (any, error) {
		current, err := s.store.GetTokenSet(ctx)
		if err != nil && !errors.Is(err, fverrors.ErrTokenNotFound) {
			return models.TokenSet{}, err
		}
		if current.AccessToken != "" && current.AccessToken != failedAccessToken {
			return current, nil
		}
		if current.RefreshToken == "" {
			s.invalidate(ctx, fverrors.ErrMissingCredentials)
			return models.TokenSet{}, fverrors.ErrSessionExpired
		}
		newTokens, err := refresh(ctx, current.RefreshToken)
		if err != nil {
			s.invalidate(ctx, err)
			return models.TokenSet{}, fmt.Errorf("%w: %v", fverrors.ErrSessionExpired, err)
		}
		newTokens = newTokens.WithDerivedExpiry()
		err = s.store.SetTokenSet(ctx, newTokens)
		if err != nil {
			return models.TokenSet{}, err
		}
		slog.Debug("SESSION", "message", "token pair rotated", "sessionID", s.ID)
		return newTokens, nil
	})
	if err != nil {
		return models.TokenSet{}, err
	}
	if shared {
		slog.Debug("SESSION", "message", "refresh shared with a concurrent request", "sessionID", s.ID)
	}
	return result.(models.TokenSet), nil
}

// invalidate clears the credentials and notifies the host application once.
// The hosting code decides what "redirect to login" means for it.
func (s *Session) invalidate(ctx context.Context, reason error) {
	err := s.store.ClearTokenSet(ctx)
	if err != nil {
		slog.Error("SESSION", "message", "clearing credentials failed", "error", err, "sessionID", s.ID)
	}
	s.lock.Lock()
	alreadyInvalidated := s.invalidated
	s.invalidated = true
	s.lock.Unlock()
	if alreadyInvalidated || s.onInvalidated == nil {
		return
	}
	s.onInvalidated(reason)
}

type SessionOption func(*Session) error

func WithTokenStore(store tokenstore.TokenStore) SessionOption {
	return func(s *Session) error {
		s.store = store
		return nil
	}
}

// WithOnInvalidated registers the callback fired when the session cannot be
// recovered (no refresh token, or the refresh itself failed).
func WithOnInvalidated(callback func(reason error)) SessionOption {
	return func(s *Session) error {
		s.onInvalidated = callback
		return nil
	}
}

// NewSession creates a session around a token store.
func NewSession(options ...SessionOption) (*Session, error) {
	session := Session{}
	for _, opt := range options {
		err := opt(&session)
		if err != nil {
			return nil, err
		}
	}
	if session.store == nil {
		return nil, fmt.Errorf("token store is not initialized")
	}
	id, err := ulidGenerator.ID()
	if err != nil {
		return nil, err
	}
	session.ID = id
	return &session, nil
}
