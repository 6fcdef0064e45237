// Package refresher keeps a session's access token fresh in the background
// so long-running consumers rarely hit the 401 recovery path at all.
package refresher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/folioview/folioview-cli/internal/config"
	"github.com/folioview/folioview-cli/internal/fverrors"
	"github.com/folioview/folioview-cli/internal/sessions"
	"github.com/go-co-op/gocron"
)

type KeepAlive struct {
	ExpiryMargin time.Duration

	session *sessions.Session
	refresh sessions.RefreshFunc
}

// GetScheduler returns a gocron scheduler that checks the stored access
// token once a minute and rotates the pair when it expires within the margin.
func (k *KeepAlive) GetScheduler() (*gocron.Scheduler, error) {
	s := gocron.NewScheduler(time.UTC)

	refreshExpiringTokensTask := func() {
		err := k.refreshIfExpiringSoon(context.Background())
		if err != nil {
			slog.Error("KEEPALIVE", "message", "refreshIfExpiringSoon failed", "error", err)
		}
	}

	_, err := s.Every(1).
		Minutes().
		Do(refreshExpiringTokensTask)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (k *KeepAlive) refreshIfExpiringSoon(ctx context.Context) error {
	tokens, err := k.session.Tokens(ctx)
	if err != nil {
		// not being logged in is not an error for the keepalive
		if errors.Is(err, fverrors.ErrTokenNotFound) {
			return nil
		}
		return err
	}
	if tokens.ExpiresAt.IsZero() {
		tokens = tokens.WithDerivedExpiry()
	}
	if !tokens.ExpiresSoon(k.ExpiryMargin) {
		return nil
	}
	slog.Debug("KEEPALIVE", "message", "access token expires soon, refreshing", "sessionID", k.session.ID)
	_, err = k.session.Refresh(ctx, tokens.AccessToken, k.refresh)
	return err
}

type KeepAliveOption func(*KeepAlive) error

func WithConfig(keepAliveConfig config.KeepAliveConfig) KeepAliveOption {
	return func(k *KeepAlive) error {
		k.ExpiryMargin = time.Duration(keepAliveConfig.ExpiryMarginMinutes) * time.Minute
		return nil
	}
}

func WithSession(session *sessions.Session) KeepAliveOption {
	return func(k *KeepAlive) error {
		k.session = session
		return nil
	}
}

// WithRefreshFunc sets the function doing the actual refresh round-trip,
// normally the API client's.
func WithRefreshFunc(refresh sessions.RefreshFunc) KeepAliveOption {
	return func(k *KeepAlive) error {
		k.refresh = refresh
		return nil
	}
}

// NewKeepAlive creates a KeepAlive that refreshes access tokens which are
// expiring soon.
func NewKeepAlive(options ...KeepAliveOption) (*KeepAlive, error) {
	k := KeepAlive{}
	for _, opt := range options {
		err := opt(&k)
		if err != nil {
			return nil, err
		}
	}
	if k.ExpiryMargin <= 0 {
		return nil, fmt.Errorf("invalid value for ExpiryMargin (%v)", k.ExpiryMargin)
	}
	if k.session == nil {
		return nil, fmt.Errorf("session is not initialized")
	}
	if k.refresh == nil {
		return nil, fmt.Errorf("refresh function is not initialized")
	}
	return &k, nil
}
