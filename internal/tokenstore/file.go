package tokenstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/folioview/folioview-cli/internal/fverrors"
	"github.com/folioview/folioview-cli/internal/models"
)

// FileTokenStore persists the token pair as a JSON file readable only by the
// current user.
type FileTokenStore struct {
	path string
	lock sync.Mutex
}

type storedTokens struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt,omitempty"`
}

func NewFileTokenStore(path string) (*FileTokenStore, error) {
	if path == "" {
		return nil, fmt.Errorf("the token file path is not set")
	}
	return &FileTokenStore{path: path}, nil
}

func (s *FileTokenStore) GetTokenSet(_ context.Context) (models.TokenSet, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.TokenSet{}, fverrors.ErrTokenNotFound
		}
		return models.TokenSet{}, err
	}
	stored := storedTokens{}
	err = json.Unmarshal(raw, &stored)
	if err != nil {
		return models.TokenSet{}, fmt.Errorf("cannot parse the token file %s: %w", s.path, err)
	}
	tokens := models.TokenSet{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		ExpiresAt:    stored.ExpiresAt,
	}
	if tokens.IsZero() {
		return models.TokenSet{}, fverrors.ErrTokenNotFound
	}
	return tokens, nil
}

func (s *FileTokenStore) SetTokenSet(_ context.Context, tokens models.TokenSet) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	err := os.MkdirAll(filepath.Dir(s.path), 0o700)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(storedTokens{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    tokens.ExpiresAt,
	})
	if err != nil {
		return err
	}
	// write-then-rename so a crash never leaves a half-written token file
	tmp := s.path + ".tmp"
	err = os.WriteFile(tmp, raw, 0o600)
	if err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileTokenStore) ClearTokenSet(_ context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
