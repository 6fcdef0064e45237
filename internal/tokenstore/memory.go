package tokenstore

import (
	"context"
	"sync"

	"github.com/folioview/folioview-cli/internal/fverrors"
	"github.com/folioview/folioview-cli/internal/models"
)

// MemoryTokenStore keeps the token pair in memory only. Used in tests and
// for one-shot invocations where persisting credentials is not wanted.
type MemoryTokenStore struct {
	lock   sync.RWMutex
	tokens models.TokenSet
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) GetTokenSet(_ context.Context) (models.TokenSet, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.tokens.IsZero() {
		return models.TokenSet{}, fverrors.ErrTokenNotFound
	}
	return s.tokens, nil
}

func (s *MemoryTokenStore) SetTokenSet(_ context.Context, tokens models.TokenSet) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.tokens = tokens
	return nil
}

func (s *MemoryTokenStore) ClearTokenSet(_ context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.tokens = models.TokenSet{}
	return nil
}
