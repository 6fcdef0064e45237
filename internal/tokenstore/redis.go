package tokenstore

import (
	"context"
	"fmt"
	"time"

	"github.com/folioview/folioview-cli/internal/config"
	"github.com/folioview/folioview-cli/internal/fverrors"
	"github.com/folioview/folioview-cli/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	accessTokenField  string = "accessToken"
	refreshTokenField string = "refreshToken"
	expiresAtField    string = "expiresAt"
)

// LimitedRedisClient is the subset of the redis client the store needs.
type LimitedRedisClient interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	HSet(ctx context.Context, key string, values ...any) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisTokenStore persists the token pair in a redis hash. Meant for shared
// setups where several workers act on behalf of the same dashboard account.
type RedisTokenStore struct {
	rdb LimitedRedisClient
	key string
}

func (s *RedisTokenStore) GetTokenSet(ctx context.Context) (models.TokenSet, error) {
	raw, err := s.rdb.HGetAll(ctx, s.key).Result()
	if err != nil {
		return models.TokenSet{}, err
	}
	// HGetAll returns an empty map when the key is not present
	if len(raw) == 0 {
		return models.TokenSet{}, fverrors.ErrTokenNotFound
	}
	tokens := models.TokenSet{
		AccessToken:  raw[accessTokenField],
		RefreshToken: raw[refreshTokenField],
	}
	if rawExpiry := raw[expiresAtField]; rawExpiry != "" {
		expiresAt, err := time.Parse(time.RFC3339, rawExpiry)
		if err != nil {
			return models.TokenSet{}, fmt.Errorf("cannot parse the stored token expiry: %w", err)
		}
		tokens.ExpiresAt = expiresAt
	}
	if tokens.IsZero() {
		return models.TokenSet{}, fverrors.ErrTokenNotFound
	}
	return tokens, nil
}

func (s *RedisTokenStore) SetTokenSet(ctx context.Context, tokens models.TokenSet) error {
	values := []any{
		accessTokenField, tokens.AccessToken,
		refreshTokenField, tokens.RefreshToken,
	}
	if !tokens.ExpiresAt.IsZero() {
		values = append(values, expiresAtField, tokens.ExpiresAt.UTC().Format(time.RFC3339))
	}
	return s.rdb.HSet(ctx, s.key, values...).Err()
}

func (s *RedisTokenStore) ClearTokenSet(ctx context.Context) error {
	return s.rdb.Del(ctx, s.key).Err()
}

type RedisTokenStoreOption func(*RedisTokenStore) error

func WithRedisConfig(redisConfig config.RedisConfig) RedisTokenStoreOption {
	return func(s *RedisTokenStore) error {
		if len(redisConfig.Addresses) == 0 {
			return fmt.Errorf("the redis config has no addresses")
		}
		if redisConfig.IsSentinel {
			s.rdb = redis.NewFailoverClient(&redis.FailoverOptions{
				MasterName:       redisConfig.MasterName,
				SentinelAddrs:    redisConfig.Addresses,
				Password:         string(redisConfig.Password),
				DB:               redisConfig.DBIndex,
				SentinelPassword: string(redisConfig.Password),
			})
		} else {
			s.rdb = redis.NewClient(&redis.Options{
				Addr:     redisConfig.Addresses[0],
				Password: string(redisConfig.Password),
				DB:       redisConfig.DBIndex,
			})
		}
		s.key = redisConfig.KeyPrefix + ":tokens"
		return nil
	}
}

// WithRedisClient overrides the redis client, used in tests.
func WithRedisClient(rdb LimitedRedisClient, key string) RedisTokenStoreOption {
	return func(s *RedisTokenStore) error {
		s.rdb = rdb
		s.key = key
		return nil
	}
}

func NewRedisTokenStore(options ...RedisTokenStoreOption) (*RedisTokenStore, error) {
	store := RedisTokenStore{}
	for _, opt := range options {
		err := opt(&store)
		if err != nil {
			return nil, err
		}
	}
	if store.rdb == nil {
		return nil, fmt.Errorf("redis client is not initialized")
	}
	if store.key == "" {
		return nil, fmt.Errorf("the redis token key is not set")
	}
	return &store, nil
}
