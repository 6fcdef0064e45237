package config

import (
	"fmt"
	"net/url"
)

const SessionStoreMemory string = "memory"
const SessionStoreFile string = "file"
const SessionStoreRedis string = "redis"

type Config struct {
	DebugMode  bool
	API        APIConfig
	Session    SessionConfig
	Redis      RedisConfig
	Monitoring MonitoringConfig
}

type APIConfig struct {
	BaseURL        *url.URL
	TimeoutSeconds int
	RateLimit      RateLimitConfig
}

type RateLimitConfig struct {
	Enabled bool
	Rate    float64
	Burst   int
}

type SessionConfig struct {
	// Store selects where the token pair is persisted between runs:
	// "memory", "file" or "redis".
	Store     string
	TokenFile string
	KeepAlive KeepAliveConfig
}

// KeepAliveConfig controls the background job that refreshes the token pair
// shortly before the access token expires.
type KeepAliveConfig struct {
	Enabled             bool
	ExpiryMarginMinutes int
}

type RedisConfig struct {
	Addresses  []string
	IsSentinel bool
	MasterName string
	Password   RedactedString
	DBIndex    int
	KeyPrefix  string
}

type SentryConfig struct {
	Enabled     bool
	Dsn         RedactedString
	Environment string
	SampleRate  float64
}

type MonitoringConfig struct {
	Sentry SentryConfig
}

func (c *Config) Validate() error {
	err := c.API.Validate()
	if err != nil {
		return err
	}
	err = c.Session.Validate()
	if err != nil {
		return err
	}
	if c.Session.Store == SessionStoreRedis {
		return c.Redis.Validate()
	}
	return nil
}

func (c APIConfig) Validate() error {
	if c.BaseURL == nil {
		return fmt.Errorf("the API base URL is not set")
	}
	if c.BaseURL.Scheme != "http" && c.BaseURL.Scheme != "https" {
		return fmt.Errorf("unsupported API base URL scheme %q", c.BaseURL.Scheme)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid value for TimeoutSeconds (%d)", c.TimeoutSeconds)
	}
	if c.RateLimit.Enabled && c.RateLimit.Rate <= 0 {
		return fmt.Errorf("invalid rate limit (%f)", c.RateLimit.Rate)
	}
	return nil
}

func (c SessionConfig) Validate() error {
	switch c.Store {
	case SessionStoreMemory, SessionStoreRedis:
	case SessionStoreFile:
		if c.TokenFile == "" {
			return fmt.Errorf("the file session store requires a token file path")
		}
	default:
		return fmt.Errorf("unrecognized session store type %q", c.Store)
	}
	if c.KeepAlive.Enabled && c.KeepAlive.ExpiryMarginMinutes <= 0 {
		return fmt.Errorf("invalid value for ExpiryMarginMinutes (%d)", c.KeepAlive.ExpiryMarginMinutes)
	}
	return nil
}

func (c RedisConfig) Validate() error {
	if len(c.Addresses) == 0 {
		return fmt.Errorf("the redis session store requires at least one address")
	}
	if c.IsSentinel && c.MasterName == "" {
		return fmt.Errorf("the sentinel redis setup requires a master name")
	}
	return nil
}
