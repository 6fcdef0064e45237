// Package api implements the authenticated FolioView API client: bearer
// token attachment, one-shot refresh-and-replay on 401 and typed error
// surfacing for every endpoint the dashboard consumes.
package api

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/folioview/folioview-cli/internal/config"
	"github.com/folioview/folioview-cli/internal/sessions"
	"golang.org/x/time/rate"
)

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	session    *sessions.Session
	limiter    *rate.Limiter
	userAgent  string
}

// Session exposes the session the client acts on, mainly so hosting code can
// hand it to the keepalive refresher.
func (c *Client) Session() *sessions.Session {
	return c.session
}

// RefreshFunc exposes the refresh round-trip so the keepalive refresher can
// rotate the pair through the same endpoint the 401 recovery uses.
func (c *Client) RefreshFunc() sessions.RefreshFunc {
	return c.refreshTokenSet
}

type ClientOption func(*Client) error

func WithConfig(apiConfig config.APIConfig) ClientOption {
	return func(c *Client) error {
		err := apiConfig.Validate()
		if err != nil {
			return err
		}
		c.baseURL = apiConfig.BaseURL
		c.httpClient = &http.Client{Timeout: time.Duration(apiConfig.TimeoutSeconds) * time.Second}
		if apiConfig.RateLimit.Enabled {
			c.limiter = rate.NewLimiter(rate.Limit(apiConfig.RateLimit.Rate), apiConfig.RateLimit.Burst)
		}
		return nil
	}
}

func WithBaseURL(baseURL *url.URL) ClientOption {
	return func(c *Client) error {
		if baseURL == nil {
			return fmt.Errorf("the base URL cannot be nil")
		}
		c.baseURL = baseURL
		return nil
	}
}

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) error {
		c.httpClient = httpClient
		return nil
	}
}

func WithSession(session *sessions.Session) ClientOption {
	return func(c *Client) error {
		c.session = session
		return nil
	}
}

func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) error {
		c.userAgent = userAgent
		return nil
	}
}

func NewClient(options ...ClientOption) (*Client, error) {
	client := Client{}
	for _, opt := range options {
		err := opt(&client)
		if err != nil {
			return nil, err
		}
	}
	if client.baseURL == nil {
		return nil, fmt.Errorf("the base URL is not initialized")
	}
	if client.session == nil {
		return nil, fmt.Errorf("the session is not initialized")
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if client.userAgent == "" {
		client.userAgent = "folioview-cli"
	}
	return &client, nil
}
