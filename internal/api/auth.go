package api

import (
	"context"
	"net/http"

	"github.com/folioview/folioview-cli/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type tokenPairResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         models.User `json:"user"`
}

// Login exchanges credentials for a token pair, stores the pair in the
// session and returns the authenticated user.
func (c *Client) Login(ctx context.Context, email string, password string) (models.User, error) {
	output := tokenPairResponse{}
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &output, withNoAuth())
	if err != nil {
		return models.User{}, err
	}
	err = c.session.SetTokens(ctx, models.TokenSet{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
	if err != nil {
		return models.User{}, err
	}
	return output.User, nil
}

// Register creates an account and logs it in, the backend issues a token
// pair straight away.
func (c *Client) Register(ctx context.Context, name string, email string, password string) (models.User, error) {
	output := tokenPairResponse{}
	err := c.do(ctx, http.MethodPost, "/auth/register", registerRequest{Name: name, Email: email, Password: password}, &output, withNoAuth())
	if err != nil {
		return models.User{}, err
	}
	err = c.session.SetTokens(ctx, models.TokenSet{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
	if err != nil {
		return models.User{}, err
	}
	return output.User, nil
}

// Me returns the profile of the currently authenticated user.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	output := models.User{}
	err := c.do(ctx, http.MethodGet, "/auth/me", nil, &output)
	if err != nil {
		return models.User{}, err
	}
	return output, nil
}

// Logout discards the stored credentials. Calling it repeatedly is safe,
// clearing an empty store is a no-op.
func (c *Client) Logout(ctx context.Context) error {
	return c.session.Clear(ctx)
}

// refreshTokenSet is the sessions.RefreshFunc of this client. It opts out of
// auth handling so a rejected refresh can never recurse into another refresh.
func (c *Client) refreshTokenSet(ctx context.Context, refreshToken string) (models.TokenSet, error) {
	output := tokenPairResponse{}
	err := c.do(ctx, http.MethodPost, "/auth/refresh", refreshRequest{RefreshToken: refreshToken}, &output, withNoAuth())
	if err != nil {
		return models.TokenSet{}, err
	}
	return models.TokenSet{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}, nil
}
