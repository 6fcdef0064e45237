package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/folioview/folioview-cli/internal/models"
)

type portfolioRequest struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

func (c *Client) ListPortfolios(ctx context.Context) ([]models.Portfolio, error) {
	output := []models.Portfolio{}
	err := c.do(ctx, http.MethodGet, "/portfolios", nil, &output)
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (c *Client) GetPortfolio(ctx context.Context, portfolioID string) (models.Portfolio, error) {
	output := models.Portfolio{}
	err := c.do(ctx, http.MethodGet, "/portfolios/"+url.PathEscape(portfolioID), nil, &output)
	if err != nil {
		return models.Portfolio{}, err
	}
	return output, nil
}

func (c *Client) CreatePortfolio(ctx context.Context, name string, currency string) (models.Portfolio, error) {
	output := models.Portfolio{}
	err := c.do(ctx, http.MethodPost, "/portfolios", portfolioRequest{Name: name, Currency: currency}, &output)
	if err != nil {
		return models.Portfolio{}, err
	}
	return output, nil
}

func (c *Client) UpdatePortfolio(ctx context.Context, portfolioID string, name string, currency string) (models.Portfolio, error) {
	output := models.Portfolio{}
	err := c.do(ctx, http.MethodPut, "/portfolios/"+url.PathEscape(portfolioID), portfolioRequest{Name: name, Currency: currency}, &output)
	if err != nil {
		return models.Portfolio{}, err
	}
	return output, nil
}

func (c *Client) DeletePortfolio(ctx context.Context, portfolioID string) error {
	return c.do(ctx, http.MethodDelete, "/portfolios/"+url.PathEscape(portfolioID), nil, nil)
}
