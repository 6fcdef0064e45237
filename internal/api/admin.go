package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/folioview/folioview-cli/internal/models"
)

// RefreshPrices asks the backend to pull fresh prices from its feeds.
func (c *Client) RefreshPrices(ctx context.Context) (models.AdminActionResult, error) {
	return c.adminAction(ctx, "/admin/prices/refresh")
}

// RunMigrations triggers pending data migrations on the backend.
func (c *Client) RunMigrations(ctx context.Context) (models.AdminActionResult, error) {
	return c.adminAction(ctx, "/admin/migrations/run")
}

// CrawlLogos triggers the backend's security-logo crawler.
func (c *Client) CrawlLogos(ctx context.Context) (models.AdminActionResult, error) {
	return c.adminAction(ctx, "/admin/logos/crawl")
}

// ResetUserData wipes all portfolio data of a user. There is no undo.
func (c *Client) ResetUserData(ctx context.Context, userID string) (models.AdminActionResult, error) {
	return c.adminAction(ctx, "/admin/users/"+url.PathEscape(userID)+"/reset")
}

func (c *Client) adminAction(ctx context.Context, path string) (models.AdminActionResult, error) {
	output := models.AdminActionResult{}
	err := c.do(ctx, http.MethodPost, path, nil, &output)
	if err != nil {
		return models.AdminActionResult{}, err
	}
	return output, nil
}
