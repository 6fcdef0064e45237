package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/folioview/folioview-cli/internal/models"
)

// PortfolioAnalytics returns the server-computed analytics summary of a
// portfolio.
func (c *Client) PortfolioAnalytics(ctx context.Context, portfolioID string) (models.AnalyticsSummary, error) {
	output := models.AnalyticsSummary{}
	path := "/portfolios/" + url.PathEscape(portfolioID) + "/analytics"
	err := c.do(ctx, http.MethodGet, path, nil, &output)
	if err != nil {
		return models.AnalyticsSummary{}, err
	}
	return output, nil
}
