package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/folioview/folioview-cli/internal/models"
)

// PageOptions selects one page of a paginated listing. Zero values fall back
// to the backend's defaults.
type PageOptions struct {
	Page    int
	PerPage int
}

func (p PageOptions) query() url.Values {
	query := url.Values{}
	if p.Page > 0 {
		query.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		query.Set("perPage", strconv.Itoa(p.PerPage))
	}
	return query
}

// ListTransactions returns one page of a portfolio's transaction table.
func (c *Client) ListTransactions(ctx context.Context, portfolioID string, page PageOptions) (models.TransactionPage, error) {
	output := models.TransactionPage{}
	path := "/portfolios/" + url.PathEscape(portfolioID) + "/transactions"
	err := c.do(ctx, http.MethodGet, path, nil, &output, withQuery(page.query()))
	if err != nil {
		return models.TransactionPage{}, err
	}
	return output, nil
}

// AllTransactions walks every page of a portfolio's transaction table.
func (c *Client) AllTransactions(ctx context.Context, portfolioID string, perPage int) ([]models.Transaction, error) {
	output := []models.Transaction{}
	page := PageOptions{Page: 1, PerPage: perPage}
	for {
		result, err := c.ListTransactions(ctx, portfolioID, page)
		if err != nil {
			return nil, err
		}
		output = append(output, result.Transactions...)
		if !result.HasNext() {
			return output, nil
		}
		page.Page = result.Page + 1
	}
}
