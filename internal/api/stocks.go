package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/folioview/folioview-cli/internal/models"
)

// marketPath maps a market to its URL segment. The backend keeps the
// Israeli-stock and world-stock surfaces separate because they come from
// different data pipelines.
func marketPath(market models.Market) (string, error) {
	switch market {
	case models.MarketIsrael:
		return "/israeli-stocks", nil
	case models.MarketWorld:
		return "/world-stocks", nil
	default:
		return "", fmt.Errorf("unrecognized market %q", market)
	}
}

func (c *Client) Holdings(ctx context.Context, market models.Market) ([]models.Holding, error) {
	base, err := marketPath(market)
	if err != nil {
		return nil, err
	}
	output := []models.Holding{}
	err = c.do(ctx, http.MethodGet, base+"/holdings", nil, &output)
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (c *Client) StockTransactions(ctx context.Context, market models.Market) ([]models.Transaction, error) {
	base, err := marketPath(market)
	if err != nil {
		return nil, err
	}
	output := []models.Transaction{}
	err = c.do(ctx, http.MethodGet, base+"/transactions", nil, &output)
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (c *Client) Dividends(ctx context.Context, market models.Market) ([]models.Dividend, error) {
	base, err := marketPath(market)
	if err != nil {
		return nil, err
	}
	output := []models.Dividend{}
	err = c.do(ctx, http.MethodGet, base+"/dividends", nil, &output)
	if err != nil {
		return nil, err
	}
	return output, nil
}
