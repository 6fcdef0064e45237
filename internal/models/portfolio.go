package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Market identifies which market a holding or calendar event belongs to.
type Market string

const (
	MarketIsrael Market = "israel"
	MarketWorld  Market = "world"
)

type Portfolio struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Holding is a single position as reported by the backend. Values are in the
// holding's own currency.
type Holding struct {
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	Market    Market          `json:"market"`
	Quantity  decimal.Decimal `json:"quantity"`
	LastPrice decimal.Decimal `json:"lastPrice"`
	Value     decimal.Decimal `json:"value"`
	Currency  string          `json:"currency"`
}

type Dividend struct {
	Symbol   string          `json:"symbol"`
	Market   Market          `json:"market"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	ExDate   time.Time       `json:"exDate"`
	PayDate  time.Time       `json:"payDate"`
}

// AnalyticsSummary is the server-computed overview of a portfolio.
type AnalyticsSummary struct {
	PortfolioID     string                     `json:"portfolioId"`
	Currency        string                     `json:"currency"`
	TotalValue      decimal.Decimal            `json:"totalValue"`
	TotalCost       decimal.Decimal            `json:"totalCost"`
	GainLoss        decimal.Decimal            `json:"gainLoss"`
	GainLossPercent decimal.Decimal            `json:"gainLossPercent"`
	ValueByMarket   map[Market]decimal.Decimal `json:"valueByMarket"`
}

// HoldingTotals is a local aggregation of holdings, one total per currency.
type HoldingTotals struct {
	Positions  int
	ByCurrency map[string]decimal.Decimal
}

// AggregateHoldings sums holding values per currency. Positions with a zero
// quantity are skipped, they are remnants of fully sold holdings the backend
// still reports.
func AggregateHoldings(holdings []Holding) HoldingTotals {
	totals := HoldingTotals{ByCurrency: map[string]decimal.Decimal{}}
	for _, h := range holdings {
		if h.Quantity.IsZero() {
			continue
		}
		totals.Positions++
		totals.ByCurrency[h.Currency] = totals.ByCurrency[h.Currency].Add(h.Value)
	}
	return totals
}
