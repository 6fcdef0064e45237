package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionBuy      TransactionType = "buy"
	TransactionSell     TransactionType = "sell"
	TransactionDividend TransactionType = "dividend"
	TransactionDeposit  TransactionType = "deposit"
	TransactionWithdraw TransactionType = "withdraw"
)

type Transaction struct {
	ID          string          `json:"id"`
	PortfolioID string          `json:"portfolioId"`
	Symbol      string          `json:"symbol"`
	Market      Market          `json:"market"`
	Type        TransactionType `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Amount      decimal.Decimal `json:"amount"`
	Fees        decimal.Decimal `json:"fees"`
	Currency    string          `json:"currency"`
	Date        time.Time       `json:"date"`
}

// TransactionPage is one page of a portfolio's transaction table.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Page         int           `json:"page"`
	PerPage      int           `json:"perPage"`
	TotalPages   int           `json:"totalPages"`
	TotalItems   int           `json:"totalItems"`
}

// HasNext reports whether another page follows this one.
func (p TransactionPage) HasNext() bool {
	return p.Page < p.TotalPages
}
