// Package render turns API payloads into markdown reports for the terminal.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/folioview/folioview-cli/internal/models"
	"github.com/shopspring/decimal"
)

// Terminal renders a markdown report for display in the terminal.
func Terminal(markdown string) (string, error) {
	return glamour.Render(markdown, "auto")
}

// HoldingsMarkdown renders a holdings table with per-currency totals.
func HoldingsMarkdown(market models.Market, holdings []models.Holding) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# Holdings (%s)\n\n", market)
	if len(holdings) == 0 {
		b.WriteString("No holdings.\n")
		return b.String()
	}
	b.WriteString("| Symbol | Name | Quantity | Last price | Value |\n")
	b.WriteString("|--------|------|---------:|-----------:|------:|\n")
	for _, h := range holdings {
		fmt.Fprintf(
			b,
			"| %s | %s | %s | %s | %s |\n",
			h.Symbol,
			h.Name,
			h.Quantity.String(),
			FormatMoney(h.LastPrice, h.Currency),
			FormatMoney(h.Value, h.Currency),
		)
	}
	totals := models.AggregateHoldings(holdings)
	fmt.Fprintf(b, "\n%d positions.\n", totals.Positions)
	currencies := make([]string, 0, len(totals.ByCurrency))
	for currency := range totals.ByCurrency {
		currencies = append(currencies, currency)
	}
	sort.Strings(currencies)
	for _, currency := range currencies {
		fmt.Fprintf(b, "\nTotal (%s): **%s**\n", currency, FormatMoney(totals.ByCurrency[currency], currency))
	}
	return b.String()
}

// AnalyticsMarkdown renders a portfolio's analytics summary.
func AnalyticsMarkdown(summary models.AnalyticsSummary) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# Portfolio %s\n\n", summary.PortfolioID)
	fmt.Fprintf(b, "- Total value: **%s**\n", FormatMoney(summary.TotalValue, summary.Currency))
	fmt.Fprintf(b, "- Total cost: %s\n", FormatMoney(summary.TotalCost, summary.Currency))
	fmt.Fprintf(
		b,
		"- Gain/loss: %s (%s%%)\n",
		FormatMoney(summary.GainLoss, summary.Currency),
		summary.GainLossPercent.StringFixed(2),
	)
	if len(summary.ValueByMarket) > 0 {
		b.WriteString("\n## By market\n\n")
		markets := make([]string, 0, len(summary.ValueByMarket))
		for market := range summary.ValueByMarket {
			markets = append(markets, string(market))
		}
		sort.Strings(markets)
		for _, market := range markets {
			fmt.Fprintf(b, "- %s: %s\n", market, FormatMoney(summary.ValueByMarket[models.Market(market)], summary.Currency))
		}
	}
	return b.String()
}

// TransactionsMarkdown renders a transaction table, oldest first as received.
func TransactionsMarkdown(transactions []models.Transaction) string {
	b := &strings.Builder{}
	b.WriteString("# Transactions\n\n")
	if len(transactions) == 0 {
		b.WriteString("No transactions.\n")
		return b.String()
	}
	b.WriteString("| Date | Type | Symbol | Quantity | Price | Amount | Fees |\n")
	b.WriteString("|------|------|--------|---------:|------:|-------:|-----:|\n")
	for _, tx := range transactions {
		fmt.Fprintf(
			b,
			"| %s | %s | %s | %s | %s | %s | %s |\n",
			tx.Date.Format("2006-01-02"),
			tx.Type,
			tx.Symbol,
			tx.Quantity.String(),
			FormatMoney(tx.Price, tx.Currency),
			FormatMoney(tx.Amount, tx.Currency),
			FormatMoney(tx.Fees, tx.Currency),
		)
	}
	fmt.Fprintf(b, "\n%d transactions.\n", len(transactions))
	return b.String()
}

// DividendsMarkdown renders dividend payouts with their ex and pay dates.
func DividendsMarkdown(market models.Market, dividends []models.Dividend) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# Dividends (%s)\n\n", market)
	if len(dividends) == 0 {
		b.WriteString("No dividends.\n")
		return b.String()
	}
	b.WriteString("| Symbol | Amount | Ex date | Pay date |\n")
	b.WriteString("|--------|-------:|---------|----------|\n")
	for _, d := range dividends {
		fmt.Fprintf(
			b,
			"| %s | %s | %s | %s |\n",
			d.Symbol,
			FormatMoney(d.Amount, d.Currency),
			d.ExDate.Format("2006-01-02"),
			d.PayDate.Format("2006-01-02"),
		)
	}
	return b.String()
}

// CalendarMarkdown renders upcoming calendar events as a list.
func CalendarMarkdown(events []models.CalendarEvent) string {
	b := &strings.Builder{}
	b.WriteString("# Calendar\n\n")
	if len(events) == 0 {
		b.WriteString("No events.\n")
		return b.String()
	}
	for _, e := range events {
		fmt.Fprintf(b, "- %s — %s %s (%s)\n", e.Date.Format("2006-01-02"), e.Symbol, e.Type, e.Market)
	}
	return b.String()
}

// FormatMoney renders an amount with its currency's symbol and fraction
// digits. Unknown currency codes fall back to a plain fixed-point rendering.
func FormatMoney(amount decimal.Decimal, code string) string {
	currency := money.GetCurrency(code)
	if currency == nil {
		return amount.StringFixed(2) + " " + code
	}
	minorUnits := amount.Shift(int32(currency.Fraction)).Round(0).IntPart()
	return money.New(minorUnits, code).Display()
}
