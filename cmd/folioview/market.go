package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/folioview/folioview-cli/internal/models"
	"github.com/folioview/folioview-cli/internal/render"
	"github.com/google/subcommands"
)

type holdingsCmd struct {
	market string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "show your holdings in a market" }
func (*holdingsCmd) Usage() string {
	return `folioview holdings -market <israel|world>

  Shows your positions in the given market with per-currency totals.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.market, "market", string(models.MarketWorld), "Market to show: israel or world")
}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, err := parseMarket(c.market)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	holdings, err := app.client.Holdings(ctx, market)
	if err != nil {
		return fail(err)
	}
	printMarkdown(render.HoldingsMarkdown(market, holdings))
	return subcommands.ExitSuccess
}

type marketTransactionsCmd struct {
	market string
}

func (*marketTransactionsCmd) Name() string { return "market-transactions" }
func (*marketTransactionsCmd) Synopsis() string {
	return "show your stock transactions in a market"
}
func (*marketTransactionsCmd) Usage() string {
	return `folioview market-transactions -market <israel|world>

  Shows your stock transactions in the given market across all portfolios.
`
}

func (c *marketTransactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.market, "market", string(models.MarketWorld), "Market to show: israel or world")
}

func (c *marketTransactionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, err := parseMarket(c.market)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	transactions, err := app.client.StockTransactions(ctx, market)
	if err != nil {
		return fail(err)
	}
	printMarkdown(render.TransactionsMarkdown(transactions))
	return subcommands.ExitSuccess
}

type dividendsCmd struct {
	market string
}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "show dividends paid in a market" }
func (*dividendsCmd) Usage() string {
	return `folioview dividends -market <israel|world>

  Shows the dividends of your holdings in the given market.
`
}

func (c *dividendsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.market, "market", string(models.MarketWorld), "Market to show: israel or world")
}

func (c *dividendsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, err := parseMarket(c.market)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	dividends, err := app.client.Dividends(ctx, market)
	if err != nil {
		return fail(err)
	}
	printMarkdown(render.DividendsMarkdown(market, dividends))
	return subcommands.ExitSuccess
}

type calendarCmd struct {
	from   string
	to     string
	market string
	types  string
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "show upcoming market events" }
func (*calendarCmd) Usage() string {
	return `folioview calendar [-from <date>] [-to <date>] [-market <israel|world>] [-types <list>]

  Shows earnings, dividend, split and meeting events for your holdings.
  Dates use the YYYY-MM-DD format, -types takes a comma-separated list.
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", time.Now().UTC().Format("2006-01-02"), "First day of the range")
	f.StringVar(&c.to, "to", time.Now().UTC().AddDate(0, 1, 0).Format("2006-01-02"), "Last day of the range")
	f.StringVar(&c.market, "market", "", "Only show events from this market")
	f.StringVar(&c.types, "types", "", "Only show these event types, e.g. earnings,dividend")
}

func (c *calendarCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := c.filter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	events, err := app.client.CalendarEvents(ctx, filter)
	if err != nil {
		return fail(err)
	}
	printMarkdown(render.CalendarMarkdown(events))
	return subcommands.ExitSuccess
}

func (c *calendarCmd) filter() (models.EventFilter, error) {
	from, err := time.Parse("2006-01-02", c.from)
	if err != nil {
		return models.EventFilter{}, fmt.Errorf("parsing -from failed: %w", err)
	}
	to, err := time.Parse("2006-01-02", c.to)
	if err != nil {
		return models.EventFilter{}, fmt.Errorf("parsing -to failed: %w", err)
	}
	filter := models.EventFilter{From: from, To: to.AddDate(0, 0, 1)}
	if c.market != "" {
		market, err := parseMarket(c.market)
		if err != nil {
			return models.EventFilter{}, err
		}
		filter.Market = market
	}
	if c.types != "" {
		for _, value := range strings.Split(c.types, ",") {
			switch eventType := models.EventType(strings.TrimSpace(value)); eventType {
			case models.EventEarnings, models.EventDividend, models.EventSplit, models.EventMeeting:
				filter.Types = append(filter.Types, eventType)
			default:
				return models.EventFilter{}, fmt.Errorf("unrecognized event type %q", value)
			}
		}
	}
	return filter, nil
}
