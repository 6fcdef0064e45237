package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/folioview/folioview-cli/internal/api"
	"github.com/folioview/folioview-cli/internal/render"
	"github.com/google/subcommands"
)

type portfoliosCmd struct{}

func (*portfoliosCmd) Name() string     { return "portfolios" }
func (*portfoliosCmd) Synopsis() string { return "list your portfolios" }
func (*portfoliosCmd) Usage() string {
	return `folioview portfolios

  Lists the portfolios of the authenticated account.
`
}

func (c *portfoliosCmd) SetFlags(f *flag.FlagSet) {}

func (c *portfoliosCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	portfolios, err := app.client.ListPortfolios(ctx)
	if err != nil {
		return fail(err)
	}
	if len(portfolios) == 0 {
		fmt.Println("No portfolios.")
		return subcommands.ExitSuccess
	}
	for _, p := range portfolios {
		fmt.Printf("%s  %s (%s)\n", p.ID, p.Name, p.Currency)
	}
	return subcommands.ExitSuccess
}

type createPortfolioCmd struct {
	name     string
	currency string
}

func (*createPortfolioCmd) Name() string     { return "create-portfolio" }
func (*createPortfolioCmd) Synopsis() string { return "create a portfolio" }
func (*createPortfolioCmd) Usage() string {
	return `folioview create-portfolio -name <name> [-currency <code>]

  Creates a portfolio with the given name and reporting currency.
`
}

func (c *createPortfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the new portfolio")
	f.StringVar(&c.currency, "currency", "USD", "Reporting currency for the portfolio")
}

func (c *createPortfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	portfolio, err := app.client.CreatePortfolio(ctx, c.name, c.currency)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Created portfolio %s (%s).\n", portfolio.Name, portfolio.ID)
	return subcommands.ExitSuccess
}

type updatePortfolioCmd struct {
	id       string
	name     string
	currency string
}

func (*updatePortfolioCmd) Name() string     { return "update-portfolio" }
func (*updatePortfolioCmd) Synopsis() string { return "rename a portfolio or change its currency" }
func (*updatePortfolioCmd) Usage() string {
	return `folioview update-portfolio -id <id> -name <name> -currency <code>

  Updates the name and reporting currency of a portfolio.
`
}

func (c *updatePortfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of the portfolio to update")
	f.StringVar(&c.name, "name", "", "New name for the portfolio")
	f.StringVar(&c.currency, "currency", "", "New reporting currency")
}

func (c *updatePortfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	current, err := app.client.GetPortfolio(ctx, c.id)
	if err != nil {
		return fail(err)
	}
	if c.name == "" {
		c.name = current.Name
	}
	if c.currency == "" {
		c.currency = current.Currency
	}
	portfolio, err := app.client.UpdatePortfolio(ctx, c.id, c.name, c.currency)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Updated portfolio %s (%s).\n", portfolio.Name, portfolio.ID)
	return subcommands.ExitSuccess
}

type deletePortfolioCmd struct {
	id string
}

func (*deletePortfolioCmd) Name() string     { return "delete-portfolio" }
func (*deletePortfolioCmd) Synopsis() string { return "delete a portfolio" }
func (*deletePortfolioCmd) Usage() string {
	return `folioview delete-portfolio -id <id>

  Deletes a portfolio and all its transactions. This cannot be undone.
`
}

func (c *deletePortfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of the portfolio to delete")
}

func (c *deletePortfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	err = app.client.DeletePortfolio(ctx, c.id)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted portfolio %s.\n", c.id)
	return subcommands.ExitSuccess
}

type transactionsCmd struct {
	portfolioID string
	page        int
	perPage     int
	all         bool
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "show a portfolio's transactions" }
func (*transactionsCmd) Usage() string {
	return `folioview transactions -portfolio <id> [-page <n>] [-per-page <n>] [-all]

  Shows one page of a portfolio's transactions, or all of them with -all.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolioID, "portfolio", "", "ID of the portfolio")
	f.IntVar(&c.page, "page", 1, "Page to show")
	f.IntVar(&c.perPage, "per-page", 50, "Transactions per page")
	f.BoolVar(&c.all, "all", false, "Walk all pages instead of showing one")
}

func (c *transactionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.portfolioID == "" {
		fmt.Fprintln(os.Stderr, "Error: -portfolio is required")
		return subcommands.ExitUsageError
	}
	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	if c.all {
		transactions, err := app.client.AllTransactions(ctx, c.portfolioID, c.perPage)
		if err != nil {
			return fail(err)
		}
		printMarkdown(render.TransactionsMarkdown(transactions))
		return subcommands.ExitSuccess
	}
	page, err := app.client.ListTransactions(ctx, c.portfolioID, api.PageOptions{Page: c.page, PerPage: c.perPage})
	if err != nil {
		return fail(err)
	}
	printMarkdown(render.TransactionsMarkdown(page.Transactions))
	fmt.Fprintf(os.Stderr, "Page %d of %d (%d total).\n", page.Page, page.TotalPages, page.TotalItems)
	return subcommands.ExitSuccess
}

type analyticsCmd struct {
	portfolioID string
}

func (*analyticsCmd) Name() string     { return "analytics" }
func (*analyticsCmd) Synopsis() string { return "show a portfolio's analytics summary" }
func (*analyticsCmd) Usage() string {
	return `folioview analytics -portfolio <id>

  Shows the server-computed value, cost and gain/loss of a portfolio.
`
}

func (c *analyticsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolioID, "portfolio", "", "ID of the portfolio")
}

func (c *analyticsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.portfolioID == "" {
		fmt.Fprintln(os.Stderr, "Error: -portfolio is required")
		return subcommands.ExitUsageError
	}
	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	summary, err := app.client.PortfolioAnalytics(ctx, c.portfolioID)
	if err != nil {
		return fail(err)
	}
	printMarkdown(render.AnalyticsMarkdown(summary))
	return subcommands.ExitSuccess
}
