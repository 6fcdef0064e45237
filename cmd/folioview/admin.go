package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/folioview/folioview-cli/internal/models"
	"github.com/google/subcommands"
)

// The admin commands all follow the same shape: fire the action, print the
// backend's acknowledgement. The backend rejects them for non-admin accounts.

func printAdminResult(result models.AdminActionResult) {
	fmt.Printf("%s: %s", result.Status, result.Message)
	if result.Affected > 0 {
		fmt.Printf(" (%d affected)", result.Affected)
	}
	fmt.Println()
}

type refreshPricesCmd struct{}

func (*refreshPricesCmd) Name() string     { return "refresh-prices" }
func (*refreshPricesCmd) Synopsis() string { return "trigger a price refresh on the backend" }
func (*refreshPricesCmd) Usage() string {
	return `folioview refresh-prices

  Asks the backend to fetch fresh prices for all tracked securities.
`
}

func (c *refreshPricesCmd) SetFlags(f *flag.FlagSet) {}

func (c *refreshPricesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	result, err := app.client.RefreshPrices(ctx)
	if err != nil {
		return fail(err)
	}
	printAdminResult(result)
	return subcommands.ExitSuccess
}

type migrateCmd struct{}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "run pending database migrations on the backend" }
func (*migrateCmd) Usage() string {
	return `folioview migrate

  Runs the backend's pending database migrations.
`
}

func (c *migrateCmd) SetFlags(f *flag.FlagSet) {}

func (c *migrateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	result, err := app.client.RunMigrations(ctx)
	if err != nil {
		return fail(err)
	}
	printAdminResult(result)
	return subcommands.ExitSuccess
}

type crawlLogosCmd struct{}

func (*crawlLogosCmd) Name() string     { return "crawl-logos" }
func (*crawlLogosCmd) Synopsis() string { return "crawl missing company logos on the backend" }
func (*crawlLogosCmd) Usage() string {
	return `folioview crawl-logos

  Asks the backend to fetch logos for securities that are missing one.
`
}

func (c *crawlLogosCmd) SetFlags(f *flag.FlagSet) {}

func (c *crawlLogosCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	result, err := app.client.CrawlLogos(ctx)
	if err != nil {
		return fail(err)
	}
	printAdminResult(result)
	return subcommands.ExitSuccess
}

type resetUserCmd struct {
	userID string
}

func (*resetUserCmd) Name() string     { return "reset-user" }
func (*resetUserCmd) Synopsis() string { return "wipe a user's portfolios and transactions" }
func (*resetUserCmd) Usage() string {
	return `folioview reset-user -id <user-id>

  Deletes all portfolios, transactions and uploads of a user. This cannot
  be undone.
`
}

func (c *resetUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.userID, "id", "", "ID of the user to reset")
}

func (c *resetUserCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.userID == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	result, err := app.client.ResetUserData(ctx, c.userID)
	if err != nil {
		return fail(err)
	}
	printAdminResult(result)
	return subcommands.ExitSuccess
}
