package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"

	"github.com/google/subcommands"
)

var logLevel = &slog.LevelVar{}

// Logs go to stderr, stdout is reserved for the rendered reports.
var jsonLogger *slog.Logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

func main() {
	slog.SetDefault(jsonLogger)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(subcommands.HelpCommand(), "")
	commander.Register(subcommands.FlagsCommand(), "")
	commander.Register(subcommands.CommandsCommand(), "")

	commander.Register(&loginCmd{}, "auth")
	commander.Register(&registerCmd{}, "auth")
	commander.Register(&logoutCmd{}, "auth")
	commander.Register(&whoamiCmd{}, "auth")

	commander.Register(&portfoliosCmd{}, "portfolios")
	commander.Register(&createPortfolioCmd{}, "portfolios")
	commander.Register(&updatePortfolioCmd{}, "portfolios")
	commander.Register(&deletePortfolioCmd{}, "portfolios")
	commander.Register(&transactionsCmd{}, "portfolios")
	commander.Register(&analyticsCmd{}, "portfolios")

	commander.Register(&holdingsCmd{}, "markets")
	commander.Register(&marketTransactionsCmd{}, "markets")
	commander.Register(&dividendsCmd{}, "markets")
	commander.Register(&calendarCmd{}, "markets")

	commander.Register(&uploadCmd{}, "reports")

	commander.Register(&notificationsCmd{}, "account")
	commander.Register(&keepAliveCmd{}, "account")

	commander.Register(&refreshPricesCmd{}, "admin")
	commander.Register(&migrateCmd{}, "admin")
	commander.Register(&crawlLogosCmd{}, "admin")
	commander.Register(&resetUserCmd{}, "admin")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
