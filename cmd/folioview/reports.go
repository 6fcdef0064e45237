package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
)

type uploadCmd struct{}

func (*uploadCmd) Name() string     { return "upload" }
func (*uploadCmd) Synopsis() string { return "upload a broker report PDF for extraction" }
func (*uploadCmd) Usage() string {
	return `folioview upload <file.pdf>

  Uploads a broker report. The backend parses it and imports the holdings,
  transactions and dividends it finds.
`
}

func (c *uploadCmd) SetFlags(f *flag.FlagSet) {}

func (c *uploadCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one file argument")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)
	file, err := os.Open(path)
	if err != nil {
		return fail(fmt.Errorf("opening the report failed: %w", err))
	}
	defer file.Close()

	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	extraction, err := app.client.UploadReport(ctx, filepath.Base(path), file)
	if err != nil {
		return fail(err)
	}
	fmt.Printf(
		"Imported %d holdings, %d transactions and %d dividends from %s.\n",
		extraction.Holdings,
		extraction.Transactions,
		extraction.Dividends,
		filepath.Base(path),
	)
	return subcommands.ExitSuccess
}
