package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/folioview/folioview-cli/internal/refresher"
	"github.com/google/subcommands"
)

type keepAliveCmd struct{}

func (*keepAliveCmd) Name() string { return "keepalive" }
func (*keepAliveCmd) Synopsis() string {
	return "keep the stored token pair fresh in the foreground"
}
func (*keepAliveCmd) Usage() string {
	return `folioview keepalive

  Runs in the foreground and rotates the stored token pair shortly before
  the access token expires, so other commands and dashboards sharing the
  session store never hit an expired token. Requires session.keepalive to
  be enabled in the configuration.
`
}

func (c *keepAliveCmd) SetFlags(f *flag.FlagSet) {}

func (c *keepAliveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	if !app.config.Session.KeepAlive.Enabled {
		fmt.Fprintln(os.Stderr, "Error: session.keepalive is not enabled in the configuration")
		return subcommands.ExitUsageError
	}
	keepAlive, err := refresher.NewKeepAlive(
		refresher.WithConfig(app.config.Session.KeepAlive),
		refresher.WithSession(app.client.Session()),
		refresher.WithRefreshFunc(app.client.RefreshFunc()),
	)
	if err != nil {
		return fail(err)
	}
	scheduler, err := keepAlive.GetScheduler()
	if err != nil {
		return fail(err)
	}
	slog.Info("KEEPALIVE", "message", "starting the keepalive refresher", "expiryMargin", keepAlive.ExpiryMargin)
	scheduler.StartBlocking()
	return subcommands.ExitSuccess
}
