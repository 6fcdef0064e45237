package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type notificationsCmd struct {
	email     bool
	reminders bool
	alerts    bool
	days      int
}

func (*notificationsCmd) Name() string     { return "notifications" }
func (*notificationsCmd) Synopsis() string { return "show or change notification preferences" }
func (*notificationsCmd) Usage() string {
	return `folioview notifications [-email <bool>] [-reminders <bool>] [-alerts <bool>] [-days <n>]

  Without flags, shows the current notification preferences. Flags that are
  set change only the corresponding preference, the rest stay as they are.
`
}

func (c *notificationsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.email, "email", false, "Enable or disable email notifications")
	f.BoolVar(&c.reminders, "reminders", false, "Enable or disable calendar event reminders")
	f.BoolVar(&c.alerts, "alerts", false, "Enable or disable price alerts")
	f.IntVar(&c.days, "days", 0, "Days before an event to send the reminder")
}

func (c *notificationsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	preferences, err := app.client.NotificationPreferences(ctx)
	if err != nil {
		return fail(err)
	}

	changed := false
	f.Visit(func(set *flag.Flag) {
		changed = true
		switch set.Name {
		case "email":
			preferences.EmailEnabled = c.email
		case "reminders":
			preferences.EventReminders = c.reminders
		case "alerts":
			preferences.PriceAlerts = c.alerts
		case "days":
			preferences.ReminderDaysBefore = c.days
		}
	})
	if changed {
		preferences, err = app.client.UpdateNotificationPreferences(ctx, preferences)
		if err != nil {
			return fail(err)
		}
	}

	fmt.Printf("Email notifications: %v\n", preferences.EmailEnabled)
	fmt.Printf("Event reminders:     %v (%d days before)\n", preferences.EventReminders, preferences.ReminderDaysBefore)
	fmt.Printf("Price alerts:        %v\n", preferences.PriceAlerts)
	return subcommands.ExitSuccess
}
