package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type loginCmd struct {
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "sign in and store the issued token pair" }
func (*loginCmd) Usage() string {
	return `folioview login -email <email> [-password <password>]

  Exchanges the credentials for an access/refresh token pair and stores it
  in the configured session store. When -password is omitted it is read
  from stdin.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email address of the account")
	f.StringVar(&c.password, "password", "", "Password, read from stdin when omitted")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.email == "" {
		fmt.Fprintln(os.Stderr, "Error: -email is required")
		return subcommands.ExitUsageError
	}
	if c.password == "" {
		password, err := readPassword()
		if err != nil {
			return fail(err)
		}
		c.password = password
	}

	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	user, err := app.client.Login(ctx, c.email, c.password)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Logged in as %s (%s).\n", user.Name, user.Email)
	return subcommands.ExitSuccess
}

type registerCmd struct {
	name     string
	email    string
	password string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create an account and sign in" }
func (*registerCmd) Usage() string {
	return `folioview register -name <name> -email <email> [-password <password>]

  Creates an account. The backend issues a token pair straight away, so a
  successful register leaves you signed in.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name of the account")
	f.StringVar(&c.email, "email", "", "Email address of the account")
	f.StringVar(&c.password, "password", "", "Password, read from stdin when omitted")
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.email == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -email are required")
		return subcommands.ExitUsageError
	}
	if c.password == "" {
		password, err := readPassword()
		if err != nil {
			return fail(err)
		}
		c.password = password
	}

	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	user, err := app.client.Register(ctx, c.name, c.email, c.password)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Registered and logged in as %s (%s).\n", user.Name, user.Email)
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "discard the stored token pair" }
func (*logoutCmd) Usage() string {
	return `folioview logout

  Clears the stored token pair. Running it while already logged out is fine.
`
}

func (c *logoutCmd) SetFlags(f *flag.FlagSet) {}

func (c *logoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	err = app.client.Logout(ctx)
	if err != nil {
		return fail(err)
	}
	fmt.Println("Logged out.")
	return subcommands.ExitSuccess
}

type whoamiCmd struct{}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "show the currently authenticated account" }
func (*whoamiCmd) Usage() string {
	return `folioview whoami

  Shows the profile of the account behind the stored token pair.
`
}

func (c *whoamiCmd) SetFlags(f *flag.FlagSet) {}

func (c *whoamiCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := newApp()
	if err != nil {
		return fail(err)
	}
	user, err := app.client.Me(ctx)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("%s (%s)\n", user.Name, user.Email)
	if user.IsAdmin {
		fmt.Println("Role: admin")
	}
	return subcommands.ExitSuccess
}

func readPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading the password failed: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("the password cannot be empty")
	}
	return password, nil
}
