package main

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/globobank/frauddesk/cmd/frauddesk/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		Login        commands.LoginCmd        `cmd:"" help:"Sign in to the fraud desk"`
		Logout       commands.LogoutCmd       `cmd:"" help:"Sign out and clear the stored session"`
		Whoami       commands.WhoamiCmd       `cmd:"" help:"Show the signed-in user"`
		Dashboard    commands.DashboardCmd    `cmd:"" help:"Show the fraud dashboard"`
		Cases        commands.CasesCmd        `cmd:"" help:"Work with fraud cases"`
		Customers    commands.CustomersCmd    `cmd:"" help:"Look up customers"`
		Transactions commands.TransactionsCmd `cmd:"" help:"Review transactions"`

		Config  string `help:"Path to the config file" default:""`
		Debug   bool   `help:"Enable debug mode."`
		Version kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version, Config: cli.Config})
	cmd.FatalIfErrorf(err)
}
