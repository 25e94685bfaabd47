package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/globobank/frauddesk/internal/api"
	"github.com/globobank/frauddesk/internal/session"
)

type TransactionsCmd struct {
	List    TransactionsListCmd    `cmd:"" help:"List transactions"`
	Get     TransactionsGetCmd     `cmd:"" help:"Show one transaction"`
	Flagged TransactionsFlaggedCmd `cmd:"" help:"List transactions flagged for review"`
	Flag    TransactionsFlagCmd    `cmd:"" help:"Flag a transaction as suspicious"`
}

type TransactionsListCmd struct {
	Page  int `help:"Page number" default:"1"`
	Limit int `help:"Transactions per page" default:"20"`
}

func (t *TransactionsListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := buildApp(globals)
	if err != nil {
		return err
	}

	return app.Guard.Protect(ctx, "/transactions", nil, func(ctx context.Context, _ session.State) error {
		txns, page, err := app.Client.Transactions(ctx, api.ListParams{Page: t.Page, Limit: t.Limit})
		if err != nil {
			return err
		}
		table([]string{"ID", "TXN", "CUSTOMER", "AMOUNT", "STATUS", "RISK"}, transactionRows(txns))
		pageFooter(page)
		return nil
	})
}

type TransactionsGetCmd struct {
	ID string `arg:"" help:"Transaction ID"`
}

func (t *TransactionsGetCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := buildApp(globals)
	if err != nil {
		return err
	}

	return app.Guard.Protect(ctx, "/transactions/"+t.ID, nil, func(ctx context.Context, _ session.State) error {
		tx, err := app.Client.Transaction(ctx, t.ID)
		if err != nil {
			return err
		}
		printTransaction(&tx)
		return nil
	})
}

type TransactionsFlaggedCmd struct{}

func (t *TransactionsFlaggedCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := buildApp(globals)
	if err != nil {
		return err
	}

	return app.Guard.Protect(ctx, "/transactions/flagged", nil, func(ctx context.Context, _ session.State) error {
		txns, err := app.Client.FlaggedTransactions(ctx)
		if err != nil {
			return err
		}
		table([]string{"ID", "TXN", "CUSTOMER", "AMOUNT", "STATUS", "RISK"}, transactionRows(txns))
		return nil
	})
}

type TransactionsFlagCmd struct {
	ID      string   `arg:"" help:"Transaction ID"`
	Reasons []string `help:"Why the transaction is suspicious" required:""`
}

func (t *TransactionsFlagCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := buildApp(globals)
	if err != nil {
		return err
	}

	return app.Guard.Protect(ctx, "/transactions/"+t.ID+"/flag", nil, func(ctx context.Context, _ session.State) error {
		tx, err := app.Client.FlagTransaction(ctx, t.ID, t.Reasons)
		if err != nil {
			return err
		}
		fmt.Printf("Flagged %s: %s\n", tx.TransactionID, strings.Join(tx.FlaggedReasons, "; "))
		return nil
	})
}
