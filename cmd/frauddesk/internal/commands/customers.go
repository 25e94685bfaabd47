package commands

import (
	"context"

	"github.com/globobank/frauddesk/internal/api"
	"github.com/globobank/frauddesk/internal/models"
	"github.com/globobank/frauddesk/internal/session"
)

type CustomersCmd struct {
	List         CustomersListCmd         `cmd:"" help:"List customers"`
	Get          CustomersGetCmd          `cmd:"" help:"Show one customer"`
	Search       CustomersSearchCmd       `cmd:"" help:"Search customers by name, email or number"`
	Cases        CustomersCasesCmd        `cmd:"" help:"List a customer's fraud cases"`
	Transactions CustomersTransactionsCmd `cmd:"" help:"List a customer's transactions"`
}

type CustomersListCmd struct {
	Page  int `help:"Page number" default:"1"`
	Limit int `help:"Customers per page" default:"20"`
}

func (c *CustomersListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := buildApp(globals)
	if err != nil {
		return err
	}

	return app.Guard.Protect(ctx, "/customers", nil, func(ctx context.Context, _ session.State) error {
		customers, page, err := app.Client.Customers(ctx, api.ListParams{Page: c.Page, Limit: c.Limit})
		if err != nil {
			return err
		}
		table([]string{"ID", "NUMBER", "NAME", "EMAIL", "RISK", "KYC"}, customerRows(customers))
		pageFooter(page)
		return nil
	})
}

type CustomersGetCmd struct {
	ID string `arg:"" help:"Customer ID"`
}

func (c *CustomersGetCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := buildApp(globals)
	if err != nil {
		return err
	}

	return app.Guard.Protect(ctx, "/customers/"+c.ID, nil, func(ctx context.Context, _ session.State) error {
		cust, err := app.Client.Customer(ctx, c.ID)
		if err != nil {
			return err
		}
		printCustomer(&cust)
		return nil
	})
}

type CustomersSearchCmd struct {
	Query string `arg:"" help:"Search text"`
	Page  int    `help:"Page number" default:"1"`
	Limit int    `help:"Results per page" default:"20"`
}

func (c *CustomersSearchCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := buildApp(globals)
	if err != nil {
		return err
	}

	return app.Guard.Protect(ctx, "/customers/search", nil, func(ctx context.Context, _ session.State) error {
		customers, page, err := app.Client.SearchCustomers(ctx, models.CustomerSearchInput{
			Query: c.Query,
			Page:  c.Page,
			Limit: c.Limit,
		})
		if err != nil {
			return err
		}
		table([]string{"ID", "NUMBER", "NAME", "EMAIL", "RISK", "KYC"}, customerRows(customers))
		pageFooter(page)
		return nil
	})
}

type CustomersCasesCmd struct {
	ID string `arg:"" help:"Customer ID"`
}

func (c *CustomersCasesCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := buildApp(globals)
	if err != nil {
		return err
	}

	return app.Guard.Protect(ctx, "/customers/"+c.ID+"/cases", nil, func(ctx context.Context, _ session.State) error {
		cases, err := app.Client.CustomerFraudCases(ctx, c.ID)
		if err != nil {
			return err
		}
		table([]string{"ID", "CASE", "STATUS", "PRIORITY", "AMOUNT", "ASSIGNED"}, caseRows(cases))
		return nil
	})
}

type CustomersTransactionsCmd struct {
	ID string `arg:"" help:"Customer ID"`
}

func (c *CustomersTransactionsCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := buildApp(globals)
	if err != nil {
		return err
	}

	return app.Guard.Protect(ctx, "/customers/"+c.ID+"/transactions", nil, func(ctx context.Context, _ session.State) error {
		txns, err := app.Client.CustomerTransactions(ctx, c.ID)
		if err != nil {
			return err
		}
		table([]string{"ID", "TXN", "CUSTOMER", "AMOUNT", "STATUS", "RISK"}, transactionRows(txns))
		return nil
	})
}
