package commands

import (
	"context"
	"fmt"

	"github.com/globobank/frauddesk/internal/api"
	"github.com/globobank/frauddesk/internal/models"
	"github.com/globobank/frauddesk/internal/session"
)

// Role floors mirroring the server's: destructive case operations are
// guarded before any request goes out.
var (
	resolveRoles = []models.Role{models.RoleSeniorAnalyst, models.RoleManager, models.RoleAdmin}
	deleteRoles  = []models.Role{models.RoleAdmin}
)

type CasesCmd struct {
	List    CasesListCmd    `cmd:"" help:"List fraud cases"`
	Get     CasesGetCmd     `cmd:"" help:"Show one fraud case"`
	Create  CasesCreateCmd  `cmd:"" help:"Open a new fraud case"`
	Assign  CasesAssignCmd  `cmd:"" help:"Assign a case to an analyst"`
	Resolve CasesResolveCmd `cmd:"" help:"Resolve a case with an outcome"`
	Delete  CasesDeleteCmd  `cmd:"" help:"Delete a case"`
}

type CasesListCmd struct {
	Status     string `help:"Filter by status (PENDING, UNDER_REVIEW, INVESTIGATING, RESOLVED, CLOSED, ESCALATED)" default:""`
	Priority   string `help:"Filter by priority (LOW, MEDIUM, HIGH, CRITICAL)" default:""`
	AssignedTo string `help:"Filter by assigned analyst ID" default:""`
	Page       int    `help:"Page number" default:"1"`
	Limit      int    `help:"Cases per page" default:"20"`
}

func (c *CasesListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := buildApp(globals)
	if err != nil {
		return err
	}

	return app.Guard.Protect(ctx, "/cases", nil, func(ctx context.Context, _ session.State) error {
		cases, page, err := app.Client.FraudCases(ctx, api.ListParams{
			Page:       c.Page,
			Limit:      c.Limit,
			Status:     c.Status,
			Priority:   c.Priority,
			AssignedTo: c.AssignedTo,
		})
		if err != nil {
			return err
		}

		table([]string{"ID", "CASE", "STATUS", "PRIORITY", "AMOUNT", "ASSIGNED"}, caseRows(cases))
		pageFooter(page)
		return nil
	})
}

type CasesGetCmd struct {
	ID string `arg:"" help:"Case ID"`
}

func (c *CasesGetCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := buildApp(globals)
	if err != nil {
		return err
	}

	return app.Guard.Protect(ctx, "/cases/"+c.ID, nil, func(ctx context.Context, _ session.State) error {
		fc, err := app.Client.FraudCase(ctx, c.ID)
		if err != nil {
			return err
		}
		printCase(&fc)
		return nil
	})
}

type CasesCreateCmd struct {
	Customer    string   `help:"Customer ID the case is about" required:""`
	Amount      float64  `help:"Total amount at risk" required:""`
	Description string   `help:"What happened" required:""`
	Priority    string   `help:"Priority (LOW, MEDIUM, HIGH, CRITICAL)" default:"MEDIUM"`
	Risk        string   `help:"Risk level (LOW, MEDIUM, HIGH, VERY_HIGH)" default:"MEDIUM"`
	Currency    string   `help:"Currency code" default:"USD"`
	Tags        []string `help:"Tags for triage" default:""`
}

func (c *CasesCreateCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := buildApp(globals)
	if err != nil {
		return err
	}

	return app.Guard.Protect(ctx, "/cases/new", nil, func(ctx context.Context, _ session.State) error {
		fc, err := app.Client.CreateFraudCase(ctx, models.CreateFraudCaseInput{
			CustomerID:  c.Customer,
			Priority:    models.Priority(c.Priority),
			RiskLevel:   models.RiskLevel(c.Risk),
			TotalAmount: c.Amount,
			Currency:    c.Currency,
			Description: c.Description,
			Tags:        c.Tags,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Opened case %s (%s)\n", fc.CaseNumber, fc.ID)
		return nil
	})
}

type CasesAssignCmd struct {
	ID      string `arg:"" help:"Case ID"`
	Analyst string `help:"Analyst user ID" required:""`
}

func (c *CasesAssignCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := buildApp(globals)
	if err != nil {
		return err
	}

	return app.Guard.Protect(ctx, "/cases/"+c.ID+"/assign", nil, func(ctx context.Context, _ session.State) error {
		fc, err := app.Client.AssignFraudCase(ctx, c.ID, c.Analyst)
		if err != nil {
			return err
		}
		fmt.Printf("Case %s assigned to %s (%s)\n", fc.CaseNumber, fc.AssignedTo, fc.Status)
		return nil
	})
}

type CasesResolveCmd struct {
	ID      string `arg:"" help:"Case ID"`
	Outcome string `help:"Outcome (FRAUD_CONFIRMED, FALSE_POSITIVE, INSUFFICIENT_EVIDENCE, CUSTOMER_VERIFIED, ACCOUNT_COMPROMISED)" required:""`
	Reason  string `help:"Why this outcome" required:""`
}

func (c *CasesResolveCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := buildApp(globals)
	if err != nil {
		return err
	}

	return app.Guard.Protect(ctx, "/cases/"+c.ID+"/resolve", resolveRoles, func(ctx context.Context, _ session.State) error {
		fc, err := app.Client.ResolveFraudCase(ctx, c.ID, models.ResolveFraudCaseInput{
			Outcome: models.ResolutionOutcome(c.Outcome),
			Reason:  c.Reason,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Case %s resolved as %s\n", fc.CaseNumber, fc.Resolution.Outcome)
		return nil
	})
}

type CasesDeleteCmd struct {
	ID string `arg:"" help:"Case ID"`
}

func (c *CasesDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := buildApp(globals)
	if err != nil {
		return err
	}

	return app.Guard.Protect(ctx, "/cases/"+c.ID+"/delete", deleteRoles, func(ctx context.Context, _ session.State) error {
		if err := app.Client.DeleteFraudCase(ctx, c.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted case %s\n", c.ID)
		return nil
	})
}
