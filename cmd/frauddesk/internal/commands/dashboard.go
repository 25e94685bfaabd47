package commands

import (
	"context"
	"fmt"

	"github.com/globobank/frauddesk/internal/session"
)

type DashboardCmd struct{}

func (d *DashboardCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := buildApp(globals)
	if err != nil {
		return err
	}

	return app.Guard.Protect(ctx, session.DashboardPath, nil, func(ctx context.Context, st session.State) error {
		stats, err := app.Client.DashboardStats(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Fraud desk, %s\n\n", st.User.FullName())
		fmt.Printf("Open cases            %d\n", stats.OpenCases)
		fmt.Printf("Resolved cases        %d\n", stats.ResolvedCases)
		fmt.Printf("Flagged transactions  %d\n", stats.FlaggedTransactions)
		fmt.Printf("High-risk customers   %d\n", stats.HighRiskCustomers)
		fmt.Printf("Amount at risk        %s\n", money(stats.TotalAmountAtRisk, stats.Currency))
		return nil
	})
}
