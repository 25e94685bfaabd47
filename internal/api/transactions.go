package api

import (
	"context"
	"net/http"

	"github.com/globobank/frauddesk/internal/models"
)

// Transactions lists transactions with pagination and optional filters.
func (c *Client) Transactions(ctx context.Context, p ListParams) ([]models.Transaction, *models.Pagination, error) {
	return readEnveloped[[]models.Transaction](ctx, c, TransactionListKey(p), DefaultFreshness,
		http.MethodGet, "/transactions", p.values(), nil)
}

// Transaction fetches a single transaction by ID.
func (c *Client) Transaction(ctx context.Context, id string) (models.Transaction, error) {
	tx, _, err := readEnveloped[models.Transaction](ctx, c, TransactionDetailKey(id), DefaultFreshness,
		http.MethodGet, "/transactions/"+id, nil, nil)
	return tx, err
}

// FlaggedTransactions lists every transaction currently flagged for review.
func (c *Client) FlaggedTransactions(ctx context.Context) ([]models.Transaction, error) {
	txs, _, err := readEnveloped[[]models.Transaction](ctx, c, TransactionFlaggedKey(), VolatileFreshness,
		http.MethodGet, "/transactions/flagged", nil, nil)
	return txs, err
}

// FlagTransaction marks a transaction as suspicious with the given reasons.
func (c *Client) FlagTransaction(ctx context.Context, id string, reasons []string) (models.Transaction, error) {
	return writeEnveloped[models.Transaction](ctx, c, http.MethodPost, "/transactions/"+id+"/flag",
		models.FlagTransactionInput{Reasons: reasons}, FamilyTransactions, FamilyDashboard)
}

// DashboardStats fetches the aggregate numbers for the dashboard page.
func (c *Client) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	stats, _, err := readEnveloped[models.DashboardStats](ctx, c, DashboardStatsKey(), VolatileFreshness,
		http.MethodGet, "/dashboard/stats", nil, nil)
	return stats, err
}
