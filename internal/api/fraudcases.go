package api

import (
	"context"
	"net/http"

	"github.com/globobank/frauddesk/internal/models"
)

// FraudCases lists fraud cases with pagination and optional filters.
func (c *Client) FraudCases(ctx context.Context, p ListParams) ([]models.FraudCase, *models.Pagination, error) {
	return readEnveloped[[]models.FraudCase](ctx, c, FraudCaseListKey(p), DefaultFreshness,
		http.MethodGet, "/fraud-cases", p.values(), nil)
}

// FraudCase fetches a single case by ID.
func (c *Client) FraudCase(ctx context.Context, id string) (models.FraudCase, error) {
	fc, _, err := readEnveloped[models.FraudCase](ctx, c, FraudCaseDetailKey(id), DefaultFreshness,
		http.MethodGet, "/fraud-cases/"+id, nil, nil)
	return fc, err
}

// CreateFraudCase opens a new case and invalidates the family so list
// reads immediately observe it.
func (c *Client) CreateFraudCase(ctx context.Context, input models.CreateFraudCaseInput) (models.FraudCase, error) {
	return writeEnveloped[models.FraudCase](ctx, c, http.MethodPost, "/fraud-cases", input,
		FamilyFraudCases, FamilyDashboard)
}

// UpdateFraudCase applies the non-zero fields of input to the case.
func (c *Client) UpdateFraudCase(ctx context.Context, id string, input models.UpdateFraudCaseInput) (models.FraudCase, error) {
	return writeEnveloped[models.FraudCase](ctx, c, http.MethodPut, "/fraud-cases/"+id, input,
		FamilyFraudCases, FamilyDashboard)
}

// DeleteFraudCase removes the case.
func (c *Client) DeleteFraudCase(ctx context.Context, id string) error {
	_, err := c.write(ctx, http.MethodDelete, "/fraud-cases/"+id, nil, FamilyFraudCases, FamilyDashboard)
	return err
}

// AssignFraudCase assigns the case to an analyst.
func (c *Client) AssignFraudCase(ctx context.Context, id, analystID string) (models.FraudCase, error) {
	return writeEnveloped[models.FraudCase](ctx, c, http.MethodPost, "/fraud-cases/"+id+"/assign",
		models.AssignFraudCaseInput{AnalystID: analystID}, FamilyFraudCases)
}

// ResolveFraudCase records the case outcome and closes it.
func (c *Client) ResolveFraudCase(ctx context.Context, id string, input models.ResolveFraudCaseInput) (models.FraudCase, error) {
	return writeEnveloped[models.FraudCase](ctx, c, http.MethodPost, "/fraud-cases/"+id+"/resolve", input,
		FamilyFraudCases, FamilyDashboard)
}
