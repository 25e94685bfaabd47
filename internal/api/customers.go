package api

import (
	"context"
	"net/http"

	"github.com/globobank/frauddesk/internal/models"
)

// Customers lists customers with pagination.
func (c *Client) Customers(ctx context.Context, p ListParams) ([]models.Customer, *models.Pagination, error) {
	return readEnveloped[[]models.Customer](ctx, c, CustomerListKey(p), DefaultFreshness,
		http.MethodGet, "/customers", p.values(), nil)
}

// Customer fetches a single customer by ID.
func (c *Client) Customer(ctx context.Context, id string) (models.Customer, error) {
	cust, _, err := readEnveloped[models.Customer](ctx, c, CustomerDetailKey(id), DefaultFreshness,
		http.MethodGet, "/customers/"+id, nil, nil)
	return cust, err
}

// SearchCustomers runs a free-text customer search. Search results age out
// faster than other reads.
func (c *Client) SearchCustomers(ctx context.Context, input models.CustomerSearchInput) ([]models.Customer, *models.Pagination, error) {
	return readEnveloped[[]models.Customer](ctx, c, CustomerSearchKey(input.Query, input.Page, input.Limit), VolatileFreshness,
		http.MethodPost, "/customers/search", nil, input)
}

// CustomerFraudCases lists the fraud cases opened against one customer.
func (c *Client) CustomerFraudCases(ctx context.Context, customerID string) ([]models.FraudCase, error) {
	cases, _, err := readEnveloped[[]models.FraudCase](ctx, c, CustomerCasesKey(customerID), DefaultFreshness,
		http.MethodGet, "/customers/"+customerID+"/fraud-cases", nil, nil)
	return cases, err
}

// CustomerTransactions lists the transactions of one customer.
func (c *Client) CustomerTransactions(ctx context.Context, customerID string) ([]models.Transaction, error) {
	txs, _, err := readEnveloped[[]models.Transaction](ctx, c, CustomerTransactionsKey(customerID), DefaultFreshness,
		http.MethodGet, "/customers/"+customerID+"/transactions", nil, nil)
	return txs, err
}
