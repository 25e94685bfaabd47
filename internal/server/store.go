// Package server is the sample fraud API backend. It serves the same wire
// contract the production gateway does, backed by an in-memory seeded
// dataset, so the CLI and the client package can be exercised end to end
// without bank infrastructure.
package server

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"

	"github.com/globobank/frauddesk/internal/models"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrBadCredentials = errors.New("invalid credentials")
	ErrInactive       = errors.New("account is inactive")
	ErrCaseClosed     = errors.New("case is already resolved")
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// Store holds the seeded dataset behind a single lock. Writes are rare and
// reads are cheap copies, so one RWMutex is plenty.
type Store struct {
	mu sync.RWMutex

	users        map[string]*models.User
	passwords    map[string]string
	usersByEmail map[string]string

	customers map[string]*models.Customer
	cases     map[string]*models.FraudCase
	txns      map[string]*models.Transaction

	// Insertion order for stable list output.
	customerIDs []string
	caseIDs     []string
	txnIDs      []string

	now func() time.Time
}

// NewStore returns a store populated with the demo dataset.
func NewStore() *Store {
	s := &Store{
		users:        make(map[string]*models.User),
		passwords:    make(map[string]string),
		usersByEmail: make(map[string]string),
		customers:    make(map[string]*models.Customer),
		cases:        make(map[string]*models.FraudCase),
		txns:         make(map[string]*models.Transaction),
		now:          time.Now,
	}
	s.seed()
	return s
}

// newCaseNumber builds a short human-quotable case number from fresh UUID
// entropy, e.g. FC-3m5k9QpXwZ.
func newCaseNumber() string {
	id := uuid.New()
	return "FC-" + base58.Encode(id[:8])
}

// Authenticate checks the credentials and records the login time.
func (s *Store) Authenticate(email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.usersByEmail[strings.ToLower(email)]
	if !ok || s.passwords[id] != password {
		return nil, ErrBadCredentials
	}
	user := s.users[id]
	if !user.IsActive {
		return nil, ErrInactive
	}

	now := s.now()
	user.LastLoginAt = &now
	user.UpdatedAt = now

	copied := *user
	return &copied, nil
}

// UserByID returns a copy of the user.
func (s *Store) UserByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// CaseFilter narrows the case list.
type CaseFilter struct {
	Status     models.CaseStatus
	Priority   models.Priority
	AssignedTo string
	CustomerID string
}

func (f CaseFilter) matches(fc *models.FraudCase) bool {
	if f.Status != "" && fc.Status != f.Status {
		return false
	}
	if f.Priority != "" && fc.Priority != f.Priority {
		return false
	}
	if f.AssignedTo != "" && fc.AssignedTo != f.AssignedTo {
		return false
	}
	if f.CustomerID != "" && fc.CustomerID != f.CustomerID {
		return false
	}
	return true
}

// ListCases returns one page of cases matching the filter.
func (s *Store) ListCases(filter CaseFilter, page, limit int) ([]models.FraudCase, models.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.FraudCase, 0, len(s.caseIDs))
	for _, id := range s.caseIDs {
		if fc := s.cases[id]; filter.matches(fc) {
			matched = append(matched, *fc)
		}
	}
	return pageOf(matched, page, limit)
}

// CaseByID returns a copy of one case.
func (s *Store) CaseByID(id string) (*models.FraudCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fc, ok := s.cases[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *fc
	return &copied, nil
}

// CreateCase opens a new pending case reported by the given user.
func (s *Store) CreateCase(in models.CreateFraudCaseInput, reportedBy string) (*models.FraudCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[in.CustomerID]; !ok {
		return nil, ErrNotFound
	}

	now := s.now()
	fc := &models.FraudCase{
		ID:          uuid.NewString(),
		CaseNumber:  newCaseNumber(),
		CustomerID:  in.CustomerID,
		Status:      models.CaseStatusPending,
		Priority:    in.Priority,
		RiskLevel:   in.RiskLevel,
		TotalAmount: in.TotalAmount,
		Currency:    in.Currency,
		Description: in.Description,
		ReportedBy:  reportedBy,
		ReportedAt:  now,
		Tags:        in.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if fc.Priority == "" {
		fc.Priority = models.PriorityMedium
	}
	if fc.RiskLevel == "" {
		fc.RiskLevel = models.RiskMedium
	}
	if fc.Currency == "" {
		fc.Currency = "USD"
	}

	s.cases[fc.ID] = fc
	s.caseIDs = append(s.caseIDs, fc.ID)

	copied := *fc
	return &copied, nil
}

// UpdateCase applies the non-zero fields of the input.
func (s *Store) UpdateCase(id string, in models.UpdateFraudCaseInput) (*models.FraudCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fc, ok := s.cases[id]
	if !ok {
		return nil, ErrNotFound
	}

	if in.Status != "" {
		fc.Status = in.Status
	}
	if in.Priority != "" {
		fc.Priority = in.Priority
	}
	if in.RiskLevel != "" {
		fc.RiskLevel = in.RiskLevel
	}
	if in.Description != "" {
		fc.Description = in.Description
	}
	if in.Tags != nil {
		fc.Tags = in.Tags
	}
	fc.UpdatedAt = s.now()

	copied := *fc
	return &copied, nil
}

// DeleteCase removes the case entirely.
func (s *Store) DeleteCase(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cases[id]; !ok {
		return ErrNotFound
	}
	delete(s.cases, id)
	for i, cid := range s.caseIDs {
		if cid == id {
			s.caseIDs = append(s.caseIDs[:i], s.caseIDs[i+1:]...)
			break
		}
	}
	return nil
}

// AssignCase hands the case to an analyst and moves it under review.
func (s *Store) AssignCase(id, analystID string) (*models.FraudCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fc, ok := s.cases[id]
	if !ok {
		return nil, ErrNotFound
	}
	if _, ok := s.users[analystID]; !ok {
		return nil, ErrNotFound
	}

	fc.AssignedTo = analystID
	if fc.Status == models.CaseStatusPending {
		fc.Status = models.CaseStatusUnderReview
	}
	fc.UpdatedAt = s.now()

	copied := *fc
	return &copied, nil
}

// ResolveCase closes the case with an outcome. A resolved case stays
// resolved; resolving it again is an error.
func (s *Store) ResolveCase(id string, in models.ResolveFraudCaseInput, resolvedBy string) (*models.FraudCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fc, ok := s.cases[id]
	if !ok {
		return nil, ErrNotFound
	}
	if fc.Status == models.CaseStatusResolved || fc.Status == models.CaseStatusClosed {
		return nil, ErrCaseClosed
	}

	now := s.now()
	fc.Status = models.CaseStatusResolved
	fc.ResolvedAt = &now
	fc.Resolution = &models.Resolution{
		Outcome:    in.Outcome,
		Reason:     in.Reason,
		ResolvedBy: resolvedBy,
		ResolvedAt: now,
	}
	fc.UpdatedAt = now

	copied := *fc
	return &copied, nil
}

// ListCustomers returns one page of customers.
func (s *Store) ListCustomers(page, limit int) ([]models.Customer, models.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]models.Customer, 0, len(s.customerIDs))
	for _, id := range s.customerIDs {
		all = append(all, *s.customers[id])
	}
	return pageOf(all, page, limit)
}

// CustomerByID returns a copy of one customer.
func (s *Store) CustomerByID(id string) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *c
	return &copied, nil
}

// SearchCustomers matches the query against name, email and customer number,
// case-insensitively.
func (s *Store) SearchCustomers(query string, page, limit int) ([]models.Customer, models.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	matched := make([]models.Customer, 0)
	for _, id := range s.customerIDs {
		c := s.customers[id]
		haystack := strings.ToLower(c.FirstName + " " + c.LastName + " " + c.Email + " " + c.CustomerID)
		if q == "" || strings.Contains(haystack, q) {
			matched = append(matched, *c)
		}
	}
	return pageOf(matched, page, limit)
}

// CasesByCustomer returns every case referencing the customer.
func (s *Store) CasesByCustomer(customerID string) ([]models.FraudCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.customers[customerID]; !ok {
		return nil, ErrNotFound
	}
	out := make([]models.FraudCase, 0)
	for _, id := range s.caseIDs {
		if fc := s.cases[id]; fc.CustomerID == customerID {
			out = append(out, *fc)
		}
	}
	return out, nil
}

// TransactionsByCustomer returns every transaction of the customer, newest
// first.
func (s *Store) TransactionsByCustomer(customerID string) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.customers[customerID]; !ok {
		return nil, ErrNotFound
	}
	out := make([]models.Transaction, 0)
	for _, id := range s.txnIDs {
		if tx := s.txns[id]; tx.CustomerID == customerID {
			out = append(out, *tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

// ListTransactions returns one page of transactions.
func (s *Store) ListTransactions(page, limit int) ([]models.Transaction, models.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]models.Transaction, 0, len(s.txnIDs))
	for _, id := range s.txnIDs {
		all = append(all, *s.txns[id])
	}
	return pageOf(all, page, limit)
}

// TransactionByID returns a copy of one transaction.
func (s *Store) TransactionByID(id string) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.txns[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *tx
	return &copied, nil
}

// FlaggedTransactions returns every transaction currently marked suspicious
// or blocked.
func (s *Store) FlaggedTransactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Transaction, 0)
	for _, id := range s.txnIDs {
		if tx := s.txns[id]; len(tx.FlaggedReasons) > 0 {
			out = append(out, *tx)
		}
	}
	return out
}

// FlagTransaction marks the transaction suspicious with the given reasons.
// Reasons accumulate across flags.
func (s *Store) FlagTransaction(id string, reasons []string) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.txns[id]
	if !ok {
		return nil, ErrNotFound
	}

	tx.FlaggedReasons = append(tx.FlaggedReasons, reasons...)
	tx.Status = models.TransactionSuspicious
	if tx.RiskScore < 75 {
		tx.RiskScore = 75
	}
	tx.RiskLevel = models.RiskHigh
	tx.UpdatedAt = s.now()

	copied := *tx
	return &copied, nil
}

// Stats aggregates the dashboard numbers from the live dataset.
func (s *Store) Stats() models.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.DashboardStats{Currency: "USD"}
	for _, id := range s.caseIDs {
		fc := s.cases[id]
		switch fc.Status {
		case models.CaseStatusResolved, models.CaseStatusClosed:
			stats.ResolvedCases++
		default:
			stats.OpenCases++
			stats.TotalAmountAtRisk += fc.TotalAmount
		}
	}
	for _, id := range s.txnIDs {
		if len(s.txns[id].FlaggedReasons) > 0 {
			stats.FlaggedTransactions++
		}
	}
	for _, id := range s.customerIDs {
		if s.customers[id].IsHighRisk {
			stats.HighRiskCustomers++
		}
	}
	return stats
}

// pageOf slices one page out of the full result set and fills the
// pagination block the dashboard renders.
func pageOf[T any](all []T, page, limit int) ([]T, models.Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	total := len(all)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return all[start:end], models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
