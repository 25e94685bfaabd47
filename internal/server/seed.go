package server

import (
	"time"

	"github.com/globobank/frauddesk/internal/models"
)

// Fixed fixture IDs so the demo dataset is stable across restarts and easy
// to script against.
const (
	SeedAnalystID  = "7f1b7d3e-9a7e-4b2f-8c1d-0a5e6f3b2c01"
	SeedSeniorID   = "7f1b7d3e-9a7e-4b2f-8c1d-0a5e6f3b2c02"
	SeedManagerID  = "7f1b7d3e-9a7e-4b2f-8c1d-0a5e6f3b2c03"
	SeedAdminID    = "7f1b7d3e-9a7e-4b2f-8c1d-0a5e6f3b2c04"
	SeedInactiveID = "7f1b7d3e-9a7e-4b2f-8c1d-0a5e6f3b2c05"

	// SeedPassword is the shared password of every demo account.
	SeedPassword = "password123"
)

func (s *Store) seed() {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	users := []struct {
		id, email, first, last, dept string
		role                         models.Role
		active                       bool
	}{
		{SeedAnalystID, "analyst@globobank.com", "Ana", "Lopez", "Fraud Operations", models.RoleAnalyst, true},
		{SeedSeniorID, "senior@globobank.com", "Marcus", "Webb", "Fraud Operations", models.RoleSeniorAnalyst, true},
		{SeedManagerID, "manager@globobank.com", "Priya", "Nair", "Fraud Operations", models.RoleManager, true},
		{SeedAdminID, "admin@globobank.com", "Sam", "Okafor", "Platform", models.RoleAdmin, true},
		{SeedInactiveID, "former@globobank.com", "Lena", "Hart", "Fraud Operations", models.RoleAnalyst, false},
	}
	for _, u := range users {
		user := &models.User{
			ID:         u.id,
			Email:      u.email,
			FirstName:  u.first,
			LastName:   u.last,
			Role:       u.role,
			Department: u.dept,
			IsActive:   u.active,
			CreatedAt:  base,
			UpdatedAt:  base,
		}
		s.users[user.ID] = user
		s.usersByEmail[user.Email] = user.ID
		s.passwords[user.ID] = SeedPassword
	}

	customers := []*models.Customer{
		{
			ID: "c-1001", CustomerID: "CUST-1001",
			FirstName: "Harold", LastName: "Finch", Email: "harold.finch@example.com",
			Phone: "+1-555-0101", AccountNumbers: []string{"ACC-88231", "ACC-88232"},
			RiskScore: 82, IsHighRisk: true, KYCStatus: models.KYCVerified,
			CreatedAt: base, UpdatedAt: base,
		},
		{
			ID: "c-1002", CustomerID: "CUST-1002",
			FirstName: "Joan", LastName: "Clarke", Email: "joan.clarke@example.com",
			Phone: "+1-555-0102", AccountNumbers: []string{"ACC-90411"},
			RiskScore: 12, IsHighRisk: false, KYCStatus: models.KYCVerified,
			CreatedAt: base, UpdatedAt: base,
		},
		{
			ID: "c-1003", CustomerID: "CUST-1003",
			FirstName: "Victor", LastName: "Sato", Email: "victor.sato@example.com",
			AccountNumbers: []string{"ACC-77120"},
			RiskScore:      55, IsHighRisk: false, KYCStatus: models.KYCPending,
			CreatedAt: base, UpdatedAt: base,
		},
	}
	for _, c := range customers {
		s.customers[c.ID] = c
		s.customerIDs = append(s.customerIDs, c.ID)
	}

	txns := []*models.Transaction{
		{
			ID: "t-5001", TransactionID: "TXN-5001", CustomerID: "c-1001",
			AccountNumber: "ACC-88231", Amount: 9800, Currency: "USD",
			Type: "WIRE_TRANSFER", Description: "Outbound wire to new beneficiary",
			MerchantName: "", Status: models.TransactionSuspicious,
			RiskScore: 88, RiskLevel: models.RiskVeryHigh,
			FlaggedReasons: []string{"amount just under reporting threshold", "new beneficiary"},
			Timestamp:      base.Add(36 * time.Hour), CreatedAt: base.Add(36 * time.Hour), UpdatedAt: base.Add(40 * time.Hour),
		},
		{
			ID: "t-5002", TransactionID: "TXN-5002", CustomerID: "c-1001",
			AccountNumber: "ACC-88232", Amount: 129.99, Currency: "USD",
			Type: "CARD_PAYMENT", Description: "Online purchase",
			MerchantName: "Acme Outlet", Status: models.TransactionCompleted,
			RiskScore: 10, RiskLevel: models.RiskLow,
			Timestamp: base.Add(48 * time.Hour), CreatedAt: base.Add(48 * time.Hour), UpdatedAt: base.Add(48 * time.Hour),
		},
		{
			ID: "t-5003", TransactionID: "TXN-5003", CustomerID: "c-1002",
			AccountNumber: "ACC-90411", Amount: 4250, Currency: "USD",
			Type: "ACH_DEBIT", Description: "Recurring vendor payment",
			MerchantName: "Northwind Supplies", Status: models.TransactionCompleted,
			RiskScore: 22, RiskLevel: models.RiskLow,
			Timestamp: base.Add(72 * time.Hour), CreatedAt: base.Add(72 * time.Hour), UpdatedAt: base.Add(72 * time.Hour),
		},
		{
			ID: "t-5004", TransactionID: "TXN-5004", CustomerID: "c-1003",
			AccountNumber: "ACC-77120", Amount: 15000, Currency: "USD",
			Type: "CASH_DEPOSIT", Description: "Branch cash deposit",
			Status:    models.TransactionPending,
			RiskScore: 61, RiskLevel: models.RiskHigh,
			Timestamp: base.Add(96 * time.Hour), CreatedAt: base.Add(96 * time.Hour), UpdatedAt: base.Add(96 * time.Hour),
		},
	}
	for _, tx := range txns {
		s.txns[tx.ID] = tx
		s.txnIDs = append(s.txnIDs, tx.ID)
	}

	cases := []*models.FraudCase{
		{
			ID: "f-2001", CaseNumber: "FC-4jY8mKpQ2n", CustomerID: "c-1001",
			Status: models.CaseStatusInvestigating, Priority: models.PriorityCritical,
			RiskLevel: models.RiskVeryHigh, TotalAmount: 9800, Currency: "USD",
			Description: "Structured wire activity below reporting threshold",
			AssignedTo:  SeedSeniorID, ReportedBy: SeedAnalystID,
			ReportedAt: base.Add(40 * time.Hour),
			Tags:       []string{"structuring", "wire"},
			CreatedAt:  base.Add(40 * time.Hour), UpdatedAt: base.Add(60 * time.Hour),
		},
		{
			ID: "f-2002", CaseNumber: "FC-9tRw3VbXzA", CustomerID: "c-1003",
			Status: models.CaseStatusPending, Priority: models.PriorityHigh,
			RiskLevel: models.RiskHigh, TotalAmount: 15000, Currency: "USD",
			Description: "Large cash deposit inconsistent with account history",
			ReportedBy:  SeedAnalystID,
			ReportedAt:  base.Add(97 * time.Hour),
			Tags:        []string{"cash", "kyc-pending"},
			CreatedAt:   base.Add(97 * time.Hour), UpdatedAt: base.Add(97 * time.Hour),
		},
		{
			ID: "f-2003", CaseNumber: "FC-1cDq7LmNs5", CustomerID: "c-1002",
			Status: models.CaseStatusResolved, Priority: models.PriorityLow,
			RiskLevel: models.RiskLow, TotalAmount: 4250, Currency: "USD",
			Description: "Vendor payment disputed by customer, verified legitimate",
			AssignedTo:  SeedAnalystID, ReportedBy: SeedSeniorID,
			ReportedAt: base.Add(80 * time.Hour),
			ResolvedAt: timePtr(base.Add(120 * time.Hour)),
			Resolution: &models.Resolution{
				Outcome:    models.OutcomeCustomerVerified,
				Reason:     "Customer confirmed the payment by phone",
				ResolvedBy: SeedAnalystID,
				ResolvedAt: base.Add(120 * time.Hour),
			},
			CreatedAt: base.Add(80 * time.Hour), UpdatedAt: base.Add(120 * time.Hour),
		},
	}
	for _, fc := range cases {
		s.cases[fc.ID] = fc
		s.caseIDs = append(s.caseIDs, fc.ID)
	}
}

func timePtr(t time.Time) *time.Time { return &t }
