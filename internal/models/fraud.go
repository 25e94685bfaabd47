package models

import "time"

type CaseStatus string

const (
	CaseStatusPending       CaseStatus = "PENDING"
	CaseStatusUnderReview   CaseStatus = "UNDER_REVIEW"
	CaseStatusInvestigating CaseStatus = "INVESTIGATING"
	CaseStatusResolved      CaseStatus = "RESOLVED"
	CaseStatusClosed        CaseStatus = "CLOSED"
	CaseStatusEscalated     CaseStatus = "ESCALATED"
)

type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskVeryHigh RiskLevel = "VERY_HIGH"
)

type KYCStatus string

const (
	KYCPending  KYCStatus = "PENDING"
	KYCVerified KYCStatus = "VERIFIED"
	KYCRejected KYCStatus = "REJECTED"
	KYCExpired  KYCStatus = "EXPIRED"
)

type TransactionStatus string

const (
	TransactionPending    TransactionStatus = "PENDING"
	TransactionCompleted  TransactionStatus = "COMPLETED"
	TransactionFailed     TransactionStatus = "FAILED"
	TransactionCancelled  TransactionStatus = "CANCELLED"
	TransactionSuspicious TransactionStatus = "SUSPICIOUS"
	TransactionBlocked    TransactionStatus = "BLOCKED"
)

type ResolutionOutcome string

const (
	OutcomeFraudConfirmed       ResolutionOutcome = "FRAUD_CONFIRMED"
	OutcomeFalsePositive        ResolutionOutcome = "FALSE_POSITIVE"
	OutcomeInsufficientEvidence ResolutionOutcome = "INSUFFICIENT_EVIDENCE"
	OutcomeCustomerVerified     ResolutionOutcome = "CUSTOMER_VERIFIED"
	OutcomeAccountCompromised   ResolutionOutcome = "ACCOUNT_COMPROMISED"
)

// FraudCase is an investigation into suspicious activity on one customer.
type FraudCase struct {
	ID          string      `json:"id"`
	CaseNumber  string      `json:"caseNumber"`
	CustomerID  string      `json:"customerId"`
	Status      CaseStatus  `json:"status"`
	Priority    Priority    `json:"priority"`
	RiskLevel   RiskLevel   `json:"riskLevel"`
	TotalAmount float64     `json:"totalAmount"`
	Currency    string      `json:"currency"`
	Description string      `json:"description"`
	AssignedTo  string      `json:"assignedTo,omitempty"`
	ReportedBy  string      `json:"reportedBy"`
	ReportedAt  time.Time   `json:"reportedAt"`
	ResolvedAt  *time.Time  `json:"resolvedAt,omitempty"`
	Resolution  *Resolution `json:"resolution,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Resolution records how a fraud case was closed out.
type Resolution struct {
	Outcome    ResolutionOutcome `json:"outcome"`
	Reason     string            `json:"reason"`
	ResolvedBy string            `json:"resolvedBy"`
	ResolvedAt time.Time         `json:"resolvedAt"`
}

// Customer is a bank customer that fraud cases reference.
type Customer struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customerId"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	AccountNumbers []string  `json:"accountNumbers"`
	RiskScore      int       `json:"riskScore"`
	IsHighRisk     bool      `json:"isHighRisk"`
	KYCStatus      KYCStatus `json:"kycStatus"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Transaction is a single account movement that may be flagged for review.
type Transaction struct {
	ID             string            `json:"id"`
	TransactionID  string            `json:"transactionId"`
	CustomerID     string            `json:"customerId"`
	AccountNumber  string            `json:"accountNumber"`
	Amount         float64           `json:"amount"`
	Currency       string            `json:"currency"`
	Type           string            `json:"transactionType"`
	Description    string            `json:"description"`
	MerchantName   string            `json:"merchantName,omitempty"`
	Status         TransactionStatus `json:"status"`
	RiskScore      int               `json:"riskScore"`
	RiskLevel      RiskLevel         `json:"riskLevel"`
	FlaggedReasons []string          `json:"flaggedReasons,omitempty"`
	IsBlocked      bool              `json:"isBlocked"`
	Timestamp      time.Time         `json:"timestamp"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// DashboardStats is the aggregate view rendered on the dashboard landing page.
type DashboardStats struct {
	OpenCases           int     `json:"openCases"`
	ResolvedCases       int     `json:"resolvedCases"`
	FlaggedTransactions int     `json:"flaggedTransactions"`
	HighRiskCustomers   int     `json:"highRiskCustomers"`
	TotalAmountAtRisk   float64 `json:"totalAmountAtRisk"`
	Currency            string  `json:"currency"`
}
