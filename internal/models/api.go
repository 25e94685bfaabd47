package models

import "time"

// Pagination describes one page of a list response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Envelope is the uniform response body the fraud API wraps payloads in.
type Envelope[T any] struct {
	Data       T           `json:"data"`
	Message    string      `json:"message,omitempty"`
	Success    bool        `json:"success"`
	Timestamp  time.Time   `json:"timestamp"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login. Unlike resource
// responses it is not wrapped in an Envelope.
type LoginResponse struct {
	User    *User  `json:"user"`
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// CreateFraudCaseInput is the body of POST /api/fraud-cases.
type CreateFraudCaseInput struct {
	CustomerID  string    `json:"customerId"`
	Priority    Priority  `json:"priority"`
	RiskLevel   RiskLevel `json:"riskLevel"`
	TotalAmount float64   `json:"totalAmount"`
	Currency    string    `json:"currency"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags,omitempty"`
}

// UpdateFraudCaseInput is the body of PUT /api/fraud-cases/{id}. Only
// non-zero fields are applied.
type UpdateFraudCaseInput struct {
	Status      CaseStatus `json:"status,omitempty"`
	Priority    Priority   `json:"priority,omitempty"`
	RiskLevel   RiskLevel  `json:"riskLevel,omitempty"`
	Description string     `json:"description,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// AssignFraudCaseInput is the body of POST /api/fraud-cases/{id}/assign.
type AssignFraudCaseInput struct {
	AnalystID string `json:"analystId"`
}

// ResolveFraudCaseInput is the body of POST /api/fraud-cases/{id}/resolve.
type ResolveFraudCaseInput struct {
	Outcome ResolutionOutcome `json:"outcome"`
	Reason  string            `json:"reason"`
}

// FlagTransactionInput is the body of POST /api/transactions/{id}/flag.
type FlagTransactionInput struct {
	Reasons []string `json:"reasons"`
}

// CustomerSearchInput is the body of POST /api/customers/search.
type CustomerSearchInput struct {
	Query string `json:"query"`
	Page  int    `json:"page,omitempty"`
	Limit int    `json:"limit,omitempty"`
}
