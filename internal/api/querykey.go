package api

import (
	"net/url"
	"strconv"
	"strings"
)

// Key addresses one cached read. Keys are hierarchical (resource family,
// then operation, then canonically-encoded parameters) so two reads with
// structurally equal parameters share an entry, and a whole family can be
// invalidated by prefix.
type Key string

// Resource families.
const (
	FamilyFraudCases   = "fraud-cases"
	FamilyCustomers    = "customers"
	FamilyTransactions = "transactions"
	FamilyDashboard    = "dashboard"
)

// Family returns the resource family segment of the key.
func (k Key) Family() string {
	if i := strings.IndexByte(string(k), '/'); i >= 0 {
		return string(k)[:i]
	}
	return string(k)
}

func makeKey(family, op string, params url.Values) Key {
	k := family + "/" + op
	if len(params) > 0 {
		// Encode sorts by key, giving a canonical form.
		k += "?" + params.Encode()
	}
	return Key(k)
}

// ListParams are the common pagination and filter parameters of list reads.
type ListParams struct {
	Page       int
	Limit      int
	Status     string
	Priority   string
	AssignedTo string
}

func (p ListParams) values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Status != "" {
		v.Set("status", p.Status)
	}
	if p.Priority != "" {
		v.Set("priority", p.Priority)
	}
	if p.AssignedTo != "" {
		v.Set("assignedTo", p.AssignedTo)
	}
	return v
}

func FraudCaseListKey(p ListParams) Key {
	return makeKey(FamilyFraudCases, "list", p.values())
}

func FraudCaseDetailKey(id string) Key {
	return makeKey(FamilyFraudCases, "detail", url.Values{"id": {id}})
}

func CustomerListKey(p ListParams) Key {
	return makeKey(FamilyCustomers, "list", p.values())
}

func CustomerDetailKey(id string) Key {
	return makeKey(FamilyCustomers, "detail", url.Values{"id": {id}})
}

func CustomerSearchKey(query string, page, limit int) Key {
	v := url.Values{"q": {query}}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	return makeKey(FamilyCustomers, "search", v)
}

func CustomerCasesKey(customerID string) Key {
	return makeKey(FamilyCustomers, "fraud-cases", url.Values{"id": {customerID}})
}

func CustomerTransactionsKey(customerID string) Key {
	return makeKey(FamilyCustomers, "transactions", url.Values{"id": {customerID}})
}

func TransactionListKey(p ListParams) Key {
	return makeKey(FamilyTransactions, "list", p.values())
}

func TransactionDetailKey(id string) Key {
	return makeKey(FamilyTransactions, "detail", url.Values{"id": {id}})
}

func TransactionFlaggedKey() Key {
	return makeKey(FamilyTransactions, "flagged", nil)
}

func DashboardStatsKey() Key {
	return makeKey(FamilyDashboard, "stats", nil)
}
