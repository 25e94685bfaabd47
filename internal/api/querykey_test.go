package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys_StructuralEquality(t *testing.T) {
	t.Run("equal parameters give equal keys", func(t *testing.T) {
		a := FraudCaseListKey(ListParams{Page: 2, Status: "PENDING"})
		b := FraudCaseListKey(ListParams{Page: 2, Status: "PENDING"})
		assert.Equal(t, a, b)
	})

	t.Run("different parameters give different keys", func(t *testing.T) {
		a := FraudCaseListKey(ListParams{Page: 1})
		b := FraudCaseListKey(ListParams{Page: 2})
		assert.NotEqual(t, a, b)
	})

	t.Run("detail keys distinguish ids", func(t *testing.T) {
		assert.NotEqual(t, FraudCaseDetailKey("a"), FraudCaseDetailKey("b"))
		assert.Equal(t, CustomerDetailKey("c-1"), CustomerDetailKey("c-1"))
	})
}

func TestKey_Family(t *testing.T) {
	assert.Equal(t, FamilyFraudCases, FraudCaseListKey(ListParams{}).Family())
	assert.Equal(t, FamilyFraudCases, FraudCaseDetailKey("42").Family())
	assert.Equal(t, FamilyCustomers, CustomerSearchKey("smith", 0, 0).Family())
	assert.Equal(t, FamilyTransactions, TransactionFlaggedKey().Family())
	assert.Equal(t, FamilyDashboard, DashboardStatsKey().Family())
}

func TestKey_Hierarchy(t *testing.T) {
	// Every key of a family shares the family prefix so a write can
	// invalidate all of them at once.
	keys := []Key{
		FraudCaseListKey(ListParams{Page: 1, Limit: 20}),
		FraudCaseListKey(ListParams{Status: "ESCALATED"}),
		FraudCaseDetailKey("42"),
	}
	for _, k := range keys {
		assert.Equal(t, FamilyFraudCases, k.Family(), "key %s", k)
	}
}
