package procurement

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vms/backend/internal/domain/shared/valueobject"
)

func twoItems() []RequisitionItem {
	return []RequisitionItem{
		{ID: uuid.New(), Description: "API licenses", Quantity: 2, UnitCost: decimal.NewFromInt(30)},
		{ID: uuid.New(), Description: "Support plan", Quantity: 1, UnitCost: decimal.NewFromInt(20)},
	}
}

func TestNewPurchaseRequisition(t *testing.T) {
	now := time.Now()

	t.Run("starts pending dept approval with computed total", func(t *testing.T) {
		pr, err := NewPurchaseRequisition(uuid.New(), "Engineering", "need it", "BUD-001", valueobject.USD, twoItems(), now)
		require.NoError(t, err)
		assert.Equal(t, PRStatusPendingDept, pr.Status)
		assert.Equal(t, int64(80), pr.ExpectedTotal.IntPart())
		require.Len(t, pr.Approvals, 1)
		assert.Equal(t, RoleProcurement, pr.Approvals[0].ApproverRole)
		assert.Equal(t, ApprovalPending, pr.Approvals[0].Status)
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := NewPurchaseRequisition(uuid.New(), "Engineering", "", "", valueobject.USD, nil, now)
		assert.Error(t, err)
	})

	t.Run("defaults currency", func(t *testing.T) {
		pr, err := NewPurchaseRequisition(uuid.New(), "Finance", "", "", "", twoItems(), now)
		require.NoError(t, err)
		assert.Equal(t, valueobject.DefaultCurrency, pr.Currency)
	})
}

func TestWithItemsRecomputesTotal(t *testing.T) {
	pr, err := NewPurchaseRequisition(uuid.New(), "Engineering", "", "", valueobject.USD, twoItems(), time.Now())
	require.NoError(t, err)

	updated := pr.WithItems([]RequisitionItem{
		{ID: uuid.New(), Description: "Bigger order", Quantity: 3, UnitCost: decimal.NewFromFloat(10.50)},
	})
	assert.Equal(t, "31.5", updated.ExpectedTotal.String())
	// original untouched
	assert.Equal(t, int64(80), pr.ExpectedTotal.IntPart())
}

func TestItemsTotal(t *testing.T) {
	items := []RequisitionItem{
		{Quantity: 4, UnitCost: decimal.NewFromFloat(19.99)},
		{Quantity: 1, UnitCost: decimal.NewFromFloat(0.04)},
	}
	assert.Equal(t, "80", ItemsTotal(items).String())
}
