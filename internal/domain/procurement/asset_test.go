package procurement

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAssetFromDeliveredPO(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("uses first line item description", func(t *testing.T) {
		items := []PurchaseOrderItem{
			{ID: uuid.New(), Description: "Rate shopping suite", Quantity: 1, UnitCost: decimal.NewFromInt(500)},
			{ID: uuid.New(), Description: "Training", Quantity: 1, UnitCost: decimal.NewFromInt(100)},
		}
		po := NewPurchaseOrder(nil, nil, uuid.New(), items, decimal.NewFromInt(600), nil, now)
		asset := AssetFromDeliveredPO(po, "Product", now)

		assert.Equal(t, "Rate shopping suite", asset.Name)
		assert.Equal(t, "Product", asset.Department)
		assert.Equal(t, po.VendorID, asset.VendorID)
		assert.Equal(t, now.AddDate(0, 0, 365), asset.RenewalDate)
		assert.False(t, asset.AutoRenew)
	})

	t.Run("renewal is 365 days even across a leap day", func(t *testing.T) {
		start := time.Date(2027, time.June, 1, 0, 0, 0, 0, time.UTC)
		po := NewPurchaseOrder(nil, nil, uuid.New(), nil, decimal.NewFromInt(50), nil, start)
		asset := AssetFromDeliveredPO(po, "", start)
		// 2028 is a leap year, so one calendar year would be 366 days
		assert.Equal(t, time.Date(2028, time.May, 31, 0, 0, 0, 0, time.UTC), asset.RenewalDate)
	})

	t.Run("falls back to PO reference when items are empty", func(t *testing.T) {
		po := NewPurchaseOrder(nil, nil, uuid.New(), nil, decimal.NewFromInt(50), nil, now)
		asset := AssetFromDeliveredPO(po, "", now)
		assert.Contains(t, asset.Name, "PO-")
		assert.Contains(t, asset.Name, " Item")
	})
}

func TestVendorWithRatingOverwrites(t *testing.T) {
	v := Vendor{ID: uuid.New(), Name: "Amadeus", Rating: 5}
	assert.Equal(t, 2, v.WithRating(2).Rating)
	assert.Equal(t, 5, v.Rating)
}

func TestDisplayNameFallsBack(t *testing.T) {
	v := Vendor{ID: uuid.New(), Name: "Sabre"}
	assert.Equal(t, "Sabre", DisplayName([]Vendor{v}, v.ID))
	assert.Equal(t, "Unknown", DisplayName([]Vendor{v}, uuid.New()))
}
