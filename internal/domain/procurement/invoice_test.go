package procurement

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deliveredPO(total decimal.Decimal) PurchaseOrder {
	po := NewPurchaseOrder(nil, nil, uuid.New(), nil, total, nil, time.Now())
	return po.WithDeliveryConfirmed()
}

func TestThreeWayMatch(t *testing.T) {
	tests := []struct {
		name    string
		po      PurchaseOrder
		amount  decimal.Decimal
		matched bool
	}{
		{
			name:    "delivered and exact amount",
			po:      deliveredPO(decimal.NewFromInt(72)),
			amount:  decimal.NewFromInt(72),
			matched: true,
		},
		{
			name:    "delivered with sub-cent difference",
			po:      deliveredPO(decimal.NewFromFloat(72.004)),
			amount:  decimal.NewFromInt(72),
			matched: true,
		},
		{
			name:    "delivered but one cent off",
			po:      deliveredPO(decimal.NewFromFloat(72.01)),
			amount:  decimal.NewFromInt(72),
			matched: false,
		},
		{
			name:    "amount matches but not delivered",
			po:      NewPurchaseOrder(nil, nil, uuid.New(), nil, decimal.NewFromInt(72), nil, time.Now()),
			amount:  decimal.NewFromInt(72),
			matched: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matched, ThreeWayMatch(tt.po, tt.amount))
		})
	}
}

func TestNewInvoiceSnapshotsMatch(t *testing.T) {
	po := deliveredPO(decimal.NewFromInt(100))
	now := time.Now()
	inv := NewInvoice(po.VendorID, po.ID, decimal.NewFromInt(100), now.AddDate(0, 1, 0), po, now)

	require.Equal(t, InvoiceStatusSubmitted, inv.Status)
	assert.True(t, inv.ThreeWayMatch)

	// the match is fixed at creation; later PO changes do not affect it
	_ = po.WithStatus(POStatusClosed)
	assert.True(t, inv.ThreeWayMatch)
}

func TestNewInvoiceMismatch(t *testing.T) {
	po := deliveredPO(decimal.NewFromInt(100))
	inv := NewInvoice(po.VendorID, po.ID, decimal.NewFromInt(95), time.Now(), po, time.Now())
	assert.False(t, inv.ThreeWayMatch)
	assert.Equal(t, InvoiceStatusSubmitted, inv.Status)
}
