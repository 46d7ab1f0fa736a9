package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// POStatus represents the status of a purchase order
type POStatus string

const (
	POStatusOpen      POStatus = "Open"
	POStatusDelivered POStatus = "Delivered"
	POStatusClosed    POStatus = "Closed"
)

// IsValid checks if the status is a valid POStatus
func (s POStatus) IsValid() bool {
	switch s {
	case POStatusOpen, POStatusDelivered, POStatusClosed:
		return true
	}
	return false
}

// String returns the string representation of POStatus
func (s POStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// Transitions only move forward: Open -> Delivered -> Closed. An Open PO may
// also be closed directly without a delivery confirmation.
func (s POStatus) CanTransitionTo(target POStatus) bool {
	switch s {
	case POStatusOpen:
		return target == POStatusDelivered || target == POStatusClosed
	case POStatusDelivered:
		return target == POStatusClosed
	case POStatusClosed:
		return false // terminal
	}
	return false
}

// PurchaseOrderItem is a line item snapshot on a purchase order. It is a
// decoupled copy of the source requisition item, not a live reference:
// later edits to the requisition do not flow through.
type PurchaseOrderItem struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
}

// PurchaseOrder is a committed order to a single vendor, derived from a
// requisition or an awarded RFQ quote.
type PurchaseOrder struct {
	ID                   uuid.UUID           `json:"id"`
	FromRFQID            *uuid.UUID          `json:"fromRFQId,omitempty"`
	FromPRID             *uuid.UUID          `json:"fromPRId,omitempty"`
	VendorID             uuid.UUID           `json:"vendorId"`
	Items                []PurchaseOrderItem `json:"items"`
	Total                decimal.Decimal     `json:"total"`
	Status               POStatus            `json:"status"`
	DeliveryConfirmed    bool                `json:"deliveryConfirmed"`
	VendorAccepted       bool                `json:"vendorAccepted"`
	Terms                string              `json:"terms,omitempty"`
	ExpectedDeliveryDate *time.Time          `json:"expectedDeliveryDate,omitempty"`
	CreatedAt            time.Time           `json:"createdAt"`
}

// NewPurchaseOrder creates an open purchase order with the given item
// snapshot and total. Source references are optional; a PO sourced from an
// awarded RFQ carries both FromRFQID and FromPRID.
func NewPurchaseOrder(fromRFQID, fromPRID *uuid.UUID, vendorID uuid.UUID, items []PurchaseOrderItem, total decimal.Decimal, expectedDeliveryDate *time.Time, now time.Time) PurchaseOrder {
	return PurchaseOrder{
		ID:                   uuid.New(),
		FromRFQID:            fromRFQID,
		FromPRID:             fromPRID,
		VendorID:             vendorID,
		Items:                items,
		Total:                total,
		Status:               POStatusOpen,
		ExpectedDeliveryDate: expectedDeliveryDate,
		CreatedAt:            now,
	}
}

// SnapshotItems copies requisition items into decoupled purchase order line
// items.
func SnapshotItems(items []RequisitionItem) []PurchaseOrderItem {
	out := make([]PurchaseOrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, PurchaseOrderItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitCost:    it.UnitCost,
		})
	}
	return out
}

// WithVendorAcceptance returns a copy marked accepted; terms and the expected
// date are filled only when not already set.
func (p PurchaseOrder) WithVendorAcceptance(terms string, expectedDate *time.Time) PurchaseOrder {
	p.VendorAccepted = true
	if p.Terms == "" {
		p.Terms = terms
	}
	if p.ExpectedDeliveryDate == nil && expectedDate != nil {
		p.ExpectedDeliveryDate = expectedDate
	}
	return p
}

// WithDeliveryConfirmed returns a copy with the GRN recorded and status
// Delivered.
func (p PurchaseOrder) WithDeliveryConfirmed() PurchaseOrder {
	p.DeliveryConfirmed = true
	p.Status = POStatusDelivered
	return p
}

// WithStatus returns a copy of the order with the given status.
func (p PurchaseOrder) WithStatus(status POStatus) PurchaseOrder {
	p.Status = status
	return p
}
