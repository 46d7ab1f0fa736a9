package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vms/backend/internal/domain/shared"
	"github.com/vms/backend/internal/domain/shared/valueobject"
)

// PRStatus represents the stored status of a purchase requisition.
//
// Note the documented asymmetry: conversions write "Converted to RFQ" /
// "Converted to PO" at the moment of conversion, and delivery confirmation
// reuses "Approved" as a terminal fulfilled marker. Later RFQ/PO lifecycle
// changes are reflected only through ResolveRequisitionStatus, never written
// back here.
type PRStatus string

const (
	PRStatusDraft              PRStatus = "Draft"
	PRStatusPendingDept        PRStatus = "Pending Dept Approval"
	PRStatusPendingProcurement PRStatus = "Pending Procurement Approval"
	PRStatusApproved           PRStatus = "Approved"
	PRStatusRejected           PRStatus = "Rejected"
	PRStatusConvertedToRFQ     PRStatus = "Converted to RFQ"
	PRStatusConvertedToPO      PRStatus = "Converted to PO"
)

// IsValid checks if the status is a valid PRStatus
func (s PRStatus) IsValid() bool {
	switch s {
	case PRStatusDraft, PRStatusPendingDept, PRStatusPendingProcurement,
		PRStatusApproved, PRStatusRejected, PRStatusConvertedToRFQ, PRStatusConvertedToPO:
		return true
	}
	return false
}

// String returns the string representation of PRStatus
func (s PRStatus) String() string {
	return string(s)
}

// CanAdvanceTo checks the two-stage approval ladder: Pending Dept Approval ->
// Pending Procurement Approval -> Approved, with either pending stage able to
// move to Rejected. Conversion statuses are written by the workflow engine
// and are not part of the ladder.
func (s PRStatus) CanAdvanceTo(target PRStatus) bool {
	switch s {
	case PRStatusPendingDept:
		return target == PRStatusPendingProcurement || target == PRStatusRejected
	case PRStatusPendingProcurement:
		return target == PRStatusApproved || target == PRStatusRejected
	}
	return false
}

// IsConverted returns true once a conversion has captured this PR.
func (s PRStatus) IsConverted() bool {
	return s == PRStatusConvertedToRFQ || s == PRStatusConvertedToPO
}

// RequisitionItem is a single line on a purchase requisition.
type RequisitionItem struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Category    VendorCategory  `json:"category"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
}

// LineTotal returns quantity x unit cost for this item.
func (i RequisitionItem) LineTotal() decimal.Decimal {
	return i.UnitCost.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// PurchaseRequisition is an internal request to spend against a budget.
type PurchaseRequisition struct {
	ID                  uuid.UUID            `json:"id"`
	RequestedByUserID   uuid.UUID            `json:"requestedByUserId"`
	Department          string               `json:"department"`
	Justification       string               `json:"justification"`
	BudgetCode          string               `json:"budgetCode"`
	Currency            valueobject.Currency `json:"currency"`
	DesiredDeliveryDate *time.Time           `json:"desiredDeliveryDate,omitempty"`
	ExpectedTotal       decimal.Decimal      `json:"expectedTotal"`
	Items               []RequisitionItem    `json:"items"`
	Status              PRStatus             `json:"status"`
	Approvals           []Approval           `json:"approvals"`
	CreatedAt           time.Time            `json:"createdAt"`
}

// NewPurchaseRequisition creates a requisition in Pending Dept Approval with
// one pending Procurement approval seeded. ExpectedTotal is computed from the
// items; callers must supply at least one.
func NewPurchaseRequisition(requestedBy uuid.UUID, department, justification, budgetCode string, currency valueobject.Currency, items []RequisitionItem, now time.Time) (PurchaseRequisition, error) {
	if len(items) == 0 {
		return PurchaseRequisition{}, shared.NewDomainError("NO_ITEMS", "Requisition requires at least one item")
	}
	if currency == "" {
		currency = valueobject.DefaultCurrency
	}
	return PurchaseRequisition{
		ID:                uuid.New(),
		RequestedByUserID: requestedBy,
		Department:        department,
		Justification:     justification,
		BudgetCode:        budgetCode,
		Currency:          currency,
		ExpectedTotal:     ItemsTotal(items),
		Items:             items,
		Status:            PRStatusPendingDept,
		Approvals:         []Approval{NewPendingApproval(RoleProcurement)},
		CreatedAt:         now,
	}, nil
}

// ItemsTotal sums quantity x unit cost over the given items.
func ItemsTotal(items []RequisitionItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// WithStatus returns a copy of the requisition with the given stored status.
func (p PurchaseRequisition) WithStatus(status PRStatus) PurchaseRequisition {
	p.Status = status
	return p
}

// WithItems returns a copy with items replaced and ExpectedTotal recomputed.
func (p PurchaseRequisition) WithItems(items []RequisitionItem) PurchaseRequisition {
	p.Items = items
	p.ExpectedTotal = ItemsTotal(items)
	return p
}
