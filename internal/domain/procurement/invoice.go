package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the status of an invoice. Overdue is advisory and
// display-derived; it is not a stored transition target in the normal flow.
type InvoiceStatus string

const (
	InvoiceStatusSubmitted InvoiceStatus = "Submitted"
	InvoiceStatusApproved  InvoiceStatus = "Approved"
	InvoiceStatusPaid      InvoiceStatus = "Paid"
	InvoiceStatusOverdue   InvoiceStatus = "Overdue"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusSubmitted, InvoiceStatusApproved, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// CanTransitionTo checks invoice transitions: Submitted -> Approved -> Paid,
// with Mark Paid also legal directly from Submitted. Paid is terminal.
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	switch s {
	case InvoiceStatusSubmitted:
		return target == InvoiceStatusApproved || target == InvoiceStatusPaid
	case InvoiceStatusApproved:
		return target == InvoiceStatusPaid
	}
	return false
}

// matchTolerance is the cent tolerance for the three-way match.
var matchTolerance = decimal.New(1, -2)

// Invoice is a payment demand against a purchase order.
type Invoice struct {
	ID            uuid.UUID       `json:"id"`
	VendorID      uuid.UUID       `json:"vendorId"`
	POID          uuid.UUID       `json:"poId"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"dueDate"`
	Status        InvoiceStatus   `json:"status"`
	ThreeWayMatch bool            `json:"threeWayMatch"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// NewInvoice creates a submitted invoice with the three-way match evaluated
// against the referenced PO as it stands right now. The match value is a
// point-in-time snapshot: it is never recomputed, even if the PO's total or
// delivery state changes afterward.
func NewInvoice(vendorID, poID uuid.UUID, amount decimal.Decimal, dueDate time.Time, po PurchaseOrder, now time.Time) Invoice {
	return Invoice{
		ID:            uuid.New(),
		VendorID:      vendorID,
		POID:          poID,
		Amount:        amount,
		DueDate:       dueDate,
		Status:        InvoiceStatusSubmitted,
		ThreeWayMatch: ThreeWayMatch(po, amount),
		CreatedAt:     now,
	}
}

// ThreeWayMatch reconciles PO, delivery confirmation and invoice amount:
// true iff delivery is confirmed and |po.Total - amount| < 0.01.
func ThreeWayMatch(po PurchaseOrder, invoiceAmount decimal.Decimal) bool {
	return po.DeliveryConfirmed && po.Total.Sub(invoiceAmount).Abs().LessThan(matchTolerance)
}

// WithStatus returns a copy of the invoice with the given status.
func (i Invoice) WithStatus(status InvoiceStatus) Invoice {
	i.Status = status
	return i
}
