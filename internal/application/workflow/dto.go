package workflow

import (
	"time"

	"github.com/google/uuid"
	"github.com/vms/backend/internal/domain/procurement"
	"github.com/vms/backend/internal/domain/shared/valueobject"
)

// Request payloads for workflow operations. Each is an explicit tagged
// struct validated at the operation boundary, before any intent is
// constructed and dispatched.

// CreateVendorRequest carries the fields for vendor onboarding or ad-hoc
// add. Status defaults to Pending Approval when left empty.
type CreateVendorRequest struct {
	Name          string                     `json:"name" validate:"required"`
	Category      procurement.VendorCategory `json:"category" validate:"omitempty"`
	ContactPerson string                     `json:"contactPerson"`
	Email         string                     `json:"email" validate:"omitempty,email"`
	Phone         string                     `json:"phone"`
	Bank          string                     `json:"bank"`
	TaxID         string                     `json:"taxId"`
	Documents     []string                   `json:"documents"`
	Status        procurement.VendorStatus   `json:"status" validate:"omitempty"`
	Rating        int                        `json:"rating" validate:"omitempty,min=1,max=5"`
	Risk          procurement.RiskLevel      `json:"risk"`
	Discount      float64                    `json:"discount" validate:"gte=0,lte=100"`
	ContractURL   string                     `json:"contractUrl"`
}

// RequisitionItemInput is one line of a requisition create or edit.
type RequisitionItemInput struct {
	Description string                     `json:"description" validate:"required"`
	Category    procurement.VendorCategory `json:"category"`
	Quantity    int                        `json:"quantity" validate:"gt=0"`
	UnitCost    float64                    `json:"unitCost" validate:"gte=0"`
}

// SubmitPRRequest creates a purchase requisition.
type SubmitPRRequest struct {
	RequestedByUserID   uuid.UUID              `json:"requestedByUserId" validate:"required"`
	Department          string                 `json:"department" validate:"required"`
	Justification       string                 `json:"justification"`
	BudgetCode          string                 `json:"budgetCode"`
	Currency            valueobject.Currency   `json:"currency"`
	DesiredDeliveryDate *time.Time             `json:"desiredDeliveryDate"`
	Items               []RequisitionItemInput `json:"items" validate:"required,min=1,dive"`
}

// UpdatePRRequest edits a requisition's header fields and items. The
// expected total is recomputed from the items; passing nil items keeps the
// existing lines.
type UpdatePRRequest struct {
	ID            uuid.UUID              `json:"id" validate:"required"`
	Department    string                 `json:"department"`
	BudgetCode    string                 `json:"budgetCode"`
	Currency      valueobject.Currency   `json:"currency"`
	Justification string                 `json:"justification"`
	Items         []RequisitionItemInput `json:"items" validate:"omitempty,dive"`
}

// AddQuoteRequest records a vendor quote against an RFQ. Currency defaults
// to the source requisition's currency when omitted.
type AddQuoteRequest struct {
	VendorID     uuid.UUID            `json:"vendorId" validate:"required"`
	Price        float64              `json:"price" validate:"gt=0"`
	Currency     valueobject.Currency `json:"currency"`
	DeliveryDays int                  `json:"deliveryDays" validate:"gt=0"`
	Notes        string               `json:"notes"`
}

// SubmitInvoiceRequest creates a manual invoice against a purchase order.
type SubmitInvoiceRequest struct {
	VendorID uuid.UUID `json:"vendorId" validate:"required"`
	POID     uuid.UUID `json:"poId" validate:"required"`
	Amount   float64   `json:"amount" validate:"gt=0"`
	DueDate  time.Time `json:"dueDate" validate:"required"`
}

// CreateAssetRequest registers an asset manually.
type CreateAssetRequest struct {
	VendorID    uuid.UUID `json:"vendorId" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	AssignedTo  string    `json:"assignedTo"`
	Department  string    `json:"department"`
	RenewalDate time.Time `json:"renewalDate" validate:"required"`
	AutoRenew   bool      `json:"autoRenew"`
	ContractURL string    `json:"contractUrl"`
}
