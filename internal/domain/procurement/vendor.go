package procurement

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendorStatus represents the onboarding status of a vendor
type VendorStatus string

const (
	VendorStatusDraft           VendorStatus = "Draft"
	VendorStatusPendingApproval VendorStatus = "Pending Approval"
	VendorStatusApproved        VendorStatus = "Approved"
	VendorStatusRestricted      VendorStatus = "Restricted"
)

// IsValid checks if the status is a valid VendorStatus
func (s VendorStatus) IsValid() bool {
	switch s {
	case VendorStatusDraft, VendorStatusPendingApproval, VendorStatusApproved, VendorStatusRestricted:
		return true
	}
	return false
}

// String returns the string representation of VendorStatus
func (s VendorStatus) String() string {
	return string(s)
}

// VendorCategory classifies what a vendor supplies
type VendorCategory string

const (
	CategorySoftware       VendorCategory = "Software"
	CategoryHardware       VendorCategory = "Hardware"
	CategoryOfficeSupplies VendorCategory = "Office Supplies"
	CategoryServices       VendorCategory = "Services"
	CategoryOther          VendorCategory = "Other"
)

// IsValid checks if the category is a known VendorCategory
func (c VendorCategory) IsValid() bool {
	switch c {
	case CategorySoftware, CategoryHardware, CategoryOfficeSupplies, CategoryServices, CategoryOther:
		return true
	}
	return false
}

// RiskLevel is an advisory vendor risk classification
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Vendor is a supplier record. Vendors are referenced by identifier from
// POs, invoices and assets; deleting a vendor leaves those references
// dangling and readers resolve them to a placeholder name.
type Vendor struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Category      VendorCategory  `json:"category"`
	ContactPerson string          `json:"contactPerson"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone,omitempty"`
	Bank          string          `json:"bank,omitempty"`
	TaxID         string          `json:"taxId,omitempty"`
	Documents     []string        `json:"documents"`
	Status        VendorStatus    `json:"status"`
	Rating        int             `json:"rating,omitempty"` // 1-5, zero means unrated
	Risk          RiskLevel       `json:"risk,omitempty"`
	Discount      decimal.Decimal `json:"discount"` // percentage, zero means none
	ContractURL   string          `json:"contractUrl,omitempty"`
}

// WithStatus returns a copy of the vendor with the given status.
func (v Vendor) WithStatus(status VendorStatus) Vendor {
	v.Status = status
	return v
}

// WithRating returns a copy of the vendor with the rating overwritten.
// Ratings are not averaged with prior values.
func (v Vendor) WithRating(rating int) Vendor {
	v.Rating = rating
	return v
}

// DisplayName resolves a vendor name from a collection, falling back to a
// placeholder for dangling references.
func DisplayName(vendors []Vendor, id uuid.UUID) string {
	for _, v := range vendors {
		if v.ID == id {
			return v.Name
		}
	}
	return "Unknown"
}
