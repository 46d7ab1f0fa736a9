package procurement

import (
	"time"

	"github.com/google/uuid"
)

// Asset is a tracked recurring vendor commitment (license, subscription or
// contract) with a renewal date. Assets are never auto-deleted.
type Asset struct {
	ID          uuid.UUID `json:"id"`
	VendorID    uuid.UUID `json:"vendorId"`
	Name        string    `json:"name"`
	AssignedTo  string    `json:"assignedTo,omitempty"`
	Department  string    `json:"department,omitempty"`
	RenewalDate time.Time `json:"renewalDate"`
	AutoRenew   bool      `json:"autoRenew"`
	ContractURL string    `json:"contractUrl,omitempty"`
}

// NewAsset creates an asset with a generated identity.
func NewAsset(vendorID uuid.UUID, name, assignedTo, department string, renewalDate time.Time, autoRenew bool, contractURL string) Asset {
	return Asset{
		ID:          uuid.New(),
		VendorID:    vendorID,
		Name:        name,
		AssignedTo:  assignedTo,
		Department:  department,
		RenewalDate: renewalDate,
		AutoRenew:   autoRenew,
		ContractURL: contractURL,
	}
}

// AssetFromDeliveredPO derives an asset from a delivered purchase order's
// first line item. Department is inherited from the source requisition when
// present. Renewal defaults to 365 calendar days out with auto-renew off.
func AssetFromDeliveredPO(po PurchaseOrder, department string, now time.Time) Asset {
	name := "PO-" + shortID(po.ID) + " Item"
	if len(po.Items) > 0 && po.Items[0].Description != "" {
		name = po.Items[0].Description
	}
	return NewAsset(po.VendorID, name, "", department, now.AddDate(0, 0, 365), false, "")
}

// shortID is the 6-character display prefix used for entity references.
func shortID(id uuid.UUID) string {
	s := id.String()
	if len(s) > 6 {
		return s[:6]
	}
	return s
}
