package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/vms/backend/internal/domain/procurement"
)

// Read-side lookups over a snapshot. Entities reference each other only by
// identifier, so all joins happen here or in the caller.

// VendorByID finds a vendor in the snapshot.
func (s State) VendorByID(id uuid.UUID) (procurement.Vendor, bool) {
	for _, v := range s.Vendors {
		if v.ID == id {
			return v, true
		}
	}
	return procurement.Vendor{}, false
}

// RequisitionByID finds a purchase requisition in the snapshot.
func (s State) RequisitionByID(id uuid.UUID) (procurement.PurchaseRequisition, bool) {
	for _, p := range s.Requisitions {
		if p.ID == id {
			return p, true
		}
	}
	return procurement.PurchaseRequisition{}, false
}

// RFQByID finds an RFQ in the snapshot.
func (s State) RFQByID(id uuid.UUID) (procurement.RFQ, bool) {
	for _, r := range s.RFQs {
		if r.ID == id {
			return r, true
		}
	}
	return procurement.RFQ{}, false
}

// OrderByID finds a purchase order in the snapshot.
func (s State) OrderByID(id uuid.UUID) (procurement.PurchaseOrder, bool) {
	for _, p := range s.Orders {
		if p.ID == id {
			return p, true
		}
	}
	return procurement.PurchaseOrder{}, false
}

// InvoiceByID finds an invoice in the snapshot.
func (s State) InvoiceByID(id uuid.UUID) (procurement.Invoice, bool) {
	for _, i := range s.Invoices {
		if i.ID == id {
			return i, true
		}
	}
	return procurement.Invoice{}, false
}

// AssetByID finds an asset in the snapshot.
func (s State) AssetByID(id uuid.UUID) (procurement.Asset, bool) {
	for _, a := range s.Assets {
		if a.ID == id {
			return a, true
		}
	}
	return procurement.Asset{}, false
}

// UserByName finds a user by display name.
func (s State) UserByName(name string) (procurement.User, bool) {
	for _, u := range s.Users {
		if u.Name == name {
			return u, true
		}
	}
	return procurement.User{}, false
}

// UserByID finds a user in the snapshot.
func (s State) UserByID(id uuid.UUID) (procurement.User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return procurement.User{}, false
}

// VendorName resolves a vendor name, falling back to a placeholder for
// dangling references left behind by vendor deletion.
func (s State) VendorName(id uuid.UUID) string {
	return procurement.DisplayName(s.Vendors, id)
}

// PendingApprovalCount returns the number of requisitions still waiting on
// an approval decision.
func (s State) PendingApprovalCount() int {
	n := 0
	for _, pr := range s.Requisitions {
		switch pr.Status {
		case procurement.PRStatusPendingDept, procurement.PRStatusPendingProcurement:
			n++
		}
	}
	return n
}

// OverdueInvoiceCount returns the number of unpaid invoices past their due
// date as of now. Overdue is advisory only; the stored status never changes.
func (s State) OverdueInvoiceCount(now time.Time) int {
	n := 0
	for _, inv := range s.Invoices {
		if inv.Status != procurement.InvoiceStatusPaid && inv.DueDate.Before(now) {
			n++
		}
	}
	return n
}
