package store

import (
	"github.com/google/uuid"
	"github.com/vms/backend/internal/domain/procurement"
)

// Reduce applies one intent to a snapshot and returns the next snapshot. It
// is pure and total: it performs no validation, only structural replacement,
// and unknown intents return the state unchanged.
func Reduce(s State, intent Intent) State {
	switch in := intent.(type) {
	case SetRole:
		s.CurrentUser.Role = in.Role
		return s
	case SetUser:
		if _, ok := s.UserByID(in.User.ID); !ok {
			s.Users = appendUser(s.Users, in.User)
		}
		s.CurrentUser = in.User
		return s
	case SetNavCollapsed:
		s.NavCollapsed = in.Collapsed
		return s
	case Login:
		s.CurrentUser = in.User
		s.Authenticated = true
		return s
	case Logout:
		s.Authenticated = false
		return s

	case AddVendor:
		s.Vendors = prependVendor(s.Vendors, in.Vendor)
		return s
	case UpdateVendor:
		s.Vendors = replaceVendor(s.Vendors, in.Vendor)
		return s
	case DeleteVendor:
		s.Vendors = removeVendor(s.Vendors, in.ID)
		return s

	case AddRequisition:
		s.Requisitions = prependRequisition(s.Requisitions, in.Requisition)
		return s
	case UpdateRequisition:
		s.Requisitions = replaceRequisition(s.Requisitions, in.Requisition)
		return s
	case DeleteRequisition:
		s.Requisitions = removeRequisition(s.Requisitions, in.ID)
		return s

	case AddRFQ:
		s.RFQs = prependRFQ(s.RFQs, in.RFQ)
		return s
	case UpdateRFQ:
		s.RFQs = replaceRFQ(s.RFQs, in.RFQ)
		return s
	case DeleteRFQ:
		s.RFQs = removeRFQ(s.RFQs, in.ID)
		return s

	case AddOrder:
		s.Orders = prependOrder(s.Orders, in.Order)
		return s
	case UpdateOrder:
		s.Orders = replaceOrder(s.Orders, in.Order)
		return s
	case DeleteOrder:
		s.Orders = removeOrder(s.Orders, in.ID)
		return s

	case AddInvoice:
		s.Invoices = prependInvoice(s.Invoices, in.Invoice)
		return s
	case UpdateInvoice:
		s.Invoices = replaceInvoice(s.Invoices, in.Invoice)
		return s
	case DeleteInvoice:
		s.Invoices = removeInvoice(s.Invoices, in.ID)
		return s

	case AddAsset:
		s.Assets = prependAsset(s.Assets, in.Asset)
		return s
	case UpdateAsset:
		s.Assets = replaceAsset(s.Assets, in.Asset)
		return s
	case DeleteAsset:
		s.Assets = removeAsset(s.Assets, in.ID)
		return s

	case UpdateSettings:
		s.Settings = in.Settings
		return s
	}
	return s
}

// The helpers below never mutate the input slice; they build fresh slices so
// prior snapshots stay valid for readers.

func appendUser(users []procurement.User, u procurement.User) []procurement.User {
	out := make([]procurement.User, 0, len(users)+1)
	out = append(out, users...)
	return append(out, u)
}

func prependVendor(vendors []procurement.Vendor, v procurement.Vendor) []procurement.Vendor {
	out := make([]procurement.Vendor, 0, len(vendors)+1)
	out = append(out, v)
	return append(out, vendors...)
}

func replaceVendor(vendors []procurement.Vendor, v procurement.Vendor) []procurement.Vendor {
	out := make([]procurement.Vendor, len(vendors))
	copy(out, vendors)
	for i := range out {
		if out[i].ID == v.ID {
			out[i] = v
			break
		}
	}
	return out
}

func removeVendor(vendors []procurement.Vendor, id uuid.UUID) []procurement.Vendor {
	out := make([]procurement.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if v.ID != id {
			out = append(out, v)
		}
	}
	return out
}

func prependRequisition(prs []procurement.PurchaseRequisition, p procurement.PurchaseRequisition) []procurement.PurchaseRequisition {
	out := make([]procurement.PurchaseRequisition, 0, len(prs)+1)
	out = append(out, p)
	return append(out, prs...)
}

func replaceRequisition(prs []procurement.PurchaseRequisition, p procurement.PurchaseRequisition) []procurement.PurchaseRequisition {
	out := make([]procurement.PurchaseRequisition, len(prs))
	copy(out, prs)
	for i := range out {
		if out[i].ID == p.ID {
			out[i] = p
			break
		}
	}
	return out
}

func removeRequisition(prs []procurement.PurchaseRequisition, id uuid.UUID) []procurement.PurchaseRequisition {
	out := make([]procurement.PurchaseRequisition, 0, len(prs))
	for _, p := range prs {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func prependRFQ(rfqs []procurement.RFQ, r procurement.RFQ) []procurement.RFQ {
	out := make([]procurement.RFQ, 0, len(rfqs)+1)
	out = append(out, r)
	return append(out, rfqs...)
}

func replaceRFQ(rfqs []procurement.RFQ, r procurement.RFQ) []procurement.RFQ {
	out := make([]procurement.RFQ, len(rfqs))
	copy(out, rfqs)
	for i := range out {
		if out[i].ID == r.ID {
			out[i] = r
			break
		}
	}
	return out
}

func removeRFQ(rfqs []procurement.RFQ, id uuid.UUID) []procurement.RFQ {
	out := make([]procurement.RFQ, 0, len(rfqs))
	for _, r := range rfqs {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

func prependOrder(pos []procurement.PurchaseOrder, p procurement.PurchaseOrder) []procurement.PurchaseOrder {
	out := make([]procurement.PurchaseOrder, 0, len(pos)+1)
	out = append(out, p)
	return append(out, pos...)
}

func replaceOrder(pos []procurement.PurchaseOrder, p procurement.PurchaseOrder) []procurement.PurchaseOrder {
	out := make([]procurement.PurchaseOrder, len(pos))
	copy(out, pos)
	for i := range out {
		if out[i].ID == p.ID {
			out[i] = p
			break
		}
	}
	return out
}

func removeOrder(pos []procurement.PurchaseOrder, id uuid.UUID) []procurement.PurchaseOrder {
	out := make([]procurement.PurchaseOrder, 0, len(pos))
	for _, p := range pos {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func prependInvoice(invoices []procurement.Invoice, i procurement.Invoice) []procurement.Invoice {
	out := make([]procurement.Invoice, 0, len(invoices)+1)
	out = append(out, i)
	return append(out, invoices...)
}

func replaceInvoice(invoices []procurement.Invoice, inv procurement.Invoice) []procurement.Invoice {
	out := make([]procurement.Invoice, len(invoices))
	copy(out, invoices)
	for i := range out {
		if out[i].ID == inv.ID {
			out[i] = inv
			break
		}
	}
	return out
}

func removeInvoice(invoices []procurement.Invoice, id uuid.UUID) []procurement.Invoice {
	out := make([]procurement.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.ID != id {
			out = append(out, inv)
		}
	}
	return out
}

func prependAsset(assets []procurement.Asset, a procurement.Asset) []procurement.Asset {
	out := make([]procurement.Asset, 0, len(assets)+1)
	out = append(out, a)
	return append(out, assets...)
}

func replaceAsset(assets []procurement.Asset, a procurement.Asset) []procurement.Asset {
	out := make([]procurement.Asset, len(assets))
	copy(out, assets)
	for i := range out {
		if out[i].ID == a.ID {
			out[i] = a
			break
		}
	}
	return out
}

func removeAsset(assets []procurement.Asset, id uuid.UUID) []procurement.Asset {
	out := make([]procurement.Asset, 0, len(assets))
	for _, a := range assets {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}
