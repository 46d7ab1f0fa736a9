package store

import (
	"github.com/vms/backend/internal/domain/procurement"
)

// State is the full normalized state tree. It is treated as an immutable
// snapshot: the reducer is the sole writer and always produces a new State
// value, sharing unchanged collections with its predecessor.
//
// Collections are insertion-ordered with new records prepended, so
// most-recent-first is the natural list order everywhere.
type State struct {
	CurrentUser   procurement.User                  `json:"currentUser"`
	Users         []procurement.User                `json:"users"`
	Vendors       []procurement.Vendor              `json:"vendors"`
	Requisitions  []procurement.PurchaseRequisition `json:"prs"`
	RFQs          []procurement.RFQ                 `json:"rfqs"`
	Orders        []procurement.PurchaseOrder       `json:"pos"`
	Invoices      []procurement.Invoice             `json:"invoices"`
	Assets        []procurement.Asset               `json:"assets"`
	Settings      procurement.Settings              `json:"settings"`
	NavCollapsed  bool                              `json:"uiCollapsed"`
	Authenticated bool                              `json:"isAuthenticated"`
}
