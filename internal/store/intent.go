package store

import (
	"github.com/google/uuid"
	"github.com/vms/backend/internal/domain/procurement"
)

// Intent is a fully-formed state change handed to the reducer. Intents carry
// validated payloads: all invariant checks happen in the workflow layer
// before an intent is constructed, never in the reducer.
type Intent interface {
	isIntent()
}

// Session intents.

// SetRole changes the current user's role in place.
type SetRole struct{ Role procurement.Role }

// SetUser switches the current user to the named user, appending a new user
// record (inheriting the current role) when the name is unknown.
type SetUser struct{ User procurement.User }

// SetNavCollapsed toggles the navigation collapse flag.
type SetNavCollapsed struct{ Collapsed bool }

// Login sets the current user and marks the session authenticated.
type Login struct{ User procurement.User }

// Logout clears the authenticated flag; the current user is kept.
type Logout struct{}

// Entity intents. Add prepends, Update replaces by identifier, Delete
// removes by identifier. Updating or deleting a missing record is a no-op.

type AddVendor struct{ Vendor procurement.Vendor }
type UpdateVendor struct{ Vendor procurement.Vendor }
type DeleteVendor struct{ ID uuid.UUID }

type AddRequisition struct{ Requisition procurement.PurchaseRequisition }
type UpdateRequisition struct{ Requisition procurement.PurchaseRequisition }
type DeleteRequisition struct{ ID uuid.UUID }

type AddRFQ struct{ RFQ procurement.RFQ }
type UpdateRFQ struct{ RFQ procurement.RFQ }
type DeleteRFQ struct{ ID uuid.UUID }

type AddOrder struct{ Order procurement.PurchaseOrder }
type UpdateOrder struct{ Order procurement.PurchaseOrder }
type DeleteOrder struct{ ID uuid.UUID }

type AddInvoice struct{ Invoice procurement.Invoice }
type UpdateInvoice struct{ Invoice procurement.Invoice }
type DeleteInvoice struct{ ID uuid.UUID }

type AddAsset struct{ Asset procurement.Asset }
type UpdateAsset struct{ Asset procurement.Asset }
type DeleteAsset struct{ ID uuid.UUID }

// UpdateSettings replaces the settings tree wholesale.
type UpdateSettings struct{ Settings procurement.Settings }

func (SetRole) isIntent()           {}
func (SetUser) isIntent()           {}
func (SetNavCollapsed) isIntent()   {}
func (Login) isIntent()             {}
func (Logout) isIntent()            {}
func (AddVendor) isIntent()         {}
func (UpdateVendor) isIntent()      {}
func (DeleteVendor) isIntent()      {}
func (AddRequisition) isIntent()    {}
func (UpdateRequisition) isIntent() {}
func (DeleteRequisition) isIntent() {}
func (AddRFQ) isIntent()            {}
func (UpdateRFQ) isIntent()         {}
func (DeleteRFQ) isIntent()         {}
func (AddOrder) isIntent()          {}
func (UpdateOrder) isIntent()       {}
func (DeleteOrder) isIntent()       {}
func (AddInvoice) isIntent()        {}
func (UpdateInvoice) isIntent()     {}
func (DeleteInvoice) isIntent()     {}
func (AddAsset) isIntent()          {}
func (UpdateAsset) isIntent()       {}
func (DeleteAsset) isIntent()       {}
func (UpdateSettings) isIntent()    {}
