package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vms/backend/internal/domain/procurement"
)

func vendor(name string) procurement.Vendor {
	return procurement.Vendor{ID: uuid.New(), Name: name, Status: procurement.VendorStatusApproved}
}

func TestReduceVendorLifecycle(t *testing.T) {
	s := State{}

	a := vendor("Amadeus")
	b := vendor("Sabre")
	s = Reduce(s, AddVendor{Vendor: a})
	s = Reduce(s, AddVendor{Vendor: b})

	t.Run("add prepends", func(t *testing.T) {
		require.Len(t, s.Vendors, 2)
		assert.Equal(t, b.ID, s.Vendors[0].ID)
		assert.Equal(t, a.ID, s.Vendors[1].ID)
	})

	t.Run("update replaces in place", func(t *testing.T) {
		renamed := a
		renamed.Name = "Amadeus IT Group"
		next := Reduce(s, UpdateVendor{Vendor: renamed})
		got, ok := next.VendorByID(a.ID)
		require.True(t, ok)
		assert.Equal(t, "Amadeus IT Group", got.Name)
		// prior snapshot untouched
		old, _ := s.VendorByID(a.ID)
		assert.Equal(t, "Amadeus", old.Name)
	})

	t.Run("update of missing id is a no-op", func(t *testing.T) {
		ghost := vendor("Ghost")
		next := Reduce(s, UpdateVendor{Vendor: ghost})
		assert.Len(t, next.Vendors, 2)
		_, ok := next.VendorByID(ghost.ID)
		assert.False(t, ok)
	})

	t.Run("delete removes only the target", func(t *testing.T) {
		next := Reduce(s, DeleteVendor{ID: a.ID})
		require.Len(t, next.Vendors, 1)
		assert.Equal(t, b.ID, next.Vendors[0].ID)
	})

	t.Run("delete of missing id is a no-op", func(t *testing.T) {
		next := Reduce(s, DeleteVendor{ID: uuid.New()})
		assert.Len(t, next.Vendors, 2)
	})
}

func TestReduceSessionIntents(t *testing.T) {
	admin := procurement.NewUser("Aarav", procurement.RoleAdmin, "Admin")
	s := State{CurrentUser: admin, Users: []procurement.User{admin}}

	t.Run("set role changes current user in place", func(t *testing.T) {
		next := Reduce(s, SetRole{Role: procurement.RoleFinance})
		assert.Equal(t, procurement.RoleFinance, next.CurrentUser.Role)
	})

	t.Run("set user appends unknown users", func(t *testing.T) {
		fresh := procurement.NewUser("Priya", procurement.RoleAdmin, "Finance")
		next := Reduce(s, SetUser{User: fresh})
		require.Len(t, next.Users, 2)
		assert.Equal(t, fresh.ID, next.Users[1].ID)
		assert.Equal(t, fresh.ID, next.CurrentUser.ID)
	})

	t.Run("set user with known user does not duplicate", func(t *testing.T) {
		next := Reduce(s, SetUser{User: admin})
		assert.Len(t, next.Users, 1)
	})

	t.Run("login and logout flip authentication only", func(t *testing.T) {
		next := Reduce(s, Login{User: admin})
		assert.True(t, next.Authenticated)
		next = Reduce(next, Logout{})
		assert.False(t, next.Authenticated)
		assert.Equal(t, admin.ID, next.CurrentUser.ID)
	})

	t.Run("nav collapse toggle", func(t *testing.T) {
		next := Reduce(s, SetNavCollapsed{Collapsed: true})
		assert.True(t, next.NavCollapsed)
	})
}

func TestSummaryCounts(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	s := State{
		Requisitions: []procurement.PurchaseRequisition{
			{ID: uuid.New(), Status: procurement.PRStatusPendingDept},
			{ID: uuid.New(), Status: procurement.PRStatusPendingProcurement},
			{ID: uuid.New(), Status: procurement.PRStatusApproved},
			{ID: uuid.New(), Status: procurement.PRStatusConvertedToPO},
		},
		Invoices: []procurement.Invoice{
			{ID: uuid.New(), Status: procurement.InvoiceStatusSubmitted, DueDate: now.AddDate(0, 0, -5)},
			{ID: uuid.New(), Status: procurement.InvoiceStatusPaid, DueDate: now.AddDate(0, 0, -5)},
			{ID: uuid.New(), Status: procurement.InvoiceStatusApproved, DueDate: now.AddDate(0, 0, 5)},
		},
	}

	assert.Equal(t, 2, s.PendingApprovalCount())
	// unpaid and past due; paid invoices never count
	assert.Equal(t, 1, s.OverdueInvoiceCount(now))
}

func TestReduceDeletesNeverCascade(t *testing.T) {
	prID := uuid.New()
	rfq := procurement.NewRFQ(prID, nil, time.Now())
	po := procurement.NewPurchaseOrder(nil, &prID, uuid.New(), nil, decimal.NewFromInt(10), nil, time.Now())

	s := State{
		Requisitions: []procurement.PurchaseRequisition{{ID: prID}},
		RFQs:         []procurement.RFQ{rfq},
		Orders:       []procurement.PurchaseOrder{po},
	}

	next := Reduce(s, DeleteRequisition{ID: prID})
	assert.Empty(t, next.Requisitions)
	assert.Len(t, next.RFQs, 1)
	assert.Len(t, next.Orders, 1)
}

func TestReduceInvoiceAndAssetDeletes(t *testing.T) {
	poID := uuid.New()
	po := procurement.NewPurchaseOrder(nil, nil, uuid.New(), nil, decimal.NewFromInt(72), nil, time.Now())
	po.ID = poID
	inv := procurement.Invoice{ID: uuid.New(), POID: poID, Amount: decimal.NewFromInt(72)}
	asset := procurement.Asset{ID: uuid.New(), VendorID: uuid.New(), Name: "Rate shopping suite"}

	s := State{
		Invoices: []procurement.Invoice{inv},
		Assets:   []procurement.Asset{asset},
		Orders:   []procurement.PurchaseOrder{po},
	}

	t.Run("delete invoice leaves the PO alone", func(t *testing.T) {
		next := Reduce(s, DeleteInvoice{ID: inv.ID})
		assert.Empty(t, next.Invoices)
		assert.Len(t, next.Orders, 1)
		// prior snapshot untouched
		assert.Len(t, s.Invoices, 1)
	})

	t.Run("delete asset removes only the target", func(t *testing.T) {
		next := Reduce(s, DeleteAsset{ID: asset.ID})
		assert.Empty(t, next.Assets)
		assert.Len(t, next.Invoices, 1)
	})

	t.Run("delete of missing ids is a no-op", func(t *testing.T) {
		next := Reduce(s, DeleteInvoice{ID: uuid.New()})
		next = Reduce(next, DeleteAsset{ID: uuid.New()})
		assert.Len(t, next.Invoices, 1)
		assert.Len(t, next.Assets, 1)
	})
}

func TestReduceUpdateSettingsWholesale(t *testing.T) {
	s := State{Settings: procurement.Settings{Workflow: procurement.WorkflowSettings{MakerCheckerEnabled: true}}}
	next := Reduce(s, UpdateSettings{Settings: procurement.Settings{}})
	assert.False(t, next.Settings.Workflow.MakerCheckerEnabled)
}
