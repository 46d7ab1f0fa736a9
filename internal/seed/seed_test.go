package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vms/backend/internal/domain/procurement"
)

func TestDemo(t *testing.T) {
	now := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	state := Demo(now)

	t.Run("one user per role", func(t *testing.T) {
		require.Len(t, state.Users, 4)
		roles := map[procurement.Role]bool{}
		for _, u := range state.Users {
			roles[u.Role] = true
		}
		assert.Len(t, roles, 4)
		assert.Equal(t, state.Users[0].ID, state.CurrentUser.ID)
	})

	t.Run("vendors are approved with valid fields", func(t *testing.T) {
		require.NotEmpty(t, state.Vendors)
		for _, v := range state.Vendors {
			assert.Equal(t, procurement.VendorStatusApproved, v.Status)
			assert.True(t, v.Category.IsValid())
			assert.NotNil(t, v.Documents)
		}
	})

	t.Run("settings carry the full department directory", func(t *testing.T) {
		assert.Empty(t, state.Settings.MissingDefaultDepartments())
		assert.True(t, state.Settings.Workflow.MakerCheckerEnabled)
		require.NotEmpty(t, state.Settings.Banks)
	})

	t.Run("requisitions reference real departments and budgets", func(t *testing.T) {
		require.NotEmpty(t, state.Requisitions)
		departments := map[string]bool{}
		for _, d := range state.Settings.Departments {
			departments[d.Name] = true
		}
		for _, pr := range state.Requisitions {
			assert.True(t, departments[pr.Department], pr.Department)
			assert.True(t, pr.Status.IsValid())
			assert.False(t, pr.ExpectedTotal.IsNegative())
		}
	})

	t.Run("rfqs point at seeded requisitions", func(t *testing.T) {
		ids := map[string]bool{}
		for _, pr := range state.Requisitions {
			ids[pr.ID.String()] = true
		}
		for _, rfq := range state.RFQs {
			assert.True(t, ids[rfq.FromPRID.String()])
			assert.NotEmpty(t, rfq.InvitedVendorIDs)
		}
	})

	t.Run("delivered orders have matching invoices", func(t *testing.T) {
		for _, inv := range state.Invoices {
			po, ok := findOrder(state.Orders, inv)
			require.True(t, ok)
			assert.True(t, po.DeliveryConfirmed)
			assert.True(t, inv.ThreeWayMatch)
		}
	})

	t.Run("assets reference seeded vendors", func(t *testing.T) {
		require.NotEmpty(t, state.Assets)
		vendorIDs := map[string]bool{}
		for _, v := range state.Vendors {
			vendorIDs[v.ID.String()] = true
		}
		for _, a := range state.Assets {
			assert.True(t, vendorIDs[a.VendorID.String()])
		}
	})
}

func findOrder(orders []procurement.PurchaseOrder, inv procurement.Invoice) (procurement.PurchaseOrder, bool) {
	for _, po := range orders {
		if po.ID == inv.POID {
			return po, true
		}
	}
	return procurement.PurchaseOrder{}, false
}
