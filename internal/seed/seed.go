package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vms/backend/internal/domain/procurement"
	"github.com/vms/backend/internal/domain/shared/valueobject"
	"github.com/vms/backend/internal/store"
)

// Demo builds the demo dataset used when no saved state exists: one user per
// role, a catalog of approved travel-tech vendors, requisitions spread
// across the approval ladder, RFQs with quotes, orders, invoices, assets and
// a populated settings tree.
func Demo(now time.Time) store.State {
	users := demoUsers()
	vendors := demoVendors()
	settings := demoSettings()

	prs := demoRequisitions(users, settings, now)
	rfqs := demoRFQs(prs, vendors, now)
	pos := demoOrders(prs, vendors, now)
	invoices := demoInvoices(pos, now)
	assets := demoAssets(vendors, now)

	return store.State{
		CurrentUser:  users[0],
		Users:        users,
		Vendors:      vendors,
		Requisitions: prs,
		RFQs:         rfqs,
		Orders:       pos,
		Invoices:     invoices,
		Assets:       assets,
		Settings:     settings,
	}
}

func demoUsers() []procurement.User {
	return []procurement.User{
		procurement.NewUser("Aarav Mehta", procurement.RoleAdmin, "Admin"),
		procurement.NewUser("Priya Sharma", procurement.RoleProcurement, "Finance"),
		procurement.NewUser("Rohan Kapoor", procurement.RoleFinance, "Finance"),
		procurement.NewUser("Sneha Iyer", procurement.RoleRequestor, "Engineering"),
	}
}

var vendorSeeds = []struct {
	name     string
	category procurement.VendorCategory
	risk     procurement.RiskLevel
	rating   int
	discount float64
}{
	{"Amadeus IT Group", procurement.CategorySoftware, procurement.RiskLow, 5, 10},
	{"Sabre Corporation", procurement.CategorySoftware, procurement.RiskLow, 4, 8},
	{"Travelport Worldwide", procurement.CategorySoftware, procurement.RiskMedium, 4, 5},
	{"Expedia Partner Solutions", procurement.CategoryServices, procurement.RiskLow, 5, 0},
	{"Booking Holdings Connect", procurement.CategoryServices, procurement.RiskLow, 4, 3},
	{"OTA Insight", procurement.CategorySoftware, procurement.RiskLow, 5, 12},
	{"Duetto Research", procurement.CategorySoftware, procurement.RiskMedium, 4, 7},
	{"IDeaS Revenue Solutions", procurement.CategorySoftware, procurement.RiskLow, 5, 6},
	{"SiteMinder", procurement.CategorySoftware, procurement.RiskLow, 4, 4},
	{"Cloudbeds", procurement.CategorySoftware, procurement.RiskMedium, 3, 0},
	{"TravelClick", procurement.CategoryServices, procurement.RiskMedium, 4, 5},
	{"Skyscanner Partners", procurement.CategoryServices, procurement.RiskLow, 4, 0},
	{"Kayak for Business", procurement.CategoryServices, procurement.RiskLow, 3, 2},
	{"Trivago Business Studio", procurement.CategorySoftware, procurement.RiskMedium, 3, 0},
	{"RateHawk", procurement.CategoryServices, procurement.RiskMedium, 4, 6},
	{"HotelBeds Group", procurement.CategoryServices, procurement.RiskLow, 5, 9},
	{"Dell Technologies", procurement.CategoryHardware, procurement.RiskLow, 5, 15},
	{"HP Enterprise", procurement.CategoryHardware, procurement.RiskLow, 4, 12},
	{"Lenovo India", procurement.CategoryHardware, procurement.RiskLow, 4, 10},
	{"Cisco Systems", procurement.CategoryHardware, procurement.RiskLow, 5, 8},
	{"Logitech Business", procurement.CategoryHardware, procurement.RiskLow, 4, 5},
	{"Staples Business Advantage", procurement.CategoryOfficeSupplies, procurement.RiskLow, 4, 7},
	{"Office Depot Pro", procurement.CategoryOfficeSupplies, procurement.RiskLow, 3, 5},
	{"Amazon Business", procurement.CategoryOfficeSupplies, procurement.RiskLow, 4, 3},
	{"WeWork Enterprise", procurement.CategoryServices, procurement.RiskMedium, 3, 0},
	{"Deloitte Advisory", procurement.CategoryServices, procurement.RiskLow, 5, 0},
	{"KPMG Consulting", procurement.CategoryServices, procurement.RiskLow, 4, 0},
	{"Ernst & Young GDS", procurement.CategoryServices, procurement.RiskLow, 4, 0},
	{"Salesforce", procurement.CategorySoftware, procurement.RiskLow, 5, 5},
	{"Atlassian", procurement.CategorySoftware, procurement.RiskLow, 5, 10},
}

func demoVendors() []procurement.Vendor {
	vendors := make([]procurement.Vendor, 0, len(vendorSeeds))
	for i, s := range vendorSeeds {
		vendors = append(vendors, procurement.Vendor{
			ID:            uuid.New(),
			Name:          s.name,
			Category:      s.category,
			ContactPerson: fmt.Sprintf("Account Manager %d", i+1),
			Email:         fmt.Sprintf("sales%d@example.com", i+1),
			Documents:     []string{},
			Status:        procurement.VendorStatusApproved,
			Rating:        s.rating,
			Risk:          s.risk,
			Discount:      decimal.NewFromFloat(s.discount),
		})
	}
	return vendors
}

func demoSettings() procurement.Settings {
	departments := make([]procurement.DepartmentInfo, 0, len(procurement.DefaultDepartmentNames))
	heads := map[string]string{
		"HR":          "Meera Nair",
		"Finance":     "Rohan Kapoor",
		"Product":     "Ankit Verma",
		"UXD":         "Divya Pillai",
		"Engineering": "Sanjay Rao",
		"Admin":       "Aarav Mehta",
		"Security":    "Vikram Singh",
	}
	for i, name := range procurement.DefaultDepartmentNames {
		departments = append(departments, procurement.DepartmentInfo{
			ID:         uuid.New(),
			Name:       name,
			HoD:        heads[name],
			BudgetCode: fmt.Sprintf("BUD-%03d", i+1),
		})
	}
	return procurement.Settings{
		Banks: []procurement.BankDetails{
			{
				ID:            uuid.New(),
				AccountName:   "RateGain Operating Account",
				AccountNumber: "000123456789",
				BankName:      "HDFC Bank",
				IfscOrSwift:   "HDFC0000123",
				Currency:      valueobject.USD,
			},
		},
		Departments: departments,
		Workflow:    procurement.WorkflowSettings{MakerCheckerEnabled: true},
	}
}

var prSeeds = []struct {
	department  string
	description string
	quantity    int
	unitCost    float64
	status      procurement.PRStatus
}{
	{"Engineering", "Channel manager API licenses", 10, 240, procurement.PRStatusApproved},
	{"Engineering", "Developer laptops", 5, 1400, procurement.PRStatusApproved},
	{"Product", "Rate parity analytics subscription", 1, 5800, procurement.PRStatusPendingProcurement},
	{"Finance", "Expense audit tooling", 3, 900, procurement.PRStatusPendingDept},
	{"UXD", "Design research panel credits", 20, 75, procurement.PRStatusApproved},
	{"Admin", "Office chairs", 15, 180, procurement.PRStatusPendingDept},
	{"Security", "Endpoint protection renewal", 120, 22, procurement.PRStatusApproved},
	{"HR", "Recruitment platform seats", 4, 650, procurement.PRStatusRejected},
}

func demoRequisitions(users []procurement.User, settings procurement.Settings, now time.Time) []procurement.PurchaseRequisition {
	requestor := users[len(users)-1]
	budgets := make(map[string]string, len(settings.Departments))
	for _, d := range settings.Departments {
		budgets[d.Name] = d.BudgetCode
	}
	prs := make([]procurement.PurchaseRequisition, 0, len(prSeeds))
	for i, s := range prSeeds {
		items := []procurement.RequisitionItem{{
			ID:          uuid.New(),
			Description: s.description,
			Category:    procurement.CategorySoftware,
			Quantity:    s.quantity,
			UnitCost:    decimal.NewFromFloat(s.unitCost),
		}}
		pr, err := procurement.NewPurchaseRequisition(requestor.ID, s.department,
			"Demo requisition: "+s.description, budgets[s.department], valueobject.USD, items,
			now.AddDate(0, 0, -(len(prSeeds)-i)))
		if err != nil {
			continue
		}
		pr = pr.WithStatus(s.status)
		if s.status == procurement.PRStatusApproved || s.status == procurement.PRStatusRejected {
			outcome := procurement.ApprovalApproved
			if s.status == procurement.PRStatusRejected {
				outcome = procurement.ApprovalRejected
			}
			decided := now.AddDate(0, 0, -1)
			for j := range pr.Approvals {
				pr.Approvals[j].Status = outcome
				pr.Approvals[j].Date = &decided
			}
		}
		prs = append(prs, pr)
	}
	return prs
}

// demoRFQs opens RFQs for the first few requisitions, each inviting two
// vendors and carrying one quote.
func demoRFQs(prs []procurement.PurchaseRequisition, vendors []procurement.Vendor, now time.Time) []procurement.RFQ {
	n := 5
	if len(prs) < n {
		n = len(prs)
	}
	rfqs := make([]procurement.RFQ, 0, n)
	for i := 0; i < n; i++ {
		a := vendors[(i*2)%len(vendors)]
		b := vendors[(i*2+1)%len(vendors)]
		rfq := procurement.NewRFQ(prs[i].ID, []uuid.UUID{a.ID, b.ID}, now.AddDate(0, 0, -3))
		rfq = rfq.WithQuote(procurement.Quote{
			ID:           uuid.New(),
			VendorID:     a.ID,
			Price:        prs[i].ExpectedTotal.Mul(decimal.NewFromFloat(0.95)).Round(2),
			Currency:     prs[i].Currency,
			DeliveryDays: 7 + i,
			Notes:        "Standard commercial terms",
		})
		rfqs = append(rfqs, rfq)
	}
	return rfqs
}

// demoOrders derives one open PO and one delivered PO from approved
// requisitions.
func demoOrders(prs []procurement.PurchaseRequisition, vendors []procurement.Vendor, now time.Time) []procurement.PurchaseOrder {
	pos := make([]procurement.PurchaseOrder, 0, 2)
	for _, pr := range prs {
		if pr.Status != procurement.PRStatusApproved || len(pos) == 2 {
			continue
		}
		prID := pr.ID
		vendor := vendors[len(pos)%len(vendors)]
		po := procurement.NewPurchaseOrder(nil, &prID, vendor.ID,
			procurement.SnapshotItems(pr.Items), pr.ExpectedTotal, nil, now.AddDate(0, 0, -2))
		if len(pos) == 1 {
			po = po.WithDeliveryConfirmed()
		}
		pos = append(pos, po)
	}
	return pos
}

func demoInvoices(pos []procurement.PurchaseOrder, now time.Time) []procurement.Invoice {
	invoices := make([]procurement.Invoice, 0, len(pos))
	for _, po := range pos {
		if !po.DeliveryConfirmed {
			continue
		}
		invoices = append(invoices, procurement.NewInvoice(po.VendorID, po.ID, po.Total,
			now.AddDate(0, 1, 0), po, now.AddDate(0, 0, -1)))
	}
	return invoices
}

func demoAssets(vendors []procurement.Vendor, now time.Time) []procurement.Asset {
	names := []string{
		"Channel Manager Platform", "Rate Shopping Suite", "Revenue Analytics License",
		"Booking Engine Cluster", "CRS Integration Gateway", "Design Workstation Fleet",
		"Conference AV System", "Endpoint Security Suite", "HR Management Platform",
		"Finance Reporting Stack",
	}
	assets := make([]procurement.Asset, 0, len(names))
	departments := []string{"Engineering", "Product", "Finance", "Engineering", "Engineering",
		"UXD", "Admin", "Security", "HR", "Finance"}
	for i, name := range names {
		vendor := vendors[i%len(vendors)]
		assets = append(assets, procurement.NewAsset(vendor.ID, name, "", departments[i],
			now.AddDate(0, (i%12)+1, 0), i%3 == 0, ""))
	}
	return assets
}
