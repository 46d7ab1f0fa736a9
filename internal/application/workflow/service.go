package workflow

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vms/backend/internal/domain/procurement"
	"github.com/vms/backend/internal/domain/shared"
	"github.com/vms/backend/internal/domain/shared/valueobject"
	"github.com/vms/backend/internal/store"
	"go.uber.org/zap"
)

// Engine executes procurement workflow transitions. Every operation follows
// the same shape: validate the request, read a snapshot, check invariants,
// then dispatch fully-formed intents. Derived records (auto-invoices,
// assets) are created inside the same operation that triggers them.
type Engine struct {
	store    *store.Store
	validate *validator.Validate
	log      *zap.Logger
	now      func() time.Time
}

// NewEngine wires an engine over the given store. now may be nil, in which
// case wall-clock time is used.
func NewEngine(st *store.Store, log *zap.Logger, now func() time.Time) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{
		store:    st,
		validate: validator.New(),
		log:      log,
		now:      now,
	}
}

// Snapshot exposes the current state for read-side callers.
func (e *Engine) Snapshot() store.State {
	return e.store.Snapshot()
}

// ---- session ----

// SetRole switches the current user's role in place.
func (e *Engine) SetRole(role procurement.Role) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(role))
	}
	e.store.Dispatch(store.SetRole{Role: role})
	return nil
}

// SetUser switches the active user by display name. An unknown name creates
// a new user inheriting the current role and department.
func (e *Engine) SetUser(name string) (procurement.User, error) {
	if name == "" {
		return procurement.User{}, shared.ErrInvalidInput
	}
	snap := e.store.Snapshot()
	user, ok := snap.UserByName(name)
	if !ok {
		user = procurement.NewUser(name, snap.CurrentUser.Role, snap.CurrentUser.Department)
	}
	e.store.Dispatch(store.SetUser{User: user})
	return user, nil
}

// Login authenticates as the named user. The user must already exist.
func (e *Engine) Login(name string) (procurement.User, error) {
	snap := e.store.Snapshot()
	user, ok := snap.UserByName(name)
	if !ok {
		return procurement.User{}, shared.NewDomainError("UNKNOWN_USER", "No user named "+name)
	}
	e.store.Dispatch(store.Login{User: user})
	return user, nil
}

// Logout clears the authenticated flag. The current user is kept so a
// subsequent login can restore the session quickly.
func (e *Engine) Logout() {
	e.store.Dispatch(store.Logout{})
}

// SetNavCollapsed toggles the navigation collapse preference.
func (e *Engine) SetNavCollapsed(collapsed bool) {
	e.store.Dispatch(store.SetNavCollapsed{Collapsed: collapsed})
}

// ---- vendors ----

// CreateVendor registers a vendor. Status defaults to Pending Approval so
// new vendors pass through review before award eligibility.
func (e *Engine) CreateVendor(req CreateVendorRequest) (procurement.Vendor, error) {
	if err := e.validate.Struct(req); err != nil {
		return procurement.Vendor{}, invalid(err)
	}
	status := req.Status
	if status == "" {
		status = procurement.VendorStatusPendingApproval
	}
	if !status.IsValid() {
		return procurement.Vendor{}, shared.NewDomainError("INVALID_STATUS", "Unknown vendor status: "+string(status))
	}
	documents := req.Documents
	if documents == nil {
		documents = []string{}
	}
	v := procurement.Vendor{
		ID:            uuid.New(),
		Name:          req.Name,
		Category:      req.Category,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Bank:          req.Bank,
		TaxID:         req.TaxID,
		Documents:     documents,
		Status:        status,
		Rating:        req.Rating,
		Risk:          req.Risk,
		Discount:      decimal.NewFromFloat(req.Discount),
		ContractURL:   req.ContractURL,
	}
	e.store.Dispatch(store.AddVendor{Vendor: v})
	e.log.Info("vendor created", zap.String("vendor", v.Name), zap.String("status", string(v.Status)))
	return v, nil
}

// UpdateVendor replaces a vendor record wholesale.
func (e *Engine) UpdateVendor(v procurement.Vendor) (procurement.Vendor, error) {
	snap := e.store.Snapshot()
	if _, ok := snap.VendorByID(v.ID); !ok {
		return procurement.Vendor{}, shared.ErrNotFound
	}
	if !v.Status.IsValid() {
		return procurement.Vendor{}, shared.NewDomainError("INVALID_STATUS", "Unknown vendor status: "+string(v.Status))
	}
	e.store.Dispatch(store.UpdateVendor{Vendor: v})
	return v, nil
}

// ApproveVendor moves a vendor to Approved.
func (e *Engine) ApproveVendor(vendorID uuid.UUID) (procurement.Vendor, error) {
	snap := e.store.Snapshot()
	v, ok := snap.VendorByID(vendorID)
	if !ok {
		return procurement.Vendor{}, shared.ErrNotFound
	}
	updated := v.WithStatus(procurement.VendorStatusApproved)
	e.store.Dispatch(store.UpdateVendor{Vendor: updated})
	return updated, nil
}

// DeleteVendor removes a vendor. POs, invoices and assets that reference it
// are left untouched; readers resolve the dangling reference to a
// placeholder name.
func (e *Engine) DeleteVendor(vendorID uuid.UUID) error {
	snap := e.store.Snapshot()
	if _, ok := snap.VendorByID(vendorID); !ok {
		return shared.ErrNotFound
	}
	e.store.Dispatch(store.DeleteVendor{ID: vendorID})
	return nil
}

// ---- requisitions ----

// SubmitPR creates a purchase requisition in Pending Dept Approval.
func (e *Engine) SubmitPR(req SubmitPRRequest) (procurement.PurchaseRequisition, error) {
	if err := e.validate.Struct(req); err != nil {
		return procurement.PurchaseRequisition{}, invalid(err)
	}
	items := itemsFromInputs(req.Items)
	pr, err := procurement.NewPurchaseRequisition(req.RequestedByUserID, req.Department, req.Justification, req.BudgetCode, req.Currency, items, e.now())
	if err != nil {
		return procurement.PurchaseRequisition{}, err
	}
	pr.DesiredDeliveryDate = req.DesiredDeliveryDate
	e.store.Dispatch(store.AddRequisition{Requisition: pr})
	e.log.Info("requisition submitted",
		zap.String("department", pr.Department),
		zap.String("expectedTotal", pr.ExpectedTotal.StringFixed(2)))
	return pr, nil
}

// UpdatePRDetails edits a requisition's header fields and, when items are
// supplied, replaces the lines and recomputes the expected total.
func (e *Engine) UpdatePRDetails(req UpdatePRRequest) (procurement.PurchaseRequisition, error) {
	if err := e.validate.Struct(req); err != nil {
		return procurement.PurchaseRequisition{}, invalid(err)
	}
	snap := e.store.Snapshot()
	pr, ok := snap.RequisitionByID(req.ID)
	if !ok {
		return procurement.PurchaseRequisition{}, shared.ErrNotFound
	}
	if req.Department != "" {
		pr.Department = req.Department
	}
	if req.BudgetCode != "" {
		pr.BudgetCode = req.BudgetCode
	}
	if req.Currency != "" {
		pr.Currency = req.Currency
	}
	if req.Justification != "" {
		pr.Justification = req.Justification
	}
	if req.Items != nil {
		pr = pr.WithItems(itemsFromInputs(req.Items))
	}
	e.store.Dispatch(store.UpdateRequisition{Requisition: pr})
	return pr, nil
}

// AdvancePRApproval moves a requisition one step along the approval ladder:
// Pending Dept Approval -> Pending Procurement Approval -> Approved, with
// Rejected reachable from either pending stage. Conversion statuses are
// written only by the conversion operations, never here.
func (e *Engine) AdvancePRApproval(prID uuid.UUID, next procurement.PRStatus) (procurement.PurchaseRequisition, error) {
	snap := e.store.Snapshot()
	pr, ok := snap.RequisitionByID(prID)
	if !ok {
		return procurement.PurchaseRequisition{}, shared.ErrNotFound
	}
	if !pr.Status.CanAdvanceTo(next) {
		return procurement.PurchaseRequisition{}, shared.NewDomainError("INVALID_STATE",
			"Cannot move requisition from "+string(pr.Status)+" to "+string(next))
	}
	updated := pr.WithStatus(next)
	if next == procurement.PRStatusApproved || next == procurement.PRStatusRejected {
		updated.Approvals = settleApprovals(updated.Approvals, next, e.now())
	}
	e.store.Dispatch(store.UpdateRequisition{Requisition: updated})
	return updated, nil
}

// DeletePR removes a requisition. RFQs and POs already derived from it are
// never reverted or cascaded.
func (e *Engine) DeletePR(prID uuid.UUID) error {
	snap := e.store.Snapshot()
	if _, ok := snap.RequisitionByID(prID); !ok {
		return shared.ErrNotFound
	}
	e.store.Dispatch(store.DeleteRequisition{ID: prID})
	return nil
}

// ---- conversions ----

// ConvertPRToRFQ opens an RFQ for the requisition. An empty invited set
// invites every vendor currently on file. Converting the same requisition
// twice is permitted and produces independent RFQs.
func (e *Engine) ConvertPRToRFQ(prID uuid.UUID, invitedVendorIDs []uuid.UUID) (procurement.RFQ, error) {
	snap := e.store.Snapshot()
	pr, ok := snap.RequisitionByID(prID)
	if !ok {
		return procurement.RFQ{}, shared.ErrNotFound
	}
	invited := invitedVendorIDs
	if len(invited) == 0 {
		invited = make([]uuid.UUID, 0, len(snap.Vendors))
		for _, v := range snap.Vendors {
			invited = append(invited, v.ID)
		}
	}
	rfq := procurement.NewRFQ(prID, invited, e.now())
	e.store.Dispatch(store.AddRFQ{RFQ: rfq})
	e.store.Dispatch(store.UpdateRequisition{Requisition: pr.WithStatus(procurement.PRStatusConvertedToRFQ)})
	e.log.Info("requisition converted to RFQ", zap.Int("invitedVendors", len(invited)))
	return rfq, nil
}

// ConvertPRToPO creates a purchase order directly from a requisition at its
// gross item total, skipping the RFQ stage. A zero vendorID picks the first
// vendor on file; at least one vendor must exist.
func (e *Engine) ConvertPRToPO(prID, vendorID uuid.UUID) (procurement.PurchaseOrder, error) {
	snap := e.store.Snapshot()
	pr, ok := snap.RequisitionByID(prID)
	if !ok {
		return procurement.PurchaseOrder{}, shared.ErrNotFound
	}
	if vendorID == uuid.Nil {
		if len(snap.Vendors) == 0 {
			return procurement.PurchaseOrder{}, shared.ErrNoVendors
		}
		vendorID = snap.Vendors[0].ID
	}
	prID = pr.ID
	po := procurement.NewPurchaseOrder(nil, &prID, vendorID,
		procurement.SnapshotItems(pr.Items), procurement.ItemsTotal(pr.Items), pr.DesiredDeliveryDate, e.now())
	e.store.Dispatch(store.AddOrder{Order: po})
	e.store.Dispatch(store.UpdateRequisition{Requisition: pr.WithStatus(procurement.PRStatusConvertedToPO)})
	e.log.Info("requisition converted to PO", zap.String("total", po.Total.StringFixed(2)))
	return po, nil
}

// ---- RFQs ----

// AddQuote records a vendor's offer on an open RFQ. The vendor must be in
// the invited set; currency defaults to the source requisition's currency.
func (e *Engine) AddQuote(rfqID uuid.UUID, req AddQuoteRequest) (procurement.RFQ, error) {
	if err := e.validate.Struct(req); err != nil {
		return procurement.RFQ{}, invalid(err)
	}
	snap := e.store.Snapshot()
	rfq, ok := snap.RFQByID(rfqID)
	if !ok {
		return procurement.RFQ{}, shared.ErrNotFound
	}
	if rfq.IsAwarded() {
		return procurement.RFQ{}, shared.NewDomainError("INVALID_STATE", "RFQ is already awarded")
	}
	if !rfq.IsInvited(req.VendorID) {
		return procurement.RFQ{}, shared.NewDomainError("NOT_INVITED", "Vendor is not invited to this RFQ")
	}
	currency := req.Currency
	if currency == "" {
		if pr, ok := snap.RequisitionByID(rfq.FromPRID); ok {
			currency = pr.Currency
		} else {
			currency = valueobject.DefaultCurrency
		}
	}
	quote := procurement.Quote{
		ID:           uuid.New(),
		VendorID:     req.VendorID,
		Price:        decimal.NewFromFloat(req.Price),
		Currency:     currency,
		DeliveryDays: req.DeliveryDays,
		Notes:        req.Notes,
	}
	updated := rfq.WithQuote(quote)
	e.store.Dispatch(store.UpdateRFQ{RFQ: updated})
	return updated, nil
}

// AwardQuote selects a quote and derives a purchase order from it. The PO
// total is the requisition's gross item total with the winning vendor's
// standing discount applied and rounded to cents; the quoted price itself is
// advisory. Expected delivery is the quoted lead time in business days from
// now. Awarding is terminal for the RFQ.
func (e *Engine) AwardQuote(rfqID, quoteID uuid.UUID) (procurement.PurchaseOrder, error) {
	snap := e.store.Snapshot()
	rfq, ok := snap.RFQByID(rfqID)
	if !ok {
		return procurement.PurchaseOrder{}, shared.ErrNotFound
	}
	if rfq.IsAwarded() {
		return procurement.PurchaseOrder{}, shared.NewDomainError("INVALID_STATE", "RFQ is already awarded")
	}
	quote, ok := rfq.QuoteByID(quoteID)
	if !ok {
		return procurement.PurchaseOrder{}, shared.NewDomainError("QUOTE_NOT_FOUND", "No such quote on this RFQ")
	}

	baseTotal := quote.Price
	currency := quote.Currency
	var items []procurement.PurchaseOrderItem
	pr, havePR := snap.RequisitionByID(rfq.FromPRID)
	if havePR {
		baseTotal = procurement.ItemsTotal(pr.Items)
		currency = pr.Currency
		items = procurement.SnapshotItems(pr.Items)
	}
	if currency == "" {
		currency = valueobject.DefaultCurrency
	}

	discount := decimal.Zero
	if vendor, ok := snap.VendorByID(quote.VendorID); ok {
		discount = vendor.Discount
	}
	gross, err := valueobject.NewMoney(baseTotal, currency)
	if err != nil {
		return procurement.PurchaseOrder{}, err
	}
	net := gross.ApplyDiscount(discount).Round2()

	now := e.now()
	expected := shared.AddBusinessDays(now, quote.DeliveryDays)
	rfqID = rfq.ID
	fromPRID := rfq.FromPRID
	po := procurement.NewPurchaseOrder(&rfqID, &fromPRID, quote.VendorID, items, net.Amount(), &expected, now)

	e.store.Dispatch(store.UpdateRFQ{RFQ: rfq.WithAward(quoteID)})
	e.store.Dispatch(store.AddOrder{Order: po})
	if havePR {
		e.store.Dispatch(store.UpdateRequisition{Requisition: pr.WithStatus(procurement.PRStatusConvertedToPO)})
	}
	e.log.Info("quote awarded",
		zap.String("netTotal", po.Total.StringFixed(2)),
		zap.String("discount", discount.String()))
	return po, nil
}

// DeleteRFQ removes an RFQ. POs already awarded from it keep their dangling
// source reference.
func (e *Engine) DeleteRFQ(rfqID uuid.UUID) error {
	snap := e.store.Snapshot()
	if _, ok := snap.RFQByID(rfqID); !ok {
		return shared.ErrNotFound
	}
	e.store.Dispatch(store.DeleteRFQ{ID: rfqID})
	return nil
}

// ---- purchase orders ----

// VendorAcceptPO marks a PO accepted by the vendor. Terms default to Net 30;
// neither terms nor an already-set expected date is overwritten.
func (e *Engine) VendorAcceptPO(poID uuid.UUID, terms string, expectedDate *time.Time) (procurement.PurchaseOrder, error) {
	snap := e.store.Snapshot()
	po, ok := snap.OrderByID(poID)
	if !ok {
		return procurement.PurchaseOrder{}, shared.ErrNotFound
	}
	if po.Status == procurement.POStatusClosed {
		return procurement.PurchaseOrder{}, shared.NewDomainError("INVALID_STATE", "PO is closed")
	}
	if terms == "" {
		terms = "Net 30"
	}
	updated := po.WithVendorAcceptance(terms, expectedDate)
	e.store.Dispatch(store.UpdateOrder{Order: updated})
	return updated, nil
}

// ConfirmDelivery records goods receipt on an open PO and runs the
// post-delivery chain in one step: the PO moves to Delivered, the source
// requisition is marked Approved as its terminal fulfilled state, and an
// invoice is auto-created for the PO total due 30 business days out. The
// auto-invoice evaluates its three-way match against the just-delivered PO,
// so it matches by construction.
func (e *Engine) ConfirmDelivery(poID uuid.UUID) (procurement.PurchaseOrder, procurement.Invoice, error) {
	snap := e.store.Snapshot()
	po, ok := snap.OrderByID(poID)
	if !ok {
		return procurement.PurchaseOrder{}, procurement.Invoice{}, shared.ErrNotFound
	}
	if po.DeliveryConfirmed {
		return procurement.PurchaseOrder{}, procurement.Invoice{}, shared.NewDomainError("INVALID_STATE", "Delivery already confirmed")
	}
	if !po.Status.CanTransitionTo(procurement.POStatusDelivered) {
		return procurement.PurchaseOrder{}, procurement.Invoice{}, shared.NewDomainError("INVALID_STATE",
			"Cannot confirm delivery on a "+string(po.Status)+" PO")
	}

	delivered := po.WithDeliveryConfirmed()
	e.store.Dispatch(store.UpdateOrder{Order: delivered})

	if po.FromPRID != nil {
		if pr, ok := snap.RequisitionByID(*po.FromPRID); ok {
			e.store.Dispatch(store.UpdateRequisition{Requisition: pr.WithStatus(procurement.PRStatusApproved)})
		}
	}

	now := e.now()
	inv := procurement.NewInvoice(po.VendorID, po.ID, po.Total, shared.AddBusinessDays(now, 30), delivered, now)
	e.store.Dispatch(store.AddInvoice{Invoice: inv})
	e.log.Info("delivery confirmed, invoice auto-created",
		zap.String("amount", inv.Amount.StringFixed(2)),
		zap.Bool("threeWayMatch", inv.ThreeWayMatch))
	return delivered, inv, nil
}

// AddAssetFromPO registers an asset derived from a delivered PO's first line
// item. Department is inherited from the source requisition when it still
// exists.
func (e *Engine) AddAssetFromPO(poID uuid.UUID) (procurement.Asset, error) {
	snap := e.store.Snapshot()
	po, ok := snap.OrderByID(poID)
	if !ok {
		return procurement.Asset{}, shared.ErrNotFound
	}
	if !po.DeliveryConfirmed {
		return procurement.Asset{}, shared.NewDomainError("INVALID_STATE", "PO has not been delivered")
	}
	department := ""
	if po.FromPRID != nil {
		if pr, ok := snap.RequisitionByID(*po.FromPRID); ok {
			department = pr.Department
		}
	}
	asset := procurement.AssetFromDeliveredPO(po, department, e.now())
	e.store.Dispatch(store.AddAsset{Asset: asset})
	return asset, nil
}

// CloseAndRatePO closes a delivered PO and records a 1-5 vendor rating. The
// rating overwrites any prior value; a dangling vendor reference skips the
// rating but still closes the PO.
func (e *Engine) CloseAndRatePO(poID uuid.UUID, rating int) (procurement.PurchaseOrder, error) {
	if rating < 1 || rating > 5 {
		return procurement.PurchaseOrder{}, shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}
	snap := e.store.Snapshot()
	po, ok := snap.OrderByID(poID)
	if !ok {
		return procurement.PurchaseOrder{}, shared.ErrNotFound
	}
	if !po.Status.CanTransitionTo(procurement.POStatusClosed) {
		return procurement.PurchaseOrder{}, shared.NewDomainError("INVALID_STATE", "PO is already closed")
	}
	if vendor, ok := snap.VendorByID(po.VendorID); ok {
		e.store.Dispatch(store.UpdateVendor{Vendor: vendor.WithRating(rating)})
	}
	closed := po.WithStatus(procurement.POStatusClosed)
	e.store.Dispatch(store.UpdateOrder{Order: closed})
	return closed, nil
}

// DeletePO removes a purchase order. Invoices and assets derived from it
// keep their references and their snapshotted match results.
func (e *Engine) DeletePO(poID uuid.UUID) error {
	snap := e.store.Snapshot()
	if _, ok := snap.OrderByID(poID); !ok {
		return shared.ErrNotFound
	}
	e.store.Dispatch(store.DeleteOrder{ID: poID})
	return nil
}

// ---- invoices ----

// SubmitInvoice records a manually-entered invoice against an existing PO.
// The three-way match is evaluated once, here, against the PO as it stands.
func (e *Engine) SubmitInvoice(req SubmitInvoiceRequest) (procurement.Invoice, error) {
	if err := e.validate.Struct(req); err != nil {
		return procurement.Invoice{}, invalid(err)
	}
	snap := e.store.Snapshot()
	po, ok := snap.OrderByID(req.POID)
	if !ok {
		return procurement.Invoice{}, shared.NewDomainError("PO_NOT_FOUND", "Invoice must reference an existing PO")
	}
	inv := procurement.NewInvoice(req.VendorID, req.POID, decimal.NewFromFloat(req.Amount), req.DueDate, po, e.now())
	e.store.Dispatch(store.AddInvoice{Invoice: inv})
	return inv, nil
}

// AdvanceInvoice moves an invoice along Submitted -> Approved -> Paid.
// Marking Paid straight from Submitted is allowed.
func (e *Engine) AdvanceInvoice(invoiceID uuid.UUID, next procurement.InvoiceStatus) (procurement.Invoice, error) {
	snap := e.store.Snapshot()
	inv, ok := snap.InvoiceByID(invoiceID)
	if !ok {
		return procurement.Invoice{}, shared.ErrNotFound
	}
	if !inv.Status.CanTransitionTo(next) {
		return procurement.Invoice{}, shared.NewDomainError("INVALID_STATE",
			"Cannot move invoice from "+string(inv.Status)+" to "+string(next))
	}
	updated := inv.WithStatus(next)
	e.store.Dispatch(store.UpdateInvoice{Invoice: updated})
	return updated, nil
}

// UpdateInvoice replaces an invoice record wholesale. The three-way match
// flag travels with the record and is not recomputed.
func (e *Engine) UpdateInvoice(inv procurement.Invoice) (procurement.Invoice, error) {
	snap := e.store.Snapshot()
	if _, ok := snap.InvoiceByID(inv.ID); !ok {
		return procurement.Invoice{}, shared.ErrNotFound
	}
	if !inv.Status.IsValid() {
		return procurement.Invoice{}, shared.NewDomainError("INVALID_STATUS", "Unknown invoice status: "+string(inv.Status))
	}
	e.store.Dispatch(store.UpdateInvoice{Invoice: inv})
	return inv, nil
}

// DeleteInvoice removes an invoice. The referenced PO keeps its delivery and
// closing state.
func (e *Engine) DeleteInvoice(invoiceID uuid.UUID) error {
	snap := e.store.Snapshot()
	if _, ok := snap.InvoiceByID(invoiceID); !ok {
		return shared.ErrNotFound
	}
	e.store.Dispatch(store.DeleteInvoice{ID: invoiceID})
	return nil
}

// ---- assets ----

// CreateAsset registers an asset manually.
func (e *Engine) CreateAsset(req CreateAssetRequest) (procurement.Asset, error) {
	if err := e.validate.Struct(req); err != nil {
		return procurement.Asset{}, invalid(err)
	}
	asset := procurement.NewAsset(req.VendorID, req.Name, req.AssignedTo, req.Department, req.RenewalDate, req.AutoRenew, req.ContractURL)
	e.store.Dispatch(store.AddAsset{Asset: asset})
	return asset, nil
}

// UpdateAsset replaces an asset record wholesale.
func (e *Engine) UpdateAsset(asset procurement.Asset) (procurement.Asset, error) {
	snap := e.store.Snapshot()
	if _, ok := snap.AssetByID(asset.ID); !ok {
		return procurement.Asset{}, shared.ErrNotFound
	}
	e.store.Dispatch(store.UpdateAsset{Asset: asset})
	return asset, nil
}

// DeleteAsset removes an asset record.
func (e *Engine) DeleteAsset(assetID uuid.UUID) error {
	snap := e.store.Snapshot()
	if _, ok := snap.AssetByID(assetID); !ok {
		return shared.ErrNotFound
	}
	e.store.Dispatch(store.DeleteAsset{ID: assetID})
	return nil
}

// ---- settings ----

// UpdateSettings replaces the settings tree wholesale.
func (e *Engine) UpdateSettings(settings procurement.Settings) {
	e.store.Dispatch(store.UpdateSettings{Settings: settings})
}

// ---- helpers ----

func itemsFromInputs(inputs []RequisitionItemInput) []procurement.RequisitionItem {
	items := make([]procurement.RequisitionItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, procurement.RequisitionItem{
			ID:          uuid.New(),
			Description: in.Description,
			Category:    in.Category,
			Quantity:    in.Quantity,
			UnitCost:    decimal.NewFromFloat(in.UnitCost),
		})
	}
	return items
}

// settleApprovals stamps pending approval records with the ladder outcome.
func settleApprovals(approvals []procurement.Approval, outcome procurement.PRStatus, now time.Time) []procurement.Approval {
	status := procurement.ApprovalApproved
	if outcome == procurement.PRStatusRejected {
		status = procurement.ApprovalRejected
	}
	out := make([]procurement.Approval, len(approvals))
	copy(out, approvals)
	for i := range out {
		if out[i].Status == procurement.ApprovalPending {
			out[i].Status = status
			date := now
			out[i].Date = &date
		}
	}
	return out
}

func invalid(err error) error {
	return shared.NewDomainError("INVALID_INPUT", err.Error())
}
