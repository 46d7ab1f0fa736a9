package procurement

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func resolverPR(status PRStatus) PurchaseRequisition {
	return PurchaseRequisition{ID: uuid.New(), Status: status}
}

func poFor(prID uuid.UUID, delivered bool) PurchaseOrder {
	id := prID
	po := NewPurchaseOrder(nil, &id, uuid.New(), nil, decimal.NewFromInt(100), nil, time.Now())
	if delivered {
		po = po.WithDeliveryConfirmed()
	}
	return po
}

func rfqFor(prID uuid.UUID, awarded bool) RFQ {
	rfq := NewRFQ(prID, nil, time.Now())
	if awarded {
		quote := Quote{ID: uuid.New(), VendorID: uuid.New(), Price: decimal.NewFromInt(50), DeliveryDays: 5}
		rfq = rfq.WithQuote(quote).WithAward(quote.ID)
	}
	return rfq
}

func TestResolveRequisitionStatus(t *testing.T) {
	t.Run("delivered PO wins over everything", func(t *testing.T) {
		pr := resolverPR(PRStatusConvertedToRFQ)
		pos := []PurchaseOrder{poFor(pr.ID, false), poFor(pr.ID, true)}
		rfqs := []RFQ{rfqFor(pr.ID, true)}
		assert.Equal(t, DisplayDelivered, ResolveRequisitionStatus(pr, pos, rfqs))
	})

	t.Run("any PO beats awarded RFQ", func(t *testing.T) {
		pr := resolverPR(PRStatusApproved)
		pos := []PurchaseOrder{poFor(pr.ID, false)}
		rfqs := []RFQ{rfqFor(pr.ID, true)}
		assert.Equal(t, DisplayConvertedToPO, ResolveRequisitionStatus(pr, pos, rfqs))
	})

	t.Run("awarded RFQ beats open RFQ", func(t *testing.T) {
		pr := resolverPR(PRStatusConvertedToRFQ)
		rfqs := []RFQ{rfqFor(pr.ID, false), rfqFor(pr.ID, true)}
		assert.Equal(t, DisplayRFQAwarded, ResolveRequisitionStatus(pr, nil, rfqs))
	})

	t.Run("open RFQ shows converted", func(t *testing.T) {
		pr := resolverPR(PRStatusApproved)
		rfqs := []RFQ{rfqFor(pr.ID, false)}
		assert.Equal(t, DisplayConvertedToRFQ, ResolveRequisitionStatus(pr, nil, rfqs))
	})

	t.Run("falls back to stored status", func(t *testing.T) {
		pr := resolverPR(PRStatusPendingDept)
		assert.Equal(t, DisplayStatus(PRStatusPendingDept), ResolveRequisitionStatus(pr, nil, nil))
	})

	t.Run("other requisitions' descendants are ignored", func(t *testing.T) {
		pr := resolverPR(PRStatusPendingProcurement)
		pos := []PurchaseOrder{poFor(uuid.New(), true)}
		rfqs := []RFQ{rfqFor(uuid.New(), true)}
		assert.Equal(t, DisplayStatus(PRStatusPendingProcurement), ResolveRequisitionStatus(pr, pos, rfqs))
	})
}
