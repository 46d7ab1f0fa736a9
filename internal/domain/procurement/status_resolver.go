package procurement

// DisplayStatus is the effective lifecycle stage of a purchase requisition
// as shown to readers. It is computed on every read from the requisition's
// descendants; it is never stored.
type DisplayStatus string

const (
	DisplayDelivered      DisplayStatus = "Delivered"
	DisplayConvertedToPO  DisplayStatus = "Converted to PO"
	DisplayRFQAwarded     DisplayStatus = "RFQ Awarded"
	DisplayConvertedToRFQ DisplayStatus = "Converted to RFQ"
)

// ResolveRequisitionStatus computes a requisition's effective stage by
// inspecting linked purchase orders and RFQs, in priority order:
//
//  1. a PO from this PR with delivery confirmed  -> Delivered
//  2. any PO from this PR                        -> Converted to PO
//  3. an awarded RFQ from this PR                -> RFQ Awarded
//  4. any RFQ from this PR                       -> Converted to RFQ
//  5. otherwise the PR's own stored status
//
// The stored status is not kept in lockstep with descendants: conversions
// write it once at conversion time, and later award/delivery changes surface
// only through this resolver.
func ResolveRequisitionStatus(pr PurchaseRequisition, pos []PurchaseOrder, rfqs []RFQ) DisplayStatus {
	var linkedPO *PurchaseOrder
	for idx := range pos {
		if pos[idx].FromPRID != nil && *pos[idx].FromPRID == pr.ID {
			if pos[idx].DeliveryConfirmed {
				return DisplayDelivered
			}
			if linkedPO == nil {
				linkedPO = &pos[idx]
			}
		}
	}
	if linkedPO != nil {
		return DisplayConvertedToPO
	}

	var linkedRFQ *RFQ
	for idx := range rfqs {
		if rfqs[idx].FromPRID == pr.ID {
			if rfqs[idx].Status == RFQStatusAwarded {
				return DisplayRFQAwarded
			}
			if linkedRFQ == nil {
				linkedRFQ = &rfqs[idx]
			}
		}
	}
	if linkedRFQ != nil {
		return DisplayConvertedToRFQ
	}

	return DisplayStatus(pr.Status)
}
