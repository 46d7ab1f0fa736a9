package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vms/backend/internal/domain/shared/valueobject"
)

// RFQStatus represents the status of a request for quotation
type RFQStatus string

const (
	RFQStatusOpen    RFQStatus = "Open"
	RFQStatusClosed  RFQStatus = "Closed"
	RFQStatusAwarded RFQStatus = "Awarded"
)

// IsValid checks if the status is a valid RFQStatus
func (s RFQStatus) IsValid() bool {
	switch s {
	case RFQStatusOpen, RFQStatusClosed, RFQStatusAwarded:
		return true
	}
	return false
}

// String returns the string representation of RFQStatus
func (s RFQStatus) String() string {
	return string(s)
}

// Quote is a vendor's offer against an RFQ. The vendor must be a member of
// the parent RFQ's invited set.
type Quote struct {
	ID           uuid.UUID            `json:"id"`
	VendorID     uuid.UUID            `json:"vendorId"`
	Price        decimal.Decimal      `json:"price"`
	Currency     valueobject.Currency `json:"currency,omitempty"`
	DeliveryDays int                  `json:"deliveryDays"` // business days
	Notes        string               `json:"notes,omitempty"`
}

// RFQ solicits vendor price/delivery offers tied to one purchase requisition.
// Quotes are kept newest-first; that ordering is significant for display
// only. Awarding is terminal: status is Awarded iff SelectedQuoteID is set,
// and there is no un-award operation.
type RFQ struct {
	ID               uuid.UUID   `json:"id"`
	FromPRID         uuid.UUID   `json:"fromPRId"`
	InvitedVendorIDs []uuid.UUID `json:"invitedVendorIds"`
	Quotes           []Quote     `json:"quotes"`
	SelectedQuoteID  *uuid.UUID  `json:"selectedQuoteId,omitempty"`
	Status           RFQStatus   `json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// NewRFQ creates an open RFQ for the given requisition with no quotes yet.
func NewRFQ(fromPRID uuid.UUID, invitedVendorIDs []uuid.UUID, now time.Time) RFQ {
	return RFQ{
		ID:               uuid.New(),
		FromPRID:         fromPRID,
		InvitedVendorIDs: invitedVendorIDs,
		Quotes:           []Quote{},
		Status:           RFQStatusOpen,
		CreatedAt:        now,
	}
}

// IsInvited reports whether the vendor is in the invited set.
func (r RFQ) IsInvited(vendorID uuid.UUID) bool {
	for _, id := range r.InvitedVendorIDs {
		if id == vendorID {
			return true
		}
	}
	return false
}

// QuoteByID finds a quote by identifier.
func (r RFQ) QuoteByID(quoteID uuid.UUID) (Quote, bool) {
	for _, q := range r.Quotes {
		if q.ID == quoteID {
			return q, true
		}
	}
	return Quote{}, false
}

// IsAwarded returns true once a quote has been selected.
func (r RFQ) IsAwarded() bool {
	return r.SelectedQuoteID != nil
}

// WithQuote returns a copy with the quote prepended (newest-first).
func (r RFQ) WithQuote(q Quote) RFQ {
	quotes := make([]Quote, 0, len(r.Quotes)+1)
	quotes = append(quotes, q)
	quotes = append(quotes, r.Quotes...)
	r.Quotes = quotes
	return r
}

// WithAward returns a copy with the quote selected and status Awarded.
func (r RFQ) WithAward(quoteID uuid.UUID) RFQ {
	id := quoteID
	r.SelectedQuoteID = &id
	r.Status = RFQStatusAwarded
	return r
}
