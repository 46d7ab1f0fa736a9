package procurement

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalStatus is the state of a single approval record
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

// Approval is one reviewer's decision attached to a purchase requisition.
type Approval struct {
	ID           uuid.UUID      `json:"id"`
	ApproverRole Role           `json:"approverRole"`
	Status       ApprovalStatus `json:"status"`
	Comments     string         `json:"comments,omitempty"`
	Date         *time.Time     `json:"date,omitempty"`
}

// NewPendingApproval seeds a pending approval record for the given role.
func NewPendingApproval(role Role) Approval {
	return Approval{
		ID:           uuid.New(),
		ApproverRole: role,
		Status:       ApprovalPending,
	}
}
