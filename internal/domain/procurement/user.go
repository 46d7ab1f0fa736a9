package procurement

import "github.com/google/uuid"

// Role identifies what part of the procurement workflow a user acts in.
type Role string

const (
	RoleAdmin       Role = "Admin"
	RoleProcurement Role = "Procurement"
	RoleFinance     Role = "Finance"
	RoleRequestor   Role = "Requestor"
)

// IsValid checks if the role is a known Role
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleProcurement, RoleFinance, RoleRequestor:
		return true
	}
	return false
}

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// User is an actor in the system. Users are created at seed time or by an
// admin add and are never deleted in-flow.
type User struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Role       Role      `json:"role"`
	Department string    `json:"department,omitempty"`
}

// NewUser creates a user with a generated identity.
func NewUser(name string, role Role, department string) User {
	return User{
		ID:         uuid.New(),
		Name:       name,
		Role:       role,
		Department: department,
	}
}
