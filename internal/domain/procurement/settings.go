package procurement

import (
	"github.com/google/uuid"
	"github.com/vms/backend/internal/domain/shared/valueobject"
)

// BankDetails is a payout account on file.
type BankDetails struct {
	ID            uuid.UUID            `json:"id"`
	AccountName   string               `json:"accountName"`
	AccountNumber string               `json:"accountNumber"`
	BankName      string               `json:"bankName"`
	IfscOrSwift   string               `json:"ifscOrSwift,omitempty"`
	Currency      valueobject.Currency `json:"currency,omitempty"`
}

// DepartmentInfo is one entry in the department directory.
type DepartmentInfo struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	HoD        string    `json:"hod"`
	BudgetCode string    `json:"budgetCode,omitempty"`
}

// WorkflowSettings holds workflow flags. The maker-checker toggle is
// advisory only; the engine does not enforce it.
type WorkflowSettings struct {
	MakerCheckerEnabled bool `json:"makerCheckerEnabled"`
}

// Settings is the administrative configuration carried in the state tree.
type Settings struct {
	Banks       []BankDetails    `json:"banks"`
	Departments []DepartmentInfo `json:"departments"`
	Workflow    WorkflowSettings `json:"workflow"`
}

// DefaultDepartmentNames is the fixed directory used by the one-time
// settings migration: any name missing from loaded data is appended with a
// placeholder head of department.
var DefaultDepartmentNames = []string{"HR", "Finance", "Product", "UXD", "Engineering", "Admin", "Security"}

// MissingDefaultDepartments returns the default names absent from the
// current directory, in default order.
func (s Settings) MissingDefaultDepartments() []string {
	existing := make(map[string]bool, len(s.Departments))
	for _, d := range s.Departments {
		existing[d.Name] = true
	}
	var missing []string
	for _, name := range DefaultDepartmentNames {
		if !existing[name] {
			missing = append(missing, name)
		}
	}
	return missing
}
