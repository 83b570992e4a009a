package models

import "time"

// Employment statuses.
const (
	EmployeeActive     = "active"
	EmployeeInactive   = "inactive"
	EmployeeTerminated = "terminated"
)

// Employee is a person record scoped to a company. Tasks reference
// employees by id; a deleted employee leaves tasks pointing at nothing,
// which renders as "unassigned" rather than failing.
type Employee struct {
	ID              int64      `json:"id"`
	CompanyID       int64      `json:"companyId"`
	Name            string     `json:"name"`
	Position        string     `json:"position,omitempty"`
	Department      string     `json:"department,omitempty"`
	Avatar          string     `json:"avatar,omitempty"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Status          string     `json:"status"`
	HireDate        *time.Time `json:"hireDate,omitempty"`
	BirthDate       *time.Time `json:"birthDate,omitempty"`
	TerminationDate *time.Time `json:"terminationDate,omitempty"`
}

// Company is the tenant boundary. Every company-scoped collection is
// filtered by the active company id.
type Company struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	Website     string    `json:"website,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	TaxID       string    `json:"taxId,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Department belongs to a company and may nest beneath a parent
// department. ParentID zero means the department is a root node.
type Department struct {
	ID          int64     `json:"id"`
	CompanyID   int64     `json:"companyId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ManagerID   int64     `json:"managerId,omitempty"`
	ParentID    int64     `json:"parentId,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
