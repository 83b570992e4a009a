// Package storage defines the persistence contract the REST layer is
// written against. Backends: memstore (seeded in-memory arrays), sqlite
// (embedded default) and postgres (tasks and boards only).
package storage

import (
	"context"
	"errors"

	"bizdesk/internal/models"
)

// Sentinel errors backends translate driver failures into. The HTTP
// layer maps them onto 404, 400 and 409.
var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid")
	ErrConflict = errors.New("conflict")
)

// TaskQuery narrows a task listing. Zero fields mean no constraint.
type TaskQuery struct {
	CompanyID  int64
	BoardID    int64
	AssigneeID int64
}

// TaskStore covers tasks plus their sprint and epic sub-resources.
type TaskStore interface {
	ListTasks(ctx context.Context, q TaskQuery) ([]models.Task, error)
	GetTask(ctx context.Context, id int64) (models.Task, error)
	CreateTask(ctx context.Context, t models.Task) (models.Task, error)
	UpdateTask(ctx context.Context, t models.Task) (models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	ToggleTaskFavorite(ctx context.Context, id int64) (models.Task, error)

	ListSprints(ctx context.Context, companyID int64) ([]models.Sprint, error)
	GetSprint(ctx context.Context, id int64) (models.Sprint, error)
	CreateSprint(ctx context.Context, sp models.Sprint) (models.Sprint, error)
	UpdateSprint(ctx context.Context, sp models.Sprint) (models.Sprint, error)
	SetSprintStatus(ctx context.Context, id int64, status string) (models.Sprint, error)

	ListEpics(ctx context.Context, companyID int64) ([]models.Epic, error)
	CreateEpic(ctx context.Context, e models.Epic) (models.Epic, error)
	UpdateEpic(ctx context.Context, e models.Epic) (models.Epic, error)
}

// BoardStore covers the board display grouping. Boards have no DELETE:
// the surface this replaces never exposed one.
type BoardStore interface {
	ListBoards(ctx context.Context, companyID int64) ([]models.Board, error)
	GetBoard(ctx context.Context, id int64) (models.Board, error)
	CreateBoard(ctx context.Context, b models.Board) (models.Board, error)
	UpdateBoard(ctx context.Context, b models.Board) (models.Board, error)
}

// OrgStore covers companies, departments and employees.
type OrgStore interface {
	ListCompanies(ctx context.Context) ([]models.Company, error)
	GetCompany(ctx context.Context, id int64) (models.Company, error)
	CreateCompany(ctx context.Context, c models.Company) (models.Company, error)
	UpdateCompany(ctx context.Context, c models.Company) (models.Company, error)
	DeleteCompany(ctx context.Context, id int64) error
	SetCompanyActive(ctx context.Context, id int64, active bool) (models.Company, error)

	ListDepartments(ctx context.Context, companyID int64) ([]models.Department, error)
	GetDepartment(ctx context.Context, id int64) (models.Department, error)
	CreateDepartment(ctx context.Context, d models.Department) (models.Department, error)
	UpdateDepartment(ctx context.Context, d models.Department) (models.Department, error)
	DeleteDepartment(ctx context.Context, id int64) error

	ListEmployees(ctx context.Context, companyID int64) ([]models.Employee, error)
	GetEmployee(ctx context.Context, id int64) (models.Employee, error)
	CreateEmployee(ctx context.Context, e models.Employee) (models.Employee, error)
	UpdateEmployee(ctx context.Context, e models.Employee) (models.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}

// FinanceStore covers the ledger.
type FinanceStore interface {
	ListTransactions(ctx context.Context, companyID int64) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (models.Transaction, error)
	CreateTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error

	ListAccounts(ctx context.Context, companyID int64) ([]models.Account, error)
	GetAccount(ctx context.Context, id int64) (models.Account, error)
	CreateAccount(ctx context.Context, a models.Account) (models.Account, error)
	UpdateAccount(ctx context.Context, a models.Account) (models.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
}

// VaultStore covers passwords and their categories.
type VaultStore interface {
	ListPasswords(ctx context.Context, companyID int64) ([]models.Password, error)
	GetPassword(ctx context.Context, id int64) (models.Password, error)
	CreatePassword(ctx context.Context, p models.Password) (models.Password, error)
	UpdatePassword(ctx context.Context, p models.Password) (models.Password, error)
	DeletePassword(ctx context.Context, id int64) error

	ListPasswordCategories(ctx context.Context) ([]models.PasswordCategory, error)
	GetPasswordCategory(ctx context.Context, id int64) (models.PasswordCategory, error)
	CreatePasswordCategory(ctx context.Context, c models.PasswordCategory) (models.PasswordCategory, error)
	UpdatePasswordCategory(ctx context.Context, c models.PasswordCategory) (models.PasswordCategory, error)
	DeletePasswordCategory(ctx context.Context, id int64) error
}

// Store is the full persistence surface.
type Store interface {
	TaskStore
	BoardStore
	OrgStore
	FinanceStore
	VaultStore
	Close() error
}

// Composite overlays one backend's task/board area on top of a base
// store, leaving every other area with the base. Used to route tasks and
// boards to Postgres while the rest stays on the embedded database.
type Composite struct {
	TaskStore
	BoardStore
	OrgStore
	FinanceStore
	VaultStore
	closers []func() error
}

// Compose builds a composite with base serving every area and overlay
// serving tasks and boards.
func Compose(base Store, overlay interface {
	TaskStore
	BoardStore
	Close() error
}) *Composite {
	return &Composite{
		TaskStore:    overlay,
		BoardStore:   overlay,
		OrgStore:     base,
		FinanceStore: base,
		VaultStore:   base,
		closers:      []func() error{overlay.Close, base.Close},
	}
}

// Close closes every underlying backend, keeping the first error.
func (c *Composite) Close() error {
	var first error
	for _, fn := range c.closers {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
