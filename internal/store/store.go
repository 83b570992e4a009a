// Package store holds the single authoritative state tree of the
// application. The tree is only ever mutated through Dispatch; readers
// take value snapshots and never alias internal slices.
package store

import (
	"log/slog"
	"sync"

	"bizdesk/internal/models"
)

// State is the full application tree. Collections are scoped to the
// active company by the data that was loaded into them, not by the
// store itself.
type State struct {
	CurrentTab         string
	CurrentCompanyID   int64
	Tasks              []models.Task
	Employees          []models.Employee
	Companies          []models.Company
	Departments        []models.Department
	Boards             []models.Board
	Sprints            []models.Sprint
	Epics              []models.Epic
	Transactions       []models.Transaction
	Accounts           []models.Account
	Passwords          []models.Password
	PasswordCategories []models.PasswordCategory
}

// Store is an explicit state container. Construct one per test or per
// application; there is no package-level instance.
type Store struct {
	mu     sync.Mutex
	state  State
	logger *slog.Logger
}

// New returns an empty store. The default company id is 1, matching the
// initial state of the UI it backs.
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		state:  State{CurrentTab: "tasks", CurrentCompanyID: 1},
		logger: logger,
	}
}

// Dispatch applies one action atomically. Unknown variants are a no-op:
// the store degrades to doing nothing rather than surfacing structural
// errors.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch a := a.(type) {
	case SetCurrentTab:
		s.state.CurrentTab = a.Tab
	case SetCurrentCompany:
		s.state.CurrentCompanyID = a.CompanyID
	case SetTasks:
		s.state.Tasks = a.Tasks
	case SetEmployees:
		s.state.Employees = a.Employees
	case SetCompanies:
		s.state.Companies = a.Companies
	case SetDepartments:
		s.state.Departments = a.Departments
	case SetBoards:
		s.state.Boards = a.Boards
	case SetSprints:
		s.state.Sprints = a.Sprints
	case SetEpics:
		s.state.Epics = a.Epics
	case SetTransactions:
		s.state.Transactions = a.Transactions
	case SetAccounts:
		s.state.Accounts = a.Accounts
	case SetPasswords:
		s.state.Passwords = a.Passwords
	case SetPasswordCategories:
		s.state.PasswordCategories = a.Categories
	case AddTask:
		s.state.Tasks = upsert(s.state.Tasks, a.Task, func(t models.Task) int64 { return t.ID })
	case UpdateTask:
		s.state.Tasks = replace(s.state.Tasks, a.Task, func(t models.Task) int64 { return t.ID })
	case DeleteTask:
		s.state.Tasks = remove(s.state.Tasks, a.ID, func(t models.Task) int64 { return t.ID })
	case AddEmployee:
		s.state.Employees = upsert(s.state.Employees, a.Employee, func(e models.Employee) int64 { return e.ID })
	case UpdateEmployee:
		s.state.Employees = replace(s.state.Employees, a.Employee, func(e models.Employee) int64 { return e.ID })
	case DeleteEmployee:
		s.state.Employees = remove(s.state.Employees, a.ID, func(e models.Employee) int64 { return e.ID })
	case AddCompany:
		s.state.Companies = upsert(s.state.Companies, a.Company, func(c models.Company) int64 { return c.ID })
	case UpdateCompany:
		s.state.Companies = replace(s.state.Companies, a.Company, func(c models.Company) int64 { return c.ID })
	case DeleteCompany:
		s.state.Companies = remove(s.state.Companies, a.ID, func(c models.Company) int64 { return c.ID })
	case AddDepartment:
		s.state.Departments = upsert(s.state.Departments, a.Department, func(d models.Department) int64 { return d.ID })
	case UpdateDepartment:
		s.state.Departments = replace(s.state.Departments, a.Department, func(d models.Department) int64 { return d.ID })
	case DeleteDepartment:
		s.state.Departments = remove(s.state.Departments, a.ID, func(d models.Department) int64 { return d.ID })
	case AddBoard:
		s.state.Boards = upsert(s.state.Boards, a.Board, func(b models.Board) int64 { return b.ID })
	case UpdateBoard:
		s.state.Boards = replace(s.state.Boards, a.Board, func(b models.Board) int64 { return b.ID })
	case AddTransaction:
		s.state.Transactions = upsert(s.state.Transactions, a.Transaction, func(t models.Transaction) int64 { return t.ID })
	case UpdateTransaction:
		s.state.Transactions = replace(s.state.Transactions, a.Transaction, func(t models.Transaction) int64 { return t.ID })
	case DeleteTransaction:
		s.state.Transactions = remove(s.state.Transactions, a.ID, func(t models.Transaction) int64 { return t.ID })
	case AddAccount:
		s.state.Accounts = upsert(s.state.Accounts, a.Account, func(acc models.Account) int64 { return acc.ID })
	case UpdateAccount:
		s.state.Accounts = replace(s.state.Accounts, a.Account, func(acc models.Account) int64 { return acc.ID })
	case DeleteAccount:
		s.state.Accounts = remove(s.state.Accounts, a.ID, func(acc models.Account) int64 { return acc.ID })
	case AddPassword:
		s.state.Passwords = upsert(s.state.Passwords, a.Password, func(p models.Password) int64 { return p.ID })
	case UpdatePassword:
		s.state.Passwords = replace(s.state.Passwords, a.Password, func(p models.Password) int64 { return p.ID })
	case DeletePassword:
		s.state.Passwords = remove(s.state.Passwords, a.ID, func(p models.Password) int64 { return p.ID })
	default:
		s.logger.Warn("ignoring unknown store action", "action", a)
	}
}

// Snapshot returns a value copy of the state. Collections are copied so
// a reader never observes a half-applied dispatch.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.state
	out.Tasks = copySlice(s.state.Tasks)
	out.Employees = copySlice(s.state.Employees)
	out.Companies = copySlice(s.state.Companies)
	out.Departments = copySlice(s.state.Departments)
	out.Boards = copySlice(s.state.Boards)
	out.Sprints = copySlice(s.state.Sprints)
	out.Epics = copySlice(s.state.Epics)
	out.Transactions = copySlice(s.state.Transactions)
	out.Accounts = copySlice(s.state.Accounts)
	out.Passwords = copySlice(s.state.Passwords)
	out.PasswordCategories = copySlice(s.state.PasswordCategories)
	return out
}

func copySlice[E any](in []E) []E {
	if in == nil {
		return nil
	}
	out := make([]E, len(in))
	copy(out, in)
	return out
}

// upsert appends the entity, or replaces an existing one with the same
// id. Appending a duplicate id must never grow the collection.
func upsert[E any](list []E, e E, id func(E) int64) []E {
	for i := range list {
		if id(list[i]) == id(e) {
			out := copySlice(list)
			out[i] = e
			return out
		}
	}
	return append(copySlice(list), e)
}

// replace swaps the entity matching its id; an unknown id leaves the
// collection untouched.
func replace[E any](list []E, e E, id func(E) int64) []E {
	for i := range list {
		if id(list[i]) == id(e) {
			out := copySlice(list)
			out[i] = e
			return out
		}
	}
	return list
}

// remove drops the entity with the given id; absent ids are a no-op.
func remove[E any](list []E, target int64, id func(E) int64) []E {
	for i := range list {
		if id(list[i]) == target {
			out := make([]E, 0, len(list)-1)
			out = append(out, list[:i]...)
			out = append(out, list[i+1:]...)
			return out
		}
	}
	return list
}
