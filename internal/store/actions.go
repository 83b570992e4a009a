package store

import "bizdesk/internal/models"

// Action is the closed set of state mutations. Each variant is its own
// struct so a new action is a compile-time checked change; the unexported
// marker keeps the set sealed inside this package.
type Action interface {
	isAction()
}

// Navigation actions.

type SetCurrentTab struct{ Tab string }

type SetCurrentCompany struct{ CompanyID int64 }

// Full-collection replacements (reload semantics).

type SetTasks struct{ Tasks []models.Task }

type SetEmployees struct{ Employees []models.Employee }

type SetCompanies struct{ Companies []models.Company }

type SetDepartments struct{ Departments []models.Department }

type SetBoards struct{ Boards []models.Board }

type SetSprints struct{ Sprints []models.Sprint }

type SetEpics struct{ Epics []models.Epic }

type SetTransactions struct{ Transactions []models.Transaction }

type SetAccounts struct{ Accounts []models.Account }

type SetPasswords struct{ Passwords []models.Password }

type SetPasswordCategories struct{ Categories []models.PasswordCategory }

// Single-entity mutations. Add upserts when the id already exists,
// Update is a silent no-op on an unknown id, Delete is a no-op when the
// id is absent.

type AddTask struct{ Task models.Task }

type UpdateTask struct{ Task models.Task }

type DeleteTask struct{ ID int64 }

type AddEmployee struct{ Employee models.Employee }

type UpdateEmployee struct{ Employee models.Employee }

type DeleteEmployee struct{ ID int64 }

type AddCompany struct{ Company models.Company }

type UpdateCompany struct{ Company models.Company }

type DeleteCompany struct{ ID int64 }

type AddDepartment struct{ Department models.Department }

type UpdateDepartment struct{ Department models.Department }

type DeleteDepartment struct{ ID int64 }

type AddBoard struct{ Board models.Board }

type UpdateBoard struct{ Board models.Board }

type AddTransaction struct{ Transaction models.Transaction }

type UpdateTransaction struct{ Transaction models.Transaction }

type DeleteTransaction struct{ ID int64 }

type AddAccount struct{ Account models.Account }

type UpdateAccount struct{ Account models.Account }

type DeleteAccount struct{ ID int64 }

type AddPassword struct{ Password models.Password }

type UpdatePassword struct{ Password models.Password }

type DeletePassword struct{ ID int64 }

func (SetCurrentTab) isAction()         {}
func (SetCurrentCompany) isAction()     {}
func (SetTasks) isAction()              {}
func (SetEmployees) isAction()          {}
func (SetCompanies) isAction()          {}
func (SetDepartments) isAction()        {}
func (SetBoards) isAction()             {}
func (SetSprints) isAction()            {}
func (SetEpics) isAction()              {}
func (SetTransactions) isAction()       {}
func (SetAccounts) isAction()           {}
func (SetPasswords) isAction()          {}
func (SetPasswordCategories) isAction() {}
func (AddTask) isAction()               {}
func (UpdateTask) isAction()            {}
func (DeleteTask) isAction()            {}
func (AddEmployee) isAction()           {}
func (UpdateEmployee) isAction()        {}
func (DeleteEmployee) isAction()        {}
func (AddCompany) isAction()            {}
func (UpdateCompany) isAction()         {}
func (DeleteCompany) isAction()         {}
func (AddDepartment) isAction()         {}
func (UpdateDepartment) isAction()      {}
func (DeleteDepartment) isAction()      {}
func (AddBoard) isAction()              {}
func (UpdateBoard) isAction()           {}
func (AddTransaction) isAction()        {}
func (UpdateTransaction) isAction()     {}
func (DeleteTransaction) isAction()     {}
func (AddAccount) isAction()            {}
func (UpdateAccount) isAction()         {}
func (DeleteAccount) isAction()         {}
func (AddPassword) isAction()           {}
func (UpdatePassword) isAction()        {}
func (DeletePassword) isAction()        {}
