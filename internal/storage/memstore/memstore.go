// Package memstore is the in-memory backend: the mock arrays the REST
// layer serves when no database is configured, and the backend tests
// run against. All collections live in process memory behind one mutex.
package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bizdesk/internal/models"
	"bizdesk/internal/storage"
)

// Store holds every collection in slices, preserving insertion order.
type Store struct {
	mu sync.Mutex

	tasks        []models.Task
	sprints      []models.Sprint
	epics        []models.Epic
	boards       []models.Board
	companies    []models.Company
	departments  []models.Department
	employees    []models.Employee
	transactions []models.Transaction
	accounts     []models.Account
	passwords    []models.Password
	categories   []models.PasswordCategory

	nextID map[string]int64
	now    func() time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{
		nextID: make(map[string]int64),
		now:    time.Now,
	}
}

// NewSeeded returns a store preloaded with demo data: two companies,
// a handful of employees, boards and tasks, one account and one vault
// category, mirroring the mock dataset this backend replaces.
func NewSeeded() *Store {
	s := New()
	ctx := context.Background()
	now := s.now()

	c1, _ := s.CreateCompany(ctx, models.Company{Name: "Acme Group", Description: "Primary company", IsActive: true})
	c2, _ := s.CreateCompany(ctx, models.Company{Name: "Acme Labs", Description: "Subsidiary", IsActive: true})

	e1, _ := s.CreateEmployee(ctx, models.Employee{CompanyID: c1.ID, Name: "Ivan Ivanov", Position: "Developer", Email: "ivan@example.com", Status: models.EmployeeActive})
	e2, _ := s.CreateEmployee(ctx, models.Employee{CompanyID: c1.ID, Name: "Petr Petrov", Position: "Designer", Email: "petr@example.com", Status: models.EmployeeActive})
	_, _ = s.CreateEmployee(ctx, models.Employee{CompanyID: c2.ID, Name: "Dana Kim", Position: "Analyst", Status: models.EmployeeActive})

	b1, _ := s.CreateBoard(ctx, models.Board{CompanyID: c1.ID, Name: "Main board", Description: "Default project board", Color: "#3B82F6", IsDefault: true})
	_, _ = s.CreateBoard(ctx, models.Board{CompanyID: c1.ID, Name: "Development", Description: "Engineering tasks", Color: "#10B981"})

	due := now.AddDate(0, 0, 7)
	_, _ = s.CreateTask(ctx, models.Task{
		CompanyID: c1.ID, BoardID: b1.ID, Title: "Build boards API",
		Description: "REST endpoints for board management",
		Status:      models.StatusInProgress, Priority: models.PriorityHigh,
		AssigneeID: e1.ID, CreatorID: e1.ID, DueDate: &due,
		Tags: []string{"backend"},
	})
	_, _ = s.CreateTask(ctx, models.Task{
		CompanyID: c1.ID, BoardID: b1.ID, Title: "Wire HTTP client",
		Description: "Configure the shared API client",
		Status:      models.StatusNew, Priority: models.PriorityMedium,
		AssigneeID: e2.ID, CreatorID: e1.ID,
	})

	_, _ = s.CreateAccount(ctx, models.Account{CompanyID: c1.ID, Name: "Operating", Currency: models.KZT, Type: models.AccountBank})
	_, _ = s.CreatePasswordCategory(ctx, models.PasswordCategory{Name: "Infrastructure"})

	_, _ = s.CreateDepartment(ctx, models.Department{CompanyID: c1.ID, Name: "Engineering", ManagerID: e1.ID, IsActive: true})
	return s
}

// Close is a no-op; memory needs no teardown.
func (s *Store) Close() error { return nil }

func (s *Store) id(kind string) int64 {
	s.nextID[kind]++
	return s.nextID[kind]
}

func notFound(kind string, id int64) error {
	return fmt.Errorf("%s %d: %w", kind, id, storage.ErrNotFound)
}

// ---- tasks ----

func (s *Store) ListTasks(_ context.Context, q storage.TaskQuery) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if q.CompanyID != 0 && t.CompanyID != q.CompanyID {
			continue
		}
		if q.BoardID != 0 && t.BoardID != q.BoardID {
			continue
		}
		if q.AssigneeID != 0 && t.AssigneeID != q.AssigneeID {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *Store) GetTask(_ context.Context, id int64) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, notFound("task", id)
}

func (s *Store) CreateTask(_ context.Context, t models.Task) (models.Task, error) {
	t, err := storage.NormalizeTask(t)
	if err != nil {
		return models.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.id("task")
	t.CreatedAt = s.now()
	t.UpdatedAt = t.CreatedAt
	s.tasks = append(s.tasks, t)
	return t, nil
}

func (s *Store) UpdateTask(_ context.Context, t models.Task) (models.Task, error) {
	t, err := storage.NormalizeTask(t)
	if err != nil {
		return models.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			t.CreatedAt = s.tasks[i].CreatedAt
			t.UpdatedAt = s.now()
			s.tasks[i] = t
			return t, nil
		}
	}
	return models.Task{}, notFound("task", t.ID)
}

func (s *Store) DeleteTask(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return notFound("task", id)
}

func (s *Store) ToggleTaskFavorite(_ context.Context, id int64) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].IsFavorite = !s.tasks[i].IsFavorite
			s.tasks[i].UpdatedAt = s.now()
			return s.tasks[i], nil
		}
	}
	return models.Task{}, notFound("task", id)
}

// ---- sprints ----

func (s *Store) ListSprints(_ context.Context, companyID int64) ([]models.Sprint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Sprint, 0, len(s.sprints))
	for _, sp := range s.sprints {
		if companyID == 0 || sp.CompanyID == companyID {
			out = append(out, sp)
		}
	}
	return out, nil
}

func (s *Store) GetSprint(_ context.Context, id int64) (models.Sprint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sp := range s.sprints {
		if sp.ID == id {
			return sp, nil
		}
	}
	return models.Sprint{}, notFound("sprint", id)
}

func (s *Store) CreateSprint(_ context.Context, sp models.Sprint) (models.Sprint, error) {
	if sp.Name == "" {
		return models.Sprint{}, fmt.Errorf("%w: sprint name must not be empty", storage.ErrInvalid)
	}
	if sp.Status == "" {
		sp.Status = models.SprintPlanning
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sp.ID = s.id("sprint")
	sp.CreatedAt = s.now()
	sp.UpdatedAt = sp.CreatedAt
	s.sprints = append(s.sprints, sp)
	return sp, nil
}

func (s *Store) UpdateSprint(_ context.Context, sp models.Sprint) (models.Sprint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sprints {
		if s.sprints[i].ID == sp.ID {
			sp.CreatedAt = s.sprints[i].CreatedAt
			sp.UpdatedAt = s.now()
			s.sprints[i] = sp
			return sp, nil
		}
	}
	return models.Sprint{}, notFound("sprint", sp.ID)
}

func (s *Store) SetSprintStatus(_ context.Context, id int64, status string) (models.Sprint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sprints {
		if s.sprints[i].ID == id {
			s.sprints[i].Status = status
			s.sprints[i].UpdatedAt = s.now()
			return s.sprints[i], nil
		}
	}
	return models.Sprint{}, notFound("sprint", id)
}

// ---- epics ----

func (s *Store) ListEpics(_ context.Context, companyID int64) ([]models.Epic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Epic, 0, len(s.epics))
	for _, e := range s.epics {
		if companyID == 0 || e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Store) CreateEpic(_ context.Context, e models.Epic) (models.Epic, error) {
	if e.Title == "" {
		return models.Epic{}, fmt.Errorf("%w: epic title must not be empty", storage.ErrInvalid)
	}
	if e.Status == "" {
		e.Status = "active"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.id("epic")
	e.CreatedAt = s.now()
	e.UpdatedAt = e.CreatedAt
	s.epics = append(s.epics, e)
	return e, nil
}

func (s *Store) UpdateEpic(_ context.Context, e models.Epic) (models.Epic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.epics {
		if s.epics[i].ID == e.ID {
			e.CreatedAt = s.epics[i].CreatedAt
			e.UpdatedAt = s.now()
			s.epics[i] = e
			return e, nil
		}
	}
	return models.Epic{}, notFound("epic", e.ID)
}

// ---- boards ----

func (s *Store) ListBoards(_ context.Context, companyID int64) ([]models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Board, 0, len(s.boards))
	for _, b := range s.boards {
		if companyID == 0 || b.CompanyID == companyID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Store) GetBoard(_ context.Context, id int64) (models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.boards {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Board{}, notFound("board", id)
}

func (s *Store) CreateBoard(_ context.Context, b models.Board) (models.Board, error) {
	if b.Name == "" || b.CompanyID == 0 {
		return models.Board{}, fmt.Errorf("%w: board requires name and company", storage.ErrInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.id("board")
	if len(b.Columns) == 0 {
		b.Columns = models.DefaultColumns(b.ID)
	}
	b.CreatedAt = s.now()
	b.UpdatedAt = b.CreatedAt
	s.boards = append(s.boards, b)
	return b, nil
}

func (s *Store) UpdateBoard(_ context.Context, b models.Board) (models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.boards {
		if s.boards[i].ID == b.ID {
			b.CreatedAt = s.boards[i].CreatedAt
			b.UpdatedAt = s.now()
			if len(b.Columns) == 0 {
				b.Columns = s.boards[i].Columns
			}
			s.boards[i] = b
			return b, nil
		}
	}
	return models.Board{}, notFound("board", b.ID)
}

// ---- companies ----

func (s *Store) ListCompanies(_ context.Context) ([]models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Company, len(s.companies))
	copy(out, s.companies)
	return out, nil
}

func (s *Store) GetCompany(_ context.Context, id int64) (models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Company{}, notFound("company", id)
}

func (s *Store) CreateCompany(_ context.Context, c models.Company) (models.Company, error) {
	if c.Name == "" {
		return models.Company{}, fmt.Errorf("%w: company name must not be empty", storage.ErrInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.id("company")
	c.CreatedAt = s.now()
	c.UpdatedAt = c.CreatedAt
	s.companies = append(s.companies, c)
	return c, nil
}

func (s *Store) UpdateCompany(_ context.Context, c models.Company) (models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.companies {
		if s.companies[i].ID == c.ID {
			c.CreatedAt = s.companies[i].CreatedAt
			c.UpdatedAt = s.now()
			s.companies[i] = c
			return c, nil
		}
	}
	return models.Company{}, notFound("company", c.ID)
}

func (s *Store) DeleteCompany(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.companies {
		if s.companies[i].ID == id {
			s.companies = append(s.companies[:i], s.companies[i+1:]...)
			return nil
		}
	}
	return notFound("company", id)
}

func (s *Store) SetCompanyActive(_ context.Context, id int64, active bool) (models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.companies {
		if s.companies[i].ID == id {
			s.companies[i].IsActive = active
			s.companies[i].UpdatedAt = s.now()
			return s.companies[i], nil
		}
	}
	return models.Company{}, notFound("company", id)
}

// ---- departments ----

func (s *Store) ListDepartments(_ context.Context, companyID int64) ([]models.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Department, 0, len(s.departments))
	for _, d := range s.departments {
		if companyID == 0 || d.CompanyID == companyID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *Store) GetDepartment(ctx context.Context, id int64) (models.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getDepartmentLocked(id)
}

func (s *Store) getDepartmentLocked(id int64) (models.Department, error) {
	for _, d := range s.departments {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Department{}, notFound("department", id)
}

func (s *Store) CreateDepartment(ctx context.Context, d models.Department) (models.Department, error) {
	if d.Name == "" || d.CompanyID == 0 {
		return models.Department{}, fmt.Errorf("%w: department requires name and company", storage.ErrInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.id("department")
	if err := storage.CheckDepartmentParent(ctx, d, s.lookupDepartment); err != nil {
		return models.Department{}, err
	}
	d.CreatedAt = s.now()
	d.UpdatedAt = d.CreatedAt
	s.departments = append(s.departments, d)
	return d, nil
}

func (s *Store) UpdateDepartment(ctx context.Context, d models.Department) (models.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.departments {
		if s.departments[i].ID == d.ID {
			if err := storage.CheckDepartmentParent(ctx, d, s.lookupDepartment); err != nil {
				return models.Department{}, err
			}
			d.CreatedAt = s.departments[i].CreatedAt
			d.UpdatedAt = s.now()
			s.departments[i] = d
			return d, nil
		}
	}
	return models.Department{}, notFound("department", d.ID)
}

// lookupDepartment serves CheckDepartmentParent while the mutex is held.
func (s *Store) lookupDepartment(_ context.Context, id int64) (models.Department, error) {
	return s.getDepartmentLocked(id)
}

func (s *Store) DeleteDepartment(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.departments {
		if s.departments[i].ID == id {
			s.departments = append(s.departments[:i], s.departments[i+1:]...)
			return nil
		}
	}
	return notFound("department", id)
}

// ---- employees ----

func (s *Store) ListEmployees(_ context.Context, companyID int64) ([]models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if companyID == 0 || e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Store) GetEmployee(_ context.Context, id int64) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Employee{}, notFound("employee", id)
}

func (s *Store) CreateEmployee(_ context.Context, e models.Employee) (models.Employee, error) {
	if e.Name == "" {
		return models.Employee{}, fmt.Errorf("%w: employee name must not be empty", storage.ErrInvalid)
	}
	if e.Status == "" {
		e.Status = models.EmployeeActive
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.id("employee")
	s.employees = append(s.employees, e)
	return e, nil
}

func (s *Store) UpdateEmployee(_ context.Context, e models.Employee) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.employees {
		if s.employees[i].ID == e.ID {
			s.employees[i] = e
			return e, nil
		}
	}
	return models.Employee{}, notFound("employee", e.ID)
}

// DeleteEmployee removes the employee only. Tasks keep their assignee
// reference; the view resolves the dangling id to "unassigned".
func (s *Store) DeleteEmployee(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return nil
		}
	}
	return notFound("employee", id)
}

// ---- finances ----

func (s *Store) ListTransactions(_ context.Context, companyID int64) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		if companyID == 0 || t.CompanyID == companyID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Store) GetTransaction(_ context.Context, id int64) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Transaction{}, notFound("transaction", id)
}

func (s *Store) CreateTransaction(_ context.Context, t models.Transaction) (models.Transaction, error) {
	t, err := storage.NormalizeTransaction(t)
	if err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.id("transaction")
	t.CreatedAt = s.now()
	if t.Date.IsZero() {
		t.Date = t.CreatedAt
	}
	s.transactions = append(s.transactions, t)
	return t, nil
}

func (s *Store) UpdateTransaction(_ context.Context, t models.Transaction) (models.Transaction, error) {
	t, err := storage.NormalizeTransaction(t)
	if err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == t.ID {
			t.CreatedAt = s.transactions[i].CreatedAt
			s.transactions[i] = t
			return t, nil
		}
	}
	return models.Transaction{}, notFound("transaction", t.ID)
}

func (s *Store) DeleteTransaction(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return nil
		}
	}
	return notFound("transaction", id)
}

func (s *Store) ListAccounts(_ context.Context, companyID int64) ([]models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		if companyID == 0 || a.CompanyID == companyID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Store) GetAccount(_ context.Context, id int64) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Account{}, notFound("account", id)
}

func (s *Store) CreateAccount(_ context.Context, a models.Account) (models.Account, error) {
	if a.Name == "" {
		return models.Account{}, fmt.Errorf("%w: account name must not be empty", storage.ErrInvalid)
	}
	if _, ok := models.ValidCurrencies[a.Currency]; !ok {
		return models.Account{}, fmt.Errorf("%w: unknown currency %q", storage.ErrInvalid, a.Currency)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.id("account")
	s.accounts = append(s.accounts, a)
	return a, nil
}

func (s *Store) UpdateAccount(_ context.Context, a models.Account) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].ID == a.ID {
			s.accounts[i] = a
			return a, nil
		}
	}
	return models.Account{}, notFound("account", a.ID)
}

func (s *Store) DeleteAccount(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return nil
		}
	}
	return notFound("account", id)
}

// ---- vault ----

func (s *Store) ListPasswords(_ context.Context, companyID int64) ([]models.Password, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Password, 0, len(s.passwords))
	for _, p := range s.passwords {
		if companyID == 0 || p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) GetPassword(_ context.Context, id int64) (models.Password, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.passwords {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Password{}, notFound("password", id)
}

func (s *Store) CreatePassword(_ context.Context, p models.Password) (models.Password, error) {
	if p.Name == "" || p.Login == "" {
		return models.Password{}, fmt.Errorf("%w: password entry requires name and login", storage.ErrInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id("password")
	p.UpdatedAt = s.now()
	s.passwords = append(s.passwords, p)
	return p, nil
}

func (s *Store) UpdatePassword(_ context.Context, p models.Password) (models.Password, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.passwords {
		if s.passwords[i].ID == p.ID {
			p.UpdatedAt = s.now()
			s.passwords[i] = p
			return p, nil
		}
	}
	return models.Password{}, notFound("password", p.ID)
}

func (s *Store) DeletePassword(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.passwords {
		if s.passwords[i].ID == id {
			s.passwords = append(s.passwords[:i], s.passwords[i+1:]...)
			return nil
		}
	}
	return notFound("password", id)
}

func (s *Store) ListPasswordCategories(_ context.Context) ([]models.PasswordCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PasswordCategory, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

func (s *Store) GetPasswordCategory(_ context.Context, id int64) (models.PasswordCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.PasswordCategory{}, notFound("password category", id)
}

func (s *Store) CreatePasswordCategory(_ context.Context, c models.PasswordCategory) (models.PasswordCategory, error) {
	if c.Name == "" {
		return models.PasswordCategory{}, fmt.Errorf("%w: category name must not be empty", storage.ErrInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.id("password-category")
	s.categories = append(s.categories, c)
	return c, nil
}

func (s *Store) UpdatePasswordCategory(_ context.Context, c models.PasswordCategory) (models.PasswordCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == c.ID {
			s.categories[i] = c
			return c, nil
		}
	}
	return models.PasswordCategory{}, notFound("password category", c.ID)
}

func (s *Store) DeletePasswordCategory(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return notFound("password category", id)
}
