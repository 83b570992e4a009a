package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"bizdesk/internal/models"
	"bizdesk/internal/storage"
)

// ---- companies ----

const companyColumns = `id, name, description, industry, website, email, phone, address, tax_id,
    is_active, created_at, updated_at`

func scanCompany(row interface{ Scan(...any) error }) (models.Company, error) {
	var c models.Company
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Industry, &c.Website, &c.Email,
		&c.Phone, &c.Address, &c.TaxID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (s *Store) ListCompanies(ctx context.Context) ([]models.Company, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT %s FROM companies ORDER BY id`, companyColumns))
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (s *Store) GetCompany(ctx context.Context, id int64) (models.Company, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT %s FROM companies WHERE id = ?`, companyColumns), id)
	c, err := scanCompany(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Company{}, fmt.Errorf("company %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.Company{}, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

func (s *Store) CreateCompany(ctx context.Context, c models.Company) (models.Company, error) {
	if strings.TrimSpace(c.Name) == "" {
		return models.Company{}, fmt.Errorf("%w: company name must not be empty", storage.ErrInvalid)
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO companies(name, description, industry, website,
        email, phone, address, tax_id, is_active) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		strings.TrimSpace(c.Name), c.Description, c.Industry, c.Website, c.Email, c.Phone,
		c.Address, c.TaxID, c.IsActive)
	if err != nil {
		return models.Company{}, fmt.Errorf("insert company: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Company{}, fmt.Errorf("company id: %w", err)
	}
	return s.GetCompany(ctx, id)
}

func (s *Store) UpdateCompany(ctx context.Context, c models.Company) (models.Company, error) {
	if strings.TrimSpace(c.Name) == "" {
		return models.Company{}, fmt.Errorf("%w: company name must not be empty", storage.ErrInvalid)
	}

	res, err := s.db.ExecContext(ctx, `UPDATE companies SET name = ?, description = ?, industry = ?,
        website = ?, email = ?, phone = ?, address = ?, tax_id = ?, is_active = ?,
        updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		strings.TrimSpace(c.Name), c.Description, c.Industry, c.Website, c.Email, c.Phone,
		c.Address, c.TaxID, c.IsActive, c.ID)
	if err != nil {
		return models.Company{}, fmt.Errorf("update company: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Company{}, err
	}
	if affected == 0 {
		return models.Company{}, fmt.Errorf("company %d: %w", c.ID, storage.ErrNotFound)
	}
	return s.GetCompany(ctx, c.ID)
}

func (s *Store) DeleteCompany(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM companies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("company %d: %w", id, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) SetCompanyActive(ctx context.Context, id int64, active bool) (models.Company, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE companies SET is_active = ?,
        updated_at = CURRENT_TIMESTAMP WHERE id = ?`, active, id)
	if err != nil {
		return models.Company{}, fmt.Errorf("set company active: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Company{}, err
	}
	if affected == 0 {
		return models.Company{}, fmt.Errorf("company %d: %w", id, storage.ErrNotFound)
	}
	return s.GetCompany(ctx, id)
}

// ---- departments ----

const departmentColumns = `id, company_id, name, description, manager_id, parent_id, is_active,
    created_at, updated_at`

func scanDepartment(row interface{ Scan(...any) error }) (models.Department, error) {
	var d models.Department
	err := row.Scan(&d.ID, &d.CompanyID, &d.Name, &d.Description, &d.ManagerID, &d.ParentID,
		&d.IsActive, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func (s *Store) ListDepartments(ctx context.Context, companyID int64) ([]models.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM departments WHERE (? = 0 OR company_id = ?) ORDER BY id`, departmentColumns)
	rows, err := s.db.QueryContext(ctx, query, companyID, companyID)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var departments []models.Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func (s *Store) GetDepartment(ctx context.Context, id int64) (models.Department, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT %s FROM departments WHERE id = ?`, departmentColumns), id)
	d, err := scanDepartment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Department{}, fmt.Errorf("department %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.Department{}, fmt.Errorf("get department: %w", err)
	}
	return d, nil
}

func (s *Store) CreateDepartment(ctx context.Context, d models.Department) (models.Department, error) {
	if strings.TrimSpace(d.Name) == "" || d.CompanyID == 0 {
		return models.Department{}, fmt.Errorf("%w: department requires name and company", storage.ErrInvalid)
	}
	if err := storage.CheckDepartmentParent(ctx, d, s.GetDepartment); err != nil {
		return models.Department{}, err
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO departments(company_id, name, description,
        manager_id, parent_id, is_active) VALUES(?, ?, ?, ?, ?, ?)`,
		d.CompanyID, strings.TrimSpace(d.Name), d.Description, d.ManagerID, d.ParentID, d.IsActive)
	if err != nil {
		return models.Department{}, fmt.Errorf("insert department: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Department{}, fmt.Errorf("department id: %w", err)
	}
	return s.GetDepartment(ctx, id)
}

func (s *Store) UpdateDepartment(ctx context.Context, d models.Department) (models.Department, error) {
	if err := storage.CheckDepartmentParent(ctx, d, s.GetDepartment); err != nil {
		return models.Department{}, err
	}

	res, err := s.db.ExecContext(ctx, `UPDATE departments SET name = ?, description = ?,
        manager_id = ?, parent_id = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		d.Name, d.Description, d.ManagerID, d.ParentID, d.IsActive, d.ID)
	if err != nil {
		return models.Department{}, fmt.Errorf("update department: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Department{}, err
	}
	if affected == 0 {
		return models.Department{}, fmt.Errorf("department %d: %w", d.ID, storage.ErrNotFound)
	}
	return s.GetDepartment(ctx, d.ID)
}

func (s *Store) DeleteDepartment(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM departments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("department %d: %w", id, storage.ErrNotFound)
	}
	return nil
}

// ---- employees ----

const employeeColumns = `id, company_id, name, position, department, avatar, email, phone, status,
    hire_date, birth_date, termination_date`

func scanEmployee(row interface{ Scan(...any) error }) (models.Employee, error) {
	var (
		e                models.Employee
		hire, birth, end sql.NullTime
	)
	err := row.Scan(&e.ID, &e.CompanyID, &e.Name, &e.Position, &e.Department, &e.Avatar,
		&e.Email, &e.Phone, &e.Status, &hire, &birth, &end)
	if err != nil {
		return models.Employee{}, err
	}
	e.HireDate = timePtr(hire)
	e.BirthDate = timePtr(birth)
	e.TerminationDate = timePtr(end)
	return e, nil
}

func (s *Store) ListEmployees(ctx context.Context, companyID int64) ([]models.Employee, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees WHERE (? = 0 OR company_id = ?) ORDER BY id`, employeeColumns)
	rows, err := s.db.QueryContext(ctx, query, companyID, companyID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, id int64) (models.Employee, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT %s FROM employees WHERE id = ?`, employeeColumns), id)
	e, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Employee{}, fmt.Errorf("employee %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.Employee{}, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func (s *Store) CreateEmployee(ctx context.Context, e models.Employee) (models.Employee, error) {
	if strings.TrimSpace(e.Name) == "" {
		return models.Employee{}, fmt.Errorf("%w: employee name must not be empty", storage.ErrInvalid)
	}
	if e.Status == "" {
		e.Status = models.EmployeeActive
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO employees(company_id, name, position, department,
        avatar, email, phone, status, hire_date, birth_date, termination_date)
        VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.CompanyID, strings.TrimSpace(e.Name), e.Position, e.Department, e.Avatar, e.Email,
		e.Phone, e.Status, nullTime(e.HireDate), nullTime(e.BirthDate), nullTime(e.TerminationDate))
	if err != nil {
		return models.Employee{}, fmt.Errorf("insert employee: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Employee{}, fmt.Errorf("employee id: %w", err)
	}
	return s.GetEmployee(ctx, id)
}

func (s *Store) UpdateEmployee(ctx context.Context, e models.Employee) (models.Employee, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE employees SET name = ?, position = ?, department = ?,
        avatar = ?, email = ?, phone = ?, status = ?, hire_date = ?, birth_date = ?,
        termination_date = ? WHERE id = ?`,
		e.Name, e.Position, e.Department, e.Avatar, e.Email, e.Phone, e.Status,
		nullTime(e.HireDate), nullTime(e.BirthDate), nullTime(e.TerminationDate), e.ID)
	if err != nil {
		return models.Employee{}, fmt.Errorf("update employee: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Employee{}, err
	}
	if affected == 0 {
		return models.Employee{}, fmt.Errorf("employee %d: %w", e.ID, storage.ErrNotFound)
	}
	return s.GetEmployee(ctx, e.ID)
}

// DeleteEmployee removes the employee row only; tasks keep their
// assignee id and the view renders it as unassigned.
func (s *Store) DeleteEmployee(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("employee %d: %w", id, storage.ErrNotFound)
	}
	return nil
}
