package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"bizdesk/internal/models"
)

// Companies wraps the /api/v1/companies resource.
type Companies struct {
	c *Client
}

// Companies returns the company resource wrapper.
func (c *Client) Companies() *Companies {
	return &Companies{c: c}
}

func (r *Companies) List(ctx context.Context) ([]models.Company, error) {
	var resp struct {
		Companies []models.Company `json:"companies"`
	}
	if err := r.c.get(ctx, "/api/v1/companies", &resp); err != nil {
		return nil, err
	}
	return resp.Companies, nil
}

func (r *Companies) Get(ctx context.Context, id int64) (models.Company, error) {
	var resp struct {
		Company models.Company `json:"company"`
	}
	if err := r.c.get(ctx, fmt.Sprintf("/api/v1/companies/%d", id), &resp); err != nil {
		return models.Company{}, err
	}
	return resp.Company, nil
}

func (r *Companies) Create(ctx context.Context, company models.Company) (models.Company, error) {
	var resp struct {
		Company models.Company `json:"company"`
	}
	if err := r.c.do(ctx, http.MethodPost, "/api/v1/companies", company, &resp); err != nil {
		return models.Company{}, err
	}
	return resp.Company, nil
}

func (r *Companies) Update(ctx context.Context, company models.Company) (models.Company, error) {
	var resp struct {
		Company models.Company `json:"company"`
	}
	if err := r.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/companies/%d", company.ID), company, &resp); err != nil {
		return models.Company{}, err
	}
	return resp.Company, nil
}

func (r *Companies) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/companies/%d", id), nil, nil)
}

func (r *Companies) Activate(ctx context.Context, id int64) (models.Company, error) {
	return r.activation(ctx, id, "activate")
}

func (r *Companies) Deactivate(ctx context.Context, id int64) (models.Company, error) {
	return r.activation(ctx, id, "deactivate")
}

func (r *Companies) activation(ctx context.Context, id int64, action string) (models.Company, error) {
	var resp struct {
		Company models.Company `json:"company"`
	}
	path := fmt.Sprintf("/api/v1/companies/%d/%s", id, action)
	if err := r.c.do(ctx, http.MethodPut, path, nil, &resp); err != nil {
		return models.Company{}, err
	}
	return resp.Company, nil
}

// Departments wraps the /api/v1/departments resource.
type Departments struct {
	c *Client
}

// Departments returns the department resource wrapper.
func (c *Client) Departments() *Departments {
	return &Departments{c: c}
}

func (r *Departments) List(ctx context.Context, companyID int64) ([]models.Department, error) {
	path := "/api/v1/departments"
	if companyID != 0 {
		path += "?companyId=" + strconv.FormatInt(companyID, 10)
	}
	var resp struct {
		Departments []models.Department `json:"departments"`
	}
	if err := r.c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Departments, nil
}

func (r *Departments) Get(ctx context.Context, id int64) (models.Department, error) {
	var resp struct {
		Department models.Department `json:"department"`
	}
	if err := r.c.get(ctx, fmt.Sprintf("/api/v1/departments/%d", id), &resp); err != nil {
		return models.Department{}, err
	}
	return resp.Department, nil
}

func (r *Departments) Create(ctx context.Context, department models.Department) (models.Department, error) {
	var resp struct {
		Department models.Department `json:"department"`
	}
	if err := r.c.do(ctx, http.MethodPost, "/api/v1/departments", department, &resp); err != nil {
		return models.Department{}, err
	}
	return resp.Department, nil
}

func (r *Departments) Update(ctx context.Context, department models.Department) (models.Department, error) {
	var resp struct {
		Department models.Department `json:"department"`
	}
	if err := r.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/departments/%d", department.ID), department, &resp); err != nil {
		return models.Department{}, err
	}
	return resp.Department, nil
}

func (r *Departments) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/departments/%d", id), nil, nil)
}

// Employees wraps the /api/v1/employees resource.
type Employees struct {
	c *Client
}

// Employees returns the employee resource wrapper.
func (c *Client) Employees() *Employees {
	return &Employees{c: c}
}

func (r *Employees) List(ctx context.Context, companyID int64) ([]models.Employee, error) {
	path := "/api/v1/employees"
	if companyID != 0 {
		path += "?companyId=" + strconv.FormatInt(companyID, 10)
	}
	var resp struct {
		Employees []models.Employee `json:"employees"`
	}
	if err := r.c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Employees, nil
}

func (r *Employees) Get(ctx context.Context, id int64) (models.Employee, error) {
	var resp struct {
		Employee models.Employee `json:"employee"`
	}
	if err := r.c.get(ctx, fmt.Sprintf("/api/v1/employees/%d", id), &resp); err != nil {
		return models.Employee{}, err
	}
	return resp.Employee, nil
}

func (r *Employees) Create(ctx context.Context, employee models.Employee) (models.Employee, error) {
	var resp struct {
		Employee models.Employee `json:"employee"`
	}
	if err := r.c.do(ctx, http.MethodPost, "/api/v1/employees", employee, &resp); err != nil {
		return models.Employee{}, err
	}
	return resp.Employee, nil
}

func (r *Employees) Update(ctx context.Context, employee models.Employee) (models.Employee, error) {
	var resp struct {
		Employee models.Employee `json:"employee"`
	}
	if err := r.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/employees/%d", employee.ID), employee, &resp); err != nil {
		return models.Employee{}, err
	}
	return resp.Employee, nil
}

func (r *Employees) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/employees/%d", id), nil, nil)
}
