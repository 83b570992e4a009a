package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"bizdesk/internal/models"
)

// Vault wraps the password and password-category resources.
type Vault struct {
	c *Client
}

// Vault returns the vault resource wrapper.
func (c *Client) Vault() *Vault {
	return &Vault{c: c}
}

func (v *Vault) ListPasswords(ctx context.Context, companyID int64) ([]models.Password, error) {
	path := "/api/v1/passwords"
	if companyID != 0 {
		path += "?companyId=" + strconv.FormatInt(companyID, 10)
	}
	var resp struct {
		Passwords []models.Password `json:"passwords"`
	}
	if err := v.c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Passwords, nil
}

func (v *Vault) CreatePassword(ctx context.Context, p models.Password) (models.Password, error) {
	var resp struct {
		Password models.Password `json:"password"`
	}
	if err := v.c.do(ctx, http.MethodPost, "/api/v1/passwords", p, &resp); err != nil {
		return models.Password{}, err
	}
	return resp.Password, nil
}

func (v *Vault) UpdatePassword(ctx context.Context, p models.Password) (models.Password, error) {
	var resp struct {
		Password models.Password `json:"password"`
	}
	if err := v.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/passwords/%d", p.ID), p, &resp); err != nil {
		return models.Password{}, err
	}
	return resp.Password, nil
}

func (v *Vault) DeletePassword(ctx context.Context, id int64) error {
	return v.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/passwords/%d", id), nil, nil)
}

func (v *Vault) ListCategories(ctx context.Context) ([]models.PasswordCategory, error) {
	var resp struct {
		Categories []models.PasswordCategory `json:"categories"`
	}
	if err := v.c.get(ctx, "/api/v1/password-categories", &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

func (v *Vault) CreateCategory(ctx context.Context, c models.PasswordCategory) (models.PasswordCategory, error) {
	var resp struct {
		Category models.PasswordCategory `json:"category"`
	}
	if err := v.c.do(ctx, http.MethodPost, "/api/v1/password-categories", c, &resp); err != nil {
		return models.PasswordCategory{}, err
	}
	return resp.Category, nil
}

func (v *Vault) UpdateCategory(ctx context.Context, c models.PasswordCategory) (models.PasswordCategory, error) {
	var resp struct {
		Category models.PasswordCategory `json:"category"`
	}
	if err := v.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/password-categories/%d", c.ID), c, &resp); err != nil {
		return models.PasswordCategory{}, err
	}
	return resp.Category, nil
}

func (v *Vault) DeleteCategory(ctx context.Context, id int64) error {
	return v.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/password-categories/%d", id), nil, nil)
}
