package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"bizdesk/internal/models"
)

// Finances wraps the /api/v1/finances resource: transactions and
// accounts.
type Finances struct {
	c *Client
}

// Finances returns the finance resource wrapper.
func (c *Client) Finances() *Finances {
	return &Finances{c: c}
}

func (f *Finances) ListTransactions(ctx context.Context, companyID int64) ([]models.Transaction, error) {
	path := "/api/v1/finances/transactions"
	if companyID != 0 {
		path += "?companyId=" + strconv.FormatInt(companyID, 10)
	}
	var resp struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	if err := f.c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

func (f *Finances) CreateTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	var resp struct {
		Transaction models.Transaction `json:"transaction"`
	}
	if err := f.c.do(ctx, http.MethodPost, "/api/v1/finances/transactions", t, &resp); err != nil {
		return models.Transaction{}, err
	}
	return resp.Transaction, nil
}

func (f *Finances) UpdateTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	var resp struct {
		Transaction models.Transaction `json:"transaction"`
	}
	path := fmt.Sprintf("/api/v1/finances/transactions/%d", t.ID)
	if err := f.c.do(ctx, http.MethodPut, path, t, &resp); err != nil {
		return models.Transaction{}, err
	}
	return resp.Transaction, nil
}

func (f *Finances) DeleteTransaction(ctx context.Context, id int64) error {
	return f.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/finances/transactions/%d", id), nil, nil)
}

func (f *Finances) ListAccounts(ctx context.Context, companyID int64) ([]models.Account, error) {
	path := "/api/v1/finances/accounts"
	if companyID != 0 {
		path += "?companyId=" + strconv.FormatInt(companyID, 10)
	}
	var resp struct {
		Accounts []models.Account `json:"accounts"`
	}
	if err := f.c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}

func (f *Finances) CreateAccount(ctx context.Context, a models.Account) (models.Account, error) {
	var resp struct {
		Account models.Account `json:"account"`
	}
	if err := f.c.do(ctx, http.MethodPost, "/api/v1/finances/accounts", a, &resp); err != nil {
		return models.Account{}, err
	}
	return resp.Account, nil
}

func (f *Finances) UpdateAccount(ctx context.Context, a models.Account) (models.Account, error) {
	var resp struct {
		Account models.Account `json:"account"`
	}
	if err := f.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/finances/accounts/%d", a.ID), a, &resp); err != nil {
		return models.Account{}, err
	}
	return resp.Account, nil
}

func (f *Finances) DeleteAccount(ctx context.Context, id int64) error {
	return f.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/finances/accounts/%d", id), nil, nil)
}
