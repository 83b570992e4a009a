package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"bizdesk/internal/models"
	"bizdesk/internal/storage"
)

const transactionColumns = `id, company_id, type, category, amount, currency, description, date,
    counterparty, account, created_by, created_by_id, tags, created_at`

func scanTransaction(row interface{ Scan(...any) error }) (models.Transaction, error) {
	var (
		t    models.Transaction
		tags string
	)
	err := row.Scan(&t.ID, &t.CompanyID, &t.Type, &t.Category, &t.Amount, &t.Currency,
		&t.Description, &t.Date, &t.Counterparty, &t.Account, &t.CreatedBy, &t.CreatedByID,
		&tags, &t.CreatedAt)
	if err != nil {
		return models.Transaction{}, err
	}
	t.Tags = fromJSON[string](tags)
	return t, nil
}

func (s *Store) ListTransactions(ctx context.Context, companyID int64) ([]models.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE (? = 0 OR company_id = ?) ORDER BY date DESC, id DESC`, transactionColumns)
	rows, err := s.db.QueryContext(ctx, query, companyID, companyID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) GetTransaction(ctx context.Context, id int64) (models.Transaction, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT %s FROM transactions WHERE id = ?`, transactionColumns), id)
	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Transaction{}, fmt.Errorf("transaction %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

func (s *Store) CreateTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	t, err := storage.NormalizeTransaction(t)
	if err != nil {
		return models.Transaction{}, err
	}
	if t.Date.IsZero() {
		t.Date = time.Now()
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO transactions(company_id, type, category, amount,
        currency, description, date, counterparty, account, created_by, created_by_id, tags)
        VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.CompanyID, t.Type, t.Category, t.Amount, t.Currency, t.Description, t.Date,
		t.Counterparty, t.Account, t.CreatedBy, t.CreatedByID, jsonText(t.Tags))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Transaction{}, fmt.Errorf("transaction id: %w", err)
	}
	return s.GetTransaction(ctx, id)
}

func (s *Store) UpdateTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	t, err := storage.NormalizeTransaction(t)
	if err != nil {
		return models.Transaction{}, err
	}

	res, err := s.db.ExecContext(ctx, `UPDATE transactions SET type = ?, category = ?, amount = ?,
        currency = ?, description = ?, date = ?, counterparty = ?, account = ?, tags = ?
        WHERE id = ?`,
		t.Type, t.Category, t.Amount, t.Currency, t.Description, t.Date, t.Counterparty,
		t.Account, jsonText(t.Tags), t.ID)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("update transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Transaction{}, fmt.Errorf("transaction %d: %w", t.ID, storage.ErrNotFound)
	}
	return s.GetTransaction(ctx, t.ID)
}

func (s *Store) DeleteTransaction(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("transaction %d: %w", id, storage.ErrNotFound)
	}
	return nil
}

const accountColumns = `id, company_id, name, currency, balance, type, description`

func scanAccount(row interface{ Scan(...any) error }) (models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.CompanyID, &a.Name, &a.Currency, &a.Balance, &a.Type, &a.Description)
	return a, err
}

func (s *Store) ListAccounts(ctx context.Context, companyID int64) ([]models.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE (? = 0 OR company_id = ?) ORDER BY id`, accountColumns)
	rows, err := s.db.QueryContext(ctx, query, companyID, companyID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var out []models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT %s FROM accounts WHERE id = ?`, accountColumns), id)
	a, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, fmt.Errorf("account %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

func (s *Store) CreateAccount(ctx context.Context, a models.Account) (models.Account, error) {
	if strings.TrimSpace(a.Name) == "" || a.CompanyID == 0 {
		return models.Account{}, fmt.Errorf("%w: account requires name and company", storage.ErrInvalid)
	}
	if _, ok := models.ValidCurrencies[a.Currency]; !ok {
		return models.Account{}, fmt.Errorf("%w: unknown currency %q", storage.ErrInvalid, a.Currency)
	}
	if a.Type == "" {
		a.Type = models.AccountBank
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO accounts(company_id, name, currency, balance,
        type, description) VALUES(?, ?, ?, ?, ?, ?)`,
		a.CompanyID, strings.TrimSpace(a.Name), a.Currency, a.Balance, a.Type, a.Description)
	if err != nil {
		return models.Account{}, fmt.Errorf("insert account: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Account{}, fmt.Errorf("account id: %w", err)
	}
	return s.GetAccount(ctx, id)
}

func (s *Store) UpdateAccount(ctx context.Context, a models.Account) (models.Account, error) {
	if _, ok := models.ValidCurrencies[a.Currency]; !ok {
		return models.Account{}, fmt.Errorf("%w: unknown currency %q", storage.ErrInvalid, a.Currency)
	}

	res, err := s.db.ExecContext(ctx, `UPDATE accounts SET name = ?, currency = ?, balance = ?,
        type = ?, description = ? WHERE id = ?`,
		a.Name, a.Currency, a.Balance, a.Type, a.Description, a.ID)
	if err != nil {
		return models.Account{}, fmt.Errorf("update account: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Account{}, fmt.Errorf("account %d: %w", a.ID, storage.ErrNotFound)
	}
	return s.GetAccount(ctx, a.ID)
}

func (s *Store) DeleteAccount(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("account %d: %w", id, storage.ErrNotFound)
	}
	return nil
}
