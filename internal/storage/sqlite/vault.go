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

const passwordColumns = `id, company_id, name, description, url, login, password, category_id,
    is_personal, updated_by, updated_at`

func scanPassword(row interface{ Scan(...any) error }) (models.Password, error) {
	var p models.Password
	err := row.Scan(&p.ID, &p.CompanyID, &p.Name, &p.Description, &p.URL, &p.Login,
		&p.Password, &p.CategoryID, &p.IsPersonal, &p.UpdatedBy, &p.UpdatedAt)
	return p, err
}

func (s *Store) ListPasswords(ctx context.Context, companyID int64) ([]models.Password, error) {
	query := fmt.Sprintf(`SELECT %s FROM passwords WHERE (? = 0 OR company_id = ?) ORDER BY id`, passwordColumns)
	rows, err := s.db.QueryContext(ctx, query, companyID, companyID)
	if err != nil {
		return nil, fmt.Errorf("list passwords: %w", err)
	}
	defer rows.Close()

	var out []models.Password
	for rows.Next() {
		p, err := scanPassword(rows)
		if err != nil {
			return nil, fmt.Errorf("scan password: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) GetPassword(ctx context.Context, id int64) (models.Password, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT %s FROM passwords WHERE id = ?`, passwordColumns), id)
	p, err := scanPassword(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Password{}, fmt.Errorf("password %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.Password{}, fmt.Errorf("get password: %w", err)
	}
	return p, nil
}

func (s *Store) CreatePassword(ctx context.Context, p models.Password) (models.Password, error) {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Login) == "" {
		return models.Password{}, fmt.Errorf("%w: password entry requires name and login", storage.ErrInvalid)
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO passwords(company_id, name, description, url,
        login, password, category_id, is_personal, updated_by) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.CompanyID, strings.TrimSpace(p.Name), p.Description, p.URL, strings.TrimSpace(p.Login),
		p.Password, p.CategoryID, p.IsPersonal, p.UpdatedBy)
	if err != nil {
		return models.Password{}, fmt.Errorf("insert password: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Password{}, fmt.Errorf("password id: %w", err)
	}
	return s.GetPassword(ctx, id)
}

func (s *Store) UpdatePassword(ctx context.Context, p models.Password) (models.Password, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE passwords SET name = ?, description = ?, url = ?,
        login = ?, password = ?, category_id = ?, is_personal = ?, updated_by = ?,
        updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		p.Name, p.Description, p.URL, p.Login, p.Password, p.CategoryID, p.IsPersonal,
		p.UpdatedBy, p.ID)
	if err != nil {
		return models.Password{}, fmt.Errorf("update password: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Password{}, fmt.Errorf("password %d: %w", p.ID, storage.ErrNotFound)
	}
	return s.GetPassword(ctx, p.ID)
}

func (s *Store) DeletePassword(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM passwords WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete password: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("password %d: %w", id, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) ListPasswordCategories(ctx context.Context) ([]models.PasswordCategory, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, icon, is_personal FROM password_categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list password categories: %w", err)
	}
	defer rows.Close()

	var out []models.PasswordCategory
	for rows.Next() {
		var c models.PasswordCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.IsPersonal); err != nil {
			return nil, fmt.Errorf("scan password category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) GetPasswordCategory(ctx context.Context, id int64) (models.PasswordCategory, error) {
	var c models.PasswordCategory
	err := s.db.QueryRowContext(ctx, `SELECT id, name, icon, is_personal FROM password_categories WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Icon, &c.IsPersonal)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PasswordCategory{}, fmt.Errorf("password category %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.PasswordCategory{}, fmt.Errorf("get password category: %w", err)
	}
	return c, nil
}

func (s *Store) CreatePasswordCategory(ctx context.Context, c models.PasswordCategory) (models.PasswordCategory, error) {
	if strings.TrimSpace(c.Name) == "" {
		return models.PasswordCategory{}, fmt.Errorf("%w: category name must not be empty", storage.ErrInvalid)
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO password_categories(name, icon, is_personal) VALUES(?, ?, ?)`,
		strings.TrimSpace(c.Name), c.Icon, c.IsPersonal)
	if err != nil {
		return models.PasswordCategory{}, fmt.Errorf("insert password category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.PasswordCategory{}, fmt.Errorf("password category id: %w", err)
	}
	return s.GetPasswordCategory(ctx, id)
}

func (s *Store) UpdatePasswordCategory(ctx context.Context, c models.PasswordCategory) (models.PasswordCategory, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE password_categories SET name = ?, icon = ?, is_personal = ? WHERE id = ?`,
		c.Name, c.Icon, c.IsPersonal, c.ID)
	if err != nil {
		return models.PasswordCategory{}, fmt.Errorf("update password category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.PasswordCategory{}, fmt.Errorf("password category %d: %w", c.ID, storage.ErrNotFound)
	}
	return s.GetPasswordCategory(ctx, c.ID)
}

func (s *Store) DeletePasswordCategory(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM password_categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete password category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("password category %d: %w", id, storage.ErrNotFound)
	}
	return nil
}
