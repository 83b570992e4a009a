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

const boardColumns = `id, company_id, name, description, color, is_default, is_archived, columns,
    created_at, updated_at`

func scanBoard(row interface{ Scan(...any) error }) (models.Board, error) {
	var (
		b    models.Board
		cols string
	)
	err := row.Scan(&b.ID, &b.CompanyID, &b.Name, &b.Description, &b.Color, &b.IsDefault,
		&b.IsArchived, &cols, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return models.Board{}, err
	}
	b.Columns = fromJSON[models.BoardColumn](cols)
	return b, nil
}

func (s *Store) ListBoards(ctx context.Context, companyID int64) ([]models.Board, error) {
	query := fmt.Sprintf(`SELECT %s FROM boards WHERE (? = 0 OR company_id = ?) ORDER BY id`, boardColumns)
	rows, err := s.db.QueryContext(ctx, query, companyID, companyID)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	defer rows.Close()

	var boards []models.Board
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan board: %w", err)
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}

func (s *Store) GetBoard(ctx context.Context, id int64) (models.Board, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT %s FROM boards WHERE id = ?`, boardColumns), id)
	b, err := scanBoard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Board{}, fmt.Errorf("board %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.Board{}, fmt.Errorf("get board: %w", err)
	}
	return b, nil
}

func (s *Store) CreateBoard(ctx context.Context, b models.Board) (models.Board, error) {
	if strings.TrimSpace(b.Name) == "" || b.CompanyID == 0 {
		return models.Board{}, fmt.Errorf("%w: board requires name and company", storage.ErrInvalid)
	}
	if b.Color == "" {
		b.Color = "#3B82F6"
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO boards(company_id, name, description, color,
        is_default, is_archived, columns) VALUES(?, ?, ?, ?, ?, ?, ?)`,
		b.CompanyID, strings.TrimSpace(b.Name), b.Description, b.Color, b.IsDefault,
		b.IsArchived, jsonText(b.Columns))
	if err != nil {
		return models.Board{}, fmt.Errorf("insert board: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Board{}, fmt.Errorf("board id: %w", err)
	}
	if len(b.Columns) == 0 {
		cols := models.DefaultColumns(id)
		if _, err := s.db.ExecContext(ctx, `UPDATE boards SET columns = ? WHERE id = ?`, jsonText(cols), id); err != nil {
			return models.Board{}, fmt.Errorf("board columns: %w", err)
		}
	}
	return s.GetBoard(ctx, id)
}

func (s *Store) UpdateBoard(ctx context.Context, b models.Board) (models.Board, error) {
	current, err := s.GetBoard(ctx, b.ID)
	if err != nil {
		return models.Board{}, err
	}
	if len(b.Columns) == 0 {
		b.Columns = current.Columns
	}

	_, err = s.db.ExecContext(ctx, `UPDATE boards SET name = ?, description = ?, color = ?,
        is_default = ?, is_archived = ?, columns = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		b.Name, b.Description, b.Color, b.IsDefault, b.IsArchived, jsonText(b.Columns), b.ID)
	if err != nil {
		return models.Board{}, fmt.Errorf("update board: %w", err)
	}
	return s.GetBoard(ctx, b.ID)
}
