package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"bizdesk/internal/models"
	"bizdesk/internal/storage"
)

const boardColumns = `id, company_id, name, description, color, is_default, is_archived, columns,
    created_at, updated_at`

func scanBoard(row interface{ Scan(...any) error }) (models.Board, error) {
	var (
		b    models.Board
		cols []byte
	)
	err := row.Scan(&b.ID, &b.CompanyID, &b.Name, &b.Description, &b.Color, &b.IsDefault,
		&b.IsArchived, &cols, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return models.Board{}, err
	}
	b.Columns = fromJSON[models.BoardColumn](cols)
	return b, nil
}

// wrapPgError maps constraint violations onto the storage sentinels.
func wrapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s", storage.ErrConflict, pgErr.Detail)
		case foreignKeyViolation:
			return fmt.Errorf("%w: %s", storage.ErrInvalid, pgErr.Detail)
		}
	}
	return err
}

func (s *Store) ListBoards(ctx context.Context, companyID int64) ([]models.Board, error) {
	query := fmt.Sprintf(`SELECT %s FROM boards WHERE ($1 = 0 OR company_id = $1) ORDER BY id ASC;`, boardColumns)
	rows, err := s.pool.Query(ctx, query, companyID)
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
	row := s.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM boards WHERE id = $1;`, boardColumns), id)
	b, err := scanBoard(row)
	if errors.Is(err, pgx.ErrNoRows) {
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

	var id int64
	err := s.pool.QueryRow(ctx, `INSERT INTO boards(company_id, name, description, color, is_default,
        is_archived, columns) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		b.CompanyID, strings.TrimSpace(b.Name), b.Description, b.Color, b.IsDefault,
		b.IsArchived, jsonValue(b.Columns)).Scan(&id)
	if err != nil {
		return models.Board{}, fmt.Errorf("insert board: %w", wrapPgError(err))
	}
	if len(b.Columns) == 0 {
		cols := models.DefaultColumns(id)
		if _, err := s.pool.Exec(ctx, `UPDATE boards SET columns = $1 WHERE id = $2;`, jsonValue(cols), id); err != nil {
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

	_, err = s.pool.Exec(ctx, `UPDATE boards SET name = $1, description = $2, color = $3,
        is_default = $4, is_archived = $5, columns = $6, updated_at = NOW() WHERE id = $7;`,
		b.Name, b.Description, b.Color, b.IsDefault, b.IsArchived, jsonValue(b.Columns), b.ID)
	if err != nil {
		return models.Board{}, fmt.Errorf("update board: %w", wrapPgError(err))
	}
	return s.GetBoard(ctx, b.ID)
}
