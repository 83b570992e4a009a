package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v4"

	"bizdesk/internal/models"
	"bizdesk/internal/storage"
)

const taskColumns = `id, company_id, board_id, sprint_id, epic_id, title, description, status,
    priority, assignee_id, creator_id, due_date, tags, checklist, comments, is_favorite,
    story_points, estimated_hours, actual_hours, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (models.Task, error) {
	var (
		t                         models.Task
		due                       sql.NullTime
		tags, checklist, comments []byte
	)
	err := row.Scan(&t.ID, &t.CompanyID, &t.BoardID, &t.SprintID, &t.EpicID, &t.Title,
		&t.Description, &t.Status, &t.Priority, &t.AssigneeID, &t.CreatorID, &due,
		&tags, &checklist, &comments, &t.IsFavorite, &t.StoryPoints, &t.EstimatedHours,
		&t.ActualHours, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return models.Task{}, err
	}
	t.DueDate = timePtr(due)
	t.Tags = fromJSON[string](tags)
	t.Checklist = fromJSON[models.ChecklistItem](checklist)
	t.Comments = fromJSON[models.TaskComment](comments)
	return t, nil
}

func (s *Store) ListTasks(ctx context.Context, q storage.TaskQuery) ([]models.Task, error) {
	where := []string{"TRUE"}
	args := []any{}
	if q.CompanyID != 0 {
		args = append(args, q.CompanyID)
		where = append(where, fmt.Sprintf("company_id = $%d", len(args)))
	}
	if q.BoardID != 0 {
		args = append(args, q.BoardID)
		where = append(where, fmt.Sprintf("board_id = $%d", len(args)))
	}
	if q.AssigneeID != 0 {
		args = append(args, q.AssigneeID)
		where = append(where, fmt.Sprintf("assignee_id = $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY id ASC;`, taskColumns, strings.Join(where, " AND "))
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) GetTask(ctx context.Context, id int64) (models.Task, error) {
	row := s.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM tasks WHERE id = $1;`, taskColumns), id)
	t, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Task{}, fmt.Errorf("task %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

func (s *Store) CreateTask(ctx context.Context, t models.Task) (models.Task, error) {
	t, err := storage.NormalizeTask(t)
	if err != nil {
		return models.Task{}, err
	}

	var id int64
	err = s.pool.QueryRow(ctx, `INSERT INTO tasks(company_id, board_id, sprint_id, epic_id, title,
        description, status, priority, assignee_id, creator_id, due_date, tags, checklist,
        comments, is_favorite, story_points, estimated_hours, actual_hours)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
        RETURNING id;`,
		t.CompanyID, t.BoardID, t.SprintID, t.EpicID, t.Title, t.Description, t.Status,
		t.Priority, t.AssigneeID, t.CreatorID, nullTime(t.DueDate), jsonValue(t.Tags),
		jsonValue(t.Checklist), jsonValue(t.Comments), t.IsFavorite, t.StoryPoints,
		t.EstimatedHours, t.ActualHours).Scan(&id)
	if err != nil {
		return models.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return s.GetTask(ctx, id)
}

func (s *Store) UpdateTask(ctx context.Context, t models.Task) (models.Task, error) {
	t, err := storage.NormalizeTask(t)
	if err != nil {
		return models.Task{}, err
	}

	r, err := s.pool.Exec(ctx, `UPDATE tasks
        SET board_id = $1, sprint_id = $2, epic_id = $3, title = $4, description = $5,
            status = $6, priority = $7, assignee_id = $8, due_date = $9, tags = $10,
            checklist = $11, comments = $12, is_favorite = $13, story_points = $14,
            estimated_hours = $15, actual_hours = $16, updated_at = NOW()
        WHERE id = $17;`,
		t.BoardID, t.SprintID, t.EpicID, t.Title, t.Description, t.Status, t.Priority,
		t.AssigneeID, nullTime(t.DueDate), jsonValue(t.Tags), jsonValue(t.Checklist),
		jsonValue(t.Comments), t.IsFavorite, t.StoryPoints, t.EstimatedHours, t.ActualHours, t.ID)
	if err != nil {
		return models.Task{}, fmt.Errorf("update task: %w", err)
	}
	if r.RowsAffected() == 0 {
		return models.Task{}, fmt.Errorf("task %d: %w", t.ID, storage.ErrNotFound)
	}
	return s.GetTask(ctx, t.ID)
}

func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	r, err := s.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if r.RowsAffected() == 0 {
		return fmt.Errorf("task %d: %w", id, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) ToggleTaskFavorite(ctx context.Context, id int64) (models.Task, error) {
	r, err := s.pool.Exec(ctx, `UPDATE tasks SET is_favorite = NOT is_favorite, updated_at = NOW()
        WHERE id = $1;`, id)
	if err != nil {
		return models.Task{}, fmt.Errorf("toggle favorite: %w", err)
	}
	if r.RowsAffected() == 0 {
		return models.Task{}, fmt.Errorf("task %d: %w", id, storage.ErrNotFound)
	}
	return s.GetTask(ctx, id)
}

// ---- sprints ----

const sprintColumns = `id, company_id, name, goal, start_date, end_date, status, created_at, updated_at`

func scanSprint(row interface{ Scan(...any) error }) (models.Sprint, error) {
	var (
		sp         models.Sprint
		start, end sql.NullTime
	)
	err := row.Scan(&sp.ID, &sp.CompanyID, &sp.Name, &sp.Goal, &start, &end, &sp.Status,
		&sp.CreatedAt, &sp.UpdatedAt)
	if err != nil {
		return models.Sprint{}, err
	}
	if start.Valid {
		sp.StartDate = start.Time
	}
	if end.Valid {
		sp.EndDate = end.Time
	}
	return sp, nil
}

func (s *Store) ListSprints(ctx context.Context, companyID int64) ([]models.Sprint, error) {
	query := fmt.Sprintf(`SELECT %s FROM sprints WHERE ($1 = 0 OR company_id = $1) ORDER BY id ASC;`, sprintColumns)
	rows, err := s.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list sprints: %w", err)
	}
	defer rows.Close()

	var sprints []models.Sprint
	for rows.Next() {
		sp, err := scanSprint(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sprint: %w", err)
		}
		sprints = append(sprints, sp)
	}
	return sprints, rows.Err()
}

func (s *Store) GetSprint(ctx context.Context, id int64) (models.Sprint, error) {
	row := s.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM sprints WHERE id = $1;`, sprintColumns), id)
	sp, err := scanSprint(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Sprint{}, fmt.Errorf("sprint %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.Sprint{}, fmt.Errorf("get sprint: %w", err)
	}
	return sp, nil
}

func (s *Store) CreateSprint(ctx context.Context, sp models.Sprint) (models.Sprint, error) {
	if strings.TrimSpace(sp.Name) == "" {
		return models.Sprint{}, fmt.Errorf("%w: sprint name must not be empty", storage.ErrInvalid)
	}
	if sp.Status == "" {
		sp.Status = models.SprintPlanning
	}

	var id int64
	err := s.pool.QueryRow(ctx, `INSERT INTO sprints(company_id, name, goal, start_date, end_date, status)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		sp.CompanyID, strings.TrimSpace(sp.Name), sp.Goal, sp.StartDate, sp.EndDate, sp.Status).Scan(&id)
	if err != nil {
		return models.Sprint{}, fmt.Errorf("insert sprint: %w", err)
	}
	return s.GetSprint(ctx, id)
}

func (s *Store) UpdateSprint(ctx context.Context, sp models.Sprint) (models.Sprint, error) {
	r, err := s.pool.Exec(ctx, `UPDATE sprints SET name = $1, goal = $2, start_date = $3,
        end_date = $4, status = $5, updated_at = NOW() WHERE id = $6;`,
		sp.Name, sp.Goal, sp.StartDate, sp.EndDate, sp.Status, sp.ID)
	if err != nil {
		return models.Sprint{}, fmt.Errorf("update sprint: %w", err)
	}
	if r.RowsAffected() == 0 {
		return models.Sprint{}, fmt.Errorf("sprint %d: %w", sp.ID, storage.ErrNotFound)
	}
	return s.GetSprint(ctx, sp.ID)
}

func (s *Store) SetSprintStatus(ctx context.Context, id int64, status string) (models.Sprint, error) {
	r, err := s.pool.Exec(ctx, `UPDATE sprints SET status = $1, updated_at = NOW() WHERE id = $2;`, status, id)
	if err != nil {
		return models.Sprint{}, fmt.Errorf("set sprint status: %w", err)
	}
	if r.RowsAffected() == 0 {
		return models.Sprint{}, fmt.Errorf("sprint %d: %w", id, storage.ErrNotFound)
	}
	return s.GetSprint(ctx, id)
}

// ---- epics ----

const epicColumns = `id, company_id, title, description, color, status, start_date, end_date, created_at, updated_at`

func scanEpic(row interface{ Scan(...any) error }) (models.Epic, error) {
	var (
		e          models.Epic
		start, end sql.NullTime
	)
	err := row.Scan(&e.ID, &e.CompanyID, &e.Title, &e.Description, &e.Color, &e.Status,
		&start, &end, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return models.Epic{}, err
	}
	e.StartDate = timePtr(start)
	e.EndDate = timePtr(end)
	return e, nil
}

func (s *Store) ListEpics(ctx context.Context, companyID int64) ([]models.Epic, error) {
	query := fmt.Sprintf(`SELECT %s FROM epics WHERE ($1 = 0 OR company_id = $1) ORDER BY id ASC;`, epicColumns)
	rows, err := s.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list epics: %w", err)
	}
	defer rows.Close()

	var epics []models.Epic
	for rows.Next() {
		e, err := scanEpic(rows)
		if err != nil {
			return nil, fmt.Errorf("scan epic: %w", err)
		}
		epics = append(epics, e)
	}
	return epics, rows.Err()
}

func (s *Store) getEpic(ctx context.Context, id int64) (models.Epic, error) {
	row := s.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM epics WHERE id = $1;`, epicColumns), id)
	e, err := scanEpic(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Epic{}, fmt.Errorf("epic %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.Epic{}, fmt.Errorf("get epic: %w", err)
	}
	return e, nil
}

func (s *Store) CreateEpic(ctx context.Context, e models.Epic) (models.Epic, error) {
	if strings.TrimSpace(e.Title) == "" {
		return models.Epic{}, fmt.Errorf("%w: epic title must not be empty", storage.ErrInvalid)
	}
	if e.Status == "" {
		e.Status = "active"
	}

	var id int64
	err := s.pool.QueryRow(ctx, `INSERT INTO epics(company_id, title, description, color, status, start_date, end_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		e.CompanyID, strings.TrimSpace(e.Title), e.Description, e.Color, e.Status,
		nullTime(e.StartDate), nullTime(e.EndDate)).Scan(&id)
	if err != nil {
		return models.Epic{}, fmt.Errorf("insert epic: %w", err)
	}
	return s.getEpic(ctx, id)
}

func (s *Store) UpdateEpic(ctx context.Context, e models.Epic) (models.Epic, error) {
	r, err := s.pool.Exec(ctx, `UPDATE epics SET title = $1, description = $2, color = $3,
        status = $4, start_date = $5, end_date = $6, updated_at = NOW() WHERE id = $7;`,
		e.Title, e.Description, e.Color, e.Status, nullTime(e.StartDate), nullTime(e.EndDate), e.ID)
	if err != nil {
		return models.Epic{}, fmt.Errorf("update epic: %w", err)
	}
	if r.RowsAffected() == 0 {
		return models.Epic{}, fmt.Errorf("epic %d: %w", e.ID, storage.ErrNotFound)
	}
	return s.getEpic(ctx, e.ID)
}
