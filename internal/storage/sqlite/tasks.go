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

const taskColumns = `id, company_id, board_id, sprint_id, epic_id, title, description, status,
    priority, assignee_id, creator_id, due_date, tags, checklist, comments, is_favorite,
    story_points, estimated_hours, actual_hours, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (models.Task, error) {
	var (
		t                         models.Task
		due                       sql.NullTime
		tags, checklist, comments string
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

// ListTasks returns tasks matching the query, oldest first.
func (s *Store) ListTasks(ctx context.Context, q storage.TaskQuery) ([]models.Task, error) {
	where := []string{"1=1"}
	args := []any{}
	if q.CompanyID != 0 {
		where = append(where, "company_id = ?")
		args = append(args, q.CompanyID)
	}
	if q.BoardID != 0 {
		where = append(where, "board_id = ?")
		args = append(args, q.BoardID)
	}
	if q.AssigneeID != 0 {
		where = append(where, "assignee_id = ?")
		args = append(args, q.AssigneeID)
	}

	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY id`, taskColumns, strings.Join(where, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
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

// GetTask retrieves a task by id.
func (s *Store) GetTask(ctx context.Context, id int64) (models.Task, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ?`, taskColumns), id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, fmt.Errorf("task %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// CreateTask inserts a new task.
func (s *Store) CreateTask(ctx context.Context, t models.Task) (models.Task, error) {
	t, err := storage.NormalizeTask(t)
	if err != nil {
		return models.Task{}, err
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO tasks(company_id, board_id, sprint_id, epic_id,
        title, description, status, priority, assignee_id, creator_id, due_date, tags, checklist,
        comments, is_favorite, story_points, estimated_hours, actual_hours)
        VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.CompanyID, t.BoardID, t.SprintID, t.EpicID, t.Title, t.Description, t.Status,
		t.Priority, t.AssigneeID, t.CreatorID, nullTime(t.DueDate), jsonText(t.Tags),
		jsonText(t.Checklist), jsonText(t.Comments), t.IsFavorite, t.StoryPoints,
		t.EstimatedHours, t.ActualHours)
	if err != nil {
		return models.Task{}, fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Task{}, fmt.Errorf("task id: %w", err)
	}
	return s.GetTask(ctx, id)
}

// UpdateTask replaces a task's mutable fields.
func (s *Store) UpdateTask(ctx context.Context, t models.Task) (models.Task, error) {
	t, err := storage.NormalizeTask(t)
	if err != nil {
		return models.Task{}, err
	}

	res, err := s.db.ExecContext(ctx, `UPDATE tasks SET board_id = ?, sprint_id = ?, epic_id = ?,
        title = ?, description = ?, status = ?, priority = ?, assignee_id = ?, due_date = ?,
        tags = ?, checklist = ?, comments = ?, is_favorite = ?, story_points = ?,
        estimated_hours = ?, actual_hours = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		t.BoardID, t.SprintID, t.EpicID, t.Title, t.Description, t.Status, t.Priority,
		t.AssigneeID, nullTime(t.DueDate), jsonText(t.Tags), jsonText(t.Checklist),
		jsonText(t.Comments), t.IsFavorite, t.StoryPoints, t.EstimatedHours, t.ActualHours, t.ID)
	if err != nil {
		return models.Task{}, fmt.Errorf("update task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Task{}, err
	}
	if affected == 0 {
		return models.Task{}, fmt.Errorf("task %d: %w", t.ID, storage.ErrNotFound)
	}
	return s.GetTask(ctx, t.ID)
}

// DeleteTask removes a task by id.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("task %d: %w", id, storage.ErrNotFound)
	}
	return nil
}

// ToggleTaskFavorite flips the favorite flag and returns the new row.
func (s *Store) ToggleTaskFavorite(ctx context.Context, id int64) (models.Task, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE tasks SET is_favorite = NOT is_favorite,
        updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	if err != nil {
		return models.Task{}, fmt.Errorf("toggle favorite: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Task{}, err
	}
	if affected == 0 {
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
	query := fmt.Sprintf(`SELECT %s FROM sprints WHERE (? = 0 OR company_id = ?) ORDER BY id`, sprintColumns)
	rows, err := s.db.QueryContext(ctx, query, companyID, companyID)
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
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT %s FROM sprints WHERE id = ?`, sprintColumns), id)
	sp, err := scanSprint(row)
	if errors.Is(err, sql.ErrNoRows) {
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

	res, err := s.db.ExecContext(ctx, `INSERT INTO sprints(company_id, name, goal, start_date, end_date, status)
        VALUES(?, ?, ?, ?, ?, ?)`,
		sp.CompanyID, strings.TrimSpace(sp.Name), sp.Goal, sp.StartDate, sp.EndDate, sp.Status)
	if err != nil {
		return models.Sprint{}, fmt.Errorf("insert sprint: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Sprint{}, fmt.Errorf("sprint id: %w", err)
	}
	return s.GetSprint(ctx, id)
}

func (s *Store) UpdateSprint(ctx context.Context, sp models.Sprint) (models.Sprint, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE sprints SET name = ?, goal = ?, start_date = ?,
        end_date = ?, status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		sp.Name, sp.Goal, sp.StartDate, sp.EndDate, sp.Status, sp.ID)
	if err != nil {
		return models.Sprint{}, fmt.Errorf("update sprint: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Sprint{}, err
	}
	if affected == 0 {
		return models.Sprint{}, fmt.Errorf("sprint %d: %w", sp.ID, storage.ErrNotFound)
	}
	return s.GetSprint(ctx, sp.ID)
}

func (s *Store) SetSprintStatus(ctx context.Context, id int64, status string) (models.Sprint, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE sprints SET status = ?, updated_at = CURRENT_TIMESTAMP
        WHERE id = ?`, status, id)
	if err != nil {
		return models.Sprint{}, fmt.Errorf("set sprint status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Sprint{}, err
	}
	if affected == 0 {
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
	query := fmt.Sprintf(`SELECT %s FROM epics WHERE (? = 0 OR company_id = ?) ORDER BY id`, epicColumns)
	rows, err := s.db.QueryContext(ctx, query, companyID, companyID)
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
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT %s FROM epics WHERE id = ?`, epicColumns), id)
	e, err := scanEpic(row)
	if errors.Is(err, sql.ErrNoRows) {
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

	res, err := s.db.ExecContext(ctx, `INSERT INTO epics(company_id, title, description, color, status, start_date, end_date)
        VALUES(?, ?, ?, ?, ?, ?, ?)`,
		e.CompanyID, strings.TrimSpace(e.Title), e.Description, e.Color, e.Status,
		nullTime(e.StartDate), nullTime(e.EndDate))
	if err != nil {
		return models.Epic{}, fmt.Errorf("insert epic: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Epic{}, fmt.Errorf("epic id: %w", err)
	}
	return s.getEpic(ctx, id)
}

func (s *Store) UpdateEpic(ctx context.Context, e models.Epic) (models.Epic, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE epics SET title = ?, description = ?, color = ?,
        status = ?, start_date = ?, end_date = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		e.Title, e.Description, e.Color, e.Status, nullTime(e.StartDate), nullTime(e.EndDate), e.ID)
	if err != nil {
		return models.Epic{}, fmt.Errorf("update epic: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Epic{}, err
	}
	if affected == 0 {
		return models.Epic{}, fmt.Errorf("epic %d: %w", e.ID, storage.ErrNotFound)
	}
	return s.getEpic(ctx, e.ID)
}
