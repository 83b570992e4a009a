package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"bizdesk/internal/models"
)

// Tasks wraps the /api/v1/tasks resource.
type Tasks struct {
	c *Client
}

// Tasks returns the task resource wrapper.
func (c *Client) Tasks() *Tasks {
	return &Tasks{c: c}
}

// TaskFilter narrows a listing; zero fields mean no constraint.
type TaskFilter struct {
	CompanyID  int64
	BoardID    int64
	AssigneeID int64
}

func (f TaskFilter) query() string {
	q := url.Values{}
	if f.CompanyID != 0 {
		q.Set("companyId", strconv.FormatInt(f.CompanyID, 10))
	}
	if f.BoardID != 0 {
		q.Set("boardId", strconv.FormatInt(f.BoardID, 10))
	}
	if f.AssigneeID != 0 {
		q.Set("assigneeId", strconv.FormatInt(f.AssigneeID, 10))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (t *Tasks) List(ctx context.Context, f TaskFilter) ([]models.Task, error) {
	var resp struct {
		Tasks []models.Task `json:"tasks"`
	}
	if err := t.c.get(ctx, "/api/v1/tasks"+f.query(), &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

func (t *Tasks) Get(ctx context.Context, id int64) (models.Task, error) {
	var resp struct {
		Task models.Task `json:"task"`
	}
	if err := t.c.get(ctx, fmt.Sprintf("/api/v1/tasks/%d", id), &resp); err != nil {
		return models.Task{}, err
	}
	return resp.Task, nil
}

func (t *Tasks) Create(ctx context.Context, task models.Task) (models.Task, error) {
	var resp struct {
		Task models.Task `json:"task"`
	}
	if err := t.c.do(ctx, http.MethodPost, "/api/v1/tasks", task, &resp); err != nil {
		return models.Task{}, err
	}
	return resp.Task, nil
}

// Update writes the task and guards against out-of-order responses:
// when a newer update to the same task has already applied, the result
// is dropped and ErrStale returned.
func (t *Tasks) Update(ctx context.Context, task models.Task) (models.Task, error) {
	ticket := t.c.seq.begin("task", task.ID)

	var resp struct {
		Task models.Task `json:"task"`
	}
	if err := t.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/tasks/%d", task.ID), task, &resp); err != nil {
		return models.Task{}, err
	}
	if !t.c.seq.commit("task", task.ID, ticket) {
		return models.Task{}, ErrStale
	}
	return resp.Task, nil
}

func (t *Tasks) Delete(ctx context.Context, id int64) error {
	return t.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/tasks/%d", id), nil, nil)
}

func (t *Tasks) ToggleFavorite(ctx context.Context, id int64) (models.Task, error) {
	var resp struct {
		Task models.Task `json:"task"`
	}
	if err := t.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/tasks/%d/favorite", id), nil, &resp); err != nil {
		return models.Task{}, err
	}
	return resp.Task, nil
}

// ---- sprints ----

func (t *Tasks) ListSprints(ctx context.Context, companyID int64) ([]models.Sprint, error) {
	path := "/api/v1/sprints"
	if companyID != 0 {
		path += "?companyId=" + strconv.FormatInt(companyID, 10)
	}
	var resp struct {
		Sprints []models.Sprint `json:"sprints"`
	}
	if err := t.c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Sprints, nil
}

func (t *Tasks) CreateSprint(ctx context.Context, sprint models.Sprint) (models.Sprint, error) {
	var resp struct {
		Sprint models.Sprint `json:"sprint"`
	}
	if err := t.c.do(ctx, http.MethodPost, "/api/v1/sprints", sprint, &resp); err != nil {
		return models.Sprint{}, err
	}
	return resp.Sprint, nil
}

func (t *Tasks) UpdateSprint(ctx context.Context, sprint models.Sprint) (models.Sprint, error) {
	var resp struct {
		Sprint models.Sprint `json:"sprint"`
	}
	if err := t.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/sprints/%d", sprint.ID), sprint, &resp); err != nil {
		return models.Sprint{}, err
	}
	return resp.Sprint, nil
}

func (t *Tasks) StartSprint(ctx context.Context, id int64) (models.Sprint, error) {
	return t.sprintAction(ctx, id, "start")
}

func (t *Tasks) CompleteSprint(ctx context.Context, id int64) (models.Sprint, error) {
	return t.sprintAction(ctx, id, "complete")
}

func (t *Tasks) sprintAction(ctx context.Context, id int64, action string) (models.Sprint, error) {
	var resp struct {
		Sprint models.Sprint `json:"sprint"`
	}
	path := fmt.Sprintf("/api/v1/sprints/%d/%s", id, action)
	if err := t.c.do(ctx, http.MethodPut, path, nil, &resp); err != nil {
		return models.Sprint{}, err
	}
	return resp.Sprint, nil
}

// ---- epics ----

func (t *Tasks) ListEpics(ctx context.Context, companyID int64) ([]models.Epic, error) {
	path := "/api/v1/epics"
	if companyID != 0 {
		path += "?companyId=" + strconv.FormatInt(companyID, 10)
	}
	var resp struct {
		Epics []models.Epic `json:"epics"`
	}
	if err := t.c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Epics, nil
}

func (t *Tasks) CreateEpic(ctx context.Context, epic models.Epic) (models.Epic, error) {
	var resp struct {
		Epic models.Epic `json:"epic"`
	}
	if err := t.c.do(ctx, http.MethodPost, "/api/v1/epics", epic, &resp); err != nil {
		return models.Epic{}, err
	}
	return resp.Epic, nil
}

func (t *Tasks) UpdateEpic(ctx context.Context, epic models.Epic) (models.Epic, error) {
	var resp struct {
		Epic models.Epic `json:"epic"`
	}
	if err := t.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/epics/%d", epic.ID), epic, &resp); err != nil {
		return models.Epic{}, err
	}
	return resp.Epic, nil
}
