package memstore

import (
	"context"
	"errors"
	"testing"

	"bizdesk/internal/models"
	"bizdesk/internal/storage"
)

func TestTaskListScopedByCompany(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.CreateTask(ctx, models.Task{CompanyID: 1, Title: "one"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateTask(ctx, models.Task{CompanyID: 2, Title: "two"}); err != nil {
		t.Fatal(err)
	}

	got, err := s.ListTasks(ctx, storage.TaskQuery{CompanyID: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Title != "two" {
		t.Errorf("company 2 listing leaked: %+v", got)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.CreateTask(ctx, models.Task{CompanyID: 1}); !errors.Is(err, storage.ErrInvalid) {
		t.Errorf("empty title error = %v, want ErrInvalid", err)
	}
	if _, err := s.CreateTask(ctx, models.Task{Title: "orphan"}); !errors.Is(err, storage.ErrInvalid) {
		t.Errorf("missing company error = %v, want ErrInvalid", err)
	}
	if _, err := s.CreateTask(ctx, models.Task{CompanyID: 1, Title: "bad", Status: "nonsense"}); !errors.Is(err, storage.ErrInvalid) {
		t.Errorf("bad status error = %v, want ErrInvalid", err)
	}
}

func TestCreateTaskDefaults(t *testing.T) {
	ctx := context.Background()
	s := New()

	task, err := s.CreateTask(ctx, models.Task{CompanyID: 1, Title: "  padded  "})
	if err != nil {
		t.Fatal(err)
	}
	if task.Title != "padded" {
		t.Errorf("title = %q, want trimmed", task.Title)
	}
	if task.Status != models.StatusNew || task.Priority != models.PriorityMedium {
		t.Errorf("defaults = %s/%d, want new/2", task.Status, task.Priority)
	}
	if task.ID == 0 || task.CreatedAt.IsZero() {
		t.Error("id or createdAt not assigned")
	}
}

func TestToggleTaskFavorite(t *testing.T) {
	ctx := context.Background()
	s := New()
	task, _ := s.CreateTask(ctx, models.Task{CompanyID: 1, Title: "fav"})

	on, err := s.ToggleTaskFavorite(ctx, task.ID)
	if err != nil || !on.IsFavorite {
		t.Fatalf("first toggle: fav=%v err=%v", on.IsFavorite, err)
	}
	off, err := s.ToggleTaskFavorite(ctx, task.ID)
	if err != nil || off.IsFavorite {
		t.Fatalf("second toggle: fav=%v err=%v", off.IsFavorite, err)
	}
	if _, err := s.ToggleTaskFavorite(ctx, 999); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("unknown id error = %v, want ErrNotFound", err)
	}
}

func TestDepartmentCycleRejected(t *testing.T) {
	ctx := context.Background()
	s := New()

	root, err := s.CreateDepartment(ctx, models.Department{CompanyID: 1, Name: "Root"})
	if err != nil {
		t.Fatal(err)
	}
	child, err := s.CreateDepartment(ctx, models.Department{CompanyID: 1, Name: "Child", ParentID: root.ID})
	if err != nil {
		t.Fatal(err)
	}

	// Re-pointing the root under its own child closes a cycle.
	root.ParentID = child.ID
	if _, err := s.UpdateDepartment(ctx, root); !errors.Is(err, storage.ErrInvalid) {
		t.Errorf("cycle update error = %v, want ErrInvalid", err)
	}

	// Self-parenting is the degenerate cycle.
	child.ParentID = child.ID
	if _, err := s.UpdateDepartment(ctx, child); !errors.Is(err, storage.ErrInvalid) {
		t.Errorf("self-parent error = %v, want ErrInvalid", err)
	}
}

func TestDepartmentParentMustShareCompany(t *testing.T) {
	ctx := context.Background()
	s := New()

	parent, _ := s.CreateDepartment(ctx, models.Department{CompanyID: 1, Name: "Ops"})
	_, err := s.CreateDepartment(ctx, models.Department{CompanyID: 2, Name: "Foreign", ParentID: parent.ID})
	if !errors.Is(err, storage.ErrInvalid) {
		t.Errorf("cross-company parent error = %v, want ErrInvalid", err)
	}
}

func TestDeleteEmployeeKeepsTasks(t *testing.T) {
	ctx := context.Background()
	s := New()

	emp, _ := s.CreateEmployee(ctx, models.Employee{CompanyID: 1, Name: "Short Timer"})
	task, _ := s.CreateTask(ctx, models.Task{CompanyID: 1, Title: "survives", AssigneeID: emp.ID})

	if err := s.DeleteEmployee(ctx, emp.ID); err != nil {
		t.Fatal(err)
	}
	got, err := s.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("task vanished with its assignee: %v", err)
	}
	if got.AssigneeID != emp.ID {
		t.Errorf("assignee reference rewritten to %d", got.AssigneeID)
	}
}

func TestSeededStoreHasTenantData(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	companies, _ := s.ListCompanies(ctx)
	if len(companies) != 2 {
		t.Fatalf("seeded companies = %d, want 2", len(companies))
	}
	tasks, _ := s.ListTasks(ctx, storage.TaskQuery{CompanyID: companies[0].ID})
	if len(tasks) == 0 {
		t.Error("seeded store has no tasks for the primary company")
	}
	other, _ := s.ListTasks(ctx, storage.TaskQuery{CompanyID: companies[1].ID})
	if len(other) != 0 {
		t.Errorf("secondary company unexpectedly has %d tasks", len(other))
	}
}
