package store

import (
	"testing"

	"bizdesk/internal/models"
)

type bogusAction struct{}

func (bogusAction) isAction() {}

func taskIDs(tasks []models.Task) []int64 {
	out := make([]int64, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestSetReplacesCollection(t *testing.T) {
	s := New(nil)
	s.Dispatch(SetTasks{Tasks: []models.Task{{ID: 1}, {ID: 2}}})
	s.Dispatch(SetTasks{Tasks: []models.Task{{ID: 3}}})

	got := s.Snapshot().Tasks
	if len(got) != 1 || got[0].ID != 3 {
		t.Errorf("SET did not replace collection: %v", taskIDs(got))
	}
}

func TestAddUpsertsOnDuplicateID(t *testing.T) {
	s := New(nil)
	s.Dispatch(AddTask{Task: models.Task{ID: 1, Title: "first"}})
	s.Dispatch(AddTask{Task: models.Task{ID: 1, Title: "second"}})

	got := s.Snapshot().Tasks
	if len(got) != 1 {
		t.Fatalf("duplicate id grew collection to %d entries", len(got))
	}
	if got[0].Title != "second" {
		t.Errorf("upsert kept old entity %q", got[0].Title)
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	s := New(nil)
	s.Dispatch(SetTasks{Tasks: []models.Task{{ID: 1, Title: "keep"}}})
	before := s.Snapshot()

	s.Dispatch(UpdateTask{Task: models.Task{ID: 9999, Title: "ghost"}})

	after := s.Snapshot()
	if len(after.Tasks) != len(before.Tasks) || after.Tasks[0] != before.Tasks[0] {
		t.Errorf("update of unknown id changed state: %+v", after.Tasks)
	}
}

func TestDeleteAbsentIDIsNoOp(t *testing.T) {
	s := New(nil)
	s.Dispatch(SetTasks{Tasks: []models.Task{{ID: 1}}})
	s.Dispatch(DeleteTask{ID: 42})

	if got := s.Snapshot().Tasks; len(got) != 1 {
		t.Errorf("delete of absent id changed collection: %v", taskIDs(got))
	}
}

func TestDeleteRemovesEntity(t *testing.T) {
	s := New(nil)
	s.Dispatch(SetTasks{Tasks: []models.Task{{ID: 1}, {ID: 2}, {ID: 3}}})
	s.Dispatch(DeleteTask{ID: 2})

	got := s.Snapshot().Tasks
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("delete left %v, want [1 3]", taskIDs(got))
	}
}

func TestUnknownActionIsNoOp(t *testing.T) {
	s := New(nil)
	s.Dispatch(SetTasks{Tasks: []models.Task{{ID: 1}}})
	s.Dispatch(SetEmployees{Employees: []models.Employee{{ID: 7, Name: "Dana"}}})
	before := s.Snapshot()

	s.Dispatch(bogusAction{})

	after := s.Snapshot()
	if len(after.Tasks) != 1 || after.Tasks[0].ID != 1 {
		t.Errorf("unknown action touched tasks: %v", taskIDs(after.Tasks))
	}
	if len(after.Employees) != 1 || after.Employees[0] != before.Employees[0] {
		t.Errorf("unknown action touched employees: %+v", after.Employees)
	}
	if after.CurrentCompanyID != before.CurrentCompanyID || after.CurrentTab != before.CurrentTab {
		t.Error("unknown action touched navigation state")
	}
}

func TestSetCurrentCompany(t *testing.T) {
	s := New(nil)
	if got := s.Snapshot().CurrentCompanyID; got != 1 {
		t.Fatalf("default company = %d, want 1", got)
	}
	s.Dispatch(SetCurrentCompany{CompanyID: 2})
	if got := s.Snapshot().CurrentCompanyID; got != 2 {
		t.Errorf("company after switch = %d, want 2", got)
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := New(nil)
	s.Dispatch(SetTasks{Tasks: []models.Task{{ID: 1, Title: "original"}}})

	snap := s.Snapshot()
	snap.Tasks[0].Title = "mutated"

	if got := s.Snapshot().Tasks[0].Title; got != "original" {
		t.Errorf("snapshot aliased store internals; title = %q", got)
	}
}

func TestUpdatePasswordAndAccountCollections(t *testing.T) {
	s := New(nil)
	s.Dispatch(AddPassword{Password: models.Password{ID: 1, Name: "wiki"}})
	s.Dispatch(UpdatePassword{Password: models.Password{ID: 1, Name: "wiki-admin"}})
	s.Dispatch(AddAccount{Account: models.Account{ID: 4, Name: "Operating", Currency: models.USD}})
	s.Dispatch(DeleteAccount{ID: 4})

	snap := s.Snapshot()
	if len(snap.Passwords) != 1 || snap.Passwords[0].Name != "wiki-admin" {
		t.Errorf("password update failed: %+v", snap.Passwords)
	}
	if len(snap.Accounts) != 0 {
		t.Errorf("account delete failed: %+v", snap.Accounts)
	}
}
