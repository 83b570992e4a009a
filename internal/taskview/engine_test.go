package taskview

import (
	"testing"
	"time"

	"bizdesk/internal/models"
)

func datePtr(t time.Time) *time.Time { return &t }

func sampleTasks() []models.Task {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return []models.Task{
		{ID: 1, CompanyID: 1, Title: "Ship billing export", Description: "CSV export for accounting", Status: models.StatusNew, Priority: 3, AssigneeID: 10, Tags: []string{"finance", "export"}, CreatedAt: base},
		{ID: 2, CompanyID: 1, Title: "Audit vault access", Status: models.StatusInProgress, Priority: 1, AssigneeID: 11, Tags: []string{"security"}, DueDate: datePtr(base.AddDate(0, 0, -1)), CreatedAt: base.Add(time.Hour)},
		{ID: 3, CompanyID: 1, Title: "Backfill org chart", Status: models.StatusCompleted, Priority: 2, AssigneeID: 10, IsFavorite: true, DueDate: datePtr(base.AddDate(0, 0, -2)), CreatedAt: base.Add(2 * time.Hour)},
		{ID: 4, CompanyID: 1, Title: "Draft onboarding doc", Status: models.StatusBacklog, Priority: 2, Tags: []string{"hr", "docs"}, CreatedAt: base.Add(3 * time.Hour)},
	}
}

func ids(tasks []models.Task) []int64 {
	out := make([]int64, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func equalIDs(a []int64, b ...int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterIdempotence(t *testing.T) {
	tasks := sampleTasks()
	f := Filter{Search: "o", Priority: 2}
	once := Apply(tasks, f, Sort{})
	twice := Apply(once, f, Sort{})
	if !equalIDs(ids(once), ids(twice)...) {
		t.Errorf("filter not idempotent: %v then %v", ids(once), ids(twice))
	}
}

func TestSearchMatchesTitleDescriptionAndTags(t *testing.T) {
	tasks := sampleTasks()

	cases := []struct {
		query string
		want  []int64
	}{
		{"BILLING", []int64{1}},   // title, case-insensitive
		{"accounting", []int64{1}}, // description
		{"security", []int64{2}},  // tag
		{"zzz", nil},
	}
	for _, c := range cases {
		got := Apply(tasks, Filter{Search: c.query}, Sort{})
		if !equalIDs(ids(got), c.want...) {
			t.Errorf("search %q = %v, want %v", c.query, ids(got), c.want)
		}
	}
}

func TestTagFilterrequiresEveryTag(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Status: models.StatusNew, Tags: []string{"a"}},
		{ID: 2, Status: models.StatusNew, Tags: []string{"a", "b"}},
		{ID: 3, Status: models.StatusNew, Tags: []string{"b"}},
		{ID: 4, Status: models.StatusNew},
	}
	got := Apply(tasks, Filter{Tags: []string{"a", "b"}}, Sort{})
	if !equalIDs(ids(got), 2) {
		t.Errorf("tag AND filter = %v, want [2]", ids(got))
	}
}

func TestStatusAllMatchesEverything(t *testing.T) {
	tasks := sampleTasks()
	got := Apply(tasks, Filter{Status: StatusAll}, Sort{})
	if len(got) != len(tasks) {
		t.Errorf("status 'all' matched %d of %d tasks", len(got), len(tasks))
	}
}

func TestQuickFilters(t *testing.T) {
	tasks := sampleTasks()
	now := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		f    Filter
		want []int64
	}{
		{"my", Filter{Quick: QuickMy, ViewerID: 10}, []int64{1, 3}},
		{"assigned", Filter{Quick: QuickAssigned, ViewerID: 10}, []int64{2}},
		{"favorites", Filter{Quick: QuickFavorites}, []int64{3}},
		{"overdue", Filter{Quick: QuickOverdue, Now: now}, []int64{2}},
		{"completed", Filter{Quick: QuickCompleted}, []int64{3}},
	}
	for _, c := range cases {
		got := Apply(tasks, c.f, Sort{})
		if !equalIDs(ids(got), c.want...) {
			t.Errorf("%s filter = %v, want %v", c.name, ids(got), c.want)
		}
	}
}

func TestOverdueExcludesCompleted(t *testing.T) {
	now := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	task := models.Task{ID: 1, Status: models.StatusInProgress, DueDate: &yesterday}

	if !Matches(task, Filter{Quick: QuickOverdue, Now: now}) {
		t.Error("in_progress task overdue by a day should match overdue filter")
	}
	task.Status = models.StatusCompleted
	if Matches(task, Filter{Quick: QuickOverdue, Now: now}) {
		t.Error("completed task must never match overdue filter")
	}
}

func TestSortByTitle(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Status: models.StatusNew, Priority: 3, Title: "B"},
		{ID: 2, Status: models.StatusNew, Priority: 1, Title: "A"},
	}
	got := SortTasks(tasks, Sort{Key: SortTitle, Order: Asc})
	if !equalIDs(ids(got), 2, 1) {
		t.Errorf("title asc = %v, want [2 1]", ids(got))
	}
	got = SortTasks(tasks, Sort{Key: SortTitle, Order: Desc})
	if !equalIDs(ids(got), 1, 2) {
		t.Errorf("title desc = %v, want [1 2]", ids(got))
	}
}

func TestSortByTitleCollates(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Status: models.StatusNew, Title: "zebra"},
		{ID: 2, Status: models.StatusNew, Title: "Éclair"},
		{ID: 3, Status: models.StatusNew, Title: "apple"},
		{ID: 4, Status: models.StatusNew, Title: "Apricot"},
	}
	// É must order with the e's and case must not split the alphabet,
	// which a byte comparison of the UTF-8 text gets wrong.
	got := SortTasks(tasks, Sort{Key: SortTitle, Order: Asc})
	if !equalIDs(ids(got), 3, 4, 2, 1) {
		t.Errorf("collated asc = %v, want [3 4 2 1]", ids(got))
	}
}

func TestSortByPriorityRespectsOrder(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Status: models.StatusNew, Priority: 3, Title: "B"},
		{ID: 2, Status: models.StatusNew, Priority: 1, Title: "A"},
	}
	got := SortTasks(tasks, Sort{Key: SortPriority, Order: Desc})
	if !equalIDs(ids(got), 1, 2) {
		t.Errorf("priority desc = %v, want [1 2]", ids(got))
	}
	got = SortTasks(tasks, Sort{Key: SortPriority, Order: Asc})
	if !equalIDs(ids(got), 2, 1) {
		t.Errorf("priority asc = %v, want [2 1]", ids(got))
	}
}

func TestSortByDuePutsUndatedLast(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		{ID: 1, Status: models.StatusNew},
		{ID: 2, Status: models.StatusNew, DueDate: datePtr(base.AddDate(0, 0, 2))},
		{ID: 3, Status: models.StatusNew, DueDate: datePtr(base)},
	}
	got := SortTasks(tasks, Sort{Key: SortDue, Order: Asc})
	if !equalIDs(ids(got), 3, 2, 1) {
		t.Errorf("due asc = %v, want [3 2 1]", ids(got))
	}
}

func TestSortStability(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Status: models.StatusNew, Priority: 2},
		{ID: 2, Status: models.StatusNew, Priority: 2},
		{ID: 3, Status: models.StatusNew, Priority: 2},
	}
	got := SortTasks(tasks, Sort{Key: SortPriority, Order: Desc})
	if !equalIDs(ids(got), 1, 2, 3) {
		t.Errorf("equal keys reordered: %v", ids(got))
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Status: models.StatusNew, Title: "b"},
		{ID: 2, Status: models.StatusNew, Title: "a"},
	}
	_ = SortTasks(tasks, Sort{Key: SortTitle, Order: Asc})
	if !equalIDs(ids(tasks), 1, 2) {
		t.Errorf("input slice mutated: %v", ids(tasks))
	}
}

func TestGroupByStatusCompleteness(t *testing.T) {
	tasks := Apply(sampleTasks(), Filter{}, Sort{Key: SortCreated, Order: Asc})
	groups := GroupByStatus(tasks)

	total := 0
	seen := map[int64]int{}
	for _, bucket := range groups {
		total += len(bucket)
		for _, task := range bucket {
			seen[task.ID]++
		}
	}
	if total != len(tasks) {
		t.Errorf("buckets hold %d tasks, want %d", total, len(tasks))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("task %d appears in %d buckets", id, n)
		}
	}
	for _, status := range models.AllTaskStatuses {
		if _, ok := groups[status]; !ok {
			t.Errorf("missing bucket for status %q", status)
		}
	}
}

func TestGroupByStatusEmptyInput(t *testing.T) {
	groups := GroupByStatus(nil)
	for status, bucket := range groups {
		if len(bucket) != 0 {
			t.Errorf("empty input produced non-empty bucket %q", status)
		}
	}
}

func TestAssigneeNameDanglingReference(t *testing.T) {
	employees := []models.Employee{{ID: 10, Name: "Dana"}}

	if got := AssigneeName(models.Task{AssigneeID: 10}, employees); got != "Dana" {
		t.Errorf("assignee = %q, want Dana", got)
	}
	if got := AssigneeName(models.Task{AssigneeID: 99}, employees); got != "unassigned" {
		t.Errorf("dangling assignee = %q, want unassigned", got)
	}
	if got := AssigneeName(models.Task{}, employees); got != "unassigned" {
		t.Errorf("no assignee = %q, want unassigned", got)
	}
}
