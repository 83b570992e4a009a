// Package taskview implements the pure filtering, sorting and grouping
// pipeline behind the board and list views. Every function treats its
// input slice as read-only and returns fresh slices.
package taskview

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"bizdesk/internal/models"
)

// StatusAll matches every task status in a Filter.
const StatusAll models.TaskStatus = "all"

// QuickFilter is one of the named one-click filters. They are mutually
// exclusive with each other but combine with the rest of the Filter.
type QuickFilter string

const (
	QuickNone      QuickFilter = ""
	QuickMy        QuickFilter = "my"
	QuickAssigned  QuickFilter = "assigned"
	QuickFavorites QuickFilter = "favorites"
	QuickOverdue   QuickFilter = "overdue"
	QuickCompleted QuickFilter = "completed"
)

// Filter describes which tasks survive the pipeline. Zero values mean
// "no constraint": empty search, empty or "all" status, zero priority,
// zero assignee, no tags, no quick filter. All predicates are
// AND-combined.
type Filter struct {
	Search     string
	Status     models.TaskStatus
	Priority   int
	AssigneeID int64
	// Tags uses AND semantics: a task must carry every listed tag.
	Tags  []string
	Quick QuickFilter
	// ViewerID is the employee the "my" and "assigned" quick filters
	// are evaluated against.
	ViewerID int64
	// Now anchors the overdue check; the zero value means time.Now().
	Now time.Time
}

// SortKey selects the comparison attribute.
type SortKey string

const (
	SortCreated  SortKey = "created"
	SortDue      SortKey = "due"
	SortPriority SortKey = "priority"
	SortTitle    SortKey = "title"
)

// Order is the sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Sort describes the requested ordering.
type Sort struct {
	Key   SortKey
	Order Order
}

// Apply filters and sorts tasks in one pass. The input slice is left
// untouched.
func Apply(tasks []models.Task, f Filter, s Sort) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if Matches(t, f) {
			out = append(out, t)
		}
	}
	sortInPlace(out, s)
	return out
}

// Matches reports whether a single task passes the filter.
func Matches(t models.Task, f Filter) bool {
	if f.Search != "" && !matchesSearch(t, f.Search) {
		return false
	}
	if f.Status != "" && f.Status != StatusAll && t.Status != f.Status {
		return false
	}
	if f.Priority != 0 && t.Priority != f.Priority {
		return false
	}
	if f.AssigneeID != 0 && t.AssigneeID != f.AssigneeID {
		return false
	}
	for _, tag := range f.Tags {
		if !t.HasTag(tag) {
			return false
		}
	}
	return matchesQuick(t, f)
}

func matchesSearch(t models.Task, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func matchesQuick(t models.Task, f Filter) bool {
	switch f.Quick {
	case QuickNone:
		return true
	case QuickMy:
		return t.AssigneeID != 0 && t.AssigneeID == f.ViewerID
	case QuickAssigned:
		return t.AssigneeID != 0 && t.AssigneeID != f.ViewerID
	case QuickFavorites:
		return t.IsFavorite
	case QuickOverdue:
		now := f.Now
		if now.IsZero() {
			now = time.Now()
		}
		return t.Overdue(now)
	case QuickCompleted:
		return t.Status == models.StatusCompleted
	default:
		// Unrecognized quick filters constrain nothing.
		return true
	}
}

// SortTasks returns a sorted copy of tasks. Ties keep their incoming
// relative order, so repeated sorts are predictable.
func SortTasks(tasks []models.Task, s Sort) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	sortInPlace(out, s)
	return out
}

func sortInPlace(tasks []models.Task, s Sort) {
	if s.Key == "" {
		return
	}
	less := lessFunc(s.Key)
	if less == nil {
		return
	}
	desc := s.Order == Desc
	sort.SliceStable(tasks, func(i, j int) bool {
		if desc {
			return less(tasks[j], tasks[i])
		}
		return less(tasks[i], tasks[j])
	})
}

func lessFunc(key SortKey) func(a, b models.Task) bool {
	switch key {
	case SortCreated:
		return func(a, b models.Task) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortDue:
		// Tasks without a due date sort as infinitely far away, so they
		// land last in ascending order.
		return func(a, b models.Task) bool {
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return false
			case a.DueDate == nil:
				return false
			case b.DueDate == nil:
				return true
			default:
				return a.DueDate.Before(*b.DueDate)
			}
		}
	case SortPriority:
		return func(a, b models.Task) bool { return a.Priority < b.Priority }
	case SortTitle:
		// Titles collate case-insensitively, not byte-wise, so "apple"
		// sorts next to "Apple" and non-ASCII titles order sensibly.
		coll := collate.New(language.Und, collate.IgnoreCase)
		return func(a, b models.Task) bool {
			return coll.CompareString(a.Title, b.Title) < 0
		}
	default:
		return nil
	}
}

// GroupByStatus partitions tasks into per-status buckets, preserving the
// relative order of the input within each bucket. Every status gets an
// entry even when its bucket is empty, so board columns always render.
func GroupByStatus(tasks []models.Task) map[models.TaskStatus][]models.Task {
	groups := make(map[models.TaskStatus][]models.Task, len(models.AllTaskStatuses))
	for _, status := range models.AllTaskStatuses {
		groups[status] = []models.Task{}
	}
	for _, t := range tasks {
		groups[t.Status] = append(groups[t.Status], t)
	}
	return groups
}

// AssigneeName resolves a task's assignee display name against the
// employee collection. Unassigned tasks and dangling references both
// resolve to "unassigned".
func AssigneeName(t models.Task, employees []models.Employee) string {
	if t.AssigneeID == 0 {
		return "unassigned"
	}
	for _, e := range employees {
		if e.ID == t.AssigneeID {
			return e.Name
		}
	}
	return "unassigned"
}
