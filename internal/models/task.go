package models

import "time"

// TaskStatus is the closed set of board columns a task can occupy.
// Transitions are unconstrained: any status may move to any other.
type TaskStatus string

const (
	StatusBacklog    TaskStatus = "backlog"
	StatusNew        TaskStatus = "new"
	StatusInProgress TaskStatus = "in_progress"
	StatusReview     TaskStatus = "review"
	StatusCompleted  TaskStatus = "completed"
	StatusCancelled  TaskStatus = "cancelled"
	StatusArchive    TaskStatus = "archive"
)

// AllTaskStatuses lists every status in board column order.
var AllTaskStatuses = []TaskStatus{
	StatusBacklog,
	StatusNew,
	StatusInProgress,
	StatusReview,
	StatusCompleted,
	StatusCancelled,
	StatusArchive,
}

// ValidTaskStatuses enumerates the statuses accepted on write.
var ValidTaskStatuses = map[TaskStatus]struct{}{
	StatusBacklog:    {},
	StatusNew:        {},
	StatusInProgress: {},
	StatusReview:     {},
	StatusCompleted:  {},
	StatusCancelled:  {},
	StatusArchive:    {},
}

// Task priorities. Zero means unset.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

// ChecklistItem is a single row of a task checklist.
type ChecklistItem struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// TaskComment is append-only from the client's point of view.
type TaskComment struct {
	ID         int64     `json:"id"`
	TaskID     int64     `json:"taskId"`
	EmployeeID int64     `json:"employeeId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Task is the central entity of the board. Every task belongs to exactly
// one company; AssigneeID zero means unassigned.
type Task struct {
	ID             int64           `json:"id"`
	CompanyID      int64           `json:"companyId"`
	BoardID        int64           `json:"boardId,omitempty"`
	SprintID       int64           `json:"sprintId,omitempty"`
	EpicID         int64           `json:"epicId,omitempty"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Status         TaskStatus      `json:"status"`
	Priority       int             `json:"priority"`
	AssigneeID     int64           `json:"assigneeId,omitempty"`
	CreatorID      int64           `json:"creatorId"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	Tags           []string        `json:"tags,omitempty"`
	Checklist      []ChecklistItem `json:"checklist,omitempty"`
	Comments       []TaskComment   `json:"comments,omitempty"`
	IsFavorite     bool            `json:"isFavorite"`
	StoryPoints    float64         `json:"storyPoints,omitempty"`
	EstimatedHours float64         `json:"estimatedHours,omitempty"`
	ActualHours    float64         `json:"actualHours,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// HasTag reports whether the task carries the given tag.
func (t Task) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// Overdue reports whether the task's due date has passed relative to now.
// Completed tasks are never overdue; tasks without a due date are not either.
func (t Task) Overdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusCompleted {
		return false
	}
	return t.DueDate.Before(now)
}

// SprintStatus values.
const (
	SprintPlanning  = "planning"
	SprintActive    = "active"
	SprintCompleted = "completed"
	SprintCancelled = "cancelled"
)

// Sprint is a time-boxed iteration owned by a company.
type Sprint struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"companyId"`
	Name      string    `json:"name"`
	Goal      string    `json:"goal,omitempty"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Epic groups tasks under a long-running theme.
type Epic struct {
	ID          int64     `json:"id"`
	CompanyID   int64     `json:"companyId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	Status      string    `json:"status"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
