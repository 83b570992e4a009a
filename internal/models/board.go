package models

import "time"

// Board is a named view over a company's tasks. It groups tasks by
// status column and never stores tasks of its own.
type Board struct {
	ID          int64         `json:"id"`
	CompanyID   int64         `json:"companyId"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Color       string        `json:"color,omitempty"`
	IsDefault   bool          `json:"isDefault"`
	IsArchived  bool          `json:"isArchived"`
	Columns     []BoardColumn `json:"columns,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// BoardColumn maps one kanban column to a task status. Several columns
// may point at the same status; that duplication is presentation only.
type BoardColumn struct {
	ID      int64      `json:"id"`
	BoardID int64      `json:"boardId"`
	Name    string     `json:"name"`
	Status  TaskStatus `json:"status"`
	Color   string     `json:"color,omitempty"`
	Order   int        `json:"order"`
}

// DefaultColumns returns the standard column layout for a new board.
func DefaultColumns(boardID int64) []BoardColumn {
	names := []struct {
		name   string
		status TaskStatus
		color  string
	}{
		{"Backlog", StatusBacklog, "#9ca3af"},
		{"New", StatusNew, "#22c55e"},
		{"In Progress", StatusInProgress, "#3b82f6"},
		{"Review", StatusReview, "#eab308"},
		{"Done", StatusCompleted, "#16a34a"},
		{"Cancelled", StatusCancelled, "#9ca3af"},
		{"Archive", StatusArchive, "#6b7280"},
	}
	cols := make([]BoardColumn, 0, len(names))
	for i, n := range names {
		cols = append(cols, BoardColumn{
			ID:      int64(i + 1),
			BoardID: boardID,
			Name:    n.name,
			Status:  n.status,
			Color:   n.color,
			Order:   i,
		})
	}
	return cols
}
