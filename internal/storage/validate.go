package storage

import (
	"context"
	"fmt"
	"strings"

	"bizdesk/internal/models"
)

// NormalizeTask trims text fields and fills defaulted ones. Returns
// ErrInvalid when a required field is missing or an enum is out of range.
func NormalizeTask(t models.Task) (models.Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	t.Description = strings.TrimSpace(t.Description)
	if t.Title == "" {
		return t, fmt.Errorf("%w: task title must not be empty", ErrInvalid)
	}
	if t.CompanyID == 0 {
		return t, fmt.Errorf("%w: task requires a company", ErrInvalid)
	}
	if t.Status == "" {
		t.Status = models.StatusNew
	}
	if _, ok := models.ValidTaskStatuses[t.Status]; !ok {
		return t, fmt.Errorf("%w: unknown task status %q", ErrInvalid, t.Status)
	}
	if t.Priority == 0 {
		t.Priority = models.PriorityMedium
	}
	if t.Priority < models.PriorityLow || t.Priority > models.PriorityHigh {
		return t, fmt.Errorf("%w: priority must be 1..3, got %d", ErrInvalid, t.Priority)
	}
	return t, nil
}

// NormalizeTransaction validates a ledger entry.
func NormalizeTransaction(t models.Transaction) (models.Transaction, error) {
	if t.CompanyID == 0 {
		return t, fmt.Errorf("%w: transaction requires a company", ErrInvalid)
	}
	if t.Type != models.TransactionIncome && t.Type != models.TransactionExpense {
		return t, fmt.Errorf("%w: transaction type must be income or expense", ErrInvalid)
	}
	if t.Amount <= 0 {
		return t, fmt.Errorf("%w: amount must be positive", ErrInvalid)
	}
	if _, ok := models.ValidCurrencies[t.Currency]; !ok {
		return t, fmt.Errorf("%w: unknown currency %q", ErrInvalid, t.Currency)
	}
	return t, nil
}

// CheckDepartmentParent walks the parent chain of the proposed parent
// and rejects assignments that would form a cycle. lookup resolves a
// department by id and must return ErrNotFound for unknown ids.
func CheckDepartmentParent(ctx context.Context, d models.Department, lookup func(context.Context, int64) (models.Department, error)) error {
	if d.ParentID == 0 {
		return nil
	}
	if d.ParentID == d.ID {
		return fmt.Errorf("%w: department cannot be its own parent", ErrInvalid)
	}
	seen := map[int64]struct{}{d.ID: {}}
	cursor := d.ParentID
	for cursor != 0 {
		if _, dup := seen[cursor]; dup {
			return fmt.Errorf("%w: department parent chain forms a cycle", ErrInvalid)
		}
		seen[cursor] = struct{}{}
		parent, err := lookup(ctx, cursor)
		if err != nil {
			return fmt.Errorf("department parent %d: %w", cursor, err)
		}
		if parent.CompanyID != d.CompanyID {
			return fmt.Errorf("%w: department parent belongs to another company", ErrInvalid)
		}
		cursor = parent.ParentID
	}
	return nil
}
