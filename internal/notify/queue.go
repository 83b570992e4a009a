// Package notify manages short-lived user-facing messages. Each
// notification expires on its own timer; timers never interfere with
// each other.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultDuration is applied when Show receives a zero duration.
const DefaultDuration = 3 * time.Second

// Kind tags a notification for presentation. The queue treats all kinds
// identically.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
	Warning Kind = "warning"
)

// Notification is one queued message.
type Notification struct {
	ID        int64         `json:"id"`
	Token     string        `json:"token"`
	Message   string        `json:"message"`
	Kind      Kind          `json:"kind"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Queue is an ordered set of live notifications.
type Queue struct {
	mu     sync.Mutex
	nextID int64
	items  []Notification
	timers map[int64]*time.Timer
	logger *slog.Logger
	closed bool
}

// NewQueue returns an empty queue.
func NewQueue(logger *slog.Logger) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	return &Queue{
		timers: make(map[int64]*time.Timer),
		logger: logger,
	}
}

// Show appends a notification and schedules its removal. It returns the
// notification id, which Dismiss accepts.
func (q *Queue) Show(message string, kind Kind, duration time.Duration) int64 {
	if duration <= 0 {
		duration = DefaultDuration
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return 0
	}

	q.nextID++
	id := q.nextID
	q.items = append(q.items, Notification{
		ID:        id,
		Token:     uuid.NewString(),
		Message:   message,
		Kind:      kind,
		Duration:  duration,
		CreatedAt: time.Now(),
	})
	q.timers[id] = time.AfterFunc(duration, func() {
		q.Dismiss(id)
	})
	return id
}

// Dismiss removes a notification immediately, ahead of its scheduled
// expiry. Dismissing an id that is already gone is a no-op.
func (q *Queue) Dismiss(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}
	for i := range q.items {
		if q.items[i].ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}

// Active returns the live notifications in insertion order.
func (q *Queue) Active() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Notification, len(q.items))
	copy(out, q.items)
	return out
}

// Close stops every outstanding timer and drops all notifications. The
// queue accepts no messages afterwards.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
	q.items = nil
	q.closed = true
}
