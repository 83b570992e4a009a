package notify

import (
	"testing"
	"time"
)

func TestShowAppendsInOrder(t *testing.T) {
	q := NewQueue(nil)
	defer q.Close()

	q.Show("saved", Success, time.Minute)
	q.Show("failed", Error, time.Minute)

	got := q.Active()
	if len(got) != 2 {
		t.Fatalf("active = %d notifications, want 2", len(got))
	}
	if got[0].Message != "saved" || got[1].Message != "failed" {
		t.Errorf("insertion order lost: %q, %q", got[0].Message, got[1].Message)
	}
	if got[0].ID == got[1].ID {
		t.Error("ids are not unique")
	}
	if got[0].Token == "" || got[0].Token == got[1].Token {
		t.Error("tokens must be unique and non-empty")
	}
}

func TestAutoExpiry(t *testing.T) {
	q := NewQueue(nil)
	defer q.Close()

	q.Show("short-lived", Info, 20*time.Millisecond)
	if len(q.Active()) != 1 {
		t.Fatal("notification not visible after Show")
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(q.Active()) != 0 {
		if time.Now().After(deadline) {
			t.Fatal("notification never expired")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestDismissIsIdempotent(t *testing.T) {
	q := NewQueue(nil)
	defer q.Close()

	id := q.Show("bye", Warning, time.Minute)
	q.Dismiss(id)
	q.Dismiss(id) // second call must be a harmless no-op
	q.Dismiss(9999)

	if len(q.Active()) != 0 {
		t.Error("dismissed notification still active")
	}
}

func TestDismissDoesNotTouchOtherTimers(t *testing.T) {
	q := NewQueue(nil)
	defer q.Close()

	first := q.Show("first", Info, 40*time.Millisecond)
	q.Show("second", Info, 40*time.Millisecond)
	q.Dismiss(first)

	got := q.Active()
	if len(got) != 1 || got[0].Message != "second" {
		t.Fatalf("dismiss removed the wrong notification: %+v", got)
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(q.Active()) != 0 {
		if time.Now().After(deadline) {
			t.Fatal("second notification's timer was disturbed")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestZeroDurationDefaults(t *testing.T) {
	q := NewQueue(nil)
	defer q.Close()

	q.Show("default", Success, 0)
	got := q.Active()
	if len(got) != 1 {
		t.Fatalf("active = %d notifications, want 1", len(got))
	}
	if got[0].Duration != DefaultDuration {
		t.Errorf("zero duration = %v, want %v", got[0].Duration, DefaultDuration)
	}
}

func TestClosedQueueRejectsShow(t *testing.T) {
	q := NewQueue(nil)
	q.Show("gone", Info, time.Minute)
	q.Close()

	if id := q.Show("late", Info, time.Minute); id != 0 {
		t.Errorf("closed queue accepted notification with id %d", id)
	}
	if len(q.Active()) != 0 {
		t.Error("closed queue still holds notifications")
	}
}
