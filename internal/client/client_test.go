package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"bizdesk/internal/models"
)

func TestAPIErrorDecoded(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "task 42: not found"})
	}))
	defer ts.Close()

	c := New(ts.URL, time.Second, nil)
	_, err := c.Tasks().Get(context.Background(), 42)
	if err == nil {
		t.Fatal("expected error for 404")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %v is not an *APIError", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", apiErr.Status)
	}
	if apiErr.Message != "task 42: not found" {
		t.Fatalf("message = %q", apiErr.Message)
	}
}

func TestGetRetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"task": models.Task{ID: 7, Title: "recovered"},
		})
	}))
	defer ts.Close()

	c := New(ts.URL, time.Second, nil)
	task, err := c.Tasks().Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("get after retry: %v", err)
	}
	if task.Title != "recovered" {
		t.Fatalf("task title = %q", task.Title)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("server saw %d calls, want 2", got)
	}
}

func TestGetDoesNotRetryClientError(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "bad request"})
	}))
	defer ts.Close()

	c := New(ts.URL, time.Second, nil)
	if _, err := c.Tasks().Get(context.Background(), 1); err == nil {
		t.Fatal("expected error for 400")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("server saw %d calls, want 1 (400 is not retryable)", got)
	}
}

func TestMutationNotRetried(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := New(ts.URL, time.Second, nil)
	_, err := c.Tasks().Create(context.Background(), models.Task{CompanyID: 1, Title: "once"})
	if err == nil {
		t.Fatal("expected error for 500")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("server saw %d calls, want 1 (mutations are single shot)", got)
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"tasks": []models.Task{}})
	}))
	defer ts.Close()

	c := New(ts.URL, time.Second, nil)
	c.SetToken("secret-token")
	if _, err := c.Tasks().List(context.Background(), TaskFilter{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
}

func TestTaskFilterQuery(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]any{"tasks": []models.Task{}})
	}))
	defer ts.Close()

	c := New(ts.URL, time.Second, nil)
	_, err := c.Tasks().List(context.Background(), TaskFilter{CompanyID: 1, BoardID: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotQuery != "boardId=2&companyId=1" {
		t.Fatalf("query = %q", gotQuery)
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"task": models.Task{ID: 1, Title: "server state"},
		})
	}))
	defer ts.Close()

	c := New(ts.URL, time.Second, nil)

	// An older update is in flight when a newer one completes.
	stale := c.seq.begin("task", 1)

	if _, err := c.Tasks().Update(context.Background(), models.Task{ID: 1, CompanyID: 1, Title: "newer"}); err != nil {
		t.Fatalf("newer update: %v", err)
	}

	// The older response finally lands; its ticket must be refused.
	if c.seq.commit("task", 1, stale) {
		t.Fatal("stale ticket committed after a newer one")
	}
}

func TestSequenceGuardPerEntity(t *testing.T) {
	g := newSequenceGuard()

	t1 := g.begin("task", 1)
	other := g.begin("task", 2)

	if !g.commit("task", 2, other) {
		t.Fatal("ticket for a different entity must commit")
	}
	if !g.commit("task", 1, t1) {
		t.Fatal("first ticket for entity 1 must commit")
	}
	if g.commit("task", 1, t1) {
		t.Fatal("replayed ticket must be refused")
	}
}

func TestSetTokenConcurrentWithRequests(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth != "Bearer token-a" && auth != "Bearer token-b" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "bad token"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"tasks": []models.Task{}})
	}))
	defer ts.Close()

	c := New(ts.URL, time.Second, nil)
	c.SetToken("token-a")

	// Re-login swaps the token while fetches are in flight; every
	// request must still carry one complete token, old or new.
	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				c.SetToken("token-b")
				return
			}
			if _, err := c.Tasks().List(context.Background(), TaskFilter{}); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent list: %v", err)
	}
}
