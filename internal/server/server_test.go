package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bizdesk/internal/models"
	"bizdesk/internal/storage/memstore"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	auth := NewAuthenticator("admin@example.com", "admin", "test-secret")
	srv := New(memstore.NewSeeded(), auth, nil, "")
	token, err := auth.Login("admin@example.com", "admin")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return srv, token
}

func doRequest(t *testing.T, srv *Server, token, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	return w
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestHealthzOpen(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doRequest(t, srv, "", http.MethodGet, "/api/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("healthz status = %d, want 200", w.Code)
	}
}

func TestLogin(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doRequest(t, srv, "", http.MethodPost, "/api/v1/auth/login",
		map[string]string{"email": "admin@example.com", "password": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad credentials status = %d, want 401", w.Code)
	}

	w = doRequest(t, srv, "", http.MethodPost, "/api/v1/auth/login",
		map[string]string{"email": "admin@example.com", "password": "admin"})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200", w.Code)
	}
	var resp struct {
		Token string `json:"token"`
	}
	decodeInto(t, w, &resp)
	if resp.Token == "" {
		t.Fatal("login returned empty token")
	}
}

func TestMissingTokenRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doRequest(t, srv, "", http.MethodGet, "/api/v1/tasks", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token status = %d, want 401", w.Code)
	}

	w = doRequest(t, srv, "garbage", http.MethodGet, "/api/v1/tasks", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token status = %d, want 401", w.Code)
	}
}

func TestTaskCRUD(t *testing.T) {
	srv, token := newTestServer(t)

	w := doRequest(t, srv, token, http.MethodPost, "/api/v1/tasks", models.Task{
		CompanyID: 1,
		Title:     "Draft quarterly report",
		Priority:  models.PriorityHigh,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		Task models.Task `json:"task"`
	}
	decodeInto(t, w, &created)
	if created.Task.ID == 0 {
		t.Fatal("created task has no id")
	}
	if created.Task.Status != models.StatusNew {
		t.Fatalf("default status = %q, want %q", created.Task.Status, models.StatusNew)
	}

	path := fmt.Sprintf("/api/v1/tasks/%d", created.Task.ID)

	created.Task.Status = models.StatusInProgress
	w = doRequest(t, srv, token, http.MethodPut, path, created.Task)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, srv, token, http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var fetched struct {
		Task models.Task `json:"task"`
	}
	decodeInto(t, w, &fetched)
	if fetched.Task.Status != models.StatusInProgress {
		t.Fatalf("fetched status = %q, want in_progress", fetched.Task.Status)
	}

	w = doRequest(t, srv, token, http.MethodDelete, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = doRequest(t, srv, token, http.MethodGet, path, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", w.Code)
	}
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	srv, token := newTestServer(t)

	w := doRequest(t, srv, token, http.MethodPost, "/api/v1/tasks", models.Task{CompanyID: 1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing title status = %d, want 400", w.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	decodeInto(t, w, &resp)
	if resp.Error == "" {
		t.Fatal("error payload missing")
	}
}

func TestTaskCompanyScoping(t *testing.T) {
	srv, token := newTestServer(t)

	// Seeded data puts every task in company 1.
	w := doRequest(t, srv, token, http.MethodGet, "/api/v1/tasks?companyId=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var listed struct {
		Tasks []models.Task `json:"tasks"`
	}
	decodeInto(t, w, &listed)
	if len(listed.Tasks) != 0 {
		t.Fatalf("company 2 sees %d tasks from company 1", len(listed.Tasks))
	}

	w = doRequest(t, srv, token, http.MethodGet, "/api/v1/tasks?companyId=1", nil)
	decodeInto(t, w, &listed)
	if len(listed.Tasks) == 0 {
		t.Fatal("company 1 should see seeded tasks")
	}
	for _, task := range listed.Tasks {
		if task.CompanyID != 1 {
			t.Fatalf("task %d leaked from company %d", task.ID, task.CompanyID)
		}
	}
}

func TestToggleFavorite(t *testing.T) {
	srv, token := newTestServer(t)

	w := doRequest(t, srv, token, http.MethodPut, "/api/v1/tasks/1/favorite", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("favorite status = %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Task models.Task `json:"task"`
	}
	decodeInto(t, w, &resp)
	if !resp.Task.IsFavorite {
		t.Fatal("favorite flag not set after toggle")
	}

	w = doRequest(t, srv, token, http.MethodPut, "/api/v1/tasks/999/favorite", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown task favorite status = %d, want 404", w.Code)
	}
}

func TestSprintLifecycle(t *testing.T) {
	srv, token := newTestServer(t)

	w := doRequest(t, srv, token, http.MethodPost, "/api/v1/sprints", models.Sprint{
		CompanyID: 1,
		Name:      "Sprint 1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create sprint status = %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		Sprint models.Sprint `json:"sprint"`
	}
	decodeInto(t, w, &created)
	if created.Sprint.Status != models.SprintPlanning {
		t.Fatalf("new sprint status = %q, want planning", created.Sprint.Status)
	}

	w = doRequest(t, srv, token, http.MethodPut,
		fmt.Sprintf("/api/v1/sprints/%d/start", created.Sprint.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("start sprint status = %d", w.Code)
	}
	var started struct {
		Sprint models.Sprint `json:"sprint"`
	}
	decodeInto(t, w, &started)
	if started.Sprint.Status != models.SprintActive {
		t.Fatalf("started sprint status = %q, want active", started.Sprint.Status)
	}

	w = doRequest(t, srv, token, http.MethodPut,
		fmt.Sprintf("/api/v1/sprints/%d/complete", created.Sprint.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("complete sprint status = %d", w.Code)
	}
}

func TestBoardHasNoDelete(t *testing.T) {
	srv, token := newTestServer(t)

	w := doRequest(t, srv, token, http.MethodDelete, "/api/v1/boards/1", nil)
	if w.Code == http.StatusOK {
		t.Fatal("boards must not expose DELETE")
	}
}

func TestDepartmentCycleRejected(t *testing.T) {
	srv, token := newTestServer(t)

	w := doRequest(t, srv, token, http.MethodPost, "/api/v1/departments", models.Department{
		CompanyID: 1, Name: "Platform", ParentID: 1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create child department status = %d: %s", w.Code, w.Body.String())
	}
	var child struct {
		Department models.Department `json:"department"`
	}
	decodeInto(t, w, &child)

	// Reparent the seeded root under its own child.
	w = doRequest(t, srv, token, http.MethodPut, "/api/v1/departments/1", models.Department{
		CompanyID: 1, Name: "Engineering", ParentID: child.Department.ID,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("cycle update status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestCompanyActivation(t *testing.T) {
	srv, token := newTestServer(t)

	w := doRequest(t, srv, token, http.MethodPut, "/api/v1/companies/1/deactivate", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("deactivate status = %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Company models.Company `json:"company"`
	}
	decodeInto(t, w, &resp)
	if resp.Company.IsActive {
		t.Fatal("company still active after deactivate")
	}

	w = doRequest(t, srv, token, http.MethodPut, "/api/v1/companies/1/activate", nil)
	decodeInto(t, w, &resp)
	if !resp.Company.IsActive {
		t.Fatal("company not active after activate")
	}
}

func TestTransactionValidation(t *testing.T) {
	srv, token := newTestServer(t)

	w := doRequest(t, srv, token, http.MethodPost, "/api/v1/finances/transactions", models.Transaction{
		CompanyID: 1, Type: "income", Amount: 100, Currency: "BTC",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad currency status = %d, want 400", w.Code)
	}

	w = doRequest(t, srv, token, http.MethodPost, "/api/v1/finances/transactions", models.Transaction{
		CompanyID: 1, Type: "income", Amount: 100, Currency: models.KZT,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create transaction status = %d: %s", w.Code, w.Body.String())
	}
}

func TestDashboardFallback(t *testing.T) {
	dir := t.TempDir()
	shell := []byte("<html><body>bizdesk shell</body></html>")
	if err := os.WriteFile(filepath.Join(dir, "index.html"), shell, 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	auth := NewAuthenticator("admin@example.com", "admin", "test-secret")
	srv := New(memstore.NewSeeded(), auth, nil, dir)

	// A client-side route must receive the shell, not a 404.
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boards/3", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "bizdesk shell") {
		t.Fatalf("deep link: status %d body %q", w.Code, w.Body.String())
	}

	// Unknown API paths stay JSON errors even with the fallback mounted.
	w = httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown api path status = %d, want 404", w.Code)
	}
	var payload struct {
		Error string `json:"error"`
	}
	decodeInto(t, w, &payload)
	if payload.Error == "" {
		t.Error("api 404 lost its error envelope")
	}
}
