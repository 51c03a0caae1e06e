package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iarchive/iarchive/internal/server/response"
	"github.com/iarchive/iarchive/pkg/catalog"
	"github.com/iarchive/iarchive/pkg/logging"
	"github.com/iarchive/iarchive/pkg/session"
	"github.com/iarchive/iarchive/pkg/storage/memory"
)

// newTestHandler builds a handler over a seeded in-memory catalog.
func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	cat, err := catalog.New(catalog.WithLogger(&logging.Nop))
	if err != nil {
		t.Fatalf("creating catalog: %v", err)
	}
	sessions := session.NewManager(memory.New(), &logging.Nop)

	cfg := DefaultConfig()
	cfg.RateLimit = 0 // keep tests independent of request count

	return New(cat, sessions, cfg, &logging.Nop).Handler()
}

// doJSON runs a request and decodes the response envelope.
func doJSON(t *testing.T, h http.Handler, method, path string, body any) (int, response.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(method, path, &buf)
	h.ServeHTTP(w, r)

	var resp response.Response
	if w.Body.Len() > 0 {
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("%s %s: decoding response: %v", method, path, err)
		}
	}
	return w.Code, resp
}

// dataMap asserts the envelope data is a JSON object and returns it.
func dataMap(t *testing.T, resp response.Response) map[string]any {
	t.Helper()

	m, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %T", resp.Data)
	}
	return m
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestHandler(t)

	for _, path := range []string{"/health", "/api/v1/health"} {
		code, resp := doJSON(t, h, http.MethodGet, path, nil)
		if code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, code)
		}
		if dataMap(t, resp)["status"] != "healthy" {
			t.Errorf("%s: expected healthy status", path)
		}
	}
}

func TestListMaterialsDefaults(t *testing.T) {
	h := newTestHandler(t)

	code, resp := doJSON(t, h, http.MethodGet, "/api/v1/materials", nil)
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}

	data := dataMap(t, resp)
	if got := data["totalCount"].(float64); got != 8 {
		t.Errorf("expected totalCount=8, got %v", got)
	}
	if got := data["totalPages"].(float64); got != 2 {
		t.Errorf("expected totalPages=2, got %v", got)
	}
	if got := len(data["items"].([]any)); got != 6 {
		t.Errorf("expected first page of 6, got %d", got)
	}
}

func TestListMaterialsQueryParams(t *testing.T) {
	h := newTestHandler(t)

	code, resp := doJSON(t, h, http.MethodGet, "/api/v1/materials?search=yearbook&sort=oldest", nil)
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}

	data := dataMap(t, resp)
	items := data["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 yearbook matches, got %d", len(items))
	}
	first := items[0].(map[string]any)
	if first["title"] != "Class of 2022 Yearbook" {
		t.Errorf("expected oldest yearbook first, got %v", first["title"])
	}
}

func TestMaterialCRUD(t *testing.T) {
	h := newTestHandler(t)

	// Create
	code, resp := doJSON(t, h, http.MethodPost, "/api/v1/materials", map[string]any{
		"title":       "Oral History Tapes",
		"category":    "Audio",
		"date":        "2024-03-01",
		"accessLevel": "public",
	})
	if code != http.StatusCreated {
		t.Fatalf("create: expected status 201, got %d", code)
	}
	created := dataMap(t, resp)
	id := created["id"].(string)
	if id != "9" {
		t.Errorf("expected assigned id 9, got %q", id)
	}

	// Read
	code, resp = doJSON(t, h, http.MethodGet, "/api/v1/materials/"+id, nil)
	if code != http.StatusOK {
		t.Fatalf("get: expected status 200, got %d", code)
	}
	if dataMap(t, resp)["title"] != "Oral History Tapes" {
		t.Error("get: wrong material returned")
	}

	// Patch
	code, resp = doJSON(t, h, http.MethodPatch, "/api/v1/materials/"+id, map[string]any{
		"accessLevel": "restricted",
	})
	if code != http.StatusOK {
		t.Fatalf("patch: expected status 200, got %d", code)
	}
	patched := dataMap(t, resp)
	if patched["accessLevel"] != "restricted" {
		t.Errorf("patch: expected restricted, got %v", patched["accessLevel"])
	}
	if patched["title"] != "Oral History Tapes" {
		t.Error("patch: unrelated field changed")
	}

	// Delete
	code, _ = doJSON(t, h, http.MethodDelete, "/api/v1/materials/"+id, nil)
	if code != http.StatusNoContent {
		t.Fatalf("delete: expected status 204, got %d", code)
	}

	code, _ = doJSON(t, h, http.MethodGet, "/api/v1/materials/"+id, nil)
	if code != http.StatusNotFound {
		t.Errorf("get after delete: expected status 404, got %d", code)
	}
}

func TestCreateMaterialValidation(t *testing.T) {
	h := newTestHandler(t)

	code, resp := doJSON(t, h, http.MethodPost, "/api/v1/materials", map[string]any{
		"category": "Documents",
	})
	if code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", code)
	}
	if resp.Error == nil || resp.Error.Code != "BAD_REQUEST" {
		t.Error("expected BAD_REQUEST error code")
	}

	code, _ = doJSON(t, h, http.MethodPost, "/api/v1/materials", map[string]any{
		"title":       "Broken",
		"accessLevel": "secret",
	})
	if code != http.StatusBadRequest {
		t.Errorf("unknown access level: expected status 400, got %d", code)
	}
}

func TestRecordViewEndpoint(t *testing.T) {
	h := newTestHandler(t)

	code, resp := doJSON(t, h, http.MethodPost, "/api/v1/materials/1/view", nil)
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	if got := dataMap(t, resp)["views"].(float64); got != 246 {
		t.Errorf("expected views=246, got %v", got)
	}
}

func TestUserEndpoints(t *testing.T) {
	h := newTestHandler(t)

	code, resp := doJSON(t, h, http.MethodGet, "/api/v1/users", nil)
	if code != http.StatusOK {
		t.Fatalf("list: expected status 200, got %d", code)
	}
	if got := dataMap(t, resp)["count"].(float64); got != 5 {
		t.Errorf("expected 5 seeded users, got %v", got)
	}

	code, resp = doJSON(t, h, http.MethodPost, "/api/v1/users", map[string]any{
		"name":  "New Curator",
		"email": "curator@archive.org",
		"role":  "admin",
	})
	if code != http.StatusCreated {
		t.Fatalf("create: expected status 201, got %d", code)
	}
	if got := dataMap(t, resp)["id"].(float64); got != 6 {
		t.Errorf("expected assigned id 6, got %v", got)
	}

	code, _ = doJSON(t, h, http.MethodGet, "/api/v1/users/999", nil)
	if code != http.StatusNotFound {
		t.Errorf("missing user: expected status 404, got %d", code)
	}

	code, _ = doJSON(t, h, http.MethodGet, "/api/v1/users/abc", nil)
	if code != http.StatusBadRequest {
		t.Errorf("non-numeric id: expected status 400, got %d", code)
	}
}

func TestRequestDecisionEndpoints(t *testing.T) {
	h := newTestHandler(t)

	code, resp := doJSON(t, h, http.MethodPost, "/api/v1/requests/1/approve", nil)
	if code != http.StatusOK {
		t.Fatalf("approve: expected status 200, got %d", code)
	}
	if dataMap(t, resp)["status"] != "Approved" {
		t.Errorf("expected Approved, got %v", dataMap(t, resp)["status"])
	}

	code, resp = doJSON(t, h, http.MethodPost, "/api/v1/requests/2/deny", nil)
	if code != http.StatusOK {
		t.Fatalf("deny: expected status 200, got %d", code)
	}
	if dataMap(t, resp)["status"] != "Denied" {
		t.Errorf("expected Denied, got %v", dataMap(t, resp)["status"])
	}

	// Filtered listing
	code, resp = doJSON(t, h, http.MethodGet, "/api/v1/requests?status=Approved", nil)
	if code != http.StatusOK {
		t.Fatalf("list: expected status 200, got %d", code)
	}
	if got := dataMap(t, resp)["count"].(float64); got != 2 {
		t.Errorf("expected 2 approved requests, got %v", got)
	}
}

func TestActivityAndStatsEndpoints(t *testing.T) {
	h := newTestHandler(t)

	code, resp := doJSON(t, h, http.MethodGet, "/api/v1/activity", nil)
	if code != http.StatusOK {
		t.Fatalf("activity: expected status 200, got %d", code)
	}
	if got := dataMap(t, resp)["count"].(float64); got != 7 {
		t.Errorf("expected 7 seeded entries, got %v", got)
	}

	code, resp = doJSON(t, h, http.MethodGet, "/api/v1/stats", nil)
	if code != http.StatusOK {
		t.Fatalf("stats: expected status 200, got %d", code)
	}
	stats := dataMap(t, resp)
	if got := stats["totalMaterials"].(float64); got != 8 {
		t.Errorf("expected totalMaterials=8, got %v", got)
	}
	if got := stats["pendingRequests"].(float64); got != 2 {
		t.Errorf("expected pendingRequests=2, got %v", got)
	}
}

func TestSessionEndpoints(t *testing.T) {
	h := newTestHandler(t)

	// No session yet
	code, _ := doJSON(t, h, http.MethodGet, "/api/v1/session", nil)
	if code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", code)
	}

	// Login
	code, resp := doJSON(t, h, http.MethodPost, "/api/v1/session", map[string]any{
		"email": "jane@university.edu",
		"role":  "researcher",
	})
	if code != http.StatusCreated {
		t.Fatalf("login: expected status 201, got %d", code)
	}
	if dataMap(t, resp)["name"] != "Jane" {
		t.Errorf("expected titled name Jane, got %v", dataMap(t, resp)["name"])
	}

	// Toggle a saved item
	code, resp = doJSON(t, h, http.MethodPost, "/api/v1/session/saved/3", nil)
	if code != http.StatusOK {
		t.Fatalf("toggle: expected status 200, got %d", code)
	}
	saved := dataMap(t, resp)["savedItems"].([]any)
	if len(saved) != 1 || saved[0] != "3" {
		t.Errorf("expected savedItems=[3], got %v", saved)
	}

	// Logout
	code, _ = doJSON(t, h, http.MethodDelete, "/api/v1/session", nil)
	if code != http.StatusNoContent {
		t.Fatalf("logout: expected status 204, got %d", code)
	}

	code, _ = doJSON(t, h, http.MethodGet, "/api/v1/session", nil)
	if code != http.StatusUnauthorized {
		t.Errorf("after logout: expected status 401, got %d", code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	code, resp := doJSON(t, h, http.MethodPut, "/api/v1/materials", nil)
	if code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", code)
	}
	if resp.Error == nil || resp.Error.Code != "METHOD_NOT_ALLOWED" {
		t.Error("expected METHOD_NOT_ALLOWED error code")
	}
}

func TestRateLimitApplied(t *testing.T) {
	cat, err := catalog.New(catalog.WithLogger(&logging.Nop))
	if err != nil {
		t.Fatalf("creating catalog: %v", err)
	}
	sessions := session.NewManager(memory.New(), &logging.Nop)

	cfg := DefaultConfig()
	cfg.RateLimit = 2

	h := New(cat, sessions, cfg, &logging.Nop).Handler()

	var last int
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/health", nil)
		r.RemoteAddr = "10.1.1.1:5000"
		h.ServeHTTP(w, r)
		last = w.Code
	}

	if last != http.StatusTooManyRequests {
		t.Errorf("expected third request limited with 429, got %d", last)
	}
}
