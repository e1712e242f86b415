package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskhub/internal/api"
	"taskhub/internal/entity"
	"taskhub/internal/session"
)

func TestAvailableDevelopers(t *testing.T) {
	all := []entity.User{
		{ID: "d1", FirstName: "Ana"},
		{ID: "d2", FirstName: "Boris"},
		{ID: "d3", FirstName: "Clara"},
	}
	assigned := []entity.User{{ID: "d2"}}

	available := availableDevelopers(all, assigned)
	if len(available) != 2 {
		t.Fatalf("expected 2 available developers, got %d", len(available))
	}
	if available[0].ID != "d1" || available[1].ID != "d3" {
		t.Errorf("order not preserved: %+v", available)
	}
}

func TestAvailableDevelopersNoneAssigned(t *testing.T) {
	all := []entity.User{{ID: "d1"}, {ID: "d2"}}

	available := availableDevelopers(all, nil)
	if len(available) != len(all) {
		t.Fatalf("expected all developers available, got %d", len(available))
	}
}

func TestAvailableDevelopersAllAssigned(t *testing.T) {
	all := []entity.User{{ID: "d1"}, {ID: "d2"}}

	available := availableDevelopers(all, all)
	if len(available) != 0 {
		t.Fatalf("expected nobody available, got %d", len(available))
	}
}

func assignHandlerWithSession(t *testing.T, role string) (*AssignHandler, []*http.Cookie) {
	t.Helper()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(backend.Close)

	sessions := session.NewManager("test-secret")
	h := NewAssignHandler(api.NewClient(backend.URL), sessions, "../../web/templates")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := sessions.Login(rec, req, "u1", role, "Mia"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	return h, rec.Result().Cookies()
}

func TestAssignToTaskGetRendersPanel(t *testing.T) {
	h, cookies := assignHandlerWithSession(t, "manager")

	req := httptest.NewRequest(http.MethodGet, "/manager/assign_task", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.AssignToTask(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected the panel, got %d redirect to %q", rec.Code, rec.Header().Get("Location"))
	}
	if !strings.Contains(rec.Body.String(), "Assign Developers to Task") {
		t.Error("panel body not rendered")
	}
}

func TestAssignToProjectGetRendersPanel(t *testing.T) {
	h, cookies := assignHandlerWithSession(t, "admin")

	req := httptest.NewRequest(http.MethodGet, "/admin/assign_developers", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.AssignToProject(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected the panel, got %d redirect to %q", rec.Code, rec.Header().Get("Location"))
	}
	if !strings.Contains(rec.Body.String(), "Assign Developers to a Project") {
		t.Error("panel body not rendered")
	}
}
