package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func loginRequest(t *testing.T, m *Manager, userID, role, name string) *http.Request {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := m.Login(rec, req, userID, role, name); err != nil {
		t.Fatalf("Login: %v", err)
	}

	next := httptest.NewRequest(http.MethodGet, "/profile/developer", nil)
	for _, cookie := range rec.Result().Cookies() {
		next.AddCookie(cookie)
	}
	return next
}

func TestLoginThenGet(t *testing.T) {
	m := NewManager("test-secret")

	req := loginRequest(t, m, "u1", "developer", "Dana")
	current, ok := m.Get(req)
	if !ok {
		t.Fatal("expected a valid session after login")
	}
	if current.UserID != "u1" || current.Role != "developer" || current.Name != "Dana" {
		t.Errorf("unexpected session contents: %+v", current)
	}
}

func TestGetWithoutCookie(t *testing.T) {
	m := NewManager("test-secret")

	req := httptest.NewRequest(http.MethodGet, "/profile/admin", nil)
	if _, ok := m.Get(req); ok {
		t.Fatal("expected no session without a cookie")
	}
}

func TestLogoutExpiresCookie(t *testing.T) {
	m := NewManager("test-secret")

	req := loginRequest(t, m, "u1", "developer", "Dana")
	rec := httptest.NewRecorder()
	if err := m.Logout(rec, req); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected an expiring Set-Cookie on logout")
	}
	if cookies[0].MaxAge != -1 {
		t.Errorf("cookie MaxAge = %d, want -1", cookies[0].MaxAge)
	}
}

func TestCookieLifetimeIsOneHour(t *testing.T) {
	m := NewManager("test-secret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := m.Login(rec, req, "u1", "manager", "Mia"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a Set-Cookie on login")
	}
	if cookies[0].MaxAge != 3600 {
		t.Errorf("cookie MaxAge = %d, want 3600", cookies[0].MaxAge)
	}
}
