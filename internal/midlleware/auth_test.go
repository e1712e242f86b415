package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"taskhub/internal/session"
)

func sessionCookies(t *testing.T, m *session.Manager, userID, role, name string) []*http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := m.Login(rec, req, userID, role, name); err != nil {
		t.Fatalf("Login: %v", err)
	}
	return rec.Result().Cookies()
}

func serve(t *testing.T, m *session.Manager, path string, cookies []*http.Cookie) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	RequireAuth(m, next).ServeHTTP(rec, req)
	return rec, reached
}

func TestLoggedOutRedirectsToLogin(t *testing.T) {
	m := session.NewManager("test-secret")

	rec, reached := serve(t, m, "/profile/admin?tab=users", nil)
	if reached {
		t.Fatal("protected route served without a session")
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Errorf("expected redirect to /login, got %d %s", rec.Code, rec.Header().Get("Location"))
	}
}

func TestRoleMismatchRedirects(t *testing.T) {
	m := session.NewManager("test-secret")
	cookies := sessionCookies(t, m, "u1", "developer", "Dana")

	rec, reached := serve(t, m, "/profile/admin", cookies)
	if reached {
		t.Fatal("developer reached an admin route")
	}
	if rec.Header().Get("Location") != "/login" {
		t.Errorf("expected redirect to /login, got %s", rec.Header().Get("Location"))
	}
}

func TestMatchingRolePasses(t *testing.T) {
	m := session.NewManager("test-secret")
	cookies := sessionCookies(t, m, "u1", "developer", "Dana")

	if _, reached := serve(t, m, "/profile/developer?tab=viewTasks", cookies); !reached {
		t.Fatal("developer blocked from own dashboard")
	}
	if _, reached := serve(t, m, "/developer/tasks/status", cookies); !reached {
		t.Fatal("developer blocked from own action route")
	}
}

func TestPublicPathsSkipAuth(t *testing.T) {
	m := session.NewManager("test-secret")

	for _, path := range []string{"/login", "/logout", "/static/style.css", "/messages.txt"} {
		if _, reached := serve(t, m, path, nil); !reached {
			t.Errorf("public path %s blocked", path)
		}
	}
}

func TestUnknownPathRedirects(t *testing.T) {
	m := session.NewManager("test-secret")
	cookies := sessionCookies(t, m, "u1", "manager", "Mia")

	rec, reached := serve(t, m, "/somewhere-else", cookies)
	if reached {
		t.Fatal("unknown path should not be served")
	}
	if rec.Header().Get("Location") != "/login" {
		t.Errorf("expected redirect to /login, got %s", rec.Header().Get("Location"))
	}
}

func TestCrossRoleActionBlocked(t *testing.T) {
	m := session.NewManager("test-secret")
	cookies := sessionCookies(t, m, "u1", "manager", "Mia")

	rec, reached := serve(t, m, "/admin/add_user", cookies)
	if reached {
		t.Fatal("manager reached an admin action")
	}
	if rec.Header().Get("Location") != "/login" {
		t.Errorf("expected redirect to /login, got %s", rec.Header().Get("Location"))
	}
}
