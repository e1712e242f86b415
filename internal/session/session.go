package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	cookieName = "app-session"

	// Sessions expire after an hour. There is no renewal; the guard re-reads
	// the cookie on every navigation, so an expired session simply stops
	// matching protected routes.
	maxAge = 3600
)

// Current is the authenticated user's identity as stored in the cookie.
type Current struct {
	UserID string
	Role   string
	Name   string
}

// Manager is the single owner of the session cookie. Login and Logout are the
// only writers; everything else reads through Get.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// Login persists the user's id, role and display name for one hour.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, userID, role, name string) error {
	session, _ := m.store.Get(r, cookieName)
	session.Values["user_id"] = userID
	session.Values["role"] = role
	session.Values["name"] = name
	session.Options.MaxAge = maxAge
	return session.Save(r, w)
}

// Logout drops every persisted value and expires the cookie.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, cookieName)
	for key := range session.Values {
		delete(session.Values, key)
	}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// Get re-reads the cookie. ok is false when no valid session exists, which
// includes the expired case.
func (m *Manager) Get(r *http.Request) (Current, bool) {
	session, err := m.store.Get(r, cookieName)
	if err != nil {
		return Current{}, false
	}

	userID, userOk := session.Values["user_id"].(string)
	role, roleOk := session.Values["role"].(string)
	name, _ := session.Values["name"].(string)

	if !userOk || userID == "" || !roleOk || role == "" {
		return Current{}, false
	}
	return Current{UserID: userID, Role: role, Name: name}, true
}
