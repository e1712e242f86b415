package handler

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"taskhub/internal/api"
	"taskhub/internal/entity"
	"taskhub/internal/session"
)

type LoginHandler struct {
	api      *api.Client
	sessions *session.Manager
	tmpl     *template.Template
}

func NewLoginHandler(apiClient *api.Client, sessions *session.Manager, templatesDir string) *LoginHandler {
	tmpl := template.Must(template.ParseFiles(
		filepath.Join(templatesDir, "login.html"),
	))
	return &LoginHandler{
		api:      apiClient,
		sessions: sessions,
		tmpl:     tmpl,
	}
}

func (h *LoginHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	// Already logged in: go straight to the role dashboard.
	if current, ok := h.sessions.Get(r); ok && entity.ValidRole(current.Role) {
		http.Redirect(w, r, dashboardPath(current.Role, "home"), http.StatusSeeOther)
		return
	}

	data := map[string]interface{}{
		"Title":   "Sign In",
		"Error":   r.URL.Query().Get("error"),
		"Message": r.URL.Query().Get("message"),
		"Email":   r.URL.Query().Get("email"),
	}
	renderTemplate(w, h.tmpl, "login.html", data)
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.LoginPage(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		redirectBack(w, r, "/login", map[string]string{
			"error": "Email and password are required",
			"email": email,
		})
		return
	}

	result, err := h.api.Login(r.Context(), email, password)
	if err != nil {
		fmt.Printf("login failed for %s: %v\n", email, err)
		redirectBack(w, r, "/login", map[string]string{
			"error": api.UserMessage(err),
			"email": email,
		})
		return
	}

	if !entity.ValidRole(result.Role) {
		redirectBack(w, r, "/login", map[string]string{
			"error": "Login failed: Role not assigned",
		})
		return
	}

	if err := h.sessions.Login(w, r, result.UserID, result.Role, result.Name); err != nil {
		fmt.Printf("session save failed for %s: %v\n", email, err)
		redirectBack(w, r, "/login", map[string]string{"error": "Session error"})
		return
	}

	fmt.Printf("login ok: %s (id %s, role %s)\n", email, result.UserID, result.Role)
	http.Redirect(w, r, dashboardPath(result.Role, "home"), http.StatusSeeOther)
}

func (h *LoginHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(w, r); err != nil {
		fmt.Printf("logout session clear failed: %v\n", err)
	}
	redirectBack(w, r, "/login", map[string]string{"message": "You have been logged out"})
}
