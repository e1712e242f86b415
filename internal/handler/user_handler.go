package handler

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"taskhub/internal/api"
	"taskhub/internal/session"
)

// UserHandler owns the registration form and the user list with deletion.
type UserHandler struct {
	api      *api.Client
	sessions *session.Manager
	addTmpl  *template.Template
	listTmpl *template.Template
}

func NewUserHandler(apiClient *api.Client, sessions *session.Manager, templatesDir string) *UserHandler {
	return &UserHandler{
		api:      apiClient,
		sessions: sessions,
		addTmpl:  parsePage(templatesDir, "add_user.html"),
		listTmpl: parsePage(templatesDir, "users.html"),
	}
}

func (h *UserHandler) AddPage(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	data := pageData(r, current, "Create New User", "addUser")
	renderTemplate(w, h.addTmpl, "add_user.html", data)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if r.Method != http.MethodPost {
		h.AddPage(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	form := userForm{
		FirstName: strings.TrimSpace(r.FormValue("firstname")),
		Role:      r.FormValue("role"),
		Email:     strings.TrimSpace(r.FormValue("email")),
		Password:  r.FormValue("password"),
	}

	target := dashboardPath(current.Role, "addUser")
	if err := validateUserForm(form); err != nil {
		redirectBack(w, r, target, map[string]string{"error": err.Error()})
		return
	}

	if err := h.api.Register(r.Context(), form.FirstName, form.Role, form.Email, form.Password); err != nil {
		fmt.Printf("register %s failed: %v\n", form.Email, err)
		redirectBack(w, r, target, map[string]string{"error": api.UserMessage(err)})
		return
	}
	redirectBack(w, r, target, map[string]string{"message": "User created successfully!"})
}

func (h *UserHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	users, err := h.api.ListUsers(r.Context())
	if err != nil {
		fmt.Printf("fetch users failed: %v\n", err)
	}

	data := pageData(r, current, "Users", "users")
	data["Users"] = users
	if err != nil {
		data["Error"] = api.UserMessage(err)
	}
	renderTemplate(w, h.listTmpl, "users.html", data)
}

// Delete removes a user by email. The backend checks the admin_id header
// against the acting admin, which comes from the session.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok || r.Method != http.MethodPost {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	target := dashboardPath(current.Role, "users")
	email := r.FormValue("email")
	if email == "" {
		redirectBack(w, r, target, map[string]string{"error": "Missing user email"})
		return
	}

	if err := h.api.DeleteUser(r.Context(), current.UserID, email); err != nil {
		fmt.Printf("delete user %s failed: %v\n", email, err)
		redirectBack(w, r, target, map[string]string{"error": api.UserMessage(err)})
		return
	}
	redirectBack(w, r, target, map[string]string{"message": "User deleted"})
}
