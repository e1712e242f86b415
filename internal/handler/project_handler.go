package handler

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"taskhub/internal/api"
	"taskhub/internal/entity"
	"taskhub/internal/session"
)

// ProjectHandler owns the project form and project list panels.
type ProjectHandler struct {
	api      *api.Client
	sessions *session.Manager
	formTmpl *template.Template
	listTmpl *template.Template
}

func NewProjectHandler(apiClient *api.Client, sessions *session.Manager, templatesDir string) *ProjectHandler {
	return &ProjectHandler{
		api:      apiClient,
		sessions: sessions,
		formTmpl: parsePage(templatesDir, "project_form.html"),
		listTmpl: parsePage(templatesDir, "project_list.html"),
	}
}

// FormPage renders the create form, or the edit form when ?edit={projectID}
// is present (pre-populated from the fetched project).
func (h *ProjectHandler) FormPage(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	managers, err := h.api.ListManagers(r.Context())
	if err != nil {
		fmt.Printf("fetch managers failed: %v\n", err)
	}

	data := pageData(r, current, "Create New Project", "addProject")
	data["Managers"] = managers
	data["Editing"] = false

	if editID := r.URL.Query().Get("edit"); editID != "" {
		if project, found := h.findProject(r, editID); found {
			data["Editing"] = true
			data["Project"] = project
			data["Title"] = "Edit Project"
		}
	}

	renderTemplate(w, h.formTmpl, "project_form.html", data)
}

func (h *ProjectHandler) findProject(r *http.Request, projectID string) (entity.Project, bool) {
	projects, err := h.api.ListProjects(r.Context())
	if err != nil {
		fmt.Printf("fetch projects failed: %v\n", err)
		return entity.Project{}, false
	}
	for _, project := range projects {
		if project.ID == projectID {
			return project, true
		}
	}
	return entity.Project{}, false
}

// Submit handles both create and update; the hidden "editing" field flips
// the backend call from create to update.
func (h *ProjectHandler) Submit(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if r.Method != http.MethodPost {
		h.FormPage(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	estimatedHours, _ := strconv.Atoi(r.FormValue("estimatedHours"))
	form := projectForm{
		Title:          strings.TrimSpace(r.FormValue("title")),
		Description:    strings.TrimSpace(r.FormValue("description")),
		Technology:     strings.TrimSpace(r.FormValue("technology")),
		EstimatedHours: estimatedHours,
		StartDate:      r.FormValue("startDate"),
		CompletionDate: r.FormValue("completionDate"),
		ManagerEmail:   r.FormValue("managerEmail"),
	}
	editing := r.FormValue("editing") == "true"

	target := dashboardPath(current.Role, "addProject")
	if err := validateProjectForm(form, time.Now()); err != nil {
		redirectBack(w, r, target, map[string]string{"error": err.Error()})
		return
	}

	input := api.ProjectInput{
		Title:          form.Title,
		Description:    form.Description,
		Technology:     form.Technology,
		EstimatedHours: form.EstimatedHours,
		StartDate:      form.StartDate,
		CompletionDate: form.CompletionDate,
		ManagerEmail:   form.ManagerEmail,
	}

	var err error
	if editing {
		err = h.api.UpdateProject(r.Context(), input)
	} else {
		err = h.api.CreateProject(r.Context(), input)
	}
	if err != nil {
		fmt.Printf("project submit failed: %v\n", err)
		redirectBack(w, r, target, map[string]string{"error": api.UserMessage(err)})
		return
	}

	message := "Project created successfully!"
	if editing {
		message = "Project updated successfully!"
	}
	redirectBack(w, r, target, map[string]string{"message": message})
}

func (h *ProjectHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	projects, err := h.api.ListProjects(r.Context())
	if err != nil {
		fmt.Printf("fetch projects failed: %v\n", err)
	}

	data := pageData(r, current, "Projects", "listProjects")
	data["Projects"] = projects
	if err != nil {
		data["Error"] = api.UserMessage(err)
	}
	renderTemplate(w, h.listTmpl, "project_list.html", data)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok || r.Method != http.MethodPost {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	target := dashboardPath(current.Role, "listProjects")
	projectID := r.FormValue("project_id")
	if projectID == "" {
		redirectBack(w, r, target, map[string]string{"error": "Missing project id"})
		return
	}

	if err := h.api.DeleteProject(r.Context(), projectID); err != nil {
		fmt.Printf("delete project %s failed: %v\n", projectID, err)
		redirectBack(w, r, target, map[string]string{"error": api.UserMessage(err)})
		return
	}
	redirectBack(w, r, target, map[string]string{"message": "Project deleted"})
}
