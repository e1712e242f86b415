package handler

import (
	"fmt"
	"html/template"
	"net/http"

	"golang.org/x/sync/errgroup"

	"taskhub/internal/api"
	"taskhub/internal/entity"
	"taskhub/internal/session"
)

// AssignHandler owns both association panels: developers⇄project (admin) and
// developers⇄task (manager).
type AssignHandler struct {
	api          *api.Client
	sessions     *session.Manager
	projectsTmpl *template.Template
	tasksTmpl    *template.Template
}

func NewAssignHandler(apiClient *api.Client, sessions *session.Manager, templatesDir string) *AssignHandler {
	return &AssignHandler{
		api:          apiClient,
		sessions:     sessions,
		projectsTmpl: parsePage(templatesDir, "assign_developers.html"),
		tasksTmpl:    parsePage(templatesDir, "assign_task.html"),
	}
}

// availableDevelopers is the set difference: all developers minus those
// already assigned.
func availableDevelopers(all []entity.User, assigned []entity.User) []entity.User {
	assignedIDs := make(map[string]struct{}, len(assigned))
	for _, dev := range assigned {
		assignedIDs[dev.ID] = struct{}{}
	}

	var available []entity.User
	for _, dev := range all {
		if _, taken := assignedIDs[dev.ID]; !taken {
			available = append(available, dev)
		}
	}
	return available
}

// ProjectPage renders the assign-developers-to-project panel. Selecting a
// project (?project={id}) loads its assigned developers and computes the
// available list.
func (h *AssignHandler) ProjectPage(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	projects, err := h.api.ListProjects(r.Context())
	if err != nil {
		fmt.Printf("fetch projects failed: %v\n", err)
	}
	developers, err := h.api.ListDevelopers(r.Context())
	if err != nil {
		fmt.Printf("fetch developers failed: %v\n", err)
	}

	data := pageData(r, current, "Assign Developers to a Project", "addDevelopers")
	data["Projects"] = projects

	if projectID := r.URL.Query().Get("project"); projectID != "" {
		data["SelectedProject"] = projectID

		assigned, err := h.api.ProjectDevelopers(r.Context(), projectID)
		if err != nil {
			// A project with nobody assigned comes back 404; treat as empty.
			assigned = nil
		}
		data["Assigned"] = assigned
		data["Available"] = availableDevelopers(developers, assigned)
	}

	renderTemplate(w, h.projectsTmpl, "assign_developers.html", data)
}

// AssignToProject issues one backend call per selected developer, awaits them
// all, and reports a single combined outcome. Partial successes stay applied.
// GET renders the panel.
func (h *AssignHandler) AssignToProject(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if r.Method != http.MethodPost {
		h.ProjectPage(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	projectID := r.FormValue("project_id")
	developerIDs := r.Form["developer_ids"]
	target := dashboardPath(current.Role, "addDevelopers") + "&project=" + projectID

	if projectID == "" {
		redirectBack(w, r, dashboardPath(current.Role, "addDevelopers"), map[string]string{"error": "Please select a project"})
		return
	}
	if len(developerIDs) == 0 {
		redirectBack(w, r, target, map[string]string{"error": "Please select at least one developer"})
		return
	}

	group, ctx := errgroup.WithContext(r.Context())
	for _, developerID := range developerIDs {
		developerID := developerID
		group.Go(func() error {
			return h.api.AssignDeveloper(ctx, projectID, developerID)
		})
	}
	if err := group.Wait(); err != nil {
		fmt.Printf("assign developers to %s failed: %v\n", projectID, err)
		redirectBack(w, r, target, map[string]string{"error": "Error assigning developers."})
		return
	}
	redirectBack(w, r, target, map[string]string{"message": "Developers assigned successfully!"})
}

func (h *AssignHandler) RemoveFromProject(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok || r.Method != http.MethodPost {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	projectID := r.FormValue("project_id")
	developerID := r.FormValue("developer_id")
	target := dashboardPath(current.Role, "addDevelopers") + "&project=" + projectID

	if err := h.api.DeassignDeveloper(r.Context(), projectID, developerID); err != nil {
		fmt.Printf("deassign developer %s from %s failed: %v\n", developerID, projectID, err)
		redirectBack(w, r, target, map[string]string{"error": "Failed to remove developer."})
		return
	}
	redirectBack(w, r, target, map[string]string{"message": "Developer removed successfully!"})
}

// TaskPage renders the assign-developers-to-task panel. The project selector
// drives dependent fetches of its tasks and its assigned developers.
func (h *AssignHandler) TaskPage(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	projects, err := h.api.ManagerProjects(r.Context(), current.UserID)
	if err != nil {
		fmt.Printf("fetch manager projects failed: %v\n", err)
	}

	data := pageData(r, current, "Assign Developers to Task", "assignTask")
	data["Projects"] = projects

	if projectID := r.URL.Query().Get("project"); projectID != "" {
		data["SelectedProject"] = projectID

		tasks, err := h.api.ProjectTasks(r.Context(), projectID)
		if err != nil {
			fmt.Printf("fetch tasks for %s failed: %v\n", projectID, err)
		}
		developers, err := h.api.ProjectDevelopers(r.Context(), projectID)
		if err != nil {
			fmt.Printf("fetch developers for %s failed: %v\n", projectID, err)
		}
		data["Tasks"] = tasks
		data["Developers"] = developers
	}

	renderTemplate(w, h.tasksTmpl, "assign_task.html", data)
}

// AssignToTask fires one assignment request per selected developer and
// awaits them collectively before reporting success. GET renders the panel.
func (h *AssignHandler) AssignToTask(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if r.Method != http.MethodPost {
		h.TaskPage(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	projectID := r.FormValue("project_id")
	taskID := r.FormValue("task_id")
	developerIDs := r.Form["developer_ids"]
	target := dashboardPath(current.Role, "assignTask")
	if projectID != "" {
		target += "&project=" + projectID
	}

	if taskID == "" || len(developerIDs) == 0 {
		redirectBack(w, r, target, map[string]string{"error": "Please select a task and at least one developer"})
		return
	}

	group, ctx := errgroup.WithContext(r.Context())
	for _, developerID := range developerIDs {
		developerID := developerID
		group.Go(func() error {
			return h.api.AssignTask(ctx, developerID, taskID)
		})
	}
	if err := group.Wait(); err != nil {
		fmt.Printf("assign task %s failed: %v\n", taskID, err)
		redirectBack(w, r, target, map[string]string{"error": "Failed to assign developers. Try again."})
		return
	}
	redirectBack(w, r, target, map[string]string{"message": "Developers assigned successfully!"})
}
