package handler

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"sync"

	"taskhub/internal/api"
	"taskhub/internal/entity"
	"taskhub/internal/session"
)

// taskView is a task merged with everything the list view shows: resolved
// status label, module detail and assigned users.
type taskView struct {
	entity.Task
	StatusName    string
	Module        *entity.Module
	AssignedUsers []entity.TaskUser
}

// TasksHandler renders the per-project task list shared by managers and
// developers, with status changes and (for managers) de-assignment.
type TasksHandler struct {
	api      *api.Client
	sessions *session.Manager
	tmpl     *template.Template
}

func NewTasksHandler(apiClient *api.Client, sessions *session.Manager, templatesDir string) *TasksHandler {
	return &TasksHandler{
		api:      apiClient,
		sessions: sessions,
		tmpl:     parsePage(templatesDir, "tasks.html"),
	}
}

func (h *TasksHandler) Page(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	// Managers see the projects they own; developers see the projects they
	// are assigned to.
	var projects []entity.Project
	var err error
	if current.Role == entity.RoleManager {
		projects, err = h.api.ManagerProjects(r.Context(), current.UserID)
	} else {
		projects, err = h.api.DeveloperProjects(r.Context(), current.UserID)
	}
	if err != nil {
		fmt.Printf("fetch projects failed: %v\n", err)
	}

	data := pageData(r, current, "View Tasks", "viewTasks")
	data["Projects"] = projects
	data["IsManager"] = current.Role == entity.RoleManager

	statuses, err := h.api.ListStatuses(r.Context())
	if err != nil {
		fmt.Printf("fetch statuses failed: %v\n", err)
	}
	data["Statuses"] = statuses

	if projectID := r.URL.Query().Get("project"); projectID != "" {
		data["SelectedProject"] = projectID

		var tasks []entity.Task
		if current.Role == entity.RoleManager {
			tasks, err = h.api.ProjectTasks(r.Context(), projectID)
		} else {
			tasks, err = h.api.DeveloperTasks(r.Context(), current.UserID, projectID)
		}
		if err != nil {
			fmt.Printf("fetch tasks for %s failed: %v\n", projectID, err)
			data["Error"] = api.UserMessage(err)
		} else {
			data["Tasks"] = h.loadTaskViews(r.Context(), tasks)
		}
	}

	renderTemplate(w, h.tmpl, "tasks.html", data)
}

// loadTaskViews fans out per-task lookups (assigned users, module detail,
// status label) concurrently and merges the results. Individual lookup
// failures degrade the affected field instead of failing the page.
func (h *TasksHandler) loadTaskViews(ctx context.Context, tasks []entity.Task) []taskView {
	views := make([]taskView, len(tasks))

	var wg sync.WaitGroup
	for i, task := range tasks {
		views[i] = taskView{Task: task, StatusName: "Unknown Status"}

		wg.Add(1)
		go func(i int, task entity.Task) {
			defer wg.Done()

			if users, err := h.api.TaskUsers(ctx, task.ID); err == nil {
				views[i].AssignedUsers = users
			}

			if task.ModuleID != "" {
				if module, err := h.api.GetModule(ctx, task.ModuleID); err == nil {
					views[i].Module = &module
				}
			}

			if task.StatusID != "" {
				if status, err := h.api.GetStatus(ctx, task.StatusID); err == nil {
					views[i].StatusName = status.Label
				}
			}
		}(i, task)
	}
	wg.Wait()

	return views
}

// UpdateStatus posts the dedicated status-update call and then sends the
// browser back to re-fetch the whole list; nothing is patched locally.
func (h *TasksHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok || r.Method != http.MethodPost {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	taskID := r.FormValue("task_id")
	statusID := r.FormValue("status_id")
	projectID := r.FormValue("project_id")
	target := dashboardPath(current.Role, "viewTasks")
	if projectID != "" {
		target += "&project=" + projectID
	}

	if taskID == "" || statusID == "" {
		redirectBack(w, r, target, map[string]string{"error": "Missing task or status"})
		return
	}

	if err := h.api.UpdateTaskStatus(r.Context(), taskID, statusID); err != nil {
		fmt.Printf("update status of task %s failed: %v\n", taskID, err)
		redirectBack(w, r, target, map[string]string{"error": "Failed to update status."})
		return
	}
	redirectBack(w, r, target, map[string]string{"message": "Status updated successfully!"})
}

// Deassign removes one user from a task (manager action).
func (h *TasksHandler) Deassign(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok || r.Method != http.MethodPost {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	taskID := r.FormValue("task_id")
	userID := r.FormValue("user_id")
	projectID := r.FormValue("project_id")
	target := dashboardPath(current.Role, "viewTasks")
	if projectID != "" {
		target += "&project=" + projectID
	}

	if err := h.api.DeassignTask(r.Context(), userID, taskID); err != nil {
		fmt.Printf("deassign user %s from task %s failed: %v\n", userID, taskID, err)
		redirectBack(w, r, target, map[string]string{"error": "Failed to deassign user from task"})
		return
	}
	redirectBack(w, r, target, map[string]string{"message": "User deassigned successfully!"})
}
