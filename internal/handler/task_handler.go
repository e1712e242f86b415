package handler

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"taskhub/internal/api"
	"taskhub/internal/entity"
	"taskhub/internal/session"
)

// TaskHandler owns task creation (multipart, optional UI image) and task
// editing (JSON, image immutable).
type TaskHandler struct {
	api       *api.Client
	sessions  *session.Manager
	maxUpload int64
	addTmpl   *template.Template
	editTmpl  *template.Template
}

func NewTaskHandler(apiClient *api.Client, sessions *session.Manager, templatesDir string, maxUpload int64) *TaskHandler {
	return &TaskHandler{
		api:       apiClient,
		sessions:  sessions,
		maxUpload: maxUpload,
		addTmpl:   parsePage(templatesDir, "add_task.html"),
		editTmpl:  parsePage(templatesDir, "edit_task.html"),
	}
}

// AddPage renders the task form. Selecting a project navigates back here with
// ?project={id}, which loads that project's modules and statuses and resets
// the module/status selection.
func (h *TaskHandler) AddPage(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	projects, err := h.api.ListProjects(r.Context())
	if err != nil {
		fmt.Printf("fetch projects failed: %v\n", err)
	}

	data := pageData(r, current, "Add Task", "addTask")
	data["Projects"] = projects
	data["Priorities"] = entity.TaskPriorities

	if projectID := r.URL.Query().Get("project"); projectID != "" {
		data["SelectedProject"] = projectID
		combined, err := h.api.ModulesStatuses(r.Context(), projectID)
		if err != nil {
			fmt.Printf("fetch modules/statuses for %s failed: %v\n", projectID, err)
		} else {
			data["Modules"] = combined.Modules
			data["Statuses"] = combined.Statuses
			for _, status := range combined.Statuses {
				if status.Label == entity.StatusLabelAssigned {
					data["DefaultStatus"] = status.ID
					break
				}
			}
		}
	}

	renderTemplate(w, h.addTmpl, "add_task.html", data)
}

// Create submits the multipart task form. Note there is no positivity check
// on totalMinutes; only modules enforce one on hours.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if r.Method != http.MethodPost {
		h.AddPage(w, r)
		return
	}
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	totalMinutes, _ := strconv.Atoi(r.FormValue("totalMinutes"))
	form := taskForm{
		Title:        strings.TrimSpace(r.FormValue("title")),
		Priority:     r.FormValue("priority"),
		Description:  strings.TrimSpace(r.FormValue("description")),
		TotalMinutes: totalMinutes,
		ModuleID:     r.FormValue("module_id"),
		ProjectID:    r.FormValue("project_id"),
		StatusID:     r.FormValue("status_id"),
	}

	target := dashboardPath(current.Role, "addTask")
	if err := validateTaskForm(form); err != nil {
		redirectBack(w, r, target, map[string]string{"error": err.Error()})
		return
	}

	input := api.TaskCreate{
		Title:        form.Title,
		Priority:     form.Priority,
		Description:  form.Description,
		TotalMinutes: form.TotalMinutes,
		ModuleID:     form.ModuleID,
		ProjectID:    form.ProjectID,
		StatusID:     form.StatusID,
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		input.Image = file
		input.ImageName = header.Filename
	}

	if err := h.api.CreateTask(r.Context(), input); err != nil {
		fmt.Printf("create task failed: %v\n", err)
		redirectBack(w, r, target, map[string]string{"error": api.UserMessage(err)})
		return
	}
	redirectBack(w, r, target, map[string]string{"message": "Task added successfully"})
}

// EditPage pre-populates the form for ?project={id}&task={id}. Changing the
// project reloads its modules and statuses and clears both selections.
func (h *TaskHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	projectID := r.URL.Query().Get("project")
	taskID := r.URL.Query().Get("task")
	if projectID == "" || taskID == "" {
		http.Redirect(w, r, dashboardPath(current.Role, "viewTasks"), http.StatusSeeOther)
		return
	}

	data := pageData(r, current, "Update Task", "viewTasks")
	data["Priorities"] = entity.TaskPriorities

	projects, err := h.api.ListProjects(r.Context())
	if err != nil {
		fmt.Printf("fetch projects failed: %v\n", err)
	}
	data["Projects"] = projects

	tasks, err := h.api.ProjectTasks(r.Context(), projectID)
	if err != nil {
		fmt.Printf("fetch tasks for %s failed: %v\n", projectID, err)
		redirectBack(w, r, dashboardPath(current.Role, "viewTasks"), map[string]string{"error": api.UserMessage(err)})
		return
	}
	var task entity.Task
	for _, t := range tasks {
		if t.ID == taskID {
			task = t
			break
		}
	}
	if task.ID == "" {
		redirectBack(w, r, dashboardPath(current.Role, "viewTasks"), map[string]string{"error": "Task not found"})
		return
	}
	data["Task"] = task

	// The form may point at a different project than the task currently has.
	formProject := r.URL.Query().Get("form_project")
	if formProject == "" {
		formProject = task.ProjectID
	}
	data["SelectedProject"] = formProject

	combined, err := h.api.ModulesStatuses(r.Context(), formProject)
	if err != nil {
		fmt.Printf("fetch modules/statuses for %s failed: %v\n", formProject, err)
	} else {
		data["Modules"] = combined.Modules
		data["Statuses"] = combined.Statuses
	}
	data["ProjectChanged"] = formProject != task.ProjectID

	renderTemplate(w, h.editTmpl, "edit_task.html", data)
}

// Update sends the JSON task update. The image cannot be changed here.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	totalMinutes, _ := strconv.Atoi(r.FormValue("totalMinutes"))
	form := taskForm{
		Title:        strings.TrimSpace(r.FormValue("title")),
		Priority:     r.FormValue("priority"),
		Description:  strings.TrimSpace(r.FormValue("description")),
		TotalMinutes: totalMinutes,
		ModuleID:     r.FormValue("module_id"),
		ProjectID:    r.FormValue("project_id"),
		StatusID:     r.FormValue("status_id"),
	}

	target := dashboardPath(current.Role, "viewTasks")
	if taskID == "" {
		redirectBack(w, r, target, map[string]string{"error": "Missing task id"})
		return
	}
	if err := validateTaskForm(form); err != nil {
		redirectBack(w, r, target, map[string]string{"error": err.Error()})
		return
	}

	input := entity.TaskInput{
		Title:        form.Title,
		Priority:     form.Priority,
		Description:  form.Description,
		TotalMinutes: form.TotalMinutes,
		ModuleID:     form.ModuleID,
		ProjectID:    form.ProjectID,
		StatusID:     form.StatusID,
	}
	if err := h.api.UpdateTask(r.Context(), taskID, input); err != nil {
		fmt.Printf("update task %s failed: %v\n", taskID, err)
		redirectBack(w, r, target, map[string]string{"error": api.UserMessage(err)})
		return
	}
	redirectBack(w, r, target, map[string]string{"message": "Task updated successfully"})
}
