package handler

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"taskhub/internal/api"
	"taskhub/internal/entity"
	"taskhub/internal/session"
)

// ModuleHandler owns the combined add/update/delete module panel with the
// cross-project module list.
type ModuleHandler struct {
	api      *api.Client
	sessions *session.Manager
	tmpl     *template.Template
}

func NewModuleHandler(apiClient *api.Client, sessions *session.Manager, templatesDir string) *ModuleHandler {
	return &ModuleHandler{
		api:      apiClient,
		sessions: sessions,
		tmpl:     parsePage(templatesDir, "manage_modules.html"),
	}
}

// modulesStatusesFetch matches api.Client.ModulesStatuses so the aggregation
// stays testable without a live backend.
type modulesStatusesFetch func(ctx context.Context, projectID string) (entity.ModulesStatuses, error)

// aggregateModules builds the combined module list across every project.
// There is no single all-modules endpoint: each project is fetched in turn,
// statuses are deduplicated by id across projects, and every module is
// annotated with its resolved status object. An unresolvable status
// reference degrades to {id, "Unknown"} instead of dropping the module.
func aggregateModules(ctx context.Context, projects []entity.Project, fetch modulesStatusesFetch) ([]entity.Module, []entity.Status, error) {
	var allModules []entity.Module
	var statusOrder []string
	statusByID := make(map[string]entity.Status)

	for _, project := range projects {
		combined, err := fetch(ctx, project.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("fetch modules for project %s: %w", project.ID, err)
		}

		for _, status := range combined.Statuses {
			if _, seen := statusByID[status.ID]; !seen {
				statusOrder = append(statusOrder, status.ID)
			}
			statusByID[status.ID] = status
		}

		for _, module := range combined.Modules {
			if status, ok := statusByID[module.StatusID]; ok {
				resolved := status
				module.Status = &resolved
			} else {
				module.Status = &entity.Status{ID: module.StatusID, Label: "Unknown"}
			}
			allModules = append(allModules, module)
		}
	}

	statuses := make([]entity.Status, 0, len(statusOrder))
	for _, id := range statusOrder {
		statuses = append(statuses, statusByID[id])
	}
	return allModules, statuses, nil
}

func (h *ModuleHandler) Page(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	data := pageData(r, current, "Module Management", "manageModules")

	projects, err := h.api.ListProjects(r.Context())
	if err != nil {
		fmt.Printf("fetch projects failed: %v\n", err)
		data["Error"] = api.UserMessage(err)
		renderTemplate(w, h.tmpl, "manage_modules.html", data)
		return
	}

	modules, statuses, err := aggregateModules(r.Context(), projects, h.api.ModulesStatuses)
	if err != nil {
		fmt.Printf("aggregate modules failed: %v\n", err)
		data["Error"] = api.UserMessage(err)
	}

	data["Projects"] = projects
	data["Modules"] = modules
	data["Statuses"] = statuses
	data["Editing"] = false

	if editID := r.URL.Query().Get("edit"); editID != "" {
		for _, module := range modules {
			if module.ID == editID {
				data["Editing"] = true
				data["Module"] = module
				break
			}
		}
	}

	renderTemplate(w, h.tmpl, "manage_modules.html", data)
}

// Submit adds or updates a module; the hidden module_id field selects update.
func (h *ModuleHandler) Submit(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if r.Method != http.MethodPost {
		h.Page(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	estimatedHours, _ := strconv.Atoi(r.FormValue("estimatedHours"))
	form := moduleForm{
		ProjectID:      r.FormValue("project_id"),
		ModuleName:     strings.TrimSpace(r.FormValue("moduleName")),
		Description:    strings.TrimSpace(r.FormValue("description")),
		EstimatedHours: estimatedHours,
		StatusID:       r.FormValue("status"),
		StartDate:      r.FormValue("startDate"),
	}
	moduleID := r.FormValue("module_id")

	target := dashboardPath(current.Role, "manageModules")
	if err := validateModuleForm(form); err != nil {
		redirectBack(w, r, target, map[string]string{"error": err.Error()})
		return
	}

	// Project name is denormalized into the module at write time.
	projectName := "Unknown"
	if projects, err := h.api.ListProjects(r.Context()); err == nil {
		for _, project := range projects {
			if project.ID == form.ProjectID {
				projectName = project.Title
				break
			}
		}
	}

	input := entity.ModuleInput{
		ProjectID:      form.ProjectID,
		ProjectName:    projectName,
		ModuleName:     form.ModuleName,
		Description:    form.Description,
		EstimatedHours: form.EstimatedHours,
		StatusID:       form.StatusID,
		StartDate:      form.StartDate,
	}

	var err error
	if moduleID != "" {
		err = h.api.UpdateModule(r.Context(), moduleID, input)
	} else {
		err = h.api.CreateModule(r.Context(), input)
	}
	if err != nil {
		fmt.Printf("module submit failed: %v\n", err)
		redirectBack(w, r, target, map[string]string{"error": api.UserMessage(err)})
		return
	}

	message := "Module added successfully"
	if moduleID != "" {
		message = "Module updated successfully"
	}
	redirectBack(w, r, target, map[string]string{"message": message})
}

func (h *ModuleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok || r.Method != http.MethodPost {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	target := dashboardPath(current.Role, "manageModules")
	moduleID := r.FormValue("module_id")
	if moduleID == "" {
		redirectBack(w, r, target, map[string]string{"error": "Missing module id"})
		return
	}

	if err := h.api.DeleteModule(r.Context(), moduleID); err != nil {
		fmt.Printf("delete module %s failed: %v\n", moduleID, err)
		redirectBack(w, r, target, map[string]string{"error": api.UserMessage(err)})
		return
	}
	redirectBack(w, r, target, map[string]string{"message": "Module deleted successfully"})
}
