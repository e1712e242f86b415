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

// projectView is a project card with its assigned developers and modules
// (statuses already resolved to labels).
type projectView struct {
	entity.Project
	AssignedDevelopers []entity.User
	Modules            []entity.Module
}

// ProjectsViewHandler renders the read-only project cards for managers and
// developers.
type ProjectsViewHandler struct {
	api      *api.Client
	sessions *session.Manager
	tmpl     *template.Template
}

func NewProjectsViewHandler(apiClient *api.Client, sessions *session.Manager, templatesDir string) *ProjectsViewHandler {
	return &ProjectsViewHandler{
		api:      apiClient,
		sessions: sessions,
		tmpl:     parsePage(templatesDir, "projects_view.html"),
	}
}

func (h *ProjectsViewHandler) Page(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	var projects []entity.Project
	var err error
	if current.Role == entity.RoleManager {
		projects, err = h.api.ManagerProjects(r.Context(), current.UserID)
	} else {
		projects, err = h.api.DeveloperProjects(r.Context(), current.UserID)
	}

	data := pageData(r, current, "Projects", "viewProjects")
	if err != nil {
		fmt.Printf("fetch projects failed: %v\n", err)
		data["Error"] = api.UserMessage(err)
		renderTemplate(w, h.tmpl, "projects_view.html", data)
		return
	}

	data["Projects"] = h.loadProjectViews(r.Context(), projects)
	renderTemplate(w, h.tmpl, "projects_view.html", data)
}

// loadProjectViews fetches each project's developers and modules
// concurrently. Module statuses resolve through the per-project status list;
// unresolved references show as "Unknown".
func (h *ProjectsViewHandler) loadProjectViews(ctx context.Context, projects []entity.Project) []projectView {
	views := make([]projectView, len(projects))

	var wg sync.WaitGroup
	for i, project := range projects {
		views[i] = projectView{Project: project}

		wg.Add(1)
		go func(i int, project entity.Project) {
			defer wg.Done()

			if developers, err := h.api.ProjectDevelopers(ctx, project.ID); err == nil {
				views[i].AssignedDevelopers = developers
			}

			combined, err := h.api.ModulesStatuses(ctx, project.ID)
			if err != nil {
				return
			}
			statusByID := make(map[string]entity.Status, len(combined.Statuses))
			for _, status := range combined.Statuses {
				statusByID[status.ID] = status
			}
			for j := range combined.Modules {
				if status, found := statusByID[combined.Modules[j].StatusID]; found {
					resolved := status
					combined.Modules[j].Status = &resolved
				} else {
					combined.Modules[j].Status = &entity.Status{ID: combined.Modules[j].StatusID, Label: "Unknown"}
				}
			}
			views[i].Modules = combined.Modules
		}(i, project)
	}
	wg.Wait()

	return views
}
