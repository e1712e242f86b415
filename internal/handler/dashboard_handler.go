package handler

import (
	"html/template"
	"net/http"

	"taskhub/internal/session"
)

// DashboardHandler dispatches /profile/{role}?tab=... to the matching panel.
// An unknown tab renders the dashboard shell with no panel, mirroring how
// the tab parameter is never validated.
type DashboardHandler struct {
	sessions     *session.Manager
	shellTmpl    *template.Template
	home         *HomeHandler
	users        *UserHandler
	projects     *ProjectHandler
	modules      *ModuleHandler
	tasks        *TaskHandler
	assign       *AssignHandler
	taskList     *TasksHandler
	projectsView *ProjectsViewHandler
}

func NewDashboardHandler(
	sessions *session.Manager,
	templatesDir string,
	home *HomeHandler,
	users *UserHandler,
	projects *ProjectHandler,
	modules *ModuleHandler,
	tasks *TaskHandler,
	assign *AssignHandler,
	taskList *TasksHandler,
	projectsView *ProjectsViewHandler,
) *DashboardHandler {
	return &DashboardHandler{
		sessions:     sessions,
		shellTmpl:    parsePage(templatesDir, "dashboard.html"),
		home:         home,
		users:        users,
		projects:     projects,
		modules:      modules,
		tasks:        tasks,
		assign:       assign,
		taskList:     taskList,
		projectsView: projectsView,
	}
}

func (h *DashboardHandler) Admin(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("tab") {
	case "home":
		h.home.Page(w, r)
	case "users":
		h.users.ListPage(w, r)
	case "addUser":
		h.users.AddPage(w, r)
	case "addProject":
		h.projects.FormPage(w, r)
	case "listProjects":
		h.projects.ListPage(w, r)
	case "addDevelopers":
		h.assign.ProjectPage(w, r)
	case "manageModules":
		h.modules.Page(w, r)
	case "addTask":
		h.tasks.AddPage(w, r)
	default:
		h.shell(w, r, "Welcome Admin")
	}
}

func (h *DashboardHandler) Manager(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("tab") {
	case "home":
		h.home.Page(w, r)
	case "viewTasks":
		h.taskList.Page(w, r)
	case "viewProjects":
		h.projectsView.Page(w, r)
	case "assignTask":
		h.assign.TaskPage(w, r)
	case "manageModules":
		h.modules.Page(w, r)
	case "addTask":
		h.tasks.AddPage(w, r)
	default:
		h.shell(w, r, "Welcome Manager")
	}
}

func (h *DashboardHandler) Developer(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("tab") {
	case "home":
		h.home.Page(w, r)
	case "viewTasks":
		h.taskList.Page(w, r)
	case "viewProjects":
		h.projectsView.Page(w, r)
	default:
		h.shell(w, r, "Welcome Developer")
	}
}

func (h *DashboardHandler) shell(w http.ResponseWriter, r *http.Request, title string) {
	current, ok := h.sessions.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	data := pageData(r, current, title, "")
	renderTemplate(w, h.shellTmpl, "dashboard.html", data)
}
