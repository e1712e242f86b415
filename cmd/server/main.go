package main

import (
	"fmt"
	"net/http"
	"os"

	"taskhub/internal/api"
	"taskhub/internal/config"
	"taskhub/internal/handler"
	middleware "taskhub/internal/midlleware"
	"taskhub/internal/session"
)

func main() {
	cfg := config.Load()

	apiClient := api.NewClient(cfg.APIBaseURL)
	sessions := session.NewManager(cfg.SessionKey)

	login := handler.NewLoginHandler(apiClient, sessions, cfg.TemplatesDir)
	home := handler.NewHomeHandler(sessions, cfg.TemplatesDir, cfg.MessagesPath)
	users := handler.NewUserHandler(apiClient, sessions, cfg.TemplatesDir)
	projects := handler.NewProjectHandler(apiClient, sessions, cfg.TemplatesDir)
	modules := handler.NewModuleHandler(apiClient, sessions, cfg.TemplatesDir)
	tasks := handler.NewTaskHandler(apiClient, sessions, cfg.TemplatesDir, cfg.UploadMaxBytes)
	assign := handler.NewAssignHandler(apiClient, sessions, cfg.TemplatesDir)
	taskList := handler.NewTasksHandler(apiClient, sessions, cfg.TemplatesDir)
	projectsView := handler.NewProjectsViewHandler(apiClient, sessions, cfg.TemplatesDir)

	dashboard := handler.NewDashboardHandler(
		sessions, cfg.TemplatesDir,
		home, users, projects, modules, tasks, assign, taskList, projectsView,
	)

	mux := http.NewServeMux()

	mux.HandleFunc("/login", login.Login)
	mux.HandleFunc("/logout", login.Logout)

	mux.HandleFunc("/profile/admin", dashboard.Admin)
	mux.HandleFunc("/profile/manager", dashboard.Manager)
	mux.HandleFunc("/profile/developer", dashboard.Developer)

	// Admin pages and actions.
	mux.HandleFunc("/admin/add_user", users.Create)
	mux.HandleFunc("/admin/users", users.ListPage)
	mux.HandleFunc("/admin/users/delete", users.Delete)
	mux.HandleFunc("/admin/add_project", projects.Submit)
	mux.HandleFunc("/admin/projects", projects.ListPage)
	mux.HandleFunc("/admin/projects/delete", projects.Delete)
	mux.HandleFunc("/admin/assign_developers", assign.AssignToProject)
	mux.HandleFunc("/admin/remove_developer", assign.RemoveFromProject)
	mux.HandleFunc("/admin/add_module", modules.Submit)
	mux.HandleFunc("/admin/modules/delete", modules.Delete)
	mux.HandleFunc("/admin/add_task", tasks.Create)

	// Manager pages and actions.
	mux.HandleFunc("/manager/add_task", tasks.Create)
	mux.HandleFunc("/manager/edit_task", tasks.EditPage)
	mux.HandleFunc("/manager/tasks/update", tasks.Update)
	mux.HandleFunc("/manager/add_module", modules.Submit)
	mux.HandleFunc("/manager/modules/delete", modules.Delete)
	mux.HandleFunc("/manager/assign_task", assign.AssignToTask)
	mux.HandleFunc("/manager/tasks/status", taskList.UpdateStatus)
	mux.HandleFunc("/manager/tasks/deassign", taskList.Deassign)

	// Developer actions.
	mux.HandleFunc("/developer/tasks/status", taskList.UpdateStatus)

	// Static assets. messages.txt is served directly so the home panels (and
	// anything else) can fetch it with a cache-busting query parameter.
	mux.HandleFunc("/messages.txt", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, cfg.MessagesPath)
	})
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})

	fmt.Printf("frontend listening on %s, backend at %s\n", cfg.Addr, cfg.APIBaseURL)
	if err := http.ListenAndServe(cfg.Addr, middleware.RequireAuth(sessions, mux)); err != nil {
		fmt.Printf("server error: %v\n", err)
		os.Exit(1)
	}
}
