package handler

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"path/filepath"

	"taskhub/internal/session"
)

// parsePage loads a page template together with the shared sidebar partial.
func parsePage(dir string, pages ...string) *template.Template {
	files := []string{filepath.Join(dir, "sidebar.html")}
	for _, page := range pages {
		files = append(files, filepath.Join(dir, page))
	}
	return template.Must(template.ParseFiles(files...))
}

// pageData is the base payload every page template receives. Panels add
// their own keys on top.
func pageData(r *http.Request, current session.Current, title, activeTab string) map[string]interface{} {
	return map[string]interface{}{
		"Title":     title,
		"Role":      current.Role,
		"Name":      current.Name,
		"ActiveTab": activeTab,
		"Error":     r.URL.Query().Get("error"),
		"Message":   r.URL.Query().Get("message"),
	}
}

// redirectBack sends the browser back to a dashboard tab with a one-shot
// error or message in the query string.
func redirectBack(w http.ResponseWriter, r *http.Request, target string, params map[string]string) {
	values := url.Values{}
	for key, value := range params {
		if value != "" {
			values.Set(key, value)
		}
	}
	if len(values) > 0 {
		separator := "?"
		if containsQuery(target) {
			separator = "&"
		}
		target = target + separator + values.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func containsQuery(target string) bool {
	for i := 0; i < len(target); i++ {
		if target[i] == '?' {
			return true
		}
	}
	return false
}

// dashboardPath is the tab URL for a role, e.g. /profile/manager?tab=viewTasks.
func dashboardPath(role, tab string) string {
	return fmt.Sprintf("/profile/%s?tab=%s", role, tab)
}

func renderTemplate(w http.ResponseWriter, tmpl *template.Template, name string, data interface{}) {
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		fmt.Printf("template %s render error: %v\n", name, err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
