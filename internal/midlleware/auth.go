package middleware

import (
	"net/http"
	"strings"

	"taskhub/internal/entity"
	"taskhub/internal/session"
)

// rolePrefixes maps URL prefixes to the role required to visit them. Paths
// outside this map (and outside the public set) redirect to /login.
var rolePrefixes = []struct {
	prefix string
	role   string
}{
	{"/profile/admin", entity.RoleAdmin},
	{"/admin/", entity.RoleAdmin},
	{"/profile/manager", entity.RoleManager},
	{"/manager/", entity.RoleManager},
	{"/profile/developer", entity.RoleDeveloper},
	{"/developer/", entity.RoleDeveloper},
}

// RequireAuth gates every navigation on the session's role. The role is
// re-read from the cookie on each request, so an expired session falls back
// to the login redirect without any refresh logic.
func RequireAuth(sessions *session.Manager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		publicPaths := []string{
			"/login",
			"/logout",
			"/static/",
			"/messages.txt",
		}

		path := r.URL.Path

		for _, publicPath := range publicPaths {
			if path == publicPath || strings.HasPrefix(path, publicPath) {
				next.ServeHTTP(w, r)
				return
			}
		}

		current, ok := sessions.Get(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		for _, route := range rolePrefixes {
			if path == route.prefix || strings.HasPrefix(path, route.prefix) {
				if current.Role != route.role {
					http.Redirect(w, r, "/login", http.StatusSeeOther)
					return
				}
				next.ServeHTTP(w, r)
				return
			}
		}

		// Unknown paths always land on the login view.
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})
}
