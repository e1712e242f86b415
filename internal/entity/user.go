package entity

// Roles known to the frontend. Backend role strings outside this set never
// match a protected route.
const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleDeveloper = "developer"
)

// User is the transient copy of a backend user document.
type User struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstname"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// TaskUser is the shape the backend returns for users assigned to a task.
type TaskUser struct {
	UserID    string `json:"user_id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	FullName  string `json:"full_name"`
}

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleDeveloper:
		return true
	}
	return false
}
