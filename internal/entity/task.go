package entity

// Task priorities accepted by the backend.
var TaskPriorities = []string{"Low", "Medium", "High", "Urgent"}

// Task mirrors the backend task document.
type Task struct {
	ID           string `json:"_id"`
	Title        string `json:"title"`
	Priority     string `json:"priority"`
	Description  string `json:"description"`
	TotalMinutes int    `json:"totalMinutes"`
	ModuleID     string `json:"module_id"`
	ProjectID    string `json:"project_id"`
	StatusID     string `json:"status_id"`
	ImageURL     string `json:"ui_image_url"`
}

// TaskInput is the JSON update payload. Image is not part of it: images can
// only be attached on create (multipart), never replaced on update.
type TaskInput struct {
	Title        string `json:"title"`
	Priority     string `json:"priority"`
	Description  string `json:"description"`
	TotalMinutes int    `json:"totalMinutes"`
	ModuleID     string `json:"module_id"`
	ProjectID    string `json:"project_id"`
	StatusID     string `json:"status_id"`
}

// ValidPriority reports whether p is one of the accepted task priorities.
func ValidPriority(p string) bool {
	for _, v := range TaskPriorities {
		if v == p {
			return true
		}
	}
	return false
}
