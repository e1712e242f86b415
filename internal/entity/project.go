package entity

// Project mirrors the backend project document. Dates stay as the
// yyyy-mm-dd strings the backend stores; the frontend only compares and
// redisplays them.
type Project struct {
	ID             string   `json:"_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Technology     string   `json:"technology"`
	EstimatedHours int      `json:"estimatedHours"`
	StartDate      string   `json:"startDate"`
	CompletionDate string   `json:"completionDate"`
	ManagerEmail   string   `json:"manager_email"`
	Developers     []string `json:"developers"`
}
