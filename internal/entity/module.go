package entity

// Module mirrors the backend module document. StatusID holds the raw status
// reference; Status is filled client-side when the reference resolves.
type Module struct {
	ID             string `json:"_id"`
	ProjectID      string `json:"projectId"`
	ProjectName    string `json:"project_name"`
	ModuleName     string `json:"moduleName"`
	Description    string `json:"description"`
	EstimatedHours int    `json:"estimatedHours"`
	StartDate      string `json:"startDate"`
	StatusID       string `json:"status"`

	Status *Status `json:"-"`
}

// ModuleInput is the create/update payload for a module.
type ModuleInput struct {
	ProjectID      string `json:"projectId"`
	ProjectName    string `json:"projectName,omitempty"`
	ModuleName     string `json:"moduleName"`
	Description    string `json:"description"`
	EstimatedHours int    `json:"estimatedHours"`
	StatusID       string `json:"status"`
	StartDate      string `json:"startDate"`
}

// ModulesStatuses is the combined payload of /status/{projectId}/modules-statuses/.
type ModulesStatuses struct {
	Modules  []Module `json:"modules"`
	Statuses []Status `json:"statuses"`
}
