package entity

// Status is a server-defined enumeration value attached to modules and tasks.
type Status struct {
	ID    string `json:"_id"`
	Label string `json:"status"`
}

// StatusLabelAssigned is the label the backend gives freshly assigned work;
// the task form preselects it when present.
const StatusLabelAssigned = "Assigned"
