package handler

import (
	"testing"
	"time"
)

var formNow = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

func validProjectForm() projectForm {
	return projectForm{
		Title:          "Billing revamp",
		Description:    "Rewrite the billing pipeline",
		Technology:     "Go",
		EstimatedHours: 5,
		StartDate:      "2026-01-12",
		CompletionDate: "2026-01-20",
		ManagerEmail:   "manager@example.com",
	}
}

func TestValidateProjectFormAccepted(t *testing.T) {
	if err := validateProjectForm(validProjectForm(), formNow); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestValidateProjectFormStartInPast(t *testing.T) {
	form := validProjectForm()
	form.StartDate = "2026-01-09"
	err := validateProjectForm(form, formNow)
	if err == nil || err.Error() != "Start date must be in the future" {
		t.Fatalf("expected start date error, got %v", err)
	}
}

func TestValidateProjectFormCompletionInPast(t *testing.T) {
	form := validProjectForm()
	form.StartDate = "2026-01-12"
	form.CompletionDate = "2026-01-05"
	err := validateProjectForm(form, formNow)
	if err == nil || err.Error() != "Completion date must be in the future" {
		t.Fatalf("expected completion date error, got %v", err)
	}
}

func TestValidateProjectFormIntervalTooShort(t *testing.T) {
	// Start and completion on the same day leave zero hours for a 5-hour
	// estimate.
	form := validProjectForm()
	form.CompletionDate = form.StartDate
	err := validateProjectForm(form, formNow)
	if err == nil || err.Error() != "Completion date must be at least estimated hours apart from start date" {
		t.Fatalf("expected interval error, got %v", err)
	}

	// One day apart covers any estimate up to 24 hours.
	form.CompletionDate = "2026-01-13"
	if err := validateProjectForm(form, formNow); err != nil {
		t.Fatalf("expected one-day interval to satisfy a 5-hour estimate, got %v", err)
	}
}

func TestValidateProjectFormBadManagerEmail(t *testing.T) {
	form := validProjectForm()
	form.ManagerEmail = "not-an-email"
	if err := validateProjectForm(form, formNow); err == nil {
		t.Fatal("expected email validation error")
	}
}

func TestValidateProjectFormBadDate(t *testing.T) {
	form := validProjectForm()
	form.StartDate = "12.01.2026"
	err := validateProjectForm(form, formNow)
	if err == nil || err.Error() != "Start date is not a valid date" {
		t.Fatalf("expected date parse error, got %v", err)
	}
}

func TestValidateModuleForm(t *testing.T) {
	form := moduleForm{
		ProjectID:      "p1",
		ModuleName:     "Auth",
		EstimatedHours: 8,
	}
	if err := validateModuleForm(form); err != nil {
		t.Fatalf("expected valid module form, got %v", err)
	}

	form.ProjectID = ""
	err := validateModuleForm(form)
	if err == nil || err.Error() != "Please select a project before submitting" {
		t.Fatalf("expected project error, got %v", err)
	}

	form.ProjectID = "p1"
	form.EstimatedHours = 0
	err = validateModuleForm(form)
	if err == nil || err.Error() != "Estimated Hours must be greater than zero" {
		t.Fatalf("expected hours error, got %v", err)
	}
}

func TestValidateTaskFormMinutesNotGuarded(t *testing.T) {
	// Unlike module hours, task minutes carry no positivity rule. A negative
	// value sails through.
	form := taskForm{
		Title:        "Wire login form",
		Priority:     "High",
		Description:  "Hook the form up to the backend",
		TotalMinutes: -5,
		ModuleID:     "m1",
		ProjectID:    "p1",
		StatusID:     "s1",
	}
	if err := validateTaskForm(form); err != nil {
		t.Fatalf("expected negative minutes to pass, got %v", err)
	}

	form.TotalMinutes = 0
	if err := validateTaskForm(form); err != nil {
		t.Fatalf("expected zero minutes to pass, got %v", err)
	}
}

func TestValidateTaskFormBadPriority(t *testing.T) {
	form := taskForm{
		Title:        "Wire login form",
		Priority:     "Critical",
		Description:  "Hook the form up to the backend",
		TotalMinutes: 90,
		ModuleID:     "m1",
		ProjectID:    "p1",
		StatusID:     "s1",
	}
	if err := validateTaskForm(form); err == nil {
		t.Fatal("expected priority validation error")
	}
}

func TestValidateUserForm(t *testing.T) {
	form := userForm{
		FirstName: "Dana",
		Role:      "developer",
		Email:     "dana@example.com",
		Password:  "secret",
	}
	if err := validateUserForm(form); err != nil {
		t.Fatalf("expected valid user form, got %v", err)
	}

	form.Role = "superuser"
	if err := validateUserForm(form); err == nil {
		t.Fatal("expected role validation error")
	}
}
