package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

type projectForm struct {
	Title          string `validate:"required"`
	Description    string `validate:"required"`
	Technology     string `validate:"required"`
	EstimatedHours int    `validate:"required,gt=0"`
	StartDate      string `validate:"required"`
	CompletionDate string `validate:"required"`
	ManagerEmail   string `validate:"required,email"`
}

type userForm struct {
	FirstName string `validate:"required"`
	Role      string `validate:"required,oneof=manager developer"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required"`
}

type moduleForm struct {
	ProjectID      string `validate:"required"`
	ModuleName     string `validate:"required"`
	Description    string
	EstimatedHours int `validate:"required,gt=0"`
	StatusID       string
	StartDate      string
}

// taskForm deliberately has no check on TotalMinutes: modules validate
// hours > 0, tasks accept any minutes value, zero and negative included.
type taskForm struct {
	Title        string `validate:"required"`
	Priority     string `validate:"required,oneof=Low Medium High Urgent"`
	Description  string `validate:"required"`
	TotalMinutes int
	ModuleID     string `validate:"required"`
	ProjectID    string `validate:"required"`
	StatusID     string `validate:"required"`
}

// validateProjectForm runs the struct rules plus the date invariants: both
// dates strictly in the future and the interval at least as long as the
// estimate.
func validateProjectForm(form projectForm, now time.Time) error {
	if err := validate.Struct(form); err != nil {
		return formMessage(err)
	}

	startDate, err := time.Parse(dateLayout, form.StartDate)
	if err != nil {
		return errors.New("Start date is not a valid date")
	}
	completionDate, err := time.Parse(dateLayout, form.CompletionDate)
	if err != nil {
		return errors.New("Completion date is not a valid date")
	}

	if !startDate.After(now) {
		return errors.New("Start date must be in the future")
	}
	if !completionDate.After(now) {
		return errors.New("Completion date must be in the future")
	}
	if completionDate.Sub(startDate) < time.Duration(form.EstimatedHours)*time.Hour {
		return errors.New("Completion date must be at least estimated hours apart from start date")
	}
	return nil
}

func validateUserForm(form userForm) error {
	if err := validate.Struct(form); err != nil {
		return formMessage(err)
	}
	return nil
}

func validateModuleForm(form moduleForm) error {
	if form.ProjectID == "" {
		return errors.New("Please select a project before submitting")
	}
	if form.EstimatedHours <= 0 {
		return errors.New("Estimated Hours must be greater than zero")
	}
	if err := validate.Struct(form); err != nil {
		return formMessage(err)
	}
	return nil
}

func validateTaskForm(form taskForm) error {
	if err := validate.Struct(form); err != nil {
		return formMessage(err)
	}
	return nil
}

// formMessage turns the first validator failure into a user-facing sentence.
func formMessage(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return errors.New("Invalid form submission")
	}

	fe := fieldErrors[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "email":
		return fmt.Errorf("%s must be a valid email address", fe.Field())
	case "gt":
		return fmt.Errorf("%s must be greater than %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Errorf("%s must be one of: %s", fe.Field(), fe.Param())
	}
	return fmt.Errorf("%s is invalid", fe.Field())
}
