package workspace

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
)

const (
	maxNameLen        = 255
	maxDescriptionLen = 1000
)

// nameRe limits workspace names to letters, digits, spaces and -_. runes.
var nameRe = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.]+$`)

func validateName(name string, errs []domain.FieldError) []domain.FieldError {
	switch {
	case name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case len(name) > maxNameLen:
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxNameLen)})
	case !nameRe.MatchString(name):
		errs = append(errs, domain.FieldError{Field: "name", Message: "may contain letters, digits, spaces, hyphens, underscores and periods"})
	}
	return errs
}

// CreateWorkspaceInput holds the parameters for creating a workspace.
type CreateWorkspaceInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateWorkspaceInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(strings.TrimSpace(i.Name), errs)
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", maxDescriptionLen)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateWorkspaceInput holds the parameters for a partial workspace update.
type UpdateWorkspaceInput struct {
	WorkspaceID uuid.UUID
	Name        *string
	Description *string // nil = don't change; ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateWorkspaceInput) Validate() error {
	var errs []domain.FieldError

	if i.WorkspaceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "workspace_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(strings.TrimSpace(*i.Name), errs)
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", maxDescriptionLen)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetEnvironmentsInput holds the parameters for replacing the enabled
// environment set.
type SetEnvironmentsInput struct {
	WorkspaceID  uuid.UUID
	Environments []string
}

// Validate checks all fields and collects all errors.
func (i SetEnvironmentsInput) Validate() error {
	var errs []domain.FieldError

	if i.WorkspaceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "workspace_id", Message: "required"})
	}
	if len(i.Environments) == 0 {
		errs = append(errs, domain.FieldError{Field: "enabledEnvironments", Message: "at least one environment must stay enabled"})
	}
	for _, raw := range i.Environments {
		if _, ok := domain.ParseEnvironment(raw); !ok {
			errs = append(errs, domain.FieldError{Field: "enabledEnvironments", Message: fmt.Sprintf("unknown environment %q", raw)})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Parsed converts the raw slugs into a normalized, deduplicated set.
// Call only after Validate has passed.
func (i SetEnvironmentsInput) Parsed() []domain.Environment {
	envs := make([]domain.Environment, 0, len(i.Environments))
	for _, raw := range i.Environments {
		if env, ok := domain.ParseEnvironment(raw); ok {
			envs = append(envs, env)
		}
	}
	return domain.NormalizeEnvironments(envs)
}
