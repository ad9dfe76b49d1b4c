package tag

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
)

// CreateTagInput holds the parameters for creating a tag.
type CreateTagInput struct {
	WorkspaceID uuid.UUID
	Name        string
}

// Validate checks all fields and collects all errors.
func (i CreateTagInput) Validate() error {
	var errs []domain.FieldError

	if i.WorkspaceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "workspace_id", Message: "required"})
	}
	errs = append(errs, validateName(i.Name)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTagInput holds the parameters for renaming a tag.
type UpdateTagInput struct {
	WorkspaceID uuid.UUID
	TagID       uuid.UUID
	Name        string
}

// Validate checks all fields and collects all errors.
func (i UpdateTagInput) Validate() error {
	var errs []domain.FieldError

	if i.WorkspaceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "workspace_id", Message: "required"})
	}
	if i.TagID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tag_id", Message: "required"})
	}
	errs = append(errs, validateName(i.Name)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if utf8.RuneCountInString(name) > domain.MaxTagNameLen {
		return []domain.FieldError{{
			Field:   "name",
			Message: fmt.Sprintf("must be at most %d characters", domain.MaxTagNameLen),
		}}
	}
	return nil
}
