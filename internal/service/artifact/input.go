package artifact

import (
	"strings"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
)

// CreateArtifactInput holds the parameters for creating an artifact.
// Kind-specific field rules are enforced by domain.Artifact.Validate after
// the input is assembled into an entity.
type CreateArtifactInput struct {
	WorkspaceID uuid.UUID
	Kind        string
	Environment string
	Key         *string
	Value       *string
	Title       *string
	Content     *string
	URL         *string
	Label       *string
	Notes       *string
	TagIDs      []uuid.UUID
}

// Validate checks the envelope fields; variant rules run on the entity.
func (i CreateArtifactInput) Validate() error {
	var errs []domain.FieldError

	if i.WorkspaceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "workspace_id", Message: "required"})
	}
	if !domain.ArtifactKind(strings.ToUpper(strings.TrimSpace(i.Kind))).IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be one of ENV_VAR, PROMPT, DOC_LINK"})
	}
	if _, ok := domain.ParseEnvironment(i.Environment); !ok {
		errs = append(errs, domain.FieldError{Field: "environment", Message: "must be one of DEV, STAGING, PROD"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// toArtifact assembles a domain entity from the input. Call only after
// Validate has passed; the entity still needs its own Validate.
func (i CreateArtifactInput) toArtifact() *domain.Artifact {
	kind := domain.ArtifactKind(strings.ToUpper(strings.TrimSpace(i.Kind)))
	env, _ := domain.ParseEnvironment(i.Environment)

	a := &domain.Artifact{
		ID:          uuid.New(),
		WorkspaceID: i.WorkspaceID,
		Kind:        kind,
		Environment: env,
		Notes:       normalizeNotes(i.Notes),
		TagIDs:      i.TagIDs,
	}

	switch kind {
	case domain.ArtifactKindEnvVar:
		a.EnvVar = &domain.EnvVarFields{Key: derefTrimmed(i.Key), Value: deref(i.Value)}
	case domain.ArtifactKindPrompt:
		a.Prompt = &domain.PromptFields{Title: derefTrimmed(i.Title), Content: domain.StripNulls(deref(i.Content))}
	case domain.ArtifactKindDocLink:
		a.DocLink = &domain.DocLinkFields{Title: derefTrimmed(i.Title), URL: derefTrimmed(i.URL), Label: domain.TrimToNil(i.Label)}
	}

	return a
}

// UpdateArtifactInput holds a partial patch. nil fields are left unchanged.
// Kind may be sent but must match the stored value; it never changes.
type UpdateArtifactInput struct {
	WorkspaceID uuid.UUID
	ArtifactID  uuid.UUID
	Kind        *string
	Environment *string
	Key         *string
	Value       *string
	Title       *string
	Content     *string
	URL         *string
	Label       *string
	Notes       *string
	TagIDs      []uuid.UUID // nil = don't change; empty = clear
}

// Validate checks the envelope fields.
func (i UpdateArtifactInput) Validate() error {
	var errs []domain.FieldError

	if i.WorkspaceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "workspace_id", Message: "required"})
	}
	if i.ArtifactID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "artifact_id", Message: "required"})
	}
	if i.Environment != nil {
		if _, ok := domain.ParseEnvironment(*i.Environment); !ok {
			errs = append(errs, domain.FieldError{Field: "environment", Message: "must be one of DEV, STAGING, PROD"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListArtifactsInput holds the optional server-side filters for a workspace
// artifact listing.
type ListArtifactsInput struct {
	WorkspaceID uuid.UUID
	Kind        *string
	Environment *string
	Search      string
	TagName     string
}

// Validate checks all fields and collects all errors.
func (i ListArtifactsInput) Validate() error {
	var errs []domain.FieldError

	if i.WorkspaceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "workspace_id", Message: "required"})
	}
	if i.Kind != nil && !domain.ArtifactKind(strings.ToUpper(strings.TrimSpace(*i.Kind))).IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be one of ENV_VAR, PROMPT, DOC_LINK"})
	}
	if i.Environment != nil {
		if _, ok := domain.ParseEnvironment(*i.Environment); !ok {
			errs = append(errs, domain.FieldError{Field: "environment", Message: "must be one of DEV, STAGING, PROD"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DuplicateArtifactInput holds the parameters for duplicating an artifact
// into a sibling environment.
type DuplicateArtifactInput struct {
	WorkspaceID       uuid.UUID
	ArtifactID        uuid.UUID
	TargetEnvironment string
}

// Validate checks all fields and collects all errors.
func (i DuplicateArtifactInput) Validate() error {
	var errs []domain.FieldError

	if i.WorkspaceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "workspace_id", Message: "required"})
	}
	if i.ArtifactID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "artifact_id", Message: "required"})
	}
	if _, ok := domain.ParseEnvironment(i.TargetEnvironment); !ok {
		errs = append(errs, domain.FieldError{Field: "environment", Message: "must be one of DEV, STAGING, PROD"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefTrimmed(s *string) string {
	return strings.TrimSpace(deref(s))
}

func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	clean := domain.StripNulls(*notes)
	return domain.TrimToNil(&clean)
}
