package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// MaskedValueSentinel replaces ENV_VAR values on every read path except reveal.
const MaskedValueSentinel = "••••••"

// MaxPromptContentLen caps PROMPT content length in characters.
const MaxPromptContentLen = 10_000

// MaxNotesLen caps the free-form notes field in characters.
const MaxNotesLen = 10_000

// envVarKeyRe matches uppercase alphanumeric keys with underscores.
var envVarKeyRe = regexp.MustCompile(`^[A-Z0-9_]+$`)

// EnvVarFields holds the ENV_VAR variant payload.
// Value is sensitive and must never be serialized unmasked outside reveal.
type EnvVarFields struct {
	Key   string
	Value string
}

// PromptFields holds the PROMPT variant payload.
type PromptFields struct {
	Title   string
	Content string
}

// DocLinkFields holds the DOC_LINK variant payload.
type DocLinkFields struct {
	Title string
	URL   string
	Label *string
}

// Artifact is the unit of stored content. Exactly one of EnvVar, Prompt,
// DocLink is non-nil, matching Kind. Kind is immutable after creation.
type Artifact struct {
	ID          uuid.UUID
	WorkspaceID uuid.UUID
	Kind        ArtifactKind
	Environment Environment
	Notes       *string
	TagIDs      []uuid.UUID
	Tags        []Tag
	CreatedAt   time.Time
	UpdatedAt   time.Time

	EnvVar  *EnvVarFields
	Prompt  *PromptFields
	DocLink *DocLinkFields
}

// Identifier returns the artifact's primary identifier: the ENV_VAR key or
// the PROMPT/DOC_LINK title.
func (a *Artifact) Identifier() string {
	switch a.Kind {
	case ArtifactKindEnvVar:
		if a.EnvVar != nil {
			return a.EnvVar.Key
		}
	case ArtifactKindPrompt:
		if a.Prompt != nil {
			return a.Prompt.Title
		}
	case ArtifactKindDocLink:
		if a.DocLink != nil {
			return a.DocLink.Title
		}
	}
	return ""
}

// IdentifierField returns the field name that carries the primary identifier
// for the artifact's kind ("key" or "title"). Used in conflict errors.
func (a *Artifact) IdentifierField() string {
	if a.Kind == ArtifactKindEnvVar {
		return "key"
	}
	return "title"
}

// Validate checks kind-specific rules. Dispatch is a single exhaustive match
// on the kind tag; the variant payload for the declared kind must be present
// and the others absent.
func (a *Artifact) Validate() error {
	var errs []FieldError

	if !a.Kind.IsValid() {
		return NewValidationError("kind", "must be one of ENV_VAR, PROMPT, DOC_LINK")
	}
	if !a.Environment.IsValid() {
		errs = append(errs, FieldError{Field: "environment", Message: "must be one of DEV, STAGING, PROD"})
	}
	if a.Notes != nil && len(*a.Notes) > MaxNotesLen {
		errs = append(errs, FieldError{Field: "notes", Message: fmt.Sprintf("max %d characters", MaxNotesLen)})
	}

	switch a.Kind {
	case ArtifactKindEnvVar:
		errs = append(errs, a.validateEnvVar()...)
	case ArtifactKindPrompt:
		errs = append(errs, a.validatePrompt()...)
	case ArtifactKindDocLink:
		errs = append(errs, a.validateDocLink()...)
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func (a *Artifact) validateEnvVar() []FieldError {
	if a.EnvVar == nil {
		return []FieldError{{Field: "key", Message: "ENV_VAR requires a key"}}
	}
	var errs []FieldError
	if a.EnvVar.Key == "" {
		errs = append(errs, FieldError{Field: "key", Message: "ENV_VAR requires a key"})
	} else if !envVarKeyRe.MatchString(a.EnvVar.Key) {
		errs = append(errs, FieldError{Field: "key", Message: "must be uppercase alphanumeric with underscores"})
	}
	if a.EnvVar.Value == "" {
		errs = append(errs, FieldError{Field: "value", Message: "ENV_VAR requires a value"})
	}
	if a.Prompt != nil || a.DocLink != nil {
		errs = append(errs, FieldError{Field: "kind", Message: "ENV_VAR cannot carry prompt or link fields"})
	}
	return errs
}

func (a *Artifact) validatePrompt() []FieldError {
	if a.Prompt == nil {
		return []FieldError{{Field: "title", Message: "PROMPT requires a title"}}
	}
	var errs []FieldError
	if a.Prompt.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "PROMPT requires a title"})
	}
	if a.Prompt.Content == "" {
		errs = append(errs, FieldError{Field: "content", Message: "PROMPT requires content"})
	} else if len(a.Prompt.Content) > MaxPromptContentLen {
		errs = append(errs, FieldError{Field: "content", Message: fmt.Sprintf("max %d characters", MaxPromptContentLen)})
	}
	if a.EnvVar != nil || a.DocLink != nil {
		errs = append(errs, FieldError{Field: "kind", Message: "PROMPT cannot carry env var or link fields"})
	}
	return errs
}

func (a *Artifact) validateDocLink() []FieldError {
	if a.DocLink == nil {
		return []FieldError{{Field: "title", Message: "DOC_LINK requires a title"}}
	}
	var errs []FieldError
	if a.DocLink.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "DOC_LINK requires a title"})
	}
	if a.DocLink.URL == "" {
		errs = append(errs, FieldError{Field: "url", Message: "DOC_LINK requires a URL"})
	} else if !isAbsoluteURL(a.DocLink.URL) {
		errs = append(errs, FieldError{Field: "url", Message: "must be an absolute URL"})
	}
	if a.EnvVar != nil || a.Prompt != nil {
		errs = append(errs, FieldError{Field: "kind", Message: "DOC_LINK cannot carry env var or prompt fields"})
	}
	return errs
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}

// CopyForEnvironment builds an unsaved duplicate of the artifact in a
// different environment: same kind and kind-specific fields (value included),
// fresh id, no tags carried over.
func (a *Artifact) CopyForEnvironment(target Environment) *Artifact {
	dup := &Artifact{
		WorkspaceID: a.WorkspaceID,
		Kind:        a.Kind,
		Environment: target,
		Notes:       cloneStringPtr(a.Notes),
	}
	switch a.Kind {
	case ArtifactKindEnvVar:
		if a.EnvVar != nil {
			f := *a.EnvVar
			dup.EnvVar = &f
		}
	case ArtifactKindPrompt:
		if a.Prompt != nil {
			f := *a.Prompt
			dup.Prompt = &f
		}
	case ArtifactKindDocLink:
		if a.DocLink != nil {
			f := *a.DocLink
			f.Label = cloneStringPtr(a.DocLink.Label)
			dup.DocLink = &f
		}
	}
	return dup
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
