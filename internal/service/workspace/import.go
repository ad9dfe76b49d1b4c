package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/pkg/ctxutil"
)

// ImportArtifact is one artifact record in an import payload. Field presence
// follows the declared kind; invalid records are skipped, not fatal.
type ImportArtifact struct {
	Kind        string
	Environment string
	Key         *string
	Value       *string
	Title       *string
	Content     *string
	URL         *string
	Label       *string
	Notes       *string
}

// ImportWorkspaceInput holds an exported workspace payload.
type ImportWorkspaceInput struct {
	Name         string
	Description  *string
	Environments []string
	Artifacts    []ImportArtifact
}

// Validate checks the workspace-level fields; artifact records are validated
// individually during import.
func (i ImportWorkspaceInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(strings.TrimSpace(i.Name), errs)
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

// ImportResult reports the outcome of an import.
type ImportResult struct {
	Workspace *domain.Workspace
	Imported  int
	Skipped   int
}

// Import recreates a workspace from an exported payload. The name is
// de-duplicated with a " - N" suffix when taken; artifacts that fail
// validation or reference a disabled environment are skipped and counted.
func (s *Service) Import(ctx context.Context, input ImportWorkspaceInput) (*ImportResult, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name, err := s.availableName(ctx, identity, strings.TrimSpace(input.Name))
	if err != nil {
		return nil, err
	}

	envs := domain.AllEnvironments
	if len(input.Environments) > 0 {
		parsed := make([]domain.Environment, 0, len(input.Environments))
		for _, raw := range input.Environments {
			if env, ok := domain.ParseEnvironment(raw); ok {
				parsed = append(parsed, env)
			}
		}
		if normalized := domain.NormalizeEnvironments(parsed); len(normalized) > 0 {
			envs = normalized
		}
	}

	now := time.Now().UTC()
	w := &domain.Workspace{
		ID:                  uuid.New(),
		Name:                name,
		Description:         trimOrNil(input.Description),
		OwnerIdentity:       identity,
		EnabledEnvironments: envs,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	result := &ImportResult{Workspace: w}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.workspaces.Create(txCtx, w); createErr != nil {
			return fmt.Errorf("create workspace: %w", createErr)
		}

		for _, record := range input.Artifacts {
			a, ok := buildImportedArtifact(w, record, now)
			if !ok {
				result.Skipped++
				continue
			}
			if createErr := s.artifacts.Create(txCtx, a); createErr != nil {
				// Duplicate identifiers inside the payload land here.
				result.Skipped++
				continue
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "workspace imported",
		slog.String("workspace_id", w.ID.String()),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}

// availableName returns the first free variant of name for the owner:
// name, "name - 2", "name - 3", ...
func (s *Service) availableName(ctx context.Context, identity, name string) (string, error) {
	candidate := name
	for n := 2; ; n++ {
		taken, err := s.workspaces.NameExists(ctx, identity, candidate)
		if err != nil {
			return "", fmt.Errorf("check workspace name: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s - %d", name, n)
	}
}

// buildImportedArtifact converts one payload record into a validated domain
// artifact. Returns false when the record is invalid or its environment is
// not enabled on the target workspace.
func buildImportedArtifact(w *domain.Workspace, record ImportArtifact, now time.Time) (*domain.Artifact, bool) {
	env, ok := domain.ParseEnvironment(record.Environment)
	if !ok || !w.EnvironmentEnabled(env) {
		return nil, false
	}

	a := &domain.Artifact{
		ID:          uuid.New(),
		WorkspaceID: w.ID,
		Kind:        domain.ArtifactKind(strings.ToUpper(strings.TrimSpace(record.Kind))),
		Environment: env,
		Notes:       record.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	switch a.Kind {
	case domain.ArtifactKindEnvVar:
		if record.Key == nil || record.Value == nil {
			return nil, false
		}
		a.EnvVar = &domain.EnvVarFields{Key: *record.Key, Value: *record.Value}
	case domain.ArtifactKindPrompt:
		if record.Title == nil || record.Content == nil {
			return nil, false
		}
		a.Prompt = &domain.PromptFields{Title: *record.Title, Content: domain.StripNulls(*record.Content)}
	case domain.ArtifactKindDocLink:
		if record.Title == nil || record.URL == nil {
			return nil, false
		}
		a.DocLink = &domain.DocLinkFields{Title: *record.Title, URL: *record.URL, Label: record.Label}
	default:
		return nil, false
	}

	if a.Validate() != nil {
		return nil, false
	}
	return a, true
}
