package artifact

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/pkg/ctxutil"
)

// Update applies a partial patch to an artifact. Kind is immutable: a patch
// naming a different kind is rejected, a patch repeating the stored kind is
// accepted as a no-op.
func (s *Service) Update(ctx context.Context, input UpdateArtifactInput) (*domain.Artifact, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	w, err := s.requireWorkspace(ctx, identity, input.WorkspaceID)
	if err != nil {
		return nil, err
	}

	a, err := s.artifacts.GetByID(ctx, w.ID, input.ArtifactID)
	if err != nil {
		return nil, err
	}

	if input.Kind != nil {
		requested := domain.ArtifactKind(strings.ToUpper(strings.TrimSpace(*input.Kind)))
		if requested != a.Kind {
			return nil, domain.NewValidationError("kind", "kind is immutable")
		}
	}

	changed := applyPatch(a, input)

	if input.Environment != nil {
		env, _ := domain.ParseEnvironment(*input.Environment)
		if !w.EnvironmentEnabled(env) {
			return nil, domain.NewValidationError("environment", "not enabled for this workspace")
		}
		if env != a.Environment {
			a.Environment = env
			changed = append(changed, "environment")
		}
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	if input.TagIDs != nil {
		if err := s.checkTags(ctx, w.ID, input.TagIDs); err != nil {
			return nil, err
		}
		a.TagIDs = input.TagIDs
		changed = append(changed, "tags")
	} else {
		// Leave existing links untouched.
		a.TagIDs = nil
	}

	taken, err := s.artifacts.IdentifierExists(ctx, w.ID, a.Kind, a.Environment, a.Identifier(), a.ID)
	if err != nil {
		return nil, fmt.Errorf("check artifact identifier: %w", err)
	}
	if taken {
		return nil, &domain.ConflictError{Field: a.IdentifierField(), Value: a.Identifier()}
	}

	a.UpdatedAt = time.Now().UTC()
	sort.Strings(changed)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if updErr := s.artifacts.Update(txCtx, a); updErr != nil {
			return fmt.Errorf("update artifact: %w", updErr)
		}
		return s.recordAudit(txCtx, a, identity, domain.AuditActionUpdate, map[string]any{
			"changed": changed,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "artifact updated",
		slog.String("workspace_id", w.ID.String()),
		slog.String("artifact_id", a.ID.String()),
		slog.Any("changed", changed),
	)

	return s.artifacts.GetByID(ctx, w.ID, a.ID)
}

// applyPatch copies present patch fields onto the artifact's variant and
// returns the names of changed fields. Values are excluded from the change
// list content — only field names are reported.
func applyPatch(a *domain.Artifact, input UpdateArtifactInput) []string {
	var changed []string

	set := func(dst *string, src *string, name string, transform func(string) string) {
		if src == nil {
			return
		}
		v := *src
		if transform != nil {
			v = transform(v)
		}
		if *dst != v {
			*dst = v
			changed = append(changed, name)
		}
	}

	switch a.Kind {
	case domain.ArtifactKindEnvVar:
		if a.EnvVar != nil {
			set(&a.EnvVar.Key, input.Key, "key", strings.TrimSpace)
			set(&a.EnvVar.Value, input.Value, "value", nil)
		}
	case domain.ArtifactKindPrompt:
		if a.Prompt != nil {
			set(&a.Prompt.Title, input.Title, "title", strings.TrimSpace)
			set(&a.Prompt.Content, input.Content, "content", domain.StripNulls)
		}
	case domain.ArtifactKindDocLink:
		if a.DocLink != nil {
			set(&a.DocLink.Title, input.Title, "title", strings.TrimSpace)
			set(&a.DocLink.URL, input.URL, "url", strings.TrimSpace)
			if input.Label != nil {
				a.DocLink.Label = domain.TrimToNil(input.Label)
				changed = append(changed, "label")
			}
		}
	}

	if input.Notes != nil {
		a.Notes = normalizeNotes(input.Notes)
		changed = append(changed, "notes")
	}

	return changed
}
