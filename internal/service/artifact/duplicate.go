package artifact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/pkg/ctxutil"
)

// Duplicate copies an artifact into another enabled environment of the same
// workspace. ENV_VAR values are carried over as-is; tags are not.
func (s *Service) Duplicate(ctx context.Context, input DuplicateArtifactInput) (*domain.Artifact, error) {
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

	src, err := s.artifacts.GetByID(ctx, w.ID, input.ArtifactID)
	if err != nil {
		return nil, err
	}

	target, _ := domain.ParseEnvironment(input.TargetEnvironment)
	if target == src.Environment {
		return nil, domain.NewValidationError("environment", "target must differ from the source environment")
	}
	if !w.EnvironmentEnabled(target) {
		return nil, domain.NewValidationError("environment", "not enabled for this workspace")
	}

	taken, err := s.artifacts.IdentifierExists(ctx, w.ID, src.Kind, target, src.Identifier(), uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("check artifact identifier: %w", err)
	}
	if taken {
		return nil, &domain.ConflictError{Field: src.IdentifierField(), Value: src.Identifier()}
	}

	dup := src.CopyForEnvironment(target)
	dup.ID = uuid.New()
	now := time.Now().UTC()
	dup.CreatedAt = now
	dup.UpdatedAt = now

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.artifacts.Create(txCtx, dup); createErr != nil {
			return fmt.Errorf("create duplicate: %w", createErr)
		}
		return s.recordAudit(txCtx, dup, identity, domain.AuditActionCreate, map[string]any{
			"duplicated_from": src.ID.String(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "artifact duplicated",
		slog.String("workspace_id", w.ID.String()),
		slog.String("source_id", src.ID.String()),
		slog.String("artifact_id", dup.ID.String()),
		slog.String("environment", target.String()),
	)

	return s.artifacts.GetByID(ctx, w.ID, dup.ID)
}
