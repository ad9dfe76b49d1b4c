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

// Create creates an artifact in an owned workspace. The environment must be
// enabled on the workspace at write time; identifier uniqueness is
// pre-checked for a friendly error and guaranteed by partial unique indexes
// under concurrency.
func (s *Service) Create(ctx context.Context, input CreateArtifactInput) (*domain.Artifact, error) {
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

	a := input.toArtifact()
	if !w.EnvironmentEnabled(a.Environment) {
		return nil, domain.NewValidationError("environment", "not enabled for this workspace")
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkTags(ctx, w.ID, a.TagIDs); err != nil {
		return nil, err
	}

	taken, err := s.artifacts.IdentifierExists(ctx, w.ID, a.Kind, a.Environment, a.Identifier(), a.ID)
	if err != nil {
		return nil, fmt.Errorf("check artifact identifier: %w", err)
	}
	if taken {
		return nil, &domain.ConflictError{Field: a.IdentifierField(), Value: a.Identifier()}
	}

	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.artifacts.Create(txCtx, a); createErr != nil {
			return fmt.Errorf("create artifact: %w", createErr)
		}
		return s.recordAudit(txCtx, a, identity, domain.AuditActionCreate, nil)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "artifact created",
		slog.String("workspace_id", w.ID.String()),
		slog.String("artifact_id", a.ID.String()),
		slog.String("kind", a.Kind.String()),
		slog.String("environment", a.Environment.String()),
	)

	return s.artifacts.GetByID(ctx, w.ID, a.ID)
}

// recordAudit appends an access log entry for a mutation. Metadata never
// carries field values — identifiers and structure only, no secrets.
func (s *Service) recordAudit(ctx context.Context, a *domain.Artifact, identity string, action domain.AuditAction, extra map[string]any) error {
	metadata := map[string]any{
		"workspace_id": a.WorkspaceID.String(),
		"kind":         a.Kind.String(),
		"environment":  a.Environment.String(),
		a.IdentifierField(): a.Identifier(),
	}
	for k, v := range extra {
		metadata[k] = v
	}

	var sourceAddr *string
	if addr := ctxutil.SourceAddrFromCtx(ctx); addr != "" {
		sourceAddr = &addr
	}

	entry := &domain.AccessLogEntry{
		ID:         uuid.New(),
		ArtifactID: a.ID,
		Action:     action,
		Identity:   identity,
		SourceAddr: sourceAddr,
		Metadata:   metadata,
		RecordedAt: time.Now().UTC(),
	}
	if err := s.audit.Record(ctx, entry); err != nil {
		return fmt.Errorf("record access log: %w", err)
	}
	return nil
}
