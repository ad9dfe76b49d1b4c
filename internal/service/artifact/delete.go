package artifact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/pkg/ctxutil"
)

// Delete removes an artifact. The audit entry is written in the same
// transaction and survives the deletion (no foreign key ties it to the row).
func (s *Service) Delete(ctx context.Context, workspaceID, artifactID uuid.UUID) error {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if artifactID == uuid.Nil {
		return domain.NewValidationError("artifact_id", "required")
	}

	w, err := s.requireWorkspace(ctx, identity, workspaceID)
	if err != nil {
		return err
	}

	a, err := s.artifacts.GetByID(ctx, w.ID, artifactID)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if auditErr := s.recordAudit(txCtx, a, identity, domain.AuditActionDelete, nil); auditErr != nil {
			return auditErr
		}
		if delErr := s.artifacts.Delete(txCtx, w.ID, a.ID); delErr != nil {
			return fmt.Errorf("delete artifact: %w", delErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "artifact deleted",
		slog.String("workspace_id", w.ID.String()),
		slog.String("artifact_id", a.ID.String()),
		slog.String("kind", a.Kind.String()),
	)

	return nil
}
