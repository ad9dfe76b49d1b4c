package workspace

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/pkg/ctxutil"
)

// Delete removes an owned workspace. Artifacts, tags and environment rows
// cascade in the database; access log rows are deliberately kept.
func (s *Service) Delete(ctx context.Context, workspaceID uuid.UUID) error {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if workspaceID == uuid.Nil {
		return domain.NewValidationError("workspace_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if delErr := s.workspaces.Delete(txCtx, identity, workspaceID); delErr != nil {
			return fmt.Errorf("delete workspace: %w", delErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "workspace deleted",
		slog.String("workspace_id", workspaceID.String()),
	)

	return nil
}
