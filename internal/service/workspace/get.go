package workspace

import (
	"context"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/pkg/ctxutil"
)

// Get returns an owned workspace. A workspace owned by another identity is
// indistinguishable from a missing one (ErrNotFound in both cases).
func (s *Service) Get(ctx context.Context, workspaceID uuid.UUID) (*domain.Workspace, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if workspaceID == uuid.Nil {
		return nil, domain.NewValidationError("workspace_id", "required")
	}

	return s.workspaces.GetByID(ctx, identity, workspaceID)
}
