package workspace

import (
	"context"
	"fmt"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/pkg/ctxutil"
)

// List returns all workspaces owned by the authenticated identity.
func (s *Service) List(ctx context.Context) ([]*domain.Workspace, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	workspaces, err := s.workspaces.List(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	return workspaces, nil
}
