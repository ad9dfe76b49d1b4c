package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/pkg/ctxutil"
)

// Update applies a partial patch to workspace metadata.
func (s *Service) Update(ctx context.Context, input UpdateWorkspaceInput) (*domain.Workspace, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	w, err := s.workspaces.GetByID(ctx, identity, input.WorkspaceID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name != w.Name {
			taken, err := s.workspaces.NameExists(ctx, identity, name)
			if err != nil {
				return nil, fmt.Errorf("check workspace name: %w", err)
			}
			if taken {
				return nil, &domain.ConflictError{Field: "name", Value: name}
			}
		}
		w.Name = name
	}
	if input.Description != nil {
		w.Description = trimOrNil(input.Description)
	}
	w.UpdatedAt = time.Now().UTC()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if updErr := s.workspaces.Update(txCtx, w); updErr != nil {
			return fmt.Errorf("update workspace: %w", updErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "workspace updated",
		slog.String("workspace_id", w.ID.String()),
	)

	return w, nil
}
