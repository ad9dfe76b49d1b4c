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

// Create creates a workspace for the authenticated identity with all three
// environments enabled. The name must be unique per owner; the pre-check
// gives a friendly error, the unique constraint guarantees it under races.
func (s *Service) Create(ctx context.Context, input CreateWorkspaceInput) (*domain.Workspace, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	taken, err := s.workspaces.NameExists(ctx, identity, name)
	if err != nil {
		return nil, fmt.Errorf("check workspace name: %w", err)
	}
	if taken {
		return nil, &domain.ConflictError{Field: "name", Value: name}
	}

	now := time.Now().UTC()
	w := &domain.Workspace{
		ID:                  uuid.New(),
		Name:                name,
		Description:         trimOrNil(input.Description),
		OwnerIdentity:       identity,
		EnabledEnvironments: domain.AllEnvironments,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.workspaces.Create(txCtx, w); createErr != nil {
			return fmt.Errorf("create workspace: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "workspace created",
		slog.String("workspace_id", w.ID.String()),
		slog.String("name", name),
	)

	return w, nil
}
