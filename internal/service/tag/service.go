// Package tag implements workspace-scoped tag management.
package tag

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
)

type tagRepo interface {
	Create(ctx context.Context, t *domain.Tag) error
	GetByID(ctx context.Context, workspaceID, tagID uuid.UUID) (*domain.Tag, error)
	List(ctx context.Context, workspaceID uuid.UUID) ([]*domain.Tag, error)
	Update(ctx context.Context, t *domain.Tag) error
	Delete(ctx context.Context, workspaceID, tagID uuid.UUID) error
}

type workspaceRepo interface {
	GetByID(ctx context.Context, ownerIdentity string, id uuid.UUID) (*domain.Workspace, error)
}

// Service provides tag management operations.
type Service struct {
	tags       tagRepo
	workspaces workspaceRepo
	log        *slog.Logger
}

// NewService creates a new Tag service.
func NewService(log *slog.Logger, tags tagRepo, workspaces workspaceRepo) *Service {
	return &Service{
		tags:       tags,
		workspaces: workspaces,
		log:        log.With("service", "tag"),
	}
}

// requireWorkspace resolves an owned workspace or fails with ErrNotFound.
func (s *Service) requireWorkspace(ctx context.Context, identity string, workspaceID uuid.UUID) (*domain.Workspace, error) {
	if workspaceID == uuid.Nil {
		return nil, domain.NewValidationError("workspace_id", "required")
	}
	return s.workspaces.GetByID(ctx, identity, workspaceID)
}
