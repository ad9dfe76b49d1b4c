// Package artifact implements artifact lifecycle operations: CRUD, reveal
// with mandatory pre-reveal audit, and cross-environment duplication.
package artifact

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/internal/ratelimit"
)

type artifactRepo interface {
	Create(ctx context.Context, a *domain.Artifact) error
	GetByID(ctx context.Context, workspaceID, artifactID uuid.UUID) (*domain.Artifact, error)
	List(ctx context.Context, f domain.ArtifactFilter) ([]*domain.Artifact, error)
	Update(ctx context.Context, a *domain.Artifact) error
	Delete(ctx context.Context, workspaceID, artifactID uuid.UUID) error
	IdentifierExists(ctx context.Context, workspaceID uuid.UUID, kind domain.ArtifactKind, env domain.Environment, identifier string, excludeID uuid.UUID) (bool, error)
}

type workspaceRepo interface {
	GetByID(ctx context.Context, ownerIdentity string, id uuid.UUID) (*domain.Workspace, error)
}

type tagRepo interface {
	CountInWorkspace(ctx context.Context, workspaceID uuid.UUID, tagIDs []uuid.UUID) (int, error)
}

type accessLog interface {
	Record(ctx context.Context, e *domain.AccessLogEntry) error
}

type rateLimiter interface {
	TryConsume(class ratelimit.Class, key string) ratelimit.Decision
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides artifact management operations.
type Service struct {
	artifacts  artifactRepo
	workspaces workspaceRepo
	tags       tagRepo
	audit      accessLog
	limiter    rateLimiter
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Artifact service.
func NewService(
	log *slog.Logger,
	artifacts artifactRepo,
	workspaces workspaceRepo,
	tags tagRepo,
	audit accessLog,
	limiter rateLimiter,
	tx txManager,
) *Service {
	return &Service{
		artifacts:  artifacts,
		workspaces: workspaces,
		tags:       tags,
		audit:      audit,
		limiter:    limiter,
		tx:         tx,
		log:        log.With("service", "artifact"),
	}
}

// requireWorkspace resolves an owned workspace or fails with ErrNotFound.
func (s *Service) requireWorkspace(ctx context.Context, identity string, workspaceID uuid.UUID) (*domain.Workspace, error) {
	if workspaceID == uuid.Nil {
		return nil, domain.NewValidationError("workspace_id", "required")
	}
	return s.workspaces.GetByID(ctx, identity, workspaceID)
}

// checkTags verifies that every referenced tag exists in the workspace.
func (s *Service) checkTags(ctx context.Context, workspaceID uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}

	unique := make(map[uuid.UUID]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		unique[id] = struct{}{}
	}

	n, err := s.tags.CountInWorkspace(ctx, workspaceID, tagIDs)
	if err != nil {
		return err
	}
	if n != len(unique) {
		return domain.NewValidationError("tagIds", "unknown tag for this workspace")
	}
	return nil
}
