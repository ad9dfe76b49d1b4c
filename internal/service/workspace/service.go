// Package workspace implements workspace lifecycle operations: CRUD,
// enabled-environment management, and export/import.
package workspace

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
)

type workspaceRepo interface {
	Create(ctx context.Context, w *domain.Workspace) error
	GetByID(ctx context.Context, ownerIdentity string, id uuid.UUID) (*domain.Workspace, error)
	List(ctx context.Context, ownerIdentity string) ([]*domain.Workspace, error)
	Update(ctx context.Context, w *domain.Workspace) error
	Delete(ctx context.Context, ownerIdentity string, id uuid.UUID) error
	ReplaceEnvironments(ctx context.Context, workspaceID uuid.UUID, envs []domain.Environment) error
	CountArtifactsByEnvironment(ctx context.Context, workspaceID uuid.UUID) (map[domain.Environment]int, error)
	NameExists(ctx context.Context, ownerIdentity, name string) (bool, error)
}

type artifactRepo interface {
	Create(ctx context.Context, a *domain.Artifact) error
	List(ctx context.Context, f domain.ArtifactFilter) ([]*domain.Artifact, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides workspace management operations.
type Service struct {
	workspaces workspaceRepo
	artifacts  artifactRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Workspace service.
func NewService(
	log *slog.Logger,
	workspaces workspaceRepo,
	artifacts artifactRepo,
	tx txManager,
) *Service {
	return &Service{
		workspaces: workspaces,
		artifacts:  artifacts,
		tx:         tx,
		log:        log.With("service", "workspace"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
