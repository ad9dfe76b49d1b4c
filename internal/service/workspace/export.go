package workspace

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/pkg/ctxutil"
)

// ExportVersion identifies the export payload format.
const ExportVersion = "1"

// ExportResult is a workspace snapshot for export. ENV_VAR values stay raw
// all the way to the response: the payload must round-trip through Import,
// and the endpoint sits behind the same auth as reveal.
type ExportResult struct {
	Workspace  *domain.Workspace
	Artifacts  []*domain.Artifact
	ExportedAt time.Time
	Version    string
}

// Export returns the workspace and all of its artifacts.
func (s *Service) Export(ctx context.Context, workspaceID uuid.UUID) (*ExportResult, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if workspaceID == uuid.Nil {
		return nil, domain.NewValidationError("workspace_id", "required")
	}

	w, err := s.workspaces.GetByID(ctx, identity, workspaceID)
	if err != nil {
		return nil, err
	}

	artifacts, err := s.artifacts.List(ctx, domain.ArtifactFilter{WorkspaceID: &w.ID})
	if err != nil {
		return nil, fmt.Errorf("list artifacts for export: %w", err)
	}

	return &ExportResult{
		Workspace:  w,
		Artifacts:  artifacts,
		ExportedAt: time.Now().UTC(),
		Version:    ExportVersion,
	}, nil
}
