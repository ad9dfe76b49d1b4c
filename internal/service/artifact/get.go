package artifact

import (
	"context"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/pkg/ctxutil"
)

// Get returns an artifact from an owned workspace. ENV_VAR values stay real
// in the domain entity; masking happens at serialization, and only the
// reveal operation may serialize them unmasked.
func (s *Service) Get(ctx context.Context, workspaceID, artifactID uuid.UUID) (*domain.Artifact, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if artifactID == uuid.Nil {
		return nil, domain.NewValidationError("artifact_id", "required")
	}

	w, err := s.requireWorkspace(ctx, identity, workspaceID)
	if err != nil {
		return nil, err
	}

	return s.artifacts.GetByID(ctx, w.ID, artifactID)
}
