package artifact

import (
	"context"
	"fmt"
	"strings"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/pkg/ctxutil"
)

// List returns a workspace's artifacts with optional kind/environment/
// substring/tag filters, newest-updated first.
func (s *Service) List(ctx context.Context, input ListArtifactsInput) ([]*domain.Artifact, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	w, err := s.requireWorkspace(ctx, identity, input.WorkspaceID)
	if err != nil {
		return nil, err
	}

	filter := domain.ArtifactFilter{
		WorkspaceID: &w.ID,
		Search:      strings.TrimSpace(input.Search),
		TagName:     strings.TrimSpace(input.TagName),
	}
	if input.Kind != nil {
		kind := domain.ArtifactKind(strings.ToUpper(strings.TrimSpace(*input.Kind)))
		filter.Kind = &kind
	}
	if input.Environment != nil {
		env, _ := domain.ParseEnvironment(*input.Environment)
		filter.Environment = &env
	}

	artifacts, err := s.artifacts.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	return artifacts, nil
}
