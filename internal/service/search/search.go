package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/internal/ratelimit"
	"github.com/akorchemkin/devstash-backend/pkg/ctxutil"
)

// Search runs a case-insensitive substring match across every workspace owned
// by the caller. ENV_VAR values are never matched and never returned in the
// clear. An empty query returns an empty result without consuming budget.
func (s *Service) Search(ctx context.Context, query string) ([]*domain.Artifact, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return []*domain.Artifact{}, nil
	}

	if d := s.limiter.TryConsume(ratelimit.ClassSearch, identity); !d.Allowed {
		s.log.WarnContext(ctx, "search rate limited",
			slog.String("identity", identity),
			slog.Duration("retry_after", d.RetryAfter),
		)
		return nil, &domain.RateLimitedError{RetryAfter: d.RetryAfter}
	}

	results, err := s.artifacts.List(ctx, domain.ArtifactFilter{
		OwnerIdentity: identity,
		Search:        query,
		Limit:         s.maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("search artifacts: %w", err)
	}

	return results, nil
}

// ListDocs aggregates DOC_LINK artifacts across all workspaces of the caller,
// newest-updated first. Not rate limited.
func (s *Service) ListDocs(ctx context.Context) ([]*domain.Artifact, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	kind := domain.ArtifactKindDocLink
	docs, err := s.artifacts.List(ctx, domain.ArtifactFilter{
		OwnerIdentity: identity,
		Kind:          &kind,
	})
	if err != nil {
		return nil, fmt.Errorf("list docs: %w", err)
	}

	return docs, nil
}
