// Package search implements the identity-scoped cross-workspace artifact
// search and the global docs view.
package search

import (
	"context"
	"log/slog"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/internal/ratelimit"
)

// defaultMaxResults bounds search responses when no limit is configured.
const defaultMaxResults = 50

type artifactRepo interface {
	List(ctx context.Context, f domain.ArtifactFilter) ([]*domain.Artifact, error)
}

type rateLimiter interface {
	TryConsume(class ratelimit.Class, key string) ratelimit.Decision
}

// Service provides cross-workspace read operations.
type Service struct {
	artifacts  artifactRepo
	limiter    rateLimiter
	maxResults int
	log        *slog.Logger
}

// NewService creates a new Search service. maxResults bounds every search
// response; values below one fall back to the default.
func NewService(log *slog.Logger, artifacts artifactRepo, limiter rateLimiter, maxResults int) *Service {
	if maxResults < 1 {
		maxResults = defaultMaxResults
	}
	return &Service{
		artifacts:  artifacts,
		limiter:    limiter,
		maxResults: maxResults,
		log:        log.With("service", "search"),
	}
}
