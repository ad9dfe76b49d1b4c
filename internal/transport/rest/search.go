package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/akorchemkin/devstash-backend/internal/domain"
)

// searchService defines the minimal interface needed by SearchHandler.
type searchService interface {
	Search(ctx context.Context, query string) ([]*domain.Artifact, error)
	ListDocs(ctx context.Context) ([]*domain.Artifact, error)
}

// SearchHandler serves the cross-workspace search and docs endpoints.
type SearchHandler struct {
	svc searchService
	log *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, log: logger.With("handler", "search")}
}

type searchResponse struct {
	Results []artifactResponse `json:"results"`
}

// Search handles GET /api/v1/search/artifacts?q=.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	artifacts, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Results: toArtifactResponses(artifacts)})
}

// ListDocs handles GET /api/v1/docs: every DOC_LINK the caller owns, across
// all workspaces.
func (h *SearchHandler) ListDocs(w http.ResponseWriter, r *http.Request) {
	artifacts, err := h.svc.ListDocs(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Results: toArtifactResponses(artifacts)})
}
