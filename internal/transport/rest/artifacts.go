package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/internal/service/artifact"
)

// artifactService defines the minimal interface needed by ArtifactHandler.
type artifactService interface {
	Create(ctx context.Context, input artifact.CreateArtifactInput) (*domain.Artifact, error)
	Get(ctx context.Context, workspaceID, artifactID uuid.UUID) (*domain.Artifact, error)
	List(ctx context.Context, input artifact.ListArtifactsInput) ([]*domain.Artifact, error)
	Update(ctx context.Context, input artifact.UpdateArtifactInput) (*domain.Artifact, error)
	Delete(ctx context.Context, workspaceID, artifactID uuid.UUID) error
	RevealValue(ctx context.Context, workspaceID, artifactID uuid.UUID) (*domain.Artifact, error)
	Duplicate(ctx context.Context, input artifact.DuplicateArtifactInput) (*domain.Artifact, error)
}

// ArtifactHandler serves artifact REST endpoints.
type ArtifactHandler struct {
	svc artifactService
	log *slog.Logger
}

// NewArtifactHandler creates an ArtifactHandler.
func NewArtifactHandler(svc artifactService, logger *slog.Logger) *ArtifactHandler {
	return &ArtifactHandler{svc: svc, log: logger.With("handler", "artifact")}
}

type createArtifactRequest struct {
	Kind        string      `json:"kind"`
	Environment string      `json:"environment"`
	Key         *string     `json:"key"`
	Value       *string     `json:"value"`
	Title       *string     `json:"title"`
	Content     *string     `json:"content"`
	URL         *string     `json:"url"`
	Label       *string     `json:"label"`
	Notes       *string     `json:"notes"`
	TagIDs      []uuid.UUID `json:"tagIds"`
}

type updateArtifactRequest struct {
	Kind        *string     `json:"kind"`
	Environment *string     `json:"environment"`
	Key         *string     `json:"key"`
	Value       *string     `json:"value"`
	Title       *string     `json:"title"`
	Content     *string     `json:"content"`
	URL         *string     `json:"url"`
	Label       *string     `json:"label"`
	Notes       *string     `json:"notes"`
	TagIDs      []uuid.UUID `json:"tagIds"`
}

type duplicateArtifactRequest struct {
	TargetEnvironment string `json:"targetEnvironment"`
}

type artifactListResponse struct {
	Artifacts []artifactResponse `json:"artifacts"`
}

// Create handles POST /api/v1/workspaces/{workspaceId}/artifacts.
func (h *ArtifactHandler) Create(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := pathUUID(r, "workspaceId")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req createArtifactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.svc.Create(r.Context(), artifact.CreateArtifactInput{
		WorkspaceID: workspaceID,
		Kind:        req.Kind,
		Environment: req.Environment,
		Key:         req.Key,
		Value:       req.Value,
		Title:       req.Title,
		Content:     req.Content,
		URL:         req.URL,
		Label:       req.Label,
		Notes:       req.Notes,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toArtifactResponse(a, false))
}

// Get handles GET /api/v1/workspaces/{workspaceId}/artifacts/{artifactId}.
func (h *ArtifactHandler) Get(w http.ResponseWriter, r *http.Request) {
	workspaceID, artifactID, ok := artifactPath(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	a, err := h.svc.Get(r.Context(), workspaceID, artifactID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toArtifactResponse(a, false))
}

// List handles GET /api/v1/workspaces/{workspaceId}/artifacts.
// Optional query filters: kind, environment, search, tag.
func (h *ArtifactHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := pathUUID(r, "workspaceId")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	query := r.URL.Query()
	input := artifact.ListArtifactsInput{
		WorkspaceID: workspaceID,
		Kind:        queryPtr(query, "kind"),
		Environment: queryPtr(query, "environment"),
		Search:      query.Get("search"),
		TagName:     query.Get("tag"),
	}

	artifacts, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, artifactListResponse{Artifacts: toArtifactResponses(artifacts)})
}

// Update handles PATCH /api/v1/workspaces/{workspaceId}/artifacts/{artifactId}.
func (h *ArtifactHandler) Update(w http.ResponseWriter, r *http.Request) {
	workspaceID, artifactID, ok := artifactPath(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req updateArtifactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.svc.Update(r.Context(), artifact.UpdateArtifactInput{
		WorkspaceID: workspaceID,
		ArtifactID:  artifactID,
		Kind:        req.Kind,
		Environment: req.Environment,
		Key:         req.Key,
		Value:       req.Value,
		Title:       req.Title,
		Content:     req.Content,
		URL:         req.URL,
		Label:       req.Label,
		Notes:       req.Notes,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toArtifactResponse(a, false))
}

// Delete handles DELETE /api/v1/workspaces/{workspaceId}/artifacts/{artifactId}.
func (h *ArtifactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	workspaceID, artifactID, ok := artifactPath(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.svc.Delete(r.Context(), workspaceID, artifactID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reveal handles GET /api/v1/workspaces/{workspaceId}/artifacts/{artifactId}/reveal-value.
// This is the only response that carries an ENV_VAR value in the clear.
func (h *ArtifactHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	workspaceID, artifactID, ok := artifactPath(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	a, err := h.svc.RevealValue(r.Context(), workspaceID, artifactID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toArtifactResponse(a, true))
}

// Duplicate handles POST /api/v1/workspaces/{workspaceId}/artifacts/{artifactId}/duplicate.
func (h *ArtifactHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	workspaceID, artifactID, ok := artifactPath(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req duplicateArtifactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.svc.Duplicate(r.Context(), artifact.DuplicateArtifactInput{
		WorkspaceID:       workspaceID,
		ArtifactID:        artifactID,
		TargetEnvironment: req.TargetEnvironment,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toArtifactResponse(a, false))
}

func artifactPath(r *http.Request) (workspaceID, artifactID uuid.UUID, ok bool) {
	workspaceID, ok = pathUUID(r, "workspaceId")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	artifactID, ok = pathUUID(r, "artifactId")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return workspaceID, artifactID, true
}

func queryPtr(values url.Values, key string) *string {
	if !values.Has(key) {
		return nil
	}
	v := values.Get(key)
	return &v
}
