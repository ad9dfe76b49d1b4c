package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/internal/service/tag"
)

// tagService defines the minimal interface needed by TagHandler.
type tagService interface {
	Create(ctx context.Context, input tag.CreateTagInput) (*domain.Tag, error)
	List(ctx context.Context, workspaceID uuid.UUID) ([]*domain.Tag, error)
	Update(ctx context.Context, input tag.UpdateTagInput) (*domain.Tag, error)
	Delete(ctx context.Context, workspaceID, tagID uuid.UUID) error
}

// TagHandler serves tag REST endpoints.
type TagHandler struct {
	svc tagService
	log *slog.Logger
}

// NewTagHandler creates a TagHandler.
func NewTagHandler(svc tagService, logger *slog.Logger) *TagHandler {
	return &TagHandler{svc: svc, log: logger.With("handler", "tag")}
}

type tagRequest struct {
	Name string `json:"name"`
}

type tagResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	UsageCount int       `json:"usageCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type tagListResponse struct {
	Tags []tagResponse `json:"tags"`
}

// Create handles POST /api/v1/workspaces/{workspaceId}/tags.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := pathUUID(r, "workspaceId")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.Create(r.Context(), tag.CreateTagInput{
		WorkspaceID: workspaceID,
		Name:        req.Name,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTagResponse(t))
}

// List handles GET /api/v1/workspaces/{workspaceId}/tags.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := pathUUID(r, "workspaceId")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	tags, err := h.svc.List(r.Context(), workspaceID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := tagListResponse{Tags: make([]tagResponse, 0, len(tags))}
	for _, t := range tags {
		resp.Tags = append(resp.Tags, toTagResponse(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PATCH /api/v1/workspaces/{workspaceId}/tags/{tagId}.
func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := pathUUID(r, "workspaceId")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	tagID, ok := pathUUID(r, "tagId")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.Update(r.Context(), tag.UpdateTagInput{
		WorkspaceID: workspaceID,
		TagID:       tagID,
		Name:        req.Name,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTagResponse(t))
}

// Delete handles DELETE /api/v1/workspaces/{workspaceId}/tags/{tagId}.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := pathUUID(r, "workspaceId")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	tagID, ok := pathUUID(r, "tagId")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.svc.Delete(r.Context(), workspaceID, tagID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTagResponse(t *domain.Tag) tagResponse {
	return tagResponse{
		ID:         t.ID.String(),
		Name:       t.Name,
		UsageCount: t.UsageCount,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
