package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/internal/service/workspace"
)

// workspaceService defines the minimal interface needed by WorkspaceHandler.
type workspaceService interface {
	Create(ctx context.Context, input workspace.CreateWorkspaceInput) (*domain.Workspace, error)
	List(ctx context.Context) ([]*domain.Workspace, error)
	Get(ctx context.Context, workspaceID uuid.UUID) (*domain.Workspace, error)
	Update(ctx context.Context, input workspace.UpdateWorkspaceInput) (*domain.Workspace, error)
	Delete(ctx context.Context, workspaceID uuid.UUID) error
	SetEnabledEnvironments(ctx context.Context, input workspace.SetEnvironmentsInput) (*domain.Workspace, error)
	Export(ctx context.Context, workspaceID uuid.UUID) (*workspace.ExportResult, error)
	Import(ctx context.Context, input workspace.ImportWorkspaceInput) (*workspace.ImportResult, error)
}

// WorkspaceHandler serves workspace REST endpoints.
type WorkspaceHandler struct {
	svc workspaceService
	log *slog.Logger
}

// NewWorkspaceHandler creates a WorkspaceHandler.
func NewWorkspaceHandler(svc workspaceService, logger *slog.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{svc: svc, log: logger.With("handler", "workspace")}
}

type createWorkspaceRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type updateWorkspaceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type setEnvironmentsRequest struct {
	EnabledEnvironments []string `json:"enabledEnvironments"`
}

type workspaceListResponse struct {
	Workspaces []workspaceResponse `json:"workspaces"`
}

// Create handles POST /api/v1/workspaces.
func (h *WorkspaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ws, err := h.svc.Create(r.Context(), workspace.CreateWorkspaceInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWorkspaceResponse(ws))
}

// List handles GET /api/v1/workspaces.
func (h *WorkspaceHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaces, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := workspaceListResponse{Workspaces: make([]workspaceResponse, 0, len(workspaces))}
	for _, ws := range workspaces {
		resp.Workspaces = append(resp.Workspaces, toWorkspaceResponse(ws))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/workspaces/{workspaceId}.
func (h *WorkspaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "workspaceId")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	ws, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWorkspaceResponse(ws))
}

// Update handles PATCH /api/v1/workspaces/{workspaceId}.
func (h *WorkspaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "workspaceId")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req updateWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ws, err := h.svc.Update(r.Context(), workspace.UpdateWorkspaceInput{
		WorkspaceID: id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWorkspaceResponse(ws))
}

// Delete handles DELETE /api/v1/workspaces/{workspaceId}.
func (h *WorkspaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "workspaceId")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetEnvironments handles PATCH /api/v1/workspaces/{workspaceId}/enabled-environments.
func (h *WorkspaceHandler) SetEnvironments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "workspaceId")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req setEnvironmentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ws, err := h.svc.SetEnabledEnvironments(r.Context(), workspace.SetEnvironmentsInput{
		WorkspaceID:  id,
		Environments: req.EnabledEnvironments,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWorkspaceResponse(ws))
}

// ---------------------------------------------------------------------------
// Export / Import
// ---------------------------------------------------------------------------

type exportArtifact struct {
	Kind        string  `json:"kind"`
	Environment string  `json:"environment"`
	Key         *string `json:"key,omitempty"`
	Value       *string `json:"value,omitempty"`
	Title       *string `json:"title,omitempty"`
	Content     *string `json:"content,omitempty"`
	URL         *string `json:"url,omitempty"`
	Label       *string `json:"label,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

type exportResponse struct {
	Version             string           `json:"version"`
	ExportedAt          time.Time        `json:"exportedAt"`
	Name                string           `json:"name"`
	Description         *string          `json:"description,omitempty"`
	EnabledEnvironments []string         `json:"enabledEnvironments"`
	Artifacts           []exportArtifact `json:"artifacts"`
}

type importRequest struct {
	Name                string           `json:"name"`
	Description         *string          `json:"description"`
	EnabledEnvironments []string         `json:"enabledEnvironments"`
	Artifacts           []exportArtifact `json:"artifacts"`
}

type importResponse struct {
	Workspace workspaceResponse `json:"workspace"`
	Imported  int               `json:"imported"`
	Skipped   int               `json:"skipped"`
}

// Export handles GET /api/v1/workspaces/{workspaceId}/export.
// The payload is a portable backup and round-trips through Import, so
// ENV_VAR values are written out raw rather than masked.
func (h *WorkspaceHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "workspaceId")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	result, err := h.svc.Export(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	envs := make([]string, 0, len(result.Workspace.EnabledEnvironments))
	for _, env := range result.Workspace.EnabledEnvironments {
		envs = append(envs, string(env))
	}

	resp := exportResponse{
		Version:             result.Version,
		ExportedAt:          result.ExportedAt,
		Name:                result.Workspace.Name,
		Description:         result.Workspace.Description,
		EnabledEnvironments: envs,
		Artifacts:           make([]exportArtifact, 0, len(result.Artifacts)),
	}
	for _, a := range result.Artifacts {
		resp.Artifacts = append(resp.Artifacts, toExportArtifact(a))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Import handles POST /api/v1/workspaces/import.
func (h *WorkspaceHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := workspace.ImportWorkspaceInput{
		Name:         req.Name,
		Description:  req.Description,
		Environments: req.EnabledEnvironments,
		Artifacts:    make([]workspace.ImportArtifact, 0, len(req.Artifacts)),
	}
	for _, a := range req.Artifacts {
		input.Artifacts = append(input.Artifacts, workspace.ImportArtifact{
			Kind:        a.Kind,
			Environment: a.Environment,
			Key:         a.Key,
			Value:       a.Value,
			Title:       a.Title,
			Content:     a.Content,
			URL:         a.URL,
			Label:       a.Label,
			Notes:       a.Notes,
		})
	}

	result, err := h.svc.Import(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, importResponse{
		Workspace: toWorkspaceResponse(result.Workspace),
		Imported:  result.Imported,
		Skipped:   result.Skipped,
	})
}

func toExportArtifact(a *domain.Artifact) exportArtifact {
	rec := exportArtifact{
		Kind:        string(a.Kind),
		Environment: string(a.Environment),
		Notes:       a.Notes,
	}
	switch a.Kind {
	case domain.ArtifactKindEnvVar:
		if a.EnvVar != nil {
			rec.Key = &a.EnvVar.Key
			rec.Value = &a.EnvVar.Value
		}
	case domain.ArtifactKindPrompt:
		if a.Prompt != nil {
			rec.Title = &a.Prompt.Title
			rec.Content = &a.Prompt.Content
		}
	case domain.ArtifactKindDocLink:
		if a.DocLink != nil {
			rec.Title = &a.DocLink.Title
			rec.URL = &a.DocLink.URL
			rec.Label = a.DocLink.Label
		}
	}
	return rec
}
