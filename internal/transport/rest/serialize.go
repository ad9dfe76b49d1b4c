package rest

import (
	"time"

	"github.com/akorchemkin/devstash-backend/internal/domain"
)

type workspaceResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         *string   `json:"description,omitempty"`
	EnabledEnvironments []string  `json:"enabledEnvironments"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type tagRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type artifactResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspaceId"`
	Kind        string    `json:"kind"`
	Environment string    `json:"environment"`
	Key         string    `json:"key,omitempty"`
	Value       string    `json:"value,omitempty"`
	ValueMasked *bool     `json:"valueMasked,omitempty"`
	Title       string    `json:"title,omitempty"`
	Content     string    `json:"content,omitempty"`
	URL         string    `json:"url,omitempty"`
	Label       *string   `json:"label,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	Tags        []tagRef  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toWorkspaceResponse(w *domain.Workspace) workspaceResponse {
	envs := make([]string, 0, len(w.EnabledEnvironments))
	for _, env := range w.EnabledEnvironments {
		envs = append(envs, string(env))
	}
	return workspaceResponse{
		ID:                  w.ID.String(),
		Name:                w.Name,
		Description:         w.Description,
		EnabledEnvironments: envs,
		CreatedAt:           w.CreatedAt,
		UpdatedAt:           w.UpdatedAt,
	}
}

// toArtifactResponse serializes an artifact. ENV_VAR values are replaced by
// the mask sentinel unless the caller went through the reveal flow; the raw
// value must never reach a response any other way.
func toArtifactResponse(a *domain.Artifact, revealed bool) artifactResponse {
	resp := artifactResponse{
		ID:          a.ID.String(),
		WorkspaceID: a.WorkspaceID.String(),
		Kind:        string(a.Kind),
		Environment: string(a.Environment),
		Notes:       a.Notes,
		Tags:        make([]tagRef, 0, len(a.Tags)),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}

	for _, tag := range a.Tags {
		resp.Tags = append(resp.Tags, tagRef{ID: tag.ID.String(), Name: tag.Name})
	}

	switch a.Kind {
	case domain.ArtifactKindEnvVar:
		if a.EnvVar != nil {
			resp.Key = a.EnvVar.Key
			masked := !revealed
			resp.ValueMasked = &masked
			if revealed {
				resp.Value = a.EnvVar.Value
			} else {
				resp.Value = domain.MaskedValueSentinel
			}
		}
	case domain.ArtifactKindPrompt:
		if a.Prompt != nil {
			resp.Title = a.Prompt.Title
			resp.Content = a.Prompt.Content
		}
	case domain.ArtifactKindDocLink:
		if a.DocLink != nil {
			resp.Title = a.DocLink.Title
			resp.URL = a.DocLink.URL
			resp.Label = a.DocLink.Label
		}
	}

	return resp
}

func toArtifactResponses(artifacts []*domain.Artifact) []artifactResponse {
	out := make([]artifactResponse, 0, len(artifacts))
	for _, a := range artifacts {
		out = append(out, toArtifactResponse(a, false))
	}
	return out
}
