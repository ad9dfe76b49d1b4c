package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Workspace is an owned container scoping a set of artifacts and the
// environments available to them.
type Workspace struct {
	ID            uuid.UUID
	Name          string
	Description   *string
	OwnerIdentity string

	// EnabledEnvironments is never empty for a persisted workspace.
	// Stored in canonical order (DEV, STAGING, PROD).
	EnabledEnvironments []Environment

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EnvironmentEnabled reports whether env is currently enabled on the workspace.
func (w *Workspace) EnvironmentEnabled(env Environment) bool {
	return slices.Contains(w.EnabledEnvironments, env)
}

// NormalizeEnvironments deduplicates and sorts a set of environments into
// canonical order. Unknown values are dropped.
func NormalizeEnvironments(envs []Environment) []Environment {
	out := make([]Environment, 0, len(AllEnvironments))
	for _, known := range AllEnvironments {
		if slices.Contains(envs, known) {
			out = append(out, known)
		}
	}
	return out
}

// WorkspaceUpdateParams is a partial patch for workspace metadata.
// nil fields are left unchanged.
type WorkspaceUpdateParams struct {
	Name        *string
	Description *string
}
