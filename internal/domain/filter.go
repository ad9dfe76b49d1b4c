package domain

import "github.com/google/uuid"

// ArtifactFilter describes an artifact read query. Zero-valued fields are
// not applied. At least one of WorkspaceID or OwnerIdentity must be set so a
// query can never cross identity boundaries.
type ArtifactFilter struct {
	WorkspaceID   *uuid.UUID
	OwnerIdentity string
	Kind          *ArtifactKind
	Environment   *Environment
	TagName       string
	Search        string
	Limit         int
}
