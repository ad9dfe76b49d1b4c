package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tag groups artifacts within a workspace. Name is unique per workspace.
type Tag struct {
	ID          uuid.UUID
	WorkspaceID uuid.UUID
	Name        string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// UsageCount is the number of artifacts carrying the tag.
	// Populated only by list queries.
	UsageCount int
}

// MaxTagNameLen caps tag names in characters.
const MaxTagNameLen = 80
