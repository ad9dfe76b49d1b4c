package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccessLogEntry is the append-only record of a sensitive action.
// Entries are never updated or deleted; they survive artifact deletion.
type AccessLogEntry struct {
	ID         uuid.UUID
	ArtifactID uuid.UUID
	Action     AuditAction
	Identity   string
	SourceAddr *string
	Metadata   map[string]any
	RecordedAt time.Time
}
