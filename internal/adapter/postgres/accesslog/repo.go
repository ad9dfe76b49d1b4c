// Package accesslog implements the append-only access log repository.
// Rows are never updated or deleted; artifact_id carries no foreign key so
// the trail survives artifact and workspace deletion.
package accesslog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/akorchemkin/devstash-backend/internal/adapter/postgres"
	"github.com/akorchemkin/devstash-backend/internal/domain"
)

// Repo provides access log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new access log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listByArtifactSQL = `
SELECT id, artifact_id, action, identity, source_addr, metadata, recorded_at
FROM access_log
WHERE artifact_id = $1
ORDER BY recorded_at DESC
LIMIT $2`

// Record appends an entry. This is the only write path; participating in a
// caller's transaction (via context) makes the entry durable exactly when
// the surrounding operation commits.
func (r *Repo) Record(ctx context.Context, e *domain.AccessLogEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO access_log (id, artifact_id, action, identity, source_addr, metadata, recorded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.ArtifactID, string(e.Action), e.Identity, e.SourceAddr, e.Metadata, e.RecordedAt,
	)
	if err != nil {
		return postgres.MapError(err, "access log entry", e.ID.String())
	}
	return nil
}

// ListByArtifact returns the newest entries for an artifact.
func (r *Repo) ListByArtifact(ctx context.Context, artifactID uuid.UUID, limit int) ([]*domain.AccessLogEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByArtifactSQL, artifactID, limit)
	if err != nil {
		return nil, fmt.Errorf("list access log: %w", err)
	}
	defer rows.Close()

	entries := []*domain.AccessLogEntry{}
	for rows.Next() {
		var (
			e      domain.AccessLogEntry
			action string
		)
		if err := rows.Scan(&e.ID, &e.ArtifactID, &action, &e.Identity, &e.SourceAddr, &e.Metadata, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("list access log: %w", err)
		}
		e.Action = domain.AuditAction(action)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list access log: %w", err)
	}

	return entries, nil
}
