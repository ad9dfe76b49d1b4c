// Package tag implements the Tag repository using PostgreSQL.
package tag

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/akorchemkin/devstash-backend/internal/adapter/postgres"
	"github.com/akorchemkin/devstash-backend/internal/domain"
)

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listByWorkspaceSQL = `
SELECT t.id, t.workspace_id, t.name, t.created_at, t.updated_at,
       count(at.artifact_id) AS usage_count
FROM tags t
LEFT JOIN artifact_tags at ON at.tag_id = t.id
WHERE t.workspace_id = $1
GROUP BY t.id
ORDER BY t.name`

// Create inserts a tag. Duplicate names per workspace surface as a
// ConflictError (field "name").
func (r *Repo) Create(ctx context.Context, t *domain.Tag) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO tags (id, workspace_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		t.ID, t.WorkspaceID, t.Name, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "tag", t.Name)
	}
	return nil
}

// GetByID returns a tag scoped to a workspace.
func (r *Repo) GetByID(ctx context.Context, workspaceID, tagID uuid.UUID) (*domain.Tag, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.Tag
	err := q.QueryRow(ctx,
		`SELECT id, workspace_id, name, created_at, updated_at FROM tags WHERE id = $1 AND workspace_id = $2`,
		tagID, workspaceID,
	).Scan(&t.ID, &t.WorkspaceID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, mapError(err, "tag", tagID.String())
	}
	return &t, nil
}

// List returns all tags in a workspace ordered by name, with usage counts.
// Returns an empty slice (not nil) when the workspace has none.
func (r *Repo) List(ctx context.Context, workspaceID uuid.UUID) ([]*domain.Tag, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByWorkspaceSQL, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	tags := []*domain.Tag{}
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.WorkspaceID, &t.Name, &t.CreatedAt, &t.UpdatedAt, &t.UsageCount); err != nil {
			return nil, fmt.Errorf("list tags: %w", err)
		}
		tags = append(tags, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return tags, nil
}

// Update renames a tag.
func (r *Repo) Update(ctx context.Context, t *domain.Tag) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE tags SET name = $1, updated_at = $2 WHERE id = $3 AND workspace_id = $4`,
		t.Name, t.UpdatedAt, t.ID, t.WorkspaceID,
	)
	if err != nil {
		return mapError(err, "tag", t.Name)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tag %s: %w", t.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a tag; join rows cascade, artifacts stay.
func (r *Repo) Delete(ctx context.Context, workspaceID, tagID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM tags WHERE id = $1 AND workspace_id = $2`,
		tagID, workspaceID,
	)
	if err != nil {
		return mapError(err, "tag", tagID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tag %s: %w", tagID, domain.ErrNotFound)
	}
	return nil
}

// CountInWorkspace returns how many of the given tag ids exist in the
// workspace. Services use it to reject links to foreign or missing tags.
func (r *Repo) CountInWorkspace(ctx context.Context, workspaceID uuid.UUID, tagIDs []uuid.UUID) (int, error) {
	if len(tagIDs) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	err := q.QueryRow(ctx,
		`SELECT count(*) FROM tags WHERE workspace_id = $1 AND id = ANY($2::uuid[])`,
		workspaceID, tagIDs,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count tags in workspace: %w", err)
	}
	return n, nil
}

// mapError delegates to the shared adapter error mapping.
func mapError(err error, entity, ref string) error {
	return postgres.MapError(err, entity, ref)
}
