// Package workspace implements the Workspace repository using PostgreSQL.
// A workspace row owns its enabled environments (workspace_environments) and
// cascades to artifacts and tags on delete.
package workspace

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/akorchemkin/devstash-backend/internal/adapter/postgres"
	"github.com/akorchemkin/devstash-backend/internal/domain"
)

// Repo provides workspace persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new workspace repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const selectWorkspaceSQL = `
SELECT
    w.id, w.name, w.description, w.owner_identity, w.created_at, w.updated_at,
    COALESCE(array_agg(e.environment) FILTER (WHERE e.environment IS NOT NULL), '{}') AS environments
FROM workspaces w
LEFT JOIN workspace_environments e ON e.workspace_id = w.id`

const getByIDSQL = selectWorkspaceSQL + `
WHERE w.id = $1 AND w.owner_identity = $2
GROUP BY w.id`

const listByOwnerSQL = selectWorkspaceSQL + `
WHERE w.owner_identity = $1
GROUP BY w.id
ORDER BY w.created_at DESC`

// Create inserts a workspace and its enabled environments.
// Returns a ConflictError (field "name") on a duplicate name for the owner.
func (r *Repo) Create(ctx context.Context, w *domain.Workspace) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO workspaces (id, name, description, owner_identity, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		w.ID, w.Name, w.Description, w.OwnerIdentity, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "workspace", w.Name)
	}

	return r.insertEnvironments(ctx, q, w.ID, w.EnabledEnvironments)
}

// GetByID returns a workspace by primary key scoped to the owner identity.
// Returns domain.ErrNotFound if it does not exist or belongs to another
// identity — callers cannot distinguish the two.
func (r *Repo) GetByID(ctx context.Context, ownerIdentity string, id uuid.UUID) (*domain.Workspace, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getByIDSQL, id, ownerIdentity)
	w, err := scanWorkspace(row)
	if err != nil {
		return nil, mapError(err, "workspace", id.String())
	}
	return w, nil
}

// List returns all workspaces owned by the identity, newest first.
// Returns an empty slice (not nil) when the identity owns none.
func (r *Repo) List(ctx context.Context, ownerIdentity string) ([]*domain.Workspace, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByOwnerSQL, ownerIdentity)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer rows.Close()

	workspaces := []*domain.Workspace{}
	for rows.Next() {
		w, err := scanWorkspace(rows)
		if err != nil {
			return nil, fmt.Errorf("list workspaces: %w", err)
		}
		workspaces = append(workspaces, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}

	return workspaces, nil
}

// Update persists name/description/updated_at for an owned workspace.
func (r *Repo) Update(ctx context.Context, w *domain.Workspace) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE workspaces SET name = $1, description = $2, updated_at = $3
		 WHERE id = $4 AND owner_identity = $5`,
		w.Name, w.Description, w.UpdatedAt, w.ID, w.OwnerIdentity,
	)
	if err != nil {
		return mapError(err, "workspace", w.ID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workspace %s: %w", w.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes an owned workspace. Artifacts, tags and environment rows
// cascade; access log rows are left in place.
func (r *Repo) Delete(ctx context.Context, ownerIdentity string, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM workspaces WHERE id = $1 AND owner_identity = $2`,
		id, ownerIdentity,
	)
	if err != nil {
		return mapError(err, "workspace", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workspace %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ReplaceEnvironments swaps the enabled environment set. Callers run it
// inside a transaction together with the blocking-artifact check.
func (r *Repo) ReplaceEnvironments(ctx context.Context, workspaceID uuid.UUID, envs []domain.Environment) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx,
		`DELETE FROM workspace_environments WHERE workspace_id = $1`, workspaceID,
	); err != nil {
		return mapError(err, "workspace environments", workspaceID.String())
	}

	return r.insertEnvironments(ctx, q, workspaceID, envs)
}

// CountArtifactsByEnvironment returns artifact counts per environment for a
// workspace. Environments with no artifacts are absent from the map.
func (r *Repo) CountArtifactsByEnvironment(ctx context.Context, workspaceID uuid.UUID) (map[domain.Environment]int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT environment, count(*) FROM artifacts WHERE workspace_id = $1 GROUP BY environment`,
		workspaceID,
	)
	if err != nil {
		return nil, fmt.Errorf("count artifacts by environment: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Environment]int)
	for rows.Next() {
		var env string
		var n int
		if err := rows.Scan(&env, &n); err != nil {
			return nil, fmt.Errorf("count artifacts by environment: %w", err)
		}
		counts[domain.Environment(env)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count artifacts by environment: %w", err)
	}

	return counts, nil
}

// NameExists reports whether the owner already has a workspace with the name.
// Used by import to pick a de-duplicated name; the unique constraint remains
// the concurrency-proof guarantee.
func (r *Repo) NameExists(ctx context.Context, ownerIdentity, name string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM workspaces WHERE owner_identity = $1 AND name = $2)`,
		ownerIdentity, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("workspace name exists: %w", err)
	}
	return exists, nil
}

func (r *Repo) insertEnvironments(ctx context.Context, q postgres.Querier, workspaceID uuid.UUID, envs []domain.Environment) error {
	batch := &pgx.Batch{}
	for _, env := range envs {
		batch.Queue(
			`INSERT INTO workspace_environments (workspace_id, environment) VALUES ($1, $2)`,
			workspaceID, string(env),
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range envs {
		if _, err := results.Exec(); err != nil {
			return mapError(err, "workspace environments", workspaceID.String())
		}
	}
	return nil
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkspace(row rowScanner) (*domain.Workspace, error) {
	var (
		w    domain.Workspace
		envs []string
	)
	if err := row.Scan(&w.ID, &w.Name, &w.Description, &w.OwnerIdentity, &w.CreatedAt, &w.UpdatedAt, &envs); err != nil {
		return nil, err
	}

	w.EnabledEnvironments = make([]domain.Environment, 0, len(envs))
	for _, e := range envs {
		w.EnabledEnvironments = append(w.EnabledEnvironments, domain.Environment(e))
	}
	w.EnabledEnvironments = domain.NormalizeEnvironments(w.EnabledEnvironments)

	return &w, nil
}

// mapError delegates to the shared adapter error mapping.
func mapError(err error, entity, ref string) error {
	return postgres.MapError(err, entity, ref)
}
