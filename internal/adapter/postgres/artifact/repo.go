// Package artifact implements the Artifact repository using PostgreSQL.
// The three kinds share one table with nullable per-kind columns; the
// repository converts rows to and from the variant structs so nothing above
// this package sees the flat layout.
package artifact

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/akorchemkin/devstash-backend/internal/adapter/postgres"
	"github.com/akorchemkin/devstash-backend/internal/domain"
)

// Repo provides artifact persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new artifact repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `
SELECT
    a.id, a.workspace_id, a.kind, a.environment,
    a.key, a.value, a.title, a.content, a.url, a.label,
    a.notes, a.created_at, a.updated_at
FROM artifacts a
WHERE a.id = $1 AND a.workspace_id = $2`

const loadTagsSQL = `
SELECT at.artifact_id, t.id, t.workspace_id, t.name, t.created_at, t.updated_at
FROM artifact_tags at
JOIN tags t ON t.id = at.tag_id
WHERE at.artifact_id = ANY($1::uuid[])
ORDER BY t.name`

// Create inserts an artifact and its tag links.
// Uniqueness collisions surface as a ConflictError naming the field.
func (r *Repo) Create(ctx context.Context, a *domain.Artifact) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	cols := flatten(a)
	_, err := q.Exec(ctx,
		`INSERT INTO artifacts (id, workspace_id, kind, environment, key, value, title, content, url, label, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		a.ID, a.WorkspaceID, string(a.Kind), string(a.Environment),
		cols.key, cols.value, cols.title, cols.content, cols.url, cols.label,
		a.Notes, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "artifact", a.Identifier())
	}

	if len(a.TagIDs) > 0 {
		return r.replaceTagLinks(ctx, q, a.ID, a.TagIDs)
	}
	return nil
}

// GetByID returns an artifact scoped to a workspace, tags populated.
func (r *Repo) GetByID(ctx context.Context, workspaceID, artifactID uuid.UUID) (*domain.Artifact, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getByIDSQL, artifactID, workspaceID)
	a, err := scanArtifact(row)
	if err != nil {
		return nil, mapError(err, "artifact", artifactID.String())
	}

	if err := r.loadTags(ctx, q, []*domain.Artifact{a}); err != nil {
		return nil, fmt.Errorf("get artifact: %w", err)
	}
	return a, nil
}

// List returns artifacts matching the filter, newest-updated first, tags
// populated. Returns an empty slice (not nil) on no matches.
func (r *Repo) List(ctx context.Context, f domain.ArtifactFilter) ([]*domain.Artifact, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := filterSQL(f)
	if err != nil {
		return nil, fmt.Errorf("build artifact query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	defer rows.Close()

	artifacts := []*domain.Artifact{}
	for rows.Next() {
		a, err := scanArtifact(rows)
		if err != nil {
			return nil, fmt.Errorf("list artifacts: %w", err)
		}
		artifacts = append(artifacts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}

	if err := r.loadTags(ctx, q, artifacts); err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	return artifacts, nil
}

// Update persists the variant fields, notes, environment and updated_at.
// Kind never changes; the row keeps its original kind columns.
func (r *Repo) Update(ctx context.Context, a *domain.Artifact) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	cols := flatten(a)
	tag, err := q.Exec(ctx,
		`UPDATE artifacts
		 SET environment = $1, key = $2, value = $3, title = $4, content = $5, url = $6, label = $7, notes = $8, updated_at = $9
		 WHERE id = $10 AND workspace_id = $11`,
		string(a.Environment), cols.key, cols.value, cols.title, cols.content, cols.url, cols.label,
		a.Notes, a.UpdatedAt, a.ID, a.WorkspaceID,
	)
	if err != nil {
		return mapError(err, "artifact", a.Identifier())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("artifact %s: %w", a.ID, domain.ErrNotFound)
	}

	if a.TagIDs != nil {
		return r.replaceTagLinks(ctx, q, a.ID, a.TagIDs)
	}
	return nil
}

// Delete removes an artifact. Tag links cascade; access log rows stay.
func (r *Repo) Delete(ctx context.Context, workspaceID, artifactID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM artifacts WHERE id = $1 AND workspace_id = $2`,
		artifactID, workspaceID,
	)
	if err != nil {
		return mapError(err, "artifact", artifactID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("artifact %s: %w", artifactID, domain.ErrNotFound)
	}
	return nil
}

// IdentifierExists reports whether the workspace already holds an artifact of
// the kind with the identifier (key or title) in the environment, excluding
// excludeID. App-level pre-check only; the partial unique indexes are the
// concurrency-proof guarantee.
func (r *Repo) IdentifierExists(ctx context.Context, workspaceID uuid.UUID, kind domain.ArtifactKind, env domain.Environment, identifier string, excludeID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	column := "title"
	if kind == domain.ArtifactKindEnvVar {
		column = "key"
	}

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (
		    SELECT 1 FROM artifacts
		    WHERE workspace_id = $1 AND kind = $2 AND environment = $3 AND `+column+` = $4 AND id <> $5)`,
		workspaceID, string(kind), string(env), identifier, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("artifact identifier exists: %w", err)
	}
	return exists, nil
}

func (r *Repo) replaceTagLinks(ctx context.Context, q postgres.Querier, artifactID uuid.UUID, tagIDs []uuid.UUID) error {
	if _, err := q.Exec(ctx,
		`DELETE FROM artifact_tags WHERE artifact_id = $1`, artifactID,
	); err != nil {
		return mapError(err, "artifact tags", artifactID.String())
	}

	batch := &pgx.Batch{}
	for _, tagID := range tagIDs {
		batch.Queue(
			`INSERT INTO artifact_tags (artifact_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			artifactID, tagID,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range tagIDs {
		if _, err := results.Exec(); err != nil {
			return mapError(err, "artifact tags", artifactID.String())
		}
	}
	return nil
}

// loadTags populates Tags and TagIDs on the given artifacts in one query.
func (r *Repo) loadTags(ctx context.Context, q postgres.Querier, artifacts []*domain.Artifact) error {
	if len(artifacts) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(artifacts))
	byID := make(map[uuid.UUID]*domain.Artifact, len(artifacts))
	for i, a := range artifacts {
		ids[i] = a.ID
		byID[a.ID] = a
		a.Tags = []domain.Tag{}
		a.TagIDs = []uuid.UUID{}
	}

	rows, err := q.Query(ctx, loadTagsSQL, ids)
	if err != nil {
		return fmt.Errorf("load artifact tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			artifactID uuid.UUID
			t          domain.Tag
		)
		if err := rows.Scan(&artifactID, &t.ID, &t.WorkspaceID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return fmt.Errorf("load artifact tags: %w", err)
		}
		if a, ok := byID[artifactID]; ok {
			a.Tags = append(a.Tags, t)
			a.TagIDs = append(a.TagIDs, t.ID)
		}
	}
	return rows.Err()
}

// ---------------------------------------------------------------------------
// Row mapping: flat nullable columns <-> kind variants
// ---------------------------------------------------------------------------

type flatColumns struct {
	key, value, title, content, url, label *string
}

// flatten projects the artifact's variant onto the nullable column set.
func flatten(a *domain.Artifact) flatColumns {
	var cols flatColumns
	switch a.Kind {
	case domain.ArtifactKindEnvVar:
		if a.EnvVar != nil {
			cols.key = &a.EnvVar.Key
			cols.value = &a.EnvVar.Value
		}
	case domain.ArtifactKindPrompt:
		if a.Prompt != nil {
			cols.title = &a.Prompt.Title
			cols.content = &a.Prompt.Content
		}
	case domain.ArtifactKindDocLink:
		if a.DocLink != nil {
			cols.title = &a.DocLink.Title
			cols.url = &a.DocLink.URL
			cols.label = a.DocLink.Label
		}
	}
	return cols
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanArtifact(row rowScanner) (*domain.Artifact, error) {
	var (
		a    domain.Artifact
		kind string
		env  string
		cols flatColumns
	)
	err := row.Scan(
		&a.ID, &a.WorkspaceID, &kind, &env,
		&cols.key, &cols.value, &cols.title, &cols.content, &cols.url, &cols.label,
		&a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Kind = domain.ArtifactKind(kind)
	a.Environment = domain.Environment(env)

	switch a.Kind {
	case domain.ArtifactKindEnvVar:
		a.EnvVar = &domain.EnvVarFields{Key: deref(cols.key), Value: deref(cols.value)}
	case domain.ArtifactKindPrompt:
		a.Prompt = &domain.PromptFields{Title: deref(cols.title), Content: deref(cols.content)}
	case domain.ArtifactKindDocLink:
		a.DocLink = &domain.DocLinkFields{Title: deref(cols.title), URL: deref(cols.url), Label: cols.label}
	}

	return &a, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// mapError delegates to the shared adapter error mapping.
func mapError(err error, entity, ref string) error {
	return postgres.MapError(err, entity, ref)
}
