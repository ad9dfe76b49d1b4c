package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akorchemkin/devstash-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedWorkspace creates a workspace with all three environments enabled.
// Returns a filled domain.Workspace.
func SeedWorkspace(t *testing.T, pool *pgxpool.Pool, ownerIdentity string) domain.Workspace {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	w := domain.Workspace{
		ID:                  uuid.New(),
		Name:                "Test Workspace " + suffix,
		OwnerIdentity:       ownerIdentity,
		EnabledEnvironments: domain.AllEnvironments,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO workspaces (id, name, description, owner_identity, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		w.ID, w.Name, w.Description, w.OwnerIdentity, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWorkspace insert workspace: %v", err)
	}

	for _, env := range w.EnabledEnvironments {
		_, err = pool.Exec(ctx,
			`INSERT INTO workspace_environments (workspace_id, environment) VALUES ($1, $2)`,
			w.ID, string(env),
		)
		if err != nil {
			t.Fatalf("testhelper: SeedWorkspace insert environment: %v", err)
		}
	}

	return w
}

// SeedEnvVar creates an ENV_VAR artifact in the workspace.
func SeedEnvVar(t *testing.T, pool *pgxpool.Pool, workspaceID uuid.UUID, env domain.Environment, key, value string) domain.Artifact {
	t.Helper()

	a := domain.Artifact{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Kind:        domain.ArtifactKindEnvVar,
		Environment: env,
		EnvVar:      &domain.EnvVarFields{Key: key, Value: value},
	}
	insertArtifact(t, pool, &a)
	return a
}

// SeedPrompt creates a PROMPT artifact in the workspace.
func SeedPrompt(t *testing.T, pool *pgxpool.Pool, workspaceID uuid.UUID, env domain.Environment, title, content string) domain.Artifact {
	t.Helper()

	a := domain.Artifact{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Kind:        domain.ArtifactKindPrompt,
		Environment: env,
		Prompt:      &domain.PromptFields{Title: title, Content: content},
	}
	insertArtifact(t, pool, &a)
	return a
}

// SeedDocLink creates a DOC_LINK artifact in the workspace.
func SeedDocLink(t *testing.T, pool *pgxpool.Pool, workspaceID uuid.UUID, env domain.Environment, title, url string) domain.Artifact {
	t.Helper()

	a := domain.Artifact{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Kind:        domain.ArtifactKindDocLink,
		Environment: env,
		DocLink:     &domain.DocLinkFields{Title: title, URL: url},
	}
	insertArtifact(t, pool, &a)
	return a
}

// SeedTag creates a tag in the workspace.
func SeedTag(t *testing.T, pool *pgxpool.Pool, workspaceID uuid.UUID, name string) domain.Tag {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	tag := domain.Tag{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Name:        name,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tags (id, workspace_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		tag.ID, tag.WorkspaceID, tag.Name, tag.CreatedAt, tag.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTag insert: %v", err)
	}

	return tag
}

// LinkTag binds a tag to an artifact.
func LinkTag(t *testing.T, pool *pgxpool.Pool, artifactID, tagID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO artifact_tags (artifact_id, tag_id) VALUES ($1, $2)`,
		artifactID, tagID,
	)
	if err != nil {
		t.Fatalf("testhelper: LinkTag insert: %v", err)
	}
}

func insertArtifact(t *testing.T, pool *pgxpool.Pool, a *domain.Artifact) {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	a.CreatedAt = now
	a.UpdatedAt = now

	var key, value, title, content, url, label *string
	switch a.Kind {
	case domain.ArtifactKindEnvVar:
		key, value = &a.EnvVar.Key, &a.EnvVar.Value
	case domain.ArtifactKindPrompt:
		title, content = &a.Prompt.Title, &a.Prompt.Content
	case domain.ArtifactKindDocLink:
		title, url, label = &a.DocLink.Title, &a.DocLink.URL, a.DocLink.Label
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO artifacts (id, workspace_id, kind, environment, key, value, title, content, url, label, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		a.ID, a.WorkspaceID, string(a.Kind), string(a.Environment),
		key, value, title, content, url, label, a.Notes, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: insert artifact: %v", err)
	}
}
