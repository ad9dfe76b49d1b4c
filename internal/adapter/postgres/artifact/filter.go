package artifact

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/akorchemkin/devstash-backend/internal/domain"
)

// artifactColumns are the columns selected on every artifact read,
// table-qualified so joins stay unambiguous.
var artifactColumns = []string{
	"a.id", "a.workspace_id", "a.kind", "a.environment",
	"a.key", "a.value", "a.title", "a.content", "a.url", "a.label",
	"a.notes", "a.created_at", "a.updated_at",
}

// filterSQL builds the SELECT for an ArtifactFilter. Substring search is a
// case-insensitive literal match over the kind-specific text fields and tag
// names; ENV_VAR values are never searched.
func filterSQL(f domain.ArtifactFilter) (string, []any, error) {
	b := sq.Select(artifactColumns...).
		From("artifacts a").
		PlaceholderFormat(sq.Dollar).
		OrderBy("a.updated_at DESC")

	if f.WorkspaceID != nil {
		b = b.Where(sq.Eq{"a.workspace_id": *f.WorkspaceID})
	}
	if f.OwnerIdentity != "" {
		b = b.Join("workspaces w ON w.id = a.workspace_id").
			Where(sq.Eq{"w.owner_identity": f.OwnerIdentity})
	}
	if f.Kind != nil {
		b = b.Where(sq.Eq{"a.kind": string(*f.Kind)})
	}
	if f.Environment != nil {
		b = b.Where(sq.Eq{"a.environment": string(*f.Environment)})
	}
	if f.TagName != "" {
		b = b.Where(sq.Expr(
			`EXISTS (SELECT 1 FROM artifact_tags at JOIN tags t ON t.id = at.tag_id
			 WHERE at.artifact_id = a.id AND t.name = ?)`, f.TagName))
	}
	if f.Search != "" {
		pattern := "%" + escapeLike(f.Search) + "%"
		b = b.Where(sq.Or{
			sq.ILike{"a.key": pattern},
			sq.ILike{"a.title": pattern},
			sq.ILike{"a.content": pattern},
			sq.ILike{"a.notes": pattern},
			sq.ILike{"a.url": pattern},
			sq.ILike{"a.label": pattern},
			sq.Expr(
				`EXISTS (SELECT 1 FROM artifact_tags at JOIN tags t ON t.id = at.tag_id
				 WHERE at.artifact_id = a.id AND t.name ILIKE ?)`, pattern),
		})
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}

	return b.ToSql()
}

// escapeLike escapes LIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
