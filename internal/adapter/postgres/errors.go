package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/akorchemkin/devstash-backend/internal/domain"
)

// conflictFields maps unique constraint names to the API field whose
// uniqueness rule they enforce. Names must stay in sync with migrations.
var conflictFields = map[string]string{
	"workspaces_owner_identity_name_key": "name",
	"artifacts_env_var_key_uniq":         "key",
	"artifacts_titled_kind_uniq":         "title",
	"tags_workspace_id_name_key":         "name",
	"artifact_tags_pkey":                 "tag_id",
	"workspace_environments_pkey":        "environment",
}

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped — they pass through.
// Shared by all repo subpackages so the constraint-name table lives in one place.
func MapError(err error, entity, ref string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, ref, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			field := conflictFields[pgErr.ConstraintName]
			if field == "" {
				field = entity
			}
			return fmt.Errorf("%s %s: %w", entity, ref, &domain.ConflictError{Field: field, Value: ref})
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, ref, err)
}
