package tag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/pkg/ctxutil"
)

// Create adds a tag to a workspace. Name collisions surface as a
// ConflictError from the unique constraint.
func (s *Service) Create(ctx context.Context, input CreateTagInput) (*domain.Tag, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	w, err := s.requireWorkspace(ctx, identity, input.WorkspaceID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &domain.Tag{
		ID:          uuid.New(),
		WorkspaceID: w.ID,
		Name:        strings.TrimSpace(input.Name),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tags.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}

	s.log.InfoContext(ctx, "tag created",
		slog.String("workspace_id", w.ID.String()),
		slog.String("tag_id", t.ID.String()),
	)

	return t, nil
}

// List returns the workspace's tags ordered by name, with usage counts.
func (s *Service) List(ctx context.Context, workspaceID uuid.UUID) ([]*domain.Tag, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	w, err := s.requireWorkspace(ctx, identity, workspaceID)
	if err != nil {
		return nil, err
	}

	tags, err := s.tags.List(ctx, w.ID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// Update renames a tag.
func (s *Service) Update(ctx context.Context, input UpdateTagInput) (*domain.Tag, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	w, err := s.requireWorkspace(ctx, identity, input.WorkspaceID)
	if err != nil {
		return nil, err
	}

	t, err := s.tags.GetByID(ctx, w.ID, input.TagID)
	if err != nil {
		return nil, err
	}

	t.Name = strings.TrimSpace(input.Name)
	t.UpdatedAt = time.Now().UTC()

	if err := s.tags.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("update tag: %w", err)
	}

	s.log.InfoContext(ctx, "tag updated",
		slog.String("workspace_id", w.ID.String()),
		slog.String("tag_id", t.ID.String()),
	)

	return t, nil
}

// Delete removes a tag. Links to artifacts are dropped; the artifacts stay.
func (s *Service) Delete(ctx context.Context, workspaceID, tagID uuid.UUID) error {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if tagID == uuid.Nil {
		return domain.NewValidationError("tag_id", "required")
	}

	w, err := s.requireWorkspace(ctx, identity, workspaceID)
	if err != nil {
		return err
	}

	if err := s.tags.Delete(ctx, w.ID, tagID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "tag deleted",
		slog.String("workspace_id", w.ID.String()),
		slog.String("tag_id", tagID.String()),
	)

	return nil
}
