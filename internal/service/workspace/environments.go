package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/pkg/ctxutil"
)

// SetEnabledEnvironments replaces the workspace's enabled environment set.
// Disabling an environment that still holds artifacts is rejected with an
// EnvironmentInUseError listing every blocking environment and its artifact
// count. The check and the swap run in one transaction so a concurrent
// artifact create cannot slip into a just-disabled environment unnoticed.
func (s *Service) SetEnabledEnvironments(ctx context.Context, input SetEnvironmentsInput) (*domain.Workspace, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	next := input.Parsed()

	var w *domain.Workspace
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		w, getErr = s.workspaces.GetByID(txCtx, identity, input.WorkspaceID)
		if getErr != nil {
			return getErr
		}

		removed := removedEnvironments(w.EnabledEnvironments, next)
		if len(removed) > 0 {
			counts, cntErr := s.workspaces.CountArtifactsByEnvironment(txCtx, w.ID)
			if cntErr != nil {
				return fmt.Errorf("count artifacts: %w", cntErr)
			}

			var blocking []domain.EnvironmentUsage
			for _, env := range removed {
				if n := counts[env]; n > 0 {
					blocking = append(blocking, domain.EnvironmentUsage{Environment: env, ArtifactCount: n})
				}
			}
			if len(blocking) > 0 {
				return &domain.EnvironmentInUseError{Blocking: blocking}
			}
		}

		if repErr := s.workspaces.ReplaceEnvironments(txCtx, w.ID, next); repErr != nil {
			return fmt.Errorf("replace environments: %w", repErr)
		}

		w.EnabledEnvironments = next
		w.UpdatedAt = time.Now().UTC()
		if updErr := s.workspaces.Update(txCtx, w); updErr != nil {
			return fmt.Errorf("touch workspace: %w", updErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "enabled environments updated",
		slog.String("workspace_id", w.ID.String()),
		slog.Any("environments", next),
	)

	return w, nil
}

// removedEnvironments returns the environments present in current but
// absent from next, in canonical order.
func removedEnvironments(current, next []domain.Environment) []domain.Environment {
	enabled := make(map[domain.Environment]bool, len(next))
	for _, env := range next {
		enabled[env] = true
	}

	var removed []domain.Environment
	for _, env := range current {
		if !enabled[env] {
			removed = append(removed, env)
		}
	}
	return removed
}
