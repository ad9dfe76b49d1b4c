package artifact

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/internal/ratelimit"
	"github.com/akorchemkin/devstash-backend/pkg/ctxutil"
)

// RevealValue returns an ENV_VAR artifact with its plaintext value. The call
// is rate-limited per identity and the REVEAL_VALUE audit entry must commit
// before the value leaves the service; an audit write failure fails the call.
func (s *Service) RevealValue(ctx context.Context, workspaceID, artifactID uuid.UUID) (*domain.Artifact, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if artifactID == uuid.Nil {
		return nil, domain.NewValidationError("artifact_id", "required")
	}

	w, err := s.requireWorkspace(ctx, identity, workspaceID)
	if err != nil {
		return nil, err
	}

	a, err := s.artifacts.GetByID(ctx, w.ID, artifactID)
	if err != nil {
		return nil, err
	}
	if a.Kind != domain.ArtifactKindEnvVar {
		return nil, domain.NewValidationError("kind", "only ENV_VAR artifacts can be revealed")
	}

	if d := s.limiter.TryConsume(ratelimit.ClassReveal, identity); !d.Allowed {
		s.log.WarnContext(ctx, "reveal rate limited",
			slog.String("identity", identity),
			slog.Duration("retry_after", d.RetryAfter),
		)
		return nil, &domain.RateLimitedError{RetryAfter: d.RetryAfter}
	}

	// The audit record is the precondition for disclosure, not a side effect:
	// if it cannot be committed the value is not returned.
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.recordAudit(txCtx, a, identity, domain.AuditActionRevealValue, nil)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "artifact value revealed",
		slog.String("workspace_id", w.ID.String()),
		slog.String("artifact_id", a.ID.String()),
		slog.String("identity", identity),
	)

	return a, nil
}
