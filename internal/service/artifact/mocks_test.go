package artifact

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/internal/ratelimit"
)

var _ artifactRepo = &artifactRepoMock{}

type artifactRepoMock struct {
	CreateFunc           func(ctx context.Context, a *domain.Artifact) error
	GetByIDFunc          func(ctx context.Context, workspaceID, artifactID uuid.UUID) (*domain.Artifact, error)
	ListFunc             func(ctx context.Context, f domain.ArtifactFilter) ([]*domain.Artifact, error)
	UpdateFunc           func(ctx context.Context, a *domain.Artifact) error
	DeleteFunc           func(ctx context.Context, workspaceID, artifactID uuid.UUID) error
	IdentifierExistsFunc func(ctx context.Context, workspaceID uuid.UUID, kind domain.ArtifactKind, env domain.Environment, identifier string, excludeID uuid.UUID) (bool, error)

	calls struct {
		Create []struct {
			A *domain.Artifact
		}
		GetByID []struct {
			WorkspaceID uuid.UUID
			ArtifactID  uuid.UUID
		}
		List []struct {
			F domain.ArtifactFilter
		}
		Update []struct {
			A *domain.Artifact
		}
		Delete []struct {
			WorkspaceID uuid.UUID
			ArtifactID  uuid.UUID
		}
		IdentifierExists []struct {
			WorkspaceID uuid.UUID
			Kind        domain.ArtifactKind
			Env         domain.Environment
			Identifier  string
			ExcludeID   uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *artifactRepoMock) Create(ctx context.Context, a *domain.Artifact) error {
	if mock.CreateFunc == nil {
		panic("artifactRepoMock.CreateFunc: method is nil but artifactRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		A *domain.Artifact
	}{A: a})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *artifactRepoMock) CreateCalls() []struct {
	A *domain.Artifact
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *artifactRepoMock) GetByID(ctx context.Context, workspaceID, artifactID uuid.UUID) (*domain.Artifact, error) {
	if mock.GetByIDFunc == nil {
		panic("artifactRepoMock.GetByIDFunc: method is nil but artifactRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		WorkspaceID uuid.UUID
		ArtifactID  uuid.UUID
	}{WorkspaceID: workspaceID, ArtifactID: artifactID})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, workspaceID, artifactID)
}

func (mock *artifactRepoMock) GetByIDCalls() []struct {
	WorkspaceID uuid.UUID
	ArtifactID  uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *artifactRepoMock) List(ctx context.Context, f domain.ArtifactFilter) ([]*domain.Artifact, error) {
	if mock.ListFunc == nil {
		panic("artifactRepoMock.ListFunc: method is nil but artifactRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		F domain.ArtifactFilter
	}{F: f})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *artifactRepoMock) ListCalls() []struct {
	F domain.ArtifactFilter
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *artifactRepoMock) Update(ctx context.Context, a *domain.Artifact) error {
	if mock.UpdateFunc == nil {
		panic("artifactRepoMock.UpdateFunc: method is nil but artifactRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		A *domain.Artifact
	}{A: a})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, a)
}

func (mock *artifactRepoMock) UpdateCalls() []struct {
	A *domain.Artifact
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *artifactRepoMock) Delete(ctx context.Context, workspaceID, artifactID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("artifactRepoMock.DeleteFunc: method is nil but artifactRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		WorkspaceID uuid.UUID
		ArtifactID  uuid.UUID
	}{WorkspaceID: workspaceID, ArtifactID: artifactID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, workspaceID, artifactID)
}

func (mock *artifactRepoMock) DeleteCalls() []struct {
	WorkspaceID uuid.UUID
	ArtifactID  uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *artifactRepoMock) IdentifierExists(ctx context.Context, workspaceID uuid.UUID, kind domain.ArtifactKind, env domain.Environment, identifier string, excludeID uuid.UUID) (bool, error) {
	if mock.IdentifierExistsFunc == nil {
		panic("artifactRepoMock.IdentifierExistsFunc: method is nil but artifactRepo.IdentifierExists was just called")
	}
	mock.lock.Lock()
	mock.calls.IdentifierExists = append(mock.calls.IdentifierExists, struct {
		WorkspaceID uuid.UUID
		Kind        domain.ArtifactKind
		Env         domain.Environment
		Identifier  string
		ExcludeID   uuid.UUID
	}{WorkspaceID: workspaceID, Kind: kind, Env: env, Identifier: identifier, ExcludeID: excludeID})
	mock.lock.Unlock()
	return mock.IdentifierExistsFunc(ctx, workspaceID, kind, env, identifier, excludeID)
}

func (mock *artifactRepoMock) IdentifierExistsCalls() []struct {
	WorkspaceID uuid.UUID
	Kind        domain.ArtifactKind
	Env         domain.Environment
	Identifier  string
	ExcludeID   uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.IdentifierExists
}

var _ workspaceRepo = &workspaceRepoMock{}

type workspaceRepoMock struct {
	GetByIDFunc func(ctx context.Context, ownerIdentity string, id uuid.UUID) (*domain.Workspace, error)

	calls struct {
		GetByID []struct {
			OwnerIdentity string
			ID            uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *workspaceRepoMock) GetByID(ctx context.Context, ownerIdentity string, id uuid.UUID) (*domain.Workspace, error) {
	if mock.GetByIDFunc == nil {
		panic("workspaceRepoMock.GetByIDFunc: method is nil but workspaceRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		OwnerIdentity string
		ID            uuid.UUID
	}{OwnerIdentity: ownerIdentity, ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, ownerIdentity, id)
}

func (mock *workspaceRepoMock) GetByIDCalls() []struct {
	OwnerIdentity string
	ID            uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	CountInWorkspaceFunc func(ctx context.Context, workspaceID uuid.UUID, tagIDs []uuid.UUID) (int, error)

	calls struct {
		CountInWorkspace []struct {
			WorkspaceID uuid.UUID
			TagIDs      []uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *tagRepoMock) CountInWorkspace(ctx context.Context, workspaceID uuid.UUID, tagIDs []uuid.UUID) (int, error) {
	if mock.CountInWorkspaceFunc == nil {
		panic("tagRepoMock.CountInWorkspaceFunc: method is nil but tagRepo.CountInWorkspace was just called")
	}
	mock.lock.Lock()
	mock.calls.CountInWorkspace = append(mock.calls.CountInWorkspace, struct {
		WorkspaceID uuid.UUID
		TagIDs      []uuid.UUID
	}{WorkspaceID: workspaceID, TagIDs: tagIDs})
	mock.lock.Unlock()
	return mock.CountInWorkspaceFunc(ctx, workspaceID, tagIDs)
}

func (mock *tagRepoMock) CountInWorkspaceCalls() []struct {
	WorkspaceID uuid.UUID
	TagIDs      []uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountInWorkspace
}

var _ accessLog = &accessLogMock{}

type accessLogMock struct {
	RecordFunc func(ctx context.Context, e *domain.AccessLogEntry) error

	calls struct {
		Record []struct {
			E *domain.AccessLogEntry
		}
	}
	lock sync.RWMutex
}

func (mock *accessLogMock) Record(ctx context.Context, e *domain.AccessLogEntry) error {
	if mock.RecordFunc == nil {
		panic("accessLogMock.RecordFunc: method is nil but accessLog.Record was just called")
	}
	mock.lock.Lock()
	mock.calls.Record = append(mock.calls.Record, struct {
		E *domain.AccessLogEntry
	}{E: e})
	mock.lock.Unlock()
	return mock.RecordFunc(ctx, e)
}

func (mock *accessLogMock) RecordCalls() []struct {
	E *domain.AccessLogEntry
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Record
}

var _ rateLimiter = &rateLimiterMock{}

type rateLimiterMock struct {
	TryConsumeFunc func(class ratelimit.Class, key string) ratelimit.Decision

	calls struct {
		TryConsume []struct {
			Class ratelimit.Class
			Key   string
		}
	}
	lock sync.RWMutex
}

func (mock *rateLimiterMock) TryConsume(class ratelimit.Class, key string) ratelimit.Decision {
	if mock.TryConsumeFunc == nil {
		panic("rateLimiterMock.TryConsumeFunc: method is nil but rateLimiter.TryConsume was just called")
	}
	mock.lock.Lock()
	mock.calls.TryConsume = append(mock.calls.TryConsume, struct {
		Class ratelimit.Class
		Key   string
	}{Class: class, Key: key})
	mock.lock.Unlock()
	return mock.TryConsumeFunc(class, key)
}

func (mock *rateLimiterMock) TryConsumeCalls() []struct {
	Class ratelimit.Class
	Key   string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.TryConsume
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lock.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}
