package workspace

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
)

var _ workspaceRepo = &workspaceRepoMock{}

type workspaceRepoMock struct {
	CreateFunc                      func(ctx context.Context, w *domain.Workspace) error
	GetByIDFunc                     func(ctx context.Context, ownerIdentity string, id uuid.UUID) (*domain.Workspace, error)
	ListFunc                        func(ctx context.Context, ownerIdentity string) ([]*domain.Workspace, error)
	UpdateFunc                      func(ctx context.Context, w *domain.Workspace) error
	DeleteFunc                      func(ctx context.Context, ownerIdentity string, id uuid.UUID) error
	ReplaceEnvironmentsFunc         func(ctx context.Context, workspaceID uuid.UUID, envs []domain.Environment) error
	CountArtifactsByEnvironmentFunc func(ctx context.Context, workspaceID uuid.UUID) (map[domain.Environment]int, error)
	NameExistsFunc                  func(ctx context.Context, ownerIdentity, name string) (bool, error)

	calls struct {
		Create []struct {
			W *domain.Workspace
		}
		GetByID []struct {
			OwnerIdentity string
			ID            uuid.UUID
		}
		List []struct {
			OwnerIdentity string
		}
		Update []struct {
			W *domain.Workspace
		}
		Delete []struct {
			OwnerIdentity string
			ID            uuid.UUID
		}
		ReplaceEnvironments []struct {
			WorkspaceID uuid.UUID
			Envs        []domain.Environment
		}
		CountArtifactsByEnvironment []struct {
			WorkspaceID uuid.UUID
		}
		NameExists []struct {
			OwnerIdentity string
			Name          string
		}
	}
	lock sync.RWMutex
}

func (mock *workspaceRepoMock) Create(ctx context.Context, w *domain.Workspace) error {
	if mock.CreateFunc == nil {
		panic("workspaceRepoMock.CreateFunc: method is nil but workspaceRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		W *domain.Workspace
	}{W: w})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *workspaceRepoMock) CreateCalls() []struct {
	W *domain.Workspace
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
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

func (mock *workspaceRepoMock) List(ctx context.Context, ownerIdentity string) ([]*domain.Workspace, error) {
	if mock.ListFunc == nil {
		panic("workspaceRepoMock.ListFunc: method is nil but workspaceRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		OwnerIdentity string
	}{OwnerIdentity: ownerIdentity})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, ownerIdentity)
}

func (mock *workspaceRepoMock) ListCalls() []struct {
	OwnerIdentity string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *workspaceRepoMock) Update(ctx context.Context, w *domain.Workspace) error {
	if mock.UpdateFunc == nil {
		panic("workspaceRepoMock.UpdateFunc: method is nil but workspaceRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		W *domain.Workspace
	}{W: w})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, w)
}

func (mock *workspaceRepoMock) UpdateCalls() []struct {
	W *domain.Workspace
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *workspaceRepoMock) Delete(ctx context.Context, ownerIdentity string, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("workspaceRepoMock.DeleteFunc: method is nil but workspaceRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		OwnerIdentity string
		ID            uuid.UUID
	}{OwnerIdentity: ownerIdentity, ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, ownerIdentity, id)
}

func (mock *workspaceRepoMock) DeleteCalls() []struct {
	OwnerIdentity string
	ID            uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *workspaceRepoMock) ReplaceEnvironments(ctx context.Context, workspaceID uuid.UUID, envs []domain.Environment) error {
	if mock.ReplaceEnvironmentsFunc == nil {
		panic("workspaceRepoMock.ReplaceEnvironmentsFunc: method is nil but workspaceRepo.ReplaceEnvironments was just called")
	}
	mock.lock.Lock()
	mock.calls.ReplaceEnvironments = append(mock.calls.ReplaceEnvironments, struct {
		WorkspaceID uuid.UUID
		Envs        []domain.Environment
	}{WorkspaceID: workspaceID, Envs: envs})
	mock.lock.Unlock()
	return mock.ReplaceEnvironmentsFunc(ctx, workspaceID, envs)
}

func (mock *workspaceRepoMock) ReplaceEnvironmentsCalls() []struct {
	WorkspaceID uuid.UUID
	Envs        []domain.Environment
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ReplaceEnvironments
}

func (mock *workspaceRepoMock) CountArtifactsByEnvironment(ctx context.Context, workspaceID uuid.UUID) (map[domain.Environment]int, error) {
	if mock.CountArtifactsByEnvironmentFunc == nil {
		panic("workspaceRepoMock.CountArtifactsByEnvironmentFunc: method is nil but workspaceRepo.CountArtifactsByEnvironment was just called")
	}
	mock.lock.Lock()
	mock.calls.CountArtifactsByEnvironment = append(mock.calls.CountArtifactsByEnvironment, struct {
		WorkspaceID uuid.UUID
	}{WorkspaceID: workspaceID})
	mock.lock.Unlock()
	return mock.CountArtifactsByEnvironmentFunc(ctx, workspaceID)
}

func (mock *workspaceRepoMock) CountArtifactsByEnvironmentCalls() []struct {
	WorkspaceID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountArtifactsByEnvironment
}

func (mock *workspaceRepoMock) NameExists(ctx context.Context, ownerIdentity, name string) (bool, error) {
	if mock.NameExistsFunc == nil {
		panic("workspaceRepoMock.NameExistsFunc: method is nil but workspaceRepo.NameExists was just called")
	}
	mock.lock.Lock()
	mock.calls.NameExists = append(mock.calls.NameExists, struct {
		OwnerIdentity string
		Name          string
	}{OwnerIdentity: ownerIdentity, Name: name})
	mock.lock.Unlock()
	return mock.NameExistsFunc(ctx, ownerIdentity, name)
}

func (mock *workspaceRepoMock) NameExistsCalls() []struct {
	OwnerIdentity string
	Name          string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.NameExists
}

var _ artifactRepo = &artifactRepoMock{}

type artifactRepoMock struct {
	CreateFunc func(ctx context.Context, a *domain.Artifact) error
	ListFunc   func(ctx context.Context, f domain.ArtifactFilter) ([]*domain.Artifact, error)

	calls struct {
		Create []struct {
			A *domain.Artifact
		}
		List []struct {
			F domain.ArtifactFilter
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
