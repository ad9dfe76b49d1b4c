package tag

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
)

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	CreateFunc  func(ctx context.Context, t *domain.Tag) error
	GetByIDFunc func(ctx context.Context, workspaceID, tagID uuid.UUID) (*domain.Tag, error)
	ListFunc    func(ctx context.Context, workspaceID uuid.UUID) ([]*domain.Tag, error)
	UpdateFunc  func(ctx context.Context, t *domain.Tag) error
	DeleteFunc  func(ctx context.Context, workspaceID, tagID uuid.UUID) error

	calls struct {
		Create []struct {
			T *domain.Tag
		}
		GetByID []struct {
			WorkspaceID uuid.UUID
			TagID       uuid.UUID
		}
		List []struct {
			WorkspaceID uuid.UUID
		}
		Update []struct {
			T *domain.Tag
		}
		Delete []struct {
			WorkspaceID uuid.UUID
			TagID       uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *tagRepoMock) Create(ctx context.Context, t *domain.Tag) error {
	if mock.CreateFunc == nil {
		panic("tagRepoMock.CreateFunc: method is nil but tagRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		T *domain.Tag
	}{T: t})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *tagRepoMock) CreateCalls() []struct {
	T *domain.Tag
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *tagRepoMock) GetByID(ctx context.Context, workspaceID, tagID uuid.UUID) (*domain.Tag, error) {
	if mock.GetByIDFunc == nil {
		panic("tagRepoMock.GetByIDFunc: method is nil but tagRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		WorkspaceID uuid.UUID
		TagID       uuid.UUID
	}{WorkspaceID: workspaceID, TagID: tagID})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, workspaceID, tagID)
}

func (mock *tagRepoMock) GetByIDCalls() []struct {
	WorkspaceID uuid.UUID
	TagID       uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *tagRepoMock) List(ctx context.Context, workspaceID uuid.UUID) ([]*domain.Tag, error) {
	if mock.ListFunc == nil {
		panic("tagRepoMock.ListFunc: method is nil but tagRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		WorkspaceID uuid.UUID
	}{WorkspaceID: workspaceID})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, workspaceID)
}

func (mock *tagRepoMock) ListCalls() []struct {
	WorkspaceID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *tagRepoMock) Update(ctx context.Context, t *domain.Tag) error {
	if mock.UpdateFunc == nil {
		panic("tagRepoMock.UpdateFunc: method is nil but tagRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		T *domain.Tag
	}{T: t})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, t)
}

func (mock *tagRepoMock) UpdateCalls() []struct {
	T *domain.Tag
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *tagRepoMock) Delete(ctx context.Context, workspaceID, tagID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("tagRepoMock.DeleteFunc: method is nil but tagRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		WorkspaceID uuid.UUID
		TagID       uuid.UUID
	}{WorkspaceID: workspaceID, TagID: tagID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, workspaceID, tagID)
}

func (mock *tagRepoMock) DeleteCalls() []struct {
	WorkspaceID uuid.UUID
	TagID       uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
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
