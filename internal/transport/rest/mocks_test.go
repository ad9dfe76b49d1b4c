package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/internal/service/artifact"
	"github.com/akorchemkin/devstash-backend/internal/service/tag"
	"github.com/akorchemkin/devstash-backend/internal/service/workspace"
)

// ---------------------------------------------------------------------------
// workspaceService mock
// ---------------------------------------------------------------------------

var _ workspaceService = &workspaceServiceMock{}

type workspaceServiceMock struct {
	CreateFunc                 func(ctx context.Context, input workspace.CreateWorkspaceInput) (*domain.Workspace, error)
	ListFunc                   func(ctx context.Context) ([]*domain.Workspace, error)
	GetFunc                    func(ctx context.Context, workspaceID uuid.UUID) (*domain.Workspace, error)
	UpdateFunc                 func(ctx context.Context, input workspace.UpdateWorkspaceInput) (*domain.Workspace, error)
	DeleteFunc                 func(ctx context.Context, workspaceID uuid.UUID) error
	SetEnabledEnvironmentsFunc func(ctx context.Context, input workspace.SetEnvironmentsInput) (*domain.Workspace, error)
	ExportFunc                 func(ctx context.Context, workspaceID uuid.UUID) (*workspace.ExportResult, error)
	ImportFunc                 func(ctx context.Context, input workspace.ImportWorkspaceInput) (*workspace.ImportResult, error)

	calls struct {
		Create []workspace.CreateWorkspaceInput
		Update []workspace.UpdateWorkspaceInput
	}
	lock sync.RWMutex
}

func (mock *workspaceServiceMock) Create(ctx context.Context, input workspace.CreateWorkspaceInput) (*domain.Workspace, error) {
	if mock.CreateFunc == nil {
		panic("workspaceServiceMock.CreateFunc: method is nil but workspaceService.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, input)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *workspaceServiceMock) CreateCalls() []workspace.CreateWorkspaceInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *workspaceServiceMock) List(ctx context.Context) ([]*domain.Workspace, error) {
	if mock.ListFunc == nil {
		panic("workspaceServiceMock.ListFunc: method is nil but workspaceService.List was just called")
	}
	return mock.ListFunc(ctx)
}

func (mock *workspaceServiceMock) Get(ctx context.Context, workspaceID uuid.UUID) (*domain.Workspace, error) {
	if mock.GetFunc == nil {
		panic("workspaceServiceMock.GetFunc: method is nil but workspaceService.Get was just called")
	}
	return mock.GetFunc(ctx, workspaceID)
}

func (mock *workspaceServiceMock) Update(ctx context.Context, input workspace.UpdateWorkspaceInput) (*domain.Workspace, error) {
	if mock.UpdateFunc == nil {
		panic("workspaceServiceMock.UpdateFunc: method is nil but workspaceService.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, input)
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *workspaceServiceMock) UpdateCalls() []workspace.UpdateWorkspaceInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *workspaceServiceMock) Delete(ctx context.Context, workspaceID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("workspaceServiceMock.DeleteFunc: method is nil but workspaceService.Delete was just called")
	}
	return mock.DeleteFunc(ctx, workspaceID)
}

func (mock *workspaceServiceMock) SetEnabledEnvironments(ctx context.Context, input workspace.SetEnvironmentsInput) (*domain.Workspace, error) {
	if mock.SetEnabledEnvironmentsFunc == nil {
		panic("workspaceServiceMock.SetEnabledEnvironmentsFunc: method is nil but workspaceService.SetEnabledEnvironments was just called")
	}
	return mock.SetEnabledEnvironmentsFunc(ctx, input)
}

func (mock *workspaceServiceMock) Export(ctx context.Context, workspaceID uuid.UUID) (*workspace.ExportResult, error) {
	if mock.ExportFunc == nil {
		panic("workspaceServiceMock.ExportFunc: method is nil but workspaceService.Export was just called")
	}
	return mock.ExportFunc(ctx, workspaceID)
}

func (mock *workspaceServiceMock) Import(ctx context.Context, input workspace.ImportWorkspaceInput) (*workspace.ImportResult, error) {
	if mock.ImportFunc == nil {
		panic("workspaceServiceMock.ImportFunc: method is nil but workspaceService.Import was just called")
	}
	return mock.ImportFunc(ctx, input)
}

// ---------------------------------------------------------------------------
// artifactService mock
// ---------------------------------------------------------------------------

var _ artifactService = &artifactServiceMock{}

type artifactServiceMock struct {
	CreateFunc      func(ctx context.Context, input artifact.CreateArtifactInput) (*domain.Artifact, error)
	GetFunc         func(ctx context.Context, workspaceID, artifactID uuid.UUID) (*domain.Artifact, error)
	ListFunc        func(ctx context.Context, input artifact.ListArtifactsInput) ([]*domain.Artifact, error)
	UpdateFunc      func(ctx context.Context, input artifact.UpdateArtifactInput) (*domain.Artifact, error)
	DeleteFunc      func(ctx context.Context, workspaceID, artifactID uuid.UUID) error
	RevealValueFunc func(ctx context.Context, workspaceID, artifactID uuid.UUID) (*domain.Artifact, error)
	DuplicateFunc   func(ctx context.Context, input artifact.DuplicateArtifactInput) (*domain.Artifact, error)

	calls struct {
		Create    []artifact.CreateArtifactInput
		List      []artifact.ListArtifactsInput
		Update    []artifact.UpdateArtifactInput
		Duplicate []artifact.DuplicateArtifactInput
	}
	lock sync.RWMutex
}

func (mock *artifactServiceMock) Create(ctx context.Context, input artifact.CreateArtifactInput) (*domain.Artifact, error) {
	if mock.CreateFunc == nil {
		panic("artifactServiceMock.CreateFunc: method is nil but artifactService.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, input)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *artifactServiceMock) CreateCalls() []artifact.CreateArtifactInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *artifactServiceMock) Get(ctx context.Context, workspaceID, artifactID uuid.UUID) (*domain.Artifact, error) {
	if mock.GetFunc == nil {
		panic("artifactServiceMock.GetFunc: method is nil but artifactService.Get was just called")
	}
	return mock.GetFunc(ctx, workspaceID, artifactID)
}

func (mock *artifactServiceMock) List(ctx context.Context, input artifact.ListArtifactsInput) ([]*domain.Artifact, error) {
	if mock.ListFunc == nil {
		panic("artifactServiceMock.ListFunc: method is nil but artifactService.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, input)
	mock.lock.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *artifactServiceMock) ListCalls() []artifact.ListArtifactsInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *artifactServiceMock) Update(ctx context.Context, input artifact.UpdateArtifactInput) (*domain.Artifact, error) {
	if mock.UpdateFunc == nil {
		panic("artifactServiceMock.UpdateFunc: method is nil but artifactService.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, input)
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *artifactServiceMock) UpdateCalls() []artifact.UpdateArtifactInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *artifactServiceMock) Delete(ctx context.Context, workspaceID, artifactID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("artifactServiceMock.DeleteFunc: method is nil but artifactService.Delete was just called")
	}
	return mock.DeleteFunc(ctx, workspaceID, artifactID)
}

func (mock *artifactServiceMock) RevealValue(ctx context.Context, workspaceID, artifactID uuid.UUID) (*domain.Artifact, error) {
	if mock.RevealValueFunc == nil {
		panic("artifactServiceMock.RevealValueFunc: method is nil but artifactService.RevealValue was just called")
	}
	return mock.RevealValueFunc(ctx, workspaceID, artifactID)
}

func (mock *artifactServiceMock) Duplicate(ctx context.Context, input artifact.DuplicateArtifactInput) (*domain.Artifact, error) {
	if mock.DuplicateFunc == nil {
		panic("artifactServiceMock.DuplicateFunc: method is nil but artifactService.Duplicate was just called")
	}
	mock.lock.Lock()
	mock.calls.Duplicate = append(mock.calls.Duplicate, input)
	mock.lock.Unlock()
	return mock.DuplicateFunc(ctx, input)
}

func (mock *artifactServiceMock) DuplicateCalls() []artifact.DuplicateArtifactInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Duplicate
}

// ---------------------------------------------------------------------------
// tagService mock
// ---------------------------------------------------------------------------

var _ tagService = &tagServiceMock{}

type tagServiceMock struct {
	CreateFunc func(ctx context.Context, input tag.CreateTagInput) (*domain.Tag, error)
	ListFunc   func(ctx context.Context, workspaceID uuid.UUID) ([]*domain.Tag, error)
	UpdateFunc func(ctx context.Context, input tag.UpdateTagInput) (*domain.Tag, error)
	DeleteFunc func(ctx context.Context, workspaceID, tagID uuid.UUID) error
}

func (mock *tagServiceMock) Create(ctx context.Context, input tag.CreateTagInput) (*domain.Tag, error) {
	if mock.CreateFunc == nil {
		panic("tagServiceMock.CreateFunc: method is nil but tagService.Create was just called")
	}
	return mock.CreateFunc(ctx, input)
}

func (mock *tagServiceMock) List(ctx context.Context, workspaceID uuid.UUID) ([]*domain.Tag, error) {
	if mock.ListFunc == nil {
		panic("tagServiceMock.ListFunc: method is nil but tagService.List was just called")
	}
	return mock.ListFunc(ctx, workspaceID)
}

func (mock *tagServiceMock) Update(ctx context.Context, input tag.UpdateTagInput) (*domain.Tag, error) {
	if mock.UpdateFunc == nil {
		panic("tagServiceMock.UpdateFunc: method is nil but tagService.Update was just called")
	}
	return mock.UpdateFunc(ctx, input)
}

func (mock *tagServiceMock) Delete(ctx context.Context, workspaceID, tagID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("tagServiceMock.DeleteFunc: method is nil but tagService.Delete was just called")
	}
	return mock.DeleteFunc(ctx, workspaceID, tagID)
}

// ---------------------------------------------------------------------------
// searchService mock
// ---------------------------------------------------------------------------

var _ searchService = &searchServiceMock{}

type searchServiceMock struct {
	SearchFunc   func(ctx context.Context, query string) ([]*domain.Artifact, error)
	ListDocsFunc func(ctx context.Context) ([]*domain.Artifact, error)

	calls struct {
		Search []string
	}
	lock sync.RWMutex
}

func (mock *searchServiceMock) Search(ctx context.Context, query string) ([]*domain.Artifact, error) {
	if mock.SearchFunc == nil {
		panic("searchServiceMock.SearchFunc: method is nil but searchService.Search was just called")
	}
	mock.lock.Lock()
	mock.calls.Search = append(mock.calls.Search, query)
	mock.lock.Unlock()
	return mock.SearchFunc(ctx, query)
}

func (mock *searchServiceMock) SearchCalls() []string {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Search
}

func (mock *searchServiceMock) ListDocs(ctx context.Context) ([]*domain.Artifact, error) {
	if mock.ListDocsFunc == nil {
		panic("searchServiceMock.ListDocsFunc: method is nil but searchService.ListDocs was just called")
	}
	return mock.ListDocsFunc(ctx)
}
