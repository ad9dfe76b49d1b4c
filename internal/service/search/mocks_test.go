package search

import (
	"context"
	"sync"

	"github.com/akorchemkin/devstash-backend/internal/domain"
	"github.com/akorchemkin/devstash-backend/internal/ratelimit"
)

var _ artifactRepo = &artifactRepoMock{}

type artifactRepoMock struct {
	ListFunc func(ctx context.Context, f domain.ArtifactFilter) ([]*domain.Artifact, error)

	calls struct {
		List []struct {
			F domain.ArtifactFilter
		}
	}
	lock sync.RWMutex
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
