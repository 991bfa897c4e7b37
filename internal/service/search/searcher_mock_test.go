package search

import (
	"context"
	"sync"

	"github.com/heartmarshall/leadflow/internal/domain"
)

var _ searcher = &searcherMock{}

type searcherMock struct {
	SearchFunc func(ctx context.Context, term string) ([]domain.Lead, error)

	calls struct {
		Search []struct {
			Ctx  context.Context
			Term string
		}
	}
	lockSearch sync.RWMutex
}

func (mock *searcherMock) Search(ctx context.Context, term string) ([]domain.Lead, error) {
	if mock.SearchFunc == nil {
		panic("searcherMock.SearchFunc: method is nil but searcher.Search was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Term string
	}{Ctx: ctx, Term: term}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, term)
}

func (mock *searcherMock) SearchCalls() []struct {
	Ctx  context.Context
	Term string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
