package viewstate

import (
	"context"
	"sync"
)

// DetailFetcher loads a single item by id.
type DetailFetcher[T any] func(ctx context.Context, id string) (T, error)

type DetailSnapshot[T any] struct {
	Phase Phase
	Item  T
	Err   error
}

// Detail synchronizes a single-item screen with its repository.
type Detail[T any] struct {
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	fetch  DetailFetcher[T]

	phase Phase
	item  T
	err   error
}

func NewDetail[T any](parent context.Context, fetch DetailFetcher[T]) *Detail[T] {
	ctx, cancel := context.WithCancel(parent)
	return &Detail[T]{
		ctx:    ctx,
		cancel: cancel,
		fetch:  fetch,
		phase:  PhaseIdle,
	}
}

// Load fetches the item. A repository NotFound lands in PhaseError like any
// other failure; callers branch on the returned error if they need to tell
// them apart.
func (s *Detail[T]) Load(id string) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.phase = PhaseLoading
	s.mu.Unlock()

	item, err := s.fetch(s.ctx, id)

	if ctxErr := s.ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.phase = PhaseError
		s.err = err
		return err
	}

	s.phase = PhaseReady
	s.item = item
	s.err = nil
	return nil
}

func (s *Detail[T]) Snapshot() DetailSnapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return DetailSnapshot[T]{
		Phase: s.phase,
		Item:  s.item,
		Err:   s.err,
	}
}

func (s *Detail[T]) Close() {
	s.cancel()
}
