// Package viewstate keeps a screen's local list or detail state consistent
// with the repositories across initial load, manual refresh and delete.
// A synchronizer is bound to the lifetime of the view that owns it: Close
// cancels in-flight fetches and any late result is discarded instead of being
// applied to a dead screen.
package viewstate

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"rentease/pkg/logger"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseRefreshing
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseRefreshing:
		return "refreshing"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Fetcher loads the full list from a repository.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Remover issues the remote delete for one item.
type Remover func(ctx context.Context, id string) error

// ListSnapshot is a point-in-time copy of a list screen's state.
type ListSnapshot[T any] struct {
	Phase Phase
	Items []T
	Err   error
}

// List synchronizes one list screen with its repository. Overlapping fetches
// from rapid refresh triggers are not serialized: results apply in completion
// order and the last one to land wins, matching the screen behavior this
// models.
type List[T any] struct {
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	fetch  Fetcher[T]
	remove Remover
	idOf   func(T) string

	phase Phase
	items []T
	err   error
}

func NewList[T any](parent context.Context, fetch Fetcher[T], remove Remover, idOf func(T) string) *List[T] {
	ctx, cancel := context.WithCancel(parent)
	return &List[T]{
		ctx:    ctx,
		cancel: cancel,
		fetch:  fetch,
		remove: remove,
		idOf:   idOf,
		phase:  PhaseIdle,
	}
}

// Load performs the initial fetch. It blocks until the fetch completes or the
// synchronizer is closed.
func (s *List[T]) Load() error {
	return s.runFetch(PhaseLoading)
}

// Refresh re-fetches the list. Already-displayed items stay visible until the
// new result arrives, so a refresh never flashes an empty screen.
func (s *List[T]) Refresh() error {
	s.mu.Lock()
	phase := PhaseLoading
	if len(s.items) > 0 {
		phase = PhaseRefreshing
	}
	s.mu.Unlock()

	return s.runFetch(phase)
}

func (s *List[T]) runFetch(inFlight Phase) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}

	op := uuid.NewString()

	s.mu.Lock()
	s.phase = inFlight
	s.mu.Unlock()

	logger.Debug("viewstate: fetch %s started", op)
	items, err := s.fetch(s.ctx)

	if ctxErr := s.ctx.Err(); ctxErr != nil {
		// The view is gone; drop the result.
		logger.Debug("viewstate: fetch %s discarded after close", op)
		return ctxErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		// Keep whatever was already on screen; only the very first load
		// has nothing to keep.
		s.phase = PhaseError
		s.err = err
		logger.Debug("viewstate: fetch %s failed: %v", op, err)
		return err
	}

	s.phase = PhaseReady
	s.items = items
	s.err = nil
	logger.Debug("viewstate: fetch %s applied %d items", op, len(items))
	return nil
}

// Delete removes the item locally before the remote call completes. If the
// remote delete fails, the list is re-fetched to restore a consistent view
// rather than re-inserting the removed item, and the failure is returned so
// the caller can surface it.
func (s *List[T]) Delete(id string) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.items[:0:0]
	for _, item := range s.items {
		if s.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()

	if err := s.remove(s.ctx, id); err != nil {
		logger.Warn("viewstate: delete of %s failed, reconciling: %v", id, err)
		if refErr := s.runFetch(PhaseRefreshing); refErr != nil {
			return err
		}
		return err
	}

	return nil
}

// Snapshot returns a copy of the current state.
func (s *List[T]) Snapshot() ListSnapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]T, len(s.items))
	copy(items, s.items)

	return ListSnapshot[T]{
		Phase: s.phase,
		Items: items,
		Err:   s.err,
	}
}

// Close releases the synchronizer. In-flight fetches are cancelled and their
// results discarded.
func (s *List[T]) Close() {
	s.cancel()
}
