package viewstate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentease/pkg/errors"
)

type row struct {
	ID   string
	Name string
}

func rowID(r row) string { return r.ID }

func staticFetcher(rows ...row) Fetcher[row] {
	return func(ctx context.Context) ([]row, error) {
		return rows, nil
	}
}

func failingFetcher(err error) Fetcher[row] {
	return func(ctx context.Context) ([]row, error) {
		return nil, err
	}
}

func noopRemover(ctx context.Context, id string) error { return nil }

func TestList_InitialLoad(t *testing.T) {
	list := NewList(context.Background(), staticFetcher(row{"1", "A"}, row{"2", "B"}), noopRemover, rowID)
	defer list.Close()

	snap := list.Snapshot()
	assert.Equal(t, PhaseIdle, snap.Phase)
	assert.Empty(t, snap.Items)

	require.NoError(t, list.Load())

	snap = list.Snapshot()
	assert.Equal(t, PhaseReady, snap.Phase)
	assert.Equal(t, []row{{"1", "A"}, {"2", "B"}}, snap.Items)
	assert.NoError(t, snap.Err)
}

func TestList_FirstLoadFailure_NoPartialContent(t *testing.T) {
	storeErr := errors.Unavailable("Failed to list apartments", nil)
	list := NewList(context.Background(), failingFetcher(storeErr), noopRemover, rowID)
	defer list.Close()

	err := list.Load()

	require.Error(t, err)
	snap := list.Snapshot()
	assert.Equal(t, PhaseError, snap.Phase)
	assert.Empty(t, snap.Items)
	assert.Equal(t, storeErr, snap.Err)
}

func TestList_FailedRefreshKeepsDisplayedItems(t *testing.T) {
	storeErr := errors.Unavailable("Failed to list apartments", nil)
	calls := 0
	fetch := func(ctx context.Context) ([]row, error) {
		calls++
		if calls == 1 {
			return []row{{"1", "A"}}, nil
		}
		return nil, storeErr
	}

	list := NewList(context.Background(), fetch, noopRemover, rowID)
	defer list.Close()

	require.NoError(t, list.Load())
	require.Error(t, list.Refresh())

	snap := list.Snapshot()
	assert.Equal(t, PhaseError, snap.Phase)
	// The stale content stays visible behind the error notice.
	assert.Equal(t, []row{{"1", "A"}}, snap.Items)
	assert.Equal(t, storeErr, snap.Err)
}

func TestList_RefreshShowsOldItemsWhileInFlight(t *testing.T) {
	var list *List[row]
	calls := 0
	fetch := func(ctx context.Context) ([]row, error) {
		calls++
		if calls == 1 {
			return []row{{"1", "A"}}, nil
		}
		// Observed mid-refresh: the previous items must still be there.
		snap := list.Snapshot()
		assert.Equal(t, PhaseRefreshing, snap.Phase)
		assert.Equal(t, []row{{"1", "A"}}, snap.Items)
		return []row{{"2", "B"}}, nil
	}

	list = NewList(context.Background(), fetch, noopRemover, rowID)
	defer list.Close()

	require.NoError(t, list.Load())
	require.NoError(t, list.Refresh())

	snap := list.Snapshot()
	assert.Equal(t, PhaseReady, snap.Phase)
	assert.Equal(t, []row{{"2", "B"}}, snap.Items)
}

func TestList_OptimisticDeleteSuccess(t *testing.T) {
	removed := ""
	remove := func(ctx context.Context, id string) error {
		removed = id
		return nil
	}

	list := NewList(context.Background(), staticFetcher(row{"1", "A"}, row{"2", "B"}, row{"3", "C"}), remove, rowID)
	defer list.Close()

	require.NoError(t, list.Load())
	require.NoError(t, list.Delete("2"))

	assert.Equal(t, "2", removed)
	snap := list.Snapshot()
	assert.Equal(t, []row{{"1", "A"}, {"3", "C"}}, snap.Items)
}

func TestList_ItemGoneBeforeRemoteCallCompletes(t *testing.T) {
	var list *List[row]
	remove := func(ctx context.Context, id string) error {
		// The remote call is still in flight; the item is already gone locally.
		snap := list.Snapshot()
		assert.Equal(t, []row{{"1", "A"}, {"3", "C"}}, snap.Items)
		return nil
	}

	list = NewList(context.Background(), staticFetcher(row{"1", "A"}, row{"2", "B"}, row{"3", "C"}), remove, rowID)
	defer list.Close()

	require.NoError(t, list.Load())
	require.NoError(t, list.Delete("2"))
}

func TestList_DeleteFailureReconcilesByRefetch(t *testing.T) {
	deleteErr := errors.Unavailable("Failed to delete listing", nil)
	remove := func(ctx context.Context, id string) error {
		return deleteErr
	}

	// The delete truly failed server-side, so the re-fetch still contains B.
	list := NewList(context.Background(), staticFetcher(row{"1", "A"}, row{"2", "B"}, row{"3", "C"}), remove, rowID)
	defer list.Close()

	require.NoError(t, list.Load())
	err := list.Delete("2")

	require.Error(t, err)
	assert.Equal(t, deleteErr, err)
	snap := list.Snapshot()
	assert.Equal(t, PhaseReady, snap.Phase)
	assert.Equal(t, []row{{"1", "A"}, {"2", "B"}, {"3", "C"}}, snap.Items)
}

func TestList_DeleteFailureThenRefetchFailure(t *testing.T) {
	deleteErr := errors.Unavailable("Failed to delete listing", nil)
	storeErr := errors.Unavailable("Failed to list", nil)
	calls := 0
	fetch := func(ctx context.Context) ([]row, error) {
		calls++
		if calls == 1 {
			return []row{{"1", "A"}, {"2", "B"}}, nil
		}
		return nil, storeErr
	}
	remove := func(ctx context.Context, id string) error {
		return deleteErr
	}

	list := NewList(context.Background(), fetch, remove, rowID)
	defer list.Close()

	require.NoError(t, list.Load())
	err := list.Delete("2")

	// The original delete failure wins over the reconcile failure.
	assert.Equal(t, deleteErr, err)
	snap := list.Snapshot()
	assert.Equal(t, PhaseError, snap.Phase)
	assert.Equal(t, []row{{"1", "A"}}, snap.Items)
}

func TestList_CloseDiscardsInFlightResult(t *testing.T) {
	fetchStarted := make(chan struct{})
	releaseFetch := make(chan struct{})
	fetch := func(ctx context.Context) ([]row, error) {
		close(fetchStarted)
		<-releaseFetch
		return []row{{"1", "A"}}, nil
	}

	list := NewList(context.Background(), fetch, noopRemover, rowID)

	done := make(chan error, 1)
	go func() {
		done <- list.Load()
	}()

	<-fetchStarted
	list.Close()
	close(releaseFetch)

	err := <-done
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	// The fetch result never lands on a closed screen.
	snap := list.Snapshot()
	assert.Empty(t, snap.Items)
	assert.NotEqual(t, PhaseReady, snap.Phase)
}

func TestList_LoadAfterCloseIsRejected(t *testing.T) {
	list := NewList(context.Background(), staticFetcher(row{"1", "A"}), noopRemover, rowID)
	list.Close()

	assert.ErrorIs(t, list.Load(), context.Canceled)
	assert.ErrorIs(t, list.Refresh(), context.Canceled)
	assert.ErrorIs(t, list.Delete("1"), context.Canceled)
}
