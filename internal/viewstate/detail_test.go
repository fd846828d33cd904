package viewstate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentease/pkg/errors"
)

func TestDetail_LoadSuccess(t *testing.T) {
	fetch := func(ctx context.Context, id string) (row, error) {
		return row{ID: id, Name: "Sea View Residency"}, nil
	}

	detail := NewDetail(context.Background(), fetch)
	defer detail.Close()

	require.NoError(t, detail.Load("a1"))

	snap := detail.Snapshot()
	assert.Equal(t, PhaseReady, snap.Phase)
	assert.Equal(t, row{ID: "a1", Name: "Sea View Residency"}, snap.Item)
	assert.NoError(t, snap.Err)
}

func TestDetail_NotFound(t *testing.T) {
	notFound := errors.NotFound("Apartment", nil)
	fetch := func(ctx context.Context, id string) (row, error) {
		return row{}, notFound
	}

	detail := NewDetail(context.Background(), fetch)
	defer detail.Close()

	err := detail.Load("missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	snap := detail.Snapshot()
	assert.Equal(t, PhaseError, snap.Phase)
	assert.Equal(t, notFound, snap.Err)
}

func TestDetail_LoadAfterCloseIsRejected(t *testing.T) {
	fetch := func(ctx context.Context, id string) (row, error) {
		return row{ID: id}, nil
	}

	detail := NewDetail(context.Background(), fetch)
	detail.Close()

	assert.ErrorIs(t, detail.Load("a1"), context.Canceled)
}
