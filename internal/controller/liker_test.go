package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/songlist/internal/favorites"
	"github.com/llehouerou/songlist/internal/song"
	"github.com/llehouerou/songlist/internal/state"
)

func TestLocalLiker(t *testing.T) {
	m, err := state.OpenMemory()
	require.NoError(t, err)
	defer m.Close()
	store := favorites.New(m.DB())
	ctx := context.Background()

	l := LocalLiker(store)
	require.NoError(t, l.SetLiked(ctx, song.Record{ID: 9}, true))

	liked, err := store.IsLiked(ctx, 9)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestChain_AllSucceed(t *testing.T) {
	a, b := &fakeLiker{}, &fakeLiker{}

	err := Chain{a, b}.SetLiked(context.Background(), song.Record{ID: 1}, true)

	require.NoError(t, err)
	assert.Equal(t, []bool{true}, a.calls)
	assert.Equal(t, []bool{true}, b.calls)
}

func TestChain_RevertsEarlierOnFailure(t *testing.T) {
	remoteErr := errors.New("remote down")
	local, remote := &fakeLiker{}, &fakeLiker{err: remoteErr}

	err := Chain{local, remote}.SetLiked(context.Background(), song.Record{ID: 1}, true)

	require.ErrorIs(t, err, remoteErr)
	assert.Equal(t, []bool{true, false}, local.calls, "local like should be reverted")
}

func TestChain_Empty(t *testing.T) {
	assert.NoError(t, Chain{}.SetLiked(context.Background(), song.Record{}, true))
}
