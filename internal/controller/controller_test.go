package controller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/songlist/internal/catalog"
	"github.com/llehouerou/songlist/internal/song"
	"github.com/llehouerou/songlist/internal/ui/action"
)

type fakeSongs struct {
	records map[uint64]song.Record
}

func (f fakeSongs) Get(_ context.Context, id uint64) (song.Record, error) {
	r, ok := f.records[id]
	if !ok {
		return song.Record{}, catalog.ErrNotFound
	}
	return r, nil
}

func (f fakeSongs) ByAlbum(_ context.Context, albumID uint64) ([]song.Record, error) {
	var out []song.Record
	for _, r := range f.records {
		if r.AlbumID == albumID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeLiker struct {
	mu    sync.Mutex
	calls []bool
	err   error
	delay time.Duration
	panic bool
}

func (f *fakeLiker) SetLiked(ctx context.Context, _ song.Record, liked bool) error {
	if f.panic {
		panic("boom")
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, liked)
	return f.err
}

type mailbox struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (m *mailbox) Send(msg tea.Msg) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, msg)
}

func (m *mailbox) completions() []CompletionMsg {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []CompletionMsg
	for _, msg := range m.msgs {
		if c, ok := msg.(CompletionMsg); ok {
			out = append(out, c)
		}
	}
	return out
}

var songs = fakeSongs{records: map[uint64]song.Record{
	1: {ID: 1, AlbumID: 10, Title: "Olson", Artist: "Boards of Canada"},
	2: {ID: 2, AlbumID: 10, Title: "Pete Standing Alone", Artist: "Boards of Canada"},
	3: {ID: 3, AlbumID: 30, Title: "Avril 14th", Artist: "Aphex Twin"},
}}

func startController(t *testing.T, liker Liker, opts Options) (*action.Channel, *mailbox, context.CancelFunc, chan error) {
	t.Helper()
	ch := action.NewChannel(16)
	box := &mailbox{}
	c := New(ch.Receive(), songs, liker, box, opts)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	return ch, box, cancel, done
}

func sendLike(t *testing.T, ch *action.Channel, id uint64, like bool, fn func(action.Outcome)) {
	t.Helper()
	require.NoError(t, ch.Send(action.Msg{
		Source: "test",
		Action: action.LikeSong{ID: id, Like: like, OnComplete: action.Once(fn)},
	}))
}

func TestRun_LikeSuccess(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		liker := &fakeLiker{}
		ch, box, cancel, done := startController(t, liker, Options{})
		defer cancel()

		var got []action.Outcome
		sendLike(t, ch, 1, true, func(o action.Outcome) { got = append(got, o) })
		synctest.Wait()

		comps := box.completions()
		require.Len(t, comps, 1)
		assert.Equal(t, uint64(1), comps[0].SongID)
		assert.True(t, comps[0].Like)
		assert.Empty(t, got, "completion must not run on the controller side")

		comps[0].Apply()
		require.Len(t, got, 1)
		assert.True(t, got[0].Liked)
		assert.NoError(t, got[0].Err)
		assert.Equal(t, []bool{true}, liker.calls)

		ch.Close()
		assert.NoError(t, <-done)
	})
}

func TestRun_LikeFailureStillCompletes(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		liker := &fakeLiker{err: errors.New("rejected")}
		ch, box, cancel, _ := startController(t, liker, Options{})
		defer cancel()

		sendLike(t, ch, 1, true, nil)
		synctest.Wait()

		comps := box.completions()
		require.Len(t, comps, 1)
		assert.Error(t, comps[0].Outcome.Err)
		assert.False(t, comps[0].Outcome.Liked, "failure reports the previous value")
		ch.Close()
	})
}

func TestRun_UnknownSong(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		liker := &fakeLiker{}
		ch, box, cancel, _ := startController(t, liker, Options{})
		defer cancel()

		sendLike(t, ch, 404, true, nil)
		synctest.Wait()

		comps := box.completions()
		require.Len(t, comps, 1)
		assert.ErrorIs(t, comps[0].Outcome.Err, catalog.ErrNotFound)
		assert.Empty(t, liker.calls)
		ch.Close()
	})
}

func TestRun_LikerPanicStillCompletes(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ch, box, cancel, _ := startController(t, &fakeLiker{panic: true}, Options{})
		defer cancel()

		sendLike(t, ch, 1, true, nil)
		synctest.Wait()

		comps := box.completions()
		require.Len(t, comps, 1)
		assert.ErrorContains(t, comps[0].Outcome.Err, "panic")
		ch.Close()
	})
}

func TestRun_Timeout(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		liker := &fakeLiker{delay: time.Minute}
		ch, box, cancel, _ := startController(t, liker, Options{Timeout: time.Second})
		defer cancel()

		sendLike(t, ch, 1, true, nil)
		time.Sleep(2 * time.Second)
		synctest.Wait()

		comps := box.completions()
		require.Len(t, comps, 1)
		assert.ErrorIs(t, comps[0].Outcome.Err, context.DeadlineExceeded)
		ch.Close()
	})
}

func TestRun_EachCommandCompletedOnce(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ch, box, cancel, done := startController(t, &fakeLiker{delay: time.Millisecond}, Options{Workers: 2})
		defer cancel()

		counts := make(map[uint64]int)
		for _, id := range []uint64{1, 2, 3, 1, 2} {
			sendLike(t, ch, id, true, func(action.Outcome) { counts[id]++ })
		}
		ch.Close()
		require.NoError(t, <-done)

		comps := box.completions()
		require.Len(t, comps, 5)
		for _, c := range comps {
			c.Apply()
			c.Apply()
		}
		assert.Equal(t, map[uint64]int{1: 2, 2: 2, 3: 1}, counts)
	})
}

func TestRun_ShutdownCompletesPending(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		liker := &fakeLiker{delay: time.Hour}
		ch, box, cancel, done := startController(t, liker, Options{Workers: 1, Timeout: 2 * time.Hour})

		sendLike(t, ch, 1, true, nil)
		synctest.Wait()
		cancel()
		require.NoError(t, <-done)

		comps := box.completions()
		require.Len(t, comps, 1)
		assert.ErrorIs(t, comps[0].Outcome.Err, context.Canceled)
	})
}

func TestDrain_CompletesBuffered(t *testing.T) {
	ch := action.NewChannel(4)
	box := &mailbox{}
	c := New(ch.Receive(), songs, &fakeLiker{}, box, Options{})

	sendLike(t, ch, 1, true, nil)
	sendLike(t, ch, 2, false, nil)
	require.NoError(t, ch.Send(action.Msg{Action: action.ToAlbumPage{}}))

	c.drain(context.Canceled)

	comps := box.completions()
	require.Len(t, comps, 2)
	for _, comp := range comps {
		assert.ErrorIs(t, comp.Outcome.Err, context.Canceled)
	}
	assert.Zero(t, ch.Len())
}

func TestRun_ToAlbumPage(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ch, box, cancel, _ := startController(t, &fakeLiker{}, Options{})
		defer cancel()

		album := song.AlbumRef{ID: 10, Name: "Music Has the Right to Children"}
		require.NoError(t, ch.Send(action.Msg{Source: "test", Action: action.ToAlbumPage{Album: album}}))
		synctest.Wait()

		box.mu.Lock()
		defer box.mu.Unlock()
		require.Len(t, box.msgs, 1)
		page, ok := box.msgs[0].(AlbumPageMsg)
		require.True(t, ok, "got %T, want AlbumPageMsg", box.msgs[0])
		assert.Equal(t, album, page.Album)
		assert.Len(t, page.Songs, 2)
		assert.NoError(t, page.Err)
		ch.Close()
	})
}

func TestRun_IgnoresUnknownActions(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ch, box, cancel, done := startController(t, &fakeLiker{}, Options{})
		defer cancel()

		require.NoError(t, ch.Send(action.Msg{Source: "test"}))
		ch.Close()
		require.NoError(t, <-done)

		assert.Empty(t, box.msgs)
	})
}
