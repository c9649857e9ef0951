// Package songlist implements the scrollable list of songs. Only the rows in
// the visible window are materialized; rows scrolled out are destroyed, and
// the last known liked flag of every song is kept so re-created rows start
// from it. Likes completing after their row is gone update that flag.
package songlist

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songlist/internal/errmsg"
	"github.com/llehouerou/songlist/internal/icons"
	"github.com/llehouerou/songlist/internal/keymap"
	"github.com/llehouerou/songlist/internal/row"
	"github.com/llehouerou/songlist/internal/song"
	"github.com/llehouerou/songlist/internal/ui"
	"github.com/llehouerou/songlist/internal/ui/action"
	"github.com/llehouerou/songlist/internal/ui/cursor"
)

// DispatchFailedMsg reports a command that could not be queued.
// The action channel is full or closed; the app treats it as fatal.
type DispatchFailedMsg struct {
	Op  errmsg.Op
	Err error
}

type liveRow struct {
	row   *row.Row
	token string
}

// Model is the song list container. It must only be used on the UI goroutine.
type Model struct {
	ui.Base

	title  string
	songs  []song.Snapshot
	cursor cursor.Cursor
	keys   keymap.KeyMap

	reg    *row.Registry
	live   map[int]*liveRow // song index -> materialized row
	liked  map[uint64]bool
	sender action.Sender
}

// New creates an empty list whose rows send commands on sender.
// liked seeds the flag of every song; it is not retained.
func New(sender action.Sender, policy row.Policy, liked map[uint64]bool) *Model {
	m := &Model{
		cursor: cursor.New(ui.ScrollMargin),
		keys:   keymap.Default(),
		reg:    row.NewRegistry(policy),
		live:   make(map[int]*liveRow),
		liked:  make(map[uint64]bool, len(liked)),
		sender: sender,
	}
	for id, v := range liked {
		if v {
			m.liked[id] = true
		}
	}
	m.reg.OnOrphan(m.settle)
	return m
}

// SetSongs replaces the displayed songs. Every row of the previous list is
// destroyed, so completions still in flight for them become no-ops.
func (m *Model) SetSongs(title string, songs []song.Snapshot) {
	m.destroyAll()
	m.title = title
	m.songs = songs
	m.cursor.Reset()
	m.sync()
}

// SetSize sets the list dimensions and re-materializes the visible rows.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.sync()
}

// Title returns the list title.
func (m *Model) Title() string {
	return m.title
}

// Len returns the number of songs in the list.
func (m *Model) Len() int {
	return len(m.songs)
}

// LiveRows returns the number of materialized rows.
func (m *Model) LiveRows() int {
	return m.reg.Len()
}

// Liked returns the last known flag of a song.
func (m *Model) Liked(id uint64) bool {
	return m.liked[id]
}

// LikedCount returns the number of songs currently known as liked.
func (m *Model) LikedCount() int {
	n := 0
	for _, v := range m.liked {
		if v {
			n++
		}
	}
	return n
}

// settle applies a like that completed after its row was destroyed. Rows
// re-created for the song in the meantime were built from the old flag, so
// they are corrected too, unless a newer command for the song is pending.
func (m *Model) settle(o row.Orphan) {
	if m.reg.LastSent(o.SongID) > o.Sent {
		return
	}
	m.liked[o.SongID] = o.Liked
	for _, lr := range m.live {
		if lr.row.Snapshot().ID == o.SongID {
			lr.row.SetLiked(o.Liked)
		}
	}
}

// Update handles navigation and row commands.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	height := m.listHeight()
	switch {
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor.Move(1, len(m.songs), height)
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor.Move(-1, len(m.songs), height)
	case key.Matches(keyMsg, m.keys.PageDown):
		m.cursor.Move(max(height/2, 1), len(m.songs), height)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.cursor.Move(-max(height/2, 1), len(m.songs), height)
	case key.Matches(keyMsg, m.keys.Top):
		m.cursor.JumpStart()
	case key.Matches(keyMsg, m.keys.Bottom):
		m.cursor.JumpEnd(len(m.songs), height)
	case key.Matches(keyMsg, m.keys.Like):
		return m.dispatch(errmsg.OpLikeSong, (*row.Row).ToggleLike)
	case key.Matches(keyMsg, m.keys.Album):
		return m.dispatch(errmsg.OpOpenAlbum, (*row.Row).GoToAlbum)
	default:
		return nil
	}

	m.sync()
	return nil
}

func (m *Model) dispatch(op errmsg.Op, send func(*row.Row) error) tea.Cmd {
	lr := m.live[m.cursor.Pos()]
	if lr == nil {
		return nil
	}
	if err := send(lr.row); err != nil {
		return func() tea.Msg { return DispatchFailedMsg{Op: op, Err: err} }
	}
	return nil
}

func (m *Model) listHeight() int {
	return m.ListHeight(ui.PanelOverhead)
}

// sync makes the set of live rows match the visible window.
func (m *Model) sync() {
	height := m.listHeight()
	m.cursor.Fit(len(m.songs), height)
	start, end := m.cursor.VisibleRange(len(m.songs), height)

	for idx, lr := range m.live {
		if idx < start || idx >= end {
			m.reg.Destroy(lr.row.Handle())
			delete(m.live, idx)
		}
	}
	for idx := start; idx < end; idx++ {
		if _, ok := m.live[idx]; !ok {
			m.live[idx] = m.materialize(m.songs[idx])
		}
	}
}

func (m *Model) materialize(s song.Snapshot) *liveRow {
	r := m.reg.Create()
	r.InitializeFrom(s)
	r.AttachSender(m.sender)

	lr := &liveRow{row: r}
	liked := m.liked
	r.Observe(func(v bool) {
		liked[s.ID] = v
		lr.token = icons.LikeToken(v)
	})
	r.SetLiked(liked[s.ID])
	return lr
}

func (m *Model) destroyAll() {
	for idx, lr := range m.live {
		m.reg.Destroy(lr.row.Handle())
		delete(m.live, idx)
	}
}
