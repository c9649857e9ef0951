// internal/app/app.go
package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songlist/internal/keymap"
	"github.com/llehouerou/songlist/internal/row"
	"github.com/llehouerou/songlist/internal/song"
	"github.com/llehouerou/songlist/internal/ui/action"
	"github.com/llehouerou/songlist/internal/ui/songlist"
)

// Model is the root application model.
type Model struct {
	list  *songlist.Model
	songs []song.Snapshot
	index map[uint64]int // song ID -> position in songs
	album *song.AlbumRef // non-nil while an album page is shown

	keys keymap.KeyMap
	help help.Model

	notification   *Notification
	notificationID int64

	// fatal is set once the action channel rejected a command.
	// From then on only quitting is possible.
	fatal string

	width  int
	height int
}

// New creates the root model. Rows send commands on sender and reconcile
// completions with policy; liked seeds the flags of catalog songs.
func New(sender action.Sender, policy row.Policy, records []song.Record, liked map[uint64]bool) Model {
	songs := make([]song.Snapshot, len(records))
	index := make(map[uint64]int, len(records))
	for i, rec := range records {
		songs[i] = rec.Snapshot()
		index[rec.ID] = i
	}

	list := songlist.New(sender, policy, liked)
	list.SetSongs(songlist.AllSongsTitle(), songs)

	return Model{
		list:  list,
		songs: songs,
		index: index,
		keys:  keymap.Default(),
		help:  help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("songlist")
}

// Fatal returns the fatal error message, if any.
func (m Model) Fatal() string {
	return m.fatal
}

// List returns the song list.
func (m Model) List() *songlist.Model {
	return m.list
}

func (m Model) songName(id uint64) string {
	if i, ok := m.index[id]; ok {
		return m.songs[i].Name
	}
	return ""
}
