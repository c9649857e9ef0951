// internal/app/update.go
package app

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/songlist/internal/controller"
	"github.com/llehouerou/songlist/internal/errmsg"
	"github.com/llehouerou/songlist/internal/song"
	"github.com/llehouerou/songlist/internal/ui/headerbar"
	"github.com/llehouerou/songlist/internal/ui/songlist"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case controller.CompletionMsg:
		return m.handleCompletion(msg)

	case controller.AlbumPageMsg:
		return m.handleAlbumPage(msg)

	case songlist.DispatchFailedMsg:
		log.Printf("dispatch: %s: %v", msg.Op, msg.Err)
		m.fatal = errmsg.Format(msg.Op, msg.Err)
		return m, nil

	case NotificationClearMsg:
		if m.notification != nil && m.notification.ID == msg.ID {
			m.notification = nil
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.fatal != "" {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.album != nil {
			m.album = nil
			m.list.SetSongs(songlist.AllSongsTitle(), m.songs)
		}
		return m, nil
	}

	return m, m.list.Update(msg)
}

// handleCompletion runs the completion of a like command. The row applies
// the result itself if it is still alive; otherwise the list settles the
// song's flag.
func (m Model) handleCompletion(msg controller.CompletionMsg) (tea.Model, tea.Cmd) {
	msg.Apply()

	if err := msg.Outcome.Err; err != nil {
		return m.notify(errmsg.FormatWith(errmsg.OpLikeSong, m.songName(msg.SongID), err), true)
	}

	text := "Removed from liked songs"
	if msg.Outcome.Liked {
		text = "Added to liked songs"
	}
	if name := m.songName(msg.SongID); name != "" {
		text = fmt.Sprintf("%s: %s", text, name)
	}
	return m.notify(text, false)
}

func (m Model) handleAlbumPage(msg controller.AlbumPageMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m.notify(errmsg.FormatWith(errmsg.OpOpenAlbum, msg.Album.Name, msg.Err), true)
	}

	songs := make([]song.Snapshot, len(msg.Songs))
	for i, rec := range msg.Songs {
		songs[i] = rec.Snapshot()
	}

	album := msg.Album
	m.album = &album
	m.list.SetSongs(songlist.AlbumTitle(album), songs)
	return m, nil
}

func (m Model) notify(text string, isError bool) (tea.Model, tea.Cmd) {
	m.notificationID++
	m.notification = &Notification{ID: m.notificationID, Message: text, IsError: isError}
	return m, NotificationClearCmd(m.notificationID)
}

// resize gives the list what is left after the header, the status line
// and the help view.
func (m Model) resize() {
	helpHeight := lipgloss.Height(m.help.View(m.keys))
	m.list.SetSize(m.width, max(m.height-headerbar.Height-statusHeight-helpHeight, 0))
}
