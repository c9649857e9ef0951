package songlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/songlist/internal/icons"
	"github.com/llehouerou/songlist/internal/song"
	"github.com/llehouerou/songlist/internal/ui"
	"github.com/llehouerou/songlist/internal/ui/render"
	"github.com/llehouerou/songlist/internal/ui/styles"
)

const (
	cursorSymbol  = "\u25B8" // ▸
	durationWidth = 6
	tokenWidth    = 2
)

// View renders the song list panel.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	content := m.renderHeader(innerWidth) + "\n" +
		render.Separator(innerWidth) + "\n" +
		m.renderSongs(innerWidth, m.listHeight())

	return styles.PanelStyle().
		Width(innerWidth).
		Render(content)
}

func (m *Model) renderHeader(innerWidth int) string {
	s := styles.T().S()

	count := humanize.Comma(int64(len(m.songs))) + " songs"
	if n := len(m.songs); n > 0 {
		count = fmt.Sprintf("%d/%s", m.cursor.Pos()+1, count)
	}

	title := render.Truncate(m.title, max(innerWidth-lipgloss.Width(count)-1, 0))
	return render.Row(s.Title.Render(title), s.Muted.Render(count), innerWidth)
}

func (m *Model) renderSongs(innerWidth, listHeight int) string {
	lines := make([]string, 0, listHeight)
	for i := range listHeight {
		idx := i + m.cursor.Offset()
		lr := m.live[idx]
		if idx >= len(m.songs) || lr == nil {
			lines = append(lines, render.EmptyLine(innerWidth))
			continue
		}
		lines = append(lines, m.renderSong(lr, idx == m.cursor.Pos(), innerWidth))
	}
	return strings.Join(lines, "\n")
}

// renderSong lays out: cursor, like token, name, singer, album, duration.
func (m *Model) renderSong(lr *liveRow, selected bool, width int) string {
	s := styles.T().S()
	snap := lr.row.Snapshot()

	prefix := "  "
	if selected {
		prefix = cursorSymbol + " "
	}

	token := render.TruncateAndPad(lr.token, tokenWidth)
	if lr.row.Liked() {
		token = s.Liked.Render(token)
	}

	contentWidth := max(width-lipgloss.Width(prefix)-tokenWidth-durationWidth, 0)
	nameWidth := contentWidth * 2 / 5
	singerWidth := contentWidth * 3 / 10
	albumWidth := contentWidth - nameWidth - singerWidth

	text := render.TruncateAndPad(snap.Name, nameWidth) +
		render.TruncateAndPad(snap.Singer, singerWidth) +
		render.TruncateAndPad(snap.Album, albumWidth) +
		fmt.Sprintf("%*s", durationWidth, snap.Duration)

	style := s.Base
	if selected {
		style = s.Cursor
	}
	return style.Render(prefix) + token + style.Render(text)
}

// AlbumTitle returns the list title used for an album page.
func AlbumTitle(album song.AlbumRef) string {
	return icons.FormatAlbum(album.Name)
}

// AllSongsTitle is the title of the full catalog list.
func AllSongsTitle() string {
	return icons.FormatAudio("All songs")
}
