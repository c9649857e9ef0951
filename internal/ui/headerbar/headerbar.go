// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/songlist/internal/ui/render"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Page identifies the list currently shown.
type Page int

const (
	PageAllSongs Page = iota
	PageAlbum
)

// Styles
var (
	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// Render returns the header bar for the given width. album is the name of
// the album page tab; the tab is hidden on the all-songs page.
func Render(page Page, album string, liked, width int) string {
	if width < 20 {
		return ""
	}

	tabs := []string{tab("All songs", page == PageAllSongs)}
	if page == PageAlbum {
		tabs = append(tabs, tab(render.Truncate(album, width/2), true))
	}
	left := " " + strings.Join(tabs, separatorStyle.Render(" │ "))

	right := countStyle.Render(humanize.Comma(int64(liked))+" liked") + " "
	return render.Row(left, right, width)
}

func tab(name string, active bool) string {
	if active {
		return activeStyle.Render(name)
	}
	return inactiveStyle.Render(name)
}
