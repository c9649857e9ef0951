// internal/app/view.go
package app

import (
	"github.com/llehouerou/songlist/internal/ui/headerbar"
	"github.com/llehouerou/songlist/internal/ui/render"
	"github.com/llehouerou/songlist/internal/ui/styles"
)

const statusHeight = 1

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	page, albumName := headerbar.PageAllSongs, ""
	if m.album != nil {
		page, albumName = headerbar.PageAlbum, m.album.Name
	}

	header := headerbar.Render(page, albumName, m.list.LikedCount(), m.width)
	return header + "\n" +
		m.list.View() + "\n" +
		m.renderStatus() + "\n" +
		m.help.View(m.keys)
}

func (m Model) renderStatus() string {
	s := styles.T().S()

	switch {
	case m.fatal != "":
		return s.Banner.Width(m.width).Render(render.Truncate(m.fatal+" (press q to quit)", max(m.width-2, 0)))
	case m.notification == nil:
		return render.EmptyLine(m.width)
	case m.notification.IsError:
		return s.Error.Render(render.TruncateAndPad(m.notification.Message, m.width))
	default:
		return s.Success.Render(render.TruncateAndPad(m.notification.Message, m.width))
	}
}
