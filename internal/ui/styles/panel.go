package styles

import "github.com/charmbracelet/lipgloss"

var panelStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240"))

// PanelStyle returns the bordered style wrapping the song list.
func PanelStyle() lipgloss.Style {
	return panelStyle
}
