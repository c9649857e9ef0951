package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefault_NoConflicts(t *testing.T) {
	km := Default()
	seen := make(map[string]string)

	for _, group := range km.FullHelp() {
		for _, b := range group {
			for _, k := range b.Keys() {
				if prev, ok := seen[k]; ok {
					t.Errorf("key %q bound to both %q and %q", k, prev, b.Help().Desc)
				}
				seen[k] = b.Help().Desc
			}
		}
	}
}

func TestDefault_Matches(t *testing.T) {
	km := Default()

	tests := []struct {
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")}, km.Like},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, km.Album},
		{tea.KeyMsg{Type: tea.KeyEnter}, km.Album},
		{tea.KeyMsg{Type: tea.KeyDown}, km.Down},
		{tea.KeyMsg{Type: tea.KeyEsc}, km.Back},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("%q does not match %q", tt.msg.String(), tt.binding.Help().Desc)
			}
		})
	}
}

func TestShortHelp_SubsetOfFullHelp(t *testing.T) {
	km := Default()
	full := make(map[string]bool)
	for _, group := range km.FullHelp() {
		for _, b := range group {
			full[b.Help().Desc] = true
		}
	}
	for _, b := range km.ShortHelp() {
		if !full[b.Help().Desc] {
			t.Errorf("short help entry %q missing from full help", b.Help().Desc)
		}
	}
}
