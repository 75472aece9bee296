package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGameKeyMap(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Event
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.EventPrimaryAction},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.EventPrimaryAction},
		{"w", runeKey("w"), core.EventPrimaryAction},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.EventPrimaryAction},
		{"q", runeKey("q"), core.EventQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.EventQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.EventQuit},
		{"unbound", runeKey("x"), core.EventNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMenuKeyMap(t *testing.T) {
	keys := DefaultMenuKeyMap()

	tests := []struct {
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, keys.Up},
		{runeKey("k"), keys.Up},
		{tea.KeyMsg{Type: tea.KeyDown}, keys.Down},
		{runeKey("j"), keys.Down},
		{tea.KeyMsg{Type: tea.KeyEnter}, keys.Select},
		{runeKey("q"), keys.Quit},
	}

	for _, tt := range tests {
		if !key.Matches(tt.msg, tt.binding) {
			t.Errorf("%q should match %v", tt.msg.String(), tt.binding.Help().Desc)
		}
	}
}

func TestHelpListsBindings(t *testing.T) {
	if n := len(DefaultGameKeyMap().ShortHelp()); n != 2 {
		t.Errorf("game short help has %d bindings", n)
	}
	if n := len(DefaultMenuKeyMap().FullHelp()); n != 2 {
		t.Errorf("menu full help has %d columns", n)
	}
}
