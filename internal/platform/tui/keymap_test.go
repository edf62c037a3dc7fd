package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/terminoid/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"l", runeKey('l'), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionLaunch},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
		{"uppercase is unbound", runeKey('P'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapBindingsHaveHelp(t *testing.T) {
	for _, b := range DefaultKeyMap().Bindings() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("binding %v is missing help text", b.Keys())
		}
	}
	if n := len(DefaultKeyMap().Bindings()); n != 6 {
		t.Errorf("Bindings() returned %d bindings, expected 6", n)
	}
}
