package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/terminoid/internal/config"
	"github.com/vovakirdan/terminoid/internal/core"
	"github.com/vovakirdan/terminoid/internal/game"
)

func newTestModel() Model {
	tpl := game.NewTemplate(config.Default())
	return NewModel(tpl, core.DefaultConfig(), log.New(io.Discard))
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelTickReschedules(t *testing.T) {
	m := newTestModel()
	if m.Init() == nil {
		t.Fatal("Init should schedule a tick")
	}

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.phase != game.PhaseDocked {
		t.Errorf("phase = %v, expected docked", m.phase)
	}
}

func TestModelLaunchAndPauseTrackPhase(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.phase != game.PhaseActive {
		t.Fatalf("phase after launch = %v, expected active", m.phase)
	}

	m, _ = update(t, m, runeKey('p'))
	if m.phase != game.PhasePaused {
		t.Errorf("phase after pause = %v, expected paused", m.phase)
	}

	m, _ = update(t, m, runeKey('r'))
	if m.phase != game.PhaseDocked {
		t.Errorf("phase after restart = %v, expected docked", m.phase)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if !m.quitting || m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelIgnoresUnboundKeys(t *testing.T) {
	m := newTestModel()
	before := m.session.Snapshot()

	m, cmd := update(t, m, runeKey('z'))
	if cmd != nil {
		t.Error("unbound key should not return a command")
	}
	after := m.session.Snapshot()
	if after.Paddle != before.Paddle || after.Running != before.Running {
		t.Error("unbound key changed the game state")
	}
}

func TestModelViewShowsPanel(t *testing.T) {
	m := newTestModel()
	view := m.View()

	for _, want := range []string{"TERMINOID", "Lives: 3", "[==]", "launch"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestModelViewTooSmall(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})

	if !strings.Contains(m.View(), "too small") {
		t.Error("small terminal should show a size warning")
	}

	w, h := MinSize(game.NewTemplate(config.Default()).Playfield())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: w, Height: h})
	if strings.Contains(m.View(), "too small") {
		t.Errorf("terminal of %dx%d should fit", w, h)
	}
}
