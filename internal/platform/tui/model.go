package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/terminoid/internal/core"
	"github.com/vovakirdan/terminoid/internal/game"
)

// panelWidth is the width of the side panel next to the playfield.
const panelWidth = 28

// panelGap separates the playfield from the side panel.
const panelGap = 2

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	livesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))
	phaseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// MinSize returns the smallest terminal that fits the playfield and the panel.
func MinSize(pf game.Playfield) (width, height int) {
	return pf.Width + 1 + panelGap + panelWidth, max(pf.Height+1, 12)
}

// Model is the Bubble Tea model driving a single game session.
type Model struct {
	session *game.Session
	display *ScreenDisplay
	keys    KeyMap
	help    help.Model
	logger  *log.Logger
	config  core.RuntimeConfig

	phase    game.Phase
	hardMode bool

	width    int
	height   int
	quitting bool
}

// NewModel creates a model for a fresh session built from tpl.
// The session is started immediately so the first View has content.
// cfg supplies the tick period and the terminal size known at startup.
func NewModel(tpl game.Template, cfg core.RuntimeConfig, logger *log.Logger) Model {
	display := NewScreenDisplay(tpl.Playfield())
	session := game.NewSession(tpl, display)
	session.Start()

	h := help.New()
	h.ShowAll = true

	return Model{
		session: session,
		display: display,
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
		config:  cfg,
		phase:   session.Phase(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "tick", m.config.TickPeriod, "lives", m.display.Lives())
	return tickCmd(m.config.TickPeriod)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		m.session.Tick()
		m.observe()
		return m, tickCmd(m.config.TickPeriod)
	}

	return m, nil
}

// handleKey forwards bound keys to the session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	m.logger.Debug("input", "key", msg.String(), "action", action)
	if m.session.HandleInput(action) {
		m.logger.Info("session ended", "phase", m.phase)
		m.quitting = true
		return m, tea.Quit
	}
	m.observe()
	return m, nil
}

// observe logs phase transitions and the hard-mode latch.
func (m *Model) observe() {
	st := m.session.Snapshot()

	if next := st.Phase(); next != m.phase {
		m.logger.Info("phase changed",
			"from", m.phase,
			"to", next,
			"lives", st.Lives,
			"blocks", st.Blocks.Remaining,
		)
		m.phase = next
	}

	if st.HardMode != m.hardMode {
		if st.HardMode {
			m.logger.Info("hard mode engaged", "paddle", st.Paddle.Width, "blocks", st.Blocks.Remaining)
		}
		m.hardMode = st.HardMode
	}
}

// View renders the playfield next to the side panel.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	minW, minH := MinSize(m.display.pf)
	if m.width > 0 && m.height > 0 && (m.width < minW || m.height < minH) {
		return fmt.Sprintf("Terminal too small: %dx%d\nNeed at least %dx%d", m.width, m.height, minW, minH)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		RenderScreen(m.display.Screen()),
		strings.Repeat(" ", panelGap),
		m.renderPanel(),
	)
}

// renderPanel draws the title, lives counter and controls legend.
func (m Model) renderPanel() string {
	lines := []string{
		titleStyle.Render("TERMINOID"),
		"",
		livesStyle.Render(fmt.Sprintf("Lives: %d", m.display.Lives())),
		phaseStyle.Render(m.phase.String()),
		"",
		helpStyle.Render(m.help.View(m.keys)),
	}
	return lipgloss.NewStyle().Width(panelWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Run starts the Bubble Tea program for a new session.
func Run(tpl game.Template, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(tpl, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
