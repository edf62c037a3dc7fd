// Package game implements the terminoid simulation: a paddle, a ball and a
// fixed grid of blocks inside a walled playfield.
//
// A Session exclusively owns the live State. Input and ticks are its only
// entry points and both hold the session lock for their full duration, so
// they never interleave. Everything the player sees is pushed to a Display
// as incremental draw commands.
package game

import (
	"sync"

	"github.com/vovakirdan/terminoid/internal/core"
)

// Session owns one game: the live state, its restart template and the display.
type Session struct {
	mu       sync.Mutex
	template Template
	state    *State
	display  Display
}

// NewSession creates a session in the template's initial state.
func NewSession(tpl Template, display Display) *Session {
	return &Session{
		template: tpl,
		state:    tpl.NewState(),
		display:  display,
	}
}

// Start paints the initial screen.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	s.display.Clear()
	s.display.DrawBackground(st.Playfield, st.Lives)
	s.drawBlocks()
	s.redraw(st.Ball.X, st.Ball.Y)
}

// Tick advances the simulation by one fixed period.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.step()
}

// HandleInput applies one input event. Events whose preconditions do not
// hold are ignored. Returns true when the session should end.
func (s *Session) HandleInput(a core.Action) (quit bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state

	switch a {
	case core.ActionQuit:
		s.display.Clear()
		return true

	case core.ActionRestart:
		s.restart()

	case core.ActionPause:
		if !st.Running {
			return false
		}
		st.Paused = !st.Paused
		if st.Paused {
			st.Message = MessagePaused
			return false
		}
		// A "Paused" message no tick has drawn yet is dropped, so a quick
		// double press never leaves it on screen.
		if st.Message == MessagePaused {
			st.Message = ""
		}
		s.display.ClearMessage()

	case core.ActionLeft:
		if !st.Paused {
			s.movePaddle(-st.Paddle.Speed)
		}

	case core.ActionRight:
		if !st.Paused {
			s.movePaddle(st.Paddle.Speed)
		}

	case core.ActionLaunch:
		if st.Running || st.Lives <= 0 || st.Blocks.Remaining <= 0 {
			return false
		}
		if st.Lives == s.template.Lives() {
			s.display.ClearMessage()
		}
		st.Running = true
	}

	return false
}

// movePaddle shifts the paddle, keeping it inside the walls.
func (s *Session) movePaddle(dx int) {
	p := &s.state.Paddle
	p.X = core.Clamp(p.X+dx, 1, s.state.Playfield.Width-p.Width)
}

// restart installs a fresh copy of the template.
func (s *Session) restart() {
	b := s.state.Ball
	s.display.EraseRegion(b.X, b.Y, b.X+1, b.Y+1)

	s.state = s.template.NewState()

	s.drawBlocks()
	s.display.DrawLives(s.state.Lives)
}

// Snapshot returns a deep copy of the live state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

// Phase returns the current state-machine position.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Phase()
}
