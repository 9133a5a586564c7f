package selection

import (
	"quickpick/internal/domain"
	"quickpick/internal/ui/services/events"
)

// Session walks one ranked result list with the keyboard.
// It ends either committed, holding the chosen match, or cancelled.
// Once ended, every further call is ignored.
type Session struct {
	state *State
	bus   events.EventBus
}

// NewSession creates an active session with no results.
// A nil bus discards events.
func NewSession(bus events.EventBus) *Session {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Session{
		state: &State{
			Selected: NoSelection,
			Phase:    PhaseActive,
		},
		bus: bus,
	}
}

// QueryChanged replaces the results and selects the first one, if any
func (s *Session) QueryChanged(results domain.Results) {
	if s.Done() {
		return
	}

	s.state.Results = results
	s.state.Selected = NoSelection
	if len(results) > 0 {
		s.state.Selected = 0
	}

	s.bus.Publish(domain.ResultsChangedEvent{
		Count:    len(results),
		Selected: s.state.Selected,
	})
}

// Apply runs a navigation intent and reports whether it was consumed
func (s *Session) Apply(intent domain.Intent) bool {
	if s.Done() {
		return false
	}

	switch intent {
	case domain.IntentUp:
		s.move(-1)
	case domain.IntentDown:
		s.move(1)
	case domain.IntentTab:
		// swallowed so focus stays on the search field
	case domain.IntentCommit:
		s.commit()
	case domain.IntentCancel:
		s.cancel()
	default:
		return false
	}
	return true
}

// Results returns the current result list
func (s *Session) Results() domain.Results {
	return s.state.Results
}

// SelectedIndex returns the selected index, or NoSelection
func (s *Session) SelectedIndex() int {
	return s.state.Selected
}

// Selected returns the currently selected match
func (s *Session) Selected() (domain.Match, bool) {
	if s.state.Selected == NoSelection {
		return domain.Match{}, false
	}
	return s.state.Results[s.state.Selected], true
}

// Phase returns the session lifecycle stage
func (s *Session) Phase() Phase {
	return s.state.Phase
}

// Done reports whether the session has ended
func (s *Session) Done() bool {
	return s.state.Phase != PhaseActive
}

// Result returns the committed match once the session is committed
func (s *Session) Result() (domain.Match, bool) {
	if s.state.Committed == nil {
		return domain.Match{}, false
	}
	return *s.state.Committed, true
}

// Internal methods
func (s *Session) move(delta int) {
	if s.state.Selected == NoSelection {
		return
	}
	target := s.state.Selected + delta
	if target < 0 || target >= len(s.state.Results) {
		return
	}

	old := s.state.Selected
	s.state.Selected = target
	s.bus.Publish(domain.CursorMovedEvent{OldIndex: old, NewIndex: target})
}

func (s *Session) commit() {
	m, ok := s.Selected()
	if !ok {
		return
	}

	s.state.Committed = &m
	s.state.Phase = PhaseCommitted
	s.bus.Publish(domain.CommittedEvent{Match: m})
}

func (s *Session) cancel() {
	s.state.Phase = PhaseCancelled
	s.state.Results = nil
	s.state.Selected = NoSelection
	s.bus.Publish(domain.CancelledEvent{})
}
