package selection

import "quickpick/internal/domain"

// Phase is the lifecycle stage of a session
type Phase int

const (
	PhaseActive Phase = iota
	PhaseCommitted
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseCommitted:
		return "committed"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "active"
	}
}

// NoSelection is the Selected value of a session with nothing selected
const NoSelection = -1

// State holds selection state
type State struct {
	Results   domain.Results
	Selected  int // index into Results, or NoSelection
	Phase     Phase
	Committed *domain.Match
}
