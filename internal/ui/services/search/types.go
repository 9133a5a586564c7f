package search

import "quickpick/internal/domain"

// State holds search state
type State struct {
	Query   string
	Results domain.Results
}
