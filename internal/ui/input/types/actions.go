package types

import "quickpick/internal/domain"

// NavigateAction carries a navigation intent to the selection session
type NavigateAction struct {
	Intent domain.Intent
}

func (a NavigateAction) Type() string { return "navigate" }

// UpdateTextAction reports the search field value after a keystroke
type UpdateTextAction struct {
	Text    string
	Changed bool // false when the keystroke left the value untouched
}

func (a UpdateTextAction) Type() string { return "update_text" }
