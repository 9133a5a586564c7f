package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quickpick/internal/ui/input/types"
)

// Handler splits key presses between navigation and the search field
type Handler struct {
	keys      KeyMap
	textInput *textinput.Model
}

// New creates a handler with a focused, empty search field
func New(keys KeyMap, placeholder string) *Handler {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the UI layer
	ti.Placeholder = placeholder
	ti.Focus()

	return &Handler{
		keys:      keys,
		textInput: &ti,
	}
}

// HandleKey turns a key press into actions.
// Bound navigation keys never reach the search field.
func (h *Handler) HandleKey(msg tea.KeyMsg) ([]types.Action, tea.Cmd) {
	if intent, ok := h.keys.Intent(msg); ok {
		return []types.Action{types.NavigateAction{Intent: intent}}, nil
	}

	before := h.textInput.Value()
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	after := h.textInput.Value()

	return []types.Action{types.UpdateTextAction{Text: after, Changed: after != before}}, cmd
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}

// TextInput returns the search field
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// KeyMap returns the navigation bindings
func (h *Handler) KeyMap() KeyMap {
	return h.keys
}

// Value returns the current query
func (h *Handler) Value() string {
	return h.textInput.Value()
}
