package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"quickpick/internal/config"
	"quickpick/internal/domain"
)

// KeyMap binds terminal keys to navigation intents.
// It satisfies help.KeyMap so the footer can list the bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Tab    key.Binding
	Commit key.Binding
	Cancel key.Binding
}

// NewKeyMap builds a key map from configured key names
func NewKeyMap(b config.KeyBindings) KeyMap {
	return KeyMap{
		Up:     binding(b.Up, "↑", "up"),
		Down:   binding(b.Down, "↓", "down"),
		Tab:    binding(b.Tab, "tab", ""),
		Commit: binding(b.Commit, "enter", "pick"),
		Cancel: binding(b.Cancel, "esc", "cancel"),
	}
}

// DefaultKeyMap returns the key map for the default bindings
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultKeyBindings())
}

func binding(keys []string, label, desc string) key.Binding {
	b := key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
	if len(keys) == 0 {
		b.SetEnabled(false)
	}
	return b
}

// Intent returns the navigation intent bound to msg
func (k KeyMap) Intent(msg tea.KeyMsg) (domain.Intent, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return domain.IntentUp, true
	case key.Matches(msg, k.Down):
		return domain.IntentDown, true
	case key.Matches(msg, k.Tab):
		return domain.IntentTab, true
	case key.Matches(msg, k.Commit):
		return domain.IntentCommit, true
	case key.Matches(msg, k.Cancel):
		return domain.IntentCancel, true
	default:
		return domain.IntentNone, false
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Commit, k.Cancel}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
