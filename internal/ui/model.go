package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"quickpick/internal/config"
	"quickpick/internal/domain"
	"quickpick/internal/ui/input"
	inputtypes "quickpick/internal/ui/input/types"
	"quickpick/internal/ui/services/events"
	"quickpick/internal/ui/services/search"
	"quickpick/internal/ui/services/selection"
	"quickpick/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    events.EventBus
	config *config.Config

	// UI-specific state
	width int
	help  help.Model

	// Handlers
	inputHandler *input.Handler     // search field and key bindings
	search       *search.Service    // query -> ranked shortlist
	session      *selection.Session // cursor and commit/cancel lifecycle
	renderer     *views.Renderer    // view renderer
}

// NewModel creates a new UI model.
// The results for the empty query are available before the program starts.
func NewModel(bus events.EventBus, cfg *config.Config, ranker search.Ranker) *Model {
	if bus == nil {
		bus = &events.NullBus{}
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		help:         help.New(),
		inputHandler: input.New(input.NewKeyMap(cfg.Keys), cfg.UISettings.Placeholder),
		search:       search.NewService(bus, ranker),
		session:      selection.NewSession(bus),
		renderer:     views.NewRenderer(),
	}

	// Every ranking replaces the session's list
	m.search.SetResultsFunction(m.session.QueryChanged)
	m.search.SetQuery("")

	return m
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.inputHandler.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.session.Done() {
			return m, tea.Quit
		}

		actions, cmd := m.inputHandler.HandleKey(msg)
		for _, action := range actions {
			m.processAction(action)
		}

		if m.session.Done() {
			return m, tea.Quit
		}
		return m, cmd

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.session.Apply(a.Intent)
	case inputtypes.UpdateTextAction:
		if a.Changed {
			m.search.SetQuery(a.Text)
		}
	}
}

// View renders the UI
func (m *Model) View() string {
	// Leave nothing behind once the picker closes
	if m.session.Done() {
		return ""
	}

	return m.renderer.Render(views.ViewState{
		Width:      m.width,
		Input:      m.inputHandler.TextInput().View(),
		Results:    m.session.Results(),
		Selected:   m.session.SelectedIndex(),
		ShowScores: m.config.UISettings.ShowScores,
		Help:       m.help.View(m.inputHandler.KeyMap()),
	})
}

// Committed returns the picked match once the picker has been committed
func (m *Model) Committed() (domain.Match, bool) {
	return m.session.Result()
}

// Cancelled reports whether the picker was closed without a pick
func (m *Model) Cancelled() bool {
	return m.session.Phase() == selection.PhaseCancelled
}

// Query returns the current search query
func (m *Model) Query() string {
	return m.search.GetQuery()
}
