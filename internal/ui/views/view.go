package views

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"quickpick/internal/domain"
)

// glyphColumn is the display width reserved for the emoji on each row
const glyphColumn = 3

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width      int
	Input      string // rendered search field
	Results    domain.Results
	Selected   int // -1 when nothing is selected
	ShowScores bool
	Help       string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Prompt.Render("› "))
	content.WriteString(state.Input)
	content.WriteString("\n")

	if len(state.Results) == 0 {
		content.WriteString(r.styles.Dim.Render("  no matches"))
		content.WriteString("\n")
	}
	for i, m := range state.Results {
		content.WriteString(r.RenderRow(m, i == state.Selected, state.ShowScores))
		content.WriteString("\n")
	}

	if state.Help != "" {
		content.WriteString(r.styles.Help.Render(state.Help))
	}

	main := r.styles.Main
	if state.Width > 0 {
		main = main.MaxWidth(state.Width)
	}
	return main.Render(strings.TrimRight(content.String(), "\n"))
}

// RenderRow renders one result: cursor, glyph, name with the matched
// characters highlighted, and optionally the score
func (r *Renderer) RenderRow(m domain.Match, selected, showScore bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	line := cursor + runewidth.FillRight(m.Glyph, glyphColumn) + " " + r.highlight(m.Name, m.MatchedIndexes)
	if showScore {
		line += " " + r.styles.Score.Render(fmt.Sprintf("%d", m.Score))
	}

	if selected {
		return r.styles.SelectionBg.Render(line)
	}
	return r.styles.Row.Render(line)
}

// highlight emphasises the runes of name starting at the given byte offsets
func (r *Renderer) highlight(name string, offsets []int) string {
	if len(offsets) == 0 {
		return name
	}
	matched := make(map[int]bool, len(offsets))
	for _, o := range offsets {
		matched[o] = true
	}

	var b strings.Builder
	for i, ch := range name {
		if matched[i] {
			b.WriteString(r.styles.Highlight.Render(string(ch)))
		} else {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
