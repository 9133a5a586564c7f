package domain

// Entry is one selectable emoji in the corpus
type Entry struct {
	Glyph    string `json:"emoji"`
	Name     string `json:"name"`
	Category int    `json:"category,omitempty"`
}

// Match is a corpus entry that matched the current query
type Match struct {
	Score int
	Glyph string
	Name  string
	Index int // position of the entry in the corpus

	// MatchedIndexes are byte offsets into Name of the matched characters.
	// Only used for highlighting; may be nil.
	MatchedIndexes []int
}

// Label returns the display text for a result row
func (m Match) Label() string {
	return m.Name + " (" + m.Glyph + ")"
}

// Results is the ranked shortlist for one query, best match first
type Results []Match

// Scores returns the score of every result in order
func (r Results) Scores() []int {
	scores := make([]int, len(r))
	for i, m := range r {
		scores[i] = m.Score
	}
	return scores
}

// Intent is a platform independent navigation command
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentTab
	IntentCommit
	IntentCancel
)

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentTab:
		return "tab"
	case IntentCommit:
		return "commit"
	case IntentCancel:
		return "cancel"
	default:
		return "none"
	}
}
