package matcher

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// BaselineScore is the score every candidate gets for an empty query
	BaselineScore = 0

	// ExactBonus is added when the query equals the candidate, ignoring case
	ExactBonus = 1_000_000
)

// Matcher names accepted by New
const (
	NameSubsequence = "subsequence"
	NameDistance    = "distance"
)

// ErrUnknownMatcher is returned by New for an unsupported name
var ErrUnknownMatcher = errors.New("unknown matcher")

// Matcher reports whether query fuzzy-matches candidate and how well.
// matched holds byte offsets into candidate of the matched runes.
type Matcher interface {
	Match(query, candidate string) (score int, matched []int, ok bool)
}

// New returns the matcher registered under name.
// An empty name selects the subsequence matcher.
func New(name string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameSubsequence:
		return SubsequenceMatcher{}, nil
	case NameDistance:
		return DistanceMatcher{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatcher, name)
	}
}

// Names lists the supported matcher names
func Names() []string {
	return []string{NameSubsequence, NameDistance}
}

// positions finds the leftmost in-order occurrence of every query rune in
// candidate and returns their byte offsets, or nil if there is none.
func positions(query, candidate string) []int {
	if query == "" {
		return []int{}
	}
	matched := make([]int, 0, utf8.RuneCountInString(query))
	q, qSize := utf8.DecodeRuneInString(query)
	qi := 0
	for ci, c := range candidate {
		if !equalFold(c, q) {
			continue
		}
		matched = append(matched, ci)
		qi += qSize
		if qi >= len(query) {
			return matched
		}
		q, qSize = utf8.DecodeRuneInString(query[qi:])
	}
	return nil
}

// equalFold reports whether two runes are equal under simple case folding
func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}

func exactBonus(query, candidate string) int {
	if strings.EqualFold(query, candidate) {
		return ExactBonus
	}
	return 0
}
