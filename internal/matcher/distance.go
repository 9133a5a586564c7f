package matcher

import (
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DistanceMatcher ranks tighter matches higher: the score is the negated
// Levenshtein distance between the query and the candidate.
type DistanceMatcher struct{}

// Match implements Matcher
func (DistanceMatcher) Match(query, candidate string) (int, []int, bool) {
	if query == "" {
		return BaselineScore, nil, true
	}
	matched := positions(query, candidate)
	if matched == nil {
		return 0, nil, false
	}

	distance := fuzzy.RankMatchFold(query, candidate)
	if distance < 0 {
		distance = utf8.RuneCountInString(candidate) - utf8.RuneCountInString(query)
	}
	return -distance + exactBonus(query, candidate), matched, true
}
