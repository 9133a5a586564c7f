package matcher

import (
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// SubsequenceMatcher scores matches with the sahilm/fuzzy heuristics
type SubsequenceMatcher struct{}

// Match implements Matcher
func (SubsequenceMatcher) Match(query, candidate string) (int, []int, bool) {
	if query == "" {
		return BaselineScore, nil, true
	}
	greedy := positions(query, candidate)
	if greedy == nil {
		return 0, nil, false
	}

	score, matched := greedyScore(candidate, greedy), greedy
	if found := fuzzy.Find(query, []string{candidate}); len(found) == 1 {
		score, matched = found[0].Score, found[0].MatchedIndexes
	}
	return score + exactBonus(query, candidate), matched, true
}

// greedyScore is used when sahilm/fuzzy's single pass misses a subsequence
// that does exist. It rewards adjacency and penalises leading and gap bytes.
func greedyScore(candidate string, matched []int) int {
	score := -matched[0]
	if matched[0] == 0 {
		score = 10
	}
	for i := 1; i < len(matched); i++ {
		_, size := utf8.DecodeRuneInString(candidate[matched[i-1]:])
		if gap := matched[i] - matched[i-1] - size; gap == 0 {
			score += 5
		} else {
			score -= gap
		}
	}
	return score
}
