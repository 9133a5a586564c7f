// Package ranker keeps the K best matches of a query over the corpus.
package ranker

import (
	"quickpick/internal/domain"
	"quickpick/internal/matcher"
)

// DefaultK is the number of results shown when nothing else is configured
const DefaultK = 5

// Rank scores every entry against query and returns at most k matches,
// best first. Entries with equal scores keep their corpus order.
func Rank(m matcher.Matcher, query string, entries []domain.Entry, k int) domain.Results {
	if k <= 0 {
		return domain.Results{}
	}

	top := make(domain.Results, 0, k+1)
	for i, e := range entries {
		score, matched, ok := m.Match(query, e.Name)
		if !ok {
			continue
		}
		// A full list only accepts strictly better scores.
		if len(top) == k && score <= top[k-1].Score {
			continue
		}
		top = insert(top, domain.Match{
			Score:          score,
			Glyph:          e.Glyph,
			Name:           e.Name,
			Index:          i,
			MatchedIndexes: matched,
		})
		if len(top) > k {
			top = top[:k]
		}
	}
	return top
}

// insert places m before the first element with a strictly lower score
func insert(top domain.Results, m domain.Match) domain.Results {
	pos := len(top)
	for i, existing := range top {
		if existing.Score < m.Score {
			pos = i
			break
		}
	}
	top = append(top, domain.Match{})
	copy(top[pos+1:], top[pos:])
	top[pos] = m
	return top
}

// Ranker binds a matcher, a corpus and K
type Ranker struct {
	matcher matcher.Matcher
	entries []domain.Entry
	k       int
}

// New creates a ranker over entries. A k of zero or less uses DefaultK.
func New(m matcher.Matcher, entries []domain.Entry, k int) *Ranker {
	if k <= 0 {
		k = DefaultK
	}
	return &Ranker{matcher: m, entries: entries, k: k}
}

// Rank runs the query over the whole corpus
func (r *Ranker) Rank(query string) domain.Results {
	return Rank(r.matcher, query, r.entries, r.k)
}

// K returns the maximum number of results
func (r *Ranker) K() int {
	return r.k
}
