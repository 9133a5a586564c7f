// Package matcher scores a query against a candidate name.
//
// A candidate matches when every rune of the query appears in it, in order,
// ignoring case. Matches need not be contiguous. The score is only
// meaningful relative to other candidates for the same query: higher is
// better.
//
// Two implementations are provided:
//
//   - SubsequenceMatcher scores with github.com/sahilm/fuzzy, which rewards
//     first-character, word-separator, camel-case and adjacent matches.
//   - DistanceMatcher scores with github.com/lithammer/fuzzysearch, using
//     the negated Levenshtein distance between query and candidate.
//
// Both return BaselineScore for an empty query and add ExactBonus when the
// query equals the candidate, so an exact match always outranks a partial
// one.
package matcher
