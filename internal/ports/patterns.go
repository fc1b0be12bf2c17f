package ports

// KeywordMatcher finds keywords in content using multi-pattern matching (Aho-Corasick).
// A single pass over the content finds matching keywords simultaneously,
// regardless of how many keywords are in the set. This is O(n + m + z) where
// n=content length, m=total pattern length, z=number of matches.
//
// The matcher is built once per keyword set and is immutable afterwards, so
// concurrent calls are safe. Content is matched as-is (caller normalizes case).
type KeywordMatcher interface {
	// ContainsAny reports whether at least one keyword occurs in content.
	// Implementations stop at the first hit.
	ContainsAny(content string) bool

	// Match returns every distinct keyword found in content, in order of
	// first occurrence. Returns nil if no keywords match.
	Match(content string) []string
}

// KeywordMatcherFactory builds a KeywordMatcher for a normalized keyword list.
// Keywords are lowercase and unique; the empty keyword is never passed.
type KeywordMatcherFactory func(keywords []string) KeywordMatcher
