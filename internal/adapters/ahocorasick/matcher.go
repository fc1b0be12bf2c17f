// Package ahocorasick provides multi-keyword string matching using an Aho-Corasick automaton.
// It wraps the petar-dambovaliev/aho-corasick library for O(n + m + z) matching and
// implements ports.KeywordMatcher for large keyword sets.
package ahocorasick

import (
	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/corey/textkit/internal/ports"
)

// Matcher implements fast multi-keyword matching.
// It is immutable after construction, so concurrent use is safe.
type Matcher struct {
	automaton aho.AhoCorasick
	keywords  []string
}

var _ ports.KeywordMatcher = (*Matcher)(nil)

// NewMatcher compiles the Aho-Corasick automaton from the given keywords.
// Empty keywords are dropped: the automaton cannot represent them and callers
// decide empty-keyword semantics themselves. Matching is case-sensitive.
func NewMatcher(keywords []string) *Matcher {
	kept := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw != "" {
			kept = append(kept, kw)
		}
	}

	m := &Matcher{keywords: kept}
	if len(kept) == 0 {
		return m
	}
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	m.automaton = builder.Build(kept)
	return m
}

// Factory adapts NewMatcher to ports.KeywordMatcherFactory.
func Factory(keywords []string) ports.KeywordMatcher {
	return NewMatcher(keywords)
}

// ContainsAny reports whether any keyword occurs in content.
// Stops at the first match the automaton reports.
func (m *Matcher) ContainsAny(content string) bool {
	if len(m.keywords) == 0 {
		return false
	}
	iter := m.automaton.IterOverlappingByte([]byte(content))
	return iter.Next() != nil
}

// Match returns all distinct keywords found in content, in order of first occurrence.
func (m *Matcher) Match(content string) []string {
	if len(m.keywords) == 0 {
		return nil
	}
	iter := m.automaton.IterOverlappingByte([]byte(content))

	// Deduplicate by keyword
	seen := make(map[int]bool)
	var result []string
	for next := iter.Next(); next != nil; next = iter.Next() {
		idx := next.Pattern()
		if !seen[idx] {
			seen[idx] = true
			result = append(result, m.keywords[idx])
		}
	}
	return result
}

// Keywords returns the keywords the automaton was built from.
func (m *Matcher) Keywords() []string {
	out := make([]string, len(m.keywords))
	copy(out, m.keywords)
	return out
}
