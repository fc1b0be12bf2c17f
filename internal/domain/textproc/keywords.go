package textproc

import "strings"

// KeywordSet is an unordered set of keywords with unique membership.
type KeywordSet map[string]struct{}

// NewKeywordSet builds a set from words, lowercasing each one. Duplicates
// (including ones that differ only in case) collapse into a single entry.
func NewKeywordSet(words ...string) KeywordSet {
	set := make(KeywordSet, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// Add inserts words into the set, lowercased.
func (s KeywordSet) Add(words ...string) {
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
}

// Slice returns the members in unspecified order.
func (s KeywordSet) Slice() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	return out
}

// ContainsAny lowercases text once and reports whether any keyword appears in
// it as a plain substring (no word boundaries). Keywords are lowercased again
// here so sets built by hand with mixed case still match.
//
// An empty set yields false. The empty keyword is a substring of every text,
// so a set holding "" yields true even for empty text.
func (p *Processor) ContainsAny(text string, keywords KeywordSet) bool {
	if len(keywords) == 0 {
		return false
	}

	lower := strings.ToLower(text)

	if p.matcherFactory != nil && len(keywords) >= p.matcherThreshold {
		normalized := make([]string, 0, len(keywords))
		seen := make(map[string]struct{}, len(keywords))
		for kw := range keywords {
			kw = strings.ToLower(kw)
			if kw == "" {
				return true
			}
			if _, dup := seen[kw]; dup {
				continue
			}
			seen[kw] = struct{}{}
			normalized = append(normalized, kw)
		}
		return p.matcherFactory(normalized).ContainsAny(lower)
	}

	for kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
