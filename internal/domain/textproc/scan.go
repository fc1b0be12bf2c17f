package textproc

import "strings"

// PatternMatch pairs a pattern with the first substring it matched.
type PatternMatch struct {
	Pattern string `json:"pattern"`
	Match   string `json:"match"`
}

// FindAllPatterns normalizes text once and tests every pattern against it in
// input order, duplicates included. A pattern contributes at most one entry:
// its first whole match. Patterns that don't match contribute nothing.
//
// All or nothing: the first pattern that fails to compile aborts the call with
// an *InvalidPatternError carrying its index, and no partial results are returned.
func (p *Processor) FindAllPatterns(text string, patterns []string) ([]PatternMatch, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	lower := strings.ToLower(text)
	var results []PatternMatch
	for i, pattern := range patterns {
		re, err := p.compiler.Compile(pattern)
		if err != nil {
			return nil, withIndex(err, pattern, i)
		}
		loc := re.FindStringIndex(lower)
		if loc == nil {
			continue
		}
		results = append(results, PatternMatch{Pattern: pattern, Match: lower[loc[0]:loc[1]]})
	}
	return results, nil
}

// withIndex stamps the list position onto a compilation failure. The error is
// copied so a cached or shared error value is never mutated.
func withIndex(err error, pattern string, idx int) error {
	if ipe, ok := err.(*InvalidPatternError); ok {
		cp := *ipe
		cp.Index = idx
		return &cp
	}
	return &InvalidPatternError{Pattern: pattern, Index: idx, Err: err}
}
