package textproc

import "strings"

// ExtractURL lowercases text, compiles pattern and runs one leftmost search.
// It returns the text of capture group 1 when the match has one. A pattern
// without a first group, or whose first group did not participate, yields
// ("", false, nil) rather than the whole match. No match is not an error.
func (p *Processor) ExtractURL(text, pattern string) (string, bool, error) {
	re, err := p.compiler.Compile(pattern)
	if err != nil {
		return "", false, err
	}
	if re.NumSubexp() < 1 {
		return "", false, nil
	}

	lower := strings.ToLower(text)
	loc := re.FindStringSubmatchIndex(lower)
	if loc == nil || loc[2] < 0 {
		return "", false, nil
	}
	return lower[loc[2]:loc[3]], true, nil
}
