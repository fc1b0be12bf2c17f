package app

import (
	"time"

	"github.com/corey/textkit/internal/domain/textproc"
)

// Operation names used as profiler keys.
const (
	OpExtractURL      = "extract_url"
	OpFindAllPatterns = "find_all_patterns"
	OpContainsAny     = "fast_string_contains"
	OpBase64Encode    = "base64_encode"
	OpMarkdownToHTML  = "markdown_to_html"
	OpHTMLDataURL     = "html_data_url"
)

// track times op, records it in the profiler and logs the duration at debug.
func (a *App) track(op string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		a.Profiler.Record(op, d)
		if a.Config.Debug {
			a.Log.Info("op", "name", op, "took", d)
		} else {
			a.Log.Debug("op", "name", op, "took", d)
		}
	}
}

// ExtractURL returns group 1 of the first match of pattern in lowercased text.
func (a *App) ExtractURL(text, pattern string) (string, bool, error) {
	defer a.track(OpExtractURL)()
	url, ok, err := a.Processor.ExtractURL(text, pattern)
	if err != nil {
		a.Log.Warn("pattern rejected", "op", OpExtractURL, "error", err)
		return "", false, wrapPatternError(err)
	}
	return url, ok, nil
}

// FindAllPatterns returns the first match of every pattern that matched, in input order.
func (a *App) FindAllPatterns(text string, patterns []string) ([]textproc.PatternMatch, error) {
	defer a.track(OpFindAllPatterns)()
	matches, err := a.Processor.FindAllPatterns(text, patterns)
	if err != nil {
		a.Log.Warn("pattern rejected", "op", OpFindAllPatterns, "error", err)
		return nil, wrapPatternError(err)
	}
	return matches, nil
}

// ContainsAny reports whether any keyword occurs in text, ignoring case.
func (a *App) ContainsAny(text string, keywords textproc.KeywordSet) bool {
	defer a.track(OpContainsAny)()
	return a.Processor.ContainsAny(text, keywords)
}

// Base64Encode encodes data with the standard padded alphabet.
func (a *App) Base64Encode(data []byte) string {
	defer a.track(OpBase64Encode)()
	return textproc.Base64Encode(data)
}

// HTMLDataURL wraps an HTML document in a base64 data URL.
func (a *App) HTMLDataURL(html string) string {
	defer a.track(OpHTMLDataURL)()
	return textproc.HTMLDataURL(html)
}

// MarkdownToHTML converts **bold** and *italic* spans to HTML tags.
func (a *App) MarkdownToHTML(text string) string {
	defer a.track(OpMarkdownToHTML)()
	return textproc.MarkdownToHTML(text)
}

// CacheLen reports the number of cached compiled patterns, 0 when caching is off.
func (a *App) CacheLen() int {
	if a.Cache == nil {
		return 0
	}
	return a.Cache.Len()
}
