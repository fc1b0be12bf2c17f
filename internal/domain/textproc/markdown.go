package textproc

import "regexp"

// Lazy so that "**a** and **b**" yields two spans. '.' stops at newlines, so
// a marker never pairs with one on another line.
var (
	boldRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.*?)\*`)
)

// MarkdownToHTML converts **bold** to <strong> and *italic* to <em>.
// Bold runs first and italic runs over its output, so a double-asterisk pair
// is consumed whole and never read as two italic markers. Markers without a
// closing partner are left as they are. Content is not HTML-escaped.
func MarkdownToHTML(text string) string {
	out := boldRe.ReplaceAllString(text, "<strong>${1}</strong>")
	return italicRe.ReplaceAllString(out, "<em>${1}</em>")
}
