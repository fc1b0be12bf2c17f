package textproc

import (
	"strings"
	"testing"
)

var benchText = strings.Repeat("Navigate to Example.com and create a **todo** list with *items*. ", 64)

func BenchmarkExtractURL_Fresh(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, _ = ExtractURL(benchText, navigatePattern)
	}
}

func BenchmarkExtractURL_Cached(b *testing.B) {
	p := NewProcessor(WithCompiler(NewPatternCache()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = p.ExtractURL(benchText, navigatePattern)
	}
}

func BenchmarkFindAllPatterns(b *testing.B) {
	patterns := []string{`todo`, `items?`, `example\.\w+`, `missing`}
	for i := 0; i < b.N; i++ {
		_, _ = FindAllPatterns(benchText, patterns)
	}
}

func BenchmarkContainsAny(b *testing.B) {
	set := NewKeywordSet("generate", "build", "make", "create")
	for i := 0; i < b.N; i++ {
		_ = ContainsAny(benchText, set)
	}
}

func BenchmarkBase64Encode(b *testing.B) {
	data := []byte(benchText)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		_ = Base64Encode(data)
	}
}

func BenchmarkMarkdownToHTML(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = MarkdownToHTML(benchText)
	}
}
