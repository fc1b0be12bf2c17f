package textproc

import (
	"github.com/corey/textkit/internal/ports"
)

// defaultProcessor backs the package-level functions: fresh compilation per
// call and a linear keyword scan.
var defaultProcessor = NewProcessor()

// Processor runs the text operations with a configurable pattern compiler and
// an optional automaton for large keyword sets. The zero value is not usable;
// construct with NewProcessor. A Processor holds no per-call state and is safe
// for concurrent use as long as its Compiler is.
type Processor struct {
	compiler         Compiler
	matcherFactory   ports.KeywordMatcherFactory
	matcherThreshold int
}

// Option configures a Processor.
type Option func(*Processor)

// WithCompiler replaces the default FreshCompiler (e.g. with a *PatternCache).
func WithCompiler(c Compiler) Option {
	return func(p *Processor) {
		if c != nil {
			p.compiler = c
		}
	}
}

// WithKeywordMatcher delegates keyword detection to an automaton built by
// factory whenever the keyword set has at least threshold entries.
// A threshold <= 0 means always.
func WithKeywordMatcher(factory ports.KeywordMatcherFactory, threshold int) Option {
	return func(p *Processor) {
		p.matcherFactory = factory
		p.matcherThreshold = threshold
	}
}

// NewProcessor creates a Processor. Without options it compiles every pattern
// fresh and scans keywords linearly.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{compiler: FreshCompiler{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ExtractURL lowercases text, compiles pattern and returns the first capture
// group of the first match.
func ExtractURL(text, pattern string) (string, bool, error) {
	return defaultProcessor.ExtractURL(text, pattern)
}

// FindAllPatterns reports, per pattern and in input order, the first whole
// match in the lowercased text.
func FindAllPatterns(text string, patterns []string) ([]PatternMatch, error) {
	return defaultProcessor.FindAllPatterns(text, patterns)
}

// ContainsAny reports whether any keyword occurs in the lowercased text.
func ContainsAny(text string, keywords KeywordSet) bool {
	return defaultProcessor.ContainsAny(text, keywords)
}
