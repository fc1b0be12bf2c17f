// Package textproc implements the stateless text operations: capture-group
// extraction, multi-pattern scanning, keyword detection, base64 encoding and
// bold/italic markdown conversion. Every operation is pure. Extraction and
// detection work on a lowercased copy of the input; the input is never mutated.
package textproc

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidPattern is matched (via errors.Is) by every pattern compilation failure.
var ErrInvalidPattern = errors.New("invalid regex pattern")

// InvalidPatternError reports a pattern that failed to compile.
// Index is the position in the pattern list for scans, -1 for single-pattern calls.
type InvalidPatternError struct {
	Pattern string
	Index   int
	Err     error // syntax diagnostic from regexp
}

func (e *InvalidPatternError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid regex pattern #%d '%s': %v", e.Index, e.Pattern, e.Err)
	}
	return fmt.Sprintf("invalid regex pattern '%s': %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrInvalidPattern) hold.
func (e *InvalidPatternError) Is(target error) bool { return target == ErrInvalidPattern }

// Compiler turns pattern source text into a matcher.
type Compiler interface {
	Compile(pattern string) (*regexp.Regexp, error)
}

// FreshCompiler compiles on every call. Nothing is shared between calls.
type FreshCompiler struct{}

// Compile implements Compiler.
func (FreshCompiler) Compile(pattern string) (*regexp.Regexp, error) {
	return Compile(pattern)
}

// Compile compiles pattern with RE2 syntax.
// Failures are returned as *InvalidPatternError with Index -1.
func Compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Index: -1, Err: err}
	}
	return re, nil
}
