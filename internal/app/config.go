package app

import (
	"strconv"
	"strings"

	"github.com/corey/textkit/internal/logging"
)

// Environment variables read by Config.ApplyEnv.
const (
	EnvLogLevel         = "TEXTKIT_LOG_LEVEL"
	EnvLogFormat        = "TEXTKIT_LOG_FORMAT"
	EnvPatternCache     = "TEXTKIT_PATTERN_CACHE"
	EnvKeywordAutomaton = "TEXTKIT_KEYWORD_AUTOMATON"
	EnvDebug            = "TEXTKIT_DEBUG"
)

// Config controls how the App wires the text operations.
type Config struct {
	LogLevel  string
	LogFormat string

	// PatternCache keeps compiled patterns across calls, keyed by pattern text.
	PatternCache bool

	// KeywordAutomaton is the keyword-set size from which detection switches
	// to an Aho-Corasick automaton. 0 disables the automaton.
	KeywordAutomaton int

	// Debug logs per-operation timings at info level regardless of LogLevel.
	Debug bool
}

// DefaultConfig returns the defaults: no logging, fresh pattern compilation,
// automaton for keyword sets of 16 or more.
func DefaultConfig() Config {
	return Config{
		LogLevel:         logging.LevelOff,
		LogFormat:        "console",
		PatternCache:     false,
		KeywordAutomaton: 16,
	}
}

// ApplyEnv overlays environment settings onto c. lookup is usually os.LookupEnv.
// Unparseable numeric values are ignored.
func (c Config) ApplyEnv(lookup func(string) (string, bool)) Config {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.LogFormat = v
	}
	if v, ok := lookup(EnvPatternCache); ok {
		c.PatternCache = truthy(v)
	}
	if v, ok := lookup(EnvKeywordAutomaton); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 0 {
			c.KeywordAutomaton = n
		}
	}
	if v, ok := lookup(EnvDebug); ok {
		c.Debug = truthy(v)
	}
	return c
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// loggingConfig returns the logger settings, raising the level to debug in Debug mode.
func (c Config) loggingConfig() logging.Config {
	lc := logging.Config{Level: c.LogLevel, Format: c.LogFormat}
	if c.Debug {
		lc.Level = "debug"
	}
	return lc
}
