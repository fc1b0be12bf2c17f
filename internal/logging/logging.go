// Package logging adapts github.com/goliatone/go-logger to the small Logger
// contract used by the app layer. The text operations themselves never log.
package logging

import (
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// Logger is the logging contract used across textkit. Args are key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config selects the go-logger level and output format.
type Config struct {
	Level  string // off, trace, debug, info, warn, error
	Format string // console, json, pretty
}

// LevelOff disables logging entirely.
const LevelOff = "off"

// New builds a named logger. An empty or "off" level returns NoOp().
func New(cfg Config, name string) (Logger, error) {
	level := strings.ToLower(strings.TrimSpace(cfg.Level))
	if level == "" || level == LevelOff {
		return NoOp(), nil
	}

	glevel, ok := normalizeLevel(level)
	if !ok {
		return nil, fmt.Errorf("logging: unsupported level %q", cfg.Level)
	}
	options := []glog.Option{glog.WithLevel(glevel)}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", cfg.Format)
	}

	root := glog.NewLogger(options...)
	name = strings.TrimSpace(name)
	if name == "" {
		return &adapter{inner: root}, nil
	}
	return &adapter{inner: root.GetLogger(name)}, nil
}

type adapter struct {
	inner glog.Logger
}

func (l *adapter) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *adapter) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *adapter) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *adapter) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

func normalizeLevel(level string) (string, bool) {
	switch level {
	case "trace":
		return glog.Trace, true
	case "debug":
		return glog.Debug, true
	case "info":
		return glog.Info, true
	case "warn", "warning":
		return glog.Warn, true
	case "error":
		return glog.Error, true
	default:
		return "", false
	}
}

type noop struct{}

func (noop) Debug(string, ...any) {}
func (noop) Info(string, ...any)  {}
func (noop) Warn(string, ...any)  {}
func (noop) Error(string, ...any) {}

// NoOp returns a Logger that discards everything.
func NoOp() Logger { return noop{} }
