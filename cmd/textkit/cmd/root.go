package cmd

import (
	"fmt"
	"os"

	"github.com/corey/textkit/internal/app"
	"github.com/spf13/cobra"
)

var (
	rootLogLevel  string
	rootLogFormat string
	rootCache     bool
	rootAutomaton int
	rootDebug     bool
	rootColor     string
	rootNoColor   bool
)

var rootCmd = &cobra.Command{
	Use:           "textkit",
	Short:         "textkit — fast text primitives",
	Long:          "URL extraction, multi-pattern scanning, keyword detection, base64 and markdown rendering.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootLogLevel, "log-level", "", "Log level: off, trace, debug, info, warn, error")
	f.StringVar(&rootLogFormat, "log-format", "", "Log format: console, json, pretty")
	f.BoolVar(&rootCache, "pattern-cache", false, "Reuse compiled patterns across calls")
	f.IntVar(&rootAutomaton, "keyword-automaton", -1, "Keyword count from which an automaton is used (0 disables)")
	f.BoolVar(&rootDebug, "debug", false, "Log per-operation timings")
	f.StringVar(&rootColor, "color", "auto", "Color output: auto, always, never")
	f.BoolVar(&rootNoColor, "no-color", false, "Suppress color output")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(containsCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(markdownCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(configCmd)
}

// projectRoot returns the project root (cwd by default).
func projectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return dir, nil
}

// loadConfig layers defaults, environment, then flags.
func loadConfig() app.Config {
	cfg := app.DefaultConfig().ApplyEnv(os.LookupEnv)
	if rootLogLevel != "" {
		cfg.LogLevel = rootLogLevel
	}
	if rootLogFormat != "" {
		cfg.LogFormat = rootLogFormat
	}
	if rootCache {
		cfg.PatternCache = true
	}
	if rootAutomaton >= 0 {
		cfg.KeywordAutomaton = rootAutomaton
	}
	if rootDebug {
		cfg.Debug = true
	}
	return cfg
}

// newApp builds the App for one command invocation. Callers must Close it.
func newApp() (*app.App, error) {
	root, err := projectRoot()
	if err != nil {
		return nil, err
	}
	return app.New(root, loadConfig())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
