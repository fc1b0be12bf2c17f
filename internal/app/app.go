// Package app wires together all adapters and domain logic.
// It owns the processor configuration, the profiler and the lazily opened
// profile store used by the textkit CLI.
package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/corey/textkit/internal/adapters/ahocorasick"
	"github.com/corey/textkit/internal/adapters/bbolt"
	fsw "github.com/corey/textkit/internal/adapters/fsnotify"
	"github.com/corey/textkit/internal/domain/profile"
	"github.com/corey/textkit/internal/domain/textproc"
	"github.com/corey/textkit/internal/logging"
	"github.com/corey/textkit/internal/ports"
)

// App is the top-level container wiring all components together.
type App struct {
	Paths     *Paths
	Config    Config
	Processor *textproc.Processor
	Cache     *textproc.PatternCache // nil unless Config.PatternCache
	Profiler  *profile.Profiler
	Log       logging.Logger

	mu    sync.Mutex
	store ports.ProfileStore
	close func() error

	// Overridable for tests.
	openStore  func(path string) (ports.ProfileStore, func() error, error)
	newWatcher func() (ports.Watcher, error)
	now        func() time.Time
}

// New builds an App rooted at projectRoot. No files are touched until a
// profile run is saved or listed.
func New(projectRoot string, cfg Config) (*App, error) {
	if projectRoot == "" {
		return nil, fmt.Errorf("project root required")
	}

	log, err := logging.New(cfg.loggingConfig(), "textkit")
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	a := &App{
		Paths:      NewPaths(projectRoot),
		Config:     cfg,
		Profiler:   profile.New(),
		Log:        log,
		openStore:  openBoltStore,
		newWatcher: newFSWatcher,
		now:        time.Now,
	}

	var opts []textproc.Option
	if cfg.PatternCache {
		a.Cache = textproc.NewPatternCache()
		opts = append(opts, textproc.WithCompiler(a.Cache))
	}
	if cfg.KeywordAutomaton > 0 {
		opts = append(opts, textproc.WithKeywordMatcher(ahocorasick.Factory, cfg.KeywordAutomaton))
	}
	a.Processor = textproc.NewProcessor(opts...)

	a.Log.Debug("app ready",
		"root", a.Paths.Root,
		"pattern_cache", cfg.PatternCache,
		"keyword_automaton", cfg.KeywordAutomaton)
	return a, nil
}

func openBoltStore(path string) (ports.ProfileStore, func() error, error) {
	s, err := bbolt.NewStore(path)
	if err != nil {
		return nil, nil, err
	}
	return s, s.Close, nil
}

func newFSWatcher() (ports.Watcher, error) {
	return fsw.NewWatcher()
}

// Store opens the profile store on first use.
func (a *App) Store() (ports.ProfileStore, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.store != nil {
		return a.store, nil
	}
	if err := a.Paths.EnsureDirs(); err != nil {
		return nil, wrapStoreError(err, "create .textkit directory")
	}
	s, closeFn, err := a.openStore(a.Paths.DB)
	if err != nil {
		return nil, wrapStoreError(err, "open profile store")
	}
	a.store = s
	a.close = closeFn
	a.Log.Debug("profile store opened", "path", a.Paths.DB)
	return s, nil
}

// Close releases the profile store if it was opened. Safe to call repeatedly.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.close == nil {
		return nil
	}
	err := a.close()
	a.store = nil
	a.close = nil
	return err
}
