package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/corey/textkit/internal/domain/profile"
	"github.com/corey/textkit/internal/domain/textproc"
	"github.com/corey/textkit/internal/ports"
)

// runIDLayout sorts lexically in creation order.
const runIDLayout = "20060102T150405.000000000"

// Corpus is the input set a profiling run feeds through every operation.
type Corpus struct {
	Text     string
	Patterns []string
	Keywords textproc.KeywordSet
	Markdown string
}

// DefaultCorpus is a command-parsing workload: navigation phrases, app
// creation requests and lightly formatted prose.
func DefaultCorpus() Corpus {
	return Corpus{
		Text: "Navigate to https://github.com and search for Python projects. " +
			"Create a todo list with items for: code review, testing, and deployment. " +
			"Make a calculator that can add, subtract, multiply, and divide numbers. " +
			"Visit example.com or go to mozilla.org for documentation.",
		Patterns: []string{
			`(?:navigate|go|open|visit)\s+(?:to\s+)?([^\s]+\.[a-z]{2,})`,
			`(?:create|make|build)\s+(?:a\s+)?(\w+)`,
			`(?:search|find|look)\s+(?:for\s+)?(.+?)(?:\.|$)`,
			`todo|task|checklist`,
			`calculator|calc`,
		},
		Keywords: textproc.NewKeywordSet(
			"create", "make", "generate", "build", "design",
			"todo", "calculator", "form", "page", "website",
		),
		Markdown: "This is **bold text** and this is *italic text*.\n" +
			"A **strong** claim with an *aside* and a trailing *.",
	}
}

// RunProfile resets the profiler and feeds corpus through every operation
// iterations times. The returned run carries the collected stats but no ID.
func (a *App) RunProfile(corpus Corpus, iterations int) (*ports.ProfileRun, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("iterations must be positive, got %d", iterations)
	}
	a.Profiler.Reset()

	data := []byte(corpus.Text)
	htmlDoc := "<html><head><title>profile</title></head><body>" +
		textproc.MarkdownToHTML(corpus.Markdown) + "</body></html>"

	for i := 0; i < iterations; i++ {
		if len(corpus.Patterns) > 0 {
			if _, _, err := a.ExtractURL(corpus.Text, corpus.Patterns[0]); err != nil {
				return nil, err
			}
		}
		if _, err := a.FindAllPatterns(corpus.Text, corpus.Patterns); err != nil {
			return nil, err
		}
		a.ContainsAny(corpus.Text, corpus.Keywords)
		a.Base64Encode(data)
		a.MarkdownToHTML(corpus.Markdown)
		a.HTMLDataURL(htmlDoc)
	}

	a.Log.Debug("profile run complete", "iterations", iterations, "ops", len(a.Profiler.Operations()))
	return &ports.ProfileRun{
		CreatedAt:  a.now().UTC(),
		Iterations: iterations,
		Stats:      a.Profiler.Snapshot(),
	}, nil
}

// SaveRun assigns run an ID from its creation time and persists it.
func (a *App) SaveRun(run *ports.ProfileRun, label string) error {
	if run == nil {
		return fmt.Errorf("nil run")
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = a.now().UTC()
	}
	run.ID = run.CreatedAt.UTC().Format(runIDLayout)
	run.Label = strings.TrimSpace(label)

	store, err := a.Store()
	if err != nil {
		return err
	}
	if err := store.SaveRun(run); err != nil {
		return wrapStoreError(err, "save profile run")
	}
	a.Log.Info("profile run saved", "id", run.ID, "label", run.Label)
	return nil
}

// ListRuns returns stored run IDs, oldest first.
func (a *App) ListRuns() ([]string, error) {
	store, err := a.Store()
	if err != nil {
		return nil, err
	}
	ids, err := store.ListRuns()
	if err != nil {
		return nil, wrapStoreError(err, "list profile runs")
	}
	return ids, nil
}

// LoadRun returns the stored run, or nil when id is unknown.
func (a *App) LoadRun(id string) (*ports.ProfileRun, error) {
	store, err := a.Store()
	if err != nil {
		return nil, err
	}
	run, err := store.LoadRun(id)
	if err != nil {
		return nil, wrapStoreError(err, "load profile run")
	}
	return run, nil
}

// DeleteRun removes a stored run. Unknown IDs are not an error.
func (a *App) DeleteRun(id string) error {
	store, err := a.Store()
	if err != nil {
		return err
	}
	if err := store.DeleteRun(id); err != nil {
		return wrapStoreError(err, "delete profile run")
	}
	return nil
}

// WriteRunReport prints a stored run header followed by its stats table.
func WriteRunReport(w io.Writer, run *ports.ProfileRun) error {
	header := fmt.Sprintf("run %s", run.ID)
	if run.Label != "" {
		header += fmt.Sprintf(" (%s)", run.Label)
	}
	if _, err := fmt.Fprintf(w, "%s  %s  iterations=%d\n", header,
		run.CreatedAt.Format("2006-01-02 15:04:05"), run.Iterations); err != nil {
		return err
	}
	return profile.WriteReport(w, run.Stats)
}
