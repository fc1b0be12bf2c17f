// Package profile measures how long text operations take, per operation name.
package profile

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/corey/textkit/internal/ports"
)

// Stats summarizes the recorded durations of one operation.
type Stats = ports.OperationStats

// Profiler accumulates durations per operation. Safe for concurrent use.
type Profiler struct {
	mu           sync.Mutex
	measurements map[string][]time.Duration
	now          func() time.Time
}

// New creates an empty profiler.
func New() *Profiler {
	return &Profiler{
		measurements: make(map[string][]time.Duration),
		now:          time.Now,
	}
}

var global = New()

// Global returns the process-wide profiler.
func Global() *Profiler { return global }

// Measure starts timing op and returns the function that stops it.
//
//	defer prof.Measure("markdown_to_html")()
func (p *Profiler) Measure(op string) func() {
	start := p.now()
	return func() {
		p.Record(op, p.now().Sub(start))
	}
}

// Record adds one measurement for op.
func (p *Profiler) Record(op string, d time.Duration) {
	p.mu.Lock()
	p.measurements[op] = append(p.measurements[op], d)
	p.mu.Unlock()
}

// Stats returns the summary for op, or false if op was never recorded.
func (p *Profiler) Stats(op string) (Stats, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.statsLocked(op)
}

func (p *Profiler) statsLocked(op string) (Stats, bool) {
	times := p.measurements[op]
	if len(times) == 0 {
		return Stats{}, false
	}
	s := Stats{Count: len(times), Min: times[0], Max: times[0]}
	for _, d := range times {
		s.Total += d
		if d < s.Min {
			s.Min = d
		}
		if d > s.Max {
			s.Max = d
		}
	}
	s.Mean = s.Total / time.Duration(len(times))
	return s, true
}

// Operations returns the recorded operation names, sorted.
func (p *Profiler) Operations() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	ops := make([]string, 0, len(p.measurements))
	for op := range p.measurements {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Snapshot returns the stats of every recorded operation.
func (p *Profiler) Snapshot() map[string]Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]Stats, len(p.measurements))
	for op := range p.measurements {
		if s, ok := p.statsLocked(op); ok {
			out[op] = s
		}
	}
	return out
}

// Reset clears all measurements.
func (p *Profiler) Reset() {
	p.mu.Lock()
	p.measurements = make(map[string][]time.Duration)
	p.mu.Unlock()
}

// WriteReport writes a human-readable report of all measurements to w.
func (p *Profiler) WriteReport(w io.Writer) error {
	return WriteReport(w, p.Snapshot())
}

// WriteReport formats stats, sorted by operation name.
func WriteReport(w io.Writer, stats map[string]Stats) error {
	if len(stats) == 0 {
		_, err := fmt.Fprintln(w, "No measurements recorded")
		return err
	}

	ops := make([]string, 0, len(stats))
	for op := range stats {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	rule := strings.Repeat("=", 80)
	var sb strings.Builder
	sb.WriteString(rule + "\nPERFORMANCE PROFILING REPORT\n" + rule + "\n")
	for _, op := range ops {
		s := stats[op]
		fmt.Fprintf(&sb, "\n%s:\n", op)
		fmt.Fprintf(&sb, "  Calls:        %d\n", s.Count)
		fmt.Fprintf(&sb, "  Total time:   %s\n", s.Total)
		fmt.Fprintf(&sb, "  Mean time:    %s\n", s.Mean)
		fmt.Fprintf(&sb, "  Min time:     %s\n", s.Min)
		fmt.Fprintf(&sb, "  Max time:     %s\n", s.Max)
	}
	sb.WriteString("\n" + rule + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
