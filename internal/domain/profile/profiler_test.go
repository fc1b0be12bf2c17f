package profile

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfiler_StatsExact(t *testing.T) {
	p := New()
	p.Record("encode", 10*time.Millisecond)
	p.Record("encode", 30*time.Millisecond)
	p.Record("encode", 20*time.Millisecond)

	s, ok := p.Stats("encode")
	require.True(t, ok)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 60*time.Millisecond, s.Total)
	assert.Equal(t, 20*time.Millisecond, s.Mean)
	assert.Equal(t, 10*time.Millisecond, s.Min)
	assert.Equal(t, 30*time.Millisecond, s.Max)
}

func TestProfiler_UnknownOperation(t *testing.T) {
	_, ok := New().Stats("nope")
	assert.False(t, ok)
}

func TestProfiler_MeasureUsesClock(t *testing.T) {
	p := New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	p.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls-1) * 5 * time.Millisecond)
	}

	stop := p.Measure("scan")
	stop()

	s, ok := p.Stats("scan")
	require.True(t, ok)
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 5*time.Millisecond, s.Total)
}

func TestProfiler_OperationsSortedAndReset(t *testing.T) {
	p := New()
	p.Record("zeta", time.Millisecond)
	p.Record("alpha", time.Millisecond)
	assert.Equal(t, []string{"alpha", "zeta"}, p.Operations())
	assert.Len(t, p.Snapshot(), 2)

	p.Reset()
	assert.Empty(t, p.Operations())
	assert.Empty(t, p.Snapshot())
}

func TestProfiler_Concurrent(t *testing.T) {
	p := New()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				p.Measure("contains")()
			}
		}()
	}
	wg.Wait()

	s, ok := p.Stats("contains")
	require.True(t, ok)
	assert.Equal(t, 2000, s.Count)
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().WriteReport(&buf))
	assert.Equal(t, "No measurements recorded\n", buf.String())

	p := New()
	p.Record("markdown_to_html", 2*time.Millisecond)
	p.Record("base64_encode", time.Millisecond)
	buf.Reset()
	require.NoError(t, p.WriteReport(&buf))

	out := buf.String()
	assert.Contains(t, out, "PERFORMANCE PROFILING REPORT")
	assert.Contains(t, out, "  Calls:        1")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("base64_encode")), bytes.Index(buf.Bytes(), []byte("markdown_to_html")))
}
