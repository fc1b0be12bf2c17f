package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_OffReturnsNoOp(t *testing.T) {
	for _, level := range []string{"", "off", " OFF "} {
		l, err := New(Config{Level: level}, "textkit")
		require.NoError(t, err)
		assert.Equal(t, NoOp(), l)
	}
}

func TestNew_Levels(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "warning", "error", "DEBUG"} {
		l, err := New(Config{Level: level, Format: "console"}, "textkit.test")
		require.NoError(t, err, level)
		require.NotNil(t, l)
	}
}

func TestNew_Formats(t *testing.T) {
	for _, format := range []string{"", "console", "json", "pretty"} {
		l, err := New(Config{Level: "error", Format: format}, "")
		require.NoError(t, err, format)
		assert.NotPanics(t, func() { l.Debug("below threshold", "format", format) })
	}
}

func TestNew_Rejects(t *testing.T) {
	_, err := New(Config{Level: "loud"}, "x")
	assert.Error(t, err)

	_, err = New(Config{Level: "info", Format: "xml"}, "x")
	assert.Error(t, err)
}

func TestNoOp_Discards(t *testing.T) {
	l := NoOp()
	assert.NotPanics(t, func() {
		l.Debug("d", "k", 1)
		l.Info("i")
		l.Warn("w")
		l.Error("e")
	})
}
