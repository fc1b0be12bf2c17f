package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/corey/textkit/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every package-level flag variable to its default.
func resetFlags() {
	rootLogLevel, rootLogFormat = "", ""
	rootCache, rootDebug, rootNoColor = false, false, false
	rootAutomaton = -1
	rootColor = "never"
	scanPatterns, scanCount = nil, false
	containsKeywords, containsQuiet = nil, false
	encodeDataURL = false
	markdownWatch, markdownOut = false, ""
	profileIterations, profileSave, profileLabel = 100, false, ""
}

// execute runs textkit with args inside a temp working directory.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	return executeHere(t, stdin, args...)
}

// executeHere runs textkit in the current working directory.
func executeHere(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var out, errOut bytes.Buffer
	rootCmd.SetArgs(append(args, "--color", "never"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, ExitCode(errNoMatch))
	assert.Equal(t, 2, ExitCode(exitStatus{code: 2}))
	assert.Equal(t, -1, ExitCode(errors.New("boom")))
	assert.Equal(t, "no match", errNoMatch.Error())
}

func TestResolveColor(t *testing.T) {
	assert.True(t, resolveColor("always", false))
	assert.False(t, resolveColor("always", true))
	assert.False(t, resolveColor("never", false))
}

func TestPaint(t *testing.T) {
	assert.Equal(t, "x", paint(false, colorCyan, "x"))
	assert.Equal(t, colorCyan+"x"+colorReset, paint(true, colorCyan, "x"))
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv(app.EnvLogLevel, "info")
	t.Setenv(app.EnvKeywordAutomaton, "8")
	resetFlags()

	cfg := loadConfig()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8, cfg.KeywordAutomaton)

	rootLogLevel = "error"
	rootAutomaton = 0
	rootCache = true
	cfg = loadConfig()
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, 0, cfg.KeywordAutomaton)
	assert.True(t, cfg.PatternCache)
}

func TestExtractCmd(t *testing.T) {
	out, err := execute(t, "", "extract", `(?:go|visit)\s+(?:to\s+)?([^\s]+\.[a-z]{2,})`, "Please", "Visit", "Mozilla.ORG", "today")
	require.NoError(t, err)
	assert.Equal(t, "mozilla.org\n", out)

	out, err = execute(t, "nothing to see", "extract", `visit\s+(\S+)`)
	assert.Equal(t, 1, ExitCode(err))
	assert.Empty(t, out)

	_, err = execute(t, "text", "extract", `(unclosed`)
	require.Error(t, err)
	assert.Equal(t, -1, ExitCode(err))
	assert.True(t, app.IsInvalidPattern(err))
}

func TestScanCmd(t *testing.T) {
	out, err := execute(t, "Create a TODO list\n", "scan", "-e", "todo", "-e", "missing", "-e", `creat\w`)
	require.NoError(t, err)
	assert.Equal(t, "todo\ttodo\ncreat\\w\tcreate\n", out)

	out, err = execute(t, "Create a TODO list", "scan", "-c", "-e", "todo", "-e", "list")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	_, err = execute(t, "abc", "scan", "-e", "zzz")
	assert.Equal(t, 1, ExitCode(err))

	_, err = execute(t, "abc", "scan")
	assert.Error(t, err)
}

func TestContainsCmd(t *testing.T) {
	out, err := execute(t, "", "contains", "-k", "calculator,form", "Make", "a", "Calculator")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = execute(t, "plain prose", "contains", "-k", "website", "-k", "page")
	assert.Equal(t, 1, ExitCode(err))
	assert.Equal(t, "false\n", out)

	out, err = execute(t, "plain prose", "contains", "-q", "-k", "PROSE")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestEncodeCmd(t *testing.T) {
	out, err := execute(t, "hello", "encode")
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=\n", out)

	dir := t.TempDir()
	file := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(file, []byte("<html><head></head><body>x</body></html>"), 0644))

	out, err = execute(t, "", "encode", "--data-url", file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "data:text/html;charset=utf-8;base64,"))

	_, err = execute(t, "", "encode", filepath.Join(dir, "missing.bin"))
	assert.Error(t, err)
}

func TestMarkdownCmd(t *testing.T) {
	out, err := execute(t, "This is **bold** and *italic*", "markdown")
	require.NoError(t, err)
	assert.Equal(t, "This is <strong>bold</strong> and <em>italic</em>\n", out)

	dir := t.TempDir()
	src := filepath.Join(dir, "in.md")
	dst := filepath.Join(dir, "out.html")
	require.NoError(t, os.WriteFile(src, []byte("**x**"), 0644))

	out, err = execute(t, "", "markdown", "--out", dst, src)
	require.NoError(t, err)
	assert.Empty(t, out)
	html, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "<strong>x</strong>", string(html))

	_, err = execute(t, "", "markdown", "--watch")
	assert.Error(t, err)
}

func TestProfileCmd_SaveListShowDelete(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := executeHere(t, "", "profile", "-n", "3", "--save", "--label", "baseline")
	require.NoError(t, err)
	assert.Contains(t, out, "PERFORMANCE PROFILING REPORT")
	assert.Contains(t, out, app.OpMarkdownToHTML)
	require.Contains(t, out, "saved run ")

	id := strings.TrimSpace(out[strings.LastIndex(out, "saved run ")+len("saved run "):])
	require.NotEmpty(t, id)

	out, err = executeHere(t, "", "profile", "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "baseline")
	assert.Contains(t, out, "iterations=3")

	out, err = executeHere(t, "", "profile", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "run "+id+" (baseline)")

	out, err = executeHere(t, "", "profile", "delete", id)
	require.NoError(t, err)
	assert.Equal(t, "deleted "+id+"\n", out)

	out, err = executeHere(t, "", "profile", "list")
	require.NoError(t, err)
	assert.Equal(t, "no saved runs\n", out)

	_, err = executeHere(t, "", "profile", "show", id)
	assert.Error(t, err)
}

func TestProfileCmd_NoSaveLeavesNoDB(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := executeHere(t, "", "profile", "-n", "1")
	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(dir, ".textkit"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestConfigCmd(t *testing.T) {
	t.Setenv(app.EnvPatternCache, "1")
	out, err := execute(t, "", "config", "--keyword-automaton", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "textkit config")
	assert.Contains(t, out, "Pattern cache: on")
	assert.Contains(t, out, "Automaton:     disabled")
	assert.Contains(t, out, "textkit.db")
}
