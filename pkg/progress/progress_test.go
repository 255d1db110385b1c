package progress

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcoimbee/pyloc/pkg/logger"
)

type mockLogger struct{}

func (m *mockLogger) Info(msg string)                               {}
func (m *mockLogger) Debug(msg string)                              {}
func (m *mockLogger) Error(msg string)                              {}
func (m *mockLogger) Warn(msg string)                               {}
func (m *mockLogger) Trace(msg string)                              {}
func (m *mockLogger) WithFields(fields logger.Fields) logger.Logger { return m }

func newTestProgress(t *testing.T, config Config) (*progress, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	p, ok := New(config, &mockLogger{}).(*progress)
	require.True(t, ok)
	p.writer = &buf

	return p, &buf
}

func TestProgressLifecycle(t *testing.T) {
	p, buf := newTestProgress(t, Config{
		Style:       StyleSimple,
		NoColor:     true,
		RefreshRate: 10 * time.Millisecond,
	})

	p.Start("Counting")
	p.Update(Status{FilesFound: 10, FilesCounted: 4, LinesCounted: 120})

	time.Sleep(30 * time.Millisecond)
	p.Complete("Complete")

	out := buf.String()
	assert.Contains(t, out, "Counting")
	assert.Contains(t, out, "4/10 files")
	assert.Contains(t, out, "Complete")
}

func TestProgressStopIsIdempotent(t *testing.T) {
	p, _ := newTestProgress(t, Config{
		Style:       StyleSimple,
		NoColor:     true,
		RefreshRate: 10 * time.Millisecond,
	})

	p.Start("Counting")
	p.Stop()
	p.Stop()
}

func TestProgressErrorRendersMessage(t *testing.T) {
	p, buf := newTestProgress(t, Config{
		Style:       StyleSimple,
		NoColor:     true,
		RefreshRate: time.Hour, // never tick, only final render
	})

	p.Start("Counting")
	p.Error("Error: count failed")

	assert.Contains(t, buf.String(), "Error: count failed")
}

func TestSpinnerRenderer(t *testing.T) {
	r := &spinnerRenderer{noColor: true, showStats: true}

	out := r.render(Status{FilesCounted: 3, LinesCounted: 99, CurrentPath: "a/b.go"}, "Counting", Statistics{FilesPerSecond: 1.5})

	assert.Contains(t, out, "Counting")
	assert.Contains(t, out, "3 files, 99 lines")
	assert.Contains(t, out, "a/b.go")
	assert.Contains(t, out, "1.5 files/s")
}

func TestSimpleRendererStats(t *testing.T) {
	r := &simpleRenderer{noColor: true, showStats: true}

	out := r.render(Status{FilesFound: 8, FilesCounted: 2, LinesCounted: 40}, "Counting", Statistics{LinesPerSecond: 20})

	assert.Contains(t, out, "2/8 files")
	assert.Contains(t, out, "40 lines")
}

func TestProgressNotATerminalBuffer(t *testing.T) {
	p, _ := newTestProgress(t, Config{Style: StyleSimple})
	assert.False(t, p.IsSupportedTerminal())
}
