package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toolres/internal/adapters/logger"
	"go.trai.ch/toolres/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without color codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("hidden")
	lg.Info("resolved dotnet-portable")
	lg.Warn("both project files found")

	g := goldie.New(t)
	g.Assert(t, "logger_levels", buf.Bytes())
}

func TestLogger_SetLevel(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetLevel(domain.LogLevelDebug)

	lg.Debug("visible")
	assert.Equal(t, "● visible\n", buf.String())

	buf.Reset()
	lg.SetLevel(domain.LogLevelError)
	lg.Warn("suppressed")
	assert.Empty(t, buf.String())
}

func TestLogger_Error_ZerrChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	inner := zerr.With(zerr.Wrap(errors.New("no such file or directory"), "lock file not found"), "path", "/pkgs/.tools/dotnet-portable/1.0.0/netcoreapp1.0/project.lock.json")
	lg.Error(zerr.Wrap(inner, "tool is declared but has not been restored"))

	g := goldie.New(t)
	g.Assert(t, "logger_error_chain", buf.Bytes())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("resolved")
	lg.Error(errors.New("boom"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Equal(t, "resolved", first["msg"])
	assert.Equal(t, "INFO", first["level"])
	assert.Equal(t, "operation failed", second["msg"])
	assert.Equal(t, "boom", second["error"])
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.SetJSON(true)
	lg.SetJSON(false)
	lg.Info("pretty again")

	assert.Equal(t, "pretty again\n", buf.String())
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetOutput(io.Discard)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				lg.SetOutput(io.Discard)
			}
			lg.Info("message")
		}()
	}
	wg.Wait()
}
