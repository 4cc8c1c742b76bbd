package figures

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_SilentByDefault(t *testing.T) {
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	p, _ := newTestPen()
	require.NoError(t, Sun(p, 1, 2, DefaultSunOptions()))
	assert.Contains(t, buf.String(), "sun rendered")
	assert.Contains(t, buf.String(), "rays=24")

	SetLogger(nil)
	buf.Reset()
	require.NoError(t, Sun(p, 1, 2, DefaultSunOptions()))
	assert.Empty(t, buf.String())
}
