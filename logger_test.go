package flatmap

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferLogger(buf *bytes.Buffer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestLogger_CreateDestroy(t *testing.T) {
	var buf bytes.Buffer
	m, err := New(0, WithLogger(bufferLogger(&buf, slog.LevelDebug)), WithName("ids"))
	require.NoError(t, err)
	require.NoError(t, m.Set([]byte("a"), 1))
	require.NoError(t, m.Destroy())

	out := buf.String()
	assert.Contains(t, out, "msg=alloc")
	assert.Contains(t, out, "table=ids")
	assert.Contains(t, out, "capacity=64")
	assert.Contains(t, out, "block_bytes=576")
	assert.Contains(t, out, "msg=free")
	assert.Contains(t, out, "keys_released=1")
}

func TestLogger_OverflowIsSampled(t *testing.T) {
	var buf bytes.Buffer
	m := newTable(t, 0, WithLogger(bufferLogger(&buf, slog.LevelWarn)), WithHasher(constHasher))

	for _, k := range []string{"a", "b", "c", "d"} {
		require.NoError(t, m.Set([]byte(k), 1))
	}
	for range 100 {
		_, err := m.BeginWrite([]byte("e"))
		require.ErrorIs(t, err, ErrOverflow)
	}

	lines := strings.Count(buf.String(), "probe window exhausted")
	assert.GreaterOrEqual(t, lines, 1)
	assert.Less(t, lines, 100)
	assert.Contains(t, buf.String(), "key=e")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
	l.LogOverflow([]byte("k"), 4)
}

func TestLogger_WithNameEmpty(t *testing.T) {
	l := NoopLogger()
	assert.Same(t, l, l.WithName(""))
}
