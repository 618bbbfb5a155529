package xlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/macfmt/pkg/observability/xlog"
)

// testCleanup 在测试结束时执行 cleanup
func testCleanup(t *testing.T, cleanup func() error) {
	t.Helper()
	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})
}

func TestLogger_BasicLogging(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetLevel(xlog.LevelDebug).
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	ctx := context.Background()
	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	out := buf.String()
	for _, want := range []string{"debug message", "info message", "warn message", "error message"} {
		assert.Contains(t, out, want)
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetLevelString("warn").
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	ctx := context.Background()
	logger.Info(ctx, "hidden")
	logger.Warn(ctx, "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.False(t, logger.Enabled(ctx, xlog.LevelDebug))
	assert.True(t, logger.Enabled(ctx, xlog.LevelError))
}

func TestLogger_DynamicLevelSharedWithChild(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	child := logger.With(xlog.Component("scanner"))
	child.Debug(context.Background(), "before")
	logger.SetLevel(xlog.LevelDebug)
	child.Debug(context.Background(), "after")

	assert.Equal(t, xlog.LevelDebug, logger.GetLevel())
	assert.NotContains(t, buf.String(), "before")
	assert.Contains(t, buf.String(), "after")
	assert.Contains(t, buf.String(), "component=scanner")
}

func TestLogger_WithNoAttrsReturnsSelf(t *testing.T) {
	logger, cleanup, err := xlog.New().SetOutput(&bytes.Buffer{}).Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	assert.Same(t, logger, logger.With())
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetFormat(" JSON ").
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	logger.Info(context.Background(), "scan done", xlog.Count(3), xlog.Err(errors.New("boom")))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "scan done", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
	assert.InDelta(t, 3, rec["count"], 0)
	assert.Equal(t, "boom", rec["error"])
}

func TestLogger_AddSource(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetAddSource(true).
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	logger.Info(context.Background(), "where")
	assert.Contains(t, buf.String(), "xlog_test.go")
}

func TestLogger_NilContext(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	//nolint:staticcheck // nil ctx 不应 panic
	logger.Info(nil, "nil ctx")
	assert.Contains(t, buf.String(), "nil ctx")
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		builder *xlog.Builder
		wantErr error
	}{
		{"bad_level", xlog.New().SetLevelString("verbose"), xlog.ErrUnknownLevel},
		{"bad_format", xlog.New().SetFormat("xml"), xlog.ErrUnknownFormat},
		{"nil_output", xlog.New().SetOutput(nil), xlog.ErrNilOutput},
		{"empty_rotation", xlog.New().SetRotation(""), xlog.ErrEmptyFilename},
		{"bad_rotation", xlog.New().SetRotation("x.log", xlog.WithMaxSize(0)), xlog.ErrInvalidRotation},
		{"first_error_wins", xlog.New().SetFormat("xml").SetLevelString("verbose"), xlog.ErrUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, cleanup, err := tt.builder.Build()
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, logger)
			assert.Nil(t, cleanup)
		})
	}
}

func TestBuilder_Rotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "macfmt.log")

	logger, cleanup, err := xlog.New().
		SetRotation(path, xlog.WithMaxSize(1), xlog.WithMaxBackups(1), xlog.WithMaxAge(1),
			xlog.WithCompress(false), xlog.WithLocalTime(true)).
		Build()
	require.NoError(t, err)

	logger.Warn(context.Background(), "to file", slog.String("k", "v"))
	require.NoError(t, cleanup())
	// 重复调用安全
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "to file"))
	assert.Contains(t, string(data), "k=v")
}

func TestDiscard(t *testing.T) {
	logger := xlog.Discard()
	ctx := context.Background()

	logger.Error(ctx, "nothing")
	logger.With(slog.String("k", "v")).Info(ctx, "nothing")
	assert.False(t, logger.Enabled(ctx, xlog.LevelError))
}

func TestErrAttr(t *testing.T) {
	assert.Equal(t, "<nil>", xlog.Err(nil).Value.String())
	assert.Equal(t, "x", xlog.Err(errors.New("x")).Value.String())
}
