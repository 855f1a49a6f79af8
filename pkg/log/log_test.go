package log_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pagebar/pkg/log"
)

func TestNewHandler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err      error
		level    string
		format   string
		contains string
	}{
		"json": {
			level: "info", format: "json",
			contains: `"msg":"hello"`,
		},
		"logfmt": {
			level: "INFO", format: "logfmt",
			contains: "msg=hello",
		},
		"text": {
			level: "debug", format: "text",
			contains: "hello",
		},
		"warning alias": {
			level: "warning", format: "json",
		},
		"unknown level": {
			level: "loud", format: "json",
			err: log.ErrUnknownLogLevel,
		},
		"unknown format": {
			level: "info", format: "xml",
			err: log.ErrUnknownLogFormat,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			h, err := log.NewHandler(&buf, tc.level, tc.format)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.ErrorIs(t, err, log.ErrInvalidArgument)

				return
			}

			require.NoError(t, err)
			slog.New(h).Info("hello")

			if tc.contains != "" {
				assert.Contains(t, buf.String(), tc.contains)
			}
		})
	}
}

func TestParseLevelFiltersRecords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	h, err := log.NewHandler(&buf, "warn", "logfmt")
	require.NoError(t, err)

	logger := slog.New(h)
	logger.Info("quiet")
	logger.Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Default(), log.FromContext(context.Background()))

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := log.NewContext(context.Background(), logger)
	assert.Same(t, logger, log.FromContext(ctx))
}
