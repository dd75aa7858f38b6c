package log_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ghettovoice/gouri/internal/log"
	"github.com/ghettovoice/gouri/uri"
)

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := uri.Parse("http://a:80x/")
	var perr *uri.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("uri.Parse() error = %v, want *uri.ParseError", err)
	}

	for _, dev := range []bool{false, true} {
		var buf bytes.Buffer
		logger := log.New(&buf, dev)
		logger.Warn("parse failed",
			slog.Any("input", log.StringValue([]byte("http://a:80x/"))),
			slog.Any("cause", perr),
		)

		out := buf.String()
		for _, want := range []string{"parse failed", "http://a:80x/", "port", "80x"} {
			if !strings.Contains(out, want) {
				t.Errorf("log.New(_, %v) output = %q, want to contain %q", dev, out, want)
			}
		}
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	if log.Noop.Enabled(context.Background(), slog.LevelError) {
		t.Errorf("log.Noop.Enabled() = true, want false")
	}
	log.Noop.Error("dropped", slog.String("k", "v"))
}
