// Package testutil provides helpers shared by the package tests.
package testutil

import (
	"bytes"
	"log/slog"
	"testing"
)

// NewTestLogger returns a debug-level logger writing into the returned
// buffer, so tests can assert on emitted records.
func NewTestLogger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(handler), &buf
}
