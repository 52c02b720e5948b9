// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vout

import (
	"log/slog"

	"github.com/gogpu/vout/internal/logx"
)

// SetLogger configures the logger for vout and all its sub-packages.
// By default, vout produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by vout:
//   - [slog.LevelDebug]: dropped frames, placement results, provider fallbacks
//   - [slog.LevelInfo]: lifecycle events (display opened, display closed)
//   - [slog.LevelWarn]: non-fatal issues (renderer prepare failures, close-path errors)
//   - [slog.LevelError]: unknown control requests
//
// Example:
//
//	vout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logx.Set(l)
}

// Logger returns the current logger used by vout.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logx.Logger()
}
