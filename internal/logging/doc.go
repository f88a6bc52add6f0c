// Package logging assembles the structured slog loggers used across
// shrinktunes.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// exposes a no-op logger used whenever verbose output is disabled: the
// conversion driver always logs, and the caller decides whether those lines
// go anywhere.
package logging
