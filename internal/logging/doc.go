// Package logging assembles the structured slog loggers used across
// prevgen.
//
// P5 consumes the process's standard output as the result channel, so
// loggers built here only ever write to standard error and the log file.
// Log file problems degrade to stderr-only output instead of failing the
// run. A no-op logger is available for tests and wiring code.
package logging
