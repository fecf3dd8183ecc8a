// Package logging builds slog loggers for tonearm and standardizes the
// structured field names used across the CLI and the catalog store.
//
// Loggers write to stdout/stderr plus the configured log directory, in either
// console or JSON format. Administrative operations carry a correlation id
// through the context so every log line of one invocation can be tied
// together.
package logging
