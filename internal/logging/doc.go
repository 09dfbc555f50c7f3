// Package logging builds the slog loggers used across the tool.
//
// Two output formats exist: a compact console format for interactive use and
// a JSON format for log files and scripting. NewFromConfig wires the
// configured format, level, and log directory into a single logger that
// writes to stdout and the log file simultaneously.
package logging
