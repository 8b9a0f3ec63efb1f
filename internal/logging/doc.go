// Package logging constructs the application slog logger. Output is either
// a human-oriented console format or JSON, at a level taken from
// configuration, optionally duplicated into a log file under the configured
// log directory.
package logging
