// Package store persists the scanned local library in SQLite. Tracks are
// keyed by file path so repeated scans upsert in place, and rows for files
// that vanished between scans can be pruned.
package store
