// Package match reconciles a streaming music catalog against a local file
// collection. It normalizes titles and artists into comparison keys, splits
// version/mix descriptors from titles, and runs a tiered cascade (exact key,
// core-title key, cross-tier, fuzzy) to decide whether each streaming track
// exists locally.
//
// Every function in this package is a pure transformation of its inputs:
// no I/O, no shared state, no errors. Absent or malformed input degrades to
// empty-string normalization and simply fails to match. An Index is built
// once per run and is safe to share across concurrent Match calls.
package match
