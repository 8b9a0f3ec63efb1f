// Package eval measures matching accuracy against a labeled fixture corpus.
// Each case asserts either that a streaming track is truly missing from the
// local collection or that it should have matched a named local track. The
// harness runs the matcher over an index built from every case's expected
// track and reports recall, false-negative rate, and per-category failure
// counts. A non-zero false-positive count is always a defect.
package eval
