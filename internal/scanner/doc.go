// Package scanner walks the local music directory, reads ID3 tags from MP3
// files, and syncs the results into the library store. Files with missing or
// unreadable tags are kept with empty fields rather than skipped, so the
// library always reflects what is on disk.
package scanner
