// Command mako-sync reconciles a Spotify library against a local MP3
// collection. It scans local files into a SQLite index, fetches streaming
// tracks, and reports which streaming tracks have no local counterpart.
package main
