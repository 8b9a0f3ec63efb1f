package scanner

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/gofrs/flock"

	"github.com/gwherrett/mako-sync/internal/config"
	"github.com/gwherrett/mako-sync/internal/logging"
	"github.com/gwherrett/mako-sync/internal/match"
	"github.com/gwherrett/mako-sync/internal/store"
)

// ErrScanInProgress indicates another process holds the scan lock.
var ErrScanInProgress = errors.New("another scan is already running")

// Scanner reads the local music collection.
type Scanner struct {
	musicDir string
	lockPath string
	logger   *slog.Logger
}

// New constructs a scanner for the configured music directory.
func New(cfg *config.Config, logger *slog.Logger) *Scanner {
	return &Scanner{
		musicDir: cfg.Paths.MusicDir,
		lockPath: filepath.Join(cfg.Paths.LogDir, "scan.lock"),
		logger:   logging.WithComponent(logger, "scanner"),
	}
}

// Scan walks the music directory and returns a track per MP3 file found.
func (s *Scanner) Scan(ctx context.Context) ([]match.LocalTrack, error) {
	var tracks []match.LocalTrack
	var tagFailures int

	err := filepath.WalkDir(s.musicDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".mp3") {
			return nil
		}

		track := match.LocalTrack{ID: trackID(path), Path: path}
		if tag, tagErr := readTags(path); tagErr != nil {
			tagFailures++
			s.logger.Debug("unreadable tags, keeping file with empty fields",
				logging.String("path", path), logging.Error(tagErr))
		} else {
			track.Title = tag.title
			track.Artist = tag.artist
			track.PrimaryArtist = primaryArtist(tag.artist)
			track.Album = tag.album
			track.Genre = tag.genre
		}
		tracks = append(tracks, track)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", s.musicDir, err)
	}

	s.logger.Info("scan complete",
		logging.String("dir", s.musicDir),
		logging.Int("tracks", len(tracks)),
		logging.Int("tag_failures", tagFailures))
	return tracks, nil
}

// Sync scans the collection and writes the result into the store, pruning
// rows for files that no longer exist. Only one sync may run at a time.
func (s *Scanner) Sync(ctx context.Context, st *store.Store) (int, error) {
	lock := flock.New(s.lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return 0, fmt.Errorf("acquire scan lock: %w", err)
	}
	if !locked {
		return 0, ErrScanInProgress
	}
	defer func() { _ = lock.Unlock() }()

	tracks, err := s.Scan(ctx)
	if err != nil {
		return 0, err
	}
	if err := st.UpsertAll(ctx, tracks); err != nil {
		return 0, fmt.Errorf("store tracks: %w", err)
	}

	keep := make(map[string]struct{}, len(tracks))
	for _, track := range tracks {
		keep[track.Path] = struct{}{}
	}
	pruned, err := st.Prune(ctx, keep)
	if err != nil {
		return 0, fmt.Errorf("prune stale tracks: %w", err)
	}
	if pruned > 0 {
		s.logger.Info("pruned stale tracks", logging.Int("removed", pruned))
	}
	return len(tracks), nil
}

type tagFields struct {
	title  string
	artist string
	album  string
	genre  string
}

func readTags(path string) (tagFields, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return tagFields{}, err
	}
	defer func() { _ = tag.Close() }()

	return tagFields{
		title:  strings.TrimSpace(tag.Title()),
		artist: strings.TrimSpace(tag.Artist()),
		album:  strings.TrimSpace(tag.Album()),
		genre:  strings.TrimSpace(tag.Genre()),
	}, nil
}

var featSeparator = regexp.MustCompile(`(?i)\s+(?:feat\.?|ft\.?)\s+`)

// primaryArtist extracts the leading artist from a multi-artist tag value.
// Only the standard ";" separator and feat clauses split the value. Other
// delimiters like "&" and "/" stay intact since they appear in band names.
// Returns empty when the tag names a single artist, so the full value is
// used as-is downstream.
func primaryArtist(artist string) string {
	cut := len(artist)
	if idx := strings.Index(artist, ";"); idx > 0 && idx < cut {
		cut = idx
	}
	if loc := featSeparator.FindStringIndex(artist); loc != nil && loc[0] > 0 && loc[0] < cut {
		cut = loc[0]
	}
	if cut == len(artist) {
		return ""
	}
	return strings.TrimSpace(artist[:cut])
}

func trackID(path string) string {
	sum := sha1.Sum([]byte(path))
	return hex.EncodeToString(sum[:])
}
