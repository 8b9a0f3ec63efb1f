package store

import (
	"context"
	"fmt"
	"time"

	"github.com/gwherrett/mako-sync/internal/match"
)

const trackColumns = "path, id, title, artist, primary_artist, album, genre"

// Upsert inserts or replaces a single track keyed by its path.
func (s *Store) Upsert(ctx context.Context, track match.LocalTrack) error {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	return s.execWithRetry(
		ctx,
		`INSERT INTO local_tracks (path, id, title, artist, primary_artist, album, genre, scanned_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(path) DO UPDATE SET
             id = excluded.id,
             title = excluded.title,
             artist = excluded.artist,
             primary_artist = excluded.primary_artist,
             album = excluded.album,
             genre = excluded.genre,
             scanned_at = excluded.scanned_at`,
		track.Path,
		track.ID,
		nullableString(track.Title),
		nullableString(track.Artist),
		nullableString(track.PrimaryArtist),
		nullableString(track.Album),
		nullableString(track.Genre),
		timestamp,
	)
}

// UpsertAll writes a batch of tracks in one transaction.
func (s *Store) UpsertAll(ctx context.Context, tracks []match.LocalTrack) error {
	if len(tracks) == 0 {
		return nil
	}
	ctx = ensureContext(ctx)
	return retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		timestamp := time.Now().UTC().Format(time.RFC3339Nano)
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO local_tracks (path, id, title, artist, primary_artist, album, genre, scanned_at)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?)
             ON CONFLICT(path) DO UPDATE SET
                 id = excluded.id,
                 title = excluded.title,
                 artist = excluded.artist,
                 primary_artist = excluded.primary_artist,
                 album = excluded.album,
                 genre = excluded.genre,
                 scanned_at = excluded.scanned_at`)
		if err != nil {
			return fmt.Errorf("prepare upsert: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for _, track := range tracks {
			if _, err := stmt.ExecContext(ctx,
				track.Path,
				track.ID,
				nullableString(track.Title),
				nullableString(track.Artist),
				nullableString(track.PrimaryArtist),
				nullableString(track.Album),
				nullableString(track.Genre),
				timestamp,
			); err != nil {
				return fmt.Errorf("upsert %s: %w", track.Path, err)
			}
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit upsert: %w", err)
		}
		return nil
	})
}

// All returns every stored track ordered by path.
func (s *Store) All(ctx context.Context) ([]match.LocalTrack, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+trackColumns+" FROM local_tracks ORDER BY path")
	if err != nil {
		return nil, fmt.Errorf("query tracks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tracks []match.LocalTrack
	for rows.Next() {
		track, err := scanTrack(rows)
		if err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		tracks = append(tracks, track)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracks: %w", err)
	}
	return tracks, nil
}

// Count reports the number of stored tracks.
func (s *Store) Count(ctx context.Context) (int, error) {
	ctx = ensureContext(ctx)
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM local_tracks").Scan(&count); err != nil {
		return 0, fmt.Errorf("count tracks: %w", err)
	}
	return count, nil
}

// Prune deletes rows whose paths no longer appear in the keep set and
// reports how many were removed.
func (s *Store) Prune(ctx context.Context, keep map[string]struct{}) (int, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, "SELECT path FROM local_tracks")
	if err != nil {
		return 0, fmt.Errorf("query paths: %w", err)
	}
	var stale []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			_ = rows.Close()
			return 0, fmt.Errorf("scan path: %w", err)
		}
		if _, ok := keep[path]; !ok {
			stale = append(stale, path)
		}
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return 0, fmt.Errorf("iterate paths: %w", err)
	}
	_ = rows.Close()

	if len(stale) == 0 {
		return 0, nil
	}
	args := make([]any, len(stale))
	for i, path := range stale {
		args[i] = path
	}
	if err := s.execWithRetry(ctx,
		"DELETE FROM local_tracks WHERE path IN ("+makePlaceholders(len(stale))+")",
		args...); err != nil {
		return 0, fmt.Errorf("delete stale tracks: %w", err)
	}
	return len(stale), nil
}
