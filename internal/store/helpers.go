package store

import (
	"database/sql"

	"github.com/gwherrett/mako-sync/internal/match"
)

func scanTrack(scanner interface{ Scan(dest ...any) error }) (match.LocalTrack, error) {
	var (
		path          string
		id            string
		title         sql.NullString
		artist        sql.NullString
		primaryArtist sql.NullString
		album         sql.NullString
		genre         sql.NullString
	)
	if err := scanner.Scan(&path, &id, &title, &artist, &primaryArtist, &album, &genre); err != nil {
		return match.LocalTrack{}, err
	}
	return match.LocalTrack{
		ID:            id,
		Title:         title.String,
		Artist:        artist.String,
		PrimaryArtist: primaryArtist.String,
		Album:         album.String,
		Genre:         genre.String,
		Path:          path,
	}, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func makePlaceholders(count int) string {
	if count <= 0 {
		return ""
	}
	placeholders := make([]byte, 0, count*2)
	for i := 0; i < count; i++ {
		if i > 0 {
			placeholders = append(placeholders, ',')
		}
		placeholders = append(placeholders, '?')
	}
	return string(placeholders)
}
