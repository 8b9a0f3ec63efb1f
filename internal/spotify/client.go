package spotify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zmb3/spotify/v2"

	"github.com/gwherrett/mako-sync/internal/config"
	"github.com/gwherrett/mako-sync/internal/logging"
	"github.com/gwherrett/mako-sync/internal/match"
)

// CategoryLiked labels tracks fetched from the user's saved library.
const CategoryLiked = "liked"

// Client wraps the Spotify Web API client.
type Client struct {
	api    *spotify.Client
	logger *slog.Logger
}

// NewClient builds an API client from the cached OAuth token. The underlying
// token source refreshes and re-persists the token as needed.
func NewClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Client, error) {
	token, err := loadToken(TokenPath(cfg))
	if err != nil {
		return nil, err
	}
	httpClient := newAuthenticator(cfg).Client(ctx, token)
	return &Client{
		api:    spotify.New(httpClient, spotify.WithRetry(true)),
		logger: logging.WithComponent(logger, "spotify"),
	}, nil
}

// SavedTracks fetches the user's saved tracks, following pagination. Each
// track is categorized by its lead artist's genres; tracks whose artist has
// no usable genre stay in the liked category.
func (c *Client) SavedTracks(ctx context.Context) ([]match.StreamingTrack, error) {
	page, err := c.api.CurrentUsersTracks(ctx, spotify.Limit(50))
	if err != nil {
		return nil, fmt.Errorf("fetch saved tracks: %w", err)
	}

	var tracks []match.StreamingTrack
	var leadIDs []string
	var artistIDs []spotify.ID
	seen := make(map[spotify.ID]bool)
	for {
		for _, saved := range page.Tracks {
			tracks = append(tracks, convertTrack(saved.FullTrack, CategoryLiked))
			var lead spotify.ID
			if len(saved.Artists) > 0 {
				lead = saved.Artists[0].ID
			}
			leadIDs = append(leadIDs, string(lead))
			if lead != "" && !seen[lead] {
				seen[lead] = true
				artistIDs = append(artistIDs, lead)
			}
		}
		err := c.api.NextPage(ctx, page)
		if errors.Is(err, spotify.ErrNoMorePages) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fetch saved tracks page: %w", err)
		}
	}

	genres, err := c.artistGenres(ctx, artistIDs)
	if err != nil {
		return nil, err
	}
	for i := range tracks {
		g, ok := genres[leadIDs[i]]
		if !ok || len(g) == 0 {
			continue
		}
		tracks[i].Genre = g[0]
		if category := CategoryForGenres(g); category != "" {
			tracks[i].Category = category
		}
	}

	c.logger.Info("fetched saved tracks",
		logging.Int("tracks", len(tracks)),
		logging.Int("artists", len(artistIDs)))
	return tracks, nil
}

// artistGenres batch-fetches genres for the given artist IDs, 50 per call.
func (c *Client) artistGenres(ctx context.Context, ids []spotify.ID) (map[string][]string, error) {
	genres := make(map[string][]string, len(ids))
	for start := 0; start < len(ids); start += 50 {
		end := start + 50
		if end > len(ids) {
			end = len(ids)
		}
		artists, err := c.api.GetArtists(ctx, ids[start:end]...)
		if err != nil {
			return nil, fmt.Errorf("fetch artist genres: %w", err)
		}
		for _, artist := range artists {
			if artist != nil {
				genres[string(artist.ID)] = artist.Genres
			}
		}
	}
	return genres, nil
}

// PlaylistTracks fetches all tracks of a playlist. The playlist name becomes
// each track's category.
func (c *Client) PlaylistTracks(ctx context.Context, playlistID string) ([]match.StreamingTrack, error) {
	playlist, err := c.api.GetPlaylist(ctx, spotify.ID(playlistID))
	if err != nil {
		return nil, fmt.Errorf("fetch playlist %s: %w", playlistID, err)
	}

	page, err := c.api.GetPlaylistTracks(ctx, spotify.ID(playlistID), spotify.Limit(100))
	if err != nil {
		return nil, fmt.Errorf("fetch playlist tracks: %w", err)
	}

	var tracks []match.StreamingTrack
	for {
		for _, item := range page.Tracks {
			tracks = append(tracks, convertTrack(item.Track, playlist.Name))
		}
		err := c.api.NextPage(ctx, page)
		if errors.Is(err, spotify.ErrNoMorePages) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fetch playlist tracks page: %w", err)
		}
	}

	c.logger.Info("fetched playlist tracks",
		logging.String("playlist", playlist.Name),
		logging.Int("tracks", len(tracks)))
	return tracks, nil
}

func convertTrack(track spotify.FullTrack, category string) match.StreamingTrack {
	var artist, primary string
	if len(track.Artists) > 0 {
		primary = track.Artists[0].Name
		artist = joinArtists(track.Artists)
	}
	if artist == primary {
		primary = ""
	}
	return match.StreamingTrack{
		ID:            string(track.ID),
		Title:         track.Name,
		Artist:        artist,
		PrimaryArtist: primary,
		Album:         track.Album.Name,
		Category:      category,
	}
}

func joinArtists(artists []spotify.SimpleArtist) string {
	switch len(artists) {
	case 0:
		return ""
	case 1:
		return artists[0].Name
	}
	joined := artists[0].Name
	for _, artist := range artists[1:] {
		joined += "; " + artist.Name
	}
	return joined
}
