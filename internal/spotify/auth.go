package spotify

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"

	"github.com/gwherrett/mako-sync/internal/config"
)

const tokenFileName = "spotify_token.json"

// ErrNotAuthenticated indicates no cached token exists yet.
var ErrNotAuthenticated = errors.New("not authenticated with Spotify, run 'mako-sync auth' first")

func newAuthenticator(cfg *config.Config) *spotifyauth.Authenticator {
	return spotifyauth.New(
		spotifyauth.WithRedirectURL(cfg.Spotify.RedirectURL),
		spotifyauth.WithClientID(cfg.Spotify.ClientID),
		spotifyauth.WithClientSecret(cfg.Spotify.ClientSecret),
		spotifyauth.WithScopes(
			spotifyauth.ScopeUserLibraryRead,
			spotifyauth.ScopePlaylistReadPrivate,
		),
	)
}

// TokenPath reports where the OAuth token is cached for this config.
func TokenPath(cfg *config.Config) string {
	return filepath.Join(filepath.Dir(cfg.Paths.DBPath), tokenFileName)
}

func loadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("read token cache: %w", err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("parse token cache: %w", err)
	}
	return &token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure token directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write token cache: %w", err)
	}
	return nil
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// Authenticate runs the authorization-code flow. It serves the configured
// redirect URL locally, prints the authorization URL for the user to open,
// and caches the exchanged token. Blocks until the callback arrives, ctx is
// cancelled, or the timeout elapses.
func Authenticate(ctx context.Context, cfg *config.Config) error {
	if cfg.Spotify.ClientID == "" || cfg.Spotify.ClientSecret == "" {
		return errors.New("spotify client_id and client_secret must be configured")
	}

	redirect, err := url.Parse(cfg.Spotify.RedirectURL)
	if err != nil {
		return fmt.Errorf("parse redirect_url: %w", err)
	}

	auth := newAuthenticator(cfg)
	state, err := randomState()
	if err != nil {
		return fmt.Errorf("generate state: %w", err)
	}
	verifier := oauth2.GenerateVerifier()

	tokenCh := make(chan *oauth2.Token, 1)
	errCh := make(chan error, 1)
	mux := http.NewServeMux()
	mux.HandleFunc(redirect.Path, func(w http.ResponseWriter, r *http.Request) {
		token, tokenErr := auth.Token(r.Context(), state, r, oauth2.VerifierOption(verifier))
		if tokenErr != nil {
			http.Error(w, "authorization failed", http.StatusForbidden)
			errCh <- fmt.Errorf("exchange code: %w", tokenErr)
			return
		}
		fmt.Fprintln(w, "Authorized. You can close this window.")
		tokenCh <- token
	})

	listener, err := net.Listen("tcp", redirect.Host)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", redirect.Host, err)
	}
	server := &http.Server{Handler: mux}
	go func() { _ = server.Serve(listener) }()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	fmt.Printf("Open this URL in your browser to authorize:\n\n  %s\n\n",
		auth.AuthURL(state, oauth2.S256ChallengeOption(verifier)))

	select {
	case token := <-tokenCh:
		return saveToken(TokenPath(cfg), token)
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return errors.New("timed out waiting for authorization callback")
	}
}
