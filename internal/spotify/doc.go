// Package spotify fetches the user's streaming library from the Spotify Web
// API. First use runs an authorization-code flow through a short-lived local
// callback server; the resulting token is cached on disk and refreshed
// automatically on later runs.
package spotify
