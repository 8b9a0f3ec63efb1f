package config

const (
	defaultMusicDir             = "~/Music"
	defaultDBPath               = "~/.local/share/mako-sync/library.db"
	defaultLogDir               = "~/.local/share/mako-sync/logs"
	defaultRedirectURL          = "http://localhost:8888/callback"
	defaultFuzzyThreshold       = 85
	defaultMaxFalseNegativeRate = 0.25
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			MusicDir: defaultMusicDir,
			DBPath:   defaultDBPath,
			LogDir:   defaultLogDir,
		},
		Spotify: Spotify{
			RedirectURL: defaultRedirectURL,
		},
		Matching: Matching{
			FuzzyThreshold: defaultFuzzyThreshold,
		},
		Eval: Eval{
			MaxFalseNegativeRate: defaultMaxFalseNegativeRate,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
