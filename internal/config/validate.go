package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for values the program cannot run with.
func (c *Config) Validate() error {
	if c.Paths.MusicDir == "" {
		return errors.New("paths.music_dir must be set")
	}
	if c.Paths.DBPath == "" {
		return errors.New("paths.db_path must be set")
	}
	if c.Matching.FuzzyThreshold < 1 || c.Matching.FuzzyThreshold > 100 {
		return fmt.Errorf("matching.fuzzy_threshold %d out of range [1, 100]", c.Matching.FuzzyThreshold)
	}
	if c.Eval.MaxFalseNegativeRate < 0 || c.Eval.MaxFalseNegativeRate > 1 {
		return fmt.Errorf("eval.max_false_negative_rate %v out of range [0, 1]", c.Eval.MaxFalseNegativeRate)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
