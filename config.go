package carscrape

import "strings"

// Default bounds for the listing-URL acceptance heuristic.
const (
	DefaultMaxCheckSegments = 3
	DefaultMinSlugLength    = 5
)

// Config carries the options the engine consumes but does not own.
type Config struct {
	// AllowedDomains lists additional hosts listing links may point at.
	// Links to the page's own host are always considered.
	AllowedDomains []string `yaml:"allowed_domains"`

	// MaxCheckSegments bounds how many leading path segments are
	// inspected for a stock keyword during listing-URL acceptance.
	MaxCheckSegments int `yaml:"max_check_segments"`

	// MinSlugLength is the minimum length of a trailing slug segment.
	MinSlugLength int `yaml:"min_slug_length"`

	// TieBreak selects the detail-template tie-break policy.
	TieBreak TieBreak `yaml:"tie_break"`

	// Concurrency caps parallel page processing; values <= 1 run
	// sequentially.
	Concurrency int `yaml:"concurrency"`

	DBPath   string `yaml:"db_path"`
	OutDir   string `yaml:"out_dir"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() Config {
	return Config{
		MaxCheckSegments: DefaultMaxCheckSegments,
		MinSlugLength:    DefaultMinSlugLength,
		TieBreak:         TieBreakFields,
		Concurrency:      1,
		DBPath:           "carscrape.db",
		OutDir:           ".",
		LogLevel:         "info",
	}
}

// AllowsDomain reports whether host is in the allow-list.
func (c *Config) AllowsDomain(host string) bool {
	if c == nil {
		return false
	}
	for _, d := range c.AllowedDomains {
		if strings.EqualFold(d, host) {
			return true
		}
	}
	return false
}

func (c *Config) maxCheckSegments() int {
	if c == nil || c.MaxCheckSegments <= 0 {
		return DefaultMaxCheckSegments
	}
	return c.MaxCheckSegments
}

func (c *Config) minSlugLength() int {
	if c == nil || c.MinSlugLength <= 0 {
		return DefaultMinSlugLength
	}
	return c.MinSlugLength
}
