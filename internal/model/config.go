package model

import "time"

// Config holds all runtime configuration. Built once at startup from
// defaults, config file, env vars, and flags; passed explicitly into the
// pipeline and never mutated afterwards.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" json:"http"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Archive     ArchiveConfig     `yaml:"archive" json:"archive"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// HTTPConfig controls the page fetcher
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots" json:"respect_robots"`
}

// CacheConfig controls the fetched-page cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	Dir     string        `yaml:"dir" json:"dir"`
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
}

// ArchiveConfig controls reading pages from a local website mirror
// instead of the network.
type ArchiveConfig struct {
	Local bool   `yaml:"local" json:"local"`
	Dir   string `yaml:"dir" json:"dir"` // defaults to $HOME/Web
}

// ConcurrencyConfig controls batch scraping
type ConcurrencyConfig struct {
	Workers           int     `yaml:"workers" json:"workers"`
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
}

// LLMConfig controls the optional review-note generator. Notes never
// alter extracted records or match results.
type LLMConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Model   string `yaml:"model" json:"model"`
	APIKey  string `yaml:"-" json:"-"`
	BaseURL string `yaml:"base_url,omitempty" json:"base_url,omitempty"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Dir     string `yaml:"dir" json:"dir"`
	Verbose bool   `yaml:"verbose" json:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "confminer/0.2 (+https://github.com/mlazarov/confminer)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     24 * time.Hour,
		},
		Archive: ArchiveConfig{},
		Concurrency: ConcurrencyConfig{
			Workers:           4,
			RequestsPerSecond: 2,
		},
		LLM: LLMConfig{
			Model: "gpt-4o-mini",
		},
		Output: OutputConfig{
			Dir: ".",
		},
	}
}
