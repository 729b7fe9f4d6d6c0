package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"wordlens/internal/domain"
)

// Config holds all configuration for wordlens.
type Config struct {
	Analysis    AnalysisConfig    `yaml:"analysis" toml:"analysis"`
	Readability ReadabilityConfig `yaml:"readability" toml:"readability"`
	Highlight   HighlightConfig   `yaml:"highlight" toml:"highlight"`
	Files       FilesConfig       `yaml:"files" toml:"files"`
	Cache       CacheConfig       `yaml:"cache" toml:"cache"`
	Store       StoreConfig       `yaml:"store" toml:"store"`
	Logging     LoggingConfig     `yaml:"logging" toml:"logging"`
}

// AnalysisConfig holds engine configuration.
type AnalysisConfig struct {
	Language          string `yaml:"language" toml:"language"`
	StopwordsFile     string `yaml:"stopwords_file" toml:"stopwords_file"`         // YAML "terms:" list; empty = built-in
	SentinelIntensity string `yaml:"sentinel_intensity" toml:"sentinel_intensity"` // "zero" or "max"
	SpamSource        string `yaml:"spam_source" toml:"spam_source"`               // "all" or "retained"
}

// ReadabilityConfig overrides the ease formula coefficients. Zero values
// keep the language defaults.
type ReadabilityConfig struct {
	EaseBase      float64 `yaml:"ease_base" toml:"ease_base"`
	EaseASLWeight float64 `yaml:"ease_asl_weight" toml:"ease_asl_weight"`
	EaseASWWeight float64 `yaml:"ease_asw_weight" toml:"ease_asw_weight"`
}

// HighlightConfig holds the default highlight modes.
type HighlightConfig struct {
	StopWords bool `yaml:"stopwords" toml:"stopwords"`
	Repeats   bool `yaml:"repeats" toml:"repeats"`
}

// FilesConfig selects files for batch analysis.
type FilesConfig struct {
	Includes []string `yaml:"includes" toml:"includes"`
	Excludes []string `yaml:"excludes" toml:"excludes"`
}

// CacheConfig holds in-memory report cache configuration.
type CacheConfig struct {
	MaxSize int           `yaml:"max_size" toml:"max_size"`
	TTL     time.Duration `yaml:"ttl" toml:"ttl"`
}

// StoreConfig holds report store configuration.
type StoreConfig struct {
	Compress bool `yaml:"compress" toml:"compress"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Language:          "russian",
			SentinelIntensity: string(domain.SentinelZero),
			SpamSource:        string(domain.SpamAllStems),
		},
		Highlight: HighlightConfig{
			StopWords: false,
			Repeats:   true,
		},
		Files: FilesConfig{
			Includes: []string{"**/*.txt", "**/*.md", "**/*.html", "**/*.htm", "**/*.pdf", "**/*.docx"},
			Excludes: []string{"**/.git/**", "**/node_modules/**", "**/vendor/**", "**/.wordlens/**"},
		},
		Cache: CacheConfig{
			MaxSize: 64,
			TTL:     10 * time.Minute,
		},
		Store: StoreConfig{
			Compress: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML or TOML file, chosen by extension.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromDir loads configuration from a directory, looking for
// wordlens.yaml, .wordlens/config.yaml and wordlens.toml in that order.
func LoadFromDir(dir string) (*Config, error) {
	candidates := []string{
		filepath.Join(dir, "wordlens.yaml"),
		filepath.Join(dir, ".wordlens", "config.yaml"),
		filepath.Join(dir, "wordlens.toml"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	// Return defaults
	return DefaultConfig(), nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := domain.LookupLanguage(c.Analysis.Language); err != nil {
		return fmt.Errorf("invalid analysis.language: %w", err)
	}
	switch domain.SentinelPolicy(c.Analysis.SentinelIntensity) {
	case domain.SentinelZero, domain.SentinelMax:
	default:
		return fmt.Errorf("invalid analysis.sentinel_intensity %q: want %q or %q",
			c.Analysis.SentinelIntensity, domain.SentinelZero, domain.SentinelMax)
	}
	switch domain.SpamSource(c.Analysis.SpamSource) {
	case domain.SpamAllStems, domain.SpamRetainedStems:
	default:
		return fmt.Errorf("invalid analysis.spam_source %q: want %q or %q",
			c.Analysis.SpamSource, domain.SpamAllStems, domain.SpamRetainedStems)
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EaseCoefficients returns the configured ease coefficients layered over
// the language defaults.
func (c *Config) EaseCoefficients(lang domain.Language) domain.EaseCoefficients {
	ease := lang.Ease
	if c.Readability.EaseBase != 0 {
		ease.Base = c.Readability.EaseBase
	}
	if c.Readability.EaseASLWeight != 0 {
		ease.ASL = c.Readability.EaseASLWeight
	}
	if c.Readability.EaseASWWeight != 0 {
		ease.ASW = c.Readability.EaseASWWeight
	}
	return ease
}

// ModeFlags returns the configured default highlight modes.
func (c *Config) ModeFlags() domain.ModeFlags {
	return domain.ModeFlags{StopWords: c.Highlight.StopWords, Repeats: c.Highlight.Repeats}
}

// ReportDBPath returns the path to the report database.
func ReportDBPath(dir string) string {
	return filepath.Join(dir, ".wordlens", "reports.db")
}

// EnsureDir ensures the .wordlens directory exists.
func EnsureDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".wordlens"), 0755)
}
