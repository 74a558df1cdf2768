package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level financas.yaml configuration.
type Config struct {
	DataDir         string    `yaml:"data_dir"`
	DefaultFeed     string    `yaml:"default_feed"`
	DefaultCategory string    `yaml:"default_category"`
	ExcludeKeywords []string  `yaml:"exclude_keywords"`
	Git             GitConfig `yaml:"git"`
}

// GitConfig controls auto-committing the data directory after store
// mutations.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// DefaultExcludeKeywords are the statement-noise terms the aggregator
// skips: payment receipts and statement fee lines never count as spend.
var DefaultExcludeKeywords = []string{
	"pagamento recebido",
	"pagamento de fatura",
	"saldo em atraso",
	"encargos",
}

// Load reads a financas.yaml file from disk and applies environment
// overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	applyEnv(&cfg)
	return &cfg, nil
}

// LoadOrDefault loads path, falling back to Default when the file does
// not exist. Environment overrides apply either way.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		applyEnv(cfg)
		return cfg, nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		DataDir:         "data",
		DefaultFeed:     "card",
		DefaultCategory: "Outros",
		ExcludeKeywords: DefaultExcludeKeywords,
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Financas",
			AuthorEmail: "financas@localhost",
		},
	}
}

// applyEnv overlays environment variables onto cfg. A .env file loaded
// by main feeds these too.
func applyEnv(cfg *Config) {
	if v := os.Getenv("FINANCAS_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("FINANCAS_DEFAULT_FEED"); v != "" {
		cfg.DefaultFeed = v
	}
	if v := os.Getenv("FINANCAS_DEFAULT_CATEGORY"); v != "" {
		cfg.DefaultCategory = v
	}
}
