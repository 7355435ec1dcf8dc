package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvLogLevel  = "TEXTANALYZER_LOG_LEVEL"
	EnvParallel  = "TEXTANALYZER_PARALLEL"
	EnvLexicon   = "TEXTANALYZER_LEXICON"
	EnvStopWords = "TEXTANALYZER_STOPWORDS"
)

// ResourcesConfig points at the lexical resource files. Empty paths use the
// embedded defaults.
type ResourcesConfig struct {
	LexiconPath   string `yaml:"lexicon_path"`
	StopWordsPath string `yaml:"stopwords_path"`
}

// KeywordsConfig configures keyword extraction.
type KeywordsConfig struct {
	TopK int `yaml:"top_k"`
}

// SummarizerConfig selects and configures the summarizer.
type SummarizerConfig struct {
	Type         string `yaml:"type"`
	MaxSentences int    `yaml:"max_sentences"`
	// Dimensions limits the LSA singular dimensions; 0 keeps all.
	Dimensions int `yaml:"dimensions"`
	// FilterStopWords drops stop words from the LSA term matrix.
	FilterStopWords bool `yaml:"filter_stopwords"`
}

// PipelineConfig configures feature execution.
type PipelineConfig struct {
	Parallel bool     `yaml:"parallel"`
	Features []string `yaml:"features"`
}

// CloudConfig configures the terminal word cloud.
type CloudConfig struct {
	MaxWords int `yaml:"max_words"`
	Width    int `yaml:"width"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Resources  ResourcesConfig  `yaml:"resources"`
	Keywords   KeywordsConfig   `yaml:"keywords"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Cloud      CloudConfig      `yaml:"cloud"`
	Log        LogConfig        `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			if err := applyEnv(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyConfigDefaults(&cfg)
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadDefault tries ./textanalyzer.yaml first, then ~/.config/textanalyzer/config.yaml.
// If neither exists, it writes defaults to ~/.config/textanalyzer/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "textanalyzer.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := Default()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	if err := applyEnv(cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects settings no component can honour.
func (c *AppConfig) Validate() error {
	switch c.Summarizer.Type {
	case "lsa", "frequency":
	default:
		return fmt.Errorf("unknown summarizer type %q", c.Summarizer.Type)
	}
	if c.Keywords.TopK < 0 {
		return fmt.Errorf("keywords.top_k must not be negative")
	}
	if c.Summarizer.MaxSentences < 0 {
		return fmt.Errorf("summarizer.max_sentences must not be negative")
	}
	if c.Summarizer.Dimensions < 0 {
		return fmt.Errorf("summarizer.dimensions must not be negative")
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textanalyzer", "config.yaml"), nil
}

// Default returns the built-in configuration.
func Default() *AppConfig {
	return &AppConfig{
		Keywords:   KeywordsConfig{TopK: 10},
		Summarizer: SummarizerConfig{Type: "lsa", MaxSentences: 3},
		Pipeline: PipelineConfig{
			Features: []string{"WordFrequency", "Sentiment", "Keywords", "Summary", "Readability"},
		},
		Cloud: CloudConfig{MaxWords: 40, Width: 72},
		Log:   LogConfig{Level: "info"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	def := Default()
	if cfg.Summarizer.Type == "" {
		cfg.Summarizer.Type = def.Summarizer.Type
	}
	if cfg.Summarizer.MaxSentences == 0 {
		cfg.Summarizer.MaxSentences = def.Summarizer.MaxSentences
	}
	if cfg.Keywords.TopK == 0 {
		cfg.Keywords.TopK = def.Keywords.TopK
	}
	if len(cfg.Pipeline.Features) == 0 {
		cfg.Pipeline.Features = def.Pipeline.Features
	}
	if cfg.Cloud.MaxWords == 0 {
		cfg.Cloud.MaxWords = def.Cloud.MaxWords
	}
	if cfg.Cloud.Width == 0 {
		cfg.Cloud.Width = def.Cloud.Width
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
}

// applyEnv overlays TEXTANALYZER_* environment variables. Callers load any
// .env file beforehand.
func applyEnv(cfg *AppConfig) error {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvParallel)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvParallel, err)
		}
		cfg.Pipeline.Parallel = b
	}
	if v := strings.TrimSpace(os.Getenv(EnvLexicon)); v != "" {
		cfg.Resources.LexiconPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvStopWords)); v != "" {
		cfg.Resources.StopWordsPath = v
	}
	return nil
}
