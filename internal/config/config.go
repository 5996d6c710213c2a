// Package config provides configuration loading and structs for the manabi pipeline.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/brightpath/manabi/internal/vocab"
)

// Config holds all configuration for the application.
type Config struct {
	Debug      bool             `yaml:"debug"`
	Generation GenerationConfig `yaml:"generation"`
	Summary    SummaryConfig    `yaml:"summary"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
}

// GenerationConfig holds MCQ and flashcard generation settings.
type GenerationConfig struct {
	DefaultMCQCount       int     `yaml:"default_mcq_count"`
	DefaultFlashcardCount int     `yaml:"default_flashcard_count"`
	MaxCount              int     `yaml:"max_count"`
	MinConfidence         float64 `yaml:"min_confidence"`
}

// SummaryConfig holds summary length settings, in words.
type SummaryConfig struct {
	MaxLength         int `yaml:"max_length"`
	DetailedMaxLength int `yaml:"detailed_max_length"`
}

// VocabularyConfig extends the compiled-in wordlists.
type VocabularyConfig struct {
	ExtraStopWords          []string `yaml:"extra_stop_words"`
	ExtraImportantTerms     []string `yaml:"extra_important_terms"`
	ExtraImportanceKeywords []string `yaml:"extra_importance_keywords"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Generation: GenerationConfig{
			DefaultMCQCount:       5,
			DefaultFlashcardCount: 10,
			MaxCount:              50,
		},
		Summary: SummaryConfig{
			MaxLength:         150,
			DetailedMaxLength: 300,
		},
	}
}

// ApplyDefaults fills zero-valued fields with defaults.
func ApplyDefaults(cfg *Config) {
	d := DefaultConfig()
	if cfg.Generation.DefaultMCQCount <= 0 {
		cfg.Generation.DefaultMCQCount = d.Generation.DefaultMCQCount
	}
	if cfg.Generation.DefaultFlashcardCount <= 0 {
		cfg.Generation.DefaultFlashcardCount = d.Generation.DefaultFlashcardCount
	}
	if cfg.Generation.MaxCount <= 0 {
		cfg.Generation.MaxCount = d.Generation.MaxCount
	}
	if cfg.Summary.MaxLength <= 0 {
		cfg.Summary.MaxLength = d.Summary.MaxLength
	}
	if cfg.Summary.DetailedMaxLength <= 0 {
		cfg.Summary.DetailedMaxLength = d.Summary.DetailedMaxLength
	}
}

// Load reads and parses the config file at path and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// BuildVocabulary returns the default vocabulary extended with the configured
// extra wordlists.
func (c *Config) BuildVocabulary() *vocab.Vocabulary {
	v := vocab.Default()
	v.AddStopWords(c.Vocabulary.ExtraStopWords)
	v.AddImportantTerms(c.Vocabulary.ExtraImportantTerms)
	v.AddImportanceKeywords(c.Vocabulary.ExtraImportanceKeywords)
	return v
}
