package realiser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultLanguage = "en"

// Config selects the realiser language and lexicon.
type Config struct {
	// Language is a BCP-47 tag ("en", "fr-CA").
	Language string `yaml:"language"`
	// LexiconPath names a lexicon file loaded on top of the built-in
	// lexicon of the language.
	LexiconPath string `yaml:"lexicon,omitempty"`
	// AggregateAuxiliary realises only the first auxiliary of
	// coordinated verb phrases.
	AggregateAuxiliary bool `yaml:"aggregate_auxiliary,omitempty"`

	// Lexicon replaces the built-in and file lexicons when set.
	Lexicon Lexicon `yaml:"-"`
}

// DefaultConfig is English with the built-in lexicon.
func DefaultConfig() Config {
	return Config{Language: defaultLanguage}
}

// LoadConfig reads a YAML configuration file. A missing file yields the
// defaults; a relative lexicon path is taken from the file's directory.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	parsed.applyDefaults()
	parsed.normalize(filepath.Dir(path))
	if err := parsed.validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return parsed, nil
}

func (c *Config) applyDefaults() {
	c.Language = strings.TrimSpace(c.Language)
	if c.Language == "" {
		c.Language = defaultLanguage
	}
}

func (c *Config) normalize(base string) {
	c.LexiconPath = strings.TrimSpace(c.LexiconPath)
	if c.LexiconPath != "" && !filepath.IsAbs(c.LexiconPath) {
		c.LexiconPath = filepath.Join(base, c.LexiconPath)
	}
}

func (c *Config) validate() error {
	if _, err := LanguageFor(c.Language); err != nil {
		return err
	}
	return nil
}
