package truncate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// DefaultLength is the visible length used when a config does not set one.
const DefaultLength = 100

// Config pairs a visible length with truncation options.
// Options fields are flattened into the config document:
//
//	length: 120
//	break_words: false
//	suffix: "…"
//	enclose_suffix_in_tags: true
type Config struct {
	// Length is the maximum number of visible characters.
	Length int `json:"length" yaml:"length" toml:"length" jsonschema:"minimum=0"`

	Options `yaml:",inline"`
}

// DefaultConfig returns a Config with DefaultLength and DefaultOptions.
func DefaultConfig() Config {
	return Config{
		Length:  DefaultLength,
		Options: DefaultOptions(),
	}
}

// LoadFromEnv populates config fields from environment variables.
// Environment variables use the HTMLKIT_ prefix and take precedence over
// existing values. Unparseable values are ignored.
//
// Supported variables:
//   - HTMLKIT_LENGTH: Visible length
//   - HTMLKIT_BREAK_WORDS: Allow cutting words (true/false)
//   - HTMLKIT_SUFFIX: Suffix text
//   - HTMLKIT_ENCLOSE_SUFFIX: Write the suffix inside the closing tags (true/false)
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("HTMLKIT_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Length = n
		}
	}
	if v := os.Getenv("HTMLKIT_BREAK_WORDS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.BreakWords = b
		}
	}
	if v := os.Getenv("HTMLKIT_SUFFIX"); v != "" {
		c.Suffix = v
	}
	if v := os.Getenv("HTMLKIT_ENCLOSE_SUFFIX"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.EncloseSuffixInTags = b
		}
	}
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.LoadFromEnv()
	return cfg
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Length < 0 {
		return fmt.Errorf("length must be >= 0, got %d", c.Length)
	}
	return nil
}

// WithLength returns a copy of the config with the specified length.
func (c Config) WithLength(length int) Config {
	c.Length = length
	return c
}

// Truncator builds a truncator from the config's options.
func (c Config) Truncator() *Truncator {
	return New(c.Options)
}

// Apply truncates source to the configured length.
func (c Config) Apply(source string) (string, error) {
	return c.Truncator().Truncate(source, c.Length)
}

// LoadConfig reads a config file. The format is taken from the extension:
// .yaml, .yml, .toml or .json.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data, filepath.Ext(path))
}

// ParseConfig decodes a config document over DefaultConfig, so fields the
// document leaves out keep their defaults. format is "yaml", "yml", "toml"
// or "json", with or without a leading dot.
func ParseConfig(data []byte, format string) (Config, error) {
	cfg := DefaultConfig()

	var err error
	switch f := strings.ToLower(strings.TrimPrefix(format, ".")); f {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &cfg)
	case "toml":
		_, err = toml.Decode(string(data), &cfg)
	case "json":
		err = json.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse %s config: %w", format, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigSchema returns the JSON schema of a Config document.
func ConfigSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	return r.Reflect(&Config{})
}
