// Package config loads and validates the blogbuilder.yaml configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrConfigExists indicates Init refused to overwrite an existing file.
var ErrConfigExists = errors.New("configuration file already exists")

// Config represents the application configuration.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Output  OutputConfig  `yaml:"output"`
	Feed    FeedConfig    `yaml:"feed"`
}

// SiteConfig is build-wide site metadata, supplied once per build and never
// derived from content.
type SiteConfig struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	BaseURL     string `yaml:"base_url" json:"base_url"`
	Language    string `yaml:"language" json:"language"`
}

// ContentConfig locates the content set.
type ContentConfig struct {
	Dir string `yaml:"dir" json:"dir"`
}

// OutputConfig controls artifact placement.
type OutputConfig struct {
	Dir string `yaml:"dir" json:"dir"`
	// Clean removes the output directory before writing. Defaults to true.
	Clean *bool `yaml:"clean" json:"clean"`
}

// FeedConfig controls the syndication feed artifact.
type FeedConfig struct {
	Path       string `yaml:"path" json:"path"`
	Stylesheet string `yaml:"stylesheet" json:"stylesheet"`
}

// CleanEnabled reports whether the output directory should be cleaned first.
func (o OutputConfig) CleanEnabled() bool {
	return o.Clean == nil || *o.Clean
}

// Load loads configuration from the specified file, expanding environment
// variables (a .env file is honored when present) and applying defaults.
func Load(configPath string) (*Config, error) {
	// .env is optional; ignore a missing file.
	_ = godotenv.Load()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Site.Title == "" {
		c.Site.Title = "Blog"
	}
	if c.Site.Language == "" {
		c.Site.Language = "en"
	}
	if c.Content.Dir == "" {
		c.Content.Dir = "./content"
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "./public"
	}
	if c.Feed.Path == "" {
		c.Feed.Path = "rss.xml"
	}
	if c.Feed.Stylesheet == "" {
		c.Feed.Stylesheet = "/rss.xsl"
	}
}

// Validate checks structural validity of the configuration. The base URL is
// only mandatory at feed build time, but when present it must be a URL.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.Site,
		validation.Field(&c.Site.Title, validation.Required),
		validation.Field(&c.Site.BaseURL, is.URL),
	); err != nil {
		return fmt.Errorf("site: %w", err)
	}
	if err := validation.ValidateStruct(&c.Content,
		validation.Field(&c.Content.Dir, validation.Required),
	); err != nil {
		return fmt.Errorf("content: %w", err)
	}
	if err := validation.ValidateStruct(&c.Output,
		validation.Field(&c.Output.Dir, validation.Required),
	); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

const initTemplate = `# blogbuilder configuration
site:
  title: "My Blog"
  description: "Articles and notes"
  base_url: "https://blog.example.com"
  language: "en"

content:
  dir: "./content"

output:
  dir: "./public"
  clean: true

feed:
  path: "rss.xml"
  stylesheet: "/rss.xsl"
`

// Init writes a starter configuration file. It refuses to overwrite an
// existing file unless force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, configPath)
	}
	if err := os.WriteFile(configPath, []byte(initTemplate), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
