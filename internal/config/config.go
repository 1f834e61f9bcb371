package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Provider struct {
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"provider"`
	Chart struct {
		Renderer  string `yaml:"renderer"`
		OutputDir string `yaml:"output_dir"`
	} `yaml:"chart"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" {
		cfg.Provider.APIKey = v
	}
	if v := os.Getenv("ALPHAVANTAGE_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("CHART_RENDERER"); v != "" {
		cfg.Chart.Renderer = v
	}
	if v := os.Getenv("CHART_OUTPUT_DIR"); v != "" {
		cfg.Chart.OutputDir = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = "https://www.alphavantage.co/query"
	}
	if cfg.Chart.Renderer == "" {
		cfg.Chart.Renderer = "terminal"
	}
	if cfg.Chart.OutputDir == "" {
		cfg.Chart.OutputDir = "charts"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Provider.APIKey == "" {
		return fmt.Errorf("provider.api_key is required: set it in the config file or ALPHAVANTAGE_API_KEY (see configs/config.example.yaml for setup)")
	}
	if c.Chart.Renderer != "terminal" && c.Chart.Renderer != "html" {
		return fmt.Errorf("chart.renderer must be \"terminal\" or \"html\", got %q", c.Chart.Renderer)
	}
	return nil
}
