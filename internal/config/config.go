package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Auth struct {
		JWTSecret     string `yaml:"jwt_secret"`
		TokenTTLHours int64  `yaml:"token_ttl_hours"`
	} `yaml:"auth"`
	Assistant struct {
		// LLM enrichment is optional; with no providers the assistant
		// answers purely from the role database.
		Providers   []ProviderConfig `yaml:"providers"`
		MaxFailures int              `yaml:"max_failures"`
	} `yaml:"assistant"`
	Seed struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"seed"`
}

// Duration decodes YAML scalars like "2s" or "500ms" through
// time.ParseDuration, which yaml.v3 does not do for time.Duration fields.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// ProviderConfig holds configuration for a single LLM provider instance.
type ProviderConfig struct {
	Type              string   `yaml:"type"`
	APIKey            string   `yaml:"api_key"`
	ModelName         string   `yaml:"model_name"`
	MaxRetries        int      `yaml:"max_retries"`
	RetryDelay        Duration `yaml:"retry_delay"`
	RequestsPerMinute int      `yaml:"requests_per_minute"`
}

// LoadConfig reads configuration from the specified YAML file.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if config.Auth.TokenTTLHours == 0 {
		config.Auth.TokenTTLHours = 24
	}

	return config, nil
}

// TokenTTL returns the configured JWT lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenTTLHours) * time.Hour
}
