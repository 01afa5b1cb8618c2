package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/valpere/youdict/internal/translator"
)

const (
	EnvPrefix = "YOUDICT"

	DefaultProfile = "openapi"
	DefaultKey     = "082d2d8ef2343b9e"
	DefaultKeyFrom = "mcv5q7AflHFZQAaN6VF43lf55aISJoq5"
)

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config is built once at startup and never mutated afterwards.
type Config struct {
	Profile   string        `mapstructure:"profile"`
	Key       string        `mapstructure:"key"`
	KeyFrom   string        `mapstructure:"keyfrom"`
	Endpoint  string        `mapstructure:"endpoint"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Delay     time.Duration `mapstructure:"delay"`
	Locale    string        `mapstructure:"locale"`
	Log       LogConfig     `mapstructure:"log"`
}

// SetDefaults registers every key so that environment variables are picked
// up by Unmarshal even when no config file sets them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("profile", DefaultProfile)
	v.SetDefault("key", DefaultKey)
	v.SetDefault("keyfrom", DefaultKeyFrom)
	v.SetDefault("endpoint", "")
	v.SetDefault("user_agent", translator.DefaultUserAgent)
	v.SetDefault("timeout", translator.DefaultTimeout)
	v.SetDefault("delay", 250*time.Millisecond)
	v.SetDefault("locale", "zh")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads configuration with priority flags > env > config file > defaults.
// A .env file in the working directory is loaded into the environment first
// when present. cfgFile may be empty, in which case the default location is
// tried and its absence is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", cfgFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "youdict"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, ok := translator.LookupProfile(c.Profile); !ok {
		return fmt.Errorf("unknown profile %q (want openapi or legacy)", c.Profile)
	}
	if strings.TrimSpace(c.Key) == "" {
		return fmt.Errorf("key is required")
	}
	if strings.TrimSpace(c.KeyFrom) == "" {
		return fmt.Errorf("keyfrom is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", c.Delay)
	}
	return nil
}

// ProviderProfile returns the selected profile with the endpoint override
// applied.
func (c *Config) ProviderProfile() translator.Profile {
	profile, _ := translator.LookupProfile(c.Profile)
	if c.Endpoint != "" {
		profile.Endpoint = c.Endpoint
	}
	return profile
}

func (c *Config) Credentials() translator.Credentials {
	return translator.Credentials{Key: c.Key, KeyFrom: c.KeyFrom}
}

func (c *Config) ServiceConfig() translator.ServiceConfig {
	return translator.ServiceConfig{UserAgent: c.UserAgent, Timeout: c.Timeout}
}

// Masked hides all but the last four characters of a credential.
func Masked(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
