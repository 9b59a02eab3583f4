/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/pmdmessage/pkg/keyword"
)

var (
	ErrInvalidKeywordCode = errors.New("invalid keyword code")
	ErrInvalidKeywordName = errors.New("invalid keyword name")
)

// Config represents the messagetool configuration
type Config struct {
	CodeTable       string          `yaml:"code_table"`
	DefaultKeywords bool            `yaml:"default_keywords"`
	Keywords        []KeywordConfig `yaml:"keywords,omitempty"`
	Logging         Logging         `yaml:"logging"`
}

// KeywordConfig registers an extra [NAME] keyword for a control character
type KeywordConfig struct {
	Code uint32 `yaml:"code"`
	Name string `yaml:"name"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultKeywords: true,
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the specified path. Fields missing
// from the file keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// KeywordTable builds the keyword table: the built-in set when DefaultKeywords
// is on, then every configured keyword in order.
func (c *Config) KeywordTable() (*keyword.Keywords, error) {
	kw := keyword.New()
	if c.DefaultKeywords {
		kw = keyword.NewDefault()
	}

	for i, k := range c.Keywords {
		if err := k.validate(); err != nil {
			return nil, fmt.Errorf("keyword %d: %w", i, err)
		}
		kw.Add(rune(k.Code), k.Name)
	}
	return kw, nil
}

func (k KeywordConfig) validate() error {
	if k.Code == 0 || k.Code > 0xFFFF || (k.Code >= 0xD800 && k.Code <= 0xDFFF) {
		return fmt.Errorf("%w: 0x%X", ErrInvalidKeywordCode, k.Code)
	}
	if k.Name == "" || strings.ContainsAny(k.Name, `[]\`) {
		return fmt.Errorf("%w: %q", ErrInvalidKeywordName, k.Name)
	}
	return nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./messagetool.yaml"
	}

	// For Linux/macOS, use ~/.config/messagetool/config.yaml
	configDir := filepath.Join(homeDir, ".config", "messagetool")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
