package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration and applies SEABATTLE_* environment overrides.
// Search order: customPath -> ~/.seabattle/config.yaml -> ./configs/seabattle.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		if err := cleanenv.ReadConfig(customPath, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if err := readFirst(&cfg); err != nil {
		return cfg, err
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// readFirst fills cfg from the first readable file in the search path,
// then the embedded default.
func readFirst(cfg *Config) error {
	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, cfg); err == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/seabattle.yaml"); err == nil {
		if err := yaml.Unmarshal(data, cfg); err == nil {
			return nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		*cfg = Default() // Fallback to hardcoded if embed fails
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".seabattle", filename)
}
