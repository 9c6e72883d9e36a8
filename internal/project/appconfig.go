package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/SketchBoard/internal/model"
)

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.sketchboard/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".sketchboard")
}

// DefaultConfigPath returns the default path for the canvas config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveCanvasConfig persists a CanvasConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveCanvasConfig(path string, config model.CanvasConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LoadCanvasConfig reads a CanvasConfig from the given path.
// If the file does not exist, it returns DefaultCanvasConfig with no error.
// Fields absent from the file keep their default values.
func LoadCanvasConfig(path string) (model.CanvasConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultCanvasConfig(), nil
		}
		return model.CanvasConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}
	config := model.DefaultCanvasConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return model.CanvasConfig{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return model.CanvasConfig{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return config, nil
}
