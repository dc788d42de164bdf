// Package config loads connector settings from the workspace. Connector
// credentials stay outside the plan domain; plugins receive them as an
// opaque key/value map.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kensho-project/kensho/internal/infrastructure/storage"
)

// ConnectorConfig maps a target name (jira, asana, ...) to its settings.
type ConnectorConfig struct {
	Targets map[string]map[string]string `yaml:"targets"`
}

// Settings returns the config block for a target. Missing targets yield an
// empty map: plugins fall back to their environment variables.
func (c *ConnectorConfig) Settings(target string) map[string]string {
	if c == nil || c.Targets == nil {
		return map[string]string{}
	}
	if s, ok := c.Targets[target]; ok {
		return s
	}
	return map[string]string{}
}

// LoadConnectors reads connectors.yaml from the workspace. A missing file
// yields an empty config rather than an error.
func LoadConnectors(root string) (*ConnectorConfig, error) {
	repo := storage.NewFilesystemRepository(root)
	path, err := repo.ResolvePath(storage.ConnectorsFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ConnectorConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read connector config: %w", err)
	}

	var cfg ConnectorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal connector config: %w", err)
	}
	return &cfg, nil
}

// SaveConnectors writes connectors.yaml to the workspace.
func SaveConnectors(root string, cfg *ConnectorConfig) error {
	if cfg == nil {
		return fmt.Errorf("connector config is nil")
	}

	repo := storage.NewFilesystemRepository(root)
	path, err := repo.ResolvePath(storage.ConnectorsFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal connector config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
