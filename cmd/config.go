package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"tasklens/pkg/mcp"
	"tasklens/pkg/parser"
)

// TasklensConfig is the optional .tasklens.yaml file in the working
// directory.
type TasklensConfig struct {
	// Vault is the default vault root, used when neither the --vault flag
	// nor the environment variable is set.
	Vault string `yaml:"vault"`

	// Connectors overrides the connector words dropped before a
	// recurrence marker.
	Connectors []string `yaml:"connectors"`
}

// loadTasklensConfig loads .tasklens.yaml from dir. A missing file is not
// an error; a malformed one is reported and ignored.
func loadTasklensConfig(dir string) *TasklensConfig {
	content, err := os.ReadFile(filepath.Join(dir, ".tasklens.yaml"))
	if err != nil {
		return nil
	}

	var config TasklensConfig
	if err := yaml.Unmarshal(content, &config); err != nil {
		fmt.Printf("⚠️  Warning: Failed to parse .tasklens.yaml: %v\n", err)
		return nil
	}

	return &config
}

// resolveVault picks the vault root: the --vault flag wins, then the
// environment variable, then the config file.
func resolveVault(flagValue string, config *TasklensConfig) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(mcp.EnvVaultPath); env != "" {
		return env, nil
	}
	if config != nil && config.Vault != "" {
		return config.Vault, nil
	}
	return "", fmt.Errorf("no vault path: pass --vault, set %s, or add 'vault' to .tasklens.yaml", mcp.EnvVaultPath)
}

// newParser builds the line parser, honoring a connector override from the
// config file.
func newParser(config *TasklensConfig) *parser.Parser {
	if config != nil && len(config.Connectors) > 0 {
		return parser.NewWithConnectors(config.Connectors)
	}
	return parser.New()
}
