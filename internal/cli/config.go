package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/emreozcan/pymetheus/internal/paths"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// cfgKeyLibrary points at the library database (file or directory).
	cfgKeyLibrary = "library"
)

// defaultConfigYAML is the content written to config.yaml when a library is
// initialized and no configuration exists yet.
const defaultConfigYAML = `# Pymetheus configuration

# Path to the library database, a file or its containing directory.
# Overridable with the --library flag.
library: %s
`

// loadConfig reads config.yaml from the platform config directory using
// Viper. A missing config.yaml is not an error.
func loadConfig() (*viper.Viper, error) {
	configDir, err := paths.DefaultConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// writeConfigIfMissing records the library path in a fresh config.yaml.
// An existing configuration is left untouched.
func writeConfigIfMissing(libraryPath string) error {
	configDir, err := paths.DefaultConfigDir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	configPath := filepath.Join(configDir, configFileName+"."+configFileType)
	if _, err := os.Stat(configPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config: %w", err)
	}

	content := fmt.Sprintf(defaultConfigYAML, libraryPath)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
