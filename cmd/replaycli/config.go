package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the knobs replaycli reads from an optional TOML file
// alongside the CLI's positional arguments (DATA_FOLDER, RECORDING,
// VERSION per §6's CLI surface). Missing file or fields fall back to
// defaults() rather than failing the run.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Output  OutputConfig  `toml:"output"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type OutputConfig struct {
	// JSONPath, if set, writes the serialized recording there instead of
	// stdout.
	JSONPath string `toml:"json_path"`
}

func defaults() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// loadConfig reads path if it exists, overlaying onto defaults(); a
// missing file is not an error since every field has a sensible default
// and the CLI's three positional arguments carry the actual run
// parameters.
func loadConfig(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
