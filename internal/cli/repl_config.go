package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ReplConfig holds REPL preferences persisted across runs.
type ReplConfig struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	TableWidth  int    `yaml:"table_width"`
}

// DefaultReplConfig mirrors sloty's hardcoded REPL defaults.
func DefaultReplConfig() ReplConfig {
	home, _ := os.UserHomeDir()

	return ReplConfig{
		Prompt:      "acmatch> ",
		HistoryFile: filepath.Join(home, ".acmatch_history"),
		TableWidth:  28,
	}
}

// LoadReplConfig reads path, overlaying it onto the defaults. A
// missing file is not an error; any other read/parse failure is.
func LoadReplConfig(path string) (ReplConfig, error) {
	cfg := DefaultReplConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return ReplConfig{}, fmt.Errorf("reading REPL config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ReplConfig{}, fmt.Errorf("invalid REPL config %s: %w", path, err)
	}

	return cfg, nil
}
