package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const userConfigDir = ".config/chromacraft"

// userConfigNames are tried in order; the first existing file wins.
var userConfigNames = []string{"config.yaml", "config.yml", "config.toml"}

// Load layers the defaults, the user config file (if any) and the file at
// explicitPath (if non-empty, it must exist).
func Load(explicitPath string) (Config, error) {
	cfg := Default()

	userPath, err := findUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if userPath != "" {
		userCfg, err := LoadFile(userPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading user config from %s: %w", userPath, err)
		}
		cfg = Merge(cfg, userCfg)
	}

	if explicitPath != "" {
		fileCfg, err := LoadFile(explicitPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		cfg = Merge(cfg, fileCfg)
	}

	return cfg, nil
}

var findUserConfig = func() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	for _, name := range userConfigNames {
		p := filepath.Join(home, userConfigDir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// LoadFile reads a single config file. ".toml" files are decoded as TOML,
// everything else as YAML.
func LoadFile(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Merge returns base with every non-zero field of overlay applied.
func Merge(base, overlay Config) Config {
	merged := base

	if overlay.Count != 0 {
		merged.Count = overlay.Count
	}
	if overlay.MinDiff != 0 {
		merged.MinDiff = overlay.MinDiff
	}
	if overlay.MaxDiff != 0 {
		merged.MaxDiff = overlay.MaxDiff
	}
	if overlay.Sampler != "" {
		merged.Sampler = overlay.Sampler
	}
	if overlay.MaxAttempts != 0 {
		merged.MaxAttempts = overlay.MaxAttempts
	}
	if overlay.Timeout != 0 {
		merged.Timeout = overlay.Timeout
	}
	if overlay.Hex {
		merged.Hex = true
	}
	if len(overlay.Seeds) > 0 {
		merged.Seeds = append([]string(nil), overlay.Seeds...)
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}

	if overlay.Swatch.Columns != 0 {
		merged.Swatch.Columns = overlay.Swatch.Columns
	}
	if overlay.Swatch.Cell != 0 {
		merged.Swatch.Cell = overlay.Swatch.Cell
	}
	if overlay.Swatch.Labels != nil {
		v := *overlay.Swatch.Labels
		merged.Swatch.Labels = &v
	}
	if overlay.Swatch.LabelSize != 0 {
		merged.Swatch.LabelSize = overlay.Swatch.LabelSize
	}

	return merged
}
