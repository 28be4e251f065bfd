package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const hexlineFile = "hexline.yaml"

// Source names where a loaded config came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadHexline loads the board configuration.
// Search order: customPath -> ~/.hexline/configs/hexline.yaml ->
// ./configs/hexline.yaml -> embedded default -> built-in default.
// Only an unreadable or invalid custom path is an error.
func LoadHexline(customPath string) (HexlineConfig, error) {
	cfg, _, err := LoadHexlineWithSource(customPath)
	return cfg, err
}

// LoadHexlineWithSource is LoadHexline that also reports which source won.
func LoadHexlineWithSource(customPath string) (HexlineConfig, Source, error) {
	if customPath != "" {
		cfg, err := readHexline(customPath)
		if err != nil {
			return DefaultHexlineConfig(), SourceBuiltin, err
		}
		return cfg, SourceCustom, nil
	}

	if p := userConfigPath(hexlineFile); p != "" {
		if cfg, err := readHexline(p); err == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := readHexline(filepath.Join("configs", hexlineFile)); err == nil {
		return cfg, SourceLocal, nil
	}

	if cfg, err := parseHexline(defaultHexlineYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultHexlineConfig(), SourceBuiltin, nil
}

// Resolve loads the config the way LoadHexline does, applies the preset and
// checks the result. Commands call it before starting a board so an invalid
// config stops them instead of being replaced by the defaults.
func Resolve(customPath string, preset DifficultyPreset) (HexlineConfig, error) {
	cfg, err := LoadHexline(customPath)
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s preset: %w", preset, err)
	}
	return cfg, nil
}

func readHexline(path string) (HexlineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return HexlineConfig{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg, err := parseHexline(data)
	if err != nil {
		return HexlineConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// parseHexline decodes YAML over the built-in defaults, so a partial file
// only overrides the keys it names.
func parseHexline(data []byte) (HexlineConfig, error) {
	cfg := DefaultHexlineConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HexlineConfig{}, fmt.Errorf("cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return HexlineConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a config as YAML.
func Marshal(cfg HexlineConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexline", "configs", filename)
}
