package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

const baseName = "invaders"

// LoadInvaders loads the Invaders configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.{yaml,toml} ->
// ./configs/invaders.{yaml,toml} -> embedded default.
// Keys missing from a file keep their default values.
// Only an explicit customPath produces read or parse errors; broken files
// on the search path are skipped.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultInvadersConfig(), err
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultInvadersConfig()
	if err := decode(defaultInvadersYAML, ".yaml", &cfg); err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads one config file over the defaults.
func loadFile(path string) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	if err := decode(data, strings.ToLower(filepath.Ext(path)), &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	return cfg, nil
}

// decode parses data in the format implied by ext into cfg.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func decode(data []byte, ext string, cfg *InvadersConfig) error {
	switch ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown key %q", undecoded[0].String())
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, baseName+".yaml"),
			filepath.Join(dir, baseName+".toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", baseName+".yaml"),
		filepath.Join("configs", baseName+".toml"),
	)
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs")
}
