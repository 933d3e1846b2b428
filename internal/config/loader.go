package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration came from, for logging.
type Source string

const SourceEmbedded Source = "embedded"

// Load loads the game configuration.
// Search order: customPath -> ~/.musou/config.yaml -> ./configs/musou.yaml -> embedded default.
// Files only need to set the keys they override; everything else keeps its default.
// A customPath that cannot be read, parsed or validated is an error; the other
// locations are skipped when unusable.
func Load(customPath string) (Config, Source, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return Config{}, "", fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, Source(customPath), nil
	}

	candidates := []string{userConfigPath("config.yaml"), filepath.Join("configs", "musou.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, Source(path), nil
		}
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parse decodes YAML on top of the defaults. Unknown keys are rejected so
// typos in a hand-written file surface at startup.
func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return buf.Bytes(), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".musou", filename)
}
