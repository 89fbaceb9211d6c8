package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// appConfig is the optional bigint.toml discovered by walking up from
// the working directory. Every field has a working default, so an
// absent file or section is never an error.
type appConfig struct {
	Output outputConfig `toml:"output"`
	Prime  primeConfig  `toml:"prime"`
	Repl   replConfig   `toml:"repl"`
}

type outputConfig struct {
	Base int64 `toml:"base"`
}

type primeConfig struct {
	Rounds int `toml:"rounds"`
}

type replConfig struct {
	Persist *bool `toml:"persist"`
	History int   `toml:"history"`
}

func findBigintToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "bigint.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfig(startDir string) (appConfig, bool, error) {
	path, ok, err := findBigintToml(startDir)
	if err != nil || !ok {
		return appConfig{}, ok, err
	}
	cfg, err := loadConfigFile(path)
	if err != nil {
		return appConfig{}, true, err
	}
	return cfg, true, nil
}

func loadConfigFile(path string) (appConfig, error) {
	var cfg appConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return appConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("prime", "rounds") && cfg.Prime.Rounds < 0 {
		return appConfig{}, fmt.Errorf("%s: [prime].rounds must not be negative", path)
	}
	if meta.IsDefined("repl", "history") && cfg.Repl.History < 0 {
		return appConfig{}, fmt.Errorf("%s: [repl].history must not be negative", path)
	}
	return cfg, nil
}
