package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-md2post/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// defaultConfigName is probed in the working directory when --config is
// not given.
const defaultConfigName = "md2post.yaml"

// fileConfig mirrors the YAML config file. Zero values mean "not set";
// command-line flags always win over config values.
type fileConfig struct {
	Target      string `yaml:"target"`      // default preset target
	ChatSyntax  bool   `yaml:"chatSyntax"`  // normalize informal emphasis
	SmartQuotes bool   `yaml:"smartQuotes"` // typographic quotes (document-wrapper)
	Workers     int    `yaml:"workers"`     // batch worker count (0 = auto)
}

// loadConfig reads the config file. An explicit path must exist; the
// default path is optional and silently skipped when absent.
func loadConfig(path string) (fileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigName
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	var cfg fileConfig
	if err := yamlutil.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	return cfg, nil
}

// mergeConfig overlays file config under flag values. Flags that were left
// at their zero value inherit from the file.
func mergeConfig(f cliFlags, cfg fileConfig) cliFlags {
	if f.target == "" {
		f.target = cfg.Target
	}
	if !f.chatSyntax {
		f.chatSyntax = cfg.ChatSyntax
	}
	if !f.smartQuotes {
		f.smartQuotes = cfg.SmartQuotes
	}
	if f.workers == 0 {
		f.workers = cfg.Workers
	}
	return f
}
