package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("explicit file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "cfg.yaml")
		data := "target: reverse-chat-syntax\nchatSyntax: true\nworkers: 3\n"
		if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
			t.Fatal(err)
		}

		cfg, err := loadConfig(path)
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if cfg.Target != "reverse-chat-syntax" {
			t.Errorf("Target = %q, want %q", cfg.Target, "reverse-chat-syntax")
		}
		if !cfg.ChatSyntax {
			t.Error("ChatSyntax = false, want true")
		}
		if cfg.Workers != 3 {
			t.Errorf("Workers = %d, want 3", cfg.Workers)
		}
	})

	t.Run("explicit file missing", func(t *testing.T) {
		t.Parallel()

		_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("loadConfig() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("default file absent is not an error", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := loadConfig("")
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if cfg != (fileConfig{}) {
			t.Errorf("cfg = %+v, want zero value", cfg)
		}
	})

	t.Run("malformed YAML", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("target: [unclosed"), 0o600); err != nil {
			t.Fatal(err)
		}

		_, err := loadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("loadConfig() error = %v, want ErrConfigParse", err)
		}
	})
}

func TestMergeConfig(t *testing.T) {
	t.Parallel()

	cfg := fileConfig{Target: "document-wrapper", ChatSyntax: true, SmartQuotes: true, Workers: 2}

	t.Run("flags win", func(t *testing.T) {
		t.Parallel()

		f := mergeConfig(cliFlags{target: "styled-text", workers: 8}, cfg)
		if f.target != "styled-text" {
			t.Errorf("target = %q, want flag value", f.target)
		}
		if f.workers != 8 {
			t.Errorf("workers = %d, want flag value", f.workers)
		}
	})

	t.Run("zero flags inherit", func(t *testing.T) {
		t.Parallel()

		f := mergeConfig(cliFlags{}, cfg)
		if f.target != "document-wrapper" {
			t.Errorf("target = %q, want config value", f.target)
		}
		if !f.chatSyntax || !f.smartQuotes {
			t.Error("boolean options not inherited from config")
		}
		if f.workers != 2 {
			t.Errorf("workers = %d, want config value", f.workers)
		}
	})
}
