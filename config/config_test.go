package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	data := "ignore-comments: true\nignore-empty-rules: true\nparser: node\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.IgnoreCharset {
		t.Error("ignore-charset should default to false")
	}
	if !cfg.IgnoreComments || !cfg.IgnoreEmptyRules {
		t.Errorf("suppressions not loaded: %+v", cfg)
	}
	if cfg.Parser != "node" {
		t.Errorf("parser = %q, want node", cfg.Parser)
	}
	if got := len(cfg.Options()); got != 4 {
		t.Errorf("got %d options, want 4", got)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != (Config{}) {
		t.Errorf("got %+v, want zero config", cfg)
	}
}

func TestLoadHomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	data := "ignore-charset: true\n"
	if err := os.WriteFile(filepath.Join(home, FileName), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.IgnoreCharset {
		t.Errorf("home config not loaded: %+v", cfg)
	}
}

func TestLoadBadParser(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	data := "parser: rust\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected error for unknown parser")
	}
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(":\n:::"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected error for invalid yaml")
	}
}
