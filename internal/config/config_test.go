package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Root != "." {
		t.Errorf("root = %q, want .", cfg.Root)
	}
	if cfg.MaxNestingDepth != 8 {
		t.Errorf("max nesting depth = %d, want 8", cfg.MaxNestingDepth)
	}
	if cfg.Output.Dir != ".javakg" || cfg.Output.GraphFile != "graph.json" {
		t.Errorf("output = %+v", cfg.Output)
	}
	if !cfg.IsAnalyzerEnabled("source") || !cfg.IsAnalyzerEnabled("build") {
		t.Error("default analyzers missing source/build")
	}
	if cfg.IsAnalyzerEnabled("nonexistent") {
		t.Error("unknown analyzer reported enabled")
	}
	if !contains(cfg.Ignore, "target/**") || !contains(cfg.Ignore, ".git/**") {
		t.Errorf("ignore defaults incomplete: %v", cfg.Ignore)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "javakg.yaml")
	data := `
root: /src/acme
analyzers:
  - source
  - build
max_nesting_depth: 3
output:
  dir: reports
  sqlite_file: graph.db
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Root != "/src/acme" {
		t.Errorf("root = %q", cfg.Root)
	}
	if len(cfg.Analyzers) != 2 {
		t.Errorf("analyzers = %v, want just source and build", cfg.Analyzers)
	}
	if cfg.IsAnalyzerEnabled("logging") {
		t.Error("logging should be disabled by explicit analyzer list")
	}
	if cfg.MaxNestingDepth != 3 {
		t.Errorf("max nesting depth = %d", cfg.MaxNestingDepth)
	}
	if cfg.Output.Dir != "reports" {
		t.Errorf("output dir = %q", cfg.Output.Dir)
	}
	if cfg.Output.GraphFile != "graph.json" {
		t.Errorf("graph file default not applied: %q", cfg.Output.GraphFile)
	}
	if cfg.Output.SQLiteFile != "graph.db" {
		t.Errorf("sqlite file = %q", cfg.Output.SQLiteFile)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("root: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}
