package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the javakg.yaml configuration.
type Config struct {
	Root            string       `yaml:"root"`
	Ignore          []string     `yaml:"ignore"`
	Analyzers       []string     `yaml:"analyzers"`
	MaxNestingDepth int          `yaml:"max_nesting_depth"`
	Output          OutputConfig `yaml:"output"`
}

// OutputConfig controls where and how output artifacts are generated.
type OutputConfig struct {
	Dir        string `yaml:"dir"`
	GraphFile  string `yaml:"graph_file"`
	SQLiteFile string `yaml:"sqlite_file"`
}

// Default returns a Config with sensible defaults. The ignore list covers
// the usual Java build output and IDE directories.
func Default() *Config {
	return &Config{
		Root: ".",
		Ignore: []string{
			"target/**",
			"bin/**",
			"build/**",
			"out/**",
			"logs/**",
			"tmp/**",
			"temp/**",
			"test-output/**",
			".git/**",
			".idea/**",
			".settings/**",
			".gradle/**",
			".mvn/**",
			".svn/**",
			".vscode/**",
			".metadata/**",
			"**/.gitignore",
			"**/.classpath",
			"**/.project",
			"**/.DS_Store",
			".javakg/**",
		},
		Analyzers: []string{
			"source", "build", "comments", "logging",
			"integrations", "versions", "localization",
			"config", "docs",
		},
		MaxNestingDepth: 8,
		Output: OutputConfig{
			Dir:       ".javakg",
			GraphFile: "graph.json",
		},
	}
}

// Load reads a configuration file from the given path.
// Missing fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// Ensure required defaults
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = ".javakg"
	}
	if cfg.Output.GraphFile == "" {
		cfg.Output.GraphFile = "graph.json"
	}
	if cfg.MaxNestingDepth <= 0 {
		cfg.MaxNestingDepth = 8
	}

	return cfg, nil
}

// IsAnalyzerEnabled returns true if the named analyzer is enabled.
func (c *Config) IsAnalyzerEnabled(name string) bool {
	return contains(c.Analyzers, name)
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
