// Package config holds the run configuration for a map generation: which
// directory and file names are excluded from traversal, which extensions get
// structural extraction, and the per-category output caps. A Config is built
// once per invocation and never mutated afterwards.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the optional per-project config file, read from the project root.
const FileName = ".codemap.yml"

// Caps bounds how many records of each category are emitted per file.
// Zero means uncapped (types and classes are never capped).
type Caps struct {
	Imports   int `yaml:"imports"`
	Exports   int `yaml:"exports"`
	Methods   int `yaml:"methods"`
	Functions int `yaml:"functions"`
}

// Config is the effective configuration for one run.
type Config struct {
	// ExcludeDirs are directory names skipped during traversal. Hidden
	// directories (leading dot) are always skipped regardless of this set.
	ExcludeDirs map[string]bool

	// ExcludeFiles are exact file names skipped during traversal.
	ExcludeFiles map[string]bool

	// CodeExts are the extensions (with leading dot, lowercase) that receive
	// structural extraction. Files outside this set still get a FILE line.
	CodeExts map[string]bool

	Caps Caps

	// MaxFileSize bounds the size of files handed to the extractor. Larger
	// files are listed but not analyzed.
	MaxFileSize int64
}

// Default returns the built-in configuration. The sets match the documented
// defaults; callers own the returned maps and must not share them.
func Default() *Config {
	return &Config{
		ExcludeDirs: map[string]bool{
			"node_modules":  true,
			".git":          true,
			".next":         true,
			"dist":          true,
			"build":         true,
			".cache":        true,
			"__pycache__":   true,
			".pytest_cache": true,
			"coverage":      true,
			".nyc_output":   true,
			"venv":          true,
			"env":           true,
			".venv":         true,
		},
		ExcludeFiles: map[string]bool{
			".DS_Store":         true,
			"package-lock.json": true,
			"npm-debug.log":     true,
			"yarn-error.log":    true,
			".env":              true,
			".env.local":        true,
		},
		CodeExts: map[string]bool{
			".ts": true, ".tsx": true, ".js": true, ".jsx": true,
			".py": true,
			".java": true, ".go": true, ".rs": true,
			".c": true, ".cpp": true, ".h": true, ".hpp": true,
		},
		Caps: Caps{
			Imports:   5,
			Exports:   10,
			Methods:   10,
			Functions: 15,
		},
		MaxFileSize: 1 << 20,
	}
}

// fileConfig is the YAML shape of .codemap.yml. Name lists extend the default
// sets; caps and max_file_size override when positive.
type fileConfig struct {
	ExcludeDirs    []string `yaml:"exclude_dirs"`
	ExcludeFiles   []string `yaml:"exclude_files"`
	CodeExtensions []string `yaml:"code_extensions"`
	Caps           Caps     `yaml:"caps"`
	MaxFileSize    int64    `yaml:"max_file_size"`
}

// Load returns the default configuration overlaid with .codemap.yml from the
// project root, when present. A missing file is not an error; a malformed one is.
func Load(projectRoot string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(projectRoot, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	for _, name := range fc.ExcludeDirs {
		cfg.ExcludeDirs[name] = true
	}
	for _, name := range fc.ExcludeFiles {
		cfg.ExcludeFiles[name] = true
	}
	for _, ext := range fc.CodeExtensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.CodeExts[strings.ToLower(ext)] = true
	}

	if fc.Caps.Imports > 0 {
		cfg.Caps.Imports = fc.Caps.Imports
	}
	if fc.Caps.Exports > 0 {
		cfg.Caps.Exports = fc.Caps.Exports
	}
	if fc.Caps.Methods > 0 {
		cfg.Caps.Methods = fc.Caps.Methods
	}
	if fc.Caps.Functions > 0 {
		cfg.Caps.Functions = fc.Caps.Functions
	}
	if fc.MaxFileSize > 0 {
		cfg.MaxFileSize = fc.MaxFileSize
	}

	return cfg, nil
}

// ExcludedDir reports whether a directory name is skipped during traversal.
func (c *Config) ExcludedDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	return c.ExcludeDirs[name]
}

// ExcludedFile reports whether a file name is skipped during traversal.
func (c *Config) ExcludedFile(name string) bool {
	return c.ExcludeFiles[name]
}

// IsCode reports whether files with this extension get structural extraction.
// The extension must include the leading dot; matching is case-insensitive.
func (c *Config) IsCode(ext string) bool {
	return c.CodeExts[strings.ToLower(ext)]
}
