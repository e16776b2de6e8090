// Package config loads the color-extractor settings.
//
// Settings are layered: built-in defaults, then an optional YAML file, then a
// .env file next to it and COLOR_EXTRACTOR_* environment variables. The result
// is validated before it is returned.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kataras/color-extractor/pkg/converter"
	"github.com/kataras/color-extractor/pkg/extractor"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "COLOR_EXTRACTOR_"

// DefaultFileName is the config file looked up when no path is given.
const DefaultFileName = ".color-extractor.yaml"

// OutputFormats lists the accepted values of Output.Format.
var OutputFormats = []string{"markdown", "json", "yaml", "css", "scss", "less"}

// Config holds every setting of a scan.
type Config struct {
	// MaxFileSize is the largest file, in bytes, that is read and scanned.
	MaxFileSize int64 `yaml:"max_file_size"`
	// MaxColors truncates the colors of each document. Zero keeps all.
	MaxColors int `yaml:"max_colors"`
	// MaxClusters caps the hue clusters of an analysis.
	MaxClusters int `yaml:"max_clusters"`
	// Concurrency is the number of documents read and scanned in parallel.
	Concurrency int `yaml:"concurrency"`
	// Extensions maps a file extension (".vue") to the file type whose
	// extractor handles it.
	Extensions  map[string]extractor.FileType `yaml:"extensions"`
	ExcludeDirs []string                      `yaml:"exclude_dirs"`

	Output struct {
		Format string `yaml:"format"`
		File   string `yaml:"file"`
	} `yaml:"output"`

	Convert struct {
		Target   string `yaml:"target"`
		ShortHex bool   `yaml:"short_hex"`
	} `yaml:"convert"`
}

// DefaultExtensions returns a fresh copy of the built-in extension table.
func DefaultExtensions() map[string]extractor.FileType {
	return map[string]extractor.FileType{
		".css":    extractor.FileTypeCSS,
		".scss":   extractor.FileTypeSCSS,
		".sass":   extractor.FileTypeSCSS,
		".less":   extractor.FileTypeLESS,
		".styl":   extractor.FileTypeStylus,
		".stylus": extractor.FileTypeStylus,
		".html":   extractor.FileTypeHTML,
		".htm":    extractor.FileTypeHTML,
		".vue":    extractor.FileTypeHTML,
		".svelte": extractor.FileTypeHTML,
		".js":     extractor.FileTypeJavaScript,
		".jsx":    extractor.FileTypeJavaScript,
		".mjs":    extractor.FileTypeJavaScript,
		".cjs":    extractor.FileTypeJavaScript,
		".ts":     extractor.FileTypeTypeScript,
		".tsx":    extractor.FileTypeTypeScript,
		".svg":    extractor.FileTypeSVG,
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		MaxFileSize: 1 << 20,
		MaxColors:   1000,
		MaxClusters: 10,
		Concurrency: runtime.NumCPU(),
		Extensions:  DefaultExtensions(),
		ExcludeDirs: []string{"node_modules", ".git", "dist", "build", "vendor"},
	}
	cfg.Output.Format = "markdown"
	cfg.Convert.Target = string(converter.TargetHex)
	return cfg
}

// Load builds the configuration for path. An empty path loads
// DefaultFileName from the working directory when it exists and the
// defaults otherwise; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	envPath := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load %s: %w", envPath, err)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	for _, v := range []struct {
		key string
		set func(string) error
	}{
		{"MAX_FILE_SIZE", func(s string) (err error) { c.MaxFileSize, err = strconv.ParseInt(s, 10, 64); return }},
		{"MAX_COLORS", func(s string) (err error) { c.MaxColors, err = strconv.Atoi(s); return }},
		{"MAX_CLUSTERS", func(s string) (err error) { c.MaxClusters, err = strconv.Atoi(s); return }},
		{"CONCURRENCY", func(s string) (err error) { c.Concurrency, err = strconv.Atoi(s); return }},
		{"EXCLUDE_DIRS", func(s string) error { c.ExcludeDirs = splitList(s); return nil }},
		{"OUTPUT_FORMAT", func(s string) error { c.Output.Format = s; return nil }},
		{"OUTPUT_FILE", func(s string) error { c.Output.File = s; return nil }},
		{"CONVERT_TARGET", func(s string) error { c.Convert.Target = s; return nil }},
		{"CONVERT_SHORT_HEX", func(s string) (err error) { c.Convert.ShortHex, err = strconv.ParseBool(s); return }},
	} {
		value, ok := os.LookupEnv(EnvPrefix + v.key)
		if !ok {
			continue
		}
		if err := v.set(strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("environment variable %s%s: %w", EnvPrefix, v.key, err)
		}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks the limits and names and normalizes the extension table:
// keys become lowercase with a leading dot and values are resolved to their
// canonical file type.
func (c *Config) Validate() error {
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("max_file_size must be positive, got %d", c.MaxFileSize)
	}
	if c.MaxColors < 0 {
		return fmt.Errorf("max_colors must not be negative, got %d", c.MaxColors)
	}
	if c.MaxClusters < 1 {
		return fmt.Errorf("max_clusters must be at least 1, got %d", c.MaxClusters)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}

	extensions := make(map[string]extractor.FileType, len(c.Extensions))
	for ext, ft := range c.Extensions {
		resolved, err := extractor.ParseFileType(string(ft))
		if err != nil {
			return fmt.Errorf("extension %q: %w", ext, err)
		}
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions[ext] = resolved
	}
	c.Extensions = extensions

	if !isOutputFormat(c.Output.Format) {
		return fmt.Errorf("unsupported output format %q, expected one of %s", c.Output.Format, strings.Join(OutputFormats, ", "))
	}
	if _, err := converter.ParseTarget(c.Convert.Target); err != nil {
		return fmt.Errorf("convert target: %w", err)
	}

	return nil
}

func isOutputFormat(format string) bool {
	for _, f := range OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}
