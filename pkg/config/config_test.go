package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kataras/color-extractor/pkg/extractor"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "markdown", cfg.Output.Format)
	assert.Equal(t, "hex", cfg.Convert.Target)
	assert.Equal(t, extractor.FileTypeTypeScript, cfg.Extensions[".tsx"])
}

func TestLoad_YAMLOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
max_colors: 50
max_clusters: 4
extensions:
  .vue: js
  ASTRO: html
exclude_dirs: [generated]
output:
  format: json
convert:
  target: oklch
  short_hex: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.MaxColors)
	assert.Equal(t, 4, cfg.MaxClusters)
	assert.Equal(t, int64(1<<20), cfg.MaxFileSize, "unset keys keep their defaults")
	assert.Equal(t, []string{"generated"}, cfg.ExcludeDirs)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "oklch", cfg.Convert.Target)
	assert.True(t, cfg.Convert.ShortHex)

	assert.Equal(t, extractor.FileTypeJavaScript, cfg.Extensions[".vue"])
	assert.Equal(t, extractor.FileTypeHTML, cfg.Extensions[".astro"])
	assert.Equal(t, extractor.FileTypeCSS, cfg.Extensions[".css"])
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "max_colors: 50\n")

	t.Setenv(EnvPrefix+"MAX_COLORS", "7")
	t.Setenv(EnvPrefix+"EXCLUDE_DIRS", "a, b ,,c")
	t.Setenv(EnvPrefix+"CONVERT_SHORT_HEX", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MaxColors)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.ExcludeDirs)
	assert.True(t, cfg.Convert.ShortHex)
}

func TestLoad_DotEnvNextToConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "output:\n  format: yaml\n")
	writeFile(t, dir, ".env", EnvPrefix+"MAX_CLUSTERS=3\n")
	t.Cleanup(func() { os.Unsetenv(EnvPrefix + "MAX_CLUSTERS") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxClusters)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing explicit file",
			path:    filepath.Join(dir, "nope.yaml"),
			wantErr: "read config file",
		},
		{
			name:    "malformed yaml",
			path:    writeFile(t, dir, "bad.yaml", "max_colors: [\n"),
			wantErr: "parse config file",
		},
		{
			name:    "bad output format",
			path:    writeFile(t, dir, "format.yaml", "output:\n  format: pdf\n"),
			wantErr: "unsupported output format",
		},
		{
			name:    "bad target",
			path:    writeFile(t, dir, "target.yaml", "convert:\n  target: cmyk\n"),
			wantErr: "convert target",
		},
		{
			name:    "bad extension type",
			path:    writeFile(t, dir, "ext.yaml", "extensions:\n  .foo: cobol\n"),
			wantErr: `extension ".foo"`,
		},
		{
			name:    "bad env number",
			path:    writeFile(t, dir, "ok.yaml", "max_colors: 1\n"),
			env:     map[string]string{EnvPrefix + "CONCURRENCY": "many"},
			wantErr: EnvPrefix + "CONCURRENCY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Limits(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero file size", func(c *Config) { c.MaxFileSize = 0 }},
		{"negative colors", func(c *Config) { c.MaxColors = -1 }},
		{"zero clusters", func(c *Config) { c.MaxClusters = 0 }},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
