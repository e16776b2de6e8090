package colorextractor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kataras/color-extractor/pkg/analyzer"
	"github.com/kataras/color-extractor/pkg/config"
	"github.com/kataras/color-extractor/pkg/extractor"
	"github.com/kataras/color-extractor/pkg/scanner"
)

type recordingLogger struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
}

func (l *recordingLogger) Infof(f string, a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(f, a...))
}

func (l *recordingLogger) Warnf(f string, a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, fmt.Sprintf(f, a...))
}

func (l *recordingLogger) Errorf(f string, a ...any) {}

func TestExtractColors(t *testing.T) {
	tests := []struct {
		content  string
		fileType string
		want     []string
	}{
		{".c{color:#ff0000}/* #00ff00 */", "css", []string{"#ff0000"}},
		{".c{color:#ff0000}", "not-a-type", []string{"#ff0000"}},
		{"const url='https://x/#ff0000';", "js", []string{}},
		{`<rect fill="red"/>`, "svg", []string{"red"}},
	}

	for _, tt := range tests {
		colors := ExtractColors(tt.content, tt.fileType)
		got := make([]string, 0, len(colors))
		for _, c := range colors {
			got = append(got, c.Value)
		}
		assert.Equal(t, tt.want, got, "%s: %s", tt.fileType, tt.content)
	}
}

func TestAnalyze(t *testing.T) {
	analysis := Analyze(ExtractColors("a { color: #ff0000; background: #00ffff }", "css"), 5)
	assert.Equal(t, 2, analysis.Statistics.Total)
	assert.Equal(t, analyzer.HarmonyComplementary, analysis.Harmony.Type)
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"a.css":              ".a { color: #ff0000; background: #fff }",
		"b.js":               "const url='https://x/#00ff00';",
		"big.css":            strings.Repeat("/* padding */\n", 20),
		"node_modules/x.css": ".x { color: #123456 }",
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	cfg := config.Default()
	cfg.MaxFileSize = 100
	cfg.MaxColors = 1
	logger := &recordingLogger{}

	result, err := Run(context.Background(), Options{
		Paths:  []string{root},
		Config: cfg,
		Title:  "custom",
		Logger: logger,
	})
	require.NoError(t, err)

	require.Len(t, result.Documents, 2)
	assert.Equal(t, filepath.Join(root, "a.css"), result.Documents[0].Path)
	assert.Equal(t, extractor.FileTypeCSS, result.Documents[0].FileType)
	assert.True(t, result.Documents[0].Truncated)
	assert.Equal(t, extractor.FileTypeJavaScript, result.Documents[1].FileType)
	assert.Empty(t, result.Documents[1].Colors)

	require.Len(t, result.Colors, 1)
	assert.Equal(t, "#ff0000", result.Colors[0].Value)
	assert.Equal(t, 1, result.Analysis.Statistics.Total)

	require.Len(t, result.Skipped, 1)
	assert.True(t, errors.Is(result.Skipped[0], scanner.ErrTooLarge))

	assert.Contains(t, result.Markdown, "# Color Palette Report - custom")
	assert.Contains(t, result.Markdown, "## Skipped Files")
	require.Len(t, result.Report.Documents, 2)
	_, err = uuid.Parse(result.Report.ID)
	assert.NoError(t, err)

	joined := strings.Join(logger.warnings, "\n")
	assert.Contains(t, joined, "big.css")
	assert.Contains(t, joined, "kept the first 1 colors")
	assert.NotEmpty(t, logger.infos)
}

func TestRun_Errors(t *testing.T) {
	_, err := Run(context.Background(), Options{})
	assert.Error(t, err)

	_, err = Run(context.Background(), Options{Paths: []string{filepath.Join(t.TempDir(), "missing")}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseExtensions(t *testing.T) {
	got, err := ParseExtensions("vue=html, .ASTRO=html,,mdx=js")
	require.NoError(t, err)
	assert.Equal(t, map[string]extractor.FileType{
		".vue":   extractor.FileTypeHTML,
		".astro": extractor.FileTypeHTML,
		".mdx":   extractor.FileTypeJavaScript,
	}, got)

	_, err = ParseExtensions("vue")
	assert.Error(t, err)

	_, err = ParseExtensions("vue=cobol")
	assert.Error(t, err)
}
