package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "color-extractor version "+version+"\n", out)
}

func TestConvert(t *testing.T) {
	out, _, err := execute(t, "", "convert", "#ff0000", "rgba(0, 0, 255, 0.5)", "--to", "rgb", "--no-swatch")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000              → rgb(255, 0, 0)\nrgba(0, 0, 255, 0.5) → rgba(0, 0, 255, 0.5)\n", out)

	out, _, err = execute(t, "", "convert", "#ffffff", "--short", "--no-swatch")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff → #fff\n", out)
}

func TestConvert_Errors(t *testing.T) {
	_, stderr, err := execute(t, "", "convert", "#ff0000", "notacolor", "--no-swatch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, stderr, "notacolor")

	_, _, err = execute(t, "", "convert", "#ff0000", "--to", "cmyk")
	assert.Error(t, err)
}

func TestContrast(t *testing.T) {
	out, _, err := execute(t, "", "contrast", "#000000", "#ffffff")
	require.NoError(t, err)
	assert.Contains(t, out, "21.00:1")
	assert.Contains(t, out, "AAA")

	_, _, err = execute(t, "", "contrast", "#000000", "nope")
	assert.Error(t, err)
}

func TestRun_Stdin(t *testing.T) {
	out, _, err := execute(t, ".a { color: #ff0000 }", "--stdin", "--type", "scss", "--format", "css")
	require.NoError(t, err)
	assert.Equal(t, ":root {\n  --color: #ff0000;\n}\n", out)

	_, _, err = execute(t, "", "--stdin", "--type", "cobol")
	assert.Error(t, err)
}

func TestRun_OutputFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "theme.vue"), []byte(`<div style="color: #336699"></div>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "app.scss"), []byte("$brand: #ff6600;\n"), 0o644))
	output := filepath.Join(root, "out", "palette.json")

	out, _, err := execute(t, "", root, "--format", "json", "--output", output, "--title", "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Extraction Summary")
	assert.Contains(t, out, "Colors: 2 total, 2 unique")

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var report struct {
		Title  string `json:"title"`
		Colors []struct {
			Value string `json:"value"`
		} `json:"colors"`
	}
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "demo", report.Title)
	assert.Len(t, report.Colors, 2)
}

func TestRun_InvalidFlags(t *testing.T) {
	_, _, err := execute(t, "", t.TempDir(), "--format", "pdf")
	assert.Error(t, err)

	_, _, err = execute(t, "", t.TempDir(), "--ext", "vue")
	assert.Error(t, err)
}
