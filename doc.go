// Package colorextractor finds color literals in stylesheets, markup,
// scripts and SVG files, converts them between notations and analyzes the
// resulting palette (statistics, anomalies, clusters, gaps, harmony,
// temperature, mood and usage).
//
// The CLI lives in cmd/color-extractor; this root package exposes the same
// pipeline as a Go API so that callers can embed scanning in their own
// tools without shelling out. The building blocks live under pkg/:
// converter, extractor, analyzer, config, scanner and formatter.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named colorextractor:
//
//	import "github.com/kataras/color-extractor" // package colorextractor
//
// # Quick start
//
//	result, err := colorextractor.Run(ctx, colorextractor.Options{
//	    Paths: []string{"./src"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("palette.md", []byte(result.Markdown), 0644)
//
// Single documents need no file system at all:
//
//	colors := colorextractor.ExtractColors(css, "scss")
//	analysis := colorextractor.Analyze(colors, 10)
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
//	type myLogger struct{}
//	func (l *myLogger) Infof(f string, a ...any)  { log.Printf("[INFO]  "+f, a...) }
//	func (l *myLogger) Warnf(f string, a ...any)  { log.Printf("[WARN]  "+f, a...) }
//	func (l *myLogger) Errorf(f string, a ...any) { log.Printf("[ERROR] "+f, a...) }
//
// # Limits
//
// Extraction itself never fails and cannot be interrupted midway. Size and
// count limits from [config.Config] are applied between steps: files over
// max_file_size are skipped before they are read and each document's colors
// are cut to max_colors before analysis.
package colorextractor
