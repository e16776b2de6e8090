package colorextractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kataras/color-extractor/pkg/analyzer"
	"github.com/kataras/color-extractor/pkg/config"
	"github.com/kataras/color-extractor/pkg/converter"
	"github.com/kataras/color-extractor/pkg/extractor"
	"github.com/kataras/color-extractor/pkg/formatter"
	"github.com/kataras/color-extractor/pkg/scanner"
)

// Version is the release of the module and the CLI.
const Version = "1.0.0"

// Options configures a scan.
type Options struct {
	Paths  []string       // files and directories to scan
	Config *config.Config // nil = config.Default()
	Title  string         // report title, defaults to the joined paths
	Logger Logger         // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Document is the scan output of one file.
type Document struct {
	Path      string
	FileType  extractor.FileType
	Colors    []converter.Color
	Truncated bool // Colors was cut to Config.MaxColors
	Analysis  analyzer.PaletteAnalysis
}

// Result contains the scan output.
type Result struct {
	Documents []Document
	Colors    []converter.Color // every document's colors, in document order
	Analysis  analyzer.PaletteAnalysis
	Skipped   []error // non-fatal per-file failures
	Report    *formatter.Report
	Markdown  string // formatted markdown report
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// ExtractColors runs the extractor for fileType over content. Unknown or
// unsupported file types use the CSS extractor.
func ExtractColors(content, fileType string) []converter.Color {
	ft, err := extractor.ParseFileType(fileType)
	if err != nil {
		ft = extractor.FileTypeUnknown
	}
	return extractor.Extract(content, ft)
}

// Analyze runs every palette analysis over colors.
func Analyze(colors []converter.Color, maxClusters int) analyzer.PaletteAnalysis {
	return analyzer.AnalyzePalette(colors, maxClusters)
}

// ParseFileType resolves a file type name or alias such as "js" or "tsx".
func ParseFileType(s string) (extractor.FileType, error) {
	return extractor.ParseFileType(s)
}

// ParseTarget resolves a conversion target name.
func ParseTarget(s string) (converter.Target, error) {
	return converter.ParseTarget(s)
}

// Run collects, reads and scans the files under opts.Paths, analyzes each
// document and the combined palette, and renders the markdown report.
// Unreadable and oversized files are reported in Result.Skipped; only a
// missing path or a canceled ctx fails the run.
func Run(ctx context.Context, opts Options) (*Result, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if len(opts.Paths) == 0 {
		return nil, fmt.Errorf("no paths to scan")
	}

	opts.logInfo("Collecting files...")
	files, err := scanner.CollectFiles(opts.Paths, cfg)
	if err != nil {
		return nil, fmt.Errorf("collect files: %w", err)
	}
	opts.logInfo("Found %d file(s)", len(files))

	read, err := scanner.ReadDocuments(ctx, files, cfg)
	if err != nil {
		return nil, fmt.Errorf("read files: %w", err)
	}
	for _, skip := range read.Skipped {
		opts.logWarn("%v", skip)
	}

	opts.logInfo("Extracting colors from %d document(s)...", len(read.Documents))
	docs, err := extractDocuments(ctx, read.Documents, cfg)
	if err != nil {
		return nil, fmt.Errorf("extract colors: %w", err)
	}

	result := &Result{Documents: docs, Skipped: read.Skipped}
	for _, d := range docs {
		if d.Truncated {
			opts.logWarn("%s: kept the first %d colors", d.Path, cfg.MaxColors)
		}
		result.Colors = append(result.Colors, d.Colors...)
	}
	if result.Colors == nil {
		result.Colors = []converter.Color{}
	}

	opts.logInfo("Analyzing %d color(s)...", len(result.Colors))
	result.Analysis = analyzer.AnalyzePalette(result.Colors, cfg.MaxClusters)

	title := opts.Title
	if title == "" {
		title = strings.Join(opts.Paths, ", ")
	}
	target, _ := converter.ParseTarget(cfg.Convert.Target)

	result.Report = &formatter.Report{
		ID:       uuid.NewString(),
		Title:    title,
		Colors:   result.Colors,
		Analysis: result.Analysis,
		Target:   target,
		ShortHex: cfg.Convert.ShortHex,
	}
	for _, d := range docs {
		result.Report.Documents = append(result.Report.Documents, formatter.DocumentReport{
			Path:     d.Path,
			FileType: d.FileType,
			Colors:   d.Colors,
		})
	}
	for _, skip := range read.Skipped {
		result.Report.Skipped = append(result.Report.Skipped, skip.Error())
	}

	opts.logInfo("Generating markdown report...")
	result.Markdown = formatter.ToMarkdown(result.Report)

	return result, nil
}

// extractDocuments scans and analyzes the documents in parallel. Output order
// matches input order.
func extractDocuments(ctx context.Context, in []scanner.Document, cfg *config.Config) ([]Document, error) {
	out := make([]Document, len(in))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Concurrency, 1))

	for i, doc := range in {
		i, doc := i, doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			colors := extractor.Extract(doc.Content, doc.FileType)
			truncated := false
			if cfg.MaxColors > 0 && len(colors) > cfg.MaxColors {
				colors = colors[:cfg.MaxColors]
				truncated = true
			}

			out[i] = Document{
				Path:      doc.Path,
				FileType:  doc.FileType,
				Colors:    colors,
				Truncated: truncated,
				Analysis:  analyzer.AnalyzePalette(colors, cfg.MaxClusters),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseExtensions parses a comma-separated list of ext=type pairs, such as
// "vue=html,astro=html", into an extension table.
func ParseExtensions(s string) (map[string]extractor.FileType, error) {
	extensions := make(map[string]extractor.FileType)

	for _, part := range strings.Split(s, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}

		ext, name, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("invalid extension mapping %q (expected ext=type)", trimmed)
		}
		ft, err := extractor.ParseFileType(name)
		if err != nil {
			return nil, fmt.Errorf("invalid extension mapping %q: %w", trimmed, err)
		}

		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions[ext] = ft
	}

	return extensions, nil
}
