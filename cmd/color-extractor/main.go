package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	colorextractor "github.com/kataras/color-extractor"
	"github.com/kataras/color-extractor/pkg/config"
	"github.com/kataras/color-extractor/pkg/formatter"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const version = colorextractor.Version

var (
	configFile  string
	outputFile  string
	format      string
	maxColors   int
	maxClusters int
	maxFileSize int64
	concurrency int
	excludeDirs []string
	extensions  string
	title       string
	logJSON     bool
	fromStdin   bool
	stdinType   string
)

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "color-extractor [paths...]",
		Short:         "Extract and analyze colors from source files",
		Long:          "A tool to find color literals in stylesheets, markup, scripts and SVG files, convert them between notations and analyze the resulting palette",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "Config file (defaults to "+config.DefaultFileName+" when present)")
	flags.StringVarP(&outputFile, "output", "o", "", "Output file (stdout when empty)")
	flags.StringVarP(&format, "format", "f", "markdown", "Output format: markdown, json, yaml, css, scss, less")
	flags.IntVar(&maxColors, "max-colors", 1000, "Maximum colors kept per file (0 keeps all)")
	flags.IntVar(&maxClusters, "max-clusters", 10, "Maximum hue clusters in the analysis")
	flags.Int64Var(&maxFileSize, "max-file-size", 1<<20, "Skip files larger than this many bytes")
	flags.IntVar(&concurrency, "concurrency", 0, "Files scanned in parallel (defaults to the number of CPUs)")
	flags.StringSliceVar(&excludeDirs, "exclude", nil, "Directory names to skip while walking")
	flags.StringVar(&extensions, "ext", "", "Extra extension mappings (e.g. \"vue=html,mdx=js\")")
	flags.StringVar(&title, "title", "", "Report title")
	flags.BoolVar(&logJSON, "log-json", false, "Write logs as JSON lines to stderr")
	flags.BoolVar(&fromStdin, "stdin", false, "Read a single document from stdin")
	flags.StringVar(&stdinType, "type", "css", "File type of the stdin document")

	rootCmd.AddCommand(newConvertCmd(), newContrastCmd())

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "color-extractor version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

// loadConfig reads the config file and applies the flags the user set
// explicitly on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("output") {
		cfg.Output.File = outputFile
	}
	if flags.Changed("max-colors") {
		cfg.MaxColors = maxColors
	}
	if flags.Changed("max-clusters") {
		cfg.MaxClusters = maxClusters
	}
	if flags.Changed("max-file-size") {
		cfg.MaxFileSize = maxFileSize
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = concurrency
	}
	if flags.Changed("exclude") {
		cfg.ExcludeDirs = append(cfg.ExcludeDirs, excludeDirs...)
	}
	if extensions != "" {
		extra, err := colorextractor.ParseExtensions(extensions)
		if err != nil {
			return nil, err
		}
		for ext, ft := range extra {
			cfg.Extensions[ext] = ft
		}
	}

	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Progress goes to stderr when the report itself is written to stdout.
	out := cmd.OutOrStdout()
	progress := out
	if cfg.Output.File == "" {
		progress = cmd.ErrOrStderr()
	}

	var logger colorextractor.Logger = &cliLogger{w: progress}
	if logJSON {
		logger = newJSONLogger(cmd.ErrOrStderr())
		progress = io.Discard
	}

	var report *formatter.Report
	if fromStdin {
		report, err = scanStdin(cmd.InOrStdin(), cfg)
		if err != nil {
			return err
		}
	} else {
		if len(args) == 0 {
			args = []string{"."}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		color.New(color.FgCyan).Fprintln(progress, "\n🎨 Color Extractor")
		color.New(color.FgCyan).Fprintln(progress, "==================")

		result, err := colorextractor.Run(ctx, colorextractor.Options{
			Paths:  args,
			Config: cfg,
			Title:  title,
			Logger: logger,
		})
		if err != nil {
			return err
		}
		report = result.Report
		printSummary(progress, result)
	}

	data, err := formatter.Export(report, cfg.Output.Format)
	if err != nil {
		return err
	}

	if cfg.Output.File == "" {
		_, err = out.Write(data)
		return err
	}

	green := color.New(color.FgGreen)
	green.Fprintf(progress, "\n💾 Writing to %s... ", cfg.Output.File)
	if err := formatter.Save(cfg.Output.File, data); err != nil {
		color.New(color.FgRed).Fprintln(progress, "✗")
		return err
	}
	green.Fprintln(progress, "✓")
	logger.Infof("Wrote %s report to %s", cfg.Output.Format, cfg.Output.File)
	return nil
}

func scanStdin(r io.Reader, cfg *config.Config) (*formatter.Report, error) {
	ft, err := colorextractor.ParseFileType(stdinType)
	if err != nil {
		return nil, err
	}

	content, err := io.ReadAll(io.LimitReader(r, cfg.MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if int64(len(content)) > cfg.MaxFileSize {
		return nil, fmt.Errorf("stdin exceeds max file size (%d bytes)", cfg.MaxFileSize)
	}

	colors := colorextractor.ExtractColors(string(content), string(ft))
	if cfg.MaxColors > 0 && len(colors) > cfg.MaxColors {
		colors = colors[:cfg.MaxColors]
	}

	target, _ := colorextractor.ParseTarget(cfg.Convert.Target)
	return &formatter.Report{
		ID:       uuid.NewString(),
		Title:    title,
		Colors:   colors,
		Analysis: colorextractor.Analyze(colors, cfg.MaxClusters),
		Target:   target,
		ShortHex: cfg.Convert.ShortHex,
	}, nil
}

func printSummary(w io.Writer, result *colorextractor.Result) {
	stats := result.Analysis.Statistics

	color.New(color.FgCyan).Fprintln(w, "\n📊 Extraction Summary:")
	fmt.Fprintf(w, "  • Files: %d scanned, %d skipped\n", len(result.Documents), len(result.Skipped))
	fmt.Fprintf(w, "  • Colors: %d total, %d unique\n", stats.Total, stats.Unique)
	for _, f := range stats.ByFormat {
		fmt.Fprintf(w, "    - %s: %d\n", f.Format, f.Count)
	}
	fmt.Fprintf(w, "  • Harmony: %s\n", result.Analysis.Harmony.Type)
	fmt.Fprintf(w, "  • Temperature: %s, Mood: %s\n", result.Analysis.Temperature, result.Analysis.Mood)
	if len(result.Analysis.Anomalies) > 0 {
		color.New(color.FgYellow).Fprintf(w, "  • Anomalies: %d\n", len(result.Analysis.Anomalies))
	}
}
