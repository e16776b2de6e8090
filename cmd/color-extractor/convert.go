package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kataras/color-extractor/pkg/converter"
)

var (
	convertTo  string
	shortHex   bool
	dropAlpha  bool
	noSwatches bool
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <color>...",
		Short: "Convert colors between hex, rgb, hsl and oklch",
		Example: `  color-extractor convert "#ff0000" --to hsl
  color-extractor convert "rgba(0, 0, 255, 0.5)" tomato --to hex --short`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := converter.ParseTarget(convertTo)
			if err != nil {
				return err
			}
			opts := converter.ConvertOptions{
				Target:    target,
				ShortHex:  shortHex,
				DropAlpha: dropAlpha,
			}

			width := 0
			for _, value := range args {
				width = max(width, runewidth.StringWidth(value))
			}
			swatches := !noSwatches && isTerminal(cmd.OutOrStdout())

			failed := 0
			for _, value := range args {
				result := converter.ConvertColor(value, opts)
				if !result.Success {
					failed++
					color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "✗ %s\n", result.Error)
					continue
				}
				printConversion(cmd.OutOrStdout(), result, width, swatches)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d color(s) could not be converted", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&convertTo, "to", "t", "hex", "Target format: hex, rgb, hsl, oklch")
	cmd.Flags().BoolVar(&shortHex, "short", false, "Use 3-digit hex when possible")
	cmd.Flags().BoolVar(&dropAlpha, "drop-alpha", false, "Discard the alpha channel")
	cmd.Flags().BoolVar(&noSwatches, "no-swatch", false, "Do not print color swatches on a terminal")
	return cmd
}

func newContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Print the WCAG contrast ratio of two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, bg := args[0], args[1]
			for _, v := range args {
				if _, ok := converter.ParseColor(v); !ok {
					return fmt.Errorf("unable to parse color %q", v)
				}
			}

			ratio := converter.ContrastRatio(fg, bg)
			level := converter.WCAGLevel(ratio)

			levelColor := color.New(color.FgGreen)
			switch level {
			case "AA Large":
				levelColor = color.New(color.FgYellow)
			case "Fail":
				levelColor = color.New(color.FgRed)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s on %s: %.2f:1 ", fg, bg, ratio)
			levelColor.Fprintln(w, level)
			return nil
		},
	}
}

// printConversion writes one "original → converted" line, with the
// originals padded to width display columns.
func printConversion(w io.Writer, result converter.ConversionResult, width int, swatch bool) {
	if swatch {
		if c, ok := converter.ParseColor(result.Original); ok {
			fmt.Fprint(w, color.BgRGB(int(c.R), int(c.G), int(c.B)).Sprint("   "), " ")
		}
	}
	fmt.Fprintf(w, "%s → %s\n", runewidth.FillRight(result.Original, width), result.Converted)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
