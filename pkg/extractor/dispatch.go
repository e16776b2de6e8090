package extractor

import (
	"github.com/kataras/color-extractor/pkg/converter"
)

// For returns the extractor for a file type. Unknown or unsupported types
// fall back to the CSS extractor.
func For(ft FileType) Func {
	switch ft {
	case FileTypeCSS:
		return ExtractCSS
	case FileTypeSCSS:
		return ExtractSCSS
	case FileTypeLESS:
		return ExtractLESS
	case FileTypeStylus:
		return ExtractStylus
	case FileTypeHTML:
		return ExtractHTML
	case FileTypeJavaScript:
		return ExtractJavaScript
	case FileTypeTypeScript:
		return ExtractTypeScript
	case FileTypeSVG:
		return ExtractSVG
	default:
		return ExtractCSS
	}
}

// Extract runs the extractor matching ft over content.
func Extract(content string, ft FileType) []converter.Color {
	return For(ft)(content)
}
