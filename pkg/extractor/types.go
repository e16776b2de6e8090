// Package extractor finds color literals in stylesheets, markup, scripts and
// SVG documents.
//
// Every extractor scans its input line by line and returns the colors in
// order of appearance. Context heuristics decide whether a matched literal is
// a real color usage; anything that does not pass is silently dropped, so an
// extractor never returns an error.
package extractor

import (
	"fmt"
	"strings"

	"github.com/kataras/color-extractor/pkg/converter"
)

// FileType selects the extractor for a document.
type FileType string

const (
	FileTypeCSS        FileType = "css"
	FileTypeSCSS       FileType = "scss"
	FileTypeLESS       FileType = "less"
	FileTypeStylus     FileType = "stylus"
	FileTypeHTML       FileType = "html"
	FileTypeJavaScript FileType = "javascript"
	FileTypeTypeScript FileType = "typescript"
	FileTypeSVG        FileType = "svg"
	FileTypeUnknown    FileType = "unknown"
)

// FileTypes lists every supported file type, unknown last.
var FileTypes = []FileType{
	FileTypeCSS, FileTypeSCSS, FileTypeLESS, FileTypeStylus,
	FileTypeHTML, FileTypeJavaScript, FileTypeTypeScript, FileTypeSVG,
	FileTypeUnknown,
}

var fileTypeAliases = map[string]FileType{
	"styl": FileTypeStylus,
	"htm":  FileTypeHTML,
	"js":   FileTypeJavaScript,
	"jsx":  FileTypeJavaScript,
	"mjs":  FileTypeJavaScript,
	"cjs":  FileTypeJavaScript,
	"ts":   FileTypeTypeScript,
	"tsx":  FileTypeTypeScript,
}

// ParseFileType resolves a file type name or common alias ("js", "tsx", ...).
func ParseFileType(s string) (FileType, error) {
	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	for _, ft := range FileTypes {
		if string(ft) == name {
			return ft, nil
		}
	}
	if ft, ok := fileTypeAliases[name]; ok {
		return ft, nil
	}
	return FileTypeUnknown, fmt.Errorf("unsupported file type %q", s)
}

// Func extracts the colors found in content.
type Func func(content string) []converter.Color
