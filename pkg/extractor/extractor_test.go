package extractor

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kataras/color-extractor/pkg/converter"
)

func values(colors []converter.Color) []string {
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		out = append(out, c.Value)
	}
	return out
}

func formats(colors []converter.Color) []converter.Format {
	out := make([]converter.Format, 0, len(colors))
	for _, c := range colors {
		out = append(out, c.Format)
	}
	return out
}

func TestExtractCSS(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "commented token is excluded",
			content: ".c{color:#ff0000}/* #00ff00 */",
			want:    []string{"#ff0000"},
		},
		{
			name:    "multi-line comment",
			content: "a { color: #111; }\n/*\n  #222\n*/\nb { background: rgb(1, 2, 3) }",
			want:    []string{"#111", "rgb(1, 2, 3)"},
		},
		{
			name:    "hsla and 8-digit hex on one line",
			content: "x { color: hsla(120, 50%, 50%, 0.5); border: 1px solid #aabbcc80 }",
			want:    []string{"hsla(120, 50%, 50%, 0.5)", "#aabbcc80"},
		},
		{
			name:    "4 and 5 digit hex are not colors",
			content: "a { color: #abcd; background: #12345 }",
			want:    []string{},
		},
		{
			name:    "empty input",
			content: "",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := values(ExtractCSS(tt.content))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtractCSS() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractCSS_PositionAndContext(t *testing.T) {
	got := ExtractCSS("a {\n  color: #ABC;\n}")
	want := []converter.Color{{
		Value:    "#ABC",
		Format:   converter.FormatHex,
		Position: &converter.Position{Line: 2, Column: 10},
		Context:  "color",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractCSS() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractSCSSAndLESS_LineComments(t *testing.T) {
	scss := ExtractSCSS("$primary: #336699; // #ffffff")
	if diff := cmp.Diff([]string{"#336699"}, values(scss)); diff != "" {
		t.Errorf("ExtractSCSS() mismatch (-want +got):\n%s", diff)
	}
	if scss[0].Context != "$primary" {
		t.Errorf("ExtractSCSS() context = %q, want $primary", scss[0].Context)
	}

	less := ExtractLESS("@brand: #f00;\n// @old: #0f0;\n.a { background: url(https://cdn/x.png) #0f0 }")
	if diff := cmp.Diff([]string{"#f00", "#0f0"}, values(less)); diff != "" {
		t.Errorf("ExtractLESS() mismatch (-want +got):\n%s", diff)
	}
}

func TestLineComments_ProtocolRelativeURLs(t *testing.T) {
	tests := []struct {
		name        string
		extract     func(string) []converter.Color
		content     string
		want        []string
		wantContext string
	}{
		{
			name:        "scss bare url",
			extract:     ExtractSCSS,
			content:     ".a { background: url(//cdn.example.com/x.png) #ff0000; }",
			want:        []string{"#ff0000"},
			wantContext: "background",
		},
		{
			name:        "less quoted url",
			extract:     ExtractLESS,
			content:     `.b { background: url("//cdn.example.com/x.png") #00f; }`,
			want:        []string{"#00f"},
			wantContext: "background",
		},
		{
			name:        "stylus single quoted url",
			extract:     ExtractStylus,
			content:     "  background url('//cdn/x.png') #333",
			want:        []string{"#333"},
			wantContext: "background",
		},
		{
			name:        "javascript string",
			extract:     ExtractJavaScript,
			content:     `const s = { background: "url(//cdn/x.png)", color: "#ff0000" }`,
			want:        []string{"#ff0000"},
			wantContext: "color",
		},
		{
			name:    "comment after a closed url",
			extract: ExtractSCSS,
			content: ".a { background: url(//cdn/x.png); } // #ffffff",
			want:    []string{},
		},
		{
			name:    "comment after a closed string",
			extract: ExtractJavaScript,
			content: `const s = { color: "x" } // color: "#ffffff"`,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.extract(tt.content)
			if diff := cmp.Diff(tt.want, values(got)); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
			if len(got) > 0 && got[0].Context != tt.wantContext {
				t.Errorf("context = %q, want %q", got[0].Context, tt.wantContext)
			}
		})
	}
}

func TestIsColorProperty(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"color", true},
		{"background", true},
		{"background-color", true},
		{"backgroundColor", true},
		{"border-top", true},
		{"borderLeftColor", true},
		{"-webkit-box-shadow", true},
		{"text-shadow", true},
		{"textColor", true},
		{"stop-color", true},
		{"fill", true},
		{"unfilled", false},
		{"strokeCount", false},
		{"fillOpacity", false},
		{"border-radius", false},
		{"textAlign", false},
		{"https", false},
	}

	for _, tt := range tests {
		if got := isColorProperty(tt.name); got != tt.want {
			t.Errorf("isColorProperty(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestExtractStylus(t *testing.T) {
	content := strings.Join([]string{
		"$accent = red",
		".red-button",
		"  color white",
		"  background lighten(blue, 10%)",
		"  border 1px solid #333",
		"// color black",
		"  width 10px",
	}, "\n")

	got := ExtractStylus(content)
	if diff := cmp.Diff([]string{"red", "white", "blue", "#333"}, values(got)); diff != "" {
		t.Fatalf("ExtractStylus() mismatch (-want +got):\n%s", diff)
	}

	wantFormats := []converter.Format{converter.FormatNamed, converter.FormatNamed, converter.FormatNamed, converter.FormatHex}
	if diff := cmp.Diff(wantFormats, formats(got)); diff != "" {
		t.Errorf("ExtractStylus() formats mismatch (-want +got):\n%s", diff)
	}

	wantContexts := []string{"$accent", "color", "lighten", "border"}
	for i, c := range got {
		if c.Context != wantContexts[i] {
			t.Errorf("color %d context = %q, want %q", i, c.Context, wantContexts[i])
		}
	}
}

func TestExtractHTML(t *testing.T) {
	content := strings.Join([]string{
		`<div style="color: #ff0000; padding: 2px">`,
		`<a href="#00ff00">link</a>`,
		`<span id="abc" data-color="#0000ff">x</span>`,
		`<!-- <p style="color: #123456"></p> -->`,
		`<style>`,
		`  .x { background: #abcdef; }`,
		`</style>`,
		`<p>Plain #fedcba text</p>`,
		`<p>Use color: #010101 here</p>`,
		`<p>Set border: #222222; then #333333</p>`,
	}, "\n")

	got := ExtractHTML(content)
	want := []string{"#ff0000", "#abcdef", "#010101", "#222222"}
	if diff := cmp.Diff(want, values(got)); diff != "" {
		t.Fatalf("ExtractHTML() mismatch (-want +got):\n%s", diff)
	}
	if got[0].Context != "color" {
		t.Errorf("style attribute context = %q, want color", got[0].Context)
	}
	if got[1].Position.Line != 6 {
		t.Errorf("style block color line = %d, want 6", got[1].Position.Line)
	}
}

func TestExtractHTML_MultiLineComment(t *testing.T) {
	content := "<!--\n<div style=\"color: #111\">\n-->\n<div style=\"color: #222\">"
	if diff := cmp.Diff([]string{"#222"}, values(ExtractHTML(content))); diff != "" {
		t.Errorf("ExtractHTML() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractJavaScript(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "url fragment is not a color",
			content: "const url='https://x/#ff0000';",
			want:    []string{},
		},
		{
			name:    "unrelated id string",
			content: "const id = '#abcdef';",
			want:    []string{},
		},
		{
			name:    "duplicate value on one line is reported once",
			content: "const colors = { a: '#fff', b: '#fff' }",
			want:    []string{"#fff"},
		},
		{
			name:    "color variable",
			content: `const buttonColor = "rgb(10, 20, 30)";`,
			want:    []string{"rgb(10, 20, 30)"},
		},
		{
			name:    "commented out",
			content: "// color: '#000000'\n/* background: #111111 */",
			want:    []string{},
		},
		{
			name:    "property ending in a keyword",
			content: `const s = { unfilled: "#abc" }`,
			want:    []string{},
		},
		{
			name:    "property starting with a keyword",
			content: `const s = { strokeCount: "#abc" }`,
			want:    []string{},
		},
		{
			name:    "non-color property after a color property",
			content: `const s = { color: "#fff", id: "#abc" }`,
			want:    []string{"#fff"},
		},
		{
			name:    "camelCase color property",
			content: `const s = { borderTopColor: "#abc" }`,
			want:    []string{"#abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := values(ExtractJavaScript(tt.content))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtractJavaScript() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractJavaScript_Contexts(t *testing.T) {
	content := strings.Join([]string{
		"const theme = {",
		"  colors: {",
		"    primary: '#3366ff',",
		`    danger: "red",`,
		"  },",
		"};",
		"// color: '#000000'",
		"/* background: #111111 */",
		`const buttonColor = "rgb(10, 20, 30)";`,
		"const id = '#abcdef';",
		"const Button = styled.button`",
		"  color: #fafafa;",
		"  border: 1px solid hsl(200, 50%, 40%);",
		"`;",
		"const other = '#999999';",
	}, "\n")

	got := ExtractTypeScript(content)

	wantValues := []string{"#3366ff", "red", "rgb(10, 20, 30)", "#fafafa", "hsl(200, 50%, 40%)"}
	if diff := cmp.Diff(wantValues, values(got)); diff != "" {
		t.Fatalf("ExtractTypeScript() mismatch (-want +got):\n%s", diff)
	}

	wantFormats := []converter.Format{
		converter.FormatHex, converter.FormatNamed, converter.FormatRGB,
		converter.FormatHex, converter.FormatHSL,
	}
	if diff := cmp.Diff(wantFormats, formats(got)); diff != "" {
		t.Errorf("formats mismatch (-want +got):\n%s", diff)
	}

	wantContexts := []string{"primary", "danger", "buttonColor", "color", "border"}
	for i, c := range got {
		if c.Context != wantContexts[i] {
			t.Errorf("color %d (%s) context = %q, want %q", i, c.Value, c.Context, wantContexts[i])
		}
	}
}

func TestExtractSVG(t *testing.T) {
	content := strings.Join([]string{
		`<svg xmlns="http://www.w3.org/2000/svg">`,
		`  <!-- <rect fill="#000000"/> -->`,
		`  <style>`,
		`    .a { fill: #112233; }`,
		`  </style>`,
		`  <rect fill="#ff0000" stroke='blue' data-fill="#999999"/>`,
		`  <circle style="fill: rgb(0, 128, 0)" fill="none"/>`,
		`  <use href="#abc"/>`,
		`  <linearGradient><stop stop-color="hsl(10, 50%, 50%)"/></linearGradient>`,
		`  <path fill="url(#grad)" stroke="inherit"/>`,
		`  <text>Swatch #445566</text>`,
		`</svg>`,
	}, "\n")

	got := ExtractSVG(content)
	want := []string{
		"#112233", "#ff0000", "blue", "rgb(0, 128, 0)",
		"hsl(10, 50%, 50%)", "url(#grad)", "inherit", "#445566",
	}
	if diff := cmp.Diff(want, values(got)); diff != "" {
		t.Fatalf("ExtractSVG() mismatch (-want +got):\n%s", diff)
	}

	wantContexts := []string{"fill", "fill", "stroke", "fill", "stop-color", "fill", "stroke", "text"}
	for i, c := range got {
		if c.Context != wantContexts[i] {
			t.Errorf("color %d (%s) context = %q, want %q", i, c.Value, c.Context, wantContexts[i])
		}
	}

	if got[2].Format != converter.FormatNamed {
		t.Errorf("blue format = %q, want named", got[2].Format)
	}
	if got[5].Format != converter.FormatUnknown {
		t.Errorf("url(#grad) format = %q, want unknown", got[5].Format)
	}
}

func TestResultsAreOrderedByPosition(t *testing.T) {
	content := "a { color: #111; background: #222 }\nb { color: #333 }"
	got := ExtractCSS(content)
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1].Position, got[i].Position
		if cur.Line < prev.Line || (cur.Line == prev.Line && cur.Column <= prev.Column) {
			t.Errorf("colors out of order at %d: %+v then %+v", i, prev, cur)
		}
	}
}

func TestScanLines_RecoversPerLine(t *testing.T) {
	got := scanLines("one\ntwo\nthree", func(lineNo int, line string) []match {
		if lineNo == 2 {
			panic("boom")
		}
		return []match{{value: line, start: 0, format: converter.FormatUnknown}}
	})
	if diff := cmp.Diff([]string{"one", "three"}, values(got)); diff != "" {
		t.Errorf("scanLines() mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatch(t *testing.T) {
	css := ".c{color:#ff0000}"

	tests := []struct {
		name string
		ft   FileType
		want []string
	}{
		{"css", FileTypeCSS, []string{"#ff0000"}},
		{"unknown falls back to css", FileTypeUnknown, []string{"#ff0000"}},
		{"unsupported falls back to css", FileType("vue"), []string{"#ff0000"}},
		{"html requires style context", FileTypeHTML, []string{"#ff0000"}},
		{"svg text", FileTypeSVG, []string{"#ff0000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, values(Extract(css, tt.ft))); diff != "" {
				t.Errorf("Extract(%s) mismatch (-want +got):\n%s", tt.ft, diff)
			}
		})
	}

	if got := Extract("plain #abcdef text", FileTypeHTML); len(got) != 0 {
		t.Errorf("Extract(html) on plain text = %v, want none", values(got))
	}
}

func TestParseFileType(t *testing.T) {
	tests := []struct {
		input   string
		want    FileType
		wantErr bool
	}{
		{"css", FileTypeCSS, false},
		{".SCSS", FileTypeSCSS, false},
		{"styl", FileTypeStylus, false},
		{"tsx", FileTypeTypeScript, false},
		{"js", FileTypeJavaScript, false},
		{"unknown", FileTypeUnknown, false},
		{"cobol", FileTypeUnknown, true},
	}
	for _, tt := range tests {
		got, err := ParseFileType(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFileType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFileType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestConcurrentExtraction(t *testing.T) {
	content := "const Button = styled.div`\n  color: #fafafa;\n`;\nconst c = { colors: { a: 'red' } }"
	want := values(ExtractJavaScript(content))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if diff := cmp.Diff(want, values(ExtractJavaScript(content))); diff != "" {
				t.Errorf("concurrent ExtractJavaScript() mismatch (-want +got):\n%s", diff)
			}
		}()
	}
	wg.Wait()
}
