package css

import (
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// FontFormat infers the CSS @font-face format() hint from a font file path.
// Unknown extensions are passed through as-is so the browser still gets a
// chance to recognize them.
func FontFormat(path string) string {
	switch ext := fontExt(path); ext {
	case "woff":
		return "woff"
	case "woff2":
		return "woff2"
	case "ttf":
		return "truetype"
	case "otf":
		return "opentype"
	case "eot":
		return "embedded-opentype"
	case "svg", "svgz":
		return "svg"
	default:
		return ext
	}
}

// ValidFontData checks font file content against the format its path extension
// promises. Extensions without a known magic number pass unchecked.
func ValidFontData(path string, data []byte) bool {
	switch fontExt(path) {
	case "woff":
		return filetype.Is(data, "woff")
	case "woff2":
		return filetype.Is(data, "woff2")
	case "ttf":
		return filetype.Is(data, "ttf")
	case "otf":
		return filetype.Is(data, "otf")
	}
	return true
}

func fontExt(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
