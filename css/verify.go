package css

import (
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Verify scans CSS text and returns the first grammar error, or nil when the
// text scans clean. It is a self-check on generated output, not a stylesheet
// parser - no AST is built.
func Verify(cssText string) error {
	input := parse.NewInput(strings.NewReader(cssText))
	parser := css.NewParser(input, false)

	for {
		gt, _, _ := parser.Next()
		if gt != css.ErrorGrammar {
			continue
		}
		if err := parser.Err(); err != nil && err != io.EOF {
			return fmt.Errorf("invalid css: %w", err)
		}
		return nil
	}
}
