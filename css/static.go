package css

import (
	"regexp"
)

// whitespaceRun matches runs of two or more whitespace characters - the
// indentation noise of CSS pasted from hand-formatted sources.
var whitespaceRun = regexp.MustCompile(`\s{2,}`)

// CollapseWhitespace removes runs of two or more whitespace characters from
// raw static CSS text. Single spaces (selector combinators, media conditions)
// survive.
func CollapseWhitespace(cssText string) string {
	return whitespaceRun.ReplaceAllString(cssText, "")
}
