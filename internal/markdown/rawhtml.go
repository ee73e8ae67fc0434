package markdown

import "regexp"

// rawHTMLMarker captures spans wrapped in <!--! ... !--> so their content is
// handed to the renderer verbatim. (?s) lets the span cross line boundaries.
var rawHTMLMarker = regexp.MustCompile(`(?s)<!--!(.*?)!-->`)

// UnescapeRawHTML strips the marker delimiters from every raw-HTML span,
// leaving the inner content untouched. It runs after asset promotion and
// before rendering so author-supplied HTML is not escaped as markdown.
func UnescapeRawHTML(body string) string {
	return rawHTMLMarker.ReplaceAllString(body, "$1")
}
