package export

import (
	"fmt"
	"sort"
	"strings"

	"pagecraft/api/internal/design"
)

// The two responsive breakpoints are format constants, not derived from
// the input design.
const markupBreakpoints = `
@media (max-width: 768px) {
  .component { padding: 2.5rem 1.25rem; }
  .component h2 { font-size: 1.75rem; }
  .component p { font-size: 1rem; }
}

@media (max-width: 480px) {
  .component { padding: 1.5rem 1rem; }
  .component h2 { font-size: 1.5rem; }
  .component p { font-size: 0.9375rem; }
}
`

const markupBaseRules = `
* { margin: 0; padding: 0; box-sizing: border-box; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
  line-height: 1.6;
  color: #111111;
}

.component { padding: 4rem 2rem; }
.component h2 { font-size: 2.25rem; margin-bottom: 1rem; }
.component p { font-size: 1.125rem; max-width: 65ch; }
`

// RenderMarkup produces one self-contained HTML document: a style block
// with a CSS custom property per colors token, a baseline reset and
// typography rule-set, and one section per component in input order.
// Title and content are escaped; custom properties are emitted in
// sorted token-name order for byte-stable output.
func RenderMarkup(name string, components []design.Component, tokens design.Tokens) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", EscapeMarkup(name))
	b.WriteString("<style>\n")

	names := make([]string, 0, len(tokens.Colors))
	for tokenName := range tokens.Colors {
		names = append(names, tokenName)
	}
	sort.Strings(names)
	b.WriteString(":root {\n")
	for _, tokenName := range names {
		fmt.Fprintf(&b, "  --color-%s: %s;\n", strings.ToLower(tokenName), tokens.Colors[tokenName])
	}
	b.WriteString("}\n")

	b.WriteString(markupBaseRules)
	b.WriteString(markupBreakpoints)
	b.WriteString("</style>\n</head>\n<body>\n")

	for _, c := range components {
		fmt.Fprintf(&b,
			"<section class=\"component component-%s\" style=\"background-color: %s; color: %s; width: %s%%; height: %spx;\">\n",
			c.Type, c.BgColor, c.TextColor, cssNumber(c.Width), cssNumber(c.Height))
		fmt.Fprintf(&b, "<h2>%s</h2>\n", EscapeMarkup(c.Title))
		fmt.Fprintf(&b, "<p>%s</p>\n", EscapeMarkup(c.Content))
		b.WriteString("</section>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
