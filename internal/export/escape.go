package export

import "strings"

// markupEscaper rewrites the five HTML-significant characters in a
// single pass, so ampersands produced by one substitution are never
// re-escaped by another.
var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeMarkup escapes user-authored text for embedding in markup
// output. JSON payloads never need it; encoding/json already guarantees
// safety there.
func EscapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}
