// Package export renders the canonical design model into the native
// shape of four external tools and persists the rendered artifact
// through a blob store. Each format has its own adapter; adapters never
// call each other and share no state.
package export

import (
	"errors"
	"fmt"

	"pagecraft/api/internal/design"
)

// Format selects the target tool for an export.
type Format string

const (
	// FormatFramer is the flat component-graph format.
	FormatFramer Format = "framer"
	// FormatFigma is the node-document format.
	FormatFigma Format = "figma"
	// FormatWebflow is the CMS-page format.
	FormatWebflow Format = "webflow"
	// FormatHTML is the static markup+stylesheet format.
	FormatHTML Format = "html"
)

// ParseFormat validates a raw format selector.
func ParseFormat(raw string) (Format, bool) {
	switch f := Format(raw); f {
	case FormatFramer, FormatFigma, FormatWebflow, FormatHTML:
		return f, true
	}
	return "", false
}

// Request contains the inputs for one export invocation. Components are
// rendered in input order; Tokens groups may be nil.
type Request struct {
	ProjectName string
	Format      Format
	Components  []design.Component
	Tokens      design.Tokens
}

// ExportResult describes a persisted export artifact.
type ExportResult struct {
	URL      string `json:"url"`
	FileKey  string `json:"fileKey"`
	Format   Format `json:"format"`
	FileName string `json:"fileName"`
}

// ErrUnknownFormat indicates a format selector outside the supported
// set. The dispatcher fails with it before any adapter runs.
var ErrUnknownFormat = errors.New("unknown export format")

// Error wraps an adapter or storage failure with the target format for
// diagnostics. The engine does not distinguish the two further and does
// not retry.
type Error struct {
	Format Format
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("export %s failed: %v", e.Format, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
