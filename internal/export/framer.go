package export

import (
	"time"

	"pagecraft/api/internal/design"
)

// The component-graph format is flat by design: the source tool models
// a shallow frame tree, so components are listed once and referenced by
// id from a single synthetic top-level frame.

const (
	framerVersion    = "1.0"
	framerFrameWidth = 1440
	framerRowHeight  = 400
)

type framerDocument struct {
	Version    string            `json:"version"`
	Name       string            `json:"name"`
	Metadata   framerMetadata    `json:"metadata"`
	Tokens     design.Tokens     `json:"designTokens"`
	Components []framerComponent `json:"components"`
	Frame      framerFrame       `json:"frame"`
}

type framerMetadata struct {
	ExportedAt string `json:"exportedAt"`
}

type framerComponent struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Type  string         `json:"type"`
	Props map[string]any `json:"props"`
}

type framerFrame struct {
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Children []string `json:"children"`
}

// buildComponentGraph renders the canonical model into the flat
// component-graph document. Tokens are passed through verbatim; the
// component's open Properties bag is merged last into props, so it can
// override the explicit geometry and color fields on key conflicts.
func buildComponentGraph(name string, components []design.Component, tokens design.Tokens, exportedAt time.Time) framerDocument {
	doc := framerDocument{
		Version:    framerVersion,
		Name:       name,
		Metadata:   framerMetadata{ExportedAt: exportedAt.UTC().Format(time.RFC3339)},
		Tokens:     tokens,
		Components: make([]framerComponent, 0, len(components)),
	}

	children := make([]string, 0, len(components))
	for _, c := range components {
		props := map[string]any{
			"x":               c.X,
			"y":               c.Y,
			"width":           c.Width,
			"height":          c.Height,
			"backgroundColor": c.BgColor,
			"textColor":       c.TextColor,
			"content":         c.Content,
		}
		for k, v := range c.Properties {
			props[k] = v
		}
		doc.Components = append(doc.Components, framerComponent{
			ID:    c.ID,
			Name:  c.Title,
			Type:  c.Type,
			Props: props,
		})
		children = append(children, c.ID)
	}

	doc.Frame = framerFrame{
		Width:    framerFrameWidth,
		Height:   framerRowHeight * len(components),
		Children: children,
	}
	return doc
}
