package export

import (
	"fmt"
	"sort"
	"time"

	"pagecraft/api/internal/design"
)

// The node-document format expects coordinates in its own canvas space;
// the canonical model's percentage/pixel geometry is too small there,
// so frames are scaled up by a fixed 10:1 factor.
const figmaGeometryScale = 10

type figmaFile struct {
	Name         string       `json:"name"`
	LastModified string       `json:"lastModified"`
	Document     figmaNode    `json:"document"`
	Styles       []figmaStyle `json:"styles"`
}

type figmaNode struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Children    []figmaNode  `json:"children"`
	BoundingBox *figmaRect   `json:"absoluteBoundingBox,omitempty"`
	Fills       []figmaPaint `json:"fills,omitempty"`
	Characters  string       `json:"characters,omitempty"`
}

type figmaRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type figmaPaint struct {
	Type  string     `json:"type"`
	Color figmaColor `json:"color"`
}

type figmaColor struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

type figmaStyle struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	StyleType string     `json:"styleType"`
	Paint     figmaPaint `json:"paint"`
}

func solidPaint(hex string) figmaPaint {
	r, g, b := HexToRGB(hex).Normalized()
	return figmaPaint{
		Type:  "SOLID",
		Color: figmaColor{R: r, G: g, B: b, A: 1},
	}
}

// buildNodeDocument renders the canonical model as a single-document,
// single-canvas node tree: one FRAME per component, each with exactly
// one TEXT child carrying the raw content, plus one reusable color
// style per colors token so the palette imports independently of the
// component tree.
//
// Node ids are adapter-local sequential indices, not component ids, and
// stay stable for identical input order. Color styles are emitted in
// sorted token-name order so identical inputs always serialize to
// identical bytes.
func buildNodeDocument(name string, components []design.Component, tokens design.Tokens, exportedAt time.Time) figmaFile {
	canvas := figmaNode{
		ID:       "0:1",
		Name:     "Page 1",
		Type:     "CANVAS",
		Children: make([]figmaNode, 0, len(components)),
	}

	seq := 0
	nextID := func() string {
		id := fmt.Sprintf("1:%d", seq)
		seq++
		return id
	}

	for _, c := range components {
		frame := figmaNode{
			ID:   nextID(),
			Name: c.Title,
			Type: "FRAME",
			BoundingBox: &figmaRect{
				X:      c.X,
				Y:      c.Y,
				Width:  c.Width * figmaGeometryScale,
				Height: c.Height * figmaGeometryScale,
			},
			Fills: []figmaPaint{solidPaint(c.BgColor)},
		}
		frame.Children = []figmaNode{{
			ID:         nextID(),
			Name:       "Text",
			Type:       "TEXT",
			Children:   []figmaNode{},
			Characters: c.Content,
			Fills:      []figmaPaint{solidPaint(c.TextColor)},
		}}
		canvas.Children = append(canvas.Children, frame)
	}

	names := make([]string, 0, len(tokens.Colors))
	for tokenName := range tokens.Colors {
		names = append(names, tokenName)
	}
	sort.Strings(names)

	styles := make([]figmaStyle, 0, len(names))
	for i, tokenName := range names {
		styles = append(styles, figmaStyle{
			ID:        fmt.Sprintf("S:%d", i),
			Name:      "Color/" + tokenName,
			StyleType: "FILL",
			Paint:     solidPaint(tokens.Colors[tokenName]),
		})
	}

	return figmaFile{
		Name:         name,
		LastModified: exportedAt.UTC().Format(time.RFC3339),
		Document: figmaNode{
			ID:       "0:0",
			Name:     "Document",
			Type:     "DOCUMENT",
			Children: []figmaNode{canvas},
		},
		Styles: styles,
	}
}
