package export

import (
	"strconv"

	"pagecraft/api/internal/design"
)

type webflowExport struct {
	Site         webflowSite     `json:"site"`
	GlobalStyles design.Tokens   `json:"globalStyles"`
	Locales      []webflowLocale `json:"locales"`
}

type webflowSite struct {
	Name  string        `json:"name"`
	Pages []webflowPage `json:"pages"`
}

type webflowPage struct {
	Name  string        `json:"name"`
	Slug  string        `json:"slug"`
	Nodes []webflowNode `json:"nodes"`
}

type webflowNode struct {
	Tag      string            `json:"tag"`
	Text     string            `json:"text"`
	Classes  []string          `json:"classes"`
	Styles   map[string]string `json:"styles,omitempty"`
	Children []webflowNode     `json:"children"`
}

type webflowLocale struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Default bool   `json:"default"`
}

// cssNumber formats a numeric style value without a trailing ".0" for
// whole numbers.
func cssNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// buildCMSPage renders the canonical model as a site document with a
// single Home page. Each component becomes a div node positioned with
// inline styles, with one p child carrying the content. Token groups
// copy through unmodified under globalStyles, and the English default
// locale is attached unconditionally: the format always declares at
// least one locale even when the source design has no localization
// concept.
func buildCMSPage(name string, components []design.Component, tokens design.Tokens) webflowExport {
	nodes := make([]webflowNode, 0, len(components))
	for _, c := range components {
		nodes = append(nodes, webflowNode{
			Tag:     "div",
			Text:    c.Title,
			Classes: []string{"component-" + c.Type},
			Styles: map[string]string{
				"background-color": c.BgColor,
				"color":            c.TextColor,
				"width":            cssNumber(c.Width) + "%",
				"height":           cssNumber(c.Height) + "px",
				"left":             cssNumber(c.X) + "%",
				"top":              cssNumber(c.Y) + "px",
				"position":         "relative",
			},
			Children: []webflowNode{{
				Tag:      "p",
				Text:     c.Content,
				Classes:  []string{},
				Children: []webflowNode{},
			}},
		})
	}

	return webflowExport{
		Site: webflowSite{
			Name: name,
			Pages: []webflowPage{{
				Name:  "Home",
				Slug:  "index",
				Nodes: nodes,
			}},
		},
		GlobalStyles: tokens,
		Locales: []webflowLocale{{
			Name:    "English",
			Code:    "en",
			Default: true,
		}},
	}
}
