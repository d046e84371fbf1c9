package export

import (
	"testing"

	"pagecraft/api/internal/design"
)

func TestCMSPageLayout(t *testing.T) {
	doc := buildCMSPage("Landing", testComponents(), testTokens())

	if doc.Site.Name != "Landing" {
		t.Errorf("site name = %q", doc.Site.Name)
	}
	if len(doc.Site.Pages) != 1 {
		t.Fatalf("expected one page, got %d", len(doc.Site.Pages))
	}
	page := doc.Site.Pages[0]
	if page.Name != "Home" || page.Slug != "index" {
		t.Errorf("page = %q/%q, want Home/index", page.Name, page.Slug)
	}
	if len(page.Nodes) != 2 {
		t.Fatalf("expected one node per component, got %d", len(page.Nodes))
	}
}

func TestCMSPageNodeShape(t *testing.T) {
	doc := buildCMSPage("Landing", testComponents(), testTokens())
	node := doc.Site.Pages[0].Nodes[0]

	if node.Tag != "div" {
		t.Errorf("node tag = %q", node.Tag)
	}
	if node.Text != "Welcome" {
		t.Errorf("node text = %q, want the component title", node.Text)
	}
	if len(node.Classes) != 1 || node.Classes[0] != "component-hero" {
		t.Errorf("node classes = %v", node.Classes)
	}

	wantStyles := map[string]string{
		"background-color": "#3B82F6",
		"color":            "#FFFFFF",
		"width":            "100%",
		"height":           "400px",
		"left":             "0%",
		"top":              "0px",
		"position":         "relative",
	}
	for k, want := range wantStyles {
		if got := node.Styles[k]; got != want {
			t.Errorf("style %s = %q, want %q", k, got, want)
		}
	}

	if len(node.Children) != 1 {
		t.Fatalf("expected exactly one markup child, got %d", len(node.Children))
	}
	child := node.Children[0]
	if child.Tag != "p" || child.Text != "Build faster." {
		t.Errorf("child = %+v", child)
	}
}

func TestCMSPageFractionalGeometry(t *testing.T) {
	components := []design.Component{{
		ID: "c1", Type: "hero", Width: 33.5, Height: 250, X: 2.25, Y: 10,
	}}
	node := buildCMSPage("Landing", components, design.Tokens{}.Normalized()).Site.Pages[0].Nodes[0]

	if node.Styles["width"] != "33.5%" {
		t.Errorf("width = %q", node.Styles["width"])
	}
	if node.Styles["left"] != "2.25%" {
		t.Errorf("left = %q", node.Styles["left"])
	}
}

func TestCMSPageGlobalStylesAndLocale(t *testing.T) {
	tokens := testTokens()
	doc := buildCMSPage("Landing", nil, tokens)

	if doc.GlobalStyles.Colors["Primary"] != "#3B82F6" {
		t.Errorf("globalStyles not copied through: %+v", doc.GlobalStyles)
	}
	if doc.GlobalStyles.Spacing["section"] != "64px" {
		t.Errorf("spacing group missing: %+v", doc.GlobalStyles.Spacing)
	}

	if len(doc.Locales) != 1 {
		t.Fatalf("locales = %+v", doc.Locales)
	}
	locale := doc.Locales[0]
	if locale.Name != "English" || locale.Code != "en" || !locale.Default {
		t.Errorf("locale = %+v", locale)
	}
}

func TestCMSPageLocaleAttachedForEmptyDesign(t *testing.T) {
	doc := buildCMSPage("Empty", nil, design.Tokens{}.Normalized())
	if len(doc.Locales) != 1 {
		t.Errorf("the format always declares at least one locale, got %+v", doc.Locales)
	}
	if len(doc.Site.Pages[0].Nodes) != 0 {
		t.Errorf("empty design nodes = %+v", doc.Site.Pages[0].Nodes)
	}
}
