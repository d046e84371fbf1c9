package export

import (
	"testing"
	"time"

	"pagecraft/api/internal/design"
)

func TestNodeDocumentGeometryScale(t *testing.T) {
	components := []design.Component{{
		ID: "c1", Type: "hero", Title: "Hero", Content: "Hi",
		X: 5, Y: 120, Width: 100, Height: 400,
		BgColor: "#3B82F6", TextColor: "#FFFFFF",
	}}

	file := buildNodeDocument("Landing", components, design.Tokens{}.Normalized(), time.Now())
	canvas := file.Document.Children[0]
	if len(canvas.Children) != 1 {
		t.Fatalf("expected one frame, got %d", len(canvas.Children))
	}

	box := canvas.Children[0].BoundingBox
	if box == nil {
		t.Fatal("frame has no bounding box")
	}
	if box.Width != 1000 || box.Height != 4000 {
		t.Errorf("frame size = %vx%v, want 1000x4000", box.Width, box.Height)
	}
	if box.X != 5 || box.Y != 120 {
		t.Errorf("frame position = (%v, %v), want (5, 120)", box.X, box.Y)
	}
}

func TestNodeDocumentStructure(t *testing.T) {
	file := buildNodeDocument("Landing", testComponents(), testTokens(), time.Now())

	if file.Document.Type != "DOCUMENT" || file.Document.ID != "0:0" {
		t.Errorf("document node = %+v", file.Document)
	}
	if len(file.Document.Children) != 1 {
		t.Fatalf("expected single canvas, got %d", len(file.Document.Children))
	}
	canvas := file.Document.Children[0]
	if canvas.Type != "CANVAS" {
		t.Errorf("canvas type = %q", canvas.Type)
	}

	for i, frame := range canvas.Children {
		if frame.Type != "FRAME" {
			t.Errorf("child %d type = %q, want FRAME", i, frame.Type)
		}
		if len(frame.Children) != 1 || frame.Children[0].Type != "TEXT" {
			t.Errorf("frame %d must have exactly one TEXT child: %+v", i, frame.Children)
		}
	}

	text := canvas.Children[0].Children[0]
	if text.Characters != "Build faster." {
		t.Errorf("text characters = %q", text.Characters)
	}
}

func TestNodeDocumentSequentialIDsStable(t *testing.T) {
	a := buildNodeDocument("Landing", testComponents(), testTokens(), time.Now())
	b := buildNodeDocument("Landing", testComponents(), testTokens(), time.Now())

	canvasA := a.Document.Children[0]
	canvasB := b.Document.Children[0]
	wantIDs := []string{"1:0", "1:2"}
	for i, frame := range canvasA.Children {
		if frame.ID != wantIDs[i] {
			t.Errorf("frame %d id = %q, want %q", i, frame.ID, wantIDs[i])
		}
		if frame.ID != canvasB.Children[i].ID {
			t.Errorf("node ids not stable across identical inputs: %q vs %q", frame.ID, canvasB.Children[i].ID)
		}
	}
	if canvasA.Children[0].Children[0].ID != "1:1" {
		t.Errorf("text id = %q, want 1:1", canvasA.Children[0].Children[0].ID)
	}
}

func TestNodeDocumentFills(t *testing.T) {
	file := buildNodeDocument("Landing", testComponents(), testTokens(), time.Now())
	frame := file.Document.Children[0].Children[0]

	if len(frame.Fills) != 1 || frame.Fills[0].Type != "SOLID" {
		t.Fatalf("frame fills = %+v", frame.Fills)
	}
	c := frame.Fills[0].Color
	if c.R != 59.0/255 || c.G != 130.0/255 || c.B != 246.0/255 || c.A != 1 {
		t.Errorf("frame fill color = %+v", c)
	}
}

func TestNodeDocumentColorStyles(t *testing.T) {
	file := buildNodeDocument("Landing", nil, testTokens(), time.Now())

	if len(file.Styles) != 2 {
		t.Fatalf("expected one style per colors token, got %d", len(file.Styles))
	}
	// Sorted by token name for stable output.
	if file.Styles[0].Name != "Color/Primary" || file.Styles[1].Name != "Color/surface" {
		t.Errorf("style names = %q, %q", file.Styles[0].Name, file.Styles[1].Name)
	}
	for _, style := range file.Styles {
		if style.StyleType != "FILL" {
			t.Errorf("style %q type = %q", style.Name, style.StyleType)
		}
	}
}

func TestNodeDocumentEmptyDesign(t *testing.T) {
	file := buildNodeDocument("Empty", nil, design.Tokens{}.Normalized(), time.Now())
	canvas := file.Document.Children[0]
	if len(canvas.Children) != 0 {
		t.Errorf("empty design canvas children = %+v", canvas.Children)
	}
	if len(file.Styles) != 0 {
		t.Errorf("empty design styles = %+v", file.Styles)
	}
}
