package export

import (
	"strings"
	"testing"
)

func TestEscapeMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no special characters", "Hello world", "Hello world"},
		{"empty", "", ""},
		{"ampersand", "Fish & Chips", "Fish &amp; Chips"},
		{"angle brackets", "<div>", "&lt;div&gt;"},
		{"double quote", `say "hi"`, "say &quot;hi&quot;"},
		{"single quote", "it's", "it&#39;s"},
		{"all five", `&<>"'`, "&amp;&lt;&gt;&quot;&#39;"},
		{"single pass on pre-escaped input", "&amp;", "&amp;amp;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeMarkup(tt.input); got != tt.want {
				t.Errorf("EscapeMarkup(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeMarkupNeutralizesScript(t *testing.T) {
	got := EscapeMarkup(`<script>alert("x")</script>`)
	if strings.ContainsAny(got, "<>") {
		t.Errorf("escaped output still contains angle brackets: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("expected entity-encoded script tag, got %q", got)
	}
}
