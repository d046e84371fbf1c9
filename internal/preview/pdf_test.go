package preview

import "testing"

func TestPercentEncode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello world", "hello%20world"},
		{"test+sign", "test%2Bsign"},
		{"special<>", "special%3C%3E"},
		{"normal-text.txt", "normal-text.txt"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := percentEncode(tt.input); got != tt.expected {
				t.Errorf("percentEncode(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "Hello-World.pdf"},
		{"My Landing v1.2", "My-Landing-v12.pdf"},
		{"Special!@#$%Chars", "SpecialChars.pdf"},
		{"", "preview.pdf"},
		{"Very Long Project Name That Exceeds Fifty Characters Limit", "Very-Long-Project-Name-That-Exceeds-Fifty-Characte.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := FileName(tt.input); got != tt.expected {
				t.Errorf("FileName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
