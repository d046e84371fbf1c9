// Package design defines the canonical design model that the export
// engine renders from: an ordered list of positioned components plus a
// design-token set. The model is produced upstream (by the prompt
// pipeline) and is treated as immutable for the duration of an export.
package design

// Component is one positioned block of a website design.
//
// X and Width are percentages of the container width; Y and Height are
// absolute pixels. BgColor and TextColor are hex strings and are not
// guaranteed to be valid. Properties is an open bag of extra attributes
// that format adapters merge verbatim into their output where the
// target format has a place for them.
type Component struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	BgColor    string         `json:"bgColor"`
	TextColor  string         `json:"textColor"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Tokens is the design-token set shared across components. Every group
// is optional on input; adapters must never fail on an absent group.
type Tokens struct {
	Colors     map[string]string `json:"colors"`
	Typography map[string]string `json:"typography"`
	Spacing    map[string]string `json:"spacing"`
}

// Normalized returns a copy of the token set with nil groups replaced
// by empty maps, so downstream code can range and marshal without nil
// checks and token sections are always present in serialized output.
func (t Tokens) Normalized() Tokens {
	if t.Colors == nil {
		t.Colors = map[string]string{}
	}
	if t.Typography == nil {
		t.Typography = map[string]string{}
	}
	if t.Spacing == nil {
		t.Spacing = map[string]string{}
	}
	return t
}
