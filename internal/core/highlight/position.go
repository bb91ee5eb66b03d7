package highlight

import "encoding/json"

// Position is the anchor descriptor captured when a highlight is created:
// the text content of the containing segments plus in-segment offsets.
// It is advisory only. Chapter content is regenerated from source on every
// load, so the descriptor is not guaranteed to stay valid; re-anchoring
// treats it as a hint, never as ground truth.
type Position struct {
	StartContainerText string `json:"startContainerText"`
	StartOffset        int    `json:"startOffset"`
	EndContainerText   string `json:"endContainerText"`
	EndOffset          int    `json:"endOffset"`
}

// Encode serializes the descriptor for storage and the wire.
// A nil descriptor encodes to the empty string.
func (p *Position) Encode() string {
	if p == nil {
		return ""
	}
	data, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	return string(data)
}

// DecodePosition parses a stored descriptor. Empty or malformed input
// yields nil: a record without a usable descriptor anchors by first match.
func DecodePosition(s string) *Position {
	if s == "" {
		return nil
	}
	var p Position
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return nil
	}
	return &p
}
