package block

import "encoding/json"

// Normalize resolves d into a well-formed Data: the text is kept
// verbatim and the level is clamped into s.Allowed. Malformed values
// are corrected, never rejected — bad persisted data must not take the
// editor down.
func Normalize(d Data, s Settings) Data {
	return Data{
		Text:  d.Text,
		Level: s.Clamp(d.Level),
	}
}

// DecodeData reads a persisted JSON fragment into a normalized Data.
//
// Any shape is absorbed: a missing or non-object fragment, a non-string
// text, or a non-numeric level all fall back to the empty text and the
// default level.
func DecodeData(raw []byte, s Settings) Data {
	var probe struct {
		Text  any `json:"text"`
		Level any `json:"level"`
	}

	var d Data
	if len(raw) > 0 && json.Unmarshal(raw, &probe) == nil {
		if t, ok := probe.Text.(string); ok {
			d.Text = t
		}
		if f, ok := probe.Level.(float64); ok {
			d.Level = int(f)
		}
	}
	return Normalize(d, s)
}
