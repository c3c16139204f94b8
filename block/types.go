package block

import "strconv"

// Data is the persisted shape of a heading block: one JSON object per
// block instance inside the host document's block array.
type Data struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// Icon is an opaque per-level icon handle supplied by the host's UI
// toolkit. Blocks embed it without interpretation.
type Icon string

// Level describes one selectable heading level. Derived from settings,
// never persisted.
type Level struct {
	Number int
	Tag    string
	Icon   Icon
}

// MinLevel and MaxLevel bound the fixed heading universe.
const (
	MinLevel = 1
	MaxLevel = 6
)

// LevelTag maps a level number to its heading tag ("H1".."H6").
// Numbers outside the universe clamp to the nearest bound, so the
// mapping is total.
func LevelTag(n int) string {
	if n < MinLevel {
		n = MinLevel
	}
	if n > MaxLevel {
		n = MaxLevel
	}
	return "H" + strconv.Itoa(n)
}

// TagLevel is the inverse of LevelTag. Matching is case-insensitive;
// ok is false for anything that is not a heading tag.
func TagLevel(tag string) (n int, ok bool) {
	if len(tag) != 2 || (tag[0] != 'H' && tag[0] != 'h') {
		return 0, false
	}
	n = int(tag[1] - '0')
	if n < MinLevel || n > MaxLevel {
		return 0, false
	}
	return n, true
}
