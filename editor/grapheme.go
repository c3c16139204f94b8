package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// truncate clips plain text to width terminal cells on a grapheme
// boundary, appending an ellipsis when anything was dropped.
// width <= 0 means no limit.
func truncate(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}

	var sb strings.Builder
	used := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := cellWidth(g.Str())
		if used+w > width-1 {
			break
		}
		sb.WriteString(g.Str())
		used += w
	}
	sb.WriteString("…")
	return sb.String()
}

func cellWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}
