package block

import "github.com/blockpress/headline/internal/htmlfrag"

// OnPaste converts a pasted h1..h6 fragment into this block's data:
// the element's text content becomes the text, and its tag level is
// clamped against the allowed set exactly like persisted data. This is
// how foreign heading markup survives a paste as a heading instead of
// degrading to plain text.
//
// Fragments without an element, or with a non-heading element, leave
// the block untouched. Hosts only route the subscribed tags here, but
// the operation stays total regardless.
func (h *Header) OnPaste(fragment string) {
	tag, text, ok := htmlfrag.ParseElement(fragment)
	if !ok {
		return
	}
	n, ok := TagLevel(tag)
	if !ok {
		return
	}

	d := Normalize(Data{Text: text, Level: n}, h.settings)
	levelChanged := d.Level != h.level
	h.data = d
	h.level = d.Level
	if h.view != nil {
		if levelChanged {
			h.view.Replace(h.levelInfo(h.level))
		}
		h.view.SetText(d.Text)
	}
	if levelChanged {
		h.host.SettingsChanged()
	}
}
