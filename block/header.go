package block

import (
	"strconv"
	"strings"
)

// Header is a single editable heading block.
//
// One Header is constructed per block in the host document. The view
// is created lazily on the first Render and owns the live text from
// then on; the level is cached on the block and changes only through
// SetLevel (or a paste conversion).
type Header struct {
	settings Settings
	host     Host
	readOnly bool

	data  Data
	level int
	view  TextView
}

var _ Tool = (*Header)(nil)

// New constructs a heading block from a persisted JSON fragment.
// Malformed fragments normalize to an empty heading at the default
// level.
func New(raw []byte, cfg Config, host Host, readOnly bool) *Header {
	s := ResolveSettings(cfg)
	h := &Header{settings: s, host: host, readOnly: readOnly}
	h.data = DecodeData(raw, s)
	h.level = h.data.Level
	return h
}

// NewFromData is New for hosts that already hold a decoded Data value.
func NewFromData(d Data, cfg Config, host Host, readOnly bool) *Header {
	s := ResolveSettings(cfg)
	h := &Header{settings: s, host: host, readOnly: readOnly}
	h.data = Normalize(d, s)
	h.level = h.data.Level
	return h
}

// Settings returns the resolved tool settings.
func (h *Header) Settings() Settings { return h.settings }

// ReadOnly reports whether the block renders without editing.
func (h *Header) ReadOnly() bool { return h.readOnly }

// Level returns the active level with its tag and icon.
func (h *Header) Level() Level { return h.levelInfo(h.level) }

// Levels returns the selectable levels in configuration order.
func (h *Header) Levels() []Level {
	out := make([]Level, 0, len(h.settings.Allowed))
	for _, n := range h.settings.Allowed {
		out = append(out, h.levelInfo(n))
	}
	return out
}

// Render returns the block's view, creating it on first call. Repeat
// calls return the same live view until a level change rebuilds it.
func (h *Header) Render() TextView {
	if h.view != nil {
		return h.view
	}
	h.view = h.host.NewTextView(ViewSpec{
		Level:       h.levelInfo(h.level),
		Text:        h.data.Text,
		Placeholder: h.placeholder(),
		Editable:    !h.readOnly,
	})
	return h.view
}

// Save produces the persisted payload from live state. The text comes
// from the view when one exists; editing happens directly against it,
// so a cached copy could be stale.
func (h *Header) Save() Data {
	d := Data{Text: h.data.Text, Level: h.level}
	if h.view != nil {
		d.Text = h.view.Text()
	}
	return d
}

// Validate reports whether d is worth keeping. The host discards
// blocks whose text is blank; nothing else is checked here, since
// normalization already guarantees the level.
func (h *Header) Validate(d Data) bool {
	return strings.TrimSpace(d.Text) != ""
}

// Merge appends the text of a block being merged into this one. The
// level of this block wins.
func (h *Header) Merge(d Data) {
	v := h.Render()
	v.SetText(v.Text() + d.Text)
}

// SetLevel switches the block to level n. Requests for the current
// level or for a level outside the allowed set are ignored.
func (h *Header) SetLevel(n int) {
	if n == h.level || !h.settings.Allows(n) {
		return
	}
	h.level = n
	h.data.Level = n
	if h.view != nil {
		h.view.Replace(h.levelInfo(n))
	}
	h.host.SettingsChanged()
}

// SettingsEntry is one level toggle in the block settings panel. It is
// pure presentation derived from block state.
type SettingsEntry struct {
	Level  Level
	Title  string
	Active bool

	// Activate switches the block to this entry's level.
	Activate func()
}

// SettingsEntries builds one toggle per allowed level, the active one
// flagged.
func (h *Header) SettingsEntries() []SettingsEntry {
	out := make([]SettingsEntry, 0, len(h.settings.Allowed))
	for _, n := range h.settings.Allowed {
		out = append(out, SettingsEntry{
			Level:    h.levelInfo(n),
			Title:    h.host.Translate("Heading " + strconv.Itoa(n)),
			Active:   n == h.level,
			Activate: func() { h.SetLevel(n) },
		})
	}
	return out
}

func (h *Header) levelInfo(n int) Level {
	lv := Level{Number: n, Tag: LevelTag(n)}
	if h.host != nil {
		lv.Icon = h.host.Icon(n)
	}
	return lv
}

func (h *Header) placeholder() string {
	if h.settings.Placeholder == "" {
		return ""
	}
	return h.host.Translate(h.settings.Placeholder)
}
