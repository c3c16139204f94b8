package block

import (
	"reflect"
	"testing"
)

// stringView is a TextView double backed by a plain string.
type stringView struct {
	spec     ViewSpec
	text     string
	level    Level
	replaced int
}

func (v *stringView) Text() string        { return v.text }
func (v *stringView) SetText(text string) { v.text = text }
func (v *stringView) Replace(level Level) {
	v.level = level
	v.replaced++
}

// stubHost records host calls and hands out predictable icons.
type stubHost struct {
	views           []*stringView
	settingsChanged int
}

func (s *stubHost) Translate(key string) string { return key }
func (s *stubHost) Icon(level int) Icon         { return Icon(LevelTag(level)) }
func (s *stubHost) SettingsChanged()            { s.settingsChanged++ }

func (s *stubHost) NewTextView(spec ViewSpec) TextView {
	v := &stringView{spec: spec, text: spec.Text, level: spec.Level}
	s.views = append(s.views, v)
	return v
}

func newTestHeader(raw string, cfg Config) (*Header, *stubHost) {
	host := &stubHost{}
	return New([]byte(raw), cfg, host, false), host
}

func TestRender_LazyAndIdempotent(t *testing.T) {
	h, host := newTestHeader(`{"text":"Hi","level":3}`, Config{})

	if len(host.views) != 0 {
		t.Fatalf("no view should exist before Render, got %d", len(host.views))
	}

	v1 := h.Render()
	v2 := h.Render()
	if v1 != v2 {
		t.Fatal("Render must return the same live view")
	}
	if len(host.views) != 1 {
		t.Fatalf("expected a single view, got %d", len(host.views))
	}

	sv := host.views[0]
	if sv.spec.Text != "Hi" || sv.spec.Level.Number != 3 || !sv.spec.Editable {
		t.Fatalf("unexpected view spec: %+v", sv.spec)
	}
}

func TestRender_ReadOnlyAndPlaceholder(t *testing.T) {
	host := &stubHost{}
	h := New([]byte(`{}`), Config{Placeholder: "Enter a header"}, host, true)

	h.Render()
	sv := host.views[0]
	if sv.spec.Editable {
		t.Fatal("read-only block must not be editable")
	}
	if sv.spec.Placeholder != "Enter a header" {
		t.Fatalf("placeholder: got %q", sv.spec.Placeholder)
	}
}

func TestSetLevel(t *testing.T) {
	h, host := newTestHeader(`{"text":"T","level":2}`, Config{Levels: []int{1, 2, 3}})
	v := h.Render().(*stringView)

	// Outside the allowed set: ignored.
	h.SetLevel(5)
	if h.Level().Number != 2 || v.replaced != 0 || host.settingsChanged != 0 {
		t.Fatalf("SetLevel(5) must be a no-op: level %d, replaced %d, notified %d",
			h.Level().Number, v.replaced, host.settingsChanged)
	}

	// Same level: ignored.
	h.SetLevel(2)
	if v.replaced != 0 || host.settingsChanged != 0 {
		t.Fatal("SetLevel(current) must be a no-op")
	}

	h.SetLevel(3)
	if h.Level().Number != 3 {
		t.Fatalf("level after SetLevel(3): got %d", h.Level().Number)
	}
	if v.replaced != 1 || v.level.Tag != "H3" {
		t.Fatalf("view not rebuilt for H3: replaced %d, tag %q", v.replaced, v.level.Tag)
	}
	if host.settingsChanged != 1 {
		t.Fatalf("settings change notifications: got %d, want 1", host.settingsChanged)
	}
}

func TestSetLevel_ThenSaveReportsNewLevel(t *testing.T) {
	h, _ := newTestHeader(`{"text":"T","level":1}`, Config{})
	h.Render()

	for _, n := range []int{2, 4, 6} {
		h.SetLevel(n)
		if got := h.Save().Level; got != n {
			t.Fatalf("Save after SetLevel(%d): got level %d", n, got)
		}
	}
}

func TestSave_ReadsLiveViewText(t *testing.T) {
	h, _ := newTestHeader(`{"text":"old","level":2}`, Config{})
	v := h.Render().(*stringView)

	v.SetText("edited directly")
	got := h.Save()
	if got.Text != "edited directly" || got.Level != 2 {
		t.Fatalf("Save: got %+v", got)
	}
}

func TestSave_BeforeRenderUsesConstructorData(t *testing.T) {
	h, _ := newTestHeader(`{"text":"kept","level":4}`, Config{})
	if got := h.Save(); got.Text != "kept" || got.Level != 4 {
		t.Fatalf("Save before Render: got %+v", got)
	}
}

func TestValidate(t *testing.T) {
	h, _ := newTestHeader(`{}`, Config{})

	cases := []struct {
		text string
		want bool
	}{
		{text: "", want: false},
		{text: "  ", want: false},
		{text: "\t\n", want: false},
		{text: "a", want: true},
		{text: " a ", want: true},
	}
	for _, tc := range cases {
		if got := h.Validate(Data{Text: tc.text, Level: 2}); got != tc.want {
			t.Fatalf("Validate(%q): got %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestMerge_AppendsTextKeepsLevel(t *testing.T) {
	h, _ := newTestHeader(`{"text":"Hello","level":3}`, Config{})
	h.Render()

	h.Merge(Data{Text: " World", Level: 6})

	got := h.Save()
	if got.Text != "Hello World" {
		t.Fatalf("merged text: got %q", got.Text)
	}
	if got.Level != 3 {
		t.Fatalf("merge must not change level: got %d", got.Level)
	}
}

func TestSettingsEntries(t *testing.T) {
	h, _ := newTestHeader(`{"text":"T","level":2}`, Config{Levels: []int{1, 2, 3}})
	h.Render()

	entries := h.SettingsEntries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	var titles []string
	for _, e := range entries {
		titles = append(titles, e.Title)
		if e.Active != (e.Level.Number == 2) {
			t.Fatalf("active flag wrong for level %d", e.Level.Number)
		}
	}
	want := []string{"Heading 1", "Heading 2", "Heading 3"}
	if !reflect.DeepEqual(titles, want) {
		t.Fatalf("titles: got %v, want %v", titles, want)
	}

	entries[2].Activate()
	if h.Level().Number != 3 {
		t.Fatalf("Activate: level got %d, want 3", h.Level().Number)
	}
	for _, e := range h.SettingsEntries() {
		if e.Active != (e.Level.Number == 3) {
			t.Fatalf("active flag not updated for level %d", e.Level.Number)
		}
	}
}

func TestRoundTrip_NormalizeRenderSave(t *testing.T) {
	cfg := Config{Levels: []int{1, 2, 3}, DefaultLevel: 2}

	cases := []Data{
		{Text: "plain", Level: 1},
		{Text: "clamped", Level: 5},
		{Text: "", Level: 2},
	}
	for _, in := range cases {
		host := &stubHost{}
		h := NewFromData(in, cfg, host, false)
		h.Render()
		got := h.Save()

		want := Normalize(in, h.Settings())
		if got != want {
			t.Fatalf("round trip of %+v: got %+v, want %+v", in, got, want)
		}
	}
}

func TestDescriptors(t *testing.T) {
	pc := DefaultPasteConfig()
	want := []string{"H1", "H2", "H3", "H4", "H5", "H6"}
	if !reflect.DeepEqual(pc.Tags, want) {
		t.Fatalf("paste tags: got %v, want %v", pc.Tags, want)
	}

	rules := Sanitize()
	if !rules.KeepLevel || !rules.TextTags["br"] || len(rules.TextTags) != 1 {
		t.Fatalf("sanitize rules: got %+v", rules)
	}

	conv := Conversion()
	if conv.Export != "text" || conv.Import != "text" {
		t.Fatalf("conversion config: got %+v", conv)
	}

	if !IsReadOnlySupported() {
		t.Fatal("read-only must be supported")
	}

	tb := Toolbox(&stubHost{})
	if tb.Title != "Heading" || tb.Icon == "" {
		t.Fatalf("toolbox entry: got %+v", tb)
	}
}
