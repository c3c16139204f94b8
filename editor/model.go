package editor

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockpress/headline/block"
	"github.com/blockpress/headline/internal/htmlfrag"
)

// Model is a Bubble Tea component hosting a single heading block.
type Model struct {
	cfg    Config
	header *block.Header
	view   *termView
	shared *shared

	focused bool
	width   int

	panelOpen   bool
	panelCursor int

	lastSaved block.Data
}

// shared survives value copies of Model; the block's host callbacks
// hold onto it.
type shared struct {
	version uint64
}

// hostAdapter implements block.Host for the terminal editor.
type hostAdapter struct {
	translate func(string) string
	icons     func(int) block.Icon
	notify    func()
	newView   func(block.ViewSpec) block.TextView
}

func (h *hostAdapter) Translate(key string) string { return h.translate(key) }
func (h *hostAdapter) Icon(level int) block.Icon   { return h.icons(level) }
func (h *hostAdapter) SettingsChanged()            { h.notify() }

func (h *hostAdapter) NewTextView(s block.ViewSpec) block.TextView { return h.newView(s) }

// DefaultIcons renders levels as "H1".."H6" and the generic heading
// icon as "H".
func DefaultIcons(level int) block.Icon {
	if level == 0 {
		return "H"
	}
	return block.Icon(block.LevelTag(level))
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	translate := cfg.Translate
	if translate == nil {
		translate = func(s string) string { return s }
	}
	icons := cfg.Icons
	if icons == nil {
		icons = DefaultIcons
	}

	sh := &shared{}
	var created *termView
	host := &hostAdapter{
		translate: translate,
		icons:     icons,
		notify:    func() { sh.version++ },
		newView: func(spec block.ViewSpec) block.TextView {
			in := newInput(spec.Placeholder)
			in.SetValue(spec.Text)
			v := &termView{
				input:       &in,
				level:       spec.Level,
				placeholder: spec.Placeholder,
				editable:    spec.Editable,
			}
			created = v
			return v
		},
	}

	var header *block.Header
	if len(cfg.RawData) > 0 {
		header = block.New(cfg.RawData, cfg.Tool, host, cfg.ReadOnly)
	} else {
		header = block.NewFromData(cfg.Data, cfg.Tool, host, cfg.ReadOnly)
	}
	header.Render()

	m := Model{
		cfg:     cfg,
		header:  header,
		view:    created,
		shared:  sh,
		focused: true,
	}
	if !cfg.ReadOnly {
		m.view.input.Focus()
		m.view.input.CursorEnd()
	}
	m.lastSaved = m.Save()
	return m
}

// Header exposes the hosted block for direct host-driven calls
// (validate, merge, descriptors).
func (m Model) Header() *block.Header { return m.header }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Focused() bool { return m.focused }

func (m Model) Focus() Model {
	m.focused = true
	if !m.cfg.ReadOnly {
		m.view.input.Focus()
	}
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	m.view.input.Blur()
	return m
}

func (m Model) SetWidth(w int) Model {
	if w < 0 {
		w = 0
	}
	m.width = w
	m.view.input.Width = w
	return m
}

// Save returns the block's persisted payload with the declared
// sanitize rule applied to the text, the way the hosting editor would
// before writing the document.
func (m Model) Save() block.Data {
	d := m.header.Save()
	d.Text = htmlfrag.SanitizeInline(d.Text, block.Sanitize().TextTags)
	return d
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetWidth(msg.Width), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		// Cursor blink and friends.
		updated, cmd := m.view.input.Update(msg)
		*m.view.input = updated
		return m, cmd
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	km := m.cfg.KeyMap

	// Bracketed paste: heading fragments convert into this block, any
	// other markup inserts as its text content, plain text inserts
	// literally.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if m.cfg.ReadOnly {
			return m, nil
		}
		fragment := string(msg.Runes)
		if pastedHeading(fragment) {
			m.header.OnPaste(fragment)
			return m.emitChange(), nil
		}
		msg.Runes = []rune(htmlfrag.TextContent(fragment))
		if len(msg.Runes) == 0 {
			return m, nil
		}
		updated, cmd := m.view.input.Update(msg)
		*m.view.input = updated
		return m.emitChange(), cmd
	}

	if m.panelOpen {
		return m.updatePanelKey(msg)
	}

	// Read-only hosts disable the whole settings surface, not just the
	// text.
	if m.cfg.ReadOnly {
		return m, nil
	}

	if key.Matches(msg, km.ToggleSettings) {
		m.panelOpen = true
		m.panelCursor = m.activeEntryIndex()
		return m, nil
	}
	for i, b := range km.Levels {
		if key.Matches(msg, b) {
			m.header.SetLevel(i + 1)
			return m.emitChange(), nil
		}
	}
	updated, cmd := m.view.input.Update(msg)
	*m.view.input = updated
	return m.emitChange(), cmd
}

func (m Model) updatePanelKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	entries := m.header.SettingsEntries()

	switch {
	case key.Matches(msg, km.PanelUp):
		if m.panelCursor > 0 {
			m.panelCursor--
		}
	case key.Matches(msg, km.PanelDown):
		if m.panelCursor < len(entries)-1 {
			m.panelCursor++
		}
	case key.Matches(msg, km.PanelSelect):
		if m.panelCursor >= 0 && m.panelCursor < len(entries) {
			entries[m.panelCursor].Activate()
		}
		m.panelOpen = false
		return m.emitChange(), nil
	case key.Matches(msg, km.ToggleSettings), key.Matches(msg, km.ClosePanel):
		m.panelOpen = false
	}
	return m, nil
}

func (m Model) activeEntryIndex() int {
	for i, e := range m.header.SettingsEntries() {
		if e.Active {
			return i
		}
	}
	return 0
}

func (m Model) emitChange() Model {
	d := m.Save()
	if d == m.lastSaved {
		return m
	}
	m.lastSaved = d
	m.shared.version++
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ChangeEvent{Version: m.shared.version, Data: d})
	}
	return m
}

func pastedHeading(fragment string) bool {
	tag, _, ok := htmlfrag.ParseElement(fragment)
	if !ok {
		return false
	}
	_, ok = block.TagLevel(tag)
	return ok
}
