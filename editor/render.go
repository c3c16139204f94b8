package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

func (m Model) View() string {
	base := m.baseView()
	if !m.panelOpen {
		return base
	}
	y := 0
	if m.cfg.ShowToolbar {
		y = 1
	}
	panel := m.panelView()
	base = padHeight(base, y+lipgloss.Height(panel))
	return overlay.Composite(panel, base, overlay.Left, overlay.Top, 0, y)
}

func padHeight(s string, height int) string {
	for lipgloss.Height(s) < height {
		s += "\n"
	}
	return s
}

func (m Model) baseView() string {
	heading := m.headingView()
	if !m.cfg.ShowToolbar {
		return heading
	}
	return m.toolbarView() + "\n" + heading
}

func (m Model) headingView() string {
	st := m.cfg.Style.heading(m.header.Level().Number)

	// The focused input renders its own cursor and placeholder and
	// scrolls horizontally on its own.
	if m.focused && !m.cfg.ReadOnly {
		return st.Render(m.view.input.View())
	}

	text := m.view.Text()
	if text == "" {
		return m.cfg.Style.Placeholder.Render(truncate(m.view.placeholder, m.width))
	}
	return st.Render(truncate(text, m.width))
}

func (m Model) toolbarView() string {
	active := m.header.Level().Number
	parts := make([]string, 0, len(m.header.Settings().Allowed))
	for _, lv := range m.header.Levels() {
		st := m.cfg.Style.Toolbar
		if lv.Number == active {
			st = m.cfg.Style.ToolbarActive
		}
		parts = append(parts, st.Render(string(lv.Icon)))
	}
	// At most six short entries; never wider than a usable terminal.
	return strings.Join(parts, " ")
}

func (m Model) panelView() string {
	entries := m.header.SettingsEntries()
	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		marker := "  "
		if i == m.panelCursor {
			marker = "> "
		}
		label := marker + string(e.Level.Icon) + " " + e.Title
		if e.Active {
			label += " •"
		}

		st := m.cfg.Style.PanelItem
		if i == m.panelCursor {
			st = m.cfg.Style.PanelSelected
		}
		lines = append(lines, st.Render(label))
	}
	return m.cfg.Style.Panel.Render(strings.Join(lines, "\n"))
}
