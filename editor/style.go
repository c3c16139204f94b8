package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	// Heading holds one style per level, index 0 for H1.
	Heading [6]lipgloss.Style

	Placeholder lipgloss.Style

	Toolbar       lipgloss.Style
	ToolbarActive lipgloss.Style

	Panel         lipgloss.Style
	PanelItem     lipgloss.Style
	PanelSelected lipgloss.Style
}

func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Heading: [6]lipgloss.Style{
			lipgloss.NewStyle().Bold(true).Underline(true),
			lipgloss.NewStyle().Bold(true),
			lipgloss.NewStyle().Bold(true).Faint(true),
			lipgloss.NewStyle().Underline(true),
			lipgloss.NewStyle(),
			lipgloss.NewStyle().Faint(true),
		},
		Placeholder:   dim,
		Toolbar:       dim,
		ToolbarActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true).Reverse(true),
		Panel:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		PanelItem:     lipgloss.NewStyle(),
		PanelSelected: lipgloss.NewStyle().Reverse(true),
	}
}

// heading returns the style for level n, clamped into the universe.
func (s Style) heading(n int) lipgloss.Style {
	if n < 1 {
		n = 1
	}
	if n > len(s.Heading) {
		n = len(s.Heading)
	}
	return s.Heading[n-1]
}
