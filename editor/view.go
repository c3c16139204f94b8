package editor

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/blockpress/headline/block"
)

// termView adapts a bubbles text input to block.TextView. It is the
// terminal stand-in for a heading element: the per-level presentation
// is fixed at construction, so Replace rebuilds the input and carries
// the text across instead of mutating it in place.
type termView struct {
	input       *textinput.Model
	level       block.Level
	placeholder string
	editable    bool
}

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	return in
}

func (v *termView) Text() string { return v.input.Value() }

func (v *termView) SetText(text string) { v.input.SetValue(text) }

func (v *termView) Replace(level block.Level) {
	in := newInput(v.placeholder)
	in.SetValue(v.input.Value())
	in.Width = v.input.Width
	if v.editable && v.input.Focused() {
		in.Focus()
		in.CursorEnd()
	}
	*v.input = in
	v.level = level
}
