package block

// TextView is the single live view owned by a heading block. The text
// a user edits lives in the view, not in the block; every read of the
// block's text goes back to the view.
type TextView interface {
	// Text returns the current, live text content.
	Text() string

	// SetText replaces the text content.
	SetText(text string)

	// Replace rebuilds the view for a new level, carrying the current
	// text across. Tag names are immutable on a live element, so a
	// level change swaps the whole element rather than mutating it.
	Replace(level Level)
}

// ViewSpec describes the view a host must build for a block.
type ViewSpec struct {
	Level       Level
	Text        string
	Placeholder string
	Editable    bool
}

// Host is the capability surface the hosting editor exposes to a
// block. Blocks consume exactly this contract and never assume hidden
// hooks beyond it.
type Host interface {
	// Translate resolves a translation key to a localized string.
	Translate(key string) string

	// Icon returns the icon handle for a heading level. Level 0 means
	// the generic heading icon used in the toolbox.
	Icon(level int) Icon

	// NewTextView builds the view element described by spec.
	NewTextView(spec ViewSpec) TextView

	// SettingsChanged asks the host to re-render the block settings UI
	// after the active level changed.
	SettingsChanged()
}

// Tool is the lifecycle contract the host drives on a block. The host
// calls these; a block never initiates them.
type Tool interface {
	Render() TextView
	Save() Data
	Validate(d Data) bool
	Merge(d Data)
	SettingsEntries() []SettingsEntry
	OnPaste(fragment string)
}
