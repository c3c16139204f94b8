package editor

import "github.com/blockpress/headline/block"

// Config configures the editor Model.
type Config struct {
	// RawData is the persisted JSON fragment for the block. It wins
	// over Data when set.
	RawData []byte

	// Data seeds the block when RawData is empty.
	Data block.Data

	// Tool is the heading tool configuration (placeholder, allowed
	// levels, default level).
	Tool block.Config

	// ReadOnly renders the heading without accepting edits.
	ReadOnly bool

	// ShowToolbar renders a level toolbar line above the heading.
	ShowToolbar bool

	// Rendering options.
	Style  Style
	KeyMap KeyMap

	// Translate resolves translation keys (placeholder, level titles).
	// Identity when nil.
	Translate func(key string) string

	// Icons supplies per-level icon handles; level 0 is the generic
	// heading icon. DefaultIcons when nil.
	Icons func(level int) block.Icon

	// OnChange fires after an edit changes the saved payload.
	OnChange func(ChangeEvent)
}
