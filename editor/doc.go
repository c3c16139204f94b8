// Package editor provides a Bubble Tea component that hosts a heading
// block in a terminal.
//
// The package is responsible for the editable heading line, per-level
// styling, the settings panel for switching levels, paste-driven
// conversion of heading markup, and change events for the embedding
// host. The block semantics live in the block package; this package is
// the reference implementation of its Host and TextView contracts.
package editor
