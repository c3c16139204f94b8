// Package block implements the heading block: persisted data, the
// level/tag mapping, settings resolution, and the lifecycle a hosting
// editor drives (render, save, validate, merge, settings, paste).
//
// The package has no rendering dependencies. Hosts supply the TextView
// and Host implementations; the editor package ships a terminal-backed
// pair, and a string-backed double is enough for tests.
package block
