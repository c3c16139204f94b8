package block

// Static descriptors consumed by the host editor's block registry.
// They carry no runtime state; the host reads them once at tool
// registration.

// ToolboxEntry describes the block in the host's toolbox.
type ToolboxEntry struct {
	Title string
	Icon  Icon
}

// Toolbox returns the registry entry for the heading tool.
func Toolbox(host Host) ToolboxEntry {
	return ToolboxEntry{
		Title: host.Translate("Heading"),
		Icon:  host.Icon(0),
	}
}

// PasteConfig lists the pasted tags the block subscribes to.
type PasteConfig struct {
	Tags []string
}

// DefaultPasteConfig subscribes to every heading tag.
func DefaultPasteConfig() PasteConfig {
	tags := make([]string, 0, MaxLevel-MinLevel+1)
	for n := MinLevel; n <= MaxLevel; n++ {
		tags = append(tags, LevelTag(n))
	}
	return PasteConfig{Tags: tags}
}

// SanitizeRules declares what the host sanitizer keeps in saved data:
// the level field, and within the text only line-break tags. The host
// enforces this; the block only declares it.
type SanitizeRules struct {
	KeepLevel bool
	TextTags  map[string]bool
}

// Sanitize returns the heading block's sanitizer declaration.
func Sanitize() SanitizeRules {
	return SanitizeRules{
		KeepLevel: true,
		TextTags:  map[string]bool{"br": true},
	}
}

// ConversionConfig names the data field used when converting this
// block to or from another block type.
type ConversionConfig struct {
	Export string
	Import string
}

// Conversion exports and imports heading text.
func Conversion() ConversionConfig {
	return ConversionConfig{Export: "text", Import: "text"}
}

// IsReadOnlySupported reports that the block renders in read-only
// hosts.
func IsReadOnlySupported() bool { return true }
