package block

// Config is the caller-supplied tool configuration.
type Config struct {
	// Placeholder is a translation key for the empty-block hint.
	Placeholder string

	// Levels restricts the selectable heading levels, in the given
	// order. Empty means all of 1..6.
	Levels []int

	// DefaultLevel is used whenever persisted or pasted data carries a
	// level outside Levels. Zero means unset.
	DefaultLevel int
}

// FallbackLevel applies when the configuration pins down no usable
// default at all.
const FallbackLevel = 2

// Settings is the resolved form of Config. Allowed is never empty and
// DefaultLevel is always a member of Allowed.
type Settings struct {
	Placeholder  string
	Allowed      []int
	DefaultLevel int
}

// ResolveSettings validates cfg into Settings.
//
// Allowed is the order-preserving intersection of cfg.Levels with the
// 1..6 universe, duplicates dropped; an empty result opens up all six
// levels. The default resolves to cfg.DefaultLevel when that survives
// the intersection, else to the first configured entry, else to
// FallbackLevel. A default that disagrees with the allowed list is
// corrected silently, like every other malformed input here.
func ResolveSettings(cfg Config) Settings {
	allowed := make([]int, 0, len(cfg.Levels))
	var seen [MaxLevel + 1]bool
	for _, n := range cfg.Levels {
		if n < MinLevel || n > MaxLevel || seen[n] {
			continue
		}
		seen[n] = true
		allowed = append(allowed, n)
	}

	def := FallbackLevel
	if len(allowed) > 0 {
		def = allowed[0]
	} else {
		for n := MinLevel; n <= MaxLevel; n++ {
			allowed = append(allowed, n)
		}
	}
	if cfg.DefaultLevel != 0 && contains(allowed, cfg.DefaultLevel) {
		def = cfg.DefaultLevel
	}

	return Settings{
		Placeholder:  cfg.Placeholder,
		Allowed:      allowed,
		DefaultLevel: def,
	}
}

// Allows reports whether n is a selectable level.
func (s Settings) Allows(n int) bool {
	return contains(s.Allowed, n)
}

// Clamp resolves n to an allowed level: n itself when allowed,
// otherwise the default.
func (s Settings) Clamp(n int) int {
	if s.Allows(n) {
		return n
	}
	return s.DefaultLevel
}

func contains(levels []int, n int) bool {
	for _, l := range levels {
		if l == n {
			return true
		}
	}
	return false
}
