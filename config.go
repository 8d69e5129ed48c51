package regrep

// Config controls compilation and matching behavior.
//
// Example:
//
//	config := regrep.DefaultConfig()
//	config.EnablePrefilter = false // force plain backtracking
//	re, err := regrep.CompileWithConfig(`(cat|dog)`, config)
type Config struct {
	// EnablePrefilter enables literal extraction and candidate
	// prefiltering. When false every pattern runs the plain backtracking
	// search.
	// Default: true
	EnablePrefilter bool

	// MinLiteralLen is the minimum length of an incomplete prefix literal
	// worth prefiltering on. Complete literals are always used.
	// Default: 1
	MinLiteralLen int

	// MaxLiterals caps how many alternative literals are extracted from an
	// alternation before prefiltering is abandoned.
	// Default: 64
	MaxLiterals int

	// DotMatchesNewline makes '.' match '\n'. Input is usually a single
	// line, so the default keeps grep semantics.
	// Default: false
	DotMatchesNewline bool
}

// DefaultConfig returns the configuration used by Compile.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
		MinLiteralLen:   1,
		MaxLiterals:     64,
	}
}
