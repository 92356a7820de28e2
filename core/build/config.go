package build

// Config holds configuration for the build step.
type Config struct {
	// OutDir is where artifacts are written, relative to the project root
	// unless absolute.
	OutDir string `mapstructure:"outdir" default:"dist"`
	// EmptyOutDir removes previous artifacts before building.
	EmptyOutDir bool `mapstructure:"empty_outdir" default:"true"`
	// WatchDebounceMillis delays a rebuild until changes settle.
	WatchDebounceMillis int `mapstructure:"watch_debounce_millis" default:"200"`
	// Exclude lists files that are never built or watched, such as the
	// sqlite database and its journals. Filled in by the config package.
	Exclude []string `mapstructure:"-"`
}
