package icons

// Config holds configuration for the icon cache.
type Config struct {
	// CacheDir is the base directory under which per-instance cache
	// directories are created. Empty means the OS temp directory.
	CacheDir string `mapstructure:"cache_dir" default:""`
	// SearchDirs lists directories scanned, in order, for icon files
	// that are not bundled with the binary.
	SearchDirs []string `mapstructure:"search_dirs"`
}
