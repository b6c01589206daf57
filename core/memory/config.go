package memory

// Config holds configuration for the remote memory reader.
type Config struct {
	// ProcessName is the executable name of the game process to attach to.
	ProcessName string `mapstructure:"process_name" default:"PathOfExile2"`
	// MaxStringBytes caps how many bytes a sentinel-terminated string read
	// may scan before giving up.
	MaxStringBytes int `mapstructure:"max_string_bytes" default:"256"`
	// MaxVectorBytes caps the byte span a vector read will accept. Boundary
	// pairs come from untrusted remote memory; a torn or garbage end
	// pointer must degrade to an empty read, not a giant allocation.
	MaxVectorBytes int `mapstructure:"max_vector_bytes" default:"1048576"`
}
