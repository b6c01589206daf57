package icons

import "errors"

// ErrIconNotFound indicates that a key matched neither an embedded asset
// nor any file in the search directories.
var ErrIconNotFound = errors.New("icons: icon not found")

// Texture is a loaded icon as the external texture system reports it.
// Handle validity and lifetime belong to that system, not to this cache.
type Texture struct {
	Handle uintptr
	Width  int
	Height int
}

// TextureSystem is the external backing store for icon resources. The
// overlay's renderer provides the production implementation; tests use a
// mock.
type TextureSystem interface {
	// Acquire loads the file at path and returns its texture. A zero
	// handle with a nil error still counts as a failed load.
	Acquire(path string) (Texture, error)
	// Release frees the texture previously acquired for path. The return
	// value reports whether anything was actually released.
	Release(path string) bool
}
