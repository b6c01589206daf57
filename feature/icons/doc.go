// Package icons caches skill icon textures by file-name key.
//
// Icons come from three places, tried in order: assets bundled into the
// binary, the configured search directories, and nothing (the key fails
// and may succeed on a later poll). Embedded assets cannot be handed to
// the external texture system directly, so they are materialized once
// into a per-instance cache directory under a content-addressed name.
//
// The cache's main job is making the per-tick Reconcile call free: as
// long as the desired key set, the search directories, and the loaded
// set have not drifted, Reconcile performs no I/O at all. Presentation
// code therefore calls it unconditionally every poll.
//
// Cache directories are registered with the teardown registry so that
// instances still alive at process exit do not leak their materialized
// files.
package icons
