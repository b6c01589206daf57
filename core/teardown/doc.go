// Package teardown deletes generated cache directories when the process
// exits.
//
// Icon caches materialize embedded assets into per-instance temp
// directories; whichever instances are still alive at exit must not
// leak them. Instances register their directory with the Default
// registry, which arms a single atexit hook on first use. Tests build
// their own registry and call Run directly.
package teardown
