package teardown

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/tebeka/atexit"
)

// Registry collects cache directories that must be deleted when the
// process goes away. It is the one piece of shared mutable state in the
// core: exit callbacks can race with normal cleanup, so every method
// holds the mutex.
//
// The registry is explicit and injectable so tests can drive Run
// directly instead of depending on process-exit timing.
type Registry struct {
	mu   sync.Mutex
	dirs map[string]struct{}
	arm  func(func())
	once sync.Once
}

// Default is the process-wide registry; its exit hook is armed on first
// registration.
var Default = NewRegistry(func(f func()) { atexit.Register(f) })

// NewRegistry creates a registry. arm installs the exit hook the first
// time a directory is registered; pass nil for a registry that only runs
// when Run is called explicitly.
func NewRegistry(arm func(func())) *Registry {
	return &Registry{
		dirs: make(map[string]struct{}),
		arm:  arm,
	}
}

// Register records a directory for deletion at teardown. Duplicate
// registrations collapse; the exit hook itself is armed exactly once.
func (r *Registry) Register(dir string) {
	r.mu.Lock()
	r.dirs[dir] = struct{}{}
	r.mu.Unlock()

	if r.arm != nil {
		r.once.Do(func() { r.arm(r.Run) })
	}
}

// Unregister forgets a directory, for callers that already cleaned up.
func (r *Registry) Unregister(dir string) {
	r.mu.Lock()
	delete(r.dirs, dir)
	r.mu.Unlock()
}

// Run deletes every registered directory: files first, then
// subdirectories, then the directory itself. Every per-item failure is
// ignored; teardown is strictly best-effort.
func (r *Registry) Run() {
	r.mu.Lock()
	dirs := make([]string, 0, len(r.dirs))
	for d := range r.dirs {
		dirs = append(dirs, d)
	}
	r.dirs = make(map[string]struct{})
	r.mu.Unlock()

	for _, dir := range dirs {
		removeDir(dir)
	}
}

func removeDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var subdirs []string
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		if e.IsDir() {
			subdirs = append(subdirs, p)
			continue
		}
		_ = os.Remove(p)
	}
	for _, p := range subdirs {
		_ = os.RemoveAll(p)
	}
	_ = os.Remove(dir)
}
