package icons

import (
	"embed"
	"path"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

//go:embed assets
var assetsFS embed.FS

var (
	embeddedIdx   atomic.Pointer[map[string]string]
	embeddedGroup singleflight.Group
)

// embeddedIndex enumerates the bundled assets once per process and
// returns a lowercased-filename to embed-path map. Concurrent first
// callers collapse into a single enumeration.
func embeddedIndex() map[string]string {
	if idx := embeddedIdx.Load(); idx != nil {
		return *idx
	}

	v, _, _ := embeddedGroup.Do("index", func() (any, error) {
		if idx := embeddedIdx.Load(); idx != nil {
			return *idx, nil
		}
		idx := buildEmbeddedIndex()
		embeddedIdx.Store(&idx)
		return idx, nil
	})
	return v.(map[string]string)
}

func buildEmbeddedIndex() map[string]string {
	idx := make(map[string]string)
	entries, err := assetsFS.ReadDir("assets")
	if err != nil {
		return idx
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		idx[strings.ToLower(e.Name())] = path.Join("assets", e.Name())
	}
	return idx
}

// EmbeddedKeys returns the sorted keys of the bundled fallback assets.
func EmbeddedKeys() []string {
	idx := embeddedIndex()
	keys := make([]string, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// lookupEmbedded resolves a key against the bundled assets,
// case-insensitively, returning the asset bytes on a hit.
func lookupEmbedded(key string) ([]byte, bool) {
	loc, ok := embeddedIndex()[strings.ToLower(key)]
	if !ok {
		return nil, false
	}
	data, err := assetsFS.ReadFile(loc)
	if err != nil {
		return nil, false
	}
	return data, true
}
