package icons

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/xid"
	"go.uber.org/zap"

	"github.com/misternay/Poe2-SkillEye/core/logger"
	"github.com/misternay/Poe2-SkillEye/core/teardown"
)

// entry is one loaded icon: the acquired texture and the on-disk path it
// was acquired from, kept for the later Release call.
type entry struct {
	tex  Texture
	path string
}

// Cache loads and memoizes icon textures by file-name key. It reconciles
// a desired-key set against the loaded set with a remembered-state fast
// path, so a poll loop can call Reconcile every tick at zero I/O cost
// while nothing changes.
type Cache struct {
	system TextureSystem
	reg    *teardown.Registry
	log    *zap.Logger

	// dir is this instance's materialization directory for embedded
	// assets, registered for deletion at process teardown.
	dir string

	entries     map[string]*entry
	lastDesired map[string]struct{}
	lastDirs    []string
	hasDesired  bool
}

// NewCache creates an icon cache backed by the given texture system.
// reg may be nil to use the process-wide teardown registry.
func NewCache(system TextureSystem, cfg Config, reg *teardown.Registry, log *zap.Logger) *Cache {
	base := cfg.CacheDir
	if base == "" {
		base = os.TempDir()
	}
	dir := filepath.Join(base, "skilleye_icons_"+xid.New().String())
	_ = os.MkdirAll(dir, 0o755)

	if reg == nil {
		reg = teardown.Default
	}
	reg.Register(dir)

	return &Cache{
		system:  system,
		reg:     reg,
		log:     logger.WithComponent(log, "icons"),
		dir:     dir,
		entries: make(map[string]*entry),
	}
}

// Dir returns this instance's materialization directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Get returns the loaded texture for a key.
func (c *Cache) Get(key string) (Texture, bool) {
	e, ok := c.entries[strings.ToLower(key)]
	if !ok {
		return Texture{}, false
	}
	return e.tex, true
}

// Loaded reports whether a key is currently loaded.
func (c *Cache) Loaded(key string) bool {
	_, ok := c.entries[strings.ToLower(key)]
	return ok
}

// Load resolves and acquires the icon for key. Embedded assets win over
// the search directories; within the directories, the first one holding
// a file literally named key wins. Loading an already loaded key is a
// no-op success.
func (c *Cache) Load(key string, searchDirs []string) error {
	norm := strings.ToLower(key)
	if _, ok := c.entries[norm]; ok {
		return nil
	}

	if data, ok := lookupEmbedded(key); ok {
		path := c.materialize(key, data)
		return c.acquire(norm, path)
	}

	for _, dir := range searchDirs {
		path := filepath.Join(dir, key)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return c.acquire(norm, path)
		}
	}

	return ErrIconNotFound
}

// acquire asks the texture system for the file and registers the entry.
func (c *Cache) acquire(norm, path string) error {
	tex, err := c.system.Acquire(path)
	if err != nil {
		return err
	}
	if tex.Handle == 0 {
		return ErrIconNotFound
	}
	c.entries[norm] = &entry{tex: tex, path: path}
	c.log.Debug("icon loaded", zap.String("key", norm), zap.String("path", path))
	return nil
}

// materialize writes embedded asset bytes into this instance's cache
// directory under a content-addressed name, skipping the write when an
// identical file is already there. Write failures are swallowed; the
// Acquire that follows will surface the miss.
func (c *Cache) materialize(key string, data []byte) string {
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:8])

	ext := filepath.Ext(key)
	base := strings.TrimSuffix(key, ext)
	path := filepath.Join(c.dir, base+"_"+hash+ext)

	if _, err := os.Stat(path); err != nil {
		_ = os.WriteFile(path, data, 0o644)
	}
	return path
}

// Unload releases and forgets a key. Release runs before removal, and
// the entry is removed even when the release reports failure.
func (c *Cache) Unload(key string) {
	norm := strings.ToLower(key)
	e, ok := c.entries[norm]
	if !ok {
		return
	}
	if !c.system.Release(e.path) {
		c.log.Debug("icon release failed", zap.String("key", norm))
	}
	delete(c.entries, norm)
}

// Summary reports what one Reconcile pass did.
type Summary struct {
	// FastPath is true when the pass was skipped outright because
	// nothing had drifted since the previous one.
	FastPath bool
	// Loaded counts keys that became loaded during this pass.
	Loaded int
	// Failed counts desired keys that could not be loaded.
	Failed int
	// Unloaded counts keys dropped for no longer being desired.
	Unloaded int
}

// Reconcile drives the loaded set toward desiredKeys. When the desired
// set, the search directories, and the loaded coverage all match the
// remembered state, it returns without any I/O. Otherwise it loads every
// desired key (individual failures are ignored; a later poll may
// succeed) and unloads every key no longer desired.
func (c *Cache) Reconcile(desiredKeys []string, searchDirs []string) Summary {
	desired := make(map[string]struct{}, len(desiredKeys))
	for _, k := range desiredKeys {
		desired[strings.ToLower(k)] = struct{}{}
	}

	if c.fastPath(desired, searchDirs) {
		return Summary{FastPath: true}
	}

	c.lastDesired = desired
	c.lastDirs = append([]string(nil), searchDirs...)
	c.hasDesired = true

	var sum Summary
	for _, key := range desiredKeys {
		wasLoaded := c.Loaded(key)
		if err := c.Load(key, searchDirs); err != nil {
			sum.Failed++
			c.log.Debug("icon load failed", zap.String("key", key), zap.Error(err))
		} else if !wasLoaded {
			sum.Loaded++
		}
	}

	for norm := range c.entries {
		if _, want := desired[norm]; !want {
			c.Unload(norm)
			sum.Unloaded++
		}
	}
	return sum
}

// fastPath reports whether this Reconcile call can be skipped outright.
func (c *Cache) fastPath(desired map[string]struct{}, searchDirs []string) bool {
	if !c.hasDesired {
		return false
	}
	if len(desired) != len(c.lastDesired) {
		return false
	}
	for k := range desired {
		if _, ok := c.lastDesired[k]; !ok {
			return false
		}
	}
	if len(searchDirs) != len(c.lastDirs) {
		return false
	}
	for i, dir := range searchDirs {
		if !strings.EqualFold(dir, c.lastDirs[i]) {
			return false
		}
	}
	for k := range desired {
		if _, ok := c.entries[k]; !ok {
			return false
		}
	}
	return true
}

// Invalidate forgets the remembered desired set and directories so the
// next Reconcile cannot take the fast path. Loaded icons stay loaded.
func (c *Cache) Invalidate() {
	c.lastDesired = nil
	c.lastDirs = nil
	c.hasDesired = false
}

// Cleanup unloads everything and best-effort deletes this instance's
// cache directory. All failures are swallowed.
func (c *Cache) Cleanup() {
	for norm := range c.entries {
		c.Unload(norm)
	}
	c.Invalidate()
	_ = os.RemoveAll(c.dir)
	c.reg.Unregister(c.dir)
}
