package compose

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"

	"simctl/internal/utils"
	"simctl/pkg/logging"
)

// DefaultTTL bounds how long a discovered service list stays valid.
const DefaultTTL = 60 * time.Second

// catalogKey identifies one cache entry: the project directory plus the
// exact ordered flag list used for discovery.
type catalogKey struct {
	dir   string
	flags string
}

func newCatalogKey(dir string, extraFlags []string) catalogKey {
	return catalogKey{dir: dir, flags: strings.Join(extraFlags, "\x1f")}
}

// digest is a stable short identifier for the key, used both as the
// singleflight key and as the snapshot file name.
func (k catalogKey) digest() string {
	h := xxhash.New()
	_, _ = h.WriteString(k.dir)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(k.flags)
	return fmt.Sprintf("%016x", h.Sum64())
}

// catalogEntry is one cached discovery result. Entries are replaced
// wholesale on expiry, never mutated in place.
type catalogEntry struct {
	Services  []string  `json:"services"`
	CreatedAt time.Time `json:"createdAt"`
}

// ServiceCatalog answers "what services does the project at directory D
// declare?" cheaply enough for shell completion, which calls it on every
// keystroke. Results of `<orchestrator> <flags...> config --services` are
// cached for DefaultTTL per (directory, flags) key, in memory and as a disk
// snapshot so short-lived completion processes share the window. Discovery
// failures are never cached.
type ServiceCatalog struct {
	binary   string
	runner   utils.Runner
	ttl      time.Duration
	now      func() time.Time
	cacheDir string // "" disables the disk snapshot

	group   singleflight.Group
	mu      sync.Mutex
	entries map[catalogKey]catalogEntry
}

// NewServiceCatalog creates a catalog for the given orchestrator binary,
// persisting snapshots under the user cache directory when available.
func NewServiceCatalog(binary string, runner utils.Runner) *ServiceCatalog {
	cacheDir := ""
	if base, err := os.UserCacheDir(); err == nil {
		cacheDir = filepath.Join(base, "simctl", "services")
	}
	return &ServiceCatalog{
		binary:   binary,
		runner:   runner,
		ttl:      DefaultTTL,
		now:      time.Now,
		cacheDir: cacheDir,
		entries:  make(map[catalogKey]catalogEntry),
	}
}

// ListServices returns the ordered service names declared for the project at
// dir, invoked with extraFlags. An unexpired cache entry is returned without
// I/O; otherwise discovery runs synchronously and replaces the entry. At most
// one discovery is in flight per key.
func (c *ServiceCatalog) ListServices(ctx context.Context, dir string, extraFlags []string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving project directory: %w", err)
	}
	key := newCatalogKey(abs, extraFlags)

	if services, ok := c.lookup(key); ok {
		return services, nil
	}

	v, err, _ := c.group.Do(key.digest(), func() (interface{}, error) {
		// A concurrent caller may have populated the entry while we waited
		// for the flight slot.
		if services, ok := c.lookup(key); ok {
			return services, nil
		}

		args := make([]string, 0, len(extraFlags)+2)
		args = append(args, extraFlags...)
		args = append(args, "config", "--services")
		out, err := c.runner.Capture(ctx, abs, c.binary, args...)
		if err != nil {
			return nil, fmt.Errorf("discovering services in %s: %w", abs, err)
		}

		services := parseServiceList(out)
		c.store(key, services)
		return services, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

// CompleteServices returns the declared services starting with prefix, in
// discovery order. It never fails: completion must not crash the shell, so
// discovery errors yield an empty result.
func (c *ServiceCatalog) CompleteServices(ctx context.Context, dir string, extraFlags []string, prefix string) []string {
	services, err := c.ListServices(ctx, dir, extraFlags)
	if err != nil {
		logging.Debug("catalog", "completion discovery failed: %v", err)
		return nil
	}
	var matches []string
	for _, service := range services {
		if strings.HasPrefix(service, prefix) {
			matches = append(matches, service)
		}
	}
	return matches
}

// parseServiceList splits orchestrator output into service names, one per
// line, trimming surrounding whitespace and dropping blank lines.
func parseServiceList(out string) []string {
	var services []string
	for _, line := range strings.Split(out, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			services = append(services, name)
		}
	}
	return services
}

func (c *ServiceCatalog) lookup(key catalogKey) ([]string, bool) {
	c.mu.Lock()
	entry, ok := c.entries[key]
	c.mu.Unlock()

	if !ok {
		entry, ok = c.loadSnapshot(key)
		if ok {
			c.mu.Lock()
			c.entries[key] = entry
			c.mu.Unlock()
		}
	}
	if !ok || c.now().Sub(entry.CreatedAt) >= c.ttl {
		return nil, false
	}
	return entry.Services, true
}

func (c *ServiceCatalog) store(key catalogKey, services []string) {
	entry := catalogEntry{Services: services, CreatedAt: c.now()}
	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	c.writeSnapshot(key, entry)
}

func (c *ServiceCatalog) snapshotPath(key catalogKey) string {
	return filepath.Join(c.cacheDir, key.digest()+".json")
}

func (c *ServiceCatalog) loadSnapshot(key catalogKey) (catalogEntry, bool) {
	if c.cacheDir == "" {
		return catalogEntry{}, false
	}
	data, err := os.ReadFile(c.snapshotPath(key))
	if err != nil {
		return catalogEntry{}, false
	}
	var entry catalogEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		// Corrupt snapshot; rediscover instead of failing.
		logging.Debug("catalog", "discarding unreadable snapshot for %s: %v", key.dir, err)
		return catalogEntry{}, false
	}
	return entry, true
}

func (c *ServiceCatalog) writeSnapshot(key catalogKey, entry catalogEntry) {
	if c.cacheDir == "" {
		return
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := os.MkdirAll(c.cacheDir, 0o755); err != nil {
		logging.Debug("catalog", "cannot create cache dir %s: %v", c.cacheDir, err)
		return
	}
	tmp := c.snapshotPath(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		logging.Debug("catalog", "cannot write snapshot: %v", err)
		return
	}
	if err := os.Rename(tmp, c.snapshotPath(key)); err != nil {
		logging.Debug("catalog", "cannot finalize snapshot: %v", err)
	}
}
