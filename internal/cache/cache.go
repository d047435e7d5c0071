// Package cache keeps small JSON files between runs: the IP geolocation
// result and Al Adhan reference timings used by `hisab compare`.
package cache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/smokyabdulrahman/hisab/internal/api"
	"github.com/smokyabdulrahman/hisab/internal/geo"
)

const (
	referenceCacheFile = "reference_%s.json" // keyed by hash
	geoCacheFile       = "geolocation.json"
	geoTTL             = 24 * time.Hour
)

// Cache provides file-based caching for reference timings and geolocation data.
type Cache struct {
	dir string
}

// ReferenceEntry stores one day of Al Adhan timings with the query that
// produced it.
type ReferenceEntry struct {
	Date      string       `json:"date"` // YYYY-MM-DD
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Method    int          `json:"method"`
	School    int          `json:"school"`
	Response  api.Response `json:"response"`
}

// GeoCacheEntry stores a cached geolocation result with a timestamp.
type GeoCacheEntry struct {
	Location geo.Location `json:"location"`
	CachedAt time.Time    `json:"cached_at"`
}

// New creates a Cache rooted at the given directory.
// If dir is empty, it defaults to ~/.cache/hisab/.
func New(dir string) (*Cache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".cache", "hisab")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create cache directory %s: %w", dir, err)
	}

	return &Cache{dir: dir}, nil
}

// Dir returns the directory the cache writes to.
func (c *Cache) Dir() string {
	return c.dir
}

// cacheKey builds a deterministic hash from the parameters that affect
// the reference timings.
func cacheKey(date string, lat, lon float64, method, school int) string {
	raw := fmt.Sprintf("%s|%.6f|%.6f|%d|%d", date, lat, lon, method, school)
	h := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%x", h[:8])
}

func (c *Cache) referencePath(q api.Query) (string, string) {
	dateStr := q.Date.Format("2006-01-02")
	key := cacheKey(dateStr, q.Coordinate.Latitude, q.Coordinate.Longitude, q.Method, q.School)
	return filepath.Join(c.dir, fmt.Sprintf(referenceCacheFile, key)), dateStr
}

// LoadReference returns cached timings for q, or nil when the cache is
// missing, corrupt or for another day.
func (c *Cache) LoadReference(q api.Query) *api.Response {
	path, dateStr := c.referencePath(q)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var entry ReferenceEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil
	}
	if entry.Date != dateStr {
		return nil
	}
	return &entry.Response
}

// SaveReference writes the timings fetched for q.
func (c *Cache) SaveReference(q api.Query, resp *api.Response) error {
	path, dateStr := c.referencePath(q)

	entry := ReferenceEntry{
		Date:      dateStr,
		Latitude:  q.Coordinate.Latitude,
		Longitude: q.Coordinate.Longitude,
		Method:    q.Method,
		School:    q.School,
		Response:  *resp,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

// LoadGeo attempts to read a cached geolocation result.
// Returns nil if the cache is missing or older than the TTL (24 hours).
func (c *Cache) LoadGeo() *geo.Location {
	path := filepath.Join(c.dir, geoCacheFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var entry GeoCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil
	}
	if time.Since(entry.CachedAt) > geoTTL {
		return nil
	}
	return &entry.Location
}

// SaveGeo writes a geolocation result to the cache.
func (c *Cache) SaveGeo(loc *geo.Location) error {
	path := filepath.Join(c.dir, geoCacheFile)

	entry := GeoCacheEntry{
		Location: *loc,
		CachedAt: time.Now(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal geo cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write geo cache: %w", err)
	}
	return nil
}
