package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"shellchecker/internal/diag"
	"shellchecker/internal/rules"
)

// Current schema version - increment when cachePayload format or any rule
// behaviour changes.
const cacheSchemaVersion uint16 = 1

// Digest identifies one cached report.
type Digest [32]byte

// Cache хранит готовые отчёты на диске, ключ - хеш содержимого и опций.
// Thread-safe for concurrent access. A nil *Cache is a valid no-op cache.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

type cachedIssue struct {
	Line     uint32
	Severity uint8
	Category uint8
	Code     uint16
	Message  string
}

type cachePayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16
	Issues []cachedIssue
}

// OpenCache initializes the cache under $XDG_CACHE_HOME/<app>/reports
// (falling back to ~/.cache).
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenCacheDir(filepath.Join(base, app, "reports"))
}

// OpenCacheDir initializes a cache rooted at dir.
func OpenCacheDir(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func cacheKey(content [32]byte, opts rules.Options) Digest {
	var hdr [2 + 1 + 8]byte
	binary.LittleEndian.PutUint16(hdr[0:], cacheSchemaVersion)
	hdr[2] = byte(opts.Locale)
	lineLimit := opts.MaxLineLength
	if lineLimit <= 0 {
		lineLimit = rules.DefaultMaxLineLength
	}
	binary.LittleEndian.PutUint64(hdr[3:], uint64(lineLimit)) // #nosec G115 -- positive by construction

	h := sha256.New()
	h.Write(hdr[:])
	h.Write(content[:])
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func (c *Cache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// двухсимвольный префикс, чтобы не держать тысячи файлов в одном каталоге
	return filepath.Join(c.dir, hexKey[:2], hexKey+".mp")
}

// Store serializes and writes a report to the cache.
func (c *Cache) Store(key Digest, r *diag.Report) (err error) {
	if c == nil || r == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := cachePayload{Schema: cacheSchemaVersion, Issues: make([]cachedIssue, 0, r.Len())}
	for _, is := range r.Items() {
		payload.Issues = append(payload.Issues, cachedIssue{
			Line:     is.Line,
			Severity: uint8(is.Severity),
			Category: uint8(is.Category),
			Code:     uint16(is.Code),
			Message:  is.Message,
		})
	}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Load reads a cached report. Missing, unreadable or stale entries are
// reported as a miss.
func (c *Cache) Load(key Digest) (*diag.Report, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	var payload cachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil || payload.Schema != cacheSchemaVersion {
		return nil, false
	}

	r := diag.NewReport()
	for _, ci := range payload.Issues {
		r.AddIssue(ci.Line, diag.Severity(ci.Severity), diag.Category(ci.Category), diag.Code(ci.Code), ci.Message)
	}
	return r, true
}

// DropAll invalidates the cache.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
