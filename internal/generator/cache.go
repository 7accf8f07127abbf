package generator

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/maypok86/otter"

	"github.com/lyubolp/py2uml/internal/model"
)

// fileResult is one cached per-file extraction, valid only while the
// file's content hash is unchanged.
type fileResult struct {
	hash    string
	records []model.ClassRecord
}

// resultCache keeps per-file extraction results keyed by path so watch
// mode does not re-extract files that did not change between events.
type resultCache struct {
	entries otter.Cache[string, fileResult]
}

func newResultCache(capacity int) (*resultCache, error) {
	entries, err := otter.MustBuilder[string, fileResult](capacity).
		Cost(func(string, fileResult) uint32 { return 1 }).
		Build()
	if err != nil {
		return nil, err
	}
	return &resultCache{entries: entries}, nil
}

// lookup returns the cached records for path when the stored content hash
// matches.
func (c *resultCache) lookup(path, hash string) ([]model.ClassRecord, bool) {
	entry, ok := c.entries.Get(path)
	if !ok || entry.hash != hash {
		return nil, false
	}
	return entry.records, true
}

func (c *resultCache) store(path, hash string, records []model.ClassRecord) {
	c.entries.Set(path, fileResult{hash: hash, records: records})
}

func (c *resultCache) close() {
	c.entries.Close()
}

// contentHash computes the SHA-256 cache key of a file's content.
func contentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
