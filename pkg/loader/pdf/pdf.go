package pdf

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Extractor extracts per-page text from PDF content. Extraction results are
// cached by content hash and concurrent extractions of the same content are
// deduplicated.
type Extractor struct {
	cache   map[string][]string
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewExtractor creates a PDF page extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		cache: make(map[string][]string),
	}
}

// ExtractPages returns one text per PDF page, in page order. Pages without
// extractable text yield empty strings.
func (e *Extractor) ExtractPages(ctx context.Context, content []byte) ([]string, error) {
	key := cacheKey(content)

	e.cacheMu.RLock()
	if cached, ok := e.cache[key]; ok {
		e.cacheMu.RUnlock()
		return cached, nil
	}
	e.cacheMu.RUnlock()

	result, err, _ := e.group.Do(key, func() (any, error) {
		e.cacheMu.RLock()
		if cached, ok := e.cache[key]; ok {
			e.cacheMu.RUnlock()
			return cached, nil
		}
		e.cacheMu.RUnlock()

		pages, err := parsePDFPages(ctx, content)
		if err != nil {
			return nil, err
		}

		e.cacheMu.Lock()
		e.cache[key] = pages
		e.cacheMu.Unlock()

		return pages, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]string), nil
}

func cacheKey(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
