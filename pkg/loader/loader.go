package loader

import "context"

// PageExtractor turns raw file content into one text per source page. Pages
// with no extractable text come back as empty strings so page numbering in
// the result stays aligned with the source file.
type PageExtractor interface {
	ExtractPages(ctx context.Context, content []byte) ([]string, error)
}
