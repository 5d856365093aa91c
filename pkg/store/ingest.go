package store

import (
	"path/filepath"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/ragcourselab/backend/pkg/index"
	"github.com/ragcourselab/backend/pkg/logger"
)

// DocIDFromFilename derives the document id from an uploaded filename:
// extension stripped, lowercased, spaces replaced with underscores.
func DocIDFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

// Ingest turns the extracted page texts of one uploaded file into chunks and
// rebuilds the lexical index.
//
// Ingestion is idempotent by name but additive: re-uploading the same
// filename appends chunks to the existing document with continued
// index_in_doc numbering, it never replaces prior chunks. Callers that want
// a clean re-index must upload under a different filename.
//
// Pages whose extracted text is empty after trimming are skipped entirely;
// a file with no extractable text still yields a document with zero chunks.
func (s *Store) Ingest(pages []string, filename, sourceType string, topics []string) (Document, error) {
	if topics == nil {
		topics = []string{}
	}
	docID := DocIDFromFilename(filename)

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[docID]
	if !ok {
		now := time.Now().UTC()
		doc = &Document{
			DocID:      docID,
			Title:      filename,
			SourceType: sourceType,
			Topics:     topics,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		s.documents[docID] = doc
		s.docOrder = append(s.docOrder, docID)
	}

	chunkIndex := len(s.chunksByDoc[docID])
	added := 0

	for pageIdx, page := range pages {
		text := strings.TrimSpace(page)
		if text == "" {
			continue
		}

		chunkID, err := gonanoid.New()
		if err != nil {
			return Document{}, err
		}
		s.chunks = append(s.chunks, Chunk{
			ChunkID:    chunkID,
			DocID:      docID,
			Text:       text,
			PageNumber: pageIdx + 1,
			IndexInDoc: chunkIndex,
		})
		s.chunksByDoc[docID] = append(s.chunksByDoc[docID], len(s.chunks)-1)
		chunkIndex++
		added++
	}

	doc.NumChunks = len(s.chunksByDoc[docID])
	doc.UpdatedAt = time.Now().UTC()

	s.rebuildIndexLocked()

	logger.Info("[Ingest] Document ingested",
		"doc_id", docID,
		"pages", len(pages),
		"chunks_added", added,
		"total_chunks", len(s.chunks),
	)

	return *doc, nil
}

// rebuildIndexLocked refits the TF-IDF space over every stored chunk and
// swaps in the new artifact. Callers must hold the write lock, which keeps
// the rebuild exclusive with respect to queries and other ingests.
func (s *Store) rebuildIndexLocked() {
	ids := make([]string, len(s.chunks))
	texts := make([]string, len(s.chunks))
	for i, chunk := range s.chunks {
		ids[i] = chunk.ChunkID
		texts[i] = chunk.Text
	}
	s.artifact = index.Rebuild(ids, texts, s.maxFeatures)
}
