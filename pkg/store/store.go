package store

import (
	"sync"
	"time"

	"github.com/ragcourselab/backend/pkg/index"
)

// Document is one ingested PDF. Re-ingesting the same filename updates the
// existing document instead of creating a duplicate.
type Document struct {
	DocID      string    `json:"doc_id"`
	Title      string    `json:"title"`
	SourceType string    `json:"source_type"`
	Topics     []string  `json:"topics"`
	NumChunks  int       `json:"num_chunks"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Chunk is the indexable unit of text, one per non-empty source page.
type Chunk struct {
	ChunkID    string `json:"chunk_id"`
	DocID      string `json:"doc_id"`
	Text       string `json:"text"`
	PageNumber int    `json:"page_number"`
	IndexInDoc int    `json:"index_in_doc"`
}

// QueryLog is one immutable record per answered question, refusals included.
type QueryLog struct {
	LogID         string
	Timestamp     time.Time
	Question      string
	Mode          string
	TopK          int
	Rerank        bool
	UsedDocs      []string
	Grounded      bool
	Answerability string
	Refused       bool
	RetrievalMs   float64
	GenerationMs  float64
	TotalMs       float64
}

// Store is the in-memory registry of documents, chunks and query logs. It
// also owns the current lexical index artifact, which is derived state and
// rebuilt wholesale after every ingest.
//
// All mutation goes through the write lock; the query path reads a
// consistent snapshot so it never observes a half-rebuilt index.
type Store struct {
	mu sync.RWMutex

	documents map[string]*Document
	docOrder  []string

	chunks      []Chunk
	chunksByDoc map[string][]int

	logs []QueryLog

	artifact    *index.Artifact
	maxFeatures int
}

// NewStoreParams configures a new Store.
type NewStoreParams struct {
	// MaxFeatures caps the index vocabulary. Zero means the default.
	MaxFeatures int
}

// NewStore creates an empty store.
func NewStore(params NewStoreParams) *Store {
	maxFeatures := params.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = index.DefaultMaxFeatures
	}
	return &Store{
		documents:   make(map[string]*Document),
		chunksByDoc: make(map[string][]int),
		maxFeatures: maxFeatures,
	}
}

// Documents returns all documents in first-ingest order.
func (s *Store) Documents() []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]Document, 0, len(s.docOrder))
	for _, id := range s.docOrder {
		docs = append(docs, *s.documents[id])
	}
	return docs
}

// Chunks returns a copy of all chunks in insertion order.
func (s *Store) Chunks() []Chunk {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chunks := make([]Chunk, len(s.chunks))
	copy(chunks, s.chunks)
	return chunks
}

// AppendLog records a completed query. Logs are append-only.
func (s *Store) AppendLog(log QueryLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, log)
}

// Logs returns all query logs, most recent first.
func (s *Store) Logs() []QueryLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := make([]QueryLog, len(s.logs))
	for i, log := range s.logs {
		logs[len(s.logs)-1-i] = log
	}
	return logs
}

// Snapshot is a consistent view of the store for one retrieval call: the
// index artifact together with the chunk and document lookups it refers to.
type Snapshot struct {
	Artifact  *index.Artifact
	Chunks    map[string]Chunk
	Documents map[string]Document
}

// Snapshot returns the current index artifact and matching lookups. The
// Artifact field is nil when the corpus is empty.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chunks := make(map[string]Chunk, len(s.chunks))
	for _, chunk := range s.chunks {
		chunks[chunk.ChunkID] = chunk
	}
	docs := make(map[string]Document, len(s.documents))
	for id, doc := range s.documents {
		docs[id] = *doc
	}
	return Snapshot{
		Artifact:  s.artifact,
		Chunks:    chunks,
		Documents: docs,
	}
}
