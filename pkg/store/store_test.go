package store

import (
	"testing"
	"time"
)

func TestDocIDFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{
			name:     "simple filename",
			filename: "lecture01.pdf",
			want:     "lecture01",
		},
		{
			name:     "spaces and mixed case",
			filename: "Week 3 Parsing.pdf",
			want:     "week_3_parsing",
		},
		{
			name:     "uppercase extension",
			filename: "Slides.PDF",
			want:     "slides",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DocIDFromFilename(tt.filename)
			if got != tt.want {
				t.Fatalf("unexpected doc id: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIngest_CreatesDocumentAndChunks(t *testing.T) {
	s := NewStore(NewStoreParams{})

	doc, err := s.Ingest([]string{"page one text", "page two text"}, "intro.pdf", "slides", nil)
	if err != nil {
		t.Fatalf("Ingest() failed: %v", err)
	}

	if doc.DocID != "intro" {
		t.Fatalf("unexpected doc id: got %q, want %q", doc.DocID, "intro")
	}
	if doc.NumChunks != 2 {
		t.Fatalf("unexpected num_chunks: got %d, want 2", doc.NumChunks)
	}

	chunks := s.Chunks()
	if len(chunks) != 2 {
		t.Fatalf("unexpected chunk count: got %d, want 2", len(chunks))
	}
	for i, chunk := range chunks {
		if chunk.PageNumber != i+1 {
			t.Fatalf("chunk %d page number: got %d, want %d", i, chunk.PageNumber, i+1)
		}
		if chunk.IndexInDoc != i {
			t.Fatalf("chunk %d index_in_doc: got %d, want %d", i, chunk.IndexInDoc, i)
		}
		if chunk.ChunkID == "" {
			t.Fatal("chunk id should not be empty")
		}
	}
}

func TestIngest_SkipsEmptyPages(t *testing.T) {
	s := NewStore(NewStoreParams{})

	doc, err := s.Ingest([]string{"", "  \n\t ", "real content", ""}, "sparse.pdf", "slides", nil)
	if err != nil {
		t.Fatalf("Ingest() failed: %v", err)
	}

	if doc.NumChunks != 1 {
		t.Fatalf("unexpected num_chunks: got %d, want 1", doc.NumChunks)
	}

	chunks := s.Chunks()
	if len(chunks) != 1 {
		t.Fatalf("unexpected chunk count: got %d, want 1", len(chunks))
	}
	if chunks[0].PageNumber != 3 {
		t.Fatalf("page number should reflect the source page: got %d, want 3", chunks[0].PageNumber)
	}
}

func TestIngest_NoExtractablePagesStillCreatesDocument(t *testing.T) {
	s := NewStore(NewStoreParams{})

	doc, err := s.Ingest([]string{"", "   "}, "scanned.pdf", "slides", nil)
	if err != nil {
		t.Fatalf("Ingest() failed: %v", err)
	}

	if doc.NumChunks != 0 {
		t.Fatalf("unexpected num_chunks: got %d, want 0", doc.NumChunks)
	}
	if len(s.Documents()) != 1 {
		t.Fatalf("document should exist even with zero chunks")
	}
	if s.Snapshot().Artifact != nil {
		t.Fatal("index artifact should stay empty without chunks")
	}
}

func TestIngest_SameFilenameIsAdditive(t *testing.T) {
	s := NewStore(NewStoreParams{})

	first, err := s.Ingest([]string{"alpha", "beta"}, "course.pdf", "slides", nil)
	if err != nil {
		t.Fatalf("first Ingest() failed: %v", err)
	}
	second, err := s.Ingest([]string{"gamma"}, "course.pdf", "slides", nil)
	if err != nil {
		t.Fatalf("second Ingest() failed: %v", err)
	}

	if second.DocID != first.DocID {
		t.Fatalf("re-ingest created a new document: %q vs %q", second.DocID, first.DocID)
	}
	if second.NumChunks != 3 {
		t.Fatalf("re-ingest should append chunks: got num_chunks %d, want 3", second.NumChunks)
	}
	if len(s.Documents()) != 1 {
		t.Fatalf("unexpected document count: got %d, want 1", len(s.Documents()))
	}

	// index_in_doc numbering continues across ingests, it never resets.
	chunks := s.Chunks()
	if chunks[2].IndexInDoc != 2 {
		t.Fatalf("index_in_doc should continue: got %d, want 2", chunks[2].IndexInDoc)
	}
	if !second.UpdatedAt.After(first.CreatedAt) && !second.UpdatedAt.Equal(first.CreatedAt) {
		t.Fatal("updated_at should be refreshed on re-ingest")
	}
}

func TestIngest_RebuildsIndex(t *testing.T) {
	s := NewStore(NewStoreParams{})

	if s.Snapshot().Artifact != nil {
		t.Fatal("empty store should have no index artifact")
	}

	if _, err := s.Ingest([]string{"transformers and attention"}, "a.pdf", "slides", nil); err != nil {
		t.Fatalf("Ingest() failed: %v", err)
	}

	snap := s.Snapshot()
	if snap.Artifact == nil {
		t.Fatal("index artifact should exist after ingest")
	}
	if snap.Artifact.Len() != 1 {
		t.Fatalf("unexpected index size: got %d, want 1", snap.Artifact.Len())
	}

	if _, err := s.Ingest([]string{"parsing grammars"}, "b.pdf", "slides", nil); err != nil {
		t.Fatalf("Ingest() failed: %v", err)
	}
	if got := s.Snapshot().Artifact.Len(); got != 2 {
		t.Fatalf("index should cover all chunks after rebuild: got %d, want 2", got)
	}
}

func TestLogs_MostRecentFirst(t *testing.T) {
	s := NewStore(NewStoreParams{})

	s.AppendLog(QueryLog{LogID: "first", Timestamp: time.Now()})
	s.AppendLog(QueryLog{LogID: "second", Timestamp: time.Now()})

	logs := s.Logs()
	if len(logs) != 2 {
		t.Fatalf("unexpected log count: got %d, want 2", len(logs))
	}
	if logs[0].LogID != "second" || logs[1].LogID != "first" {
		t.Fatalf("logs not in most-recent-first order: %q, %q", logs[0].LogID, logs[1].LogID)
	}
}
