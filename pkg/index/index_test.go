package index

import (
	"testing"
)

func TestRebuild_EmptyCorpus(t *testing.T) {
	if artifact := Rebuild(nil, nil, 0); artifact != nil {
		t.Fatalf("Rebuild() with no chunks should return nil, got %v", artifact)
	}
}

func TestRebuild_RowOrderMatchesInput(t *testing.T) {
	ids := []string{"c1", "c2", "c3"}
	texts := []string{
		"transformers use self attention",
		"naive bayes classification",
		"dependency parsing with neural networks",
	}

	artifact := Rebuild(ids, texts, 0)
	if artifact == nil {
		t.Fatal("Rebuild() returned nil for non-empty corpus")
	}
	if artifact.Len() != 3 {
		t.Fatalf("unexpected row count: got %d, want 3", artifact.Len())
	}

	got := artifact.ChunkIDs()
	for i, id := range ids {
		if got[i] != id {
			t.Fatalf("chunk id order changed: got %v, want %v", got, ids)
		}
	}
}

func TestRebuild_MaxFeaturesCapsVocabulary(t *testing.T) {
	texts := []string{
		"alpha beta gamma delta",
		"alpha beta gamma",
		"alpha beta",
	}

	artifact := Rebuild([]string{"c1", "c2", "c3"}, texts, 2)
	if len(artifact.vectorizer.vocabulary) != 2 {
		t.Fatalf("vocabulary size: got %d, want 2", len(artifact.vectorizer.vocabulary))
	}
	// The two most frequent terms survive the cap.
	for _, term := range []string{"alpha", "beta"} {
		if _, ok := artifact.vectorizer.vocabulary[term]; !ok {
			t.Fatalf("expected term %q in capped vocabulary", term)
		}
	}
}

func TestScore_RanksMatchingChunkHighest(t *testing.T) {
	ids := []string{"c1", "c2", "c3"}
	texts := []string{
		"transformers rely on self attention layers",
		"naive bayes uses conditional probability",
		"cooking pasta requires boiling water",
	}

	artifact := Rebuild(ids, texts, 0)
	scores := artifact.Score("how does self attention work in transformers")

	if len(scores) != 3 {
		t.Fatalf("unexpected score count: got %d, want 3", len(scores))
	}
	if scores[0] <= scores[1] || scores[0] <= scores[2] {
		t.Fatalf("matching chunk not ranked highest: %v", scores)
	}
}

func TestScore_NoOverlapYieldsZero(t *testing.T) {
	artifact := Rebuild([]string{"c1"}, []string{"transformers and attention"}, 0)
	scores := artifact.Score("completely unrelated gardening question")

	if scores[0] != 0 {
		t.Fatalf("expected zero similarity for disjoint vocabulary, got %f", scores[0])
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and drops stopwords",
			text: "The Transformers ARE a model",
			want: []string{"transformers", "model"},
		},
		{
			name: "drops single characters",
			text: "a b c parsing",
			want: []string{"parsing"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("unexpected tokens: got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("unexpected tokens: got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestEmbed_L2Normalized(t *testing.T) {
	artifact := Rebuild(
		[]string{"c1", "c2"},
		[]string{"parsing grammar syntax", "attention transformers"},
		0,
	)

	vec := artifact.vectorizer.Embed("parsing grammar")
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	if norm < 0.999 || norm > 1.001 {
		t.Fatalf("embedding not L2-normalized: squared norm %f", norm)
	}
}
