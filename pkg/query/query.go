package query

import (
	"math"
	"sort"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/ragcourselab/backend/internal/timing"
	"github.com/ragcourselab/backend/pkg/logger"
	"github.com/ragcourselab/backend/pkg/store"
)

// Answerability thresholds on the peak score_final across returned
// citations. Below lowEvidenceThreshold the query is refused; between the
// two the tier is MEDIUM; at or above highConfidenceThreshold it is HIGH.
// The intervals are closed-open.
const (
	lowEvidenceThreshold    = 0.03
	highConfidenceThreshold = 0.07
)

// snippetLength is the citation snippet cap in characters.
const snippetLength = 350

const emptyCorpusAnswer = "No documents have been ingested yet. Please upload your course PDFs " +
	"on the Corpus page before asking questions."

const (
	reasonEmptyCorpus  = "Empty corpus"
	reasonNoEvidence   = "No supporting chunks found in the course PDFs."
	reasonWeakEvidence = "Retrieved evidence was too weak to confidently answer."
)

// Retrieve answers one question against the store: it ranks chunks by
// cosine similarity in the current index artifact, blends the surrogate
// scores, applies the answerability policy, synthesizes the answer text and
// appends one query log. Refusals are logged too.
func Retrieve(st *store.Store, req Request) Response {
	totalStart := timing.Start()

	snap := st.Snapshot()
	if snap.Artifact == nil {
		resp := Response{
			Answer:         emptyCorpusAnswer,
			Answerability:  AnswerabilityLow,
			Refused:        true,
			Reason:         reasonEmptyCorpus,
			Citations:      []Citation{},
			RetrievalGraph: Graph{Nodes: []GraphNode{}, Edges: []GraphEdge{}},
			TimingsMs:      Timings{},
		}
		logQuery(st, req, resp, false, []string{})
		return resp
	}

	retrievalStart := timing.Start()
	scores := snap.Artifact.Score(req.Question)
	retrievalMs := retrievalStart.ElapsedMs()

	ranked := rankDescending(scores)
	topK := req.TopK
	if topK < 0 {
		topK = 0
	}
	if topK > len(ranked) {
		topK = len(ranked)
	}

	chunkIDs := snap.Artifact.ChunkIDs()
	citations := make([]Citation, 0, topK)
	usedDocs := make([]string, 0, topK)
	usedDocSet := make(map[string]struct{})
	maxScoreFinal := 0.0

	for _, idx := range ranked[:topK] {
		score := scores[idx]
		if score <= 0 {
			continue
		}

		chunk := snap.Chunks[chunkIDs[idx]]
		doc := snap.Documents[chunk.DocID]

		scoreBM25 := score
		denseFactor := 0.9
		if req.Mode == ModeBM25 {
			denseFactor = 0.8
		}
		scoreDense := score * denseFactor
		scoreFinal := (scoreBM25 + scoreDense) / 2.0
		if scoreFinal > maxScoreFinal {
			maxScoreFinal = scoreFinal
		}

		citations = append(citations, Citation{
			DocID:      doc.DocID,
			DocTitle:   doc.Title,
			PageNumber: chunk.PageNumber,
			Snippet:    makeSnippet(chunk.Text),
			ScoreBM25:  round4(scoreBM25),
			ScoreDense: round4(scoreDense),
			ScoreFinal: round4(scoreFinal),
		})
		if _, seen := usedDocSet[doc.DocID]; !seen {
			usedDocSet[doc.DocID] = struct{}{}
			usedDocs = append(usedDocs, doc.DocID)
		}
	}

	grounded := len(citations) > 0

	answerability, refused := classify(maxScoreFinal, grounded)
	reason := ""
	if refused {
		reason = reasonWeakEvidence
		if !grounded {
			reason = reasonNoEvidence
		}
	}

	generationStart := timing.Start()
	answer := synthesize(req.Question, citations, refused)
	generationMs := generationStart.ElapsedMs()

	resp := Response{
		Answer:         answer,
		Answerability:  answerability,
		Refused:        refused,
		Reason:         reason,
		Citations:      citations,
		RetrievalGraph: buildRetrievalGraph(req.Question, citations),
		TimingsMs: Timings{
			Retrieval:  retrievalMs,
			Generation: generationMs,
			Total:      totalStart.ElapsedMs(),
		},
	}

	logQuery(st, req, resp, grounded && !refused, usedDocs)
	return resp
}

// classify maps the peak score_final onto an answerability tier and the
// refusal decision. Both threshold intervals are closed-open.
func classify(maxScoreFinal float64, grounded bool) (string, bool) {
	switch {
	case !grounded:
		return AnswerabilityLow, true
	case maxScoreFinal < lowEvidenceThreshold:
		return AnswerabilityLow, true
	case maxScoreFinal < highConfidenceThreshold:
		return AnswerabilityMedium, false
	default:
		return AnswerabilityHigh, false
	}
}

// rankDescending returns row indices sorted by descending score. Equal
// scores keep row order, so ties resolve to the first-seen chunk.
func rankDescending(scores []float64) []int {
	idxs := make([]int, len(scores))
	for i := range idxs {
		idxs[i] = i
	}
	sort.SliceStable(idxs, func(a, b int) bool {
		return scores[idxs[a]] > scores[idxs[b]]
	})
	return idxs
}

func makeSnippet(text string) string {
	if runes := []rune(text); len(runes) > snippetLength {
		text = string(runes[:snippetLength])
	}
	return strings.ReplaceAll(text, "\n", " ")
}

func round4(value float64) float64 {
	return math.Round(value*10000) / 10000
}

func logQuery(st *store.Store, req Request, resp Response, grounded bool, usedDocs []string) {
	logID, err := gonanoid.New()
	if err != nil {
		logger.Error("[Query] Failed to generate log id", "err", err)
		return
	}
	st.AppendLog(store.QueryLog{
		LogID:         logID,
		Timestamp:     time.Now().UTC(),
		Question:      req.Question,
		Mode:          req.Mode,
		TopK:          req.TopK,
		Rerank:        req.Rerank,
		UsedDocs:      usedDocs,
		Grounded:      grounded,
		Answerability: resp.Answerability,
		Refused:       resp.Refused,
		RetrievalMs:   resp.TimingsMs.Retrieval,
		GenerationMs:  resp.TimingsMs.Generation,
		TotalMs:       resp.TimingsMs.Total,
	})
}
