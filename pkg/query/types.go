package query

// Retrieval modes accepted by the query endpoint. The mode only changes the
// dense score surrogate multiplier; see Retrieve.
const (
	ModeBM25   = "bm25"
	ModeDense  = "dense"
	ModeHybrid = "hybrid"
)

// Answerability tiers derived from the peak citation score.
const (
	AnswerabilityHigh   = "HIGH"
	AnswerabilityMedium = "MEDIUM"
	AnswerabilityLow    = "LOW"
)

// Request is one natural-language question against the corpus.
type Request struct {
	Question string `json:"question" validate:"required"`
	Mode     string `json:"mode"`
	TopK     int    `json:"top_k"`
	Rerank   bool   `json:"rerank"`
}

// Citation is one supporting passage backing an answer.
type Citation struct {
	DocID      string  `json:"doc_id"`
	DocTitle   string  `json:"doc_title"`
	PageNumber int     `json:"page_number"`
	Snippet    string  `json:"snippet"`
	ScoreBM25  float64 `json:"score_bm25"`
	ScoreDense float64 `json:"score_dense"`
	ScoreFinal float64 `json:"score_final"`
}

// GraphNode is one node of the retrieval graph shown next to an answer.
// Type is "query", "document" or "chunk"; Snippet and Glow are only set on
// chunk nodes.
type GraphNode struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Type    string `json:"type"`
	Snippet string `json:"snippet,omitempty"`
	Glow    bool   `json:"glow,omitempty"`
}

// GraphEdge connects two retrieval graph nodes, weighted by the citation's
// final score.
type GraphEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// Graph is the retrieval graph payload.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// Timings are the per-phase durations of one query in milliseconds.
type Timings struct {
	Retrieval  float64 `json:"retrieval"`
	Generation float64 `json:"generation"`
	Total      float64 `json:"total"`
}

// Response is the full answer payload for one question.
type Response struct {
	Answer         string     `json:"answer"`
	Answerability  string     `json:"answerability"`
	Refused        bool       `json:"refused"`
	Reason         string     `json:"reason,omitempty"`
	Citations      []Citation `json:"citations"`
	RetrievalGraph Graph      `json:"retrieval_graph"`
	TimingsMs      Timings    `json:"timings_ms"`
}
