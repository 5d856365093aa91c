package query

import (
	"fmt"
	"strings"
)

const refusalAnswer = "I cannot confidently answer this based on the course PDFs in the " +
	"RAG corpus. The retrieved evidence is either empty or too weak."

// maxAnswerCitations caps how many citations are rendered into the answer
// text. The full citation list is still returned alongside.
const maxAnswerCitations = 3

// synthesize composes the answer text deterministically from the ranked
// citations. No generative model is involved; identical citations always
// produce identical output.
func synthesize(question string, citations []Citation, refused bool) string {
	if refused {
		return refusalAnswer
	}

	parts := []string{
		fmt.Sprintf("Q: %s", question),
		"",
		"Grounded answer (built from course slides):",
	}

	for i, citation := range citations {
		if i >= maxAnswerCitations {
			break
		}
		parts = append(parts, fmt.Sprintf(
			"%d. From %s (slide page %d): %s...",
			i+1,
			citation.DocTitle,
			citation.PageNumber,
			strings.TrimSpace(citation.Snippet),
		))
	}

	parts = append(parts, "")
	parts = append(parts, "This answer is constructed only from the retrieved course material above.")
	return strings.Join(parts, "\n")
}

// buildRetrievalGraph builds the visualization graph for one answer: a
// query node, one node per distinct cited document in first-seen order, and
// one node per citation chunk. The query→document edge carries the weight
// of that document's highest-ranked citation.
func buildRetrievalGraph(question string, citations []Citation) Graph {
	nodes := []GraphNode{{
		ID:    "query",
		Label: question,
		Type:  "query",
	}}
	edges := make([]GraphEdge, 0, len(citations)*2)

	docsSeen := make(map[string]string)

	for _, citation := range citations {
		if _, ok := docsSeen[citation.DocID]; ok {
			continue
		}
		docNodeID := fmt.Sprintf("doc:%s", citation.DocID)
		docsSeen[citation.DocID] = docNodeID
		nodes = append(nodes, GraphNode{
			ID:    docNodeID,
			Label: citation.DocTitle,
			Type:  "document",
		})
		edges = append(edges, GraphEdge{
			Source: "query",
			Target: docNodeID,
			Weight: citation.ScoreFinal,
		})
	}

	for idx, citation := range citations {
		chunkNodeID := fmt.Sprintf("chunk:%d", idx)
		nodes = append(nodes, GraphNode{
			ID:      chunkNodeID,
			Label:   fmt.Sprintf("p%d", citation.PageNumber),
			Type:    "chunk",
			Snippet: citation.Snippet,
			Glow:    true,
		})
		edges = append(edges, GraphEdge{
			Source: docsSeen[citation.DocID],
			Target: chunkNodeID,
			Weight: citation.ScoreFinal,
		})
	}

	return Graph{Nodes: nodes, Edges: edges}
}
