package graph

import (
	"fmt"

	"github.com/ragcourselab/backend/pkg/store"
)

// Node types in the concept graph.
const (
	NodeTypeDocument = "document"
	NodeTypeConcept  = "concept"
)

// ConceptNode is one node of the concept co-occurrence graph: either an
// ingested document or a normalized key phrase.
type ConceptNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// ConceptEdge connects a document to a concept it mentions, or two concepts
// that co-occur within a chunk. Weight counts the contributing chunks.
type ConceptEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// ConceptGraph is the full node and edge collection, rebuilt from scratch
// on every request.
type ConceptGraph struct {
	Nodes []ConceptNode `json:"nodes"`
	Edges []ConceptEdge `json:"edges"`
}

type edgeKey struct {
	source string
	target string
}

// BuildConceptGraph builds the document↔concept↔concept graph over the
// given corpus. Per chunk, each distinct concept increments its
// document→concept edge by 1.0, and every unordered pair of distinct
// co-occurring concepts increments its concept↔concept edge by 1.0. A
// concept appearing alone in a chunk contributes no concept–concept edge.
func BuildConceptGraph(documents []store.Document, chunks []store.Chunk) ConceptGraph {
	nodes := make([]ConceptNode, 0, len(documents))
	nodeSeen := make(map[string]struct{}, len(documents))

	for _, doc := range documents {
		nodes = append(nodes, ConceptNode{
			ID:    doc.DocID,
			Label: doc.Title,
			Type:  NodeTypeDocument,
		})
		nodeSeen[doc.DocID] = struct{}{}
	}

	edges := make(map[edgeKey]float64)
	edgeOrder := make([]edgeKey, 0)

	bump := func(key edgeKey) {
		if _, ok := edges[key]; !ok {
			edgeOrder = append(edgeOrder, key)
		}
		edges[key] += 1.0
	}

	for _, chunk := range chunks {
		concepts := extractConcepts(chunk.Text)
		if len(concepts) == 0 {
			continue
		}

		for _, concept := range concepts {
			conceptID := fmt.Sprintf("concept:%s", concept)
			if _, ok := nodeSeen[conceptID]; !ok {
				nodeSeen[conceptID] = struct{}{}
				nodes = append(nodes, ConceptNode{
					ID:    conceptID,
					Label: concept,
					Type:  NodeTypeConcept,
				})
			}
			bump(edgeKey{source: chunk.DocID, target: conceptID})
		}

		// Concepts are sorted, so the pair key is already canonical.
		for i := 0; i < len(concepts); i++ {
			for j := i + 1; j < len(concepts); j++ {
				bump(edgeKey{
					source: fmt.Sprintf("concept:%s", concepts[i]),
					target: fmt.Sprintf("concept:%s", concepts[j]),
				})
			}
		}
	}

	out := make([]ConceptEdge, 0, len(edgeOrder))
	for _, key := range edgeOrder {
		out = append(out, ConceptEdge{
			Source: key.source,
			Target: key.target,
			Weight: edges[key],
		})
	}

	return ConceptGraph{Nodes: nodes, Edges: out}
}
