package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ragcourselab/backend/internal/server/middleware"
)

// ListDocsHandler returns every ingested document in first-ingest order.
func ListDocsHandler(c echo.Context) error {
	type documentOut struct {
		DocID      string   `json:"doc_id"`
		Title      string   `json:"title"`
		SourceType string   `json:"source_type"`
		Topics     []string `json:"topics"`
		NumChunks  int      `json:"num_chunks"`
		CreatedAt  string   `json:"created_at"`
		UpdatedAt  string   `json:"updated_at"`
	}

	type listDocsResponse struct {
		Documents []documentOut `json:"documents"`
	}

	corpus := c.(*middleware.AppContext).App.Store

	docs := corpus.Documents()
	out := make([]documentOut, 0, len(docs))
	for _, doc := range docs {
		out = append(out, documentOut{
			DocID:      doc.DocID,
			Title:      doc.Title,
			SourceType: doc.SourceType,
			Topics:     doc.Topics,
			NumChunks:  doc.NumChunks,
			CreatedAt:  doc.CreatedAt.Format(time.RFC3339),
			UpdatedAt:  doc.UpdatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, listDocsResponse{Documents: out})
}
