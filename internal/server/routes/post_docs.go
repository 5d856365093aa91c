package routes

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ragcourselab/backend/internal/server/middleware"
	"github.com/ragcourselab/backend/pkg/logger"
)

// UploadDocHandler ingests one uploaded PDF (multipart/form-data, field
// "file") into the corpus.
func UploadDocHandler(c echo.Context) error {
	type uploadDocResponse struct {
		Message   string `json:"message,omitempty"`
		DocID     string `json:"doc_id,omitempty"`
		Title     string `json:"title,omitempty"`
		NumChunks int    `json:"num_chunks"`
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, uploadDocResponse{
			Message: "No file provided",
		})
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return c.JSON(http.StatusBadRequest, uploadDocResponse{
			Message: "Only PDF files are supported",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, uploadDocResponse{
			Message: "Could not open file",
		})
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, uploadDocResponse{
			Message: "Could not read file",
		})
	}

	app := c.(*middleware.AppContext).App

	pages, err := app.PDF.ExtractPages(c.Request().Context(), content)
	if err != nil {
		logger.Error("[Docs] Failed to extract PDF text", "file", fileHeader.Filename, "err", err)
		return c.JSON(http.StatusBadRequest, uploadDocResponse{
			Message: "Could not extract text from PDF",
		})
	}

	doc, err := app.Store.Ingest(pages, fileHeader.Filename, "slides", []string{})
	if err != nil {
		logger.Error("[Docs] Failed to ingest document", "file", fileHeader.Filename, "err", err)
		return c.JSON(http.StatusInternalServerError, uploadDocResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, uploadDocResponse{
		DocID:     doc.DocID,
		Title:     doc.Title,
		NumChunks: doc.NumChunks,
	})
}
