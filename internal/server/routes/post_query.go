package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ragcourselab/backend/internal/server/middleware"
	"github.com/ragcourselab/backend/pkg/query"
)

// QueryHandler answers one natural-language question against the corpus.
func QueryHandler(c echo.Context) error {
	type queryRequest struct {
		Question string `json:"question" validate:"required"`
		Mode     string `json:"mode"`
		TopK     int    `json:"top_k"`
		Rerank   *bool  `json:"rerank"`
	}

	type errorResponse struct {
		Message string `json:"message"`
	}

	data := new(queryRequest)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request body",
		})
	}

	req := query.Request{
		Question: data.Question,
		Mode:     data.Mode,
		TopK:     data.TopK,
		Rerank:   true,
	}
	if req.Mode == "" {
		req.Mode = query.ModeHybrid
	}
	if req.TopK <= 0 {
		req.TopK = 5
	}
	if data.Rerank != nil {
		req.Rerank = *data.Rerank
	}

	corpus := c.(*middleware.AppContext).App.Store
	resp := query.Retrieve(corpus, req)

	return c.JSON(http.StatusOK, resp)
}
