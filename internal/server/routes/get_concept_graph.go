package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ragcourselab/backend/internal/server/middleware"
	"github.com/ragcourselab/backend/pkg/graph"
)

// GetConceptGraphHandler builds and returns the concept co-occurrence graph
// over the current corpus. The graph is rebuilt from scratch on every call.
func GetConceptGraphHandler(c echo.Context) error {
	corpus := c.(*middleware.AppContext).App.Store
	return c.JSON(http.StatusOK, graph.BuildConceptGraph(corpus.Documents(), corpus.Chunks()))
}
