package server

import (
	"github.com/labstack/echo/v4"

	"github.com/ragcourselab/backend/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Corpus routes
	apiRoutes.POST("/docs", routes.UploadDocHandler)
	apiRoutes.GET("/docs", routes.ListDocsHandler)

	// RAG query routes
	apiRoutes.POST("/rag/query", routes.QueryHandler)
	apiRoutes.GET("/rag/logs", routes.GetLogsHandler)
	apiRoutes.GET("/rag/overview", routes.GetOverviewHandler)

	// Concept graph route
	apiRoutes.GET("/concept-graph", routes.GetConceptGraphHandler)
}
