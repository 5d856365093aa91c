package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ragcourselab/backend/internal/server/middleware"
)

// GetOverviewHandler returns the aggregate dashboard statistics.
func GetOverviewHandler(c echo.Context) error {
	corpus := c.(*middleware.AppContext).App.Store
	return c.JSON(http.StatusOK, corpus.Overview())
}
