package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/ragcourselab/backend/pkg/loader"
	"github.com/ragcourselab/backend/pkg/store"
)

// App holds the shared collaborators every handler needs: the corpus store
// and the PDF page extractor.
type App struct {
	Store *store.Store
	PDF   loader.PageExtractor
}

// AppContext wraps the echo context with the shared App.
type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware attaches the shared App to every request context.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
