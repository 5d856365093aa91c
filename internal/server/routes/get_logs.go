package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ragcourselab/backend/internal/server/middleware"
)

// GetLogsHandler returns the query log history, most recent first.
func GetLogsHandler(c echo.Context) error {
	type logItem struct {
		LogID         string   `json:"log_id"`
		Timestamp     string   `json:"timestamp"`
		Question      string   `json:"question"`
		Mode          string   `json:"mode"`
		TopK          int      `json:"top_k"`
		Rerank        bool     `json:"rerank"`
		UsedDocs      []string `json:"used_docs"`
		Grounded      bool     `json:"grounded"`
		Answerability string   `json:"answerability"`
		Refused       bool     `json:"refused"`
		TotalMs       float64  `json:"total_ms"`
	}

	type logsResponse struct {
		Logs []logItem `json:"logs"`
	}

	corpus := c.(*middleware.AppContext).App.Store

	logs := corpus.Logs()
	items := make([]logItem, 0, len(logs))
	for _, log := range logs {
		items = append(items, logItem{
			LogID:         log.LogID,
			Timestamp:     log.Timestamp.Format(time.RFC3339),
			Question:      log.Question,
			Mode:          log.Mode,
			TopK:          log.TopK,
			Rerank:        log.Rerank,
			UsedDocs:      log.UsedDocs,
			Grounded:      log.Grounded,
			Answerability: log.Answerability,
			Refused:       log.Refused,
			TotalMs:       log.TotalMs,
		})
	}

	return c.JSON(http.StatusOK, logsResponse{Logs: items})
}
