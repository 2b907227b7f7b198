package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	sqlDB *sql.DB
}

func NewHealthHandler(sqlDB *sql.DB) *HealthHandler {
	return &HealthHandler{sqlDB: sqlDB}
}

func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// Health reports liveness plus whether the database answers a ping.
// A dead database still answers 200: the process is up, and the
// storage flag tells the operator where to look.
func (h *HealthHandler) Health(c *gin.Context) {
	storageConnected := h.sqlDB != nil && h.sqlDB.Ping() == nil

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"status":           "OK",
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
		"storageConnected": storageConnected,
	})
}
