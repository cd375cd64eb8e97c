package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHealth handles GET /api/health with a database ping.
func (h *Handler) GetHealth(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
