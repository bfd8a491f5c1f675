package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health answers liveness probes with a bare body, outside the envelope.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"healthy": true})
}
