package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/alchemorsel-voice/backend/internal/service"
)

// respondError converts a service error into the JSON body and status the
// API promises: 400 for invalid input, 500 with diagnostics for everything
// else.
func respondError(c *gin.Context, err error) {
	var (
		invalid   *service.InvalidInputError
		transport *service.TransportError
		upstream  *service.UpstreamError
	)

	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Message})

	case errors.As(err, &transport):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   transport.Message,
			"details": transport.Err.Error(),
		})

	case errors.As(err, &upstream):
		body := gin.H{"error": upstream.Message}
		if upstream.Status != 0 {
			body["status"] = upstream.Status
		}
		if upstream.Text != "" {
			body["text"] = upstream.Text
		}
		if upstream.Details != nil {
			body["details"] = upstream.Details
		}
		if upstream.Raw != nil {
			body["raw"] = upstream.Raw
		}
		c.JSON(http.StatusInternalServerError, body)

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}
