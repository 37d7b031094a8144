package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/alchemorsel-voice/backend/internal/middleware"
	"github.com/pageza/alchemorsel-voice/backend/internal/service"
	"github.com/pageza/alchemorsel-voice/backend/internal/types"
)

type SpeechHandler struct {
	speechService service.ISpeechService
	limiter       *middleware.RateLimiter
}

// NewSpeechHandler creates the speech proxy handler. limiter may be nil.
func NewSpeechHandler(speechService service.ISpeechService, limiter *middleware.RateLimiter) *SpeechHandler {
	return &SpeechHandler{
		speechService: speechService,
		limiter:       limiter,
	}
}

func (h *SpeechHandler) RegisterRoutes(router *gin.RouterGroup) {
	limited := h.limiter.RateLimitMiddleware()
	router.GET("/voices", limited, h.ListVoices)
	router.POST("/tts", limited, h.Synthesize)
}

// ListVoices relays the upstream voice catalog as-is.
func (h *SpeechHandler) ListVoices(c *gin.Context) {
	voices, err := h.speechService.ListVoices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", voices)
}

// Synthesize answers with {"audioUrl": ...} or with the raw audio bytes and
// their upstream content type.
func (h *SpeechHandler) Synthesize(c *gin.Context) {
	var req types.SpeechRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.speechService.Synthesize(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	if result.AudioURL != "" {
		c.JSON(http.StatusOK, gin.H{"audioUrl": result.AudioURL})
		return
	}
	c.Data(http.StatusOK, result.ContentType, result.Audio)
}
