package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/pageza/alchemorsel-voice/backend/internal/middleware"
	"github.com/pageza/alchemorsel-voice/backend/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRouter(recipes *mocks.MockRecipeService, speech *mocks.MockSpeechService, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.New()
	RegisterRoutes(router, recipes, speech, limiter)
	return router
}

// PerformRequest sends body (raw string or any JSON-marshalable value) to the
// router and returns the recorded response.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
