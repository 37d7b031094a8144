package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pageza/alchemorsel-voice/backend/internal/middleware"
	"github.com/pageza/alchemorsel-voice/backend/internal/mocks"
	"github.com/pageza/alchemorsel-voice/backend/internal/service"
	"github.com/pageza/alchemorsel-voice/backend/internal/testhelpers"
	"github.com/pageza/alchemorsel-voice/backend/internal/types"
)

func TestListVoices(t *testing.T) {
	t.Run("relays upstream body", func(t *testing.T) {
		speech := new(mocks.MockSpeechService)
		voices := json.RawMessage(`[{"voiceId":"en-US-ken","displayName":"Ken"}]`)
		speech.On("ListVoices", mock.Anything).Return(voices, nil)

		router := setupTestRouter(new(mocks.MockRecipeService), speech, nil)
		w := PerformRequest(t, router, "GET", "/api/voices", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
		assert.JSONEq(t, string(voices), w.Body.String())
		speech.AssertExpectations(t)
	})

	t.Run("upstream failure", func(t *testing.T) {
		speech := new(mocks.MockSpeechService)
		speech.On("ListVoices", mock.Anything).Return(nil, &service.UpstreamError{
			Message: "Failed to fetch voices",
			Status:  401,
			Text:    "Unauthorized",
		})

		router := setupTestRouter(new(mocks.MockRecipeService), speech, nil)
		w := PerformRequest(t, router, "GET", "/api/voices", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to fetch voices","status":401,"text":"Unauthorized"}`, w.Body.String())
	})

	t.Run("transport failure", func(t *testing.T) {
		speech := new(mocks.MockSpeechService)
		speech.On("ListVoices", mock.Anything).Return(nil, &service.TransportError{
			Message: "Exception occurred",
			Err:     errors.New("connection refused"),
		})

		router := setupTestRouter(new(mocks.MockRecipeService), speech, nil)
		w := PerformRequest(t, router, "GET", "/api/voices", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Exception occurred","details":"connection refused"}`, w.Body.String())
	})
}

func TestSynthesize(t *testing.T) {
	t.Run("audio url", func(t *testing.T) {
		speech := new(mocks.MockSpeechService)
		speech.On("Synthesize", mock.Anything, &types.SpeechRequest{Text: "Hello", VoiceID: "en-US-natalie"}).
			Return(&service.SpeechResult{AudioURL: "https://cdn.example.com/a.mp3"}, nil)

		router := setupTestRouter(new(mocks.MockRecipeService), speech, nil)
		w := PerformRequest(t, router, "POST", "/api/tts", gin.H{"text": "Hello", "voiceId": "en-US-natalie"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"audioUrl":"https://cdn.example.com/a.mp3"}`, w.Body.String())
		speech.AssertExpectations(t)
	})

	t.Run("raw audio", func(t *testing.T) {
		audio := []byte{0x49, 0x44, 0x33, 0x04}
		speech := new(mocks.MockSpeechService)
		speech.On("Synthesize", mock.Anything, mock.AnythingOfType("*types.SpeechRequest")).
			Return(&service.SpeechResult{Audio: audio, ContentType: "audio/mpeg"}, nil)

		router := setupTestRouter(new(mocks.MockRecipeService), speech, nil)
		w := PerformRequest(t, router, "POST", "/api/tts", gin.H{"text": "Hello"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
		assert.Equal(t, audio, w.Body.Bytes())
	})

	t.Run("missing text", func(t *testing.T) {
		speech := new(mocks.MockSpeechService)
		speech.On("Synthesize", mock.Anything, &types.SpeechRequest{}).
			Return(nil, &service.InvalidInputError{Message: "Missing text"})

		router := setupTestRouter(new(mocks.MockRecipeService), speech, nil)
		w := PerformRequest(t, router, "POST", "/api/tts", "{broken")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Missing text"}`, w.Body.String())
	})

	t.Run("upstream error details", func(t *testing.T) {
		speech := new(mocks.MockSpeechService)
		speech.On("Synthesize", mock.Anything, mock.Anything).Return(nil, &service.UpstreamError{
			Message: "Murf returned error",
			Details: map[string]any{"errorMessage": "Invalid voice"},
		})

		router := setupTestRouter(new(mocks.MockRecipeService), speech, nil)
		w := PerformRequest(t, router, "POST", "/api/tts", gin.H{"text": "Hello", "voiceId": "nope"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Murf returned error","details":{"errorMessage":"Invalid voice"}}`, w.Body.String())
	})

	t.Run("missing audio reference", func(t *testing.T) {
		speech := new(mocks.MockSpeechService)
		speech.On("Synthesize", mock.Anything, mock.Anything).Return(nil, &service.UpstreamError{
			Message: "No audio URL returned",
			Raw:     map[string]any{"encodedAudio": nil},
		})

		router := setupTestRouter(new(mocks.MockRecipeService), speech, nil)
		w := PerformRequest(t, router, "POST", "/api/tts", gin.H{"text": "Hello"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"No audio URL returned","raw":{"encodedAudio":null}}`, w.Body.String())
	})
}

func TestSpeechRoutesWithUnreachableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	limiter := middleware.NewSpeechRateLimiter(client, 5, time.Minute, zaptest.NewLogger(t))

	speech := new(mocks.MockSpeechService)
	speech.On("ListVoices", mock.Anything).Return(json.RawMessage(`[]`), nil)
	router := setupTestRouter(new(mocks.MockRecipeService), speech, limiter)

	t.Run("limiter fails open", func(t *testing.T) {
		w := PerformRequest(t, router, "GET", "/api/voices", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Error"))
	})

	t.Run("quota endpoint reports failure", func(t *testing.T) {
		w := PerformRequest(t, router, "GET", "/api/rate-limits/speech", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"failed to check rate limit"}`, w.Body.String())
	})
}

func TestSpeechRoutesWithRedisLimiter(t *testing.T) {
	opts, err := redis.ParseURL(testhelpers.RedisURL(t))
	require.NoError(t, err)
	client := redis.NewClient(opts)
	defer client.Close()

	limiter := middleware.NewRateLimiter(client, middleware.RateLimitConfig{
		Window:    time.Hour,
		Limit:     2,
		KeyPrefix: "rate_limit:speech:" + uuid.NewString(),
	}, zaptest.NewLogger(t))

	speech := new(mocks.MockSpeechService)
	speech.On("ListVoices", mock.Anything).Return(json.RawMessage(`[]`), nil)
	router := setupTestRouter(new(mocks.MockRecipeService), speech, limiter)

	w := PerformRequest(t, router, "GET", "/api/rate-limits/speech", nil)
	require.Equal(t, http.StatusOK, w.Code)
	quota := decodeBody(t, w)
	assert.Equal(t, float64(2), quota["limit"])
	assert.Equal(t, float64(2), quota["remaining"])
	assert.Equal(t, "1h0m0s", quota["window"])

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := PerformRequest(t, router, "GET", "/api/voices", nil)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)
	speech.AssertNumberOfCalls(t, "ListVoices", 2)

	w = PerformRequest(t, router, "GET", "/api/rate-limits/speech", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeBody(t, w)["remaining"])
}
