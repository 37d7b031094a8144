package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-voice/backend/internal/types"
)

const (
	voicesPath   = "/v1/speech/voices"
	generatePath = "/v1/speech/generate"

	defaultVoiceID = "en-US-ken"
	defaultFormat  = "MP3"
)

// audioReferenceFields lists, in priority order, the response fields that may
// carry the synthesized audio URL.
var audioReferenceFields = []string{"audioUrl", "audioFile", "fileUrl", "url"}

// SpeechConfig configures the Murf client
type SpeechConfig struct {
	APIKey           string
	BaseURL          string
	VoicesTimeout    time.Duration
	SynthesisTimeout time.Duration
	DefaultVoiceID   string
	DefaultFormat    string
}

// SpeechResult holds either an audio URL or inline audio bytes.
type SpeechResult struct {
	AudioURL    string
	Audio       []byte
	ContentType string
}

// generateRequest is the body sent to the synthesis endpoint
type generateRequest struct {
	VoiceID string `json:"voiceId"`
	Text    string `json:"text"`
	Format  string `json:"format"`
	Style   string `json:"style,omitempty"`
}

type upstreamResponse struct {
	status      int
	contentType string
	body        []byte
}

// SpeechService proxies voice listing and synthesis to the Murf API. Each
// call is attempted exactly once.
type SpeechService struct {
	cfg    SpeechConfig
	client *http.Client
	logger *zap.Logger
}

// NewSpeechService creates a new SpeechService instance. A nil client uses a
// fresh http.Client; timeouts are applied per call.
func NewSpeechService(cfg SpeechConfig, client *http.Client, logger *zap.Logger) (*SpeechService, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("MURF_API_KEY environment variable is missing")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.murf.ai"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.VoicesTimeout <= 0 {
		cfg.VoicesTimeout = 10 * time.Second
	}
	if cfg.SynthesisTimeout <= 0 {
		cfg.SynthesisTimeout = 30 * time.Second
	}
	if cfg.DefaultVoiceID == "" {
		cfg.DefaultVoiceID = defaultVoiceID
	}
	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = defaultFormat
	}
	if client == nil {
		client = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SpeechService{
		cfg:    cfg,
		client: client,
		logger: logger,
	}, nil
}

// ListVoices returns the upstream voice catalog unchanged.
func (s *SpeechService) ListVoices(ctx context.Context) (json.RawMessage, error) {
	resp, err := s.do(ctx, http.MethodGet, voicesPath, nil, s.cfg.VoicesTimeout)
	if err != nil {
		s.logger.Warn("voice listing failed", zap.Error(err))
		return nil, &TransportError{Message: "Exception occurred", Err: err}
	}

	if !isSuccess(resp.status) {
		s.logger.Warn("voice listing rejected", zap.Int("status", resp.status))
		return nil, &UpstreamError{
			Message: "Failed to fetch voices",
			Status:  resp.status,
			Text:    string(resp.body),
		}
	}

	if !json.Valid(resp.body) {
		return nil, &UpstreamError{
			Message: "Exception occurred",
			Status:  resp.status,
			Text:    string(resp.body),
		}
	}

	return json.RawMessage(resp.body), nil
}

// Synthesize converts text to speech. The result is an audio URL when Murf
// answers with JSON, or the raw bytes when it answers with audio/*.
func (s *SpeechService) Synthesize(ctx context.Context, req *types.SpeechRequest) (*SpeechResult, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, &InvalidInputError{Message: "Missing text"}
	}

	payload := generateRequest{
		VoiceID: req.VoiceID,
		Text:    text,
		Format:  req.Format,
		Style:   req.Style,
	}
	if payload.VoiceID == "" {
		payload.VoiceID = s.cfg.DefaultVoiceID
	}
	if payload.Format == "" {
		payload.Format = s.cfg.DefaultFormat
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal synthesis request: %w", err)
	}

	resp, err := s.do(ctx, http.MethodPost, generatePath, body, s.cfg.SynthesisTimeout)
	if err != nil {
		s.logger.Warn("synthesis request failed", zap.Error(err))
		return nil, &TransportError{Message: "Request failed", Err: err}
	}

	if !isSuccess(resp.status) {
		s.logger.Warn("synthesis rejected", zap.Int("status", resp.status))
		var details any
		if err := json.Unmarshal(resp.body, &details); err == nil {
			return nil, &UpstreamError{Message: "Murf returned error", Status: resp.status, Details: details}
		}
		return nil, &UpstreamError{Message: "Murf returned non-200", Status: resp.status, Text: string(resp.body)}
	}

	contentType := strings.ToLower(resp.contentType)
	switch {
	case strings.Contains(contentType, "application/json"):
		var parsed any
		if err := json.Unmarshal(resp.body, &parsed); err != nil {
			return nil, &UpstreamError{Message: "Unexpected response format", Status: resp.status, Text: string(resp.body)}
		}
		audioURL, ok := audioReference(parsed)
		if !ok {
			return nil, &UpstreamError{Message: "No audio URL returned", Raw: parsed}
		}
		return &SpeechResult{AudioURL: audioURL}, nil

	case strings.HasPrefix(contentType, "audio/"):
		return &SpeechResult{Audio: resp.body, ContentType: resp.contentType}, nil

	default:
		return nil, &UpstreamError{Message: "Unexpected response format", Status: resp.status}
	}
}

// audioReference returns the first non-empty string among the accepted
// audio reference fields.
func audioReference(parsed any) (string, bool) {
	obj, ok := parsed.(map[string]any)
	if !ok {
		return "", false
	}
	for _, field := range audioReferenceFields {
		if value, ok := obj[field].(string); ok && value != "" {
			return value, true
		}
	}
	return "", false
}

// do performs a single request bounded by timeout and reads the whole body
// before the deadline is released.
func (s *SpeechService) do(ctx context.Context, method, path string, body []byte, timeout time.Duration) (*upstreamResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.cfg.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("api-key", s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	s.logger.Debug("speech API call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	return &upstreamResponse{
		status:      resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		body:        data,
	}, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
