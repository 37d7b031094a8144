package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/alchemorsel-voice/backend/internal/service"
	"github.com/pageza/alchemorsel-voice/backend/internal/types"
)

// MockSpeechService is a mock implementation of the speech service
type MockSpeechService struct {
	mock.Mock
}

// ListVoices mocks the ListVoices method
func (m *MockSpeechService) ListVoices(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// Synthesize mocks the Synthesize method
func (m *MockSpeechService) Synthesize(ctx context.Context, req *types.SpeechRequest) (*service.SpeechResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SpeechResult), args.Error(1)
}
