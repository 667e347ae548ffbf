package testutil

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/api"
)

// MockTranscriber is a testify mock of api.Transcriber that also records
// the paths it was asked to transcribe.
type MockTranscriber struct {
	mock.Mock
	mu    sync.Mutex
	paths []string
}

// NewMockTranscriber creates a MockTranscriber with no expectations
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

// Transcribe implements the api.Transcriber interface
func (m *MockTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	m.mu.Lock()
	m.paths = append(m.paths, audioPath)
	m.mu.Unlock()

	args := m.Called(ctx, audioPath)
	return args.String(0), args.Error(1)
}

// ExpectTranscribe sets up an expectation for any path
func (m *MockTranscriber) ExpectTranscribe(response string, err error) *mock.Call {
	return m.On("Transcribe", mock.Anything, mock.AnythingOfType("string")).Return(response, err)
}

// Paths returns the audio paths seen so far
func (m *MockTranscriber) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, len(m.paths))
	copy(paths, m.paths)
	return paths
}

// Interface compliance check
var _ api.Transcriber = (*MockTranscriber)(nil)
