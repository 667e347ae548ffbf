package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/api"
)

// MockSummarizer is a testify mock of api.Summarizer
type MockSummarizer struct {
	mock.Mock
}

// NewMockSummarizer creates a MockSummarizer with no expectations
func NewMockSummarizer() *MockSummarizer {
	return &MockSummarizer{}
}

// Summarize implements the api.Summarizer interface
func (m *MockSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	args := m.Called(ctx, transcript)
	return args.String(0), args.Error(1)
}

// ExpectSummarize sets up an expectation for the given transcript
func (m *MockSummarizer) ExpectSummarize(transcript, response string, err error) *mock.Call {
	return m.On("Summarize", mock.Anything, transcript).Return(response, err)
}

var _ api.Summarizer = (*MockSummarizer)(nil)
