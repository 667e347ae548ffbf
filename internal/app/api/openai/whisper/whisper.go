package whisper

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sashabaranov/go-openai"
)

// ReaderHook wraps the audio stream before it is sent, e.g. for progress
// reporting. size is the file size in bytes.
type ReaderHook func(r io.Reader, size int64) io.Reader

// Option configures a RemoteTranscriber
type Option func(*RemoteTranscriber)

// WithReaderHook installs a hook around the outgoing audio stream
func WithReaderHook(hook ReaderHook) Option {
	return func(rt *RemoteTranscriber) {
		rt.readerHook = hook
	}
}

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client     *openai.Client
	model      string
	readerHook ReaderHook
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client, model string, opts ...Option) *RemoteTranscriber {
	if model == "" {
		model = openai.Whisper1
	}
	rt := &RemoteTranscriber{client: client, model: model}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Transcribe streams the file at audioPath to the OpenAI transcription
// endpoint and returns the plain-text transcript exactly as received.
// Provider errors are returned unchanged.
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if rt.readerHook != nil {
		stat, err := file.Stat()
		if err != nil {
			return "", fmt.Errorf("stat audio file: %w", err)
		}
		reader = rt.readerHook(file, stat.Size())
	}

	resp, err := rt.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    rt.model,
		FilePath: filepath.Base(audioPath),
		Reader:   reader,
		Format:   openai.AudioResponseFormatText,
	})
	if err != nil {
		return "", err
	}

	return resp.Text, nil
}
