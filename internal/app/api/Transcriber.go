package api

import "context"

// Transcriber converts a stored audio file to plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Summarizer turns a meeting transcript into a markdown analysis.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
