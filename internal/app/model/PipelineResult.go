package model

// PipelineResult is the outcome of one transcribe-then-analyze pass.
// Analysis is markdown with the five meeting sections.
type PipelineResult struct {
	Transcription string `json:"transcription"`
	Analysis      string `json:"analysis"`
}
