package dto

// MeetingAnalysisResponse is returned by POST /api/meetings/testTranscription
type MeetingAnalysisResponse struct {
	Transcription string `json:"transcription" example:"Let's ship v2 by Friday."`
	Analysis      string `json:"analysis" example:"## EXECUTIVE SUMMARY\nThe team agreed to release v2 this week."`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
