package services

import (
	"context"
	"mime/multipart"

	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/api/v1/dto"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/model"
)

// MeetingService defines the interface for meeting analysis operations
type MeetingService interface {
	AnalyzeUpload(ctx context.Context, header *multipart.FileHeader) (*dto.MeetingAnalysisResponse, error)
}

// UploadStore persists an uploaded recording for the pipeline
type UploadStore interface {
	SaveMultipart(header *multipart.FileHeader) (*model.UploadedAudio, error)
}

// Analyzer runs a stored upload through transcription and analysis
type Analyzer interface {
	Run(ctx context.Context, upload *model.UploadedAudio) (*model.PipelineResult, error)
}
