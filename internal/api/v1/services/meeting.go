package services

import (
	"context"
	"errors"
	"mime/multipart"

	"go.uber.org/zap"

	apierrors "github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/api/errors"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/api/v1/dto"
	apperrors "github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/errors"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/pipeline"
)

// Client-facing messages
const (
	MsgNoAudioUploaded = "No audio file uploaded"
	MsgOnlyAudio       = "Only audio files are allowed!"
	MsgAudioTooLarge   = "Audio file is too large"
	MsgProcessFailed   = "Failed to process meeting audio"
)

// meetingService implements MeetingService
type meetingService struct {
	store    UploadStore
	analyzer Analyzer
	logger   *zap.Logger
}

// NewMeetingService creates a new meeting service
func NewMeetingService(store UploadStore, analyzer Analyzer, logger *zap.Logger) MeetingService {
	return &meetingService{
		store:    store,
		analyzer: analyzer,
		logger:   logger,
	}
}

// AnalyzeUpload stores the recording, runs it through the pipeline and maps
// every failure to an API error.
func (s *meetingService) AnalyzeUpload(ctx context.Context, header *multipart.FileHeader) (*dto.MeetingAnalysisResponse, error) {
	upload, err := s.store.SaveMultipart(header)
	if err != nil {
		return nil, s.toAPIError(err)
	}

	result, err := s.analyzer.Run(ctx, upload)
	if err != nil {
		return nil, s.toAPIError(err)
	}

	return &dto.MeetingAnalysisResponse{
		Transcription: result.Transcription,
		Analysis:      result.Analysis,
	}, nil
}

// toAPIError is the single mapping from application errors to the envelope
func (s *meetingService) toAPIError(err error) *apierrors.APIError {
	switch {
	case errors.Is(err, apperrors.ErrMissingUpload):
		return apierrors.NewBadRequestError(MsgNoAudioUploaded)
	case errors.Is(err, apperrors.ErrNotAudio):
		return apierrors.NewBadRequestError(MsgOnlyAudio)
	case errors.Is(err, apperrors.ErrUploadTooLarge):
		return apierrors.WrapError(err, apierrors.KindPayloadTooLarge, MsgAudioTooLarge)
	}

	var stageErr *pipeline.StageError
	if errors.As(err, &stageErr) {
		// Provider message is passed through as-is
		return apierrors.WrapError(stageErr.Err, apierrors.KindInternal, MsgProcessFailed)
	}

	s.logger.Error("Failed to store upload", zap.Error(err))
	return apierrors.WrapError(err, apierrors.KindInternal, MsgProcessFailed)
}
