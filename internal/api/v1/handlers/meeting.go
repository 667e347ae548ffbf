package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/api/errors"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/api/middleware"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/api/v1/services"
)

// AudioField is the multipart part that carries the recording
const AudioField = "audio"

// multipartOverhead is allowed on top of the upload limit for boundaries
// and part headers.
const multipartOverhead = 1 << 20

// MeetingHandler handles meeting analysis endpoints
type MeetingHandler struct {
	service         services.MeetingService
	maxRequestBytes int64
}

// NewMeetingHandler creates a new meeting handler. maxUploadBytes <= 0
// leaves the request body unbounded.
func NewMeetingHandler(service services.MeetingService, maxUploadBytes int64) *MeetingHandler {
	h := &MeetingHandler{service: service}
	if maxUploadBytes > 0 {
		h.maxRequestBytes = maxUploadBytes + multipartOverhead
	}
	return h
}

// Analyze handles POST /api/meetings/testTranscription
// Transcribes an uploaded meeting recording and returns a structured analysis
//
// @Summary Transcribe and analyze a meeting recording
// @Description Uploads one audio file, transcribes it and returns the transcript with a markdown analysis (executive summary, key decisions, action items, follow-up points, next steps). The uploaded file is deleted once processed.
// @Tags meetings
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Meeting recording (audio/* media type)"
// @Success 200 {object} dto.MeetingAnalysisResponse "Transcript and analysis"
// @Failure 400 {object} errors.APIError "No audio file uploaded or not an audio file"
// @Failure 413 {object} errors.APIError "Audio file is too large"
// @Failure 500 {object} errors.APIError "Failed to process meeting audio"
// @Router /meetings/testTranscription [post]
func (h *MeetingHandler) Analyze(c *gin.Context) {
	if h.maxRequestBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxRequestBytes)
	}

	header, err := c.FormFile(AudioField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			middleware.HandleError(c, apierrors.WrapError(err, apierrors.KindPayloadTooLarge, services.MsgAudioTooLarge))
			return
		}
		middleware.HandleError(c, apierrors.NewBadRequestError(services.MsgNoAudioUploaded))
		return
	}

	response, err := h.service.AnalyzeUpload(c.Request.Context(), header)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
