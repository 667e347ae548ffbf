package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/api/v1/handlers"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/api/v1/services"
)

// RegisterRoutes registers the meeting routes under router
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	meetingHandler := handlers.NewMeetingHandler(container.MeetingService, container.MaxUploadBytes)
	meetings := router.Group("/meetings")
	{
		meetings.POST("/testTranscription", meetingHandler.Analyze)
	}
}

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	MeetingService services.MeetingService
	MaxUploadBytes int64
}
