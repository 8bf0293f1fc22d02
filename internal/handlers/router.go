package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/tool-assessment-service/internal/metrics"
	"github.com/SAP-F-2025/tool-assessment-service/internal/services"
	"github.com/SAP-F-2025/tool-assessment-service/internal/utils"
)

const healthCheckTimeout = 3 * time.Second

type HandlerManager struct {
	assessmentHandler *AssessmentHandler
	health            func(ctx context.Context) error
	exportEnabled     bool
	logger            utils.Logger
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	export := serviceManager.Export()
	return &HandlerManager{
		assessmentHandler: NewAssessmentHandler(
			serviceManager.Assessment(),
			serviceManager.StudentAssessment(),
			export,
			logger,
		),
		health:        serviceManager.HealthCheck,
		exportEnabled: export != nil,
		logger:        logger,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/", Welcome)
	router.GET("/health", hm.HealthCheck)
	router.GET("/metrics", metrics.Handler())

	assessments := router.Group("/api/assessment")
	{
		assessments.GET("/", hm.assessmentHandler.ListAssessments)
		assessments.GET("/student", hm.assessmentHandler.GetStudentAssessments)
		assessments.POST("/publish", hm.assessmentHandler.PublishAssessment)
		assessments.GET("/:id", hm.assessmentHandler.GetAssessment)
		if hm.exportEnabled {
			assessments.GET("/:id/export", hm.assessmentHandler.ExportAssessment)
		}
	}
}

// Welcome endpoint
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mssg": "welcome"})
}

// HealthCheck pings the database and cache
func (hm *HandlerManager) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := hm.health(ctx); err != nil {
		utils.FromContext(c, hm.logger).Warn("Health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "tool-assessment-service",
	})
}
