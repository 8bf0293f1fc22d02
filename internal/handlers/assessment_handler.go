package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/tool-assessment-service/internal/models"
	"github.com/SAP-F-2025/tool-assessment-service/internal/services"
	"github.com/SAP-F-2025/tool-assessment-service/internal/utils"
	"github.com/SAP-F-2025/tool-assessment-service/internal/validator"
)

const (
	StudentIDHeader = "student-id"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type AssessmentHandler struct {
	BaseHandler
	assessmentService        services.AssessmentService
	studentAssessmentService services.StudentAssessmentService
	exportService            services.ExportService
}

func NewAssessmentHandler(
	assessmentService services.AssessmentService,
	studentAssessmentService services.StudentAssessmentService,
	exportService services.ExportService,
	logger utils.Logger,
) *AssessmentHandler {
	return &AssessmentHandler{
		BaseHandler:              NewBaseHandler(logger),
		assessmentService:        assessmentService,
		studentAssessmentService: studentAssessmentService,
		exportService:            exportService,
	}
}

// ListAssessments returns every tool with nested questions and scales
// @Summary List assessments
// @Tags assessments
// @Produce json
// @Success 200 {array} models.ToolWithQuestions
// @Failure 500 {object} ErrorResponse
// @Router /assessment [get]
func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	h.LogRequest(c, "Listing assessments")

	tools, err := h.assessmentService.ListAssessments(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tools)
}

// GetStudentAssessments returns the caller's assignments grouped by date window
// @Summary Get student assessments
// @Tags assessments
// @Produce json
// @Param student-id header string true "Student ID"
// @Success 200 {array} models.CombinedAssessment
// @Failure 500 {object} ErrorResponse
// @Router /assessment/student [get]
func (h *AssessmentHandler) GetStudentAssessments(c *gin.Context) {
	studentID := c.GetHeader(StudentIDHeader)
	h.LogRequest(c, "Getting student assessments", "student_id", studentID)

	groups, err := h.studentAssessmentService.GetStudentAssessments(c.Request.Context(), studentID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetAssessment returns one tool with its questions
// @Summary Get assessment
// @Tags assessments
// @Produce json
// @Param id path string true "Tool ID"
// @Success 200 {object} models.AssessmentDetail
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /assessment/{id} [get]
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Getting assessment", "tool_id", id)

	assessment, err := h.assessmentService.GetAssessment(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// ExportAssessment streams one tool as an XLSX workbook
// @Summary Export assessment
// @Tags assessments
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Tool ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /assessment/{id}/export [get]
func (h *AssessmentHandler) ExportAssessment(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Exporting assessment", "tool_id", id)

	data, err := h.exportService.ExportAssessment(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="assessment-%s.xlsx"`, id))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// PublishAssessment assigns tools to the selected student groups
// @Summary Publish assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Param request body services.PublishAssessmentRequest true "Publish request"
// @Success 200 {object} models.PublishResponse
// @Failure 500 {object} models.PublishResponse
// @Router /assessment/publish [post]
func (h *AssessmentHandler) PublishAssessment(c *gin.Context) {
	var req services.PublishAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.LogError(c, "Invalid publish payload", err)
		c.JSON(http.StatusInternalServerError, models.PublishResponse{
			Success: false,
			Error:   "Invalid request payload: " + err.Error(),
		})
		return
	}

	h.LogRequest(c, "Publishing assessment", "admin_id", string(req.AdminID))

	result, err := h.studentAssessmentService.PublishAssessment(c.Request.Context(), &req)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			h.LogError(c, "Invalid publish payload", err)
			c.JSON(http.StatusInternalServerError, models.PublishResponse{Success: false, Error: verrs.Error()})
			return
		}
		h.LogError(c, "Failed to publish assessment", err)
		c.JSON(http.StatusInternalServerError, models.PublishResponse{
			Success: false,
			Error:   "Failed to publish assessment",
		})
		return
	}

	c.JSON(http.StatusOK, models.PublishResponse{
		Success: true,
		Message: fmt.Sprintf("Assessment published to %d students", result.StudentCount),
	})
}
