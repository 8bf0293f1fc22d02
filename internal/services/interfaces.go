package services

import (
	"context"

	"github.com/SAP-F-2025/tool-assessment-service/internal/models"
	"github.com/SAP-F-2025/tool-assessment-service/internal/validator"
)

// PublishAssessmentRequest is the body of POST /api/assessment/publish
type PublishAssessmentRequest = validator.PublishAssessmentRequest

// PublishResult summarises an accepted publish request
type PublishResult struct {
	ToolIDs      []uint `json:"tool_ids"`
	StudentCount int    `json:"student_count"`
	RowCount     int    `json:"row_count"`
}

// ===== SERVICE INTERFACES =====

type AssessmentService interface {
	// ListAssessments returns every tool with its questions and their scales
	ListAssessments(ctx context.Context) ([]*models.ToolWithQuestions, error)
	// GetAssessment returns ErrToolNotFound when no tool matches id
	GetAssessment(ctx context.Context, id string) (*models.AssessmentDetail, error)
}

type StudentAssessmentService interface {
	// GetStudentAssessments groups a student's assignments by date window
	GetStudentAssessments(ctx context.Context, studentID string) ([]*models.CombinedAssessment, error)
	// PublishAssessment assigns the selected tools to the targeted students
	PublishAssessment(ctx context.Context, req *PublishAssessmentRequest) (*PublishResult, error)
}

type ExportService interface {
	// ExportAssessment renders one tool as an XLSX workbook
	ExportAssessment(ctx context.Context, id string) ([]byte, error)
}

type ServiceManager interface {
	Assessment() AssessmentService
	StudentAssessment() StudentAssessmentService
	Export() ExportService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
