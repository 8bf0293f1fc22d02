package repositories

import (
	"context"

	"github.com/SAP-F-2025/tool-assessment-service/internal/models"
	"gorm.io/gorm"
)

// Identifiers coming from path parameters and headers are passed through as
// strings; the store decides whether they match anything.

// ToolRepository reads assessment tools
type ToolRepository interface {
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Tool, error)
	List(ctx context.Context, tx *gorm.DB) ([]*models.Tool, error) // ordered by tool_id ascending
}

// QuestionRepository reads the questions of a tool
type QuestionRepository interface {
	GetByTool(ctx context.Context, tx *gorm.DB, toolID string) ([]*models.Question, error)
}

// ScaleRepository reads measurement scales
type ScaleRepository interface {
	List(ctx context.Context, tx *gorm.DB) ([]*models.Scale, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*models.Scale, error)
}

// QuestionScaleRepository reads the question/scale join table
type QuestionScaleRepository interface {
	GetByQuestion(ctx context.Context, tx *gorm.DB, questionID uint) ([]*models.QuestionScale, error)
}

// StudentRepository reads students
type StudentRepository interface {
	FindIDs(ctx context.Context, tx *gorm.DB, filters StudentFilters) ([]uint, error)
}

// StudentAssessmentRepository reads and writes tool assignments
type StudentAssessmentRepository interface {
	// GetByStudent returns tool id and window dates only, ordered by start date ascending
	GetByStudent(ctx context.Context, tx *gorm.DB, studentID string) ([]*models.StudentAssessment, error)
	CreateBatch(ctx context.Context, tx *gorm.DB, assessments []*models.StudentAssessment) error
}

// ===== FILTER STRUCTS =====

type StudentFilters struct {
	EnrollmentYear int    `json:"enrollment_year"`
	School         string `json:"school"`
}
