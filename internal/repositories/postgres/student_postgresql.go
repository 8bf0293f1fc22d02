package postgres

import (
	"context"

	"github.com/SAP-F-2025/tool-assessment-service/internal/models"
	"github.com/SAP-F-2025/tool-assessment-service/internal/repositories"
	"gorm.io/gorm"
)

const studentAssessmentBatchSize = 500

type StudentPostgreSQL struct {
	db *gorm.DB
}

func NewStudentPostgreSQL(db *gorm.DB) repositories.StudentRepository {
	return &StudentPostgreSQL{db: db}
}

// FindIDs returns the ids of students matching both enrollment year and school
func (r *StudentPostgreSQL) FindIDs(ctx context.Context, tx *gorm.DB, filters repositories.StudentFilters) ([]uint, error) {
	db := scopedDB(r.db, tx)
	var ids []uint
	if err := db.WithContext(ctx).
		Model(&models.Student{}).
		Where("enrollment_year = ? AND school = ?", filters.EnrollmentYear, filters.School).
		Order("student_id ASC").
		Pluck("student_id", &ids).Error; err != nil {
		return nil, wrapError("failed to find students", err)
	}
	return ids, nil
}

type StudentAssessmentPostgreSQL struct {
	db *gorm.DB
}

func NewStudentAssessmentPostgreSQL(db *gorm.DB) repositories.StudentAssessmentRepository {
	return &StudentAssessmentPostgreSQL{db: db}
}

// GetByStudent retrieves the tool assignments of one student ordered by start date
func (r *StudentAssessmentPostgreSQL) GetByStudent(ctx context.Context, tx *gorm.DB, studentID string) ([]*models.StudentAssessment, error) {
	db := scopedDB(r.db, tx)
	var rows []*models.StudentAssessment
	if err := db.WithContext(ctx).
		Select("tool_id", "assessment_start_date", "assessment_end_date").
		Where("student_id = ?", studentID).
		Order("assessment_start_date ASC").
		Find(&rows).Error; err != nil {
		return nil, wrapError("failed to get student assessments", err)
	}
	return rows, nil
}

// CreateBatch inserts assignments; callers wrap it in a transaction for atomicity
func (r *StudentAssessmentPostgreSQL) CreateBatch(ctx context.Context, tx *gorm.DB, assessments []*models.StudentAssessment) error {
	if len(assessments) == 0 {
		return nil
	}

	db := scopedDB(r.db, tx)
	if err := db.WithContext(ctx).CreateInBatches(assessments, studentAssessmentBatchSize).Error; err != nil {
		return wrapError("failed to create student assessments batch", err)
	}
	return nil
}
