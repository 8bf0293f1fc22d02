package postgres

import (
	"context"

	"github.com/SAP-F-2025/tool-assessment-service/internal/models"
	"github.com/SAP-F-2025/tool-assessment-service/internal/repositories"
	"gorm.io/gorm"
)

type QuestionPostgreSQL struct {
	db *gorm.DB
}

func NewQuestionPostgreSQL(db *gorm.DB) repositories.QuestionRepository {
	return &QuestionPostgreSQL{db: db}
}

// GetByTool retrieves the questions of a tool in insertion order
func (r *QuestionPostgreSQL) GetByTool(ctx context.Context, tx *gorm.DB, toolID string) ([]*models.Question, error) {
	db := scopedDB(r.db, tx)
	var questions []*models.Question
	if err := db.WithContext(ctx).
		Where("tool_id = ?", toolID).
		Order("question_id ASC").
		Find(&questions).Error; err != nil {
		return nil, wrapError("failed to get questions by tool", err)
	}
	return questions, nil
}
