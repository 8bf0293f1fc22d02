package postgres

import (
	"context"

	"github.com/SAP-F-2025/tool-assessment-service/internal/cache"
	"github.com/SAP-F-2025/tool-assessment-service/internal/models"
	"github.com/SAP-F-2025/tool-assessment-service/internal/repositories"
	"gorm.io/gorm"
)

type ScalePostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewScalePostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.ScaleRepository {
	return &ScalePostgreSQL{
		db:           db,
		cacheManager: cacheManager,
	}
}

// List retrieves every scale with caching
func (r *ScalePostgreSQL) List(ctx context.Context, tx *gorm.DB) ([]*models.Scale, error) {
	db := scopedDB(r.db, tx)
	var scales []*models.Scale

	err := r.cacheManager.Scale.CacheOrExecute(ctx, "list", &scales, cache.ScaleCacheConfig.ListTTL, func() (interface{}, error) {
		var dbScales []*models.Scale
		if err := db.WithContext(ctx).Find(&dbScales).Error; err != nil {
			return nil, wrapError("failed to list scales", err)
		}
		return dbScales, nil
	})
	if err != nil {
		return nil, err
	}

	return scales, nil
}

// GetByIDs retrieves the scales whose id is in ids
func (r *ScalePostgreSQL) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*models.Scale, error) {
	if len(ids) == 0 {
		return []*models.Scale{}, nil
	}

	db := scopedDB(r.db, tx)
	var scales []*models.Scale
	if err := db.WithContext(ctx).Where("scale_id IN ?", ids).Find(&scales).Error; err != nil {
		return nil, wrapError("failed to get scales by IDs", err)
	}
	return scales, nil
}

type QuestionScalePostgreSQL struct {
	db *gorm.DB
}

func NewQuestionScalePostgreSQL(db *gorm.DB) repositories.QuestionScaleRepository {
	return &QuestionScalePostgreSQL{db: db}
}

// GetByQuestion retrieves the scale references of one question
func (r *QuestionScalePostgreSQL) GetByQuestion(ctx context.Context, tx *gorm.DB, questionID uint) ([]*models.QuestionScale, error) {
	db := scopedDB(r.db, tx)
	var rows []*models.QuestionScale
	if err := db.WithContext(ctx).
		Select("question_id", "scale_id").
		Where("question_id = ?", questionID).
		Find(&rows).Error; err != nil {
		return nil, wrapError("failed to get question scales", err)
	}
	return rows, nil
}
