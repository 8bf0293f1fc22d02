package postgres

import (
	"context"

	"github.com/SAP-F-2025/tool-assessment-service/internal/cache"
	"github.com/SAP-F-2025/tool-assessment-service/internal/models"
	"github.com/SAP-F-2025/tool-assessment-service/internal/repositories"
	"gorm.io/gorm"
)

type ToolPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewToolPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.ToolRepository {
	return &ToolPostgreSQL{
		db:           db,
		cacheManager: cacheManager,
	}
}

// GetByID retrieves a tool by ID with caching
func (r *ToolPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Tool, error) {
	db := scopedDB(r.db, tx)
	var tool models.Tool

	err := r.cacheManager.Tool.CacheOrExecute(ctx, "id:"+id, &tool, cache.ToolCacheConfig.TTL, func() (interface{}, error) {
		var dbTool models.Tool
		if err := db.WithContext(ctx).Where("tool_id = ?", id).Take(&dbTool).Error; err != nil {
			return nil, wrapError("failed to get tool", err)
		}
		return &dbTool, nil
	})
	if err != nil {
		return nil, err
	}

	return &tool, nil
}

// List retrieves all tools ordered by tool_id
func (r *ToolPostgreSQL) List(ctx context.Context, tx *gorm.DB) ([]*models.Tool, error) {
	db := scopedDB(r.db, tx)
	var tools []*models.Tool

	err := r.cacheManager.Tool.CacheOrExecute(ctx, "list", &tools, cache.ToolCacheConfig.ListTTL, func() (interface{}, error) {
		var dbTools []*models.Tool
		if err := db.WithContext(ctx).Order("tool_id ASC").Find(&dbTools).Error; err != nil {
			return nil, wrapError("failed to list tools", err)
		}
		return dbTools, nil
	})
	if err != nil {
		return nil, err
	}

	return tools, nil
}
