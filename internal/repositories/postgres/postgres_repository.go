package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/tool-assessment-service/internal/cache"
	"github.com/SAP-F-2025/tool-assessment-service/internal/repositories"
)

// PostgreSQLRepository implements the main Repository interface
type PostgreSQLRepository struct {
	db           *gorm.DB
	redisClient  *redis.Client
	cacheManager *cache.CacheManager

	tool              repositories.ToolRepository
	question          repositories.QuestionRepository
	scale             repositories.ScaleRepository
	questionScale     repositories.QuestionScaleRepository
	student           repositories.StudentRepository
	studentAssessment repositories.StudentAssessmentRepository
}

// RepositoryConfig holds configuration for repository initialization
type RepositoryConfig struct {
	DB          *gorm.DB
	RedisClient *redis.Client
}

// NewPostgreSQLRepository creates a repository with all sub-repositories
func NewPostgreSQLRepository(config RepositoryConfig) repositories.Repository {
	return newPostgreSQLRepository(config.DB, config.RedisClient, cache.NewCacheManager(config.RedisClient))
}

func newPostgreSQLRepository(db *gorm.DB, redisClient *redis.Client, cacheManager *cache.CacheManager) *PostgreSQLRepository {
	return &PostgreSQLRepository{
		db:                db,
		redisClient:       redisClient,
		cacheManager:      cacheManager,
		tool:              NewToolPostgreSQL(db, cacheManager),
		question:          NewQuestionPostgreSQL(db),
		scale:             NewScalePostgreSQL(db, cacheManager),
		questionScale:     NewQuestionScalePostgreSQL(db),
		student:           NewStudentPostgreSQL(db),
		studentAssessment: NewStudentAssessmentPostgreSQL(db),
	}
}

func (r *PostgreSQLRepository) Tool() repositories.ToolRepository {
	return r.tool
}

func (r *PostgreSQLRepository) Question() repositories.QuestionRepository {
	return r.question
}

func (r *PostgreSQLRepository) Scale() repositories.ScaleRepository {
	return r.scale
}

func (r *PostgreSQLRepository) QuestionScale() repositories.QuestionScaleRepository {
	return r.questionScale
}

func (r *PostgreSQLRepository) Student() repositories.StudentRepository {
	return r.student
}

func (r *PostgreSQLRepository) StudentAssessment() repositories.StudentAssessmentRepository {
	return r.studentAssessment
}

// WithTransaction executes a function within a database transaction
func (r *PostgreSQLRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newPostgreSQLRepository(tx, r.redisClient, r.cacheManager))
	})
}

// Ping checks the health of database and cache connections
func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	if r.cacheManager.Enabled() {
		if err := r.cacheManager.HealthCheck(ctx); err != nil {
			return fmt.Errorf("cache ping failed: %w", err)
		}
	}

	return nil
}

// Close closes all connections
func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	if r.redisClient != nil {
		if err := r.redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close Redis: %w", err)
		}
	}

	return nil
}

// RepositoryManager implements the RepositoryManager interface
type RepositoryManager struct {
	config RepositoryConfig
	repo   repositories.Repository
}

// NewRepositoryManager creates a new repository manager
func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &RepositoryManager{
		config: config,
	}
}

// Initialize verifies connections and builds the repository
func (rm *RepositoryManager) Initialize() error {
	if rm.config.DB == nil {
		return fmt.Errorf("database connection is required")
	}

	sqlDB, err := rm.config.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	if rm.config.RedisClient != nil {
		if _, err := rm.config.RedisClient.Ping(ctx).Result(); err != nil {
			return fmt.Errorf("redis connection failed: %w", err)
		}
	}

	rm.repo = NewPostgreSQLRepository(rm.config)

	return nil
}

// GetRepository returns the repository instance
func (rm *RepositoryManager) GetRepository() repositories.Repository {
	return rm.repo
}

// HealthCheck checks the health of all repository connections
func (rm *RepositoryManager) HealthCheck(ctx context.Context) error {
	if rm.repo == nil {
		return fmt.Errorf("repository not initialized")
	}

	return rm.repo.Ping(ctx)
}

// Shutdown closes all repository connections
func (rm *RepositoryManager) Shutdown(ctx context.Context) error {
	if rm.repo == nil {
		return nil
	}

	return rm.repo.Close()
}
