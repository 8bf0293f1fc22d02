package repositories

import "context"

// Repository aggregates the table-scoped repositories of the assessment store
type Repository interface {
	// Tool domain
	Tool() ToolRepository
	Question() QuestionRepository

	// Scale domain
	Scale() ScaleRepository
	QuestionScale() QuestionScaleRepository

	// Student domain
	Student() StudentRepository
	StudentAssessment() StudentAssessmentRepository

	// Transaction support
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager interface for managing repository lifecycle
type RepositoryManager interface {
	// Initialize repositories with database connections
	Initialize() error

	// Get repository instance
	GetRepository() Repository

	// Health check for all repositories
	HealthCheck(ctx context.Context) error

	// Graceful shutdown
	Shutdown(ctx context.Context) error
}
