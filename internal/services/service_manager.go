package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SAP-F-2025/tool-assessment-service/internal/events"
	"github.com/SAP-F-2025/tool-assessment-service/internal/repositories"
	"github.com/SAP-F-2025/tool-assessment-service/internal/validator"
)

// ServiceManagerConfig holds configuration for the service manager
type ServiceManagerConfig struct {
	// FanOutLimit bounds concurrent fetches while listing assessments
	FanOutLimit int
	// ExportEnabled mounts the XLSX export service
	ExportEnabled bool
}

// serviceManager implements ServiceManager interface
type serviceManager struct {
	// Dependencies
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
	config    ServiceManagerConfig

	// Service instances
	assessmentService        AssessmentService
	studentAssessmentService StudentAssessmentService
	exportService            ExportService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a new service manager with all dependencies
func NewServiceManager(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator, config ServiceManagerConfig) ServiceManager {
	return &serviceManager{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
		config:    config,
	}
}

// NewDefaultServiceManager creates a service manager with default configuration
func NewDefaultServiceManager(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) ServiceManager {
	return NewServiceManager(repo, publisher, logger, validator, ServiceManagerConfig{
		FanOutLimit:   defaultFanOutLimit,
		ExportEnabled: true,
	})
}

// Initialize sets up all services and their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if sm.repo == nil {
		return fmt.Errorf("failed to initialize services: repository is required")
	}

	sm.logger.Info("Initializing service manager")

	sm.assessmentService = NewAssessmentService(sm.repo, sm.logger, sm.config.FanOutLimit)
	sm.studentAssessmentService = NewStudentAssessmentService(sm.repo, sm.publisher, sm.logger, sm.validator)
	if sm.config.ExportEnabled {
		sm.exportService = NewExportService(sm.assessmentService, sm.logger)
	}

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully", "export_enabled", sm.config.ExportEnabled)

	return nil
}

// Service getters
func (sm *serviceManager) Assessment() AssessmentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.assessmentService
}

func (sm *serviceManager) StudentAssessment() StudentAssessmentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.studentAssessmentService
}

// Export returns nil when export is disabled
func (sm *serviceManager) Export() ExportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.exportService
}

// Health and lifecycle
func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}

	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	// Check repository health
	if err := sm.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")

	if sm.publisher != nil {
		if err := sm.publisher.Close(); err != nil {
			sm.logger.Error("Failed to close event publisher", "error", err)
		}
	}

	sm.shutdown = true
	sm.logger.Info("Service manager shutdown completed")

	return nil
}
