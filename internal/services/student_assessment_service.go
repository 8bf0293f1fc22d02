package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/tool-assessment-service/internal/events"
	"github.com/SAP-F-2025/tool-assessment-service/internal/metrics"
	"github.com/SAP-F-2025/tool-assessment-service/internal/models"
	"github.com/SAP-F-2025/tool-assessment-service/internal/repositories"
	"github.com/SAP-F-2025/tool-assessment-service/internal/validator"
)

type studentAssessmentService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewStudentAssessmentService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) StudentAssessmentService {
	return &studentAssessmentService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *studentAssessmentService) GetStudentAssessments(ctx context.Context, studentID string) ([]*models.CombinedAssessment, error) {
	s.logger.Debug("Getting student assessments", "student_id", studentID)

	rows, err := s.repo.StudentAssessment().GetByStudent(ctx, nil, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get student assessments: %w", err)
	}

	return groupStudentAssessments(rows), nil
}

func (s *studentAssessmentService) PublishAssessment(ctx context.Context, req *PublishAssessmentRequest) (*PublishResult, error) {
	toolIDs, errs := s.validator.GetBusinessValidator().ValidatePublish(req)
	if len(errs) > 0 {
		return nil, errs
	}

	// Both dates passed date_only validation
	start, _ := models.ParseDate(req.StartDate)
	end, _ := models.ParseDate(req.EndDate)
	adminID := string(req.AdminID)

	s.logger.Info("Publishing assessment",
		"admin_id", adminID,
		"tool_ids", toolIDs,
		"student_groups", len(req.StudentGroups),
		"schools", len(req.SelectedSchools))

	studentIDs, err := s.resolveStudentIDs(ctx, req)
	if err != nil {
		return nil, err
	}

	rows := buildAssessmentRows(toolIDs, studentIDs, adminID, start, end)
	result := &PublishResult{ToolIDs: toolIDs, StudentCount: len(studentIDs), RowCount: len(rows)}

	if len(rows) == 0 {
		s.logger.Info("Nothing to publish", "admin_id", adminID)
		return result, nil
	}

	err = s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		return tx.StudentAssessment().CreateBatch(ctx, nil, rows)
	})
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			s.logger.Warn("Assessment already assigned", "admin_id", adminID, "error", err)
		}
		return nil, fmt.Errorf("failed to insert student assessments: %w", err)
	}
	metrics.PublishedAssessments.Add(float64(len(rows)))

	s.publishEvent(ctx, &events.AssessmentPublishedEvent{
		AdminID:      adminID,
		ToolIDs:      toolIDs,
		StudentCount: len(studentIDs),
		RowCount:     len(rows),
		StartDate:    models.FormatDate(start),
		EndDate:      models.FormatDate(end),
	})

	s.logger.Info("Assessment published", "admin_id", adminID, "rows", len(rows))
	return result, nil
}

// resolveStudentIDs queries students for every (enrollment year, school) pair
func (s *studentAssessmentService) resolveStudentIDs(ctx context.Context, req *PublishAssessmentRequest) ([]uint, error) {
	var ids []uint
	for _, group := range req.StudentGroups {
		for _, school := range req.SelectedSchools {
			matched, err := s.repo.Student().FindIDs(ctx, nil, repositories.StudentFilters{
				EnrollmentYear: int(group.Value),
				School:         school.Value,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to find students of %d at %q: %w", group.Value, school.Value, err)
			}
			ids = append(ids, matched...)
		}
	}
	return dedupeIDs(ids), nil
}

func (s *studentAssessmentService) publishEvent(ctx context.Context, data *events.AssessmentPublishedEvent) {
	if s.publisher == nil {
		return
	}
	event := events.NewEvent(events.TypeAssessmentPublished, data)
	if err := s.publisher.Publish(ctx, event); err != nil {
		metrics.EventPublishErrors.WithLabelValues(event.Type).Inc()
		s.logger.Error("Failed to publish event", "event_id", event.ID, "type", event.Type, "error", err)
	}
}
