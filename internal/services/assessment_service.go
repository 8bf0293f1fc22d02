package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/SAP-F-2025/tool-assessment-service/internal/models"
	"github.com/SAP-F-2025/tool-assessment-service/internal/repositories"
)

const defaultFanOutLimit = 8

type assessmentService struct {
	repo        repositories.Repository
	logger      *slog.Logger
	fanOutLimit int
}

func NewAssessmentService(repo repositories.Repository, logger *slog.Logger, fanOutLimit int) AssessmentService {
	if fanOutLimit < 1 {
		fanOutLimit = defaultFanOutLimit
	}
	return &assessmentService{
		repo:        repo,
		logger:      logger,
		fanOutLimit: fanOutLimit,
	}
}

// ListAssessments loads all scales once, then fans out per tool and per
// question. The first failure cancels the remaining fetches.
func (s *assessmentService) ListAssessments(ctx context.Context) ([]*models.ToolWithQuestions, error) {
	s.logger.Debug("Listing assessments")

	scales, err := s.repo.Scale().List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list scales: %w", err)
	}
	scaleIndex := indexScales(scales)

	tools, err := s.repo.Tool().List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}

	result := make([]*models.ToolWithQuestions, len(tools))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanOutLimit)
	for i, tool := range tools {
		g.Go(func() error {
			questions, err := s.questionsWithIndexedScales(gctx, tool.ToolID, scaleIndex)
			if err != nil {
				return err
			}
			result[i] = &models.ToolWithQuestions{Tool: *tool, Questions: questions}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("Assessments listed", "tools", len(result))
	return result, nil
}

// questionsWithIndexedScales resolves question scales through the prefetched index
func (s *assessmentService) questionsWithIndexedScales(ctx context.Context, toolID uint, scaleIndex map[uint]*models.Scale) ([]*models.QuestionWithScales, error) {
	questions, err := s.repo.Question().GetByTool(ctx, nil, formatID(toolID))
	if err != nil {
		return nil, fmt.Errorf("failed to get questions for tool %d: %w", toolID, err)
	}

	result := make([]*models.QuestionWithScales, len(questions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanOutLimit)
	for i, question := range questions {
		g.Go(func() error {
			links, err := s.repo.QuestionScale().GetByQuestion(gctx, nil, question.QuestionID)
			if err != nil {
				return fmt.Errorf("failed to get scales for question %d: %w", question.QuestionID, err)
			}
			result[i] = &models.QuestionWithScales{
				Question: *question,
				Scales:   resolveScales(links, scaleIndex),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetAssessment loads one tool and, sequentially, each question's scales
func (s *assessmentService) GetAssessment(ctx context.Context, id string) (*models.AssessmentDetail, error) {
	s.logger.Debug("Getting assessment", "tool_id", id)

	tool, err := s.repo.Tool().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrToolNotFound
		}
		return nil, fmt.Errorf("failed to get tool: %w", err)
	}

	questions, err := s.repo.Question().GetByTool(ctx, nil, formatID(tool.ToolID))
	if err != nil {
		return nil, fmt.Errorf("failed to get questions for tool %d: %w", tool.ToolID, err)
	}

	detailed := make([]*models.QuestionWithScales, 0, len(questions))
	for _, question := range questions {
		links, err := s.repo.QuestionScale().GetByQuestion(ctx, nil, question.QuestionID)
		if err != nil {
			return nil, fmt.Errorf("failed to get scale links for question %d: %w", question.QuestionID, err)
		}

		scales, err := s.repo.Scale().GetByIDs(ctx, nil, scaleIDs(links))
		if err != nil {
			return nil, fmt.Errorf("failed to get scales for question %d: %w", question.QuestionID, err)
		}
		if scales == nil {
			scales = []*models.Scale{}
		}

		detailed = append(detailed, &models.QuestionWithScales{Question: *question, Scales: scales})
	}

	return &models.AssessmentDetail{Tool: tool, Questions: detailed}, nil
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
