package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/SAP-F-2025/tool-assessment-service/internal/models"
)

const (
	ToolSheet      = "Tool"
	QuestionsSheet = "Questions"
)

type exportService struct {
	assessments AssessmentService
	logger      *slog.Logger
}

func NewExportService(assessments AssessmentService, logger *slog.Logger) ExportService {
	return &exportService{
		assessments: assessments,
		logger:      logger,
	}
}

func (s *exportService) ExportAssessment(ctx context.Context, id string) ([]byte, error) {
	detail, err := s.assessments.GetAssessment(ctx, id)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("Failed to close workbook", "tool_id", id, "error", err)
		}
	}()

	if err := writeToolSheet(f, detail.Tool); err != nil {
		return nil, err
	}
	if err := writeQuestionsSheet(f, detail.Questions); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.Info("Assessment exported", "tool_id", detail.Tool.ToolID, "questions", len(detail.Questions))
	return buf.Bytes(), nil
}

func writeToolSheet(f *excelize.File, tool *models.Tool) error {
	if err := f.SetSheetName(f.GetSheetName(0), ToolSheet); err != nil {
		return fmt.Errorf("failed to name tool sheet: %w", err)
	}

	description := ""
	if tool.Description != nil {
		description = *tool.Description
	}

	rows := [][]interface{}{
		{"Tool ID", tool.ToolID},
		{"Name", tool.Name},
		{"Description", description},
	}
	for i, row := range rows {
		if err := setRow(f, ToolSheet, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func writeQuestionsSheet(f *excelize.File, questions []*models.QuestionWithScales) error {
	if _, err := f.NewSheet(QuestionsSheet); err != nil {
		return fmt.Errorf("failed to create questions sheet: %w", err)
	}

	if err := setRow(f, QuestionsSheet, 1, []interface{}{"Question ID", "Question", "Scales"}); err != nil {
		return err
	}

	for i, q := range questions {
		names := make([]string, 0, len(q.Scales))
		for _, scale := range q.Scales {
			names = append(names, scale.Name)
		}
		row := []interface{}{q.QuestionID, q.QuestionText, strings.Join(names, ", ")}
		if err := setRow(f, QuestionsSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}
