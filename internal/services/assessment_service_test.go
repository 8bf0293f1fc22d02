package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/tool-assessment-service/internal/models"
	"github.com/SAP-F-2025/tool-assessment-service/internal/repositories/memory"
)

func scaleNames(scales []*models.Scale) []string {
	names := make([]string, 0, len(scales))
	for _, s := range scales {
		names = append(names, s.Name)
	}
	return names
}

func TestAssessmentService_ListAssessments(t *testing.T) {
	db := memory.Open()
	seedCatalogue(db)
	svc := NewAssessmentService(db.Repository(), testLogger(), 2)

	tools, err := svc.ListAssessments(context.Background())
	require.NoError(t, err)
	require.Len(t, tools, 2)

	assert.Equal(t, uint(1), tools[0].ToolID)
	assert.Equal(t, uint(2), tools[1].ToolID)

	first := tools[0].Questions
	require.Len(t, first, 2)
	assert.Equal(t, uint(10), first[0].QuestionID)
	assert.Equal(t, []string{"Mood", "Anxiety"}, scaleNames(first[0].Scales))
	// the dangling scale reference is skipped
	assert.Equal(t, []string{"Mood"}, scaleNames(first[1].Scales))

	require.Len(t, tools[1].Questions, 1)
	assert.Equal(t, []string{"Focus"}, scaleNames(tools[1].Questions[0].Scales))

	assert.Equal(t, 1, db.Calls(memory.OpScaleList))
	assert.Equal(t, 0, db.Calls(memory.OpScaleByIDs))
}

func TestAssessmentService_ListAssessments_Empty(t *testing.T) {
	svc := NewAssessmentService(memory.Open().Repository(), testLogger(), 0)

	tools, err := svc.ListAssessments(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tools)
	assert.Empty(t, tools)
}

func TestAssessmentService_ListAssessments_Failures(t *testing.T) {
	for _, op := range []string{
		memory.OpScaleList,
		memory.OpToolList,
		memory.OpQuestionByTool,
		memory.OpQuestionScaleByQ,
	} {
		t.Run(op, func(t *testing.T) {
			db := memory.Open()
			seedCatalogue(db)
			boom := errors.New("connection reset")
			db.Fail(op, boom)

			tools, err := NewAssessmentService(db.Repository(), testLogger(), 4).ListAssessments(context.Background())
			assert.ErrorIs(t, err, boom)
			assert.Nil(t, tools)
		})
	}
}

func TestAssessmentService_GetAssessment(t *testing.T) {
	db := memory.Open()
	seedCatalogue(db)
	svc := NewAssessmentService(db.Repository(), testLogger(), 4)

	detail, err := svc.GetAssessment(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "Wellbeing Survey", detail.Tool.Name)
	require.Len(t, detail.Questions, 2)
	for _, q := range detail.Questions {
		assert.Equal(t, uint(1), q.ToolID)
	}
	assert.ElementsMatch(t, []string{"Mood", "Anxiety"}, scaleNames(detail.Questions[0].Scales))
	assert.ElementsMatch(t, []string{"Mood"}, scaleNames(detail.Questions[1].Scales))
	assert.Equal(t, 2, db.Calls(memory.OpScaleByIDs))
}

func TestAssessmentService_GetAssessment_QuestionWithoutScales(t *testing.T) {
	db := memory.Open()
	db.AddTools(models.Tool{ToolID: 3, Name: "Blank"})
	db.AddQuestions(models.Question{QuestionID: 30, ToolID: 3, QuestionText: "Unscored"})

	detail, err := NewAssessmentService(db.Repository(), testLogger(), 4).GetAssessment(context.Background(), "3")
	require.NoError(t, err)
	require.Len(t, detail.Questions, 1)
	assert.NotNil(t, detail.Questions[0].Scales)
	assert.Empty(t, detail.Questions[0].Scales)
	assert.Equal(t, 0, db.Calls(memory.OpScaleByIDs))
}

func TestAssessmentService_GetAssessment_NotFound(t *testing.T) {
	db := memory.Open()
	seedCatalogue(db)

	detail, err := NewAssessmentService(db.Repository(), testLogger(), 4).GetAssessment(context.Background(), "404")
	assert.ErrorIs(t, err, ErrToolNotFound)
	assert.True(t, IsNotFound(err))
	assert.Nil(t, detail)
	assert.Equal(t, 0, db.Calls(memory.OpQuestionByTool))
}

func TestAssessmentService_GetAssessment_Failures(t *testing.T) {
	for _, op := range []string{
		memory.OpToolGet,
		memory.OpQuestionByTool,
		memory.OpQuestionScaleByQ,
		memory.OpScaleByIDs,
	} {
		t.Run(op, func(t *testing.T) {
			db := memory.Open()
			seedCatalogue(db)
			boom := errors.New("statement timeout")
			db.Fail(op, boom)

			detail, err := NewAssessmentService(db.Repository(), testLogger(), 4).GetAssessment(context.Background(), "1")
			assert.ErrorIs(t, err, boom)
			assert.False(t, IsNotFound(err))
			assert.Nil(t, detail)
		})
	}
}

func TestAssessmentService_GetAssessment_MalformedID(t *testing.T) {
	db := memory.Open()
	seedCatalogue(db)

	_, err := NewAssessmentService(db.Repository(), testLogger(), 4).GetAssessment(context.Background(), "abc")
	assert.Error(t, err)
	assert.False(t, IsNotFound(err))
}
