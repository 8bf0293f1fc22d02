package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/tool-assessment-service/internal/models"
	"github.com/SAP-F-2025/tool-assessment-service/internal/repositories"
)

func TestRepository_ToolLookup(t *testing.T) {
	db := Open()
	db.AddTools(models.Tool{ToolID: 2, Name: "B"}, models.Tool{ToolID: 1, Name: "A"})
	repo := db.Repository()
	ctx := context.Background()

	tool, err := repo.Tool().GetByID(ctx, nil, "2")
	require.NoError(t, err)
	assert.Equal(t, "B", tool.Name)

	_, err = repo.Tool().GetByID(ctx, nil, "3")
	assert.True(t, repositories.IsNotFoundError(err))

	_, err = repo.Tool().GetByID(ctx, nil, "two")
	assert.Error(t, err)
	assert.False(t, repositories.IsNotFoundError(err))

	tools, err := repo.Tool().List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tools, 2)
	assert.Equal(t, uint(1), tools[0].ToolID)
	assert.Equal(t, 4, db.Calls(OpToolGet)+db.Calls(OpToolList))
}

func TestRepository_WithTransaction(t *testing.T) {
	db := Open()
	repo := db.Repository()
	ctx := context.Background()
	rows := []*models.StudentAssessment{{StudentID: 1, ToolID: 5}, {StudentID: 2, ToolID: 5}}

	rollback := errors.New("rollback")
	err := repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		require.NoError(t, tx.StudentAssessment().CreateBatch(ctx, nil, rows))
		return rollback
	})
	assert.ErrorIs(t, err, rollback)
	assert.Empty(t, db.StudentAssessments())

	err = repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		return tx.StudentAssessment().CreateBatch(ctx, nil, rows)
	})
	require.NoError(t, err)

	stored := db.StudentAssessments()
	require.Len(t, stored, 2)
	assert.Equal(t, uint(1), stored[0].StudentAssessmentID)
	assert.Equal(t, uint(2), stored[1].StudentAssessmentID)
}

func TestRepository_FailAndCancel(t *testing.T) {
	db := Open()
	repo := db.Repository()
	boom := errors.New("boom")
	db.Fail(OpStudentFind, boom)

	_, err := repo.Student().FindIDs(context.Background(), nil, repositories.StudentFilters{EnrollmentYear: 2024})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, db.Calls(OpStudentFind))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = repo.Scale().List(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
