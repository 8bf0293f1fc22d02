package services

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/SAP-F-2025/tool-assessment-service/internal/models"
	"github.com/SAP-F-2025/tool-assessment-service/internal/repositories/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func date(t *testing.T, value string) datatypes.Date {
	t.Helper()
	d, err := models.ParseDate(value)
	require.NoError(t, err)
	return datatypes.Date(d)
}

// seedCatalogue loads two tools: tool 1 with questions 10 and 11, tool 2 with question 20.
// Question 11 references scale 99, which does not exist.
func seedCatalogue(db *memory.DB) {
	db.AddScales(
		models.Scale{ScaleID: 1, Name: "Anxiety"},
		models.Scale{ScaleID: 2, Name: "Mood", Description: strPtr("Overall mood")},
		models.Scale{ScaleID: 3, Name: "Focus"},
	)
	db.AddTools(
		models.Tool{ToolID: 2, Name: "Attention Check"},
		models.Tool{ToolID: 1, Name: "Wellbeing Survey", Description: strPtr("Termly wellbeing screen")},
	)
	db.AddQuestions(
		models.Question{QuestionID: 11, ToolID: 1, QuestionText: "I sleep well"},
		models.Question{QuestionID: 10, ToolID: 1, QuestionText: "I feel calm"},
		models.Question{QuestionID: 20, ToolID: 2, QuestionText: "I finish tasks"},
	)
	db.AddQuestionScales(
		models.QuestionScale{QuestionID: 10, ScaleID: 2},
		models.QuestionScale{QuestionID: 10, ScaleID: 1},
		models.QuestionScale{QuestionID: 11, ScaleID: 99},
		models.QuestionScale{QuestionID: 11, ScaleID: 2},
		models.QuestionScale{QuestionID: 20, ScaleID: 3},
	)
}
