package services

import (
	"time"

	"gorm.io/datatypes"

	"github.com/SAP-F-2025/tool-assessment-service/internal/models"
)

// indexScales maps scale id to scale
func indexScales(scales []*models.Scale) map[uint]*models.Scale {
	index := make(map[uint]*models.Scale, len(scales))
	for _, scale := range scales {
		index[scale.ScaleID] = scale
	}
	return index
}

// resolveScales keeps the order of links and skips ids missing from index
func resolveScales(links []*models.QuestionScale, index map[uint]*models.Scale) []*models.Scale {
	scales := make([]*models.Scale, 0, len(links))
	for _, link := range links {
		if scale, ok := index[link.ScaleID]; ok {
			scales = append(scales, scale)
		}
	}
	return scales
}

func scaleIDs(links []*models.QuestionScale) []uint {
	ids := make([]uint, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.ScaleID)
	}
	return ids
}

type dateWindow struct {
	start time.Time
	end   time.Time
}

// groupStudentAssessments merges rows sharing the same window, in order of first occurrence
func groupStudentAssessments(rows []*models.StudentAssessment) []*models.CombinedAssessment {
	groups := make([]*models.CombinedAssessment, 0)
	byWindow := make(map[dateWindow]*models.CombinedAssessment)

	for _, row := range rows {
		key := dateWindow{start: row.StartDate().UTC(), end: row.EndDate().UTC()}
		if group, ok := byWindow[key]; ok {
			group.Tools = append(group.Tools, row.ToolID)
			continue
		}

		start, end := models.FormatDate(key.start), models.FormatDate(key.end)
		group := &models.CombinedAssessment{
			Title:     start + " to " + end,
			StartDate: start,
			EndDate:   end,
			Tools:     []uint{row.ToolID},
		}
		byWindow[key] = group
		groups = append(groups, group)
	}
	return groups
}

// dedupeIDs drops repeated ids, keeping first-seen order
func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// buildAssessmentRows creates one row per (tool, student), tools outermost
func buildAssessmentRows(toolIDs, studentIDs []uint, adminID string, start, end time.Time) []*models.StudentAssessment {
	rows := make([]*models.StudentAssessment, 0, len(toolIDs)*len(studentIDs))
	for _, toolID := range toolIDs {
		for _, studentID := range studentIDs {
			rows = append(rows, &models.StudentAssessment{
				StudentID:           studentID,
				ToolID:              toolID,
				AdminID:             adminID,
				AssessmentStartDate: datatypes.Date(start),
				AssessmentEndDate:   datatypes.Date(end),
			})
		}
	}
	return rows
}
