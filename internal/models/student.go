package models

import (
	"time"

	"gorm.io/datatypes"
)

type Student struct {
	StudentID      uint   `json:"student_id" gorm:"column:student_id;primaryKey"`
	EnrollmentYear int    `json:"enrollment_year" gorm:"not null;index"`
	School         string `json:"school" gorm:"not null;size:200;index"`
}

// StudentAssessment assigns a tool to a student for a date window.
type StudentAssessment struct {
	StudentAssessmentID uint           `json:"student_assessment_id" gorm:"column:student_assessment_id;primaryKey"`
	StudentID           uint           `json:"student_id" gorm:"not null;index"`
	ToolID              uint           `json:"tool_id" gorm:"not null;index"`
	AdminID             string         `json:"admin_id" gorm:"size:255"`
	AssessmentStartDate datatypes.Date `json:"assessment_start_date" gorm:"column:assessment_start_date;not null;index"`
	AssessmentEndDate   datatypes.Date `json:"assessment_end_date" gorm:"column:assessment_end_date;not null"`
}

func (Student) TableName() string {
	return "student"
}

func (StudentAssessment) TableName() string {
	return "student_assessment"
}

// StartDate returns the window start as a time value
func (sa StudentAssessment) StartDate() time.Time {
	return time.Time(sa.AssessmentStartDate)
}

// EndDate returns the window end as a time value
func (sa StudentAssessment) EndDate() time.Time {
	return time.Time(sa.AssessmentEndDate)
}
