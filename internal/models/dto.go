package models

// DateLayout is the wire format of assessment window dates
const DateLayout = "2006-01-02"

// ===== ASSESSMENT RESPONSES =====

// QuestionWithScales is a question augmented with the scales it maps to
type QuestionWithScales struct {
	Question
	Scales []*Scale `json:"scales"`
}

// ToolWithQuestions is one element of the assessment listing
type ToolWithQuestions struct {
	Tool
	Questions []*QuestionWithScales `json:"questions"`
}

// AssessmentDetail is the single assessment payload
type AssessmentDetail struct {
	Tool      *Tool                 `json:"tool"`
	Questions []*QuestionWithScales `json:"questions"`
}

// CombinedAssessment groups a student's assignments sharing one date window
type CombinedAssessment struct {
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Tools     []uint `json:"tools"`
}

// ===== PUBLISH RESPONSES =====

type PublishResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
