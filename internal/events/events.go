package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventSource  = "assessment-service"
	EventVersion = "1.0"

	TypeAssessmentPublished = "assessment.published"
)

// Event is the envelope of every message the service emits
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// AssessmentPublishedEvent describes one successful publish
type AssessmentPublishedEvent struct {
	AdminID      string `json:"admin_id"`
	ToolIDs      []uint `json:"tool_ids"`
	StudentCount int    `json:"student_count"`
	RowCount     int    `json:"row_count"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

func NewEvent(eventType string, data interface{}) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Source:    EventSource,
		Version:   EventVersion,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}
