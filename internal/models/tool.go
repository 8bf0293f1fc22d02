package models

import (
	"gorm.io/datatypes"
)

// Tool is an assessment instrument. It owns its questions.
type Tool struct {
	ToolID      uint           `json:"tool_id" gorm:"column:tool_id;primaryKey"`
	Name        string         `json:"name" gorm:"not null;size:200"`
	Description *string        `json:"description" gorm:"type:text"`
	Metadata    datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb"`
}

type Question struct {
	QuestionID    uint   `json:"question_id" gorm:"column:question_id;primaryKey"`
	ToolID        uint   `json:"tool_id" gorm:"not null;index"`
	QuestionText string `json:"question_text" gorm:"type:text;not null"`
}

// Scale is a measurement dimension, independent of any tool.
type Scale struct {
	ScaleID     uint    `json:"scale_id" gorm:"column:scale_id;primaryKey"`
	Name        string  `json:"name" gorm:"not null;size:100"`
	Description *string `json:"description" gorm:"type:text"`
}

// QuestionScale joins questions and scales (many-to-many)
type QuestionScale struct {
	QuestionID uint `json:"question_id" gorm:"primaryKey"`
	ScaleID    uint `json:"scale_id" gorm:"primaryKey"`
}

func (Tool) TableName() string {
	return "tool"
}

func (Question) TableName() string {
	return "question"
}

func (Scale) TableName() string {
	return "scale"
}

func (QuestionScale) TableName() string {
	return "question_scale"
}
