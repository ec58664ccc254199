package models

import (
	"time"

	"gorm.io/datatypes"
)

// Analysis stores one generated AI analysis. Kind encodes the subject,
// e.g. "game_42", "team_7", "parlay_3".
type Analysis struct {
	ID         uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Kind       string         `gorm:"type:varchar(60);index;not null" json:"kind"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	Confidence float64        `gorm:"not null;default:0" json:"confidence_score"`
	Model      string         `gorm:"type:varchar(80)" json:"model"`
	Metadata   datatypes.JSON `json:"metadata,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Analysis) TableName() string {
	return "ai_analyses"
}
