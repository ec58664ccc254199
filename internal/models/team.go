package models

import "time"

type Team struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(80);uniqueIndex;not null" json:"name"`
	Abbreviation string    `gorm:"type:varchar(8);uniqueIndex;not null" json:"abbreviation"`
	Division     string    `gorm:"type:varchar(40)" json:"division"`
	Conference   string    `gorm:"type:varchar(40)" json:"conference"`
	LogoURL      *string   `gorm:"type:text" json:"logo_url,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Team) TableName() string {
	return "teams"
}
