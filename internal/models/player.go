package models

import "time"

type Player struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"type:varchar(120);index:idx_player_team_name,priority:2,unique;not null" json:"name"`
	Position      string    `gorm:"type:varchar(8)" json:"position"`
	JerseyNumber  *int      `json:"jersey_number,omitempty"`
	TeamID        uint64    `gorm:"index:idx_player_team_name,priority:1;not null" json:"team_id"`
	Injured       bool      `gorm:"not null;default:false" json:"injured"`
	InjuryDetails *string   `gorm:"type:text" json:"injury_details,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Player) TableName() string {
	return "players"
}
