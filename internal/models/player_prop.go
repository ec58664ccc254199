package models

import "time"

const (
	PropTypePoints      = "points"
	PropTypeGoals       = "goals"
	PropTypeAssists     = "assists"
	PropTypeShotsOnGoal = "shots_on_goal"
)

type PlayerProp struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	OddsLineID uint64    `gorm:"index:idx_prop_line_player_type,priority:1;not null" json:"odds_line_id"`
	PlayerID   uint64    `gorm:"index:idx_prop_line_player_type,priority:2;not null" json:"player_id"`
	PropType   string    `gorm:"type:varchar(30);index:idx_prop_line_player_type,priority:3,unique;not null" json:"prop_type"`
	Line       float64   `gorm:"not null" json:"line"`
	OverOdds   float64   `gorm:"not null" json:"over_odds"`
	UnderOdds  float64   `gorm:"not null" json:"under_odds"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PlayerProp) TableName() string {
	return "player_props"
}
