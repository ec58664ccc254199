package models

import "time"

const (
	GameStatusScheduled  = "scheduled"
	GameStatusInProgress = "in_progress"
	GameStatusFinished   = "finished"
	GameStatusPostponed  = "postponed"
)

type Game struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ExternalID string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"external_id"`
	HomeTeamID uint64    `gorm:"index;not null" json:"home_team_id"`
	AwayTeamID uint64    `gorm:"index;not null" json:"away_team_id"`
	GameTime   time.Time `gorm:"index;not null" json:"game_time"`
	Status     string    `gorm:"type:varchar(20);index;not null" json:"status"`
	HomeScore  *int      `json:"home_score,omitempty"`
	AwayScore  *int      `json:"away_score,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Game) TableName() string {
	return "games"
}
