package models

import "time"

// PlayerStatLine is one player's boxscore line for a finished game.
// Used to grade player-prop legs; legs stay pending until a line exists.
type PlayerStatLine struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	GameID      uint64    `gorm:"index:idx_stat_game_player,priority:1;not null" json:"game_id"`
	PlayerID    uint64    `gorm:"index:idx_stat_game_player,priority:2,unique;not null" json:"player_id"`
	Goals       int       `gorm:"not null;default:0" json:"goals"`
	Assists     int       `gorm:"not null;default:0" json:"assists"`
	ShotsOnGoal int       `gorm:"not null;default:0" json:"shots_on_goal"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p PlayerStatLine) Points() int {
	return p.Goals + p.Assists
}

func (PlayerStatLine) TableName() string {
	return "player_stat_lines"
}
