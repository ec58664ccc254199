package models

import (
	"time"

	"gorm.io/datatypes"
)

// OddsLine holds one sportsbook's full-game markets for one game.
// Prices are American odds; lines are the spread/total values themselves.
type OddsLine struct {
	ID             uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	GameID         uint64         `gorm:"index:idx_odds_game_book,priority:1;not null" json:"game_id"`
	Sportsbook     string         `gorm:"type:varchar(40);index:idx_odds_game_book,priority:2,unique;not null" json:"sportsbook"`
	HomeMoneyline  *float64       `json:"home_moneyline,omitempty"`
	AwayMoneyline  *float64       `json:"away_moneyline,omitempty"`
	HomeSpread     *float64       `json:"home_spread,omitempty"`
	AwaySpread     *float64       `json:"away_spread,omitempty"`
	HomeSpreadOdds *float64       `json:"home_spread_odds,omitempty"`
	AwaySpreadOdds *float64       `json:"away_spread_odds,omitempty"`
	Total          *float64       `json:"total,omitempty"`
	OverOdds       *float64       `json:"over_odds,omitempty"`
	UnderOdds      *float64       `json:"under_odds,omitempty"`
	RawJSON        datatypes.JSON `json:"-"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (OddsLine) TableName() string {
	return "odds_lines"
}
