package models

import "time"

const (
	BetTypeMoneyline  = "moneyline"
	BetTypeSpread     = "spread"
	BetTypeOverUnder  = "over_under"
	BetTypePlayerProp = "player_prop"

	SelectionHome  = "home"
	SelectionAway  = "away"
	SelectionOver  = "over"
	SelectionUnder = "under"

	LegStatusPending = "pending"
	LegStatusWon     = "won"
	LegStatusLost    = "lost"
	LegStatusPush    = "push"
)

// BetLeg is one selection inside a parlay. Price is the American odds the
// leg was taken at.
type BetLeg struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ParlayID      uint64    `gorm:"index;not null" json:"parlay_id"`
	GameID        uint64    `gorm:"index;not null" json:"game_id"`
	BetType       string    `gorm:"type:varchar(20);not null" json:"bet_type"`
	Selection     string    `gorm:"type:varchar(10);not null" json:"selection"`
	PlayerID      *uint64   `gorm:"index" json:"player_id,omitempty"`
	PropType      *string   `gorm:"type:varchar(30)" json:"prop_type,omitempty"`
	Price         float64   `gorm:"not null" json:"price"`
	Justification string    `gorm:"type:text" json:"justification"`
	Status        string    `gorm:"type:varchar(20);index;not null" json:"status"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BetLeg) TableName() string {
	return "bet_legs"
}
