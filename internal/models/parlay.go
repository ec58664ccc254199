package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ParlayStatusPending      = "pending"
	ParlayStatusWon          = "won"
	ParlayStatusLost         = "lost"
	ParlayStatusPartiallyWon = "partially_won"
)

type Parlay struct {
	ID              uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string          `gorm:"type:varchar(120)" json:"name"`
	Stake           decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"stake"`
	TotalOdds       float64         `gorm:"not null" json:"total_odds"`
	PotentialPayout decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"potential_payout"`
	Confidence      float64         `gorm:"not null;default:0" json:"confidence_score"`
	Status          string          `gorm:"type:varchar(20);index;not null" json:"status"`
	CreatedAt       time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Legs []BetLeg `gorm:"foreignKey:ParlayID" json:"legs,omitempty"`
}

func (Parlay) TableName() string {
	return "parlays"
}
