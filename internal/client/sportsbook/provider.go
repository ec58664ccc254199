package sportsbook

import "context"

const (
	BookDraftKings = "DraftKings"
	BookFanDuel    = "FanDuel"
)

// GameOdds is one book's full-game markets for one game. Nil pointers mean
// the book is not currently offering that market.
type GameOdds struct {
	Sportsbook     string
	HomeMoneyline  *float64
	AwayMoneyline  *float64
	HomeSpread     *float64
	AwaySpread     *float64
	HomeSpreadOdds *float64
	AwaySpreadOdds *float64
	Total          *float64
	OverOdds       *float64
	UnderOdds      *float64
	Raw            []byte
}

// PlayerRef identifies a rostered player when requesting props.
type PlayerRef struct {
	ID       uint64
	Name     string
	Position string
}

type PropQuote struct {
	PlayerID  uint64
	PropType  string
	Line      float64
	OverOdds  float64
	UnderOdds float64
}

type Provider interface {
	Name() string
	GameOdds(ctx context.Context, gameExternalID string) (*GameOdds, error)
	PlayerProps(ctx context.Context, gameExternalID string, players []PlayerRef) ([]PropQuote, error)
}
