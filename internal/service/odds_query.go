package service

import (
	"context"
	"fmt"

	"puckline/internal/models"
	"puckline/internal/odds"
	"puckline/internal/repository"
)

// BestQuote is the best price offered on one market side, with the book
// that offers it. Line carries the spread or total where the market has one.
type BestQuote struct {
	Sportsbook string   `json:"sportsbook"`
	Line       *float64 `json:"line,omitempty"`
	Price      float64  `json:"price"`
}

// BestOdds is the per-market best price across all books for one game.
type BestOdds struct {
	GameID        uint64     `json:"game_id"`
	HomeMoneyline *BestQuote `json:"home_moneyline,omitempty"`
	AwayMoneyline *BestQuote `json:"away_moneyline,omitempty"`
	HomeSpread    *BestQuote `json:"home_spread,omitempty"`
	AwaySpread    *BestQuote `json:"away_spread,omitempty"`
	Over          *BestQuote `json:"over,omitempty"`
	Under         *BestQuote `json:"under,omitempty"`
}

// OddsComparison pairs a game with every book's current line, for
// side-by-side display.
type OddsComparison struct {
	GameID uint64            `json:"game_id"`
	Books  []models.OddsLine `json:"books"`
}

// OddsQueryService answers odds comparison and best-price queries.
type OddsQueryService struct {
	Repo repository.Repository
}

func (s *OddsQueryService) Compare(ctx context.Context, gameID uint64) (*OddsComparison, error) {
	if s == nil || s.Repo == nil {
		return nil, fmt.Errorf("odds service not configured")
	}
	game, err := s.Repo.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, nil
	}
	lines, err := s.Repo.ListOddsByGameID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return &OddsComparison{GameID: gameID, Books: lines}, nil
}

// Best picks the bettor-favorable offer per market side. Moneylines compare
// on price alone; spreads prefer the friendlier line, totals the friendlier
// number, with price breaking ties.
func (s *OddsQueryService) Best(ctx context.Context, gameID uint64) (*BestOdds, error) {
	if s == nil || s.Repo == nil {
		return nil, fmt.Errorf("odds service not configured")
	}
	game, err := s.Repo.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, nil
	}
	lines, err := s.Repo.ListOddsByGameID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	best := &BestOdds{GameID: gameID}
	for _, line := range lines {
		considerPrice(&best.HomeMoneyline, line.Sportsbook, line.HomeMoneyline)
		considerPrice(&best.AwayMoneyline, line.Sportsbook, line.AwayMoneyline)
		considerSpread(&best.HomeSpread, line.Sportsbook, line.HomeSpread, line.HomeSpreadOdds)
		considerSpread(&best.AwaySpread, line.Sportsbook, line.AwaySpread, line.AwaySpreadOdds)
		considerTotal(&best.Over, true, line.Sportsbook, line.Total, line.OverOdds)
		considerTotal(&best.Under, false, line.Sportsbook, line.Total, line.UnderOdds)
	}
	return best, nil
}

func considerPrice(slot **BestQuote, book string, price *float64) {
	if price == nil {
		return
	}
	if *slot == nil || odds.BetterPrice(*price, (*slot).Price) {
		*slot = &BestQuote{Sportsbook: book, Price: *price}
	}
}

func considerSpread(slot **BestQuote, book string, line, price *float64) {
	if line == nil || price == nil {
		return
	}
	if *slot == nil || odds.BetterSpread(*line, *price, *(*slot).Line, (*slot).Price) {
		value := *line
		*slot = &BestQuote{Sportsbook: book, Line: &value, Price: *price}
	}
}

func considerTotal(slot **BestQuote, isOver bool, book string, total, price *float64) {
	if total == nil || price == nil {
		return
	}
	if *slot == nil || odds.BetterTotal(isOver, *total, *price, *(*slot).Line, (*slot).Price) {
		value := *total
		*slot = &BestQuote{Sportsbook: book, Line: &value, Price: *price}
	}
}
