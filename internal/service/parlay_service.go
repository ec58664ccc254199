package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"puckline/internal/client/sportsbook"
	"puckline/internal/models"
	"puckline/internal/odds"
	"puckline/internal/repository"
)

const defaultLegConfidence = 0.5

// LegInput is one requested selection. Price is optional; when omitted the
// best available American price across the stored sportsbooks is used.
type LegInput struct {
	GameID        uint64
	BetType       string
	Selection     string
	PlayerID      *uint64
	PropType      *string
	Price         *float64
	Justification string
}

type CreateParlayParams struct {
	Name  string
	Stake decimal.Decimal
	Legs  []LegInput
}

// ParlayService creates user parlays and settles pending ones against
// finished games.
type ParlayService struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

func (s *ParlayService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Create validates the requested legs, resolves missing prices to the best
// available book, and stores the parlay.
func (s *ParlayService) Create(ctx context.Context, params CreateParlayParams) (*models.Parlay, error) {
	if s == nil || s.Repo == nil {
		return nil, fmt.Errorf("parlay service not configured")
	}
	if params.Stake.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("stake must be positive")
	}
	if len(params.Legs) == 0 {
		return nil, fmt.Errorf("parlay needs at least one leg")
	}

	legs := make([]models.BetLeg, 0, len(params.Legs))
	prices := make([]float64, 0, len(params.Legs))
	for i, input := range params.Legs {
		leg, err := s.buildLeg(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("leg %d: %w", i+1, err)
		}
		legs = append(legs, *leg)
		prices = append(prices, leg.Price)
	}

	totalOdds, err := odds.ParlayOdds(prices)
	if err != nil {
		return nil, err
	}

	name := params.Name
	if name == "" {
		name = "Custom Parlay"
	}
	parlay := &models.Parlay{
		Name:            name,
		Stake:           params.Stake,
		TotalOdds:       totalOdds,
		PotentialPayout: odds.Payout(params.Stake, totalOdds),
		Confidence:      defaultLegConfidence,
		Status:          models.ParlayStatusPending,
		Legs:            legs,
	}
	if err := s.Repo.InsertParlay(ctx, parlay); err != nil {
		return nil, err
	}
	s.logger().Info("parlay created",
		zap.Uint64("parlay_id", parlay.ID),
		zap.Int("legs", len(parlay.Legs)),
		zap.Float64("total_odds", parlay.TotalOdds))
	return parlay, nil
}

func (s *ParlayService) buildLeg(ctx context.Context, input LegInput) (*models.BetLeg, error) {
	game, err := s.Repo.GetGameByID(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, fmt.Errorf("game not found: %d", input.GameID)
	}
	if game.Status != models.GameStatusScheduled {
		return nil, fmt.Errorf("game %d is not open for betting", input.GameID)
	}
	if err := validateLegShape(input); err != nil {
		return nil, err
	}

	price := 0.0
	if input.Price != nil {
		price = *input.Price
	} else {
		best, err := s.bestPrice(ctx, game.ID, input)
		if err != nil {
			return nil, err
		}
		price = best
	}
	if _, err := odds.AmericanToDecimal(price); err != nil {
		return nil, err
	}

	justification := input.Justification
	if justification == "" {
		justification = "User selection"
	}
	return &models.BetLeg{
		GameID:        game.ID,
		BetType:       input.BetType,
		Selection:     input.Selection,
		PlayerID:      input.PlayerID,
		PropType:      input.PropType,
		Price:         price,
		Justification: justification,
		Status:        models.LegStatusPending,
	}, nil
}

func validateLegShape(input LegInput) error {
	switch input.BetType {
	case models.BetTypeMoneyline, models.BetTypeSpread:
		if input.Selection != models.SelectionHome && input.Selection != models.SelectionAway {
			return fmt.Errorf("%s selection must be home or away", input.BetType)
		}
	case models.BetTypeOverUnder:
		if input.Selection != models.SelectionOver && input.Selection != models.SelectionUnder {
			return fmt.Errorf("over_under selection must be over or under")
		}
	case models.BetTypePlayerProp:
		if input.Selection != models.SelectionOver && input.Selection != models.SelectionUnder {
			return fmt.Errorf("player_prop selection must be over or under")
		}
		if input.PlayerID == nil || input.PropType == nil {
			return fmt.Errorf("player_prop legs need player_id and prop_type")
		}
	default:
		return fmt.Errorf("unknown bet type: %s", input.BetType)
	}
	return nil
}

// bestPrice returns the highest American price offered for the selection
// across all books carrying the market.
func (s *ParlayService) bestPrice(ctx context.Context, gameID uint64, input LegInput) (float64, error) {
	if input.BetType == models.BetTypePlayerProp {
		return s.bestPropPrice(ctx, gameID, input)
	}

	lines, err := s.Repo.ListOddsByGameID(ctx, gameID)
	if err != nil {
		return 0, err
	}
	var best *BestQuote
	for _, line := range lines {
		switch input.BetType {
		case models.BetTypeMoneyline:
			if input.Selection == models.SelectionHome {
				considerPrice(&best, line.Sportsbook, line.HomeMoneyline)
			} else {
				considerPrice(&best, line.Sportsbook, line.AwayMoneyline)
			}
		case models.BetTypeSpread:
			if input.Selection == models.SelectionHome {
				considerSpread(&best, line.Sportsbook, line.HomeSpread, line.HomeSpreadOdds)
			} else {
				considerSpread(&best, line.Sportsbook, line.AwaySpread, line.AwaySpreadOdds)
			}
		case models.BetTypeOverUnder:
			considerTotal(&best, input.Selection == models.SelectionOver,
				line.Sportsbook, line.Total, selectionPrice(line, input.Selection))
		}
	}
	if best == nil {
		return 0, fmt.Errorf("no odds available for %s %s on game %d", input.BetType, input.Selection, gameID)
	}
	return best.Price, nil
}

func selectionPrice(line models.OddsLine, selection string) *float64 {
	if selection == models.SelectionOver {
		return line.OverOdds
	}
	return line.UnderOdds
}

func (s *ParlayService) bestPropPrice(ctx context.Context, gameID uint64, input LegInput) (float64, error) {
	props, err := s.Repo.ListPlayerProps(ctx, repository.ListPropsParams{
		GameID:   &gameID,
		PlayerID: input.PlayerID,
		PropType: input.PropType,
		Limit:    50,
	})
	if err != nil {
		return 0, err
	}
	var best *float64
	for _, prop := range props {
		price := prop.OverOdds
		if input.Selection == models.SelectionUnder {
			price = prop.UnderOdds
		}
		if best == nil || odds.BetterPrice(price, *best) {
			better := price
			best = &better
		}
	}
	if best == nil {
		return 0, fmt.Errorf("no prop offered for player %d %s on game %d", *input.PlayerID, *input.PropType, gameID)
	}
	return *best, nil
}

// UpdateParlayParams carries optional field updates. Nil fields are left
// untouched.
type UpdateParlayParams struct {
	Name   *string
	Stake  *decimal.Decimal
	Status *string
}

// Update applies partial updates to a parlay. A new stake recomputes the
// potential payout from the stored total odds. Returns nil when the parlay
// does not exist.
func (s *ParlayService) Update(ctx context.Context, id uint64, params UpdateParlayParams) (*models.Parlay, error) {
	if s == nil || s.Repo == nil {
		return nil, fmt.Errorf("parlay service not configured")
	}
	parlay, err := s.Repo.GetParlayByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if parlay == nil {
		return nil, nil
	}

	if params.Name != nil {
		if *params.Name == "" {
			return nil, fmt.Errorf("name must not be empty")
		}
		if err := s.Repo.UpdateParlayName(ctx, id, *params.Name); err != nil {
			return nil, err
		}
		parlay.Name = *params.Name
	}
	if params.Stake != nil {
		if params.Stake.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("stake must be positive")
		}
		payout := odds.Payout(*params.Stake, parlay.TotalOdds)
		if err := s.Repo.UpdateParlayStake(ctx, id, *params.Stake, payout); err != nil {
			return nil, err
		}
		parlay.Stake = *params.Stake
		parlay.PotentialPayout = payout
	}
	if params.Status != nil {
		switch *params.Status {
		case models.ParlayStatusPending, models.ParlayStatusWon,
			models.ParlayStatusLost, models.ParlayStatusPartiallyWon:
		default:
			return nil, fmt.Errorf("unknown parlay status: %s", *params.Status)
		}
		if err := s.Repo.UpdateParlayStatus(ctx, id, *params.Status); err != nil {
			return nil, err
		}
		parlay.Status = *params.Status
	}
	return parlay, nil
}

// UpdateStatuses settles every pending parlay whose games have all finished.
// Player-prop legs without a recorded stat line stay pending, which keeps
// the whole parlay pending until boxscores arrive.
func (s *ParlayService) UpdateStatuses(ctx context.Context) (int, error) {
	if s == nil || s.Repo == nil {
		return 0, nil
	}
	parlays, err := s.Repo.ListPendingParlays(ctx, 500)
	if err != nil {
		return 0, err
	}
	settled := 0
	for i := range parlays {
		done, err := s.settleParlay(ctx, &parlays[i])
		if err != nil {
			s.logger().Warn("parlay settlement failed",
				zap.Uint64("parlay_id", parlays[i].ID),
				zap.Error(err))
			continue
		}
		if done {
			settled++
		}
	}
	if settled > 0 {
		s.logger().Info("parlays settled", zap.Int("count", settled))
	}
	return settled, nil
}

func (s *ParlayService) settleParlay(ctx context.Context, parlay *models.Parlay) (bool, error) {
	games := map[uint64]*models.Game{}
	for _, leg := range parlay.Legs {
		if _, ok := games[leg.GameID]; ok {
			continue
		}
		game, err := s.Repo.GetGameByID(ctx, leg.GameID)
		if err != nil {
			return false, err
		}
		if game == nil {
			return false, fmt.Errorf("game not found: %d", leg.GameID)
		}
		if game.Status != models.GameStatusFinished {
			return false, nil
		}
		if game.HomeScore == nil || game.AwayScore == nil {
			return false, nil
		}
		games[leg.GameID] = game
	}

	// Grade every leg, even after a loss is certain, so leg statuses read
	// correctly on the parlay detail endpoint.
	anyPush := false
	anyLost := false
	ungraded := false
	for i := range parlay.Legs {
		leg := &parlay.Legs[i]
		if leg.Status == models.LegStatusPending {
			graded, err := s.gradeLeg(ctx, leg, games[leg.GameID])
			if err != nil {
				return false, err
			}
			if graded == "" {
				// Not gradable yet, typically a prop waiting on a boxscore.
				ungraded = true
				continue
			}
			if err := s.Repo.UpdateBetLegStatus(ctx, leg.ID, graded); err != nil {
				return false, err
			}
			leg.Status = graded
		}
		switch leg.Status {
		case models.LegStatusLost:
			anyLost = true
		case models.LegStatusPush:
			anyPush = true
		}
	}
	if ungraded {
		return false, nil
	}

	outcome := models.ParlayStatusWon
	switch {
	case anyLost:
		outcome = models.ParlayStatusLost
	case anyPush:
		outcome = models.ParlayStatusPartiallyWon
	}
	return true, s.Repo.UpdateParlayStatus(ctx, parlay.ID, outcome)
}

// gradeLeg returns the settled status for a leg, or "" when the leg cannot
// be graded yet. Market lines come from the game's default book.
func (s *ParlayService) gradeLeg(ctx context.Context, leg *models.BetLeg, game *models.Game) (string, error) {
	homeScore, awayScore := *game.HomeScore, *game.AwayScore

	switch leg.BetType {
	case models.BetTypeMoneyline:
		return string(odds.GradeMoneyline(leg.Selection == models.SelectionHome, homeScore, awayScore)), nil

	case models.BetTypeSpread:
		line, err := s.defaultLine(ctx, game.ID)
		if err != nil {
			return "", err
		}
		if line == nil {
			return "", nil
		}
		var spread *float64
		if leg.Selection == models.SelectionHome {
			spread = line.HomeSpread
		} else {
			spread = line.AwaySpread
		}
		if spread == nil {
			return "", nil
		}
		return string(odds.GradeSpread(leg.Selection == models.SelectionHome, *spread, homeScore, awayScore)), nil

	case models.BetTypeOverUnder:
		line, err := s.defaultLine(ctx, game.ID)
		if err != nil {
			return "", err
		}
		if line == nil || line.Total == nil {
			return "", nil
		}
		return string(odds.GradeTotal(leg.Selection == models.SelectionOver, *line.Total, homeScore, awayScore)), nil

	case models.BetTypePlayerProp:
		return s.gradePropLeg(ctx, leg, game)
	}
	return "", fmt.Errorf("unknown bet type: %s", leg.BetType)
}

func (s *ParlayService) gradePropLeg(ctx context.Context, leg *models.BetLeg, game *models.Game) (string, error) {
	if leg.PlayerID == nil || leg.PropType == nil {
		return "", fmt.Errorf("player_prop leg %d missing player or prop type", leg.ID)
	}
	stat, err := s.Repo.GetPlayerStatLine(ctx, game.ID, *leg.PlayerID)
	if err != nil {
		return "", err
	}
	if stat == nil {
		return "", nil
	}

	var actual int
	switch *leg.PropType {
	case models.PropTypePoints:
		actual = stat.Points()
	case models.PropTypeGoals:
		actual = stat.Goals
	case models.PropTypeAssists:
		actual = stat.Assists
	case models.PropTypeShotsOnGoal:
		actual = stat.ShotsOnGoal
	default:
		return "", fmt.Errorf("unknown prop type: %s", *leg.PropType)
	}

	line, err := s.propLine(ctx, game.ID, *leg.PlayerID, *leg.PropType)
	if err != nil {
		return "", err
	}
	if line == nil {
		return "", nil
	}
	return string(odds.GradeProp(leg.Selection == models.SelectionOver, *line, actual)), nil
}

// defaultLine prefers the DraftKings line, falling back to any book.
func (s *ParlayService) defaultLine(ctx context.Context, gameID uint64) (*models.OddsLine, error) {
	lines, err := s.Repo.ListOddsByGameID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}
	for i := range lines {
		if lines[i].Sportsbook == sportsbook.BookDraftKings {
			return &lines[i], nil
		}
	}
	return &lines[0], nil
}

func (s *ParlayService) propLine(ctx context.Context, gameID, playerID uint64, propType string) (*float64, error) {
	props, err := s.Repo.ListPlayerProps(ctx, repository.ListPropsParams{
		GameID:   &gameID,
		PlayerID: &playerID,
		PropType: &propType,
		Limit:    50,
	})
	if err != nil {
		return nil, err
	}
	if len(props) == 0 {
		return nil, nil
	}
	line := props[0].Line
	return &line, nil
}
