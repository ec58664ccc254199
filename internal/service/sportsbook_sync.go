package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"puckline/internal/client/nhl"
	"puckline/internal/client/sportsbook"
	"puckline/internal/config"
	"puckline/internal/models"
	"puckline/internal/repository"
)

// SportsbookSyncService keeps the schedule, rosters, odds, props and
// boxscores current. Each Refresh method is safe to run repeatedly.
type SportsbookSyncService struct {
	Repo     repository.Repository
	Schedule *nhl.Client
	Books    []sportsbook.Provider
	Config   config.ScheduleConfig
	Logger   *zap.Logger
}

func (s *SportsbookSyncService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// EnsureTeams seeds the league's teams. Existing rows are refreshed in place.
func (s *SportsbookSyncService) EnsureTeams(ctx context.Context) error {
	if s == nil || s.Repo == nil {
		return nil
	}
	return s.Repo.InTx(ctx, func(tx *gorm.DB) error {
		return s.Repo.UpsertTeamsTx(ctx, tx, nhlTeams)
	})
}

// RefreshRosters pulls the current roster for every team.
func (s *SportsbookSyncService) RefreshRosters(ctx context.Context) (int, error) {
	if s == nil || s.Repo == nil || s.Schedule == nil {
		return 0, nil
	}
	teams, err := s.Repo.ListTeams(ctx)
	if err != nil {
		return 0, err
	}
	updated := 0
	for _, team := range teams {
		roster, err := s.Schedule.Roster(ctx, team.Abbreviation)
		if err != nil {
			s.logger().Warn("roster fetch failed",
				zap.String("team", team.Abbreviation),
				zap.Error(err))
			continue
		}
		players := make([]models.Player, 0, len(roster))
		for _, entry := range roster {
			players = append(players, models.Player{
				Name:         entry.Name,
				Position:     entry.Position,
				JerseyNumber: entry.JerseyNumber,
				TeamID:       team.ID,
			})
		}
		if err := s.Repo.InTx(ctx, func(tx *gorm.DB) error {
			return s.Repo.UpsertPlayersTx(ctx, tx, players)
		}); err != nil {
			return updated, err
		}
		updated += len(players)
	}
	s.logger().Info("rosters refreshed", zap.Int("players", updated))
	return updated, nil
}

// RefreshGames syncs the schedule window, including live scores and final
// results for games already in the window.
func (s *SportsbookSyncService) RefreshGames(ctx context.Context) (int, error) {
	if s == nil || s.Repo == nil || s.Schedule == nil {
		return 0, nil
	}
	teams, err := s.Repo.ListTeams(ctx)
	if err != nil {
		return 0, err
	}
	byAbbrev := make(map[string]uint64, len(teams))
	for _, team := range teams {
		byAbbrev[team.Abbreviation] = team.ID
	}

	daysAhead := s.Config.DaysAhead
	if daysAhead <= 0 {
		daysAhead = 7
	}
	now := time.Now().UTC()

	var games []models.Game
	seen := map[string]struct{}{}
	// The schedule endpoint returns one week per call.
	for offset := 0; offset <= daysAhead; offset += 7 {
		week, err := s.Schedule.ScheduleWeek(ctx, now.AddDate(0, 0, offset))
		if err != nil {
			return 0, fmt.Errorf("schedule fetch failed: %w", err)
		}
		for _, scheduled := range week {
			if _, ok := seen[scheduled.ExternalID]; ok {
				continue
			}
			seen[scheduled.ExternalID] = struct{}{}
			homeID, okHome := byAbbrev[scheduled.HomeAbbrev]
			awayID, okAway := byAbbrev[scheduled.AwayAbbrev]
			if !okHome || !okAway {
				s.logger().Warn("unknown team in schedule",
					zap.String("home", scheduled.HomeAbbrev),
					zap.String("away", scheduled.AwayAbbrev))
				continue
			}
			games = append(games, models.Game{
				ExternalID: scheduled.ExternalID,
				HomeTeamID: homeID,
				AwayTeamID: awayID,
				GameTime:   scheduled.StartTime,
				Status:     scheduled.State,
				HomeScore:  scheduled.HomeScore,
				AwayScore:  scheduled.AwayScore,
			})
		}
	}

	if err := s.Repo.InTx(ctx, func(tx *gorm.DB) error {
		return s.Repo.UpsertGamesTx(ctx, tx, games)
	}); err != nil {
		return 0, err
	}
	s.logger().Info("games refreshed", zap.Int("games", len(games)))
	return len(games), nil
}

func (s *SportsbookSyncService) upcomingGames(ctx context.Context) ([]models.Game, error) {
	now := time.Now().UTC()
	to := now.AddDate(0, 0, 7)
	status := models.GameStatusScheduled
	return s.Repo.ListGames(ctx, repository.ListGamesParams{
		Limit:  500,
		Status: &status,
		From:   &now,
		To:     &to,
	})
}

// RefreshOdds refreshes full-game odds for every scheduled game in the next
// seven days.
func (s *SportsbookSyncService) RefreshOdds(ctx context.Context) (int, error) {
	if s == nil || s.Repo == nil {
		return 0, nil
	}
	games, err := s.upcomingGames(ctx)
	if err != nil {
		return 0, err
	}
	updated := 0
	for _, game := range games {
		n, err := s.RefreshOddsForGame(ctx, game.ID)
		if err != nil {
			s.logger().Warn("odds refresh failed",
				zap.Uint64("game_id", game.ID),
				zap.Error(err))
			continue
		}
		updated += n
	}
	s.logger().Info("odds refreshed", zap.Int("lines", updated))
	return updated, nil
}

func (s *SportsbookSyncService) RefreshOddsForGame(ctx context.Context, gameID uint64) (int, error) {
	if s == nil || s.Repo == nil {
		return 0, nil
	}
	game, err := s.Repo.GetGameByID(ctx, gameID)
	if err != nil {
		return 0, err
	}
	if game == nil {
		return 0, fmt.Errorf("game not found: %d", gameID)
	}

	var lines []models.OddsLine
	for _, book := range s.Books {
		quote, err := book.GameOdds(ctx, game.ExternalID)
		if err != nil {
			s.logger().Warn("book odds fetch failed",
				zap.String("book", book.Name()),
				zap.String("game", game.ExternalID),
				zap.Error(err))
			continue
		}
		if quote == nil {
			continue
		}
		lines = append(lines, models.OddsLine{
			GameID:         game.ID,
			Sportsbook:     quote.Sportsbook,
			HomeMoneyline:  quote.HomeMoneyline,
			AwayMoneyline:  quote.AwayMoneyline,
			HomeSpread:     quote.HomeSpread,
			AwaySpread:     quote.AwaySpread,
			HomeSpreadOdds: quote.HomeSpreadOdds,
			AwaySpreadOdds: quote.AwaySpreadOdds,
			Total:          quote.Total,
			OverOdds:       quote.OverOdds,
			UnderOdds:      quote.UnderOdds,
			RawJSON:        datatypes.JSON(quote.Raw),
		})
	}
	if len(lines) == 0 {
		return 0, nil
	}
	if err := s.Repo.InTx(ctx, func(tx *gorm.DB) error {
		return s.Repo.UpsertOddsLinesTx(ctx, tx, lines)
	}); err != nil {
		return 0, err
	}
	return len(lines), nil
}

// RefreshProps refreshes player props for every scheduled game in the next
// seven days.
func (s *SportsbookSyncService) RefreshProps(ctx context.Context) (int, error) {
	if s == nil || s.Repo == nil {
		return 0, nil
	}
	games, err := s.upcomingGames(ctx)
	if err != nil {
		return 0, err
	}
	updated := 0
	for _, game := range games {
		n, err := s.RefreshPropsForGame(ctx, game.ID)
		if err != nil {
			s.logger().Warn("props refresh failed",
				zap.Uint64("game_id", game.ID),
				zap.Error(err))
			continue
		}
		updated += n
	}
	s.logger().Info("props refreshed", zap.Int("props", updated))
	return updated, nil
}

func (s *SportsbookSyncService) RefreshPropsForGame(ctx context.Context, gameID uint64) (int, error) {
	if s == nil || s.Repo == nil {
		return 0, nil
	}
	game, err := s.Repo.GetGameByID(ctx, gameID)
	if err != nil {
		return 0, err
	}
	if game == nil {
		return 0, fmt.Errorf("game not found: %d", gameID)
	}

	roster, err := s.gameRoster(ctx, game)
	if err != nil {
		return 0, err
	}
	if len(roster) == 0 {
		return 0, nil
	}

	oddsLines, err := s.Repo.ListOddsByGameID(ctx, game.ID)
	if err != nil {
		return 0, err
	}
	lineByBook := make(map[string]uint64, len(oddsLines))
	for _, line := range oddsLines {
		lineByBook[line.Sportsbook] = line.ID
	}

	var props []models.PlayerProp
	for _, book := range s.Books {
		oddsLineID, ok := lineByBook[book.Name()]
		if !ok {
			// Props hang off a book's odds line; skip books with no line yet.
			continue
		}
		quotes, err := book.PlayerProps(ctx, game.ExternalID, roster)
		if err != nil {
			s.logger().Warn("book props fetch failed",
				zap.String("book", book.Name()),
				zap.String("game", game.ExternalID),
				zap.Error(err))
			continue
		}
		for _, quote := range quotes {
			props = append(props, models.PlayerProp{
				OddsLineID: oddsLineID,
				PlayerID:   quote.PlayerID,
				PropType:   quote.PropType,
				Line:       quote.Line,
				OverOdds:   quote.OverOdds,
				UnderOdds:  quote.UnderOdds,
			})
		}
	}
	if len(props) == 0 {
		return 0, nil
	}
	if err := s.Repo.InTx(ctx, func(tx *gorm.DB) error {
		return s.Repo.UpsertPlayerPropsTx(ctx, tx, props)
	}); err != nil {
		return 0, err
	}
	return len(props), nil
}

func (s *SportsbookSyncService) gameRoster(ctx context.Context, game *models.Game) ([]sportsbook.PlayerRef, error) {
	var roster []sportsbook.PlayerRef
	for _, teamID := range []uint64{game.HomeTeamID, game.AwayTeamID} {
		players, err := s.Repo.ListPlayersByTeamID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		for _, player := range players {
			roster = append(roster, sportsbook.PlayerRef{
				ID:       player.ID,
				Name:     player.Name,
				Position: player.Position,
			})
		}
	}
	return roster, nil
}

// RefreshBoxscores stores skater stat lines for recently finished games so
// player-prop legs can be graded.
func (s *SportsbookSyncService) RefreshBoxscores(ctx context.Context) (int, error) {
	if s == nil || s.Repo == nil || s.Schedule == nil {
		return 0, nil
	}
	from := time.Now().UTC().AddDate(0, 0, -3)
	to := time.Now().UTC()
	status := models.GameStatusFinished
	games, err := s.Repo.ListGames(ctx, repository.ListGamesParams{
		Limit:  500,
		Status: &status,
		From:   &from,
		To:     &to,
	})
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, game := range games {
		lines, err := s.Schedule.Boxscore(ctx, game.ExternalID)
		if err != nil {
			s.logger().Warn("boxscore fetch failed",
				zap.String("game", game.ExternalID),
				zap.Error(err))
			continue
		}
		var stats []models.PlayerStatLine
		for _, line := range lines {
			player, err := s.Repo.GetPlayerByName(ctx, line.Name)
			if err != nil {
				return updated, err
			}
			if player == nil {
				continue
			}
			stats = append(stats, models.PlayerStatLine{
				GameID:      game.ID,
				PlayerID:    player.ID,
				Goals:       line.Goals,
				Assists:     line.Assists,
				ShotsOnGoal: line.ShotsOnGoal,
			})
		}
		if len(stats) == 0 {
			continue
		}
		if err := s.Repo.InTx(ctx, func(tx *gorm.DB) error {
			return s.Repo.UpsertPlayerStatLinesTx(ctx, tx, stats)
		}); err != nil {
			return updated, err
		}
		updated += len(stats)
	}
	s.logger().Info("boxscores refreshed", zap.Int("stat_lines", updated))
	return updated, nil
}
