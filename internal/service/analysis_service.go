package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"puckline/internal/ai"
	"puckline/internal/models"
	"puckline/internal/odds"
	"puckline/internal/repository"
)

const (
	newsLookback    = 7 * 24 * time.Hour
	articlesPerTeam = 5
	articleBodyCap  = 500
	recentGameCap   = 10
	upcomingGameCap = 5
)

// AnalysisService generates and caches AI analyses for games, teams and
// parlays, and builds AI-optimized parlays.
type AnalysisService struct {
	Repo     repository.Repository
	AI       ai.Completer
	CacheTTL time.Duration
	Logger   *zap.Logger
}

func (s *AnalysisService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *AnalysisService) cached(ctx context.Context, kind string, refresh bool) (*models.Analysis, error) {
	if refresh {
		return nil, nil
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return s.Repo.GetLatestAnalysisByKind(ctx, kind, time.Now().UTC().Add(-ttl))
}

func (s *AnalysisService) generate(ctx context.Context, kind, prompt string) (*models.Analysis, error) {
	content, err := s.AI.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}
	analysis := &models.Analysis{
		Kind:       kind,
		Content:    content,
		Confidence: ai.ExtractConfidence(content),
		Model:      s.AI.Model(),
	}
	if err := s.Repo.InsertAnalysis(ctx, analysis); err != nil {
		return nil, err
	}
	s.logger().Info("analysis generated",
		zap.String("kind", kind),
		zap.Float64("confidence", analysis.Confidence))
	return analysis, nil
}

// AnalyzeGame returns a cached analysis for the game when one is fresh
// enough, otherwise generates a new one.
func (s *AnalysisService) AnalyzeGame(ctx context.Context, gameID uint64, refresh bool) (*models.Analysis, error) {
	if s == nil || s.Repo == nil || s.AI == nil {
		return nil, fmt.Errorf("analysis service not configured")
	}
	kind := fmt.Sprintf("game_%d", gameID)
	if cached, err := s.cached(ctx, kind, refresh); err != nil {
		return nil, err
	} else if cached != nil {
		return cached, nil
	}

	game, err := s.Repo.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, fmt.Errorf("game not found: %d", gameID)
	}
	home, away, err := s.gameTeams(ctx, game)
	if err != nil {
		return nil, err
	}

	oddsBriefs, propBriefs, err := s.marketBriefs(ctx, game, home, away)
	if err != nil {
		return nil, err
	}
	homePlayers, err := s.playerBriefs(ctx, home.ID)
	if err != nil {
		return nil, err
	}
	awayPlayers, err := s.playerBriefs(ctx, away.ID)
	if err != nil {
		return nil, err
	}
	homeNews, err := s.articleBriefs(ctx, home.ID)
	if err != nil {
		return nil, err
	}
	awayNews, err := s.articleBriefs(ctx, away.ID)
	if err != nil {
		return nil, err
	}

	prompt := ai.BuildGameAnalysisPrompt(
		gameBrief(game, home, away),
		oddsBriefs, propBriefs,
		homePlayers, awayPlayers,
		homeNews, awayNews,
	)
	return s.generate(ctx, kind, prompt)
}

// AnalyzeTeam returns a cached analysis for the team when one is fresh
// enough, otherwise generates a new one.
func (s *AnalysisService) AnalyzeTeam(ctx context.Context, teamID uint64, refresh bool) (*models.Analysis, error) {
	if s == nil || s.Repo == nil || s.AI == nil {
		return nil, fmt.Errorf("analysis service not configured")
	}
	kind := fmt.Sprintf("team_%d", teamID)
	if cached, err := s.cached(ctx, kind, refresh); err != nil {
		return nil, err
	} else if cached != nil {
		return cached, nil
	}

	team, err := s.Repo.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, fmt.Errorf("team not found: %d", teamID)
	}

	players, err := s.playerBriefs(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	recentHome, recentAway, err := s.recentGameBriefs(ctx, team)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.upcomingGameBriefs(ctx, team)
	if err != nil {
		return nil, err
	}
	news, err := s.articleBriefs(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	prompt := ai.BuildTeamAnalysisPrompt(
		ai.TeamDetailBrief{
			ID:           team.ID,
			Name:         team.Name,
			Abbreviation: team.Abbreviation,
			Division:     team.Division,
			Conference:   team.Conference,
		},
		players, recentHome, recentAway, upcoming, news,
	)
	return s.generate(ctx, kind, prompt)
}

// OptimizeParlayParams constrain the AI parlay builder. GameIDs narrows the
// candidate slate; nil means every scheduled game in the next week.
type OptimizeParlayParams struct {
	Stake         decimal.Decimal
	GameIDs       []uint64
	MinTotalOdds  *float64
	MaxLegs       *int
	MinConfidence *float64
}

// OptimizeParlay asks the model for a parlay over the candidate games and
// persists it with its legs. Leg prices are stored as American odds.
func (s *AnalysisService) OptimizeParlay(ctx context.Context, params OptimizeParlayParams) (*models.Parlay, error) {
	if s == nil || s.Repo == nil || s.AI == nil {
		return nil, fmt.Errorf("analysis service not configured")
	}
	if params.Stake.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("stake must be positive")
	}

	games, err := s.candidateGames(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("no upcoming games to build a parlay from")
	}

	briefs := make([]ai.ParlayGameBrief, 0, len(games))
	valid := make(map[uint64]struct{}, len(games))
	for i := range games {
		game := &games[i]
		home, away, err := s.gameTeams(ctx, game)
		if err != nil {
			return nil, err
		}
		oddsBriefs, propBriefs, err := s.marketBriefs(ctx, game, home, away)
		if err != nil {
			return nil, err
		}
		briefs = append(briefs, ai.ParlayGameBrief{
			ID:          game.ID,
			HomeTeam:    ai.TeamBrief{Name: home.Name, Abbreviation: home.Abbreviation},
			AwayTeam:    ai.TeamBrief{Name: away.Name, Abbreviation: away.Abbreviation},
			GameTime:    game.GameTime.UTC().Format(time.RFC3339),
			Odds:        oddsBriefs,
			PlayerProps: propBriefs,
		})
		valid[game.ID] = struct{}{}
	}

	prompt := ai.BuildParlayOptimizationPrompt(
		briefs,
		params.Stake.StringFixed(2),
		params.MinTotalOdds,
		params.MaxLegs,
		params.MinConfidence,
	)
	content, err := s.AI.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}
	plan, err := ai.ExtractParlayPlan(content)
	if err != nil {
		return nil, fmt.Errorf("unusable parlay plan: %w", err)
	}

	legs, totalOdds, err := legsFromPlan(plan, valid, params.MaxLegs)
	if err != nil {
		return nil, err
	}

	name := plan.Name
	if name == "" {
		name = "AI-Generated Parlay"
	}
	parlay := &models.Parlay{
		Name:            name,
		Stake:           params.Stake,
		TotalOdds:       totalOdds,
		PotentialPayout: odds.Payout(params.Stake, totalOdds),
		Confidence:      ai.ExtractConfidence(content),
		Status:          models.ParlayStatusPending,
		Legs:            legs,
	}
	if err := s.Repo.InsertParlay(ctx, parlay); err != nil {
		return nil, err
	}
	s.logger().Info("parlay generated",
		zap.Uint64("parlay_id", parlay.ID),
		zap.Int("legs", len(parlay.Legs)),
		zap.Float64("total_odds", parlay.TotalOdds))
	return parlay, nil
}

// EvaluateParlay generates (or returns a cached) AI evaluation of an
// existing parlay.
func (s *AnalysisService) EvaluateParlay(ctx context.Context, parlayID uint64, refresh bool) (*models.Analysis, error) {
	if s == nil || s.Repo == nil || s.AI == nil {
		return nil, fmt.Errorf("analysis service not configured")
	}
	kind := fmt.Sprintf("parlay_%d", parlayID)
	if cached, err := s.cached(ctx, kind, refresh); err != nil {
		return nil, err
	} else if cached != nil {
		return cached, nil
	}

	parlay, err := s.Repo.GetParlayByID(ctx, parlayID)
	if err != nil {
		return nil, err
	}
	if parlay == nil {
		return nil, fmt.Errorf("parlay not found: %d", parlayID)
	}

	bets := make([]ai.BetBrief, 0, len(parlay.Legs))
	for _, leg := range parlay.Legs {
		brief := ai.BetBrief{
			ID:            leg.ID,
			BetType:       leg.BetType,
			Selection:     leg.Selection,
			Odds:          leg.Price,
			Justification: leg.Justification,
			Status:        leg.Status,
		}
		game, err := s.Repo.GetGameByID(ctx, leg.GameID)
		if err != nil {
			return nil, err
		}
		if game != nil {
			home, away, err := s.gameTeams(ctx, game)
			if err != nil {
				return nil, err
			}
			gb := gameBrief(game, home, away)
			brief.Game = &gb
		}
		bets = append(bets, brief)
	}

	prompt := ai.BuildParlayEvaluationPrompt(ai.ParlayBrief{
		ID:              parlay.ID,
		Name:            parlay.Name,
		Stake:           parlay.Stake.StringFixed(2),
		TotalOdds:       parlay.TotalOdds,
		PotentialPayout: parlay.PotentialPayout.StringFixed(2),
		Status:          parlay.Status,
	}, bets)
	return s.generate(ctx, kind, prompt)
}

// CleanupAnalyses drops analyses older than twice the cache TTL.
func (s *AnalysisService) CleanupAnalyses(ctx context.Context) (int64, error) {
	if s == nil || s.Repo == nil {
		return 0, nil
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	removed, err := s.Repo.DeleteAnalysesBefore(ctx, time.Now().UTC().Add(-2*ttl))
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.logger().Info("stale analyses removed", zap.Int64("count", removed))
	}
	return removed, nil
}

func (s *AnalysisService) candidateGames(ctx context.Context, params OptimizeParlayParams) ([]models.Game, error) {
	if len(params.GameIDs) > 0 {
		games, err := s.Repo.ListGamesByIDs(ctx, params.GameIDs)
		if err != nil {
			return nil, err
		}
		filtered := games[:0]
		for _, game := range games {
			if game.Status == models.GameStatusScheduled {
				filtered = append(filtered, game)
			}
		}
		return filtered, nil
	}

	limit := 500
	if params.MaxLegs != nil && *params.MaxLegs > 0 {
		limit = *params.MaxLegs * 2
	}
	now := time.Now().UTC()
	to := now.AddDate(0, 0, 7)
	status := models.GameStatusScheduled
	return s.Repo.ListGames(ctx, repository.ListGamesParams{
		Limit:  limit,
		Status: &status,
		From:   &now,
		To:     &to,
	})
}

// legsFromPlan converts a parsed plan into bet legs, dropping legs for games
// outside the candidate slate. Plan odds arrive in decimal form and are
// stored as American prices.
func legsFromPlan(plan *ai.ParlayPlan, validGames map[uint64]struct{}, maxLegs *int) ([]models.BetLeg, float64, error) {
	var legs []models.BetLeg
	total := 1.0
	for _, bet := range plan.Bets {
		if _, ok := validGames[bet.GameID]; !ok {
			continue
		}
		if maxLegs != nil && *maxLegs > 0 && len(legs) >= *maxLegs {
			break
		}
		price, err := odds.DecimalToAmerican(bet.Odds)
		if err != nil {
			continue
		}
		justification := bet.Justification
		if justification == "" {
			justification = "AI selection"
		}
		legs = append(legs, models.BetLeg{
			GameID:        bet.GameID,
			BetType:       bet.BetType,
			Selection:     bet.Selection,
			PlayerID:      bet.PlayerID,
			PropType:      bet.PropType,
			Price:         price,
			Justification: justification,
			Status:        models.LegStatusPending,
		})
		total *= bet.Odds
	}
	if len(legs) == 0 {
		return nil, 0, fmt.Errorf("plan contains no usable legs")
	}
	if plan.TotalOdds > 1 {
		total = plan.TotalOdds
	}
	return legs, total, nil
}

func (s *AnalysisService) gameTeams(ctx context.Context, game *models.Game) (*models.Team, *models.Team, error) {
	home, err := s.Repo.GetTeamByID(ctx, game.HomeTeamID)
	if err != nil {
		return nil, nil, err
	}
	away, err := s.Repo.GetTeamByID(ctx, game.AwayTeamID)
	if err != nil {
		return nil, nil, err
	}
	if home == nil || away == nil {
		return nil, nil, fmt.Errorf("teams missing for game %d", game.ID)
	}
	return home, away, nil
}

func gameBrief(game *models.Game, home, away *models.Team) ai.GameBrief {
	return ai.GameBrief{
		ID:       game.ID,
		HomeTeam: ai.TeamBrief{Name: home.Name, Abbreviation: home.Abbreviation},
		AwayTeam: ai.TeamBrief{Name: away.Name, Abbreviation: away.Abbreviation},
		GameTime: game.GameTime.UTC().Format(time.RFC3339),
		Status:   game.Status,
	}
}

func (s *AnalysisService) marketBriefs(ctx context.Context, game *models.Game, home, away *models.Team) ([]ai.OddsBrief, []ai.PropBrief, error) {
	lines, err := s.Repo.ListOddsByGameID(ctx, game.ID)
	if err != nil {
		return nil, nil, err
	}
	oddsBriefs := make([]ai.OddsBrief, 0, len(lines))
	bookByLineID := make(map[uint64]string, len(lines))
	for _, line := range lines {
		bookByLineID[line.ID] = line.Sportsbook
		oddsBriefs = append(oddsBriefs, ai.OddsBrief{
			Sportsbook:     line.Sportsbook,
			HomeMoneyline:  line.HomeMoneyline,
			AwayMoneyline:  line.AwayMoneyline,
			HomeSpread:     line.HomeSpread,
			AwaySpread:     line.AwaySpread,
			HomeSpreadOdds: line.HomeSpreadOdds,
			AwaySpreadOdds: line.AwaySpreadOdds,
			OverUnder:      line.Total,
			OverOdds:       line.OverOdds,
			UnderOdds:      line.UnderOdds,
		})
	}

	gameID := game.ID
	props, err := s.Repo.ListPlayerProps(ctx, repository.ListPropsParams{GameID: &gameID, Limit: 500})
	if err != nil {
		return nil, nil, err
	}
	propBriefs := make([]ai.PropBrief, 0, len(props))
	playerCache := map[uint64]*models.Player{}
	for _, prop := range props {
		player, ok := playerCache[prop.PlayerID]
		if !ok {
			player, err = s.Repo.GetPlayerByID(ctx, prop.PlayerID)
			if err != nil {
				return nil, nil, err
			}
			playerCache[prop.PlayerID] = player
		}
		if player == nil {
			continue
		}
		side := "away"
		if player.TeamID == home.ID {
			side = "home"
		}
		propBriefs = append(propBriefs, ai.PropBrief{
			Sportsbook: bookByLineID[prop.OddsLineID],
			PlayerID:   player.ID,
			PlayerName: player.Name,
			Team:       side,
			Position:   player.Position,
			PropType:   prop.PropType,
			Line:       prop.Line,
			OverOdds:   prop.OverOdds,
			UnderOdds:  prop.UnderOdds,
		})
	}
	return oddsBriefs, propBriefs, nil
}

func (s *AnalysisService) playerBriefs(ctx context.Context, teamID uint64) ([]ai.PlayerBrief, error) {
	players, err := s.Repo.ListPlayersByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	briefs := make([]ai.PlayerBrief, 0, len(players))
	for _, player := range players {
		briefs = append(briefs, ai.PlayerBrief{
			Name:          player.Name,
			Position:      player.Position,
			IsInjured:     player.Injured,
			InjuryDetails: player.InjuryDetails,
		})
	}
	return briefs, nil
}

func (s *AnalysisService) articleBriefs(ctx context.Context, teamID uint64) ([]ai.ArticleBrief, error) {
	since := time.Now().UTC().Add(-newsLookback)
	articles, err := s.Repo.ListNewsArticles(ctx, repository.ListNewsParams{
		Limit:  articlesPerTeam,
		TeamID: &teamID,
		Since:  &since,
	})
	if err != nil {
		return nil, err
	}
	briefs := make([]ai.ArticleBrief, 0, len(articles))
	for _, article := range articles {
		content := article.Content
		if len(content) > articleBodyCap {
			content = content[:articleBodyCap] + "..."
		}
		briefs = append(briefs, ai.ArticleBrief{
			Title:         article.Title,
			Source:        article.Source,
			PublishedDate: article.PublishedAt.UTC().Format(time.RFC3339),
			Summary:       article.Summary,
			Content:       content,
		})
	}
	return briefs, nil
}

func (s *AnalysisService) recentGameBriefs(ctx context.Context, team *models.Team) ([]ai.PastGameBrief, []ai.PastGameBrief, error) {
	status := models.GameStatusFinished
	desc := false
	games, err := s.Repo.ListGames(ctx, repository.ListGamesParams{
		Limit:   recentGameCap * 2,
		Status:  &status,
		TeamID:  &team.ID,
		OrderBy: "game_time",
		Asc:     &desc,
	})
	if err != nil {
		return nil, nil, err
	}
	var home, away []ai.PastGameBrief
	for i := range games {
		game := &games[i]
		isHome := game.HomeTeamID == team.ID
		opponentID := game.AwayTeamID
		if !isHome {
			opponentID = game.HomeTeamID
		}
		opponent, err := s.Repo.GetTeamByID(ctx, opponentID)
		if err != nil {
			return nil, nil, err
		}
		opponentName := ""
		if opponent != nil {
			opponentName = opponent.Name
		}
		brief := ai.PastGameBrief{
			ID:        game.ID,
			Opponent:  opponentName,
			GameTime:  game.GameTime.UTC().Format(time.RFC3339),
			Status:    game.Status,
			HomeScore: game.HomeScore,
			AwayScore: game.AwayScore,
		}
		if isHome && len(home) < recentGameCap {
			home = append(home, brief)
		} else if !isHome && len(away) < recentGameCap {
			away = append(away, brief)
		}
	}
	return home, away, nil
}

func (s *AnalysisService) upcomingGameBriefs(ctx context.Context, team *models.Team) ([]ai.UpcomingGameBrief, error) {
	status := models.GameStatusScheduled
	now := time.Now().UTC()
	games, err := s.Repo.ListGames(ctx, repository.ListGamesParams{
		Limit:  upcomingGameCap,
		Status: &status,
		TeamID: &team.ID,
		From:   &now,
	})
	if err != nil {
		return nil, err
	}
	briefs := make([]ai.UpcomingGameBrief, 0, len(games))
	for i := range games {
		game := &games[i]
		isHome := game.HomeTeamID == team.ID
		opponentID := game.AwayTeamID
		if !isHome {
			opponentID = game.HomeTeamID
		}
		opponent, err := s.Repo.GetTeamByID(ctx, opponentID)
		if err != nil {
			return nil, err
		}
		opponentName := ""
		if opponent != nil {
			opponentName = opponent.Name
		}
		briefs = append(briefs, ai.UpcomingGameBrief{
			ID:       game.ID,
			Opponent: opponentName,
			IsHome:   isHome,
			GameTime: game.GameTime.UTC().Format(time.RFC3339),
		})
	}
	return briefs, nil
}
