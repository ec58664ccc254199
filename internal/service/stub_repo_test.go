package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"puckline/internal/models"
	"puckline/internal/repository"
)

// stubRepo is an in-memory Repository for service tests. Only the methods
// the tests exercise have real behavior.
type stubRepo struct {
	teams    []models.Team
	players  []models.Player
	games    []models.Game
	lines    []models.OddsLine
	props    []models.PlayerProp
	articles []models.NewsArticle
	parlays  []models.Parlay
	stats    []models.PlayerStatLine
	analyses []models.Analysis

	nextID uint64
}

var _ repository.Repository = (*stubRepo)(nil)

func (r *stubRepo) id() uint64 {
	r.nextID++
	return r.nextID
}

func (r *stubRepo) InTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func (r *stubRepo) UpsertTeamsTx(_ context.Context, _ *gorm.DB, items []models.Team) error {
	for _, item := range items {
		if item.ID == 0 {
			item.ID = r.id()
		}
		r.teams = append(r.teams, item)
	}
	return nil
}

func (r *stubRepo) ListTeams(context.Context) ([]models.Team, error) { return r.teams, nil }

func (r *stubRepo) GetTeamByID(_ context.Context, id uint64) (*models.Team, error) {
	for i := range r.teams {
		if r.teams[i].ID == id {
			return &r.teams[i], nil
		}
	}
	return nil, nil
}

func (r *stubRepo) GetTeamByAbbreviation(_ context.Context, abbr string) (*models.Team, error) {
	for i := range r.teams {
		if r.teams[i].Abbreviation == abbr {
			return &r.teams[i], nil
		}
	}
	return nil, nil
}

func (r *stubRepo) UpsertPlayersTx(_ context.Context, _ *gorm.DB, items []models.Player) error {
	for _, item := range items {
		if item.ID == 0 {
			item.ID = r.id()
		}
		r.players = append(r.players, item)
	}
	return nil
}

func (r *stubRepo) ListPlayers(context.Context) ([]models.Player, error) { return r.players, nil }

func (r *stubRepo) ListPlayersByTeamID(_ context.Context, teamID uint64) ([]models.Player, error) {
	var out []models.Player
	for _, p := range r.players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubRepo) GetPlayerByID(_ context.Context, id uint64) (*models.Player, error) {
	for i := range r.players {
		if r.players[i].ID == id {
			return &r.players[i], nil
		}
	}
	return nil, nil
}

func (r *stubRepo) GetPlayerByName(_ context.Context, name string) (*models.Player, error) {
	for i := range r.players {
		if strings.EqualFold(r.players[i].Name, name) {
			return &r.players[i], nil
		}
	}
	return nil, nil
}

func (r *stubRepo) UpsertGamesTx(_ context.Context, _ *gorm.DB, items []models.Game) error {
	for _, item := range items {
		if item.ID == 0 {
			item.ID = r.id()
		}
		r.games = append(r.games, item)
	}
	return nil
}

func (r *stubRepo) GetGameByID(_ context.Context, id uint64) (*models.Game, error) {
	for i := range r.games {
		if r.games[i].ID == id {
			return &r.games[i], nil
		}
	}
	return nil, nil
}

func (r *stubRepo) GetGameByExternalID(_ context.Context, externalID string) (*models.Game, error) {
	for i := range r.games {
		if r.games[i].ExternalID == externalID {
			return &r.games[i], nil
		}
	}
	return nil, nil
}

func (r *stubRepo) ListGames(_ context.Context, params repository.ListGamesParams) ([]models.Game, error) {
	var out []models.Game
	for _, g := range r.games {
		if params.Status != nil && g.Status != *params.Status {
			continue
		}
		if params.TeamID != nil && g.HomeTeamID != *params.TeamID && g.AwayTeamID != *params.TeamID {
			continue
		}
		if params.From != nil && g.GameTime.Before(*params.From) {
			continue
		}
		if params.To != nil && g.GameTime.After(*params.To) {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (r *stubRepo) CountGames(ctx context.Context, params repository.ListGamesParams) (int64, error) {
	games, _ := r.ListGames(ctx, params)
	return int64(len(games)), nil
}

func (r *stubRepo) ListGamesByIDs(_ context.Context, ids []uint64) ([]models.Game, error) {
	var out []models.Game
	for _, g := range r.games {
		for _, id := range ids {
			if g.ID == id {
				out = append(out, g)
				break
			}
		}
	}
	return out, nil
}

func (r *stubRepo) UpdateGameResult(_ context.Context, id uint64, status string, homeScore, awayScore *int) error {
	for i := range r.games {
		if r.games[i].ID == id {
			r.games[i].Status = status
			r.games[i].HomeScore = homeScore
			r.games[i].AwayScore = awayScore
		}
	}
	return nil
}

func (r *stubRepo) UpsertOddsLinesTx(_ context.Context, _ *gorm.DB, items []models.OddsLine) error {
	for _, item := range items {
		if item.ID == 0 {
			item.ID = r.id()
		}
		r.lines = append(r.lines, item)
	}
	return nil
}

func (r *stubRepo) GetOddsLineByID(_ context.Context, id uint64) (*models.OddsLine, error) {
	for i := range r.lines {
		if r.lines[i].ID == id {
			return &r.lines[i], nil
		}
	}
	return nil, nil
}

func (r *stubRepo) ListOddsByGameID(_ context.Context, gameID uint64) ([]models.OddsLine, error) {
	var out []models.OddsLine
	for _, l := range r.lines {
		if l.GameID == gameID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubRepo) ListOddsLines(_ context.Context, params repository.ListOddsParams) ([]models.OddsLine, error) {
	var out []models.OddsLine
	for _, l := range r.lines {
		if params.GameID != nil && l.GameID != *params.GameID {
			continue
		}
		if params.Sportsbook != nil && l.Sportsbook != *params.Sportsbook {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *stubRepo) CountOddsLines(ctx context.Context, params repository.ListOddsParams) (int64, error) {
	lines, _ := r.ListOddsLines(ctx, params)
	return int64(len(lines)), nil
}

func (r *stubRepo) UpsertPlayerPropsTx(_ context.Context, _ *gorm.DB, items []models.PlayerProp) error {
	for _, item := range items {
		if item.ID == 0 {
			item.ID = r.id()
		}
		r.props = append(r.props, item)
	}
	return nil
}

func (r *stubRepo) GetPlayerPropByID(_ context.Context, id uint64) (*models.PlayerProp, error) {
	for i := range r.props {
		if r.props[i].ID == id {
			return &r.props[i], nil
		}
	}
	return nil, nil
}

func (r *stubRepo) ListPlayerProps(_ context.Context, params repository.ListPropsParams) ([]models.PlayerProp, error) {
	var out []models.PlayerProp
	for _, p := range r.props {
		if params.GameID != nil || params.Sportsbook != nil {
			line, _ := r.GetOddsLineByID(context.Background(), p.OddsLineID)
			if line == nil {
				continue
			}
			if params.GameID != nil && line.GameID != *params.GameID {
				continue
			}
			if params.Sportsbook != nil && line.Sportsbook != *params.Sportsbook {
				continue
			}
		}
		if params.PlayerID != nil && p.PlayerID != *params.PlayerID {
			continue
		}
		if params.PropType != nil && p.PropType != *params.PropType {
			continue
		}
		if params.OddsLineID != nil && p.OddsLineID != *params.OddsLineID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *stubRepo) CountPlayerProps(ctx context.Context, params repository.ListPropsParams) (int64, error) {
	props, _ := r.ListPlayerProps(ctx, params)
	return int64(len(props)), nil
}

func (r *stubRepo) UpsertNewsArticle(_ context.Context, item *models.NewsArticle) error {
	if item.ID == 0 {
		item.ID = r.id()
	}
	for i := range r.articles {
		if r.articles[i].URL == item.URL {
			r.articles[i] = *item
			return nil
		}
	}
	r.articles = append(r.articles, *item)
	return nil
}

func (r *stubRepo) GetNewsArticleByID(_ context.Context, id uint64) (*models.NewsArticle, error) {
	for i := range r.articles {
		if r.articles[i].ID == id {
			return &r.articles[i], nil
		}
	}
	return nil, nil
}

func (r *stubRepo) GetNewsArticleByURL(_ context.Context, url string) (*models.NewsArticle, error) {
	for i := range r.articles {
		if r.articles[i].URL == url {
			return &r.articles[i], nil
		}
	}
	return nil, nil
}

func (r *stubRepo) ListNewsArticles(_ context.Context, params repository.ListNewsParams) ([]models.NewsArticle, error) {
	var out []models.NewsArticle
	for _, a := range r.articles {
		if params.Source != nil && a.Source != *params.Source {
			continue
		}
		if params.Since != nil && a.PublishedAt.Before(*params.Since) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *stubRepo) CountNewsArticles(ctx context.Context, params repository.ListNewsParams) (int64, error) {
	articles, _ := r.ListNewsArticles(ctx, params)
	return int64(len(articles)), nil
}

func (r *stubRepo) InsertParlay(_ context.Context, item *models.Parlay) error {
	item.ID = r.id()
	for i := range item.Legs {
		item.Legs[i].ID = r.id()
		item.Legs[i].ParlayID = item.ID
	}
	r.parlays = append(r.parlays, *item)
	return nil
}

func (r *stubRepo) GetParlayByID(_ context.Context, id uint64) (*models.Parlay, error) {
	for i := range r.parlays {
		if r.parlays[i].ID == id {
			return &r.parlays[i], nil
		}
	}
	return nil, nil
}

func (r *stubRepo) ListParlays(_ context.Context, params repository.ListParlaysParams) ([]models.Parlay, error) {
	var out []models.Parlay
	for _, p := range r.parlays {
		if params.Status != nil && p.Status != *params.Status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *stubRepo) CountParlays(ctx context.Context, params repository.ListParlaysParams) (int64, error) {
	parlays, _ := r.ListParlays(ctx, params)
	return int64(len(parlays)), nil
}

func (r *stubRepo) ListPendingParlays(_ context.Context, _ int) ([]models.Parlay, error) {
	var out []models.Parlay
	for _, p := range r.parlays {
		if p.Status == models.ParlayStatusPending {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubRepo) UpdateParlayStatus(_ context.Context, id uint64, status string) error {
	for i := range r.parlays {
		if r.parlays[i].ID == id {
			r.parlays[i].Status = status
		}
	}
	return nil
}

func (r *stubRepo) UpdateParlayName(_ context.Context, id uint64, name string) error {
	for i := range r.parlays {
		if r.parlays[i].ID == id {
			r.parlays[i].Name = name
		}
	}
	return nil
}

func (r *stubRepo) UpdateParlayStake(_ context.Context, id uint64, stake, payout decimal.Decimal) error {
	for i := range r.parlays {
		if r.parlays[i].ID == id {
			r.parlays[i].Stake = stake
			r.parlays[i].PotentialPayout = payout
		}
	}
	return nil
}

func (r *stubRepo) UpdateBetLegStatus(_ context.Context, id uint64, status string) error {
	for i := range r.parlays {
		for j := range r.parlays[i].Legs {
			if r.parlays[i].Legs[j].ID == id {
				r.parlays[i].Legs[j].Status = status
			}
		}
	}
	return nil
}

func (r *stubRepo) DeleteParlay(_ context.Context, id uint64) error {
	for i := range r.parlays {
		if r.parlays[i].ID == id {
			r.parlays = append(r.parlays[:i], r.parlays[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubRepo) UpsertPlayerStatLinesTx(_ context.Context, _ *gorm.DB, items []models.PlayerStatLine) error {
	for _, item := range items {
		if item.ID == 0 {
			item.ID = r.id()
		}
		r.stats = append(r.stats, item)
	}
	return nil
}

func (r *stubRepo) GetPlayerStatLine(_ context.Context, gameID, playerID uint64) (*models.PlayerStatLine, error) {
	for i := range r.stats {
		if r.stats[i].GameID == gameID && r.stats[i].PlayerID == playerID {
			return &r.stats[i], nil
		}
	}
	return nil, nil
}

func (r *stubRepo) InsertAnalysis(_ context.Context, item *models.Analysis) error {
	item.ID = r.id()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	r.analyses = append(r.analyses, *item)
	return nil
}

func (r *stubRepo) GetLatestAnalysisByKind(_ context.Context, kind string, notBefore time.Time) (*models.Analysis, error) {
	var latest *models.Analysis
	for i := range r.analyses {
		a := &r.analyses[i]
		if a.Kind != kind || a.CreatedAt.Before(notBefore) {
			continue
		}
		if latest == nil || a.CreatedAt.After(latest.CreatedAt) {
			latest = a
		}
	}
	return latest, nil
}

func (r *stubRepo) DeleteAnalysesBefore(_ context.Context, before time.Time) (int64, error) {
	kept := r.analyses[:0]
	var removed int64
	for _, a := range r.analyses {
		if a.CreatedAt.Before(before) {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	r.analyses = kept
	return removed, nil
}
