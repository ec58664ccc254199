package gormrepository

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"puckline/internal/models"
	"puckline/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

// --- Teams & players --------------------------------------------------------

func (s *Store) UpsertTeamsTx(ctx context.Context, tx *gorm.DB, items []models.Team) error {
	if s == nil || tx == nil || len(items) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "abbreviation"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name",
			"division",
			"conference",
			"logo_url",
			"updated_at",
		}),
	}).CreateInBatches(items, 64).Error
}

func (s *Store) ListTeams(ctx context.Context) ([]models.Team, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Team
	if err := s.db.WithContext(ctx).
		Model(&models.Team{}).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetTeamByID(ctx context.Context, id uint64) (*models.Team, error) {
	if s == nil || s.db == nil || id == 0 {
		return nil, nil
	}
	var item models.Team
	err := s.db.WithContext(ctx).Model(&models.Team{}).Where("id = ?", id).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) GetTeamByAbbreviation(ctx context.Context, abbr string) (*models.Team, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	abbr = strings.TrimSpace(abbr)
	if abbr == "" {
		return nil, nil
	}
	var item models.Team
	err := s.db.WithContext(ctx).Model(&models.Team{}).Where("abbreviation = ?", abbr).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) UpsertPlayersTx(ctx context.Context, tx *gorm.DB, items []models.Player) error {
	if s == nil || tx == nil || len(items) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "team_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"position",
			"jersey_number",
			"injured",
			"injury_details",
			"updated_at",
		}),
	}).CreateInBatches(items, 128).Error
}

func (s *Store) ListPlayers(ctx context.Context) ([]models.Player, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Player
	if err := s.db.WithContext(ctx).
		Model(&models.Player{}).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListPlayersByTeamID(ctx context.Context, teamID uint64) ([]models.Player, error) {
	if s == nil || s.db == nil || teamID == 0 {
		return nil, nil
	}
	var items []models.Player
	if err := s.db.WithContext(ctx).
		Model(&models.Player{}).
		Where("team_id = ?", teamID).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetPlayerByID(ctx context.Context, id uint64) (*models.Player, error) {
	if s == nil || s.db == nil || id == 0 {
		return nil, nil
	}
	var item models.Player
	err := s.db.WithContext(ctx).Model(&models.Player{}).Where("id = ?", id).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) GetPlayerByName(ctx context.Context, name string) (*models.Player, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	var item models.Player
	err := s.db.WithContext(ctx).Model(&models.Player{}).Where("name = ?", name).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// --- Games ------------------------------------------------------------------

func (s *Store) UpsertGamesTx(ctx context.Context, tx *gorm.DB, items []models.Game) error {
	if s == nil || tx == nil || len(items) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"home_team_id",
			"away_team_id",
			"game_time",
			"status",
			"home_score",
			"away_score",
			"updated_at",
		}),
	}).CreateInBatches(items, 128).Error
}

func (s *Store) GetGameByID(ctx context.Context, id uint64) (*models.Game, error) {
	if s == nil || s.db == nil || id == 0 {
		return nil, nil
	}
	var item models.Game
	err := s.db.WithContext(ctx).Model(&models.Game{}).Where("id = ?", id).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) GetGameByExternalID(ctx context.Context, externalID string) (*models.Game, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, nil
	}
	var item models.Game
	err := s.db.WithContext(ctx).Model(&models.Game{}).Where("external_id = ?", externalID).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func gamesQuery(db *gorm.DB, params repository.ListGamesParams) *gorm.DB {
	query := db.Model(&models.Game{})
	if params.Status != nil && strings.TrimSpace(*params.Status) != "" {
		query = query.Where("status = ?", strings.TrimSpace(*params.Status))
	}
	if params.TeamID != nil && *params.TeamID > 0 {
		query = query.Where("home_team_id = ? OR away_team_id = ?", *params.TeamID, *params.TeamID)
	}
	if params.From != nil && !params.From.IsZero() {
		query = query.Where("game_time >= ?", *params.From)
	}
	if params.To != nil && !params.To.IsZero() {
		query = query.Where("game_time < ?", *params.To)
	}
	return query
}

func (s *Store) ListGames(ctx context.Context, params repository.ListGamesParams) ([]models.Game, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := gamesQuery(s.db.WithContext(ctx), params)
	asc := true
	if params.Asc != nil {
		asc = *params.Asc
	}
	query = applyOrder(query, params.OrderBy, &asc, "game_time")
	limit := normalizeLimit(params.Limit, 100)
	offset := normalizeOffset(params.Offset)
	var items []models.Game
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountGames(ctx context.Context, params repository.ListGamesParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	if err := gamesQuery(s.db.WithContext(ctx), params).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) ListGamesByIDs(ctx context.Context, ids []uint64) ([]models.Game, error) {
	if s == nil || s.db == nil || len(ids) == 0 {
		return nil, nil
	}
	var items []models.Game
	if err := s.db.WithContext(ctx).
		Model(&models.Game{}).
		Where("id IN ?", ids).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) UpdateGameResult(ctx context.Context, id uint64, status string, homeScore, awayScore *int) error {
	if s == nil || s.db == nil || id == 0 {
		return nil
	}
	updates := map[string]any{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	if homeScore != nil {
		updates["home_score"] = *homeScore
	}
	if awayScore != nil {
		updates["away_score"] = *awayScore
	}
	return s.db.WithContext(ctx).
		Model(&models.Game{}).
		Where("id = ?", id).
		Updates(updates).
		Error
}

// --- Odds & props -----------------------------------------------------------

func (s *Store) UpsertOddsLinesTx(ctx context.Context, tx *gorm.DB, items []models.OddsLine) error {
	if s == nil || tx == nil || len(items) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "game_id"}, {Name: "sportsbook"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"home_moneyline",
			"away_moneyline",
			"home_spread",
			"away_spread",
			"home_spread_odds",
			"away_spread_odds",
			"total",
			"over_odds",
			"under_odds",
			"raw_json",
			"updated_at",
		}),
	}).CreateInBatches(items, 128).Error
}

func (s *Store) GetOddsLineByID(ctx context.Context, id uint64) (*models.OddsLine, error) {
	if s == nil || s.db == nil || id == 0 {
		return nil, nil
	}
	var item models.OddsLine
	err := s.db.WithContext(ctx).Model(&models.OddsLine{}).Where("id = ?", id).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListOddsByGameID(ctx context.Context, gameID uint64) ([]models.OddsLine, error) {
	if s == nil || s.db == nil || gameID == 0 {
		return nil, nil
	}
	var items []models.OddsLine
	if err := s.db.WithContext(ctx).
		Model(&models.OddsLine{}).
		Where("game_id = ?", gameID).
		Order("sportsbook asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func oddsQuery(db *gorm.DB, params repository.ListOddsParams) *gorm.DB {
	query := db.Model(&models.OddsLine{})
	if params.GameID != nil && *params.GameID > 0 {
		query = query.Where("game_id = ?", *params.GameID)
	}
	if params.Sportsbook != nil && strings.TrimSpace(*params.Sportsbook) != "" {
		query = query.Where("sportsbook = ?", strings.TrimSpace(*params.Sportsbook))
	}
	return query
}

func (s *Store) ListOddsLines(ctx context.Context, params repository.ListOddsParams) ([]models.OddsLine, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := applyOrder(oddsQuery(s.db.WithContext(ctx), params), params.OrderBy, params.Asc, "updated_at")
	limit := normalizeLimit(params.Limit, 100)
	offset := normalizeOffset(params.Offset)
	var items []models.OddsLine
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountOddsLines(ctx context.Context, params repository.ListOddsParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	if err := oddsQuery(s.db.WithContext(ctx), params).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) UpsertPlayerPropsTx(ctx context.Context, tx *gorm.DB, items []models.PlayerProp) error {
	if s == nil || tx == nil || len(items) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "odds_line_id"}, {Name: "player_id"}, {Name: "prop_type"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"line",
			"over_odds",
			"under_odds",
			"updated_at",
		}),
	}).CreateInBatches(items, 256).Error
}

func (s *Store) GetPlayerPropByID(ctx context.Context, id uint64) (*models.PlayerProp, error) {
	if s == nil || s.db == nil || id == 0 {
		return nil, nil
	}
	var item models.PlayerProp
	err := s.db.WithContext(ctx).Model(&models.PlayerProp{}).Where("id = ?", id).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func propsQuery(db *gorm.DB, params repository.ListPropsParams) *gorm.DB {
	query := db.Model(&models.PlayerProp{})
	wantGame := params.GameID != nil && *params.GameID > 0
	wantBook := params.Sportsbook != nil && strings.TrimSpace(*params.Sportsbook) != ""
	if wantGame || wantBook {
		query = query.Joins("JOIN odds_lines ON odds_lines.id = player_props.odds_line_id")
	}
	if wantGame {
		query = query.Where("odds_lines.game_id = ?", *params.GameID)
	}
	if wantBook {
		query = query.Where("odds_lines.sportsbook = ?", strings.TrimSpace(*params.Sportsbook))
	}
	if params.OddsLineID != nil && *params.OddsLineID > 0 {
		query = query.Where("player_props.odds_line_id = ?", *params.OddsLineID)
	}
	if params.PlayerID != nil && *params.PlayerID > 0 {
		query = query.Where("player_props.player_id = ?", *params.PlayerID)
	}
	if params.PropType != nil && strings.TrimSpace(*params.PropType) != "" {
		query = query.Where("player_props.prop_type = ?", strings.TrimSpace(*params.PropType))
	}
	return query
}

func (s *Store) ListPlayerProps(ctx context.Context, params repository.ListPropsParams) ([]models.PlayerProp, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := applyOrder(propsQuery(s.db.WithContext(ctx), params), params.OrderBy, params.Asc, "player_props.updated_at")
	limit := normalizeLimit(params.Limit, 200)
	offset := normalizeOffset(params.Offset)
	var items []models.PlayerProp
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountPlayerProps(ctx context.Context, params repository.ListPropsParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	if err := propsQuery(s.db.WithContext(ctx), params).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// --- News -------------------------------------------------------------------

func (s *Store) UpsertNewsArticle(ctx context.Context, item *models.NewsArticle) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	if strings.TrimSpace(item.URL) == "" {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "url"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title",
			"content",
			"summary",
			"published_at",
			"updated_at",
		}),
	}).Create(item).Error
}

func (s *Store) GetNewsArticleByID(ctx context.Context, id uint64) (*models.NewsArticle, error) {
	if s == nil || s.db == nil || id == 0 {
		return nil, nil
	}
	var item models.NewsArticle
	err := s.db.WithContext(ctx).
		Model(&models.NewsArticle{}).
		Preload("Teams").
		Preload("Players").
		Where("id = ?", id).
		First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) GetNewsArticleByURL(ctx context.Context, url string) (*models.NewsArticle, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, nil
	}
	var item models.NewsArticle
	err := s.db.WithContext(ctx).Model(&models.NewsArticle{}).Where("url = ?", url).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func newsQuery(db *gorm.DB, params repository.ListNewsParams) *gorm.DB {
	query := db.Model(&models.NewsArticle{})
	if params.Source != nil && strings.TrimSpace(*params.Source) != "" {
		query = query.Where("news_articles.source = ?", strings.TrimSpace(*params.Source))
	}
	if params.Since != nil && !params.Since.IsZero() {
		query = query.Where("news_articles.published_at >= ?", *params.Since)
	}
	if params.TeamID != nil && *params.TeamID > 0 {
		query = query.
			Joins("JOIN article_teams ON article_teams.news_article_id = news_articles.id").
			Where("article_teams.team_id = ?", *params.TeamID)
	}
	if params.PlayerID != nil && *params.PlayerID > 0 {
		query = query.
			Joins("JOIN article_players ON article_players.news_article_id = news_articles.id").
			Where("article_players.player_id = ?", *params.PlayerID)
	}
	return query
}

func (s *Store) ListNewsArticles(ctx context.Context, params repository.ListNewsParams) ([]models.NewsArticle, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := newsQuery(s.db.WithContext(ctx), params).
		Preload("Teams").
		Preload("Players")
	query = applyOrder(query, params.OrderBy, params.Asc, "news_articles.published_at")
	limit := normalizeLimit(params.Limit, 50)
	offset := normalizeOffset(params.Offset)
	var items []models.NewsArticle
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountNewsArticles(ctx context.Context, params repository.ListNewsParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	if err := newsQuery(s.db.WithContext(ctx), params).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// --- Parlays ----------------------------------------------------------------

func (s *Store) InsertParlay(ctx context.Context, item *models.Parlay) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) GetParlayByID(ctx context.Context, id uint64) (*models.Parlay, error) {
	if s == nil || s.db == nil || id == 0 {
		return nil, nil
	}
	var item models.Parlay
	err := s.db.WithContext(ctx).
		Model(&models.Parlay{}).
		Preload("Legs").
		Where("id = ?", id).
		First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func parlaysQuery(db *gorm.DB, params repository.ListParlaysParams) *gorm.DB {
	query := db.Model(&models.Parlay{})
	if params.Status != nil && strings.TrimSpace(*params.Status) != "" {
		query = query.Where("status = ?", strings.TrimSpace(*params.Status))
	}
	return query
}

func (s *Store) ListParlays(ctx context.Context, params repository.ListParlaysParams) ([]models.Parlay, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := parlaysQuery(s.db.WithContext(ctx), params).Preload("Legs")
	query = applyOrder(query, params.OrderBy, params.Asc, "created_at")
	limit := normalizeLimit(params.Limit, 50)
	offset := normalizeOffset(params.Offset)
	var items []models.Parlay
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountParlays(ctx context.Context, params repository.ListParlaysParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	if err := parlaysQuery(s.db.WithContext(ctx), params).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) ListPendingParlays(ctx context.Context, limit int) ([]models.Parlay, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	limit = normalizeLimit(limit, 200)
	var items []models.Parlay
	if err := s.db.WithContext(ctx).
		Model(&models.Parlay{}).
		Preload("Legs").
		Where("status = ?", models.ParlayStatusPending).
		Order("created_at asc").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) UpdateParlayStatus(ctx context.Context, id uint64, status string) error {
	if s == nil || s.db == nil || id == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&models.Parlay{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now().UTC()}).
		Error
}

func (s *Store) UpdateParlayName(ctx context.Context, id uint64, name string) error {
	if s == nil || s.db == nil || id == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&models.Parlay{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "updated_at": time.Now().UTC()}).
		Error
}

func (s *Store) UpdateParlayStake(ctx context.Context, id uint64, stake, payout decimal.Decimal) error {
	if s == nil || s.db == nil || id == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&models.Parlay{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stake":            stake,
			"potential_payout": payout,
			"updated_at":       time.Now().UTC(),
		}).
		Error
}

func (s *Store) UpdateBetLegStatus(ctx context.Context, id uint64, status string) error {
	if s == nil || s.db == nil || id == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&models.BetLeg{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now().UTC()}).
		Error
}

func (s *Store) DeleteParlay(ctx context.Context, id uint64) error {
	if s == nil || s.db == nil || id == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parlay_id = ?", id).Delete(&models.BetLeg{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Parlay{}).Error
	})
}

// --- Boxscore stat lines ----------------------------------------------------

func (s *Store) UpsertPlayerStatLinesTx(ctx context.Context, tx *gorm.DB, items []models.PlayerStatLine) error {
	if s == nil || tx == nil || len(items) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "game_id"}, {Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"goals",
			"assists",
			"shots_on_goal",
			"updated_at",
		}),
	}).CreateInBatches(items, 256).Error
}

func (s *Store) GetPlayerStatLine(ctx context.Context, gameID, playerID uint64) (*models.PlayerStatLine, error) {
	if s == nil || s.db == nil || gameID == 0 || playerID == 0 {
		return nil, nil
	}
	var item models.PlayerStatLine
	err := s.db.WithContext(ctx).
		Model(&models.PlayerStatLine{}).
		Where("game_id = ?", gameID).
		Where("player_id = ?", playerID).
		First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// --- AI analyses ------------------------------------------------------------

func (s *Store) InsertAnalysis(ctx context.Context, item *models.Analysis) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) GetLatestAnalysisByKind(ctx context.Context, kind string, notBefore time.Time) (*models.Analysis, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return nil, nil
	}
	query := s.db.WithContext(ctx).
		Model(&models.Analysis{}).
		Where("kind = ?", kind)
	if !notBefore.IsZero() {
		query = query.Where("created_at >= ?", notBefore)
	}
	var item models.Analysis
	err := query.Order("created_at desc").First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) DeleteAnalysesBefore(ctx context.Context, before time.Time) (int64, error) {
	if s == nil || s.db == nil || before.IsZero() {
		return 0, nil
	}
	res := s.db.WithContext(ctx).
		Where("created_at < ?", before).
		Delete(&models.Analysis{})
	return res.RowsAffected, res.Error
}

// --- helpers ----------------------------------------------------------------

func applyOrder(query *gorm.DB, orderBy string, asc *bool, fallback string) *gorm.DB {
	column := strings.TrimSpace(orderBy)
	if column == "" {
		column = fallback
	}
	direction := "desc"
	if asc != nil && *asc {
		direction = "asc"
	}
	return query.Order(column + " " + direction)
}

func normalizeLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > 500 {
		return 500
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
