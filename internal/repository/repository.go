package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"puckline/internal/models"
)

type Repository interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error

	// Teams & players
	UpsertTeamsTx(ctx context.Context, tx *gorm.DB, items []models.Team) error
	ListTeams(ctx context.Context) ([]models.Team, error)
	GetTeamByID(ctx context.Context, id uint64) (*models.Team, error)
	GetTeamByAbbreviation(ctx context.Context, abbr string) (*models.Team, error)
	UpsertPlayersTx(ctx context.Context, tx *gorm.DB, items []models.Player) error
	ListPlayers(ctx context.Context) ([]models.Player, error)
	ListPlayersByTeamID(ctx context.Context, teamID uint64) ([]models.Player, error)
	GetPlayerByID(ctx context.Context, id uint64) (*models.Player, error)
	GetPlayerByName(ctx context.Context, name string) (*models.Player, error)

	// Games
	UpsertGamesTx(ctx context.Context, tx *gorm.DB, items []models.Game) error
	GetGameByID(ctx context.Context, id uint64) (*models.Game, error)
	GetGameByExternalID(ctx context.Context, externalID string) (*models.Game, error)
	ListGames(ctx context.Context, params ListGamesParams) ([]models.Game, error)
	CountGames(ctx context.Context, params ListGamesParams) (int64, error)
	ListGamesByIDs(ctx context.Context, ids []uint64) ([]models.Game, error)
	UpdateGameResult(ctx context.Context, id uint64, status string, homeScore, awayScore *int) error

	// Odds & props
	UpsertOddsLinesTx(ctx context.Context, tx *gorm.DB, items []models.OddsLine) error
	GetOddsLineByID(ctx context.Context, id uint64) (*models.OddsLine, error)
	ListOddsByGameID(ctx context.Context, gameID uint64) ([]models.OddsLine, error)
	ListOddsLines(ctx context.Context, params ListOddsParams) ([]models.OddsLine, error)
	CountOddsLines(ctx context.Context, params ListOddsParams) (int64, error)
	UpsertPlayerPropsTx(ctx context.Context, tx *gorm.DB, items []models.PlayerProp) error
	GetPlayerPropByID(ctx context.Context, id uint64) (*models.PlayerProp, error)
	ListPlayerProps(ctx context.Context, params ListPropsParams) ([]models.PlayerProp, error)
	CountPlayerProps(ctx context.Context, params ListPropsParams) (int64, error)

	// News
	UpsertNewsArticle(ctx context.Context, item *models.NewsArticle) error
	GetNewsArticleByID(ctx context.Context, id uint64) (*models.NewsArticle, error)
	GetNewsArticleByURL(ctx context.Context, url string) (*models.NewsArticle, error)
	ListNewsArticles(ctx context.Context, params ListNewsParams) ([]models.NewsArticle, error)
	CountNewsArticles(ctx context.Context, params ListNewsParams) (int64, error)

	// Parlays
	InsertParlay(ctx context.Context, item *models.Parlay) error
	GetParlayByID(ctx context.Context, id uint64) (*models.Parlay, error)
	ListParlays(ctx context.Context, params ListParlaysParams) ([]models.Parlay, error)
	CountParlays(ctx context.Context, params ListParlaysParams) (int64, error)
	ListPendingParlays(ctx context.Context, limit int) ([]models.Parlay, error)
	UpdateParlayStatus(ctx context.Context, id uint64, status string) error
	UpdateParlayName(ctx context.Context, id uint64, name string) error
	UpdateParlayStake(ctx context.Context, id uint64, stake, payout decimal.Decimal) error
	UpdateBetLegStatus(ctx context.Context, id uint64, status string) error
	DeleteParlay(ctx context.Context, id uint64) error

	// Boxscore stat lines
	UpsertPlayerStatLinesTx(ctx context.Context, tx *gorm.DB, items []models.PlayerStatLine) error
	GetPlayerStatLine(ctx context.Context, gameID, playerID uint64) (*models.PlayerStatLine, error)

	// AI analyses
	InsertAnalysis(ctx context.Context, item *models.Analysis) error
	GetLatestAnalysisByKind(ctx context.Context, kind string, notBefore time.Time) (*models.Analysis, error)
	DeleteAnalysesBefore(ctx context.Context, before time.Time) (int64, error)
}

type ListGamesParams struct {
	Limit   int
	Offset  int
	Status  *string
	TeamID  *uint64
	From    *time.Time
	To      *time.Time
	OrderBy string
	Asc     *bool
}

type ListOddsParams struct {
	Limit      int
	Offset     int
	GameID     *uint64
	Sportsbook *string
	OrderBy    string
	Asc        *bool
}

type ListPropsParams struct {
	Limit      int
	Offset     int
	GameID     *uint64
	PlayerID   *uint64
	PropType   *string
	Sportsbook *string
	OddsLineID *uint64
	OrderBy    string
	Asc        *bool
}

type ListNewsParams struct {
	Limit    int
	Offset   int
	Source   *string
	TeamID   *uint64
	PlayerID *uint64
	Since    *time.Time
	OrderBy  string
	Asc      *bool
}

type ListParlaysParams struct {
	Limit   int
	Offset  int
	Status  *string
	OrderBy string
	Asc     *bool
}
