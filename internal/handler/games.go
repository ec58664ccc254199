package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"puckline/internal/repository"
	"puckline/internal/service"
)

type GamesHandler struct {
	Repo   repository.Repository
	Sync   *service.SportsbookSyncService
	Logger *zap.Logger
}

func (h *GamesHandler) Register(r *gin.Engine) {
	group := r.Group("/api/games")
	group.GET("", h.listGames)
	group.GET("/:id", h.getGame)
	group.POST("/refresh", h.refreshGames)
}

// @Summary List games
// @Tags games
// @Param date query string false "single day YYYY-MM-DD"
// @Param days query int false "window from today"
// @Param team_id query int false "team id"
// @Param status query string false "scheduled|in_progress|finished|postponed"
// @Param limit query int false "limit"
// @Param offset query int false "offset"
// @Success 200 {object} apiResponse
// @Router /api/games [get]
func (h *GamesHandler) listGames(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	params := repository.ListGamesParams{
		Limit:  limit,
		Offset: offset,
		Status: strQueryPtr(c, "status"),
		TeamID: uint64QueryPtr(c, "team_id"),
	}
	if day := dateQuery(c, "date"); day != nil {
		end := day.AddDate(0, 0, 1)
		params.From = day
		params.To = &end
	} else if days := intQueryPtr(c, "days"); days != nil && *days > 0 {
		from := time.Now().UTC()
		to := from.AddDate(0, 0, *days)
		params.From = &from
		params.To = &to
	}

	games, err := h.Repo.ListGames(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	total, err := h.Repo.CountGames(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, games, paginationMeta(limit, offset, total))
}

// @Summary Get a game
// @Tags games
// @Param id path int true "game id"
// @Success 200 {object} apiResponse
// @Router /api/games/{id} [get]
func (h *GamesHandler) getGame(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	game, err := h.Repo.GetGameByID(c.Request.Context(), uintParam(c, "id"))
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if game == nil {
		Error(c, http.StatusNotFound, "game not found", nil)
		return
	}
	Ok(c, game, nil)
}

// @Summary Refresh the schedule from the league API
// @Tags games
// @Success 200 {object} apiResponse
// @Router /api/games/refresh [post]
func (h *GamesHandler) refreshGames(c *gin.Context) {
	if h.Sync == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	count, err := h.Sync.RefreshGames(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("game refresh failed", zap.Error(err))
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"games": count}, nil)
}
