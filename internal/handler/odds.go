package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"puckline/internal/repository"
	"puckline/internal/service"
)

type OddsHandler struct {
	Repo   repository.Repository
	Query  *service.OddsQueryService
	Sync   *service.SportsbookSyncService
	Logger *zap.Logger
}

func (h *OddsHandler) Register(r *gin.Engine) {
	group := r.Group("/api/odds")
	group.GET("", h.listOdds)
	group.GET("/compare", h.compareOdds)
	group.GET("/best", h.bestOdds)
	group.POST("/refresh", h.refreshOdds)
}

// @Summary List odds lines
// @Tags odds
// @Param game_id query int false "game id"
// @Param sportsbook query string false "sportsbook name"
// @Param limit query int false "limit"
// @Param offset query int false "offset"
// @Success 200 {object} apiResponse
// @Router /api/odds [get]
func (h *OddsHandler) listOdds(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	params := repository.ListOddsParams{
		Limit:      limit,
		Offset:     offset,
		GameID:     uint64QueryPtr(c, "game_id"),
		Sportsbook: strQueryPtr(c, "sportsbook"),
	}
	lines, err := h.Repo.ListOddsLines(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	total, err := h.Repo.CountOddsLines(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, lines, paginationMeta(limit, offset, total))
}

// @Summary Compare books side by side for one game
// @Tags odds
// @Param game_id query int true "game id"
// @Success 200 {object} apiResponse
// @Router /api/odds/compare [get]
func (h *OddsHandler) compareOdds(c *gin.Context) {
	if h.Query == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	gameID := uint64QueryPtr(c, "game_id")
	if gameID == nil {
		Error(c, http.StatusBadRequest, "game_id is required", nil)
		return
	}
	comparison, err := h.Query.Compare(c.Request.Context(), *gameID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if comparison == nil {
		Error(c, http.StatusNotFound, "game not found", nil)
		return
	}
	Ok(c, comparison, nil)
}

// @Summary Best price per market across books
// @Tags odds
// @Param game_id query int true "game id"
// @Success 200 {object} apiResponse
// @Router /api/odds/best [get]
func (h *OddsHandler) bestOdds(c *gin.Context) {
	if h.Query == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	gameID := uint64QueryPtr(c, "game_id")
	if gameID == nil {
		Error(c, http.StatusBadRequest, "game_id is required", nil)
		return
	}
	best, err := h.Query.Best(c.Request.Context(), *gameID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if best == nil {
		Error(c, http.StatusNotFound, "game not found", nil)
		return
	}
	Ok(c, best, nil)
}

// @Summary Refresh odds from the sportsbooks
// @Tags odds
// @Param game_id query int false "limit refresh to one game"
// @Success 200 {object} apiResponse
// @Router /api/odds/refresh [post]
func (h *OddsHandler) refreshOdds(c *gin.Context) {
	if h.Sync == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var count int
	var err error
	if gameID := uint64QueryPtr(c, "game_id"); gameID != nil {
		count, err = h.Sync.RefreshOddsForGame(c.Request.Context(), *gameID)
	} else {
		count, err = h.Sync.RefreshOdds(c.Request.Context())
	}
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("odds refresh failed", zap.Error(err))
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"lines": count}, nil)
}
