package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"puckline/internal/repository"
	"puckline/internal/service"
)

type PropsHandler struct {
	Repo   repository.Repository
	Sync   *service.SportsbookSyncService
	Logger *zap.Logger
}

func (h *PropsHandler) Register(r *gin.Engine) {
	group := r.Group("/api/player-props")
	group.GET("", h.listProps)
	group.GET("/:id", h.getProp)
	group.POST("/refresh", h.refreshProps)
}

// @Summary List player props
// @Tags props
// @Param game_id query int false "game id"
// @Param player_id query int false "player id"
// @Param prop_type query string false "points|goals|assists|shots_on_goal"
// @Param sportsbook query string false "sportsbook name"
// @Param limit query int false "limit"
// @Param offset query int false "offset"
// @Success 200 {object} apiResponse
// @Router /api/player-props [get]
func (h *PropsHandler) listProps(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	params := repository.ListPropsParams{
		Limit:      limit,
		Offset:     offset,
		GameID:     uint64QueryPtr(c, "game_id"),
		PlayerID:   uint64QueryPtr(c, "player_id"),
		PropType:   strQueryPtr(c, "prop_type"),
		Sportsbook: strQueryPtr(c, "sportsbook"),
	}
	props, err := h.Repo.ListPlayerProps(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	total, err := h.Repo.CountPlayerProps(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, props, paginationMeta(limit, offset, total))
}

// @Summary Get a player prop
// @Tags props
// @Param id path int true "prop id"
// @Success 200 {object} apiResponse
// @Router /api/player-props/{id} [get]
func (h *PropsHandler) getProp(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	prop, err := h.Repo.GetPlayerPropByID(c.Request.Context(), uintParam(c, "id"))
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if prop == nil {
		Error(c, http.StatusNotFound, "player prop not found", nil)
		return
	}
	Ok(c, prop, nil)
}

// @Summary Refresh player props from the sportsbooks
// @Tags props
// @Param game_id query int false "limit refresh to one game"
// @Success 200 {object} apiResponse
// @Router /api/player-props/refresh [post]
func (h *PropsHandler) refreshProps(c *gin.Context) {
	if h.Sync == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var count int
	var err error
	if gameID := uint64QueryPtr(c, "game_id"); gameID != nil {
		count, err = h.Sync.RefreshPropsForGame(c.Request.Context(), *gameID)
	} else {
		count, err = h.Sync.RefreshProps(c.Request.Context())
	}
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("props refresh failed", zap.Error(err))
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"props": count}, nil)
}
