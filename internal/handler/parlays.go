package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"puckline/internal/repository"
	"puckline/internal/service"
)

type ParlaysHandler struct {
	Repo    repository.Repository
	Parlays *service.ParlayService
	Logger  *zap.Logger
}

func (h *ParlaysHandler) Register(r *gin.Engine) {
	group := r.Group("/api/parlays")
	group.GET("", h.listParlays)
	group.GET("/:id", h.getParlay)
	group.POST("", h.createParlay)
	group.PUT("/:id", h.updateParlay)
	group.DELETE("/:id", h.deleteParlay)
	group.POST("/settle", h.settleParlays)
}

type createLegRequest struct {
	GameID        uint64   `json:"game_id" binding:"required"`
	BetType       string   `json:"bet_type" binding:"required"`
	Selection     string   `json:"selection" binding:"required"`
	PlayerID      *uint64  `json:"player_id"`
	PropType      *string  `json:"prop_type"`
	Price         *float64 `json:"price"`
	Justification string   `json:"justification"`
}

type createParlayRequest struct {
	Name  string             `json:"name"`
	Stake decimal.Decimal    `json:"stake" binding:"required"`
	Legs  []createLegRequest `json:"legs" binding:"required"`
}

type updateParlayRequest struct {
	Name   *string          `json:"name"`
	Stake  *decimal.Decimal `json:"stake"`
	Status *string          `json:"status"`
}

// @Summary List parlays
// @Tags parlays
// @Param status query string false "pending|won|lost|partially_won"
// @Param limit query int false "limit"
// @Param offset query int false "offset"
// @Success 200 {object} apiResponse
// @Router /api/parlays [get]
func (h *ParlaysHandler) listParlays(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	params := repository.ListParlaysParams{
		Limit:  limit,
		Offset: offset,
		Status: strQueryPtr(c, "status"),
	}
	parlays, err := h.Repo.ListParlays(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	total, err := h.Repo.CountParlays(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, parlays, paginationMeta(limit, offset, total))
}

// @Summary Get a parlay with legs
// @Tags parlays
// @Param id path int true "parlay id"
// @Success 200 {object} apiResponse
// @Router /api/parlays/{id} [get]
func (h *ParlaysHandler) getParlay(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	parlay, err := h.Repo.GetParlayByID(c.Request.Context(), uintParam(c, "id"))
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if parlay == nil {
		Error(c, http.StatusNotFound, "parlay not found", nil)
		return
	}
	Ok(c, parlay, nil)
}

// @Summary Create a parlay
// @Tags parlays
// @Param body body createParlayRequest true "parlay"
// @Success 200 {object} apiResponse
// @Router /api/parlays [post]
func (h *ParlaysHandler) createParlay(c *gin.Context) {
	if h.Parlays == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req createParlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	legs := make([]service.LegInput, 0, len(req.Legs))
	for _, leg := range req.Legs {
		legs = append(legs, service.LegInput{
			GameID:        leg.GameID,
			BetType:       strings.TrimSpace(leg.BetType),
			Selection:     strings.TrimSpace(leg.Selection),
			PlayerID:      leg.PlayerID,
			PropType:      leg.PropType,
			Price:         leg.Price,
			Justification: leg.Justification,
		})
	}
	parlay, err := h.Parlays.Create(c.Request.Context(), service.CreateParlayParams{
		Name:  strings.TrimSpace(req.Name),
		Stake: req.Stake,
		Legs:  legs,
	})
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	Ok(c, parlay, nil)
}

// @Summary Update a parlay's name, stake, or status
// @Tags parlays
// @Param id path int true "parlay id"
// @Param body body updateParlayRequest true "fields to update"
// @Success 200 {object} apiResponse
// @Router /api/parlays/{id} [put]
func (h *ParlaysHandler) updateParlay(c *gin.Context) {
	if h.Repo == nil || h.Parlays == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req updateParlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	parlay, err := h.Parlays.Update(c.Request.Context(), uintParam(c, "id"), service.UpdateParlayParams{
		Name:   req.Name,
		Stake:  req.Stake,
		Status: req.Status,
	})
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if parlay == nil {
		Error(c, http.StatusNotFound, "parlay not found", nil)
		return
	}
	Ok(c, parlay, nil)
}

// @Summary Delete a parlay
// @Tags parlays
// @Param id path int true "parlay id"
// @Success 200 {object} apiResponse
// @Router /api/parlays/{id} [delete]
func (h *ParlaysHandler) deleteParlay(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := uintParam(c, "id")
	parlay, err := h.Repo.GetParlayByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if parlay == nil {
		Error(c, http.StatusNotFound, "parlay not found", nil)
		return
	}
	if err := h.Repo.DeleteParlay(c.Request.Context(), id); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"deleted": id}, nil)
}

// @Summary Settle pending parlays against finished games
// @Tags parlays
// @Success 200 {object} apiResponse
// @Router /api/parlays/settle [post]
func (h *ParlaysHandler) settleParlays(c *gin.Context) {
	if h.Parlays == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	settled, err := h.Parlays.UpdateStatuses(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("parlay settle failed", zap.Error(err))
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"settled": settled}, nil)
}
