package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"puckline/internal/service"
)

type AnalysisHandler struct {
	Analysis *service.AnalysisService
	Logger   *zap.Logger
}

func (h *AnalysisHandler) Register(r *gin.Engine) {
	group := r.Group("/api/analysis")
	group.GET("/game/:id", h.analyzeGame)
	group.GET("/team/:id", h.analyzeTeam)
	group.POST("/parlay/optimize", h.optimizeParlay)
	group.POST("/parlay/evaluate", h.evaluateParlay)
}

type optimizeParlayRequest struct {
	Stake         decimal.Decimal `json:"stake" binding:"required"`
	GameIDs       []uint64        `json:"game_ids"`
	MinTotalOdds  *float64        `json:"min_odds"`
	MaxLegs       *int            `json:"max_legs"`
	MinConfidence *float64        `json:"min_confidence"`
}

type evaluateParlayRequest struct {
	ParlayID uint64 `json:"parlay_id" binding:"required"`
	Refresh  bool   `json:"refresh"`
}

// @Summary AI analysis for a game
// @Tags analysis
// @Param id path int true "game id"
// @Param refresh query bool false "bypass the cached analysis"
// @Success 200 {object} apiResponse
// @Router /api/analysis/game/{id} [get]
func (h *AnalysisHandler) analyzeGame(c *gin.Context) {
	if h.Analysis == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	refresh := boolQueryDefault(c, "refresh", false)
	analysis, err := h.Analysis.AnalyzeGame(c.Request.Context(), uintParam(c, "id"), refresh)
	if err != nil {
		h.fail(c, "game analysis failed", err)
		return
	}
	Ok(c, analysis, nil)
}

// @Summary AI analysis for a team
// @Tags analysis
// @Param id path int true "team id"
// @Param refresh query bool false "bypass the cached analysis"
// @Success 200 {object} apiResponse
// @Router /api/analysis/team/{id} [get]
func (h *AnalysisHandler) analyzeTeam(c *gin.Context) {
	if h.Analysis == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	refresh := boolQueryDefault(c, "refresh", false)
	analysis, err := h.Analysis.AnalyzeTeam(c.Request.Context(), uintParam(c, "id"), refresh)
	if err != nil {
		h.fail(c, "team analysis failed", err)
		return
	}
	Ok(c, analysis, nil)
}

// @Summary Build an AI-optimized parlay
// @Tags analysis
// @Param body body optimizeParlayRequest true "constraints"
// @Success 200 {object} apiResponse
// @Router /api/analysis/parlay/optimize [post]
func (h *AnalysisHandler) optimizeParlay(c *gin.Context) {
	if h.Analysis == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req optimizeParlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	parlay, err := h.Analysis.OptimizeParlay(c.Request.Context(), service.OptimizeParlayParams{
		Stake:         req.Stake,
		GameIDs:       req.GameIDs,
		MinTotalOdds:  req.MinTotalOdds,
		MaxLegs:       req.MaxLegs,
		MinConfidence: req.MinConfidence,
	})
	if err != nil {
		h.fail(c, "parlay optimization failed", err)
		return
	}
	Ok(c, parlay, nil)
}

// @Summary AI evaluation of an existing parlay
// @Tags analysis
// @Param body body evaluateParlayRequest true "parlay"
// @Success 200 {object} apiResponse
// @Router /api/analysis/parlay/evaluate [post]
func (h *AnalysisHandler) evaluateParlay(c *gin.Context) {
	if h.Analysis == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req evaluateParlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	analysis, err := h.Analysis.EvaluateParlay(c.Request.Context(), req.ParlayID, req.Refresh)
	if err != nil {
		h.fail(c, "parlay evaluation failed", err)
		return
	}
	Ok(c, analysis, nil)
}

func (h *AnalysisHandler) fail(c *gin.Context, msg string, err error) {
	if h.Logger != nil {
		h.Logger.Warn(msg, zap.Error(err))
	}
	status := http.StatusBadGateway
	if strings.Contains(err.Error(), "not found") {
		status = http.StatusNotFound
	}
	Error(c, status, err.Error(), nil)
}
