package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"puckline/internal/repository"
	"puckline/internal/service"
)

type NewsHandler struct {
	Repo   repository.Repository
	Sync   *service.NewsSyncService
	Logger *zap.Logger
}

func (h *NewsHandler) Register(r *gin.Engine) {
	group := r.Group("/api/news")
	group.GET("", h.listNews)
	group.GET("/:id", h.getArticle)
	group.GET("/team/:id", h.listTeamNews)
	group.GET("/player/:id", h.listPlayerNews)
	group.POST("/refresh", h.refreshNews)
}

func (h *NewsHandler) newsParams(c *gin.Context, limit, offset int) repository.ListNewsParams {
	params := repository.ListNewsParams{
		Limit:    limit,
		Offset:   offset,
		Source:   strQueryPtr(c, "source"),
		TeamID:   uint64QueryPtr(c, "team_id"),
		PlayerID: uint64QueryPtr(c, "player_id"),
	}
	if days := intQueryPtr(c, "days"); days != nil && *days > 0 {
		since := time.Now().UTC().AddDate(0, 0, -*days)
		params.Since = &since
	}
	return params
}

// @Summary List news articles
// @Tags news
// @Param team_id query int false "team id"
// @Param player_id query int false "player id"
// @Param source query string false "source name"
// @Param days query int false "lookback window in days"
// @Param limit query int false "limit"
// @Param offset query int false "offset"
// @Success 200 {object} apiResponse
// @Router /api/news [get]
func (h *NewsHandler) listNews(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	params := h.newsParams(c, limit, offset)

	articles, err := h.Repo.ListNewsArticles(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	total, err := h.Repo.CountNewsArticles(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, articles, paginationMeta(limit, offset, total))
}

// @Summary Get a news article
// @Tags news
// @Param id path int true "article id"
// @Success 200 {object} apiResponse
// @Router /api/news/{id} [get]
func (h *NewsHandler) getArticle(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	article, err := h.Repo.GetNewsArticleByID(c.Request.Context(), uintParam(c, "id"))
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if article == nil {
		Error(c, http.StatusNotFound, "article not found", nil)
		return
	}
	Ok(c, article, nil)
}

// @Summary List news mentioning a team
// @Tags news
// @Param id path int true "team id"
// @Param limit query int false "limit"
// @Success 200 {object} apiResponse
// @Router /api/news/team/{id} [get]
func (h *NewsHandler) listTeamNews(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	teamID := uintParam(c, "id")
	articles, err := h.Repo.ListNewsArticles(c.Request.Context(), repository.ListNewsParams{
		Limit:  intQuery(c, "limit", 50),
		TeamID: &teamID,
	})
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, articles, nil)
}

// @Summary List news mentioning a player
// @Tags news
// @Param id path int true "player id"
// @Param limit query int false "limit"
// @Success 200 {object} apiResponse
// @Router /api/news/player/{id} [get]
func (h *NewsHandler) listPlayerNews(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	playerID := uintParam(c, "id")
	articles, err := h.Repo.ListNewsArticles(c.Request.Context(), repository.ListNewsParams{
		Limit:    intQuery(c, "limit", 50),
		PlayerID: &playerID,
	})
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, articles, nil)
}

// @Summary Refresh news feeds
// @Tags news
// @Param source query string false "refresh a single source"
// @Param days query int false "lookback window in days"
// @Success 200 {object} apiResponse
// @Router /api/news/refresh [post]
func (h *NewsHandler) refreshNews(c *gin.Context) {
	if h.Sync == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	count, err := h.Sync.RefreshSource(c.Request.Context(), c.Query("source"), intQuery(c, "days", 0))
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("news refresh failed", zap.Error(err))
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"articles": count}, nil)
}
