package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"puckline/internal/repository"
)

type TeamsHandler struct {
	Repo repository.Repository
}

func (h *TeamsHandler) Register(r *gin.Engine) {
	group := r.Group("/api/teams")
	group.GET("", h.listTeams)
	group.GET("/:id", h.getTeam)
	group.GET("/:id/players", h.listTeamPlayers)
}

// @Summary List NHL teams
// @Tags teams
// @Success 200 {object} apiResponse
// @Router /api/teams [get]
func (h *TeamsHandler) listTeams(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	teams, err := h.Repo.ListTeams(c.Request.Context())
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, teams, nil)
}

// @Summary Get a team
// @Tags teams
// @Param id path int true "team id"
// @Success 200 {object} apiResponse
// @Router /api/teams/{id} [get]
func (h *TeamsHandler) getTeam(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	team, err := h.Repo.GetTeamByID(c.Request.Context(), uintParam(c, "id"))
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if team == nil {
		Error(c, http.StatusNotFound, "team not found", nil)
		return
	}
	Ok(c, team, nil)
}

// @Summary List a team's roster
// @Tags teams
// @Param id path int true "team id"
// @Success 200 {object} apiResponse
// @Router /api/teams/{id}/players [get]
func (h *TeamsHandler) listTeamPlayers(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	teamID := uintParam(c, "id")
	team, err := h.Repo.GetTeamByID(c.Request.Context(), teamID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if team == nil {
		Error(c, http.StatusNotFound, "team not found", nil)
		return
	}
	players, err := h.Repo.ListPlayersByTeamID(c.Request.Context(), teamID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, players, nil)
}
