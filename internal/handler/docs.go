package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterDocs serves a plain-text route map at /docs. The interactive
// spec lives at /swagger/index.html.
func RegisterDocs(r *gin.Engine) {
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/markdown; charset=utf-8")
		c.String(http.StatusOK, `# Puckline

NHL odds comparison, news ingestion, and AI parlay tools.

## Routes

- GET /healthz
- GET /readyz
- GET /swagger/index.html
- GET /api/teams
- GET /api/teams/:id
- GET /api/teams/:id/players
- GET /api/games, POST /api/games/refresh
- GET /api/odds, /api/odds/compare, /api/odds/best, POST /api/odds/refresh
- GET /api/player-props, POST /api/player-props/refresh
- GET /api/news, /api/news/team/:id, /api/news/player/:id, POST /api/news/refresh
- GET /api/parlays, POST /api/parlays, POST /api/parlays/settle
- GET /api/analysis/game/:id, /api/analysis/team/:id
- POST /api/analysis/parlay/optimize, /api/analysis/parlay/evaluate
`)
	})
}
