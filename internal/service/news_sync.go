package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"puckline/internal/client/newsfeed"
	"puckline/internal/config"
	"puckline/internal/models"
	"puckline/internal/repository"
)

// NewsSyncService pulls configured news feeds and tags each article with
// the teams and players it mentions.
type NewsSyncService struct {
	Repo   repository.Repository
	Feeds  *newsfeed.Client
	Config config.NewsConfig
	Logger *zap.Logger
}

func (s *NewsSyncService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// RefreshNews fetches every configured source and upserts the articles.
// Per-source failures are logged and skipped so one dead feed does not
// starve the rest.
func (s *NewsSyncService) RefreshNews(ctx context.Context) (int, error) {
	return s.RefreshSource(ctx, "", 0)
}

// RefreshSource refreshes a single named source, or every source when name
// is empty. A positive days value overrides the configured lookback.
func (s *NewsSyncService) RefreshSource(ctx context.Context, name string, days int) (int, error) {
	if s == nil || s.Repo == nil || s.Feeds == nil {
		return 0, nil
	}
	teams, err := s.Repo.ListTeams(ctx)
	if err != nil {
		return 0, err
	}
	players, err := s.Repo.ListPlayers(ctx)
	if err != nil {
		return 0, err
	}

	lookback := s.Config.LookbackDays
	if days > 0 {
		lookback = days
	}
	if lookback <= 0 {
		lookback = 7
	}
	since := time.Now().UTC().AddDate(0, 0, -lookback)

	stored := 0
	for _, source := range s.Config.Sources {
		if name != "" && source.Name != name {
			continue
		}
		articles, err := s.Feeds.FetchFeed(ctx, source.Name, source.FeedURL, since)
		if err != nil {
			s.logger().Warn("feed fetch failed",
				zap.String("source", source.Name),
				zap.Error(err))
			continue
		}
		for _, article := range articles {
			n, err := s.storeArticle(ctx, source, article, teams, players)
			if err != nil {
				s.logger().Warn("article store failed",
					zap.String("url", article.URL),
					zap.Error(err))
				continue
			}
			stored += n
		}
	}
	s.logger().Info("news refreshed", zap.Int("articles", stored))
	return stored, nil
}

func (s *NewsSyncService) storeArticle(ctx context.Context, source config.NewsSourceConfig, article newsfeed.Article, teams []models.Team, players []models.Player) (int, error) {
	existing, err := s.Repo.GetNewsArticleByURL(ctx, article.URL)
	if err != nil {
		return 0, err
	}
	if existing != nil && existing.Content != "" {
		return 0, nil
	}

	content := article.Content
	if content == "" {
		body, err := s.Feeds.FetchArticleBody(ctx, article.URL, source.BodySelector)
		if err != nil {
			s.logger().Debug("article body fetch failed",
				zap.String("url", article.URL),
				zap.Error(err))
		} else {
			content = body
		}
	}

	row := models.NewsArticle{
		Source:      source.Name,
		Title:       article.Title,
		URL:         article.URL,
		Content:     content,
		PublishedAt: article.PublishedAt,
	}
	if article.ExternalID != "" {
		id := article.ExternalID
		row.ExternalID = &id
	}
	if article.Summary != "" {
		summary := article.Summary
		row.Summary = &summary
	}

	matchedTeams, matchedPlayers := extractEntities(teams, players, article.Title+"\n"+content)
	row.Teams = matchedTeams
	row.Players = matchedPlayers

	if err := s.Repo.UpsertNewsArticle(ctx, &row); err != nil {
		return 0, err
	}
	return 1, nil
}

// extractEntities finds the teams and players mentioned in text. A team
// matches on its full name or abbreviation; a player match also tags the
// player's team.
func extractEntities(teams []models.Team, players []models.Player, text string) ([]models.Team, []models.Player) {
	lower := strings.ToLower(text)

	teamByID := make(map[uint64]models.Team, len(teams))
	matchedTeamIDs := map[uint64]struct{}{}
	var matchedTeams []models.Team
	addTeam := func(team models.Team) {
		if _, ok := matchedTeamIDs[team.ID]; ok {
			return
		}
		matchedTeamIDs[team.ID] = struct{}{}
		matchedTeams = append(matchedTeams, team)
	}

	for _, team := range teams {
		teamByID[team.ID] = team
		if strings.Contains(lower, strings.ToLower(team.Name)) ||
			containsWord(text, team.Abbreviation) {
			addTeam(team)
		}
	}

	var matchedPlayers []models.Player
	for _, player := range players {
		if player.Name == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(player.Name)) {
			matchedPlayers = append(matchedPlayers, player)
			if team, ok := teamByID[player.TeamID]; ok {
				addTeam(team)
			}
		}
	}
	return matchedTeams, matchedPlayers
}

// containsWord reports whether text contains word as a whole token.
// Abbreviations like "BOS" would otherwise match inside ordinary words.
func containsWord(text, word string) bool {
	if word == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(text[start:], word)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(word)
		beforeOK := idx == 0 || !isWordByte(text[idx-1])
		afterOK := end == len(text) || !isWordByte(text[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
