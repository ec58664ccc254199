package nhl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client reads the public NHL web API for schedules, scores and boxscores.
type Client struct {
	host       string
	httpClient *http.Client
}

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.Status, e.Body)
}

func NewClient(httpClient *http.Client, host string) *Client {
	if host == "" {
		host = "https://api-web.nhle.com/v1"
	}
	host = strings.TrimRight(host, "/")
	return &Client{
		host:       host,
		httpClient: httpClient,
	}
}

func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// ScheduleWeek returns the games scheduled in the week starting at date.
func (c *Client) ScheduleWeek(ctx context.Context, date time.Time) ([]ScheduledGame, error) {
	body, err := c.doRequest(ctx, "/schedule/"+date.UTC().Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	return parseSchedule(body)
}

// Roster returns the current roster for a team by its abbreviation.
func (c *Client) Roster(ctx context.Context, teamAbbrev string) ([]RosterPlayer, error) {
	if teamAbbrev == "" {
		return nil, fmt.Errorf("team abbreviation is required")
	}
	body, err := c.doRequest(ctx, "/roster/"+strings.ToUpper(teamAbbrev)+"/current")
	if err != nil {
		return nil, err
	}
	return parseRoster(body)
}

// Boxscore returns per-skater stat lines for a game.
func (c *Client) Boxscore(ctx context.Context, gameExternalID string) ([]SkaterLine, error) {
	if gameExternalID == "" {
		return nil, fmt.Errorf("game external id is required")
	}
	body, err := c.doRequest(ctx, "/gamecenter/"+gameExternalID+"/boxscore")
	if err != nil {
		return nil, err
	}
	return parseBoxscore(body)
}
