package sportsbook

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client is a typed REST client for a single sportsbook odds feed. Both
// DraftKings and FanDuel expose the same envelope through the odds
// aggregator, so one client serves either book.
type Client struct {
	book       string
	host       string
	apiKey     string
	httpClient *http.Client
}

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.Status, e.Body)
}

func NewClient(httpClient *http.Client, book, host, apiKey string) *Client {
	host = strings.TrimRight(host, "/")
	return &Client{
		book:       book,
		host:       host,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (c *Client) Name() string {
	return c.book
}

func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	fullURL := c.host + path
	if len(query) > 0 {
		fullURL = fullURL + "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

func (c *Client) GameOdds(ctx context.Context, gameExternalID string) (*GameOdds, error) {
	if gameExternalID == "" {
		return nil, fmt.Errorf("game external id is required")
	}
	body, err := c.doRequest(ctx, "/v1/odds/nhl/"+url.PathEscape(gameExternalID), nil)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}
	odds, err := parseGameOdds(body)
	if err != nil {
		return nil, err
	}
	odds.Sportsbook = c.book
	odds.Raw = body
	return odds, nil
}

func (c *Client) PlayerProps(ctx context.Context, gameExternalID string, players []PlayerRef) ([]PropQuote, error) {
	if gameExternalID == "" {
		return nil, fmt.Errorf("game external id is required")
	}
	body, err := c.doRequest(ctx, "/v1/props/nhl/"+url.PathEscape(gameExternalID), nil)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}
	return parsePlayerProps(body, players)
}
