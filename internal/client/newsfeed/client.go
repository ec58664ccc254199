package newsfeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Article is one normalized feed entry with HTML stripped.
type Article struct {
	ExternalID  string
	Source      string
	Title       string
	URL         string
	Content     string
	Summary     string
	PublishedAt time.Time
}

type Client struct {
	httpClient *http.Client
}

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("feed error (%d): %s", e.Status, e.Body)
}

func NewClient(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "puckline/1.0")
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

// FetchFeed pulls an RSS feed and returns entries published at or after since.
func (c *Client) FetchFeed(ctx context.Context, source, feedURL string, since time.Time) ([]Article, error) {
	if feedURL == "" {
		return nil, fmt.Errorf("feed url is required")
	}
	body, err := c.fetch(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	articles, err := parseFeed(body, source)
	if err != nil {
		return nil, err
	}
	if since.IsZero() {
		return articles, nil
	}
	filtered := articles[:0]
	for _, article := range articles {
		if !article.PublishedAt.Before(since) {
			filtered = append(filtered, article)
		}
	}
	return filtered, nil
}

// FetchArticleBody loads an article page and extracts its readable text.
// selector narrows extraction to the story container; empty means whole body.
func (c *Client) FetchArticleBody(ctx context.Context, articleURL, selector string) (string, error) {
	body, err := c.fetch(ctx, articleURL)
	if err != nil {
		return "", err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return "", fmt.Errorf("failed to parse article: %w", err)
	}
	doc.Find("script, style, noscript").Remove()
	root := doc.Selection
	if selector != "" {
		if sel := doc.Find(selector); sel.Length() > 0 {
			root = sel
		}
	}
	var parts []string
	root.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if text != "" {
			parts = append(parts, text)
		}
	})
	if len(parts) == 0 {
		return strings.TrimSpace(root.Text()), nil
	}
	return strings.Join(parts, "\n\n"), nil
}
