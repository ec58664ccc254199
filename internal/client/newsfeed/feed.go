package newsfeed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

type rssEnvelope struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	Description string `xml:"description"`
	Encoded     string `xml:"encoded"`
	PubDate     string `xml:"pubDate"`
}

var pubDateFormats = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
}

func parsePubDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, format := range pubDateFormats {
		if ts, err := time.Parse(format, raw); err == nil {
			return ts.UTC()
		}
	}
	return time.Time{}
}

// stripHTML flattens markup in feed descriptions down to plain text.
func stripHTML(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "<") {
		return raw
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return raw
	}
	doc.Find("script, style").Remove()
	return strings.TrimSpace(doc.Text())
}

func summarize(content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}
	if idx := strings.Index(content, "\n\n"); idx > 0 {
		return strings.TrimSpace(content[:idx])
	}
	const maxSummary = 280
	if len(content) > maxSummary {
		return strings.TrimSpace(content[:maxSummary])
	}
	return content
}

func parseFeed(body []byte, source string) ([]Article, error) {
	var envelope rssEnvelope
	if err := xml.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("invalid rss payload: %w", err)
	}
	articles := make([]Article, 0, len(envelope.Channel.Items))
	for _, item := range envelope.Channel.Items {
		link := strings.TrimSpace(item.Link)
		title := strings.TrimSpace(item.Title)
		if link == "" || title == "" {
			continue
		}
		content := stripHTML(item.Encoded)
		if content == "" {
			content = stripHTML(item.Description)
		}
		articles = append(articles, Article{
			ExternalID:  strings.TrimSpace(item.GUID),
			Source:      source,
			Title:       title,
			URL:         link,
			Content:     content,
			Summary:     summarize(content),
			PublishedAt: parsePubDate(item.PubDate),
		})
	}
	return articles, nil
}
