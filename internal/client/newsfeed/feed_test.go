package newsfeed

import (
	"testing"
	"time"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
  <channel>
    <title>NHL News</title>
    <item>
      <title>Bruins clinch playoff berth</title>
      <link>https://example.com/nhl/bruins-clinch</link>
      <guid>espn-20260301-1</guid>
      <pubDate>Sun, 01 Mar 2026 14:30:00 +0000</pubDate>
      <description><![CDATA[<p>The <b>Boston Bruins</b> clinched a playoff spot on Saturday.</p>]]></description>
    </item>
    <item>
      <title>Oilers injury report</title>
      <link>https://example.com/nhl/oilers-injury</link>
      <guid>espn-20260228-2</guid>
      <pubDate>Sat, 28 Feb 2026 09:00:00 +0000</pubDate>
      <content:encoded><![CDATA[<p>Connor McDavid is day to day.</p><p>Leon Draisaitl skated Friday.</p>]]></content:encoded>
    </item>
    <item>
      <title></title>
      <link>https://example.com/nhl/untitled</link>
    </item>
  </channel>
</rss>`

func TestParseFeed(t *testing.T) {
	articles, err := parseFeed([]byte(sampleFeed), "ESPN")
	if err != nil {
		t.Fatalf("parseFeed: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}

	first := articles[0]
	if first.Source != "ESPN" || first.ExternalID != "espn-20260301-1" {
		t.Fatalf("unexpected article identity %+v", first)
	}
	if first.Content != "The Boston Bruins clinched a playoff spot on Saturday." {
		t.Fatalf("html not stripped: %q", first.Content)
	}
	want := time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)
	if !first.PublishedAt.Equal(want) {
		t.Fatalf("published at = %v, want %v", first.PublishedAt, want)
	}

	second := articles[1]
	if second.Content == "" || second.Summary == "" {
		t.Fatalf("content:encoded not used: %+v", second)
	}
}

func TestParsePubDateFormats(t *testing.T) {
	tests := []string{
		"Sun, 01 Mar 2026 14:30:00 +0000",
		"Sun, 01 Mar 2026 14:30:00 UTC",
		"2026-03-01T14:30:00Z",
	}
	for _, raw := range tests {
		if ts := parsePubDate(raw); ts.IsZero() {
			t.Fatalf("parsePubDate(%q) returned zero time", raw)
		}
	}
	if ts := parsePubDate("not a date"); !ts.IsZero() {
		t.Fatalf("expected zero time for garbage input, got %v", ts)
	}
}

func TestSummarize(t *testing.T) {
	content := "First paragraph about the game.\n\nSecond paragraph with detail."
	if got := summarize(content); got != "First paragraph about the game." {
		t.Fatalf("summarize = %q", got)
	}
	if got := summarize(""); got != "" {
		t.Fatalf("summarize empty = %q", got)
	}
}

func TestStripHTMLPlainTextPassthrough(t *testing.T) {
	if got := stripHTML("no markup here"); got != "no markup here" {
		t.Fatalf("stripHTML passthrough = %q", got)
	}
}
