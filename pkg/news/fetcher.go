package news

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"agribot/entities"
)

const maxSummaryRunes = 300

// FetchArticle scrapes one article page into a NewsArticle. Title and summary
// come from OpenGraph tags when present, falling back to <title> and the
// first substantial paragraph.
func FetchArticle(url, category string) (*entities.NewsArticle, error) {
	httpc := &http.Client{Timeout: 15 * time.Second}
	resp, err := httpc.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	title := strings.TrimSpace(doc.Find(`meta[property="og:title"]`).AttrOr("content", ""))
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if title == "" {
		return nil, fmt.Errorf("parse %s: no title", url)
	}

	summary := strings.TrimSpace(doc.Find(`meta[property="og:description"]`).AttrOr("content", ""))
	if summary == "" {
		summary = strings.TrimSpace(doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	}
	if summary == "" {
		doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
			txt := strings.TrimSpace(p.Text())
			if len(txt) > 80 {
				summary = txt
				return false
			}
			return true
		})
	}
	if rs := []rune(summary); len(rs) > maxSummaryRunes {
		summary = string(rs[:maxSummaryRunes]) + "…"
	}

	published := time.Now()
	if raw := doc.Find(`meta[property="article:published_time"]`).AttrOr("content", ""); raw != "" {
		if t, perr := time.Parse(time.RFC3339, raw); perr == nil {
			published = t
		}
	}

	return &entities.NewsArticle{
		Title:       title,
		Summary:     summary,
		Category:    category,
		SourceURL:   url,
		PublishedAt: published,
	}, nil
}
