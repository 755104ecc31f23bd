package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"sentiment-advisor/internal/logger"
)

const scraperUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// ScrapeSource fetches live headlines from Google News. A goquery
// parse of the Yahoo Finance news page serves as fallback when the
// primary scrape comes back empty.
type ScrapeSource struct {
	timeout time.Duration
}

func NewScrapeSource(timeout time.Duration) *ScrapeSource {
	return &ScrapeSource{timeout: timeout}
}

// Headlines returns up to limit headline titles for the query, most
// recent first as presented by the source. An empty result is returned
// as-is; the caller decides whether that aborts the run.
func (s *ScrapeSource) Headlines(ctx context.Context, query string, limit int) ([]string, error) {
	heads, err := s.scrapeGoogleNews(ctx, query, limit)
	if err != nil {
		logger.ErrorWithErr(ctx, "Google News scrape failed, trying fallback", err, "query", query)
	}
	if len(heads) == 0 {
		fallback, ferr := s.scrapeYahooNews(ctx, query, limit)
		if ferr != nil {
			if err != nil {
				return nil, fmt.Errorf("all headline sources failed: %w", err)
			}
			return nil, fmt.Errorf("yahoo news fallback: %w", ferr)
		}
		heads = fallback
	}

	logger.Info(ctx, "Headline scraping completed", "query", query, "headlines", len(heads))
	return heads, nil
}

// scrapeGoogleNews collects article titles from the Google News search page.
func (s *ScrapeSource) scrapeGoogleNews(ctx context.Context, query string, limit int) ([]string, error) {
	headlines := []string{}

	c := colly.NewCollector(
		colly.AllowedDomains("news.google.com", "www.google.com"),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", scraperUserAgent)
	})

	c.OnHTML("article", func(e *colly.HTMLElement) {
		if limit > 0 && len(headlines) >= limit {
			return
		}
		title := strings.TrimSpace(e.ChildText("h3, h4"))
		if title != "" {
			headlines = append(headlines, title)
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Scraping error", err, "url", r.Request.URL.String())
	})

	searchQuery := url.QueryEscape(query + " news")
	searchURL := fmt.Sprintf("https://news.google.com/search?q=%s&hl=en-US&gl=US&ceid=US:en", searchQuery)

	if err := c.Visit(searchURL); err != nil {
		return nil, fmt.Errorf("failed to scrape Google News: %w", err)
	}
	c.Wait()

	return headlines, nil
}

// scrapeYahooNews pulls headline anchors from the Yahoo Finance news
// listing for the query's ticker page.
func (s *ScrapeSource) scrapeYahooNews(ctx context.Context, query string, limit int) ([]string, error) {
	pageURL := fmt.Sprintf("https://finance.yahoo.com/quote/%s/news", url.PathEscape(strings.ToUpper(query)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", scraperUserAgent)

	client := &http.Client{Timeout: s.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo news http %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse yahoo news page: %w", err)
	}

	headlines := []string{}
	doc.Find("h3 a, li.js-stream-content h3").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := strings.TrimSpace(sel.Text())
		if len(title) > 20 {
			headlines = append(headlines, title)
		}
		return limit <= 0 || len(headlines) < limit
	})

	return headlines, nil
}
