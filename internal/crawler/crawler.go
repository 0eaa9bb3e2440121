package crawler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"log/slog"
	"seoAuditGO/internal/config"
	"seoAuditGO/internal/report"
)

// Crawler fetches audit pages and turns them into crawl records for the
// report pipeline.
type Crawler struct {
	client  *http.Client
	config  config.CrawlerConfig
	logger  *slog.Logger
	limiter *rate.Limiter
	sem     *semaphore.Weighted
}

// New creates a new Crawler
func New(cfg config.CrawlerConfig, logger *slog.Logger) *Crawler {
	maxMemoryMB := cfg.MaxMemoryMB
	if maxMemoryMB <= 0 {
		maxMemoryMB = 512
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	return &Crawler{
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		config:  cfg,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		sem:     semaphore.NewWeighted(maxMemoryMB * 1024 * 1024),
	}
}

// CrawlPages fetches the given URLs concurrently and returns one record per
// page that could be fetched, in input order. A URL that fails to fetch or
// parse is logged and dropped; it never fails the batch.
func (c *Crawler) CrawlPages(ctx context.Context, urls []string) []report.CrawledPage {
	slots := make([]*report.CrawledPage, len(urls))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	maxConcurrency := int(c.config.MaxConcurrency)
	if maxConcurrency <= 0 {
		maxConcurrency = 10
	}
	g.SetLimit(maxConcurrency)

	for i, urlStr := range urls {
		i, urlStr := i, urlStr
		g.Go(func() error {
			if err := c.limiter.Wait(ctx); err != nil {
				c.logger.Error("Rate limiter wait failed", "url", urlStr, "error", err)
				return nil
			}

			page, err := c.fetchPage(ctx, urlStr)
			if err != nil {
				c.logger.Error("Failed to crawl page", "url", urlStr, "error", err)
				return nil
			}

			mu.Lock()
			slots[i] = page
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; Wait only observes context cancellation.
	_ = g.Wait()

	pages := make([]report.CrawledPage, 0, len(urls))
	for _, p := range slots {
		if p != nil {
			pages = append(pages, *p)
		}
	}
	return pages
}

// fetchPage fetches a single page and extracts the crawl record
func (c *Crawler) fetchPage(ctx context.Context, urlStr string) (*report.CrawledPage, error) {
	// Parse URL
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	// Ensure scheme is set
	if parsedURL.Scheme == "" {
		parsedURL.Scheme = "https"
		urlStr = parsedURL.String()
	}

	// Create request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set User-Agent
	req.Header.Set("User-Agent", c.config.UserAgent)

	// Send request, timing the full fetch
	c.logger.Info("Fetching page", "url", urlStr)
	startTime := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	// Check status code
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	// Reserve memory for page processing before buffering the body
	contentLength := resp.ContentLength
	if contentLength <= 0 {
		contentLength = 1024 * 1024 // Assume 1MB if unknown
	}
	estimatedMemory := contentLength * 5
	if err := c.sem.Acquire(ctx, estimatedMemory); err != nil {
		return nil, fmt.Errorf("resource acquisition failed: %w", err)
	}
	defer c.sem.Release(estimatedMemory)

	// Read body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	loadTime := time.Since(startTime)

	// Parse HTML
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	page := &report.CrawledPage{
		URL:        urlStr,
		LoadTimeMS: float64(loadTime.Milliseconds()),
	}
	c.extractPageData(doc, parsedURL, page)

	return page, nil
}

// extractPageData walks the parsed HTML document and populates the record
func (c *Crawler) extractPageData(n *html.Node, baseURL *url.URL, page *report.CrawledPage) {
	var processNode func(*html.Node)
	processNode = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if page.Title == "" {
					page.Title = strings.TrimSpace(nodeText(n))
				}

			case "meta":
				var name, content string
				for _, attr := range n.Attr {
					switch attr.Key {
					case "name":
						name = attr.Val
					case "content":
						content = attr.Val
					}
				}
				if name == "description" && page.MetaDescription == "" {
					page.MetaDescription = content
				}

			case "h1":
				page.H1s = append(page.H1s, strings.TrimSpace(nodeText(n)))

			case "img":
				var src, alt string
				for _, attr := range n.Attr {
					switch attr.Key {
					case "src":
						src = attr.Val
					case "alt":
						alt = attr.Val
					}
				}
				page.Images = append(page.Images, report.ImageRef{Src: src, Alt: alt})

			case "link":
				var rel, href string
				for _, attr := range n.Attr {
					switch attr.Key {
					case "rel":
						rel = attr.Val
					case "href":
						href = attr.Val
					}
				}
				if rel == "canonical" && href != "" {
					canonical := resolveCanonical(baseURL, href)
					page.CanonicalURL = canonical
					isSelf := canonical == page.URL
					page.IsCanonical = &isSelf
				}
			}
		}

		// Recursively process child nodes
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			processNode(child)
		}
	}

	processNode(n)
}

// resolveCanonical resolves a canonical href against the page URL. A
// canonical that fails to parse is kept verbatim so the extractor can still
// report the mismatch.
func resolveCanonical(baseURL *url.URL, href string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(parsed).String()
}

// nodeText collects the text content of a node's subtree
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
