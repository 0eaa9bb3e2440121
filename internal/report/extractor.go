package report

import (
	"fmt"
	"net/url"
	"strings"
)

// Thresholds for the extractor rules. Fixed constants, not configurable.
const (
	metaDescriptionMinLen = 50
	metaDescriptionMaxLen = 160
	titleMinLen           = 30
	titleMaxLen           = 60
	slowLoadMS            = 1000
	verySlowLoadMS        = 2000
)

// ExtractIssues scans each crawled page against the fixed rule set and
// returns issues grouped into category buckets. Every category key is always
// present in the result. The function is pure: the same pages yield deeply
// equal issue sets, and the input is never mutated.
//
// Issues are appended in page-iteration order, then in fixed check order
// within a page. No bucket is re-sorted here; priority ordering is the
// action-plan builder's job.
func ExtractIssues(pages []CrawledPage) IssueSet {
	issues := NewIssueSet()

	for _, page := range pages {
		checkMetaDescription(page, issues)
		checkTitleTag(page, issues)
		checkHeadings(page, issues)
		checkImages(page, issues)
		checkCanonical(page, issues)
		checkLoadTime(page, issues)
	}

	return issues
}

func checkMetaDescription(page CrawledPage, issues IssueSet) {
	desc := page.MetaDescription

	switch {
	case desc == "":
		issues[CategoryMetaDescription] = append(issues[CategoryMetaDescription], Issue{
			URL:            page.URL,
			Title:          fmt.Sprintf("Missing meta description on %s", displayPath(page.URL)),
			Description:    "This page has no meta description. Search engines will generate their own snippet, which is usually less compelling.",
			Priority:       PriorityHigh,
			Recommended:    "Add a unique meta description between 50 and 160 characters.",
			Implementation: "Add a <meta name=\"description\" content=\"...\"> tag inside the page's <head>.",
		})
	case len(desc) < metaDescriptionMinLen:
		issues[CategoryMetaDescription] = append(issues[CategoryMetaDescription], Issue{
			URL:            page.URL,
			Title:          fmt.Sprintf("Meta description too short on %s", displayPath(page.URL)),
			Description:    fmt.Sprintf("The meta description is %d characters; short descriptions rarely earn the full search snippet.", len(desc)),
			Priority:       PriorityMedium,
			Current:        desc,
			Recommended:    fmt.Sprintf("Expand the description to at least %d characters.", metaDescriptionMinLen),
			Implementation: "Rewrite the meta description to summarize the page in 50-160 characters.",
		})
	case len(desc) > metaDescriptionMaxLen:
		issues[CategoryMetaDescription] = append(issues[CategoryMetaDescription], Issue{
			URL:            page.URL,
			Title:          fmt.Sprintf("Meta description too long on %s", displayPath(page.URL)),
			Description:    fmt.Sprintf("The meta description is %d characters and will be truncated in search results.", len(desc)),
			Priority:       PriorityMedium,
			Current:        desc,
			Recommended:    fmt.Sprintf("Shorten the description to at most %d characters.", metaDescriptionMaxLen),
			Implementation: "Trim the meta description so the most important copy fits within 160 characters.",
		})
	}
}

func checkTitleTag(page CrawledPage, issues IssueSet) {
	title := page.Title

	// Title length violations stay high priority, unlike meta descriptions.
	var issueTitle, description, recommended string
	switch {
	case title == "":
		issueTitle = fmt.Sprintf("Missing title tag on %s", displayPath(page.URL))
		description = "This page has no <title> tag. The title is the strongest on-page ranking signal."
		recommended = "Add a unique, descriptive title between 30 and 60 characters."
	case len(title) < titleMinLen:
		issueTitle = fmt.Sprintf("Title tag too short on %s", displayPath(page.URL))
		description = fmt.Sprintf("The title is %d characters; short titles waste ranking opportunity.", len(title))
		recommended = fmt.Sprintf("Expand the title to at least %d characters.", titleMinLen)
	case len(title) > titleMaxLen:
		issueTitle = fmt.Sprintf("Title tag too long on %s", displayPath(page.URL))
		description = fmt.Sprintf("The title is %d characters and will be truncated in search results.", len(title))
		recommended = fmt.Sprintf("Shorten the title to at most %d characters.", titleMaxLen)
	default:
		return
	}

	issues[CategoryTitleTags] = append(issues[CategoryTitleTags], Issue{
		URL:            page.URL,
		Title:          issueTitle,
		Description:    description,
		Priority:       PriorityHigh,
		Current:        title,
		Recommended:    recommended,
		Implementation: "Update the <title> element inside the page's <head>.",
	})
}

func checkHeadings(page CrawledPage, issues IssueSet) {
	// Only absence is checked; multiple H1s are not flagged.
	if len(page.H1s) > 0 {
		return
	}

	issues[CategoryHeadings] = append(issues[CategoryHeadings], Issue{
		URL:            page.URL,
		Title:          fmt.Sprintf("Missing H1 heading on %s", displayPath(page.URL)),
		Description:    "This page has no H1 heading. A single H1 tells search engines what the page is about.",
		Priority:       PriorityMedium,
		Recommended:    "Add exactly one H1 heading that describes the page's topic.",
		Implementation: "Wrap the page's main heading in an <h1> element.",
	})
}

func checkImages(page CrawledPage, issues IssueSet) {
	missing := 0
	for _, img := range page.Images {
		if strings.TrimSpace(img.Alt) == "" {
			missing++
		}
	}
	if missing == 0 {
		return
	}

	// One aggregated issue per page, noting the count, not one per image.
	issues[CategoryImages] = append(issues[CategoryImages], Issue{
		URL:            page.URL,
		Title:          fmt.Sprintf("Images missing alt text on %s", displayPath(page.URL)),
		Description:    fmt.Sprintf("%d of %d images on this page have no alt text. Alt text is required for accessibility and image search.", missing, len(page.Images)),
		Priority:       PriorityMedium,
		Current:        fmt.Sprintf("%d images without alt text", missing),
		Recommended:    "Add descriptive alt text to every content image.",
		Implementation: "Set the alt attribute on each <img> element; use an empty alt only for purely decorative images.",
	})
}

func checkCanonical(page CrawledPage, issues IssueSet) {
	// Two distinct root causes collapse into one category: the crawler marked
	// the page non-canonical, or it declares a canonical pointing elsewhere.
	nonCanonical := page.IsCanonical != nil && !*page.IsCanonical
	pointsElsewhere := page.CanonicalURL != "" && page.CanonicalURL != page.URL
	if !nonCanonical && !pointsElsewhere {
		return
	}

	current := page.CanonicalURL
	if current == "" {
		current = "not self-referencing"
	}

	issues[CategoryCanonicalLinks] = append(issues[CategoryCanonicalLinks], Issue{
		URL:            page.URL,
		Title:          fmt.Sprintf("Canonical mismatch on %s", displayPath(page.URL)),
		Description:    "The page's canonical URL does not reference the page itself, so ranking signals may be attributed to a different URL.",
		Priority:       PriorityMedium,
		Current:        current,
		Recommended:    "Point the canonical link at the page's own URL unless consolidation is intentional.",
		Implementation: "Update the <link rel=\"canonical\"> href to match the page URL.",
	})
}

func checkLoadTime(page CrawledPage, issues IssueSet) {
	if page.LoadTimeMS <= slowLoadMS {
		return
	}

	priority := PriorityMedium
	if page.LoadTimeMS > verySlowLoadMS {
		priority = PriorityHigh
	}

	issues[CategoryPerformance] = append(issues[CategoryPerformance], Issue{
		URL:            page.URL,
		Title:          fmt.Sprintf("Slow page load on %s", displayPath(page.URL)),
		Description:    fmt.Sprintf("The page took %.0f ms to load. Load times above one second hurt both rankings and conversions.", page.LoadTimeMS),
		Priority:       priority,
		Current:        fmt.Sprintf("%.0f ms", page.LoadTimeMS),
		Recommended:    "Bring the load time under 1000 ms.",
		Implementation: "Compress images, enable caching, and defer non-critical scripts.",
	})
}

// displayPath renders a short human-readable locator for a page. A URL that
// fails to parse degrades to the raw string rather than aborting the check.
func displayPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	if u.Path == "" {
		return "/"
	}
	return u.Path
}
