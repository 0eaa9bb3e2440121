package report

// RawReport is the JSON-shaped audit input as the crawler and upstream data
// providers deliver it. Every field may be absent; pointers mark the
// distinction between "not provided" and a genuine zero.
type RawReport struct {
	Summary         *RawSummary         `json:"summary,omitempty" bson:"summary,omitempty"`
	CrawledPages    []CrawledPage       `json:"crawledPages,omitempty" bson:"crawled_pages,omitempty"`
	Recommendations []RawRecommendation `json:"recommendations,omitempty" bson:"recommendations,omitempty"`
	PageSpeed       *RawPageSpeed       `json:"pageSpeed,omitempty" bson:"page_speed,omitempty"`
	MozData         *RawMozData         `json:"mozData,omitempty" bson:"moz_data,omitempty"`
}

// RawSummary carries the unnormalized scores, possibly on the legacy
// out-of-1000 scale.
type RawSummary struct {
	Score      *float64            `json:"score,omitempty" bson:"score,omitempty"`
	Categories *RawCategorySummary `json:"categories,omitempty" bson:"categories,omitempty"`
}

// RawCategorySummary mirrors CategoryScores with optional raw values.
type RawCategorySummary struct {
	OnPageSEO   *float64 `json:"onPageSeo,omitempty" bson:"on_page_seo,omitempty"`
	Performance *float64 `json:"performance,omitempty" bson:"performance,omitempty"`
	Usability   *float64 `json:"usability,omitempty" bson:"usability,omitempty"`
	Links       *float64 `json:"links,omitempty" bson:"links,omitempty"`
	Social      *float64 `json:"social,omitempty" bson:"social,omitempty"`
}

// RawPageSpeedMetrics mirrors PageSpeedMetrics with optional leaves.
type RawPageSpeedMetrics struct {
	Performance *float64 `json:"performance,omitempty" bson:"performance,omitempty"`
	CLS         *float64 `json:"cls,omitempty" bson:"cls,omitempty"`
	FCP         *float64 `json:"fcp,omitempty" bson:"fcp,omitempty"`
	LCP         *float64 `json:"lcp,omitempty" bson:"lcp,omitempty"`
	TBT         *float64 `json:"tbt,omitempty" bson:"tbt,omitempty"`
}

// RawPageSpeed groups optional per-device metric blocks.
type RawPageSpeed struct {
	Mobile  *RawPageSpeedMetrics `json:"mobile,omitempty" bson:"mobile,omitempty"`
	Desktop *RawPageSpeedMetrics `json:"desktop,omitempty" bson:"desktop,omitempty"`
}

// RawMozData is the optional link-intelligence input block.
type RawMozData struct {
	DomainAuthority *float64   `json:"domainAuthority,omitempty" bson:"domain_authority,omitempty"`
	PageAuthority   *float64   `json:"pageAuthority,omitempty" bson:"page_authority,omitempty"`
	LinkingDomains  *float64   `json:"linkingDomains,omitempty" bson:"linking_domains,omitempty"`
	TotalLinks      *float64   `json:"totalLinks,omitempty" bson:"total_links,omitempty"`
	TopBacklinks    []Backlink `json:"topBacklinks,omitempty" bson:"top_backlinks,omitempty"`
}

// AssembleReport composes a complete, null-free Report from a raw audit. A
// nil input yields the canonical empty report: zero scores, every issue
// bucket present and empty, empty recommendation and page lists. The
// assembler never panics on missing nested fields; every leaf is defaulted
// at its point of use.
func AssembleReport(raw *RawReport) Report {
	if raw == nil {
		return emptyReport()
	}

	rep := Report{
		Issues:            ExtractIssues(raw.CrawledPages),
		AIRecommendations: FormatRecommendations(raw.Recommendations),
		CrawledPages:      raw.CrawledPages,
	}
	if rep.CrawledPages == nil {
		rep.CrawledPages = []CrawledPage{}
	}

	if raw.Summary != nil {
		rep.Score.Overall = NormalizeScore(floatOrZero(raw.Summary.Score))
		if cats := raw.Summary.Categories; cats != nil {
			rep.Score.Categories = CategoryScores{
				OnPageSEO:   NormalizeScore(floatOrZero(cats.OnPageSEO)),
				Performance: NormalizeScore(floatOrZero(cats.Performance)),
				Usability:   NormalizeScore(floatOrZero(cats.Usability)),
				Links:       NormalizeScore(floatOrZero(cats.Links)),
				Social:      NormalizeScore(floatOrZero(cats.Social)),
			}
		}
	}

	if raw.PageSpeed != nil {
		rep.PageSpeed.Mobile = pageSpeedMetrics(raw.PageSpeed.Mobile)
		rep.PageSpeed.Desktop = pageSpeedMetrics(raw.PageSpeed.Desktop)
	}

	rep.MozData.TopBacklinks = []Backlink{}
	if raw.MozData != nil {
		rep.MozData = MozData{
			DomainAuthority: int(floatOrZero(raw.MozData.DomainAuthority)),
			PageAuthority:   int(floatOrZero(raw.MozData.PageAuthority)),
			LinkingDomains:  int(floatOrZero(raw.MozData.LinkingDomains)),
			TotalLinks:      int(floatOrZero(raw.MozData.TotalLinks)),
			TopBacklinks:    raw.MozData.TopBacklinks,
		}
		if rep.MozData.TopBacklinks == nil {
			rep.MozData.TopBacklinks = []Backlink{}
		}
	}

	return rep
}

func pageSpeedMetrics(raw *RawPageSpeedMetrics) PageSpeedMetrics {
	if raw == nil {
		return PageSpeedMetrics{}
	}
	return PageSpeedMetrics{
		Performance: NormalizeScore(floatOrZero(raw.Performance)),
		CLS:         floatOrZero(raw.CLS),
		FCP:         floatOrZero(raw.FCP),
		LCP:         floatOrZero(raw.LCP),
		TBT:         floatOrZero(raw.TBT),
	}
}

func emptyReport() Report {
	return Report{
		Issues:            NewIssueSet(),
		AIRecommendations: []Recommendation{},
		CrawledPages:      []CrawledPage{},
		MozData:           MozData{TopBacklinks: []Backlink{}},
	}
}

func floatOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
