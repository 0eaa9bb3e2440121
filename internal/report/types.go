package report

// Category classifies an issue into one of a fixed, closed set of buckets.
type Category string

const (
	CategoryMetaDescription Category = "metaDescription"
	CategoryTitleTags       Category = "titleTags"
	CategoryHeadings        Category = "headings"
	CategoryImages          Category = "images"
	CategoryCanonicalLinks  Category = "canonicalLinks"
	CategoryPerformance     Category = "performance"
	CategorySecurity        Category = "security"
)

// Categories lists every known category in check order. Consumers may index
// an IssueSet by any of these without an existence check.
var Categories = []Category{
	CategoryMetaDescription,
	CategoryTitleTags,
	CategoryHeadings,
	CategoryImages,
	CategoryCanonicalLinks,
	CategoryPerformance,
	CategorySecurity,
}

// Priority indicates how urgent an issue is.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// priorityRank orders priorities for action-plan sorting: lower sorts first.
func priorityRank(p Priority) int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// ImageRef is a single <img> occurrence on a crawled page.
type ImageRef struct {
	Src string `json:"src" bson:"src"`
	Alt string `json:"alt" bson:"alt"`
}

// CrawledPage is one crawler record per URL. It is immutable input to the
// pipeline; optional text fields use the empty string for "absent" and
// IsCanonical is nil when the crawler did not determine self-canonicality.
type CrawledPage struct {
	URL             string     `json:"url" bson:"url"`
	Title           string     `json:"title,omitempty" bson:"title,omitempty"`
	MetaDescription string     `json:"metaDescription,omitempty" bson:"meta_description,omitempty"`
	H1s             []string   `json:"h1s,omitempty" bson:"h1s,omitempty"`
	Images          []ImageRef `json:"images,omitempty" bson:"images,omitempty"`
	CanonicalURL    string     `json:"canonicalUrl,omitempty" bson:"canonical_url,omitempty"`
	IsCanonical     *bool      `json:"isCanonical,omitempty" bson:"is_canonical,omitempty"`
	LoadTimeMS      float64    `json:"loadTime" bson:"load_time"`
}

// Issue is a single detected problem instance tied to one page. The category
// is carried by the IssueSet bucket it lives in, not repeated on the issue.
type Issue struct {
	URL            string   `json:"url" bson:"url"`
	Title          string   `json:"title" bson:"title"`
	Description    string   `json:"description" bson:"description"`
	Priority       Priority `json:"priority" bson:"priority"`
	Current        string   `json:"current,omitempty" bson:"current,omitempty"`
	Recommended    string   `json:"recommended,omitempty" bson:"recommended,omitempty"`
	Implementation string   `json:"implementation,omitempty" bson:"implementation,omitempty"`
}

// IssueSet maps every known category to its issues. All keys in Categories
// are always present, possibly with empty slices.
type IssueSet map[Category][]Issue

// NewIssueSet returns an IssueSet with every category key present.
func NewIssueSet() IssueSet {
	s := make(IssueSet, len(Categories))
	for _, c := range Categories {
		s[c] = []Issue{}
	}
	return s
}

// Recommendation is a normalized AI- or rule-generated suggestion. Every
// field is total: missing raw input never produces a missing output field.
type Recommendation struct {
	ID             string `json:"id" bson:"id"`
	Title          string `json:"title" bson:"title"`
	Description    string `json:"description" bson:"description"`
	Category       string `json:"category" bson:"category"`
	Priority       string `json:"priority" bson:"priority"`
	Impact         string `json:"impact,omitempty" bson:"impact,omitempty"`
	Implementation string `json:"implementation,omitempty" bson:"implementation,omitempty"`
	CMS            string `json:"cms,omitempty" bson:"cms,omitempty"`
}

// RawRecommendation is the loosely-shaped input to FormatRecommendations.
type RawRecommendation struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	Priority       string `json:"priority"`
	Impact         string `json:"impact"`
	Implementation string `json:"implementation"`
	CMS            string `json:"cms"`
}

// CategoryScores holds the fixed per-category report scores, each 0-100.
type CategoryScores struct {
	OnPageSEO   int `json:"onPageSeo" bson:"on_page_seo"`
	Performance int `json:"performance" bson:"performance"`
	Usability   int `json:"usability" bson:"usability"`
	Links       int `json:"links" bson:"links"`
	Social      int `json:"social" bson:"social"`
}

// Score is the normalized score block of a report.
type Score struct {
	Overall    int            `json:"overall" bson:"overall"`
	Categories CategoryScores `json:"categories" bson:"categories"`
}

// PageSpeedMetrics are the per-device Lighthouse-style metrics.
type PageSpeedMetrics struct {
	Performance int     `json:"performance" bson:"performance"`
	CLS         float64 `json:"cls" bson:"cls"`
	FCP         float64 `json:"fcp" bson:"fcp"`
	LCP         float64 `json:"lcp" bson:"lcp"`
	TBT         float64 `json:"tbt" bson:"tbt"`
}

// PageSpeed groups mobile and desktop metrics.
type PageSpeed struct {
	Mobile  PageSpeedMetrics `json:"mobile" bson:"mobile"`
	Desktop PageSpeedMetrics `json:"desktop" bson:"desktop"`
}

// Backlink is one entry of the link-intelligence data.
type Backlink struct {
	URL             string `json:"url" bson:"url"`
	DomainAuthority int    `json:"domainAuthority" bson:"domain_authority"`
	AnchorText      string `json:"anchorText,omitempty" bson:"anchor_text,omitempty"`
}

// MozData is the pass-through link-intelligence block.
type MozData struct {
	DomainAuthority int        `json:"domainAuthority" bson:"domain_authority"`
	PageAuthority   int        `json:"pageAuthority" bson:"page_authority"`
	LinkingDomains  int        `json:"linkingDomains" bson:"linking_domains"`
	TotalLinks      int        `json:"totalLinks" bson:"total_links"`
	TopBacklinks    []Backlink `json:"topBacklinks" bson:"top_backlinks"`
}

// Report is the fully assembled, null-free audit output consumed read-only
// by presentation code.
type Report struct {
	Score             Score            `json:"score" bson:"score"`
	Issues            IssueSet         `json:"issues" bson:"issues"`
	PageSpeed         PageSpeed        `json:"pageSpeed" bson:"page_speed"`
	MozData           MozData          `json:"mozData" bson:"moz_data"`
	AIRecommendations []Recommendation `json:"aiRecommendations" bson:"ai_recommendations"`
	CrawledPages      []CrawledPage    `json:"crawledPages" bson:"crawled_pages"`
}

// ActionItem is one flattened, prioritized entry of the action plan.
type ActionItem struct {
	ID          string   `json:"id" bson:"id"`
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description" bson:"description"`
	Category    Category `json:"category" bson:"category"`
	Priority    Priority `json:"priority" bson:"priority"`
	Current     string   `json:"current,omitempty" bson:"current,omitempty"`
	Recommended string   `json:"recommended,omitempty" bson:"recommended,omitempty"`
	URL         string   `json:"url,omitempty" bson:"url,omitempty"`
}
