package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestAssembleReportNilInput(t *testing.T) {
	rep := AssembleReport(nil)

	assert.Equal(t, 0, rep.Score.Overall)
	assert.Equal(t, CategoryScores{}, rep.Score.Categories)

	require.Len(t, rep.Issues, len(Categories))
	for _, category := range Categories {
		bucket, ok := rep.Issues[category]
		require.True(t, ok, "category %q missing", category)
		assert.NotNil(t, bucket)
		assert.Empty(t, bucket)
	}

	assert.NotNil(t, rep.AIRecommendations)
	assert.Empty(t, rep.AIRecommendations)
	assert.NotNil(t, rep.CrawledPages)
	assert.Empty(t, rep.CrawledPages)
	assert.NotNil(t, rep.MozData.TopBacklinks)
}

func TestAssembleReportEmptyRaw(t *testing.T) {
	rep := AssembleReport(&RawReport{})

	require.Len(t, rep.Issues, len(Categories))
	assert.NotNil(t, rep.CrawledPages)
	assert.NotNil(t, rep.AIRecommendations)
	assert.NotNil(t, rep.MozData.TopBacklinks)
	assert.Equal(t, PageSpeed{}, rep.PageSpeed)
}

func TestAssembleReportNormalizesScores(t *testing.T) {
	raw := &RawReport{
		Summary: &RawSummary{
			Score: floatPtr(850),
			Categories: &RawCategorySummary{
				OnPageSEO:   floatPtr(720),
				Performance: floatPtr(64),
				Usability:   floatPtr(1500),
				// Links and Social absent: default to zero.
			},
		},
	}

	rep := AssembleReport(raw)

	assert.Equal(t, 85, rep.Score.Overall)
	assert.Equal(t, 72, rep.Score.Categories.OnPageSEO)
	assert.Equal(t, 64, rep.Score.Categories.Performance)
	assert.Equal(t, 100, rep.Score.Categories.Usability)
	assert.Equal(t, 0, rep.Score.Categories.Links)
	assert.Equal(t, 0, rep.Score.Categories.Social)
}

func TestAssembleReportRunsPipeline(t *testing.T) {
	raw := &RawReport{
		CrawledPages: []CrawledPage{
			{URL: "https://example.com/", LoadTimeMS: 2500},
		},
		Recommendations: []RawRecommendation{
			{Title: "Fix titles"},
		},
	}

	rep := AssembleReport(raw)

	// Extractor ran over the crawl.
	assert.Len(t, rep.Issues[CategoryPerformance], 1)
	assert.Len(t, rep.Issues[CategoryMetaDescription], 1)

	// Formatter ran over the recommendations.
	require.Len(t, rep.AIRecommendations, 1)
	assert.Equal(t, "Fix titles", rep.AIRecommendations[0].Title)
	assert.Equal(t, "general", rep.AIRecommendations[0].Category)

	// Crawl records pass through untouched.
	require.Len(t, rep.CrawledPages, 1)
	assert.Equal(t, "https://example.com/", rep.CrawledPages[0].URL)
}

func TestAssembleReportPageSpeedDefaults(t *testing.T) {
	raw := &RawReport{
		PageSpeed: &RawPageSpeed{
			Mobile: &RawPageSpeedMetrics{
				Performance: floatPtr(430),
				LCP:         floatPtr(2.8),
			},
			// Desktop absent: zeroed shape.
		},
	}

	rep := AssembleReport(raw)

	assert.Equal(t, 43, rep.PageSpeed.Mobile.Performance)
	assert.Equal(t, 2.8, rep.PageSpeed.Mobile.LCP)
	assert.Equal(t, 0.0, rep.PageSpeed.Mobile.CLS)
	assert.Equal(t, PageSpeedMetrics{}, rep.PageSpeed.Desktop)
}

func TestAssembleReportMozDataDefaults(t *testing.T) {
	raw := &RawReport{
		MozData: &RawMozData{
			DomainAuthority: floatPtr(42),
			TopBacklinks: []Backlink{
				{URL: "https://linker.example", DomainAuthority: 60},
			},
		},
	}

	rep := AssembleReport(raw)

	assert.Equal(t, 42, rep.MozData.DomainAuthority)
	assert.Equal(t, 0, rep.MozData.PageAuthority)
	require.Len(t, rep.MozData.TopBacklinks, 1)
	assert.Equal(t, "https://linker.example", rep.MozData.TopBacklinks[0].URL)
}
