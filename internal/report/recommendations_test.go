package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRecommendationsDefaultFill(t *testing.T) {
	out := FormatRecommendations([]RawRecommendation{{Title: "X"}})

	assert.Len(t, out, 1)
	rec := out[0]
	assert.Equal(t, "rec-0", rec.ID)
	assert.Equal(t, "X", rec.Title)
	assert.Equal(t, defaultRecommendationDescription, rec.Description)
	assert.Equal(t, "general", rec.Category)
	assert.Equal(t, "medium", rec.Priority)
	assert.Empty(t, rec.Impact)
	assert.Empty(t, rec.Implementation)
}

func TestFormatRecommendationsPreservesOrder(t *testing.T) {
	raw := []RawRecommendation{
		{Title: "third priority", Priority: "low"},
		{Title: "first priority", Priority: "critical"},
		{Title: "second priority", Priority: "high"},
	}

	out := FormatRecommendations(raw)

	// No sorting, filtering, or deduplication: 1:1 and index-preserving.
	assert.Len(t, out, 3)
	for i, rec := range out {
		assert.Equal(t, raw[i].Title, rec.Title)
		assert.Equal(t, raw[i].Priority, rec.Priority)
	}
	assert.Equal(t, "rec-2", out[2].ID)
}

func TestFormatRecommendationsEmptyInput(t *testing.T) {
	assert.Empty(t, FormatRecommendations(nil))
	assert.NotNil(t, FormatRecommendations(nil))
}

func TestFormatRecommendationsFullyAbsentRecord(t *testing.T) {
	out := FormatRecommendations([]RawRecommendation{{}})

	rec := out[0]
	assert.Equal(t, defaultRecommendationTitle, rec.Title)
	assert.Equal(t, defaultRecommendationDescription, rec.Description)
	assert.Equal(t, defaultRecommendationCategory, rec.Category)
	assert.Equal(t, defaultRecommendationPriority, rec.Priority)
}
