package report

import "fmt"

// Fallbacks applied per field when raw recommendation input is incomplete.
const (
	defaultRecommendationTitle       = "Recommendation"
	defaultRecommendationDescription = "No additional details provided."
	defaultRecommendationCategory    = "general"
	defaultRecommendationPriority    = "medium"
)

// FormatRecommendations reshapes raw AI- or rule-generated suggestions into
// the normalized display schema. The mapping is 1:1 and index-preserving: no
// filtering, deduplication, or sorting. Every output field is defaulted
// independently, so a missing input field never fails the whole record.
// IDs are positional ("rec-<index>") and stable only within one run.
func FormatRecommendations(raw []RawRecommendation) []Recommendation {
	out := make([]Recommendation, 0, len(raw))
	for i, r := range raw {
		out = append(out, Recommendation{
			ID:             fmt.Sprintf("rec-%d", i),
			Title:          withDefault(r.Title, defaultRecommendationTitle),
			Description:    withDefault(r.Description, defaultRecommendationDescription),
			Category:       withDefault(r.Category, defaultRecommendationCategory),
			Priority:       withDefault(r.Priority, defaultRecommendationPriority),
			Impact:         r.Impact,
			Implementation: r.Implementation,
			CMS:            r.CMS,
		})
	}
	return out
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
