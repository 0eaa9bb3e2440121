package report

import (
	"fmt"
	"sort"
)

// BuildActionPlan flattens every category bucket into one linear list sorted
// by priority (critical first). The sort is stable: issues of equal priority
// keep their category-then-emission order. Each entry's id encodes the
// issue's position within its own category bucket at flattening time.
func BuildActionPlan(issues IssueSet) []ActionItem {
	plan := []ActionItem{}

	for _, category := range Categories {
		for i, issue := range issues[category] {
			plan = append(plan, ActionItem{
				ID:          fmt.Sprintf("issue-%s-%d", category, i),
				Title:       issue.Title,
				Description: issue.Description,
				Category:    category,
				Priority:    issue.Priority,
				Current:     issue.Current,
				Recommended: issue.Recommended,
				URL:         issue.URL,
			})
		}
	}

	sort.SliceStable(plan, func(i, j int) bool {
		return priorityRank(plan[i].Priority) < priorityRank(plan[j].Priority)
	})

	return plan
}
