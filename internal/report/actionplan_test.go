package report

import "testing"

func TestBuildActionPlanPriorityOrder(t *testing.T) {
	issues := NewIssueSet()
	issues[CategoryHeadings] = []Issue{
		{URL: "https://example.com/a", Title: "low one", Priority: PriorityLow},
	}
	issues[CategoryImages] = []Issue{
		{URL: "https://example.com/b", Title: "critical one", Priority: PriorityCritical},
	}
	issues[CategoryPerformance] = []Issue{
		{URL: "https://example.com/c", Title: "medium one", Priority: PriorityMedium},
	}

	plan := BuildActionPlan(issues)

	if len(plan) != 3 {
		t.Fatalf("Expected 3 plan entries, got %d", len(plan))
	}
	want := []Priority{PriorityCritical, PriorityMedium, PriorityLow}
	for i, p := range want {
		if plan[i].Priority != p {
			t.Errorf("Entry %d: expected priority %s, got %s", i, p, plan[i].Priority)
		}
	}
}

func TestBuildActionPlanStableWithinPriority(t *testing.T) {
	issues := NewIssueSet()
	issues[CategoryMetaDescription] = []Issue{
		{Title: "first medium", Priority: PriorityMedium},
	}
	issues[CategoryHeadings] = []Issue{
		{Title: "second medium", Priority: PriorityMedium},
		{Title: "third medium", Priority: PriorityMedium},
	}

	plan := BuildActionPlan(issues)

	if len(plan) != 3 {
		t.Fatalf("Expected 3 plan entries, got %d", len(plan))
	}
	// Equal priorities keep category-then-emission order.
	wantTitles := []string{"first medium", "second medium", "third medium"}
	for i, title := range wantTitles {
		if plan[i].Title != title {
			t.Errorf("Entry %d: expected %q, got %q", i, title, plan[i].Title)
		}
	}
}

func TestBuildActionPlanIDs(t *testing.T) {
	issues := NewIssueSet()
	issues[CategoryImages] = []Issue{
		{Title: "a", Priority: PriorityMedium},
		{Title: "b", Priority: PriorityMedium},
	}
	issues[CategoryTitleTags] = []Issue{
		{Title: "c", Priority: PriorityMedium},
	}

	plan := BuildActionPlan(issues)

	ids := map[string]bool{}
	for _, item := range plan {
		ids[item.ID] = true
	}
	// The index is positional within the issue's own category bucket.
	for _, want := range []string{"issue-titleTags-0", "issue-images-0", "issue-images-1"} {
		if !ids[want] {
			t.Errorf("Expected plan to contain id %q, got %v", want, ids)
		}
	}
}

func TestBuildActionPlanEmptySet(t *testing.T) {
	plan := BuildActionPlan(NewIssueSet())
	if plan == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(plan) != 0 {
		t.Errorf("Expected 0 entries, got %d", len(plan))
	}
}
