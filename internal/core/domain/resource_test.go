package domain

import "testing"

func TestResourceStatus_Next(t *testing.T) {
	if ResourcePending.Next() != ResourceActive {
		t.Fatalf("pending should cycle to active")
	}
	if ResourceActive.Next() != ResourceInactive {
		t.Fatalf("active should cycle to inactive")
	}
	if ResourceInactive.Next() != ResourceActive {
		t.Fatalf("inactive should cycle back to active")
	}
	if ResourceStatus("archived").Next() != ResourceStatus("archived") {
		t.Fatalf("unknown status should stay put")
	}
}

func TestResource_MatchesQuery(t *testing.T) {
	r := &Resource{
		Title:       "Understanding Anxiety in College",
		Description: "Evidence-based strategies to recognize and manage academic anxiety.",
		Author:      "Dr. Sarah Park",
	}

	if !r.MatchesQuery("") {
		t.Fatalf("empty query should match")
	}
	if !r.MatchesQuery("ANXIETY") {
		t.Fatalf("title match should be case-insensitive")
	}
	if !r.MatchesQuery("strategies") {
		t.Fatalf("description should be searched")
	}
	if !r.MatchesQuery("sarah park") {
		t.Fatalf("author should be searched")
	}
	if r.MatchesQuery("nutrition") {
		t.Fatalf("unrelated query should not match")
	}
}
