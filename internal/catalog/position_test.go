package catalog

import "testing"

func testCatalog() *Positions {
	return &Positions{Items: []*Position{
		{
			ID:       "jacobs_1",
			Source:   SourceJacobs,
			Title:    "Project Controls Analyst",
			Company:  "Jacobs",
			Location: "Denver, CO",
			Metadata: Metadata{Category: "Program Management"},
		},
		{
			ID:      "mos_11B",
			Source:  SourceMOS,
			Title:   "11B - Infantryman",
			Company: "US Army",
			Metadata: Metadata{
				CareerField:  "Infantry",
				SigningBonus: 20000,
			},
		},
		{
			ID:       "mos_25B",
			Source:   SourceMOS,
			Title:    "25B - Information Technology Specialist",
			Company:  "US Army",
			Metadata: Metadata{CareerField: "Signal"},
		},
		{
			ID:     "jacobs_9",
			Source: SourceJacobs,
			Title:  "Untagged Posting",
		},
	}}
}

func TestFindByID(t *testing.T) {
	positions := testCatalog()

	if p := positions.FindByID("mos_25B"); p == nil || p.Title != "25B - Information Technology Specialist" {
		t.Fatalf("unexpected lookup result: %+v", p)
	}
	if p := positions.FindByID("mos_404"); p != nil {
		t.Fatalf("expected nil for unknown id, got %+v", p)
	}
}

func TestCountBySource(t *testing.T) {
	counts := testCatalog().CountBySource()

	if counts[SourceJacobs] != 2 || counts[SourceMOS] != 2 {
		t.Fatalf("unexpected counts %v", counts)
	}
}

func TestReportByCareerField(t *testing.T) {
	report := testCatalog().ReportByCareerField()

	if len(report) != 4 {
		t.Fatalf("expected 4 groups, got %d: %v", len(report), report)
	}
	if len(report["Infantry"]) != 1 {
		t.Fatalf("unexpected Infantry group: %v", report["Infantry"])
	}
	if report["Infantry"][0]["signing_bonus"] != "$20000" {
		t.Fatalf("missing signing bonus: %v", report["Infantry"][0])
	}
	// Civilian postings fall back to category, then to the catch-all group.
	if len(report["Program Management"]) != 1 {
		t.Fatalf("unexpected category group: %v", report["Program Management"])
	}
	if len(report["uncategorized"]) != 1 {
		t.Fatalf("unexpected uncategorized group: %v", report["uncategorized"])
	}
}

func TestIDsPreservesOrder(t *testing.T) {
	ids := testCatalog().IDs()

	want := []string{"jacobs_1", "mos_11B", "mos_25B", "jacobs_9"}
	if len(ids) != len(want) {
		t.Fatalf("unexpected ids %v", ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}
