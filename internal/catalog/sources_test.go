package catalog

import "testing"

func TestNormalizeJacobsRecord(t *testing.T) {
	batches := []RawRecords{{
		Source: SourceJacobs,
		Records: []map[string]any{
			{
				"jobId":      "4821",
				"title":      "Field Engineer",
				"location":   "Tampa, FL",
				"workMode":   "Hybrid",
				"skills":     []any{"scheduling", "autocad"},
				"category":   "Engineering",
				"department": "Infrastructure",
				"salaryMin":  float64(85000),
			},
		},
	}}

	positions, err := Normalize(batches)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if positions.Len() != 1 {
		t.Fatalf("expected 1 position, got %d", positions.Len())
	}

	p := positions.Items[0]
	if p.ID != "jacobs_4821" {
		t.Fatalf("expected prefixed id, got %q", p.ID)
	}
	if p.Source != SourceJacobs {
		t.Fatalf("unexpected source %q", p.Source)
	}
	if p.Company != "Jacobs" {
		t.Fatalf("unexpected company %q", p.Company)
	}
	if p.WorkMode != WorkModeHybrid {
		t.Fatalf("unexpected work mode %q", p.WorkMode)
	}
	if len(p.RequiredSkills) != 2 || p.RequiredSkills[0] != "scheduling" {
		t.Fatalf("unexpected skills %v", p.RequiredSkills)
	}
	if p.Compensation != 85000 {
		t.Fatalf("unexpected compensation %d", p.Compensation)
	}
	if p.Metadata.Department != "Infrastructure" {
		t.Fatalf("unexpected department %q", p.Metadata.Department)
	}
	if p.Qualifications != nil {
		t.Fatalf("civilian posting should carry no qualification gate")
	}
}

func TestNormalizeMOSRecord(t *testing.T) {
	batches := []RawRecords{{
		Source: SourceMOS,
		Records: []map[string]any{
			{
				"code":        "11B",
				"title":       "Infantryman",
				"careerField": "Infantry",
				"idealTraits": []any{"Leadership", "Physical Fitness"},
				"asvab":       map[string]any{"CO": float64(87)},
				"bonus":       float64(20000),
				"physical":    "Very High",
			},
		},
	}}

	positions, err := Normalize(batches)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	p := positions.Items[0]
	if p.ID != "mos_11B" {
		t.Fatalf("expected prefixed id, got %q", p.ID)
	}
	if p.Title != "11B - Infantryman" {
		t.Fatalf("unexpected title %q", p.Title)
	}
	if p.Company != "US Army" {
		t.Fatalf("unexpected company %q", p.Company)
	}
	if p.WorkMode != WorkModeOnsite {
		t.Fatalf("mos positions are onsite, got %q", p.WorkMode)
	}
	if p.Qualifications == nil {
		t.Fatal("expected qualification requirements")
	}
	if p.Qualifications.Aptitude["CO"] != 87 {
		t.Fatalf("unexpected aptitude %v", p.Qualifications.Aptitude)
	}
	if p.Qualifications.PhysicalDemand != "Very High" {
		t.Fatalf("unexpected physical demand %q", p.Qualifications.PhysicalDemand)
	}
	if p.Metadata.SigningBonus != 20000 {
		t.Fatalf("unexpected signing bonus %d", p.Metadata.SigningBonus)
	}
}

func TestNormalizeMOSLongFieldNamesWin(t *testing.T) {
	batches := []RawRecords{{
		Source: SourceMOS,
		Records: []map[string]any{
			{
				"code":              "12P",
				"title":             "Prime Power Production Specialist",
				"asvab":             map[string]any{"EL": float64(90)},
				"asvabRequirements": map[string]any{"EL": float64(107), "ST": float64(107)},
				"clearance":         "",
				"clearanceRequired": "Secret",
				"signingBonus":      float64(20000),
			},
		},
	}}

	positions, err := Normalize(batches)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	q := positions.Items[0].Qualifications
	if len(q.Aptitude) != 2 || q.Aptitude["EL"] != 107 {
		t.Fatalf("asvabRequirements should win over asvab: %v", q.Aptitude)
	}
	if q.Clearance != "Secret" {
		t.Fatalf("unexpected clearance %q", q.Clearance)
	}
	if positions.Items[0].Metadata.SigningBonus != 20000 {
		t.Fatalf("unexpected bonus %d", positions.Items[0].Metadata.SigningBonus)
	}
}

func TestNormalizeSkipsRecordsWithoutNaturalKey(t *testing.T) {
	batches := []RawRecords{
		{Source: SourceJacobs, Records: []map[string]any{{"title": "No ID"}}},
		{Source: SourceMOS, Records: []map[string]any{{"title": "No Code"}}},
	}

	positions, err := Normalize(batches)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if positions.Len() != 0 {
		t.Fatalf("expected keyless records to be dropped, got %d", positions.Len())
	}
}

func TestNormalizeDeduplicatesRepeatedIDs(t *testing.T) {
	batches := []RawRecords{{
		Source: SourceMOS,
		Records: []map[string]any{
			{"code": "11B", "title": "Infantryman"},
			{"code": "11B", "title": "Duplicate"},
		},
	}}

	positions, err := Normalize(batches)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if positions.Len() != 1 {
		t.Fatalf("expected duplicate id to collapse, got %d", positions.Len())
	}
	if positions.Items[0].Title != "11B - Infantryman" {
		t.Fatalf("first occurrence should win, got %q", positions.Items[0].Title)
	}
}

func TestNormalizeSameNaturalKeyAcrossSources(t *testing.T) {
	batches := []RawRecords{
		{Source: SourceJacobs, Records: []map[string]any{{"jobId": "11B", "title": "Coincidence"}}},
		{Source: SourceMOS, Records: []map[string]any{{"code": "11B", "title": "Infantryman"}}},
	}

	positions, err := Normalize(batches)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if positions.Len() != 2 {
		t.Fatalf("source prefixes should disambiguate, got %d positions", positions.Len())
	}
}

func TestNormalizeUnknownSourceFails(t *testing.T) {
	_, err := Normalize([]RawRecords{{Source: "linkedin", Records: []map[string]any{{"id": "1"}}}})
	if err == nil {
		t.Fatal("expected error for unknown source")
	}
}

func TestParseWorkMode(t *testing.T) {
	cases := map[string]WorkMode{
		"remote":        WorkModeRemote,
		"Fully Remote":  WorkModeRemote,
		"HYBRID":        WorkModeHybrid,
		"onsite":        WorkModeOnsite,
		"Not specified": WorkModeOnsite,
		"":              WorkModeOnsite,
	}
	for input, want := range cases {
		if got := ParseWorkMode(input); got != want {
			t.Fatalf("ParseWorkMode(%q) = %q, want %q", input, got, want)
		}
	}
}
