package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// WorkMode describes where a position is performed.
type WorkMode string

const (
	WorkModeRemote WorkMode = "remote"
	WorkModeHybrid WorkMode = "hybrid"
	WorkModeOnsite WorkMode = "onsite"
)

// ParseWorkMode maps free-form source values onto the closed WorkMode set.
// Anything unrecognized is treated as onsite, the conservative default.
func ParseWorkMode(s string) WorkMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "remote", "fully remote":
		return WorkModeRemote
	case "hybrid":
		return WorkModeHybrid
	default:
		return WorkModeOnsite
	}
}

// QualificationRequirements gates eligibility for a position. All fields are
// optional; a nil QualificationRequirements means the position has no gate.
type QualificationRequirements struct {
	// Aptitude maps a named category or composite (e.g. "CO", "EL") to the
	// minimum acceptable score.
	Aptitude map[string]float64 `json:"aptitude,omitempty"`
	// Clearance is the required security clearance level, empty when none.
	Clearance string `json:"clearance,omitempty"`
	// PhysicalDemand is a display tier (Low/Moderate/High/Very High). It is
	// carried through for enrichment and never scored.
	PhysicalDemand string `json:"physical_demand,omitempty"`
}

// Metadata carries display-only position attributes. The engine never scores
// any of these fields.
type Metadata struct {
	Category           string `json:"category,omitempty"`
	Department         string `json:"department,omitempty"`
	CareerField        string `json:"career_field,omitempty"`
	Rank               string `json:"rank,omitempty"`
	SigningBonus       int    `json:"signing_bonus,omitempty"`
	CivilianEquivalent string `json:"civilian_equivalent,omitempty"`
}

// Position is the normalized record every downstream component depends on,
// regardless of which source the record came from.
type Position struct {
	ID       string   `json:"id"`
	Source   string   `json:"source"`
	Title    string   `json:"title"`
	Company  string   `json:"company,omitempty"`
	Location string   `json:"location,omitempty"`
	WorkMode WorkMode `json:"work_mode"`

	RequiredSkills  []string `json:"required_skills,omitempty"`
	PreferredSkills []string `json:"preferred_skills,omitempty"`

	// Compensation is the annual figure used for the salary-floor preference
	// check. Zero means the source did not provide one.
	Compensation int `json:"compensation,omitempty"`

	Qualifications *QualificationRequirements `json:"qualifications,omitempty"`
	Metadata       Metadata                   `json:"metadata,omitempty"`
}

// Positions is the in-memory catalog handed to the engine for one call.
type Positions struct {
	Items []*Position
}

func (p *Positions) Len() int {
	return len(p.Items)
}

func (p *Positions) FindByID(id string) *Position {
	for _, position := range p.Items {
		if position.ID == id {
			return position
		}
	}
	return nil
}

func (p *Positions) IDs() []string {
	ids := make([]string, 0, len(p.Items))
	for _, position := range p.Items {
		ids = append(ids, position.ID)
	}
	return ids
}

// CountBySource returns position counts keyed by source tag.
func (p *Positions) CountBySource() map[string]int {
	counts := make(map[string]int)
	for _, position := range p.Items {
		counts[position.Source]++
	}
	return counts
}

// ReportByCareerField groups brief position summaries by career field (or
// category for civilian postings) for interactive reporting.
func (p *Positions) ReportByCareerField() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, position := range p.Items {
		key := position.Metadata.CareerField
		if key == "" {
			key = position.Metadata.Category
		}
		if key == "" {
			key = "uncategorized"
		}

		entry := map[string]string{
			"id":       position.ID,
			"title":    position.Title,
			"company":  position.Company,
			"location": position.Location,
		}
		if position.Metadata.SigningBonus > 0 {
			entry["signing_bonus"] = fmt.Sprintf("$%d", position.Metadata.SigningBonus)
		}
		report[key] = append(report[key], entry)
	}
	return report
}

// DumpToTmpFile writes the catalog to a temporary JSON file and returns its name.
func (p *Positions) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "positions_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}
