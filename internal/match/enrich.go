package match

import (
	"fmt"

	"github.com/vetmatch/vetmatch/internal/catalog"
)

// PositionDetails is the display metadata joined back onto a ranked match.
type PositionDetails struct {
	Company            string           `json:"company,omitempty"`
	Location           string           `json:"location,omitempty"`
	WorkMode           catalog.WorkMode `json:"work_mode"`
	Department         string           `json:"department,omitempty"`
	Category           string           `json:"category,omitempty"`
	CareerField        string           `json:"career_field,omitempty"`
	SigningBonus       int              `json:"signing_bonus,omitempty"`
	CivilianEquivalent string           `json:"civilian_equivalent,omitempty"`
	PhysicalDemand     string           `json:"physical_demand,omitempty"`
}

// EnrichedMatch pairs a MatchScore with the position's display metadata.
type EnrichedMatch struct {
	*MatchScore
	Position PositionDetails `json:"position"`
}

// Enrich joins ranked matches back to the catalog they were scored against.
// A match referencing a position id absent from the catalog violates the
// caller-side invariant and is reported as an error, never skipped silently.
func Enrich(matches []*MatchScore, positions *catalog.Positions) ([]*EnrichedMatch, error) {
	enriched := make([]*EnrichedMatch, 0, len(matches))
	for _, m := range matches {
		position := positions.FindByID(m.PositionID)
		if position == nil {
			return nil, fmt.Errorf("position %s not found in catalog", m.PositionID)
		}

		details := PositionDetails{
			Company:            position.Company,
			Location:           position.Location,
			WorkMode:           position.WorkMode,
			Department:         position.Metadata.Department,
			Category:           position.Metadata.Category,
			CareerField:        position.Metadata.CareerField,
			SigningBonus:       position.Metadata.SigningBonus,
			CivilianEquivalent: position.Metadata.CivilianEquivalent,
		}
		if position.Qualifications != nil {
			details.PhysicalDemand = position.Qualifications.PhysicalDemand
		}

		enriched = append(enriched, &EnrichedMatch{
			MatchScore: m,
			Position:   details,
		})
	}
	return enriched, nil
}
