package match

import (
	"math"
	"strings"

	"github.com/vetmatch/vetmatch/internal/catalog"
)

// scoreQualification computes the qualification-gate dimension. A position
// with no requirements scores 100 unconditionally. Aptitude categories the
// candidate has no score for are excluded from the denominator rather than
// counted as failures; when every comparison is unknown the aptitude part
// falls back to the neutral constant. A clearance shortfall zeroes the
// clearance sub-component and caps the whole dimension.
func scoreQualification(cfg *Config, categoryScores map[string]float64, clearanceHeld string, position *catalog.Position) int {
	reqs := position.Qualifications
	if reqs == nil || (len(reqs.Aptitude) == 0 && reqs.Clearance == "") {
		return 100
	}

	score := 100
	if len(reqs.Aptitude) > 0 {
		known := 0
		met := 0
		for category, threshold := range reqs.Aptitude {
			candidate, ok := resolveAptitude(cfg, categoryScores, category)
			if !ok {
				continue
			}
			known++
			if candidate >= threshold {
				met++
			}
		}

		if known == 0 {
			score = cfg.Scores.NeutralAptitude
		} else {
			score = int(math.Round(100 * float64(met) / float64(known)))
		}
	}

	if reqs.Clearance != "" && !cfg.clearanceSatisfied(clearanceHeld, reqs.Clearance) {
		if score > cfg.Scores.ClearanceCap {
			score = cfg.Scores.ClearanceCap
		}
	}

	return clampScore(score)
}

// resolveAptitude looks up the candidate's score for a named category. A
// direct score wins; otherwise a known composite is derived as the mean of
// the candidate's present member categories. Absent data stays unknown, never
// zero.
func resolveAptitude(cfg *Config, categoryScores map[string]float64, category string) (float64, bool) {
	if score, ok := lookupCategory(categoryScores, category); ok {
		return score, true
	}

	members, ok := cfg.Composites[strings.ToUpper(strings.TrimSpace(category))]
	if !ok {
		return 0, false
	}

	sum := 0.0
	present := 0
	for _, member := range members {
		if score, ok := lookupCategory(categoryScores, member); ok {
			sum += score
			present++
		}
	}
	if present == 0 {
		return 0, false
	}
	return sum / float64(present), true
}

func lookupCategory(categoryScores map[string]float64, category string) (float64, bool) {
	if score, ok := categoryScores[category]; ok {
		return score, true
	}
	upper := strings.ToUpper(strings.TrimSpace(category))
	if score, ok := categoryScores[upper]; ok {
		return score, true
	}
	return 0, false
}
