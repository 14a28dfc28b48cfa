package match

import (
	"fmt"
	"math"
	"strings"

	"github.com/vetmatch/vetmatch/internal/catalog"
	"github.com/vetmatch/vetmatch/internal/profile"
)

// Dimension names used as DimensionScores keys.
const (
	DimensionSkills        = "skills"
	DimensionQualification = "qualification"
	DimensionPreference    = "preference"
)

// Recommendation tiers derived from the overall score.
const (
	RecommendationExcellent = "excellent"
	RecommendationGood      = "good"
	RecommendationFair      = "fair"
	RecommendationPoor      = "poor"
)

// MatchScore is the ranked output for one position. Created fresh per call,
// never persisted by the engine.
type MatchScore struct {
	PositionID    string `json:"position_id"`
	PositionTitle string `json:"position_title"`

	OverallScore    int            `json:"overall_score"`
	DimensionScores map[string]int `json:"dimension_scores"`

	MatchedSkills         []string `json:"matched_skills"`
	MissingRequiredSkills []string `json:"missing_required_skills"`

	Recommendation string   `json:"recommendation"`
	Insights       []string `json:"insights,omitempty"`
}

// ScorePosition scores one candidate/position pair. Pure and deterministic:
// the result depends only on the arguments and the configuration.
func ScorePosition(cfg *Config, candidate *profile.CandidateProfile, position *catalog.Position) *MatchScore {
	skills := scoreSkills(cfg, candidate.SkillSet(), position)
	qualification := scoreQualification(cfg, candidate.CategoryScores(), candidate.ClearanceHeld(), position)
	preference := scorePreference(cfg, candidate.Preferences, position)

	weighted := cfg.Weights.Skills*float64(skills.Score) +
		cfg.Weights.Qualification*float64(qualification) +
		cfg.Weights.Preference*float64(preference)
	overall := clampScore(int(math.Round(weighted)))

	score := &MatchScore{
		PositionID:    position.ID,
		PositionTitle: position.Title,
		OverallScore:  overall,
		DimensionScores: map[string]int{
			DimensionSkills:        skills.Score,
			DimensionQualification: qualification,
			DimensionPreference:    preference,
		},
		MatchedSkills:         skills.MatchedSkills,
		MissingRequiredSkills: skills.MissingRequiredSkills,
		Recommendation:        recommendationFor(overall),
	}
	score.Insights = buildInsights(score)

	return score
}

func recommendationFor(overall int) string {
	switch {
	case overall >= 80:
		return RecommendationExcellent
	case overall >= 60:
		return RecommendationGood
	case overall >= 40:
		return RecommendationFair
	default:
		return RecommendationPoor
	}
}

// buildInsights produces short human-readable notes about the match.
func buildInsights(score *MatchScore) []string {
	insights := make([]string, 0, 3)

	if score.DimensionScores[DimensionSkills] >= 80 && len(score.MatchedSkills) > 0 {
		insights = append(insights, fmt.Sprintf("Strong skill match with %d key skills aligned", len(score.MatchedSkills)))
	} else if len(score.MissingRequiredSkills) > 0 {
		preview := score.MissingRequiredSkills
		if len(preview) > 3 {
			preview = preview[:3]
		}
		insights = append(insights, fmt.Sprintf("Consider training in: %s", strings.Join(preview, ", ")))
	}

	if score.DimensionScores[DimensionQualification] >= 80 {
		insights = append(insights, "Qualification requirements are met or exceeded")
	} else if score.DimensionScores[DimensionQualification] < 50 {
		insights = append(insights, "Additional qualifications may be needed for this role")
	}

	if score.DimensionScores[DimensionPreference] == 0 {
		insights = append(insights, "Conflicts with the stated work mode preference")
	}

	return insights
}
