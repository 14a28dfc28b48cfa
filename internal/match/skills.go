package match

import (
	"math"
	"sort"

	"github.com/vetmatch/vetmatch/internal/catalog"
	"github.com/vetmatch/vetmatch/internal/profile"
)

// skillsResult carries the skill dimension score plus the explainability
// detail that travels with every MatchScore.
type skillsResult struct {
	Score                 int
	MatchedSkills         []string
	MissingRequiredSkills []string
}

// scoreSkills computes the skill-overlap dimension. Required matches count
// double; a position with no declared skills scores the neutral constant.
// Matched and missing sets are always reported, sorted for determinism.
func scoreSkills(cfg *Config, candidateSkills map[string]bool, position *catalog.Position) skillsResult {
	required := normalizeSkillList(position.RequiredSkills)
	preferred := normalizeSkillList(position.PreferredSkills)
	// A skill listed as both required and preferred counts once, as required,
	// so matched and missing stay sets.
	preferred = excludeSkills(preferred, required)

	if len(required) == 0 && len(preferred) == 0 {
		return skillsResult{
			Score:                 cfg.Scores.NeutralSkills,
			MatchedSkills:         []string{},
			MissingRequiredSkills: []string{},
		}
	}

	matched := make([]string, 0, len(required)+len(preferred))
	missing := make([]string, 0, len(required))

	requiredMatched := 0
	for _, skill := range required {
		if candidateSkills[skill] {
			requiredMatched++
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	preferredMatched := 0
	for _, skill := range preferred {
		if candidateSkills[skill] {
			preferredMatched++
			matched = append(matched, skill)
		}
	}

	numerator := float64(2*requiredMatched + preferredMatched)
	denominator := math.Max(1, float64(2*len(required)+len(preferred)))
	score := clampScore(int(math.Round(100 * numerator / denominator)))

	sort.Strings(matched)
	sort.Strings(missing)

	return skillsResult{
		Score:                 score,
		MatchedSkills:         matched,
		MissingRequiredSkills: missing,
	}
}

// normalizeSkillList normalizes and dedupes a declared skill list, preserving
// a stable order.
func normalizeSkillList(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		normalized := profile.NormalizeSkill(skill)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}

// excludeSkills filters out of skills everything present in exclude.
func excludeSkills(skills, exclude []string) []string {
	excluded := make(map[string]bool, len(exclude))
	for _, skill := range exclude {
		excluded[skill] = true
	}
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		if !excluded[skill] {
			out = append(out, skill)
		}
	}
	return out
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
