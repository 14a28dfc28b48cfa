// Package profile holds the candidate side of a matching call: the parsed
// resume, optional assessment results, and stated preferences.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Experience is one resume work entry. Free text, never scored directly.
type Experience struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education is one resume education entry.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// ParsedResume is the structure an external resume parser supplies. Every
// field is optional; a minimal resume with just skills is valid input.
type ParsedResume struct {
	Name                 string       `json:"name,omitempty"`
	Email                string       `json:"email,omitempty"`
	Location             string       `json:"location,omitempty"`
	Summary              string       `json:"summary,omitempty"`
	Skills               []string     `json:"skills,omitempty"`
	Experience           []Experience `json:"experience,omitempty"`
	Education            []Education  `json:"education,omitempty"`
	TotalYearsExperience int          `json:"total_years_experience,omitempty"`
	Certifications       []string     `json:"certifications,omitempty"`
	Languages            []string     `json:"languages,omitempty"`
}

// AssessmentResult is one completed assessment with per-category scores.
type AssessmentResult struct {
	AssessmentID   string             `json:"assessment_id,omitempty"`
	TotalScore     float64            `json:"total_score,omitempty"`
	CategoryScores map[string]float64 `json:"category_scores,omitempty"`
}

// Preferences captures what the candidate wants, all optional.
type Preferences struct {
	Locations  []string `json:"locations,omitempty"`
	RemoteOnly bool     `json:"remote_only,omitempty"`
	MinSalary  int      `json:"min_salary,omitempty"`
	// Clearance is the level the candidate currently holds.
	Clearance string `json:"clearance,omitempty"`
}

// CandidateProfile is the full candidate input for one matching call.
type CandidateProfile struct {
	Resume            ParsedResume       `json:"resume"`
	AssessmentResults []AssessmentResult `json:"assessment_results,omitempty"`
	Preferences       *Preferences       `json:"preferences,omitempty"`
}

// NormalizeSkill lower-cases and trims a skill name so comparisons are
// case-insensitive. An empty result means the name was unusable.
func NormalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SkillSet returns the candidate's normalized skill set.
func (p *CandidateProfile) SkillSet() map[string]bool {
	set := make(map[string]bool, len(p.Resume.Skills))
	for _, skill := range p.Resume.Skills {
		if normalized := NormalizeSkill(skill); normalized != "" {
			set[normalized] = true
		}
	}
	return set
}

// CategoryScores merges category scores across all assessment results. Later
// results overwrite earlier ones, so a retaken assessment supersedes the old
// attempt.
func (p *CandidateProfile) CategoryScores() map[string]float64 {
	scores := make(map[string]float64)
	for _, result := range p.AssessmentResults {
		for category, score := range result.CategoryScores {
			scores[category] = score
		}
	}
	return scores
}

// ClearanceHeld returns the candidate's stated clearance level, empty when no
// preferences were supplied.
func (p *CandidateProfile) ClearanceHeld() string {
	if p.Preferences == nil {
		return ""
	}
	return p.Preferences.Clearance
}

// LoadFromFile reads a candidate profile from a JSON file. Missing fields
// degrade to zero values; only unreadable or malformed files fail.
func LoadFromFile(path string) (*CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var candidate CandidateProfile
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return &candidate, nil
}
