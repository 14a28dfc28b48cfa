package match

import (
	"math"
	"strings"

	"github.com/vetmatch/vetmatch/internal/catalog"
	"github.com/vetmatch/vetmatch/internal/profile"
)

// scorePreference computes the preference-alignment dimension. Absence of a
// stated preference is neutral, never a penalty; a remote-only candidate
// against a non-remote position is an explicit mismatch and scores zero.
func scorePreference(cfg *Config, prefs *profile.Preferences, position *catalog.Position) int {
	if prefs == nil || (len(prefs.Locations) == 0 && !prefs.RemoteOnly && prefs.MinSalary == 0) {
		return cfg.Scores.NeutralPreference
	}

	if prefs.RemoteOnly && position.WorkMode != catalog.WorkModeRemote {
		return 0
	}

	var score int
	switch {
	case locationMatches(prefs.Locations, position.Location):
		score = 100
	case position.WorkMode == catalog.WorkModeRemote:
		// Location is moot for remote work.
		score = cfg.Scores.RemoteLocation
	case len(prefs.Locations) > 0:
		score = cfg.Scores.UnmatchedLocation
	default:
		score = cfg.Scores.NeutralPreference
	}

	// Salary is a soft signal: scale down proportionally when the position
	// pays under the candidate's floor, but never below the configured floor
	// score. Positions without a comparable figure are left alone.
	if prefs.MinSalary > 0 && position.Compensation > 0 && position.Compensation < prefs.MinSalary {
		ratio := float64(position.Compensation) / float64(prefs.MinSalary)
		score = int(math.Round(float64(score) * ratio))
		if score < cfg.Scores.SalaryFloor {
			score = cfg.Scores.SalaryFloor
		}
	}

	return clampScore(score)
}

// locationMatches reports whether any preferred location matches the position
// location, by exact or substring match in either direction, case-insensitive.
func locationMatches(preferred []string, location string) bool {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		return false
	}
	for _, want := range preferred {
		w := strings.ToLower(strings.TrimSpace(want))
		if w == "" {
			continue
		}
		if strings.Contains(loc, w) || strings.Contains(w, loc) {
			return true
		}
	}
	return false
}
