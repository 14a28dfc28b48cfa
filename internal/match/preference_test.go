package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vetmatch/vetmatch/internal/catalog"
	"github.com/vetmatch/vetmatch/internal/profile"
)

func TestScorePreferenceNoPreferencesIsNeutral(t *testing.T) {
	cfg := DefaultConfig()
	position := &catalog.Position{WorkMode: catalog.WorkModeOnsite}

	assert.Equal(t, cfg.Scores.NeutralPreference, scorePreference(cfg, nil, position))
	assert.Equal(t, cfg.Scores.NeutralPreference, scorePreference(cfg, &profile.Preferences{}, position))

	// Clearance alone is not a location/remote/salary signal.
	held := &profile.Preferences{Clearance: "Secret"}
	assert.Equal(t, cfg.Scores.NeutralPreference, scorePreference(cfg, held, position))
}

func TestScorePreferenceRemoteOnlyMismatchIsZero(t *testing.T) {
	cfg := DefaultConfig()
	prefs := &profile.Preferences{RemoteOnly: true, Locations: []string{"Austin, TX"}}

	for _, mode := range []catalog.WorkMode{catalog.WorkModeOnsite, catalog.WorkModeHybrid} {
		position := &catalog.Position{WorkMode: mode, Location: "Austin, TX"}
		assert.Equal(t, 0, scorePreference(cfg, prefs, position), "work mode %s", mode)
	}
}

func TestScorePreferenceLocationMatch(t *testing.T) {
	cfg := DefaultConfig()
	prefs := &profile.Preferences{Locations: []string{"austin"}}

	position := &catalog.Position{WorkMode: catalog.WorkModeOnsite, Location: "Austin, TX"}
	assert.Equal(t, 100, scorePreference(cfg, prefs, position))

	// Substring works in both directions.
	wide := &profile.Preferences{Locations: []string{"Greater Austin, TX Area"}}
	narrow := &catalog.Position{WorkMode: catalog.WorkModeOnsite, Location: "Austin, TX"}
	assert.Equal(t, 100, scorePreference(cfg, wide, narrow))
}

func TestScorePreferenceRemotePositionWithoutConflict(t *testing.T) {
	cfg := DefaultConfig()
	prefs := &profile.Preferences{Locations: []string{"Denver"}}
	position := &catalog.Position{WorkMode: catalog.WorkModeRemote, Location: "Anywhere, US"}

	assert.Equal(t, cfg.Scores.RemoteLocation, scorePreference(cfg, prefs, position))
}

func TestScorePreferenceUnmatchedLocationOnsite(t *testing.T) {
	cfg := DefaultConfig()
	prefs := &profile.Preferences{Locations: []string{"Denver"}}
	position := &catalog.Position{WorkMode: catalog.WorkModeOnsite, Location: "Tampa, FL"}

	assert.Equal(t, cfg.Scores.UnmatchedLocation, scorePreference(cfg, prefs, position))
}

func TestScorePreferenceSalaryBelowFloorScalesProportionally(t *testing.T) {
	cfg := DefaultConfig()
	prefs := &profile.Preferences{Locations: []string{"Austin"}, MinSalary: 100000}
	position := &catalog.Position{
		WorkMode:     catalog.WorkModeOnsite,
		Location:     "Austin, TX",
		Compensation: 50000,
	}

	// Location match 100 scaled by 50000/100000.
	assert.Equal(t, 50, scorePreference(cfg, prefs, position))
}

func TestScorePreferenceSalaryNeverBelowFloorScore(t *testing.T) {
	cfg := DefaultConfig()
	prefs := &profile.Preferences{Locations: []string{"Denver"}, MinSalary: 100000}
	position := &catalog.Position{
		WorkMode:     catalog.WorkModeOnsite,
		Location:     "Tampa, FL",
		Compensation: 10000,
	}

	// 40 * 0.1 = 4, floored at the configured minimum.
	assert.Equal(t, cfg.Scores.SalaryFloor, scorePreference(cfg, prefs, position))
}

func TestScorePreferenceSalaryIgnoredWithoutComparableFigure(t *testing.T) {
	cfg := DefaultConfig()
	prefs := &profile.Preferences{Locations: []string{"Austin"}, MinSalary: 100000}
	position := &catalog.Position{WorkMode: catalog.WorkModeOnsite, Location: "Austin, TX"}

	assert.Equal(t, 100, scorePreference(cfg, prefs, position))
}
