// Package match scores a candidate profile against a normalized position
// catalog and produces a deterministic ranked result.
package match

import (
	"fmt"
	"math"
	"strings"
)

// weightTolerance is the allowed drift when checking that weights sum to 1.0.
const weightTolerance = 0.001

// Weights defines the relative importance of each scoring dimension. All
// weights must sum to 1.0 within tolerance.
type Weights struct {
	Skills        float64 `mapstructure:"skills"`
	Qualification float64 `mapstructure:"qualification"`
	Preference    float64 `mapstructure:"preference"`
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Skills + w.Qualification + w.Preference
}

// Validate checks that weights sum to 1.0 and none are negative. Invalid
// weights are rejected, never clamped, so rank order stays reproducible
// across callers.
func (w Weights) Validate() error {
	if w.Skills < 0 || w.Qualification < 0 || w.Preference < 0 {
		return fmt.Errorf("weights must not be negative: %+v", w)
	}
	if diff := math.Abs(w.Sum() - 1.0); diff > weightTolerance {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	return nil
}

// Scores collects the fixed points of the scoring policy so they can be
// retuned without code changes.
type Scores struct {
	// NeutralSkills is used when a position declares no skills at all:
	// uninformative, not disqualifying.
	NeutralSkills int `mapstructure:"neutral-skills"`
	// NeutralAptitude is used when aptitude thresholds exist but every
	// comparison is unknown.
	NeutralAptitude int `mapstructure:"neutral-aptitude"`
	// NeutralPreference is used when the candidate stated no preferences.
	NeutralPreference int `mapstructure:"neutral-preference"`
	// RemoteLocation is the preference score for a remote position with no
	// location conflict.
	RemoteLocation int `mapstructure:"remote-location"`
	// UnmatchedLocation is the preference score when stated locations match
	// nothing on a non-remote position.
	UnmatchedLocation int `mapstructure:"unmatched-location"`
	// SalaryFloor is the lowest the salary check may drag a preference score.
	SalaryFloor int `mapstructure:"salary-floor"`
	// ClearanceCap caps the qualification dimension when the candidate's
	// clearance is below the requirement.
	ClearanceCap int `mapstructure:"clearance-cap"`
}

// Config is the full validated engine configuration.
type Config struct {
	Weights Weights `mapstructure:"weights"`
	Scores  Scores  `mapstructure:"scores"`

	// ClearanceLevels is the ordered ladder, weakest first.
	ClearanceLevels []string `mapstructure:"clearance-levels"`

	// Composites maps an aptitude composite name to the category scores it
	// averages, so positions can require composites the candidate never took
	// directly.
	Composites map[string][]string `mapstructure:"composites"`
}

// DefaultConfig returns the stock configuration: 0.5/0.3/0.2 weights, the
// standard clearance ladder, and the ASVAB composite table.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Skills:        0.5,
			Qualification: 0.3,
			Preference:    0.2,
		},
		Scores: Scores{
			NeutralSkills:     50,
			NeutralAptitude:   50,
			NeutralPreference: 70,
			RemoteLocation:    85,
			UnmatchedLocation: 40,
			SalaryFloor:       20,
			ClearanceCap:      40,
		},
		ClearanceLevels: []string{"None", "Public Trust", "Secret", "Top Secret", "TS/SCI"},
		Composites: map[string][]string{
			"AFQT": {"AR", "MK", "WK", "PC"},
			"CL":   {"WK", "PC", "AR", "MK"},
			"CO":   {"AR", "MK", "MC"},
			"EL":   {"GS", "AR", "MK", "EI"},
			"FA":   {"AR", "MK", "MC"},
			"GM":   {"MC", "GS", "EI"},
			"GT":   {"AR", "WK", "PC"},
			"MM":   {"AR", "MC", "EI"},
			"OF":   {"WK", "PC", "AR", "MC"},
			"SC":   {"AR", "WK", "PC", "MC"},
			"ST":   {"GS", "WK", "PC", "MK"},
		},
	}
}

// ApplyDefaults fills unset sections from DefaultConfig so a partial config
// file only has to name what it retunes. Explicit values are never touched.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()
	if c.Weights == (Weights{}) {
		c.Weights = defaults.Weights
	}
	if c.Scores == (Scores{}) {
		c.Scores = defaults.Scores
	}
	if len(c.ClearanceLevels) == 0 {
		c.ClearanceLevels = defaults.ClearanceLevels
	}
	if c.Composites == nil {
		c.Composites = defaults.Composites
	}
}

// Validate rejects configurations that would make scores non-reproducible or
// out of range.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is required")
	}
	if err := c.Weights.Validate(); err != nil {
		return err
	}

	for name, score := range map[string]int{
		"neutral-skills":     c.Scores.NeutralSkills,
		"neutral-aptitude":   c.Scores.NeutralAptitude,
		"neutral-preference": c.Scores.NeutralPreference,
		"remote-location":    c.Scores.RemoteLocation,
		"unmatched-location": c.Scores.UnmatchedLocation,
		"salary-floor":       c.Scores.SalaryFloor,
		"clearance-cap":      c.Scores.ClearanceCap,
	} {
		if score < 0 || score > 100 {
			return fmt.Errorf("score constant %s is %d, must be within [0,100]", name, score)
		}
	}

	if len(c.ClearanceLevels) == 0 {
		return fmt.Errorf("clearance ladder must not be empty")
	}
	seen := make(map[string]bool, len(c.ClearanceLevels))
	for _, level := range c.ClearanceLevels {
		key := normalizeClearance(level)
		if key == "" {
			return fmt.Errorf("clearance ladder contains an empty level")
		}
		if seen[key] {
			return fmt.Errorf("clearance ladder contains duplicate level %q", level)
		}
		seen[key] = true
	}

	return nil
}

func normalizeClearance(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}

// clearanceRank returns the ladder index of a level, or -1 when the level is
// not on the ladder. An empty candidate level ranks as the weakest rung.
func (c *Config) clearanceRank(level string) int {
	key := normalizeClearance(level)
	if key == "" {
		return 0
	}
	for i, l := range c.ClearanceLevels {
		if normalizeClearance(l) == key {
			return i
		}
	}
	return -1
}

// clearanceSatisfied reports whether the held level meets the requirement.
// Identical labels always satisfy; a requirement off the ladder is treated as
// unmeetable otherwise.
func (c *Config) clearanceSatisfied(held, required string) bool {
	if normalizeClearance(required) == "" {
		return true
	}
	if normalizeClearance(held) == normalizeClearance(required) {
		return true
	}

	requiredRank := c.clearanceRank(required)
	if requiredRank < 0 {
		return false
	}
	heldRank := c.clearanceRank(held)
	if heldRank < 0 {
		return false
	}
	return heldRank >= requiredRank
}
