package match

import (
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vetmatch/vetmatch/internal/catalog"
	"github.com/vetmatch/vetmatch/internal/profile"
)

// DefaultLimit is the page size used when the caller does not specify one.
const DefaultLimit = 10

// Options controls filtering and pagination of a ranking call. The zero value
// means: no minimum score, the default limit, no offset.
type Options struct {
	// MinScore drops positions whose overall score is below it.
	MinScore int
	// Limit is the maximum number of results. Zero selects DefaultLimit;
	// negative values are rejected.
	Limit int
	// Offset skips that many ranked results. Negative values are rejected.
	Offset int
}

func (o Options) validate() (Options, error) {
	if o.Limit < 0 {
		return o, fmt.Errorf("limit must not be negative, got %d", o.Limit)
	}
	if o.Offset < 0 {
		return o, fmt.Errorf("offset must not be negative, got %d", o.Offset)
	}
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	return o, nil
}

// Engine scores and ranks positions against one candidate per call. It holds
// no per-call state and is safe for concurrent use.
type Engine struct {
	cfg *Config
}

// NewEngine validates the configuration and returns a ready engine.
func NewEngine(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine configuration: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Rank scores every position, filters by minimum score, sorts, and paginates.
// The input catalog is never mutated. An empty catalog yields an empty result,
// not an error; a missing candidate profile is rejected.
func (e *Engine) Rank(candidate *profile.CandidateProfile, positions *catalog.Positions, opts Options) ([]*MatchScore, error) {
	if candidate == nil {
		return nil, fmt.Errorf("candidate profile is required")
	}

	opts, err := opts.validate()
	if err != nil {
		return nil, err
	}

	if positions == nil || positions.Len() == 0 {
		return []*MatchScore{}, nil
	}

	// Per-position scoring shares no mutable state, so it fans out freely;
	// each goroutine writes its own slot and determinism is restored at the
	// sort below.
	scores := make([]*MatchScore, positions.Len())

	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, position := range positions.Items {
		i, position := i, position
		group.Go(func() error {
			scores[i] = ScorePosition(e.cfg, candidate, position)
			return nil
		})
	}
	// Scoring never fails; Wait only joins the goroutines.
	_ = group.Wait()

	ranked := make([]*MatchScore, 0, len(scores))
	for _, score := range scores {
		if score.OverallScore >= opts.MinScore {
			ranked = append(ranked, score)
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].OverallScore != ranked[j].OverallScore {
			return ranked[i].OverallScore > ranked[j].OverallScore
		}
		si, sj := ranked[i].DimensionScores[DimensionSkills], ranked[j].DimensionScores[DimensionSkills]
		if si != sj {
			return si > sj
		}
		return ranked[i].PositionID < ranked[j].PositionID
	})

	if opts.Offset >= len(ranked) {
		return []*MatchScore{}, nil
	}
	end := opts.Offset + opts.Limit
	if end > len(ranked) {
		end = len(ranked)
	}

	return ranked[opts.Offset:end], nil
}
