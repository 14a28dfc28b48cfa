package catalog

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Source tags for the supported raw record kinds. Normalized position ids are
// prefixed with the tag so the ranker never needs cross-source identity
// resolution.
const (
	SourceJacobs = "jacobs"
	SourceMOS    = "mos"
)

// RawRecords is a batch of loosely-shaped records from one source kind, as
// produced by an external loader or scraper.
type RawRecords struct {
	Source  string
	Records []map[string]any
}

// jacobsJob mirrors the scraped civilian posting shape.
type jacobsJob struct {
	JobID      string   `mapstructure:"jobId"`
	Title      string   `mapstructure:"title"`
	Location   string   `mapstructure:"location"`
	WorkMode   string   `mapstructure:"workMode"`
	Skills     []string `mapstructure:"skills"`
	Category   string   `mapstructure:"category"`
	Department string   `mapstructure:"department"`
	SalaryMin  int      `mapstructure:"salaryMin"`
}

// mosRecord mirrors the military occupational-code shape. Several fields have
// two historical spellings in the data; both are decoded and the longer form
// wins when present.
type mosRecord struct {
	Code               string             `mapstructure:"code"`
	Title              string             `mapstructure:"title"`
	CareerField        string             `mapstructure:"careerField"`
	IdealTraits        []string           `mapstructure:"idealTraits"`
	ASVAB              map[string]float64 `mapstructure:"asvab"`
	ASVABRequirements  map[string]float64 `mapstructure:"asvabRequirements"`
	Bonus              int                `mapstructure:"bonus"`
	SigningBonus       int                `mapstructure:"signingBonus"`
	Clearance          string             `mapstructure:"clearance"`
	ClearanceRequired  string             `mapstructure:"clearanceRequired"`
	Physical           string             `mapstructure:"physical"`
	PhysicalDemand     string             `mapstructure:"physicalDemand"`
	Rank               string             `mapstructure:"rank"`
	CivilianEquivalent string             `mapstructure:"civilianEquivalent"`
}

// Normalize converts source-tagged raw record batches into the single Position
// shape. Unknown or absent fields degrade to empty values; records without a
// usable natural key are dropped; repeated ids keep the first occurrence so
// every id is unique within the returned catalog. An unrecognized source tag
// is a caller error.
func Normalize(batches []RawRecords) (*Positions, error) {
	positions := &Positions{}
	seen := make(map[string]bool)

	for _, batch := range batches {
		for _, record := range batch.Records {
			var position *Position
			var err error

			switch batch.Source {
			case SourceJacobs:
				position, err = normalizeJacobs(record)
			case SourceMOS:
				position, err = normalizeMOS(record)
			default:
				return nil, fmt.Errorf("unknown position source %q", batch.Source)
			}

			if err != nil {
				return nil, fmt.Errorf("normalizing %s record: %w", batch.Source, err)
			}
			if position == nil || seen[position.ID] {
				continue
			}

			seen[position.ID] = true
			positions.Items = append(positions.Items, position)
		}
	}

	return positions, nil
}

func normalizeJacobs(record map[string]any) (*Position, error) {
	var job jacobsJob
	if err := decodeRecord(record, &job); err != nil {
		return nil, err
	}
	if job.JobID == "" {
		return nil, nil
	}

	return &Position{
		ID:             fmt.Sprintf("%s_%s", SourceJacobs, job.JobID),
		Source:         SourceJacobs,
		Title:          job.Title,
		Company:        "Jacobs",
		Location:       job.Location,
		WorkMode:       ParseWorkMode(job.WorkMode),
		RequiredSkills: job.Skills,
		Compensation:   job.SalaryMin,
		Metadata: Metadata{
			Category:   job.Category,
			Department: job.Department,
		},
	}, nil
}

func normalizeMOS(record map[string]any) (*Position, error) {
	var mos mosRecord
	if err := decodeRecord(record, &mos); err != nil {
		return nil, err
	}
	if mos.Code == "" {
		return nil, nil
	}

	aptitude := mos.ASVABRequirements
	if len(aptitude) == 0 {
		aptitude = mos.ASVAB
	}
	clearance := firstNonEmpty(mos.ClearanceRequired, mos.Clearance)
	physical := firstNonEmpty(mos.PhysicalDemand, mos.Physical)
	bonus := mos.SigningBonus
	if bonus == 0 {
		bonus = mos.Bonus
	}

	var qualifications *QualificationRequirements
	if len(aptitude) > 0 || clearance != "" || physical != "" {
		qualifications = &QualificationRequirements{
			Aptitude:       aptitude,
			Clearance:      clearance,
			PhysicalDemand: physical,
		}
	}

	return &Position{
		ID:             fmt.Sprintf("%s_%s", SourceMOS, mos.Code),
		Source:         SourceMOS,
		Title:          fmt.Sprintf("%s - %s", mos.Code, mos.Title),
		Company:        "US Army",
		WorkMode:       WorkModeOnsite,
		RequiredSkills: mos.IdealTraits,
		Qualifications: qualifications,
		Metadata: Metadata{
			CareerField:        mos.CareerField,
			Rank:               mos.Rank,
			SigningBonus:       bonus,
			CivilianEquivalent: mos.CivilianEquivalent,
		},
	}, nil
}

// decodeRecord decodes one loosely-typed record with weak type coercion so
// numeric fields survive the float64 shape JSON gives them.
func decodeRecord(record map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(record)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
