package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoaderConfig points at the scraped catalog files. A missing file is not an
// error: the scraper for that source simply has not run yet.
type LoaderConfig struct {
	JacobsFile string `mapstructure:"jacobs-file"`
	MOSFile    string `mapstructure:"mos-file"`
}

// Load reads the configured source files and normalizes them into one catalog.
func Load(cfg *LoaderConfig) (*Positions, error) {
	if cfg == nil {
		return Normalize(nil)
	}

	batches := make([]RawRecords, 0, 2)

	jacobs, err := loadRecords(cfg.JacobsFile)
	if err != nil {
		return nil, fmt.Errorf("loading jacobs positions: %w", err)
	}
	if jacobs != nil {
		batches = append(batches, RawRecords{Source: SourceJacobs, Records: jacobs})
	}

	mos, err := loadRecords(cfg.MOSFile)
	if err != nil {
		return nil, fmt.Errorf("loading mos positions: %w", err)
	}
	if mos != nil {
		batches = append(batches, RawRecords{Source: SourceMOS, Records: mos})
	}

	return Normalize(batches)
}

func loadRecords(path string) ([]map[string]any, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}
