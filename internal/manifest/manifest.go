// Package manifest persists the ground truth of a generation run: which
// defects were injected where, and how many, so a downstream data-quality
// pipeline can be scored against exact expectations.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/croplab/agrogen/internal/dataset"
	"github.com/croplab/agrogen/internal/defects"
)

// FileName is the manifest file written at the data root, next to the
// dataset directories.
const FileName = "ground_truth.yaml"

type Manifest struct {
	Seed        int64                `yaml:"seed"`
	YieldRows   map[int]int          `yaml:"yield_rows_per_year"`
	AbandonRows map[int]int          `yaml:"abandonment_rows_per_year"`
	Missing     dataset.Combo        `yaml:"missing_abandonment"`
	Counts      map[defects.Rule]int `yaml:"defect_counts"`
	Defects     []defects.Entry      `yaml:"defects"`
}

// Build assembles the manifest from the injector report and the final
// populations. It contains no timestamps, so reruns with the same seed
// produce an identical file.
func Build(seed int64, report *defects.Report, yield dataset.YieldPopulation, abandonment dataset.AbandonmentPopulation) *Manifest {
	m := &Manifest{
		Seed:        seed,
		YieldRows:   make(map[int]int, len(yield)),
		AbandonRows: make(map[int]int, len(abandonment)),
		Counts:      report.Counts(),
		Defects:     report.Entries,
	}

	for year, rows := range yield {
		m.YieldRows[year] = len(rows)
	}
	for year, rows := range abandonment {
		m.AbandonRows[year] = len(rows)
	}

	return m
}

// Write marshals the manifest to dir/ground_truth.yaml, overwriting any
// previous run's file.
func (m *Manifest) Write(dir string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}

// Load reads a manifest written by a previous run.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return &m, nil
}
