// Package generator runs the full generation pipeline: synthesize clean
// populations, inject the configured defects, and flush everything to
// year-partitioned parquet plus a ground-truth manifest. The run is
// single-threaded and strictly sequential; given the same seed and config it
// is byte-reproducible.
package generator

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/croplab/agrogen/internal/config"
	"github.com/croplab/agrogen/internal/dataset"
	"github.com/croplab/agrogen/internal/defects"
	"github.com/croplab/agrogen/internal/manifest"
	"github.com/croplab/agrogen/internal/parquetio"
	"github.com/croplab/agrogen/internal/synth"
)

// Dataset directory names under the data root.
const (
	YieldDir       = "crop_yield"
	AbandonmentDir = "county_crop_abandonment"
)

// Summary reports what one run produced.
type Summary struct {
	YieldRows       int
	AbandonmentRows int
	Missing         dataset.Combo
	DefectCounts    map[defects.Rule]int
}

type Pipeline struct {
	cfg   *config.Config
	quiet bool // suppress per-defect output, used by tests
}

func New(cfg *config.Config) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// NewQuiet returns a pipeline that skips operator-facing output.
func NewQuiet(cfg *config.Config) *Pipeline {
	return &Pipeline{cfg: cfg, quiet: true}
}

// Run executes the whole pipeline in memory and flushes the result. The
// single seeded source created here is the only randomness in the run; every
// synthesis and injection step draws from it in a fixed order.
func (p *Pipeline) Run() (*Summary, error) {
	rng := rand.New(rand.NewSource(p.cfg.Seed))

	s := synth.New(p.cfg, rng)
	inj := defects.NewInjector(p.cfg, rng)

	yield, candidates := s.GenerateYield()
	inj.InjectYield(yield, candidates)

	abandonment, missing := s.GenerateAbandonment()
	if missing != (dataset.Combo{}) {
		inj.Report().Add(defects.Entry{
			Rule:     defects.RuleMissingAbandonment,
			Dataset:  AbandonmentDir,
			Year:     missing.Year,
			FipsCD:   missing.FipsCD,
			CropName: missing.CropName,
		})
		p.logf("  [quality] skipping abandonment record for year=%d fips=%s crop=%s",
			missing.Year, missing.FipsCD, missing.CropName)
	}
	inj.InjectAbandonment(abandonment)

	if err := p.flush(yield, abandonment, inj.Report()); err != nil {
		return nil, err
	}

	return &Summary{
		YieldRows:       yield.Total(),
		AbandonmentRows: abandonment.Total(),
		Missing:         missing,
		DefectCounts:    inj.Report().Counts(),
	}, nil
}

func (p *Pipeline) flush(yield dataset.YieldPopulation, abandonment dataset.AbandonmentPopulation, report *defects.Report) error {
	if err := os.MkdirAll(p.cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := parquetio.WriteDataset(filepath.Join(p.cfg.DataDir, YieldDir), yield); err != nil {
		return fmt.Errorf("failed to write crop yield dataset: %w", err)
	}
	if err := parquetio.WriteDataset(filepath.Join(p.cfg.DataDir, AbandonmentDir), abandonment); err != nil {
		return fmt.Errorf("failed to write abandonment dataset: %w", err)
	}

	m := manifest.Build(p.cfg.Seed, report, yield, abandonment)
	if err := m.Write(p.cfg.DataDir); err != nil {
		return err
	}

	return nil
}

func (p *Pipeline) logf(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	color.Yellow(format, args...)
}
