package synth

import (
	"math/rand"

	"github.com/croplab/agrogen/internal/config"
	"github.com/croplab/agrogen/internal/dataset"
)

const (
	yieldUnits = "bushels"
	areaUnits  = "acres"
)

// Synthesizer builds the clean (pre-corruption) record populations. All
// randomness comes from the single injected source; the synthesizer never
// creates its own.
type Synthesizer struct {
	cfg  *config.Config
	rand *rand.Rand
}

func New(cfg *config.Config, r *rand.Rand) *Synthesizer {
	return &Synthesizer{cfg: cfg, rand: r}
}

// GenerateYield synthesizes the yield population for every
// (year x county x crop) combination in configured order, drawing a parcel
// count per combination and per-parcel areas and yields. It also returns the
// flat candidate list the duplicate-key rule later draws from; candidates are
// value copies taken before any corruption.
func (s *Synthesizer) GenerateYield() (dataset.YieldPopulation, []dataset.Candidate) {
	pop := make(dataset.YieldPopulation, len(s.cfg.Years))
	var candidates []dataset.Candidate

	for _, year := range s.cfg.Years {
		pop[year] = []dataset.YieldRecord{}
		for _, fips := range s.cfg.FipsCodes {
			for _, crop := range s.cfg.Crops {
				parcels := s.intBetween(s.cfg.ParcelsPerCombo)
				yieldRange := s.cfg.YieldRanges[crop]

				for i := 0; i < parcels; i++ {
					landArea := dataset.Round2(s.uniform(s.cfg.LandArea))
					plantedArea := dataset.Round2(landArea * s.uniform(s.cfg.PlantedFraction))
					yieldVal := dataset.Round2(s.uniform(yieldRange))

					rec := dataset.YieldRecord{
						CropName:    crop,
						LandID:      NewParcelID(s.rand),
						FipsCD:      fips,
						Yield:       dataset.Float(yieldVal),
						YieldUnits:  yieldUnits,
						LandArea:    landArea,
						PlantedArea: plantedArea,
						AreaUnits:   areaUnits,
					}

					pop[year] = append(pop[year], rec)
					candidates = append(candidates, dataset.Candidate{Year: year, Record: rec})
				}
			}
		}
	}

	return pop, candidates
}

// GenerateAbandonment synthesizes one abandonment record per
// (year x county x crop) combination except a single combination drawn up
// front and skipped entirely. The skipped combination is returned so the
// caller can log it and record it in the ground truth; it is the one
// referential-integrity gap in the output.
func (s *Synthesizer) GenerateAbandonment() (dataset.AbandonmentPopulation, dataset.Combo) {
	if len(s.cfg.Years) == 0 || len(s.cfg.FipsCodes) == 0 || len(s.cfg.Crops) == 0 {
		return dataset.AbandonmentPopulation{}, dataset.Combo{}
	}

	missing := dataset.Combo{
		Year:     s.choiceInt(s.cfg.Years),
		FipsCD:   s.choiceString(s.cfg.FipsCodes),
		CropName: s.choiceString(s.cfg.Crops),
	}

	pop := make(dataset.AbandonmentPopulation, len(s.cfg.Years))

	for _, year := range s.cfg.Years {
		pop[year] = []dataset.AbandonmentRecord{}
		for _, fips := range s.cfg.FipsCodes {
			for _, crop := range s.cfg.Crops {
				if year == missing.Year && fips == missing.FipsCD && crop == missing.CropName {
					continue
				}

				pct := dataset.Round2(s.uniform(s.cfg.AbandonmentRanges[crop]))
				baseline := s.uniform(s.cfg.CountyPlantedArea)

				pop[year] = append(pop[year], dataset.AbandonmentRecord{
					CropName:           crop,
					FipsCD:             fips,
					AbandonedArea:      dataset.Round2(baseline * (pct / 100)),
					AbandonmentPercent: pct,
				})
			}
		}
	}

	return pop, missing
}

func (s *Synthesizer) uniform(r config.Range) float64 {
	return r.Min + s.rand.Float64()*(r.Max-r.Min)
}

func (s *Synthesizer) intBetween(r config.IntRange) int {
	return r.Min + s.rand.Intn(r.Max-r.Min+1)
}

func (s *Synthesizer) choiceInt(vs []int) int {
	return vs[s.rand.Intn(len(vs))]
}

func (s *Synthesizer) choiceString(vs []string) string {
	return vs[s.rand.Intn(len(vs))]
}
