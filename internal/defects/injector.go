package defects

import (
	"math/rand"

	"github.com/croplab/agrogen/internal/config"
	"github.com/croplab/agrogen/internal/dataset"
)

const (
	datasetYield       = "crop_yield"
	datasetAbandonment = "county_crop_abandonment"
)

// Injector perturbs the clean populations to hit the configured defect
// counts. Rules run in a fixed order on the shared per-year slices, so later
// rules see the effects of earlier ones. Every mutation is recorded in the
// report.
type Injector struct {
	cfg    *config.Config
	rand   *rand.Rand
	report *Report
}

func NewInjector(cfg *config.Config, r *rand.Rand) *Injector {
	return &Injector{cfg: cfg, rand: r, report: &Report{}}
}

// Report returns the ground truth accumulated so far.
func (in *Injector) Report() *Report {
	return in.report
}

// InjectYield applies the yield-dataset rules in order: null yields,
// negative yields, duplicate natural keys.
func (in *Injector) InjectYield(pop dataset.YieldPopulation, candidates []dataset.Candidate) {
	in.nullYields(pop)
	in.negativeYields(pop)
	in.duplicateYields(pop, candidates)
}

// InjectAbandonment applies the abandonment-dataset rules in order:
// over-100 percents, duplicate natural keys.
func (in *Injector) InjectAbandonment(pop dataset.AbandonmentPopulation) {
	in.overPercents(pop)
	in.duplicateAbandonments(pop)
}

// nullYields nulls the yield of NullYieldsPerYear distinct rows in every
// year. A draw that lands on a row this rule already nulled is redrawn;
// years with fewer rows than the target get every row nulled.
func (in *Injector) nullYields(pop dataset.YieldPopulation) {
	for _, year := range in.cfg.Years {
		rows := pop[year]
		if len(rows) == 0 {
			continue
		}

		eligible := 0
		for i := range rows {
			if rows[i].Yield != nil {
				eligible++
			}
		}

		target := in.cfg.Defects.NullYieldsPerYear
		if target > eligible {
			target = eligible
		}

		for nulled := 0; nulled < target; {
			idx := in.rand.Intn(len(rows))
			if rows[idx].Yield == nil {
				continue
			}
			rows[idx].Yield = nil
			nulled++
			in.report.Add(Entry{
				Rule:     RuleNullYield,
				Dataset:  datasetYield,
				Year:     year,
				FipsCD:   rows[idx].FipsCD,
				CropName: rows[idx].CropName,
				LandID:   rows[idx].LandID,
			})
		}
	}
}

// negativeYields overwrites yields with values from the configured negative
// range until NegativeYields rows are hit, cycling the years in order and
// drawing one row per visit. A draw that lands on an already-nulled or
// already-negative row contributes nothing and is not retried to a fixed
// point; the draw budget is twice the target, so the count is best-effort
// when groups are tiny.
func (in *Injector) negativeYields(pop dataset.YieldPopulation) {
	target := in.cfg.Defects.NegativeYields
	budget := target * 2

	made, draws := 0, 0
	for made < target && draws < budget {
		advanced := false
		for _, year := range in.cfg.Years {
			if made >= target || draws >= budget {
				break
			}
			rows := pop[year]
			if len(rows) == 0 {
				continue
			}
			advanced = true
			draws++

			idx := in.rand.Intn(len(rows))
			if rows[idx].Yield == nil || *rows[idx].Yield < 0 {
				continue
			}
			rows[idx].Yield = dataset.Float(dataset.Round2(in.uniform(in.cfg.Defects.NegativeYieldRange)))
			made++
			in.report.Add(Entry{
				Rule:     RuleNegativeYield,
				Dataset:  datasetYield,
				Year:     year,
				FipsCD:   rows[idx].FipsCD,
				CropName: rows[idx].CropName,
				LandID:   rows[idx].LandID,
			})
		}
		if !advanced {
			break
		}
	}
}

// duplicateYields appends YieldDuplicates cloned rows. Each clone comes from
// the pre-corruption candidate list, shares its source's natural key, and
// gets its yield and planted area perturbed by small multiplicative factors
// so it reads as a distinct measurement.
func (in *Injector) duplicateYields(pop dataset.YieldPopulation, candidates []dataset.Candidate) {
	if len(candidates) == 0 {
		return
	}

	for i := 0; i < in.cfg.Defects.YieldDuplicates; i++ {
		cand := candidates[in.rand.Intn(len(candidates))]

		dup := cand.Record
		if dup.Yield != nil {
			dup.Yield = dataset.Float(dataset.Round2(*dup.Yield * in.uniform(in.cfg.Defects.YieldDupFactor)))
		}
		dup.PlantedArea = dataset.Round2(dup.PlantedArea * in.uniform(in.cfg.Defects.PlantedDupFactor))

		pop[cand.Year] = append(pop[cand.Year], dup)
		in.report.Add(Entry{
			Rule:     RuleYieldDuplicate,
			Dataset:  datasetYield,
			Year:     cand.Year,
			FipsCD:   dup.FipsCD,
			CropName: dup.CropName,
			LandID:   dup.LandID,
		})
	}
}

// overPercents overwrites the abandonment percent of one random row in each
// of OverPercentYears sampled years with a value above 100.
func (in *Injector) overPercents(pop dataset.AbandonmentPopulation) {
	for _, year := range in.sampleYears(in.cfg.Defects.OverPercentYears) {
		rows := pop[year]
		if len(rows) == 0 {
			continue
		}

		idx := in.rand.Intn(len(rows))
		rows[idx].AbandonmentPercent = dataset.Round2(in.uniform(in.cfg.Defects.OverPercentRange))
		in.report.Add(Entry{
			Rule:     RuleOverPercent,
			Dataset:  datasetAbandonment,
			Year:     year,
			FipsCD:   rows[idx].FipsCD,
			CropName: rows[idx].CropName,
		})
	}
}

// duplicateAbandonments clones one random row in each of AbandonmentDupYears
// sampled years, perturbing the percent so the clone differs everywhere but
// its natural key.
func (in *Injector) duplicateAbandonments(pop dataset.AbandonmentPopulation) {
	for _, year := range in.sampleYears(in.cfg.Defects.AbandonmentDupYears) {
		rows := pop[year]
		if len(rows) == 0 {
			continue
		}

		dup := rows[in.rand.Intn(len(rows))]
		dup.AbandonmentPercent = dataset.Round2(dup.AbandonmentPercent * in.uniform(in.cfg.Defects.AbandonmentDupFactor))

		pop[year] = append(pop[year], dup)
		in.report.Add(Entry{
			Rule:     RuleAbandonmentDup,
			Dataset:  datasetAbandonment,
			Year:     year,
			FipsCD:   dup.FipsCD,
			CropName: dup.CropName,
		})
	}
}

// sampleYears draws n distinct configured years, or all of them when n
// exceeds the year count.
func (in *Injector) sampleYears(n int) []int {
	years := in.cfg.Years
	if n > len(years) {
		n = len(years)
	}

	sampled := make([]int, 0, n)
	for _, i := range in.rand.Perm(len(years))[:n] {
		sampled = append(sampled, years[i])
	}
	return sampled
}

func (in *Injector) uniform(r config.Range) float64 {
	return r.Min + in.rand.Float64()*(r.Max-r.Min)
}
