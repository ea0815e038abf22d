package defects

// Rule names one corruption rule. The values double as the keys of the
// ground-truth manifest, so a downstream pipeline can assert exact counts.
type Rule string

const (
	RuleNullYield          Rule = "null_yield"
	RuleNegativeYield      Rule = "negative_yield"
	RuleYieldDuplicate     Rule = "yield_duplicate_key"
	RuleOverPercent        Rule = "abandonment_percent_over_100"
	RuleAbandonmentDup     Rule = "abandonment_duplicate_key"
	RuleMissingAbandonment Rule = "missing_abandonment_record"
)

// Entry records one injected defect and the natural key it landed on.
type Entry struct {
	Rule     Rule   `yaml:"rule"`
	Dataset  string `yaml:"dataset"`
	Year     int    `yaml:"year"`
	FipsCD   string `yaml:"fips_cd"`
	CropName string `yaml:"crop_name"`
	LandID   string `yaml:"land_id,omitempty"`
}

// Report is the ground truth of everything the injector did, in injection
// order.
type Report struct {
	Entries []Entry
}

func (r *Report) Add(e Entry) {
	r.Entries = append(r.Entries, e)
}

// Count returns how many defects a rule injected.
func (r *Report) Count(rule Rule) int {
	n := 0
	for _, e := range r.Entries {
		if e.Rule == rule {
			n++
		}
	}
	return n
}

// Counts returns the per-rule defect totals.
func (r *Report) Counts() map[Rule]int {
	counts := make(map[Rule]int)
	for _, e := range r.Entries {
		counts[e.Rule]++
	}
	return counts
}
