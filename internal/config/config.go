package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Seed              int64            `json:"seed" mapstructure:"seed"`
	DataDir           string           `json:"data_dir" mapstructure:"data_dir"`
	Years             []int            `json:"years" mapstructure:"years"`
	Crops             []string         `json:"crops" mapstructure:"crops"`
	FipsCodes         []string         `json:"fips_codes" mapstructure:"fips_codes"`
	ParcelsPerCombo   IntRange         `json:"parcels_per_combo" mapstructure:"parcels_per_combo"`
	LandArea          Range            `json:"land_area" mapstructure:"land_area"`
	PlantedFraction   Range            `json:"planted_fraction" mapstructure:"planted_fraction"`
	YieldRanges       map[string]Range `json:"yield_ranges" mapstructure:"yield_ranges"`
	AbandonmentRanges map[string]Range `json:"abandonment_ranges" mapstructure:"abandonment_ranges"`
	CountyPlantedArea Range            `json:"county_planted_area" mapstructure:"county_planted_area"`
	Defects           Defects          `json:"defects" mapstructure:"defects"`
}

// Range is an inclusive range for uniform float draws.
type Range struct {
	Min float64 `json:"min" mapstructure:"min"`
	Max float64 `json:"max" mapstructure:"max"`
}

// IntRange is an inclusive range for integer draws.
type IntRange struct {
	Min int `json:"min" mapstructure:"min"`
	Max int `json:"max" mapstructure:"max"`
}

// Defects holds the target counts and sampling ranges for every corruption
// rule the injector applies.
type Defects struct {
	NullYieldsPerYear    int   `json:"null_yields_per_year" mapstructure:"null_yields_per_year"`
	NegativeYields       int   `json:"negative_yields" mapstructure:"negative_yields"`
	NegativeYieldRange   Range `json:"negative_yield_range" mapstructure:"negative_yield_range"`
	YieldDuplicates      int   `json:"yield_duplicates" mapstructure:"yield_duplicates"`
	YieldDupFactor       Range `json:"yield_dup_factor" mapstructure:"yield_dup_factor"`
	PlantedDupFactor     Range `json:"planted_dup_factor" mapstructure:"planted_dup_factor"`
	OverPercentYears     int   `json:"over_percent_years" mapstructure:"over_percent_years"`
	OverPercentRange     Range `json:"over_percent_range" mapstructure:"over_percent_range"`
	AbandonmentDupYears  int   `json:"abandonment_dup_years" mapstructure:"abandonment_dup_years"`
	AbandonmentDupFactor Range `json:"abandonment_dup_factor" mapstructure:"abandonment_dup_factor"`
}

// Default returns the built-in generation profile: 3 years x 10 counties x
// 3 crops with realistic per-crop yield and abandonment ranges.
func Default() *Config {
	fips := make([]string, 10)
	for i := range fips {
		fips[i] = fmt.Sprintf("%05d", 1001+i)
	}

	return &Config{
		Seed:            42,
		DataDir:         "data",
		Years:           []int{2023, 2024, 2025},
		Crops:           []string{"corn", "soybeans", "wheat"},
		FipsCodes:       fips,
		ParcelsPerCombo: IntRange{Min: 10, Max: 15},
		LandArea:        Range{Min: 80, Max: 500},
		PlantedFraction: Range{Min: 0.70, Max: 0.95},
		YieldRanges: map[string]Range{
			"corn":     {Min: 150, Max: 220},
			"soybeans": {Min: 40, Max: 65},
			"wheat":    {Min: 45, Max: 75},
		},
		AbandonmentRanges: map[string]Range{
			"corn":     {Min: 1, Max: 8},
			"soybeans": {Min: 2, Max: 10},
			"wheat":    {Min: 3, Max: 12},
		},
		CountyPlantedArea: Range{Min: 5000, Max: 20000},
		Defects: Defects{
			NullYieldsPerYear:    2,
			NegativeYields:       4,
			NegativeYieldRange:   Range{Min: -50, Max: -10},
			YieldDuplicates:      3,
			YieldDupFactor:       Range{Min: 0.9, Max: 1.1},
			PlantedDupFactor:     Range{Min: 0.95, Max: 1.05},
			OverPercentYears:     2,
			OverPercentRange:     Range{Min: 105, Max: 150},
			AbandonmentDupYears:  2,
			AbandonmentDupFactor: Range{Min: 0.8, Max: 1.2},
		},
	}
}

// Load builds the effective config: built-in defaults overlaid with whatever
// viper picked up from agrogen.config.json and the environment.
func Load() (*Config, error) {
	cfg := Default()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	return cfg, nil
}

// Validate checks that every configured crop has sampling ranges and that all
// ranges are ordered. Empty domain lists are allowed and simply produce empty
// datasets.
func (c *Config) Validate() error {
	for _, crop := range c.Crops {
		if _, ok := c.YieldRanges[crop]; !ok {
			return fmt.Errorf("no yield range configured for crop %q", crop)
		}
		if _, ok := c.AbandonmentRanges[crop]; !ok {
			return fmt.Errorf("no abandonment range configured for crop %q", crop)
		}
	}

	named := map[string]Range{
		"land_area":           c.LandArea,
		"planted_fraction":    c.PlantedFraction,
		"county_planted_area": c.CountyPlantedArea,
	}
	for name, r := range named {
		if r.Min > r.Max {
			return fmt.Errorf("invalid range %s: min %v > max %v", name, r.Min, r.Max)
		}
	}

	if c.ParcelsPerCombo.Min > c.ParcelsPerCombo.Max {
		return fmt.Errorf("invalid parcels_per_combo range: min %d > max %d",
			c.ParcelsPerCombo.Min, c.ParcelsPerCombo.Max)
	}

	return nil
}
