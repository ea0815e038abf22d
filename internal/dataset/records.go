package dataset

import "math"

// YieldRecord is one parcel's harvest outcome for one crop in one year.
// Field order is the column order of the written parquet files.
type YieldRecord struct {
	CropName    string   `parquet:"crop_name"`
	LandID      string   `parquet:"land_id"`
	FipsCD      string   `parquet:"fips_cd"`
	Yield       *float64 `parquet:"yield,optional"`
	YieldUnits  string   `parquet:"yield_units"`
	LandArea    float64  `parquet:"land_area"`
	PlantedArea float64  `parquet:"planted_area"`
	AreaUnits   string   `parquet:"area_units"`
}

// AbandonmentRecord is one county/crop/year's abandonment statistics.
type AbandonmentRecord struct {
	CropName           string  `parquet:"crop_name"`
	FipsCD             string  `parquet:"fips_cd"`
	AbandonedArea      float64 `parquet:"abandoned_area"`
	AbandonmentPercent float64 `parquet:"abandonment_percent"`
}

// Combo identifies one (year, county, crop) combination. It is the natural
// key of an abandonment record and, together with a land ID, the natural key
// of a yield record.
type Combo struct {
	Year     int    `yaml:"year"`
	FipsCD   string `yaml:"fips_cd"`
	CropName string `yaml:"crop_name"`
}

// YieldPopulation groups yield records by harvest year. Callers iterate it
// through the configured year list, never by map order, so a run is
// reproducible.
type YieldPopulation map[int][]YieldRecord

// AbandonmentPopulation groups abandonment records by harvest year.
type AbandonmentPopulation map[int][]AbandonmentRecord

// Candidate is a (year, record) pair captured at synthesis time, before any
// corruption, for reuse by the duplicate-key rule.
type Candidate struct {
	Year   int
	Record YieldRecord
}

func (p YieldPopulation) Total() int {
	n := 0
	for _, rows := range p {
		n += len(rows)
	}
	return n
}

func (p AbandonmentPopulation) Total() int {
	n := 0
	for _, rows := range p {
		n += len(rows)
	}
	return n
}

// Round2 rounds to 2 decimal digits, the precision of every float the
// generator emits.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Float returns a pointer to v, for the nullable yield column.
func Float(v float64) *float64 {
	return &v
}
