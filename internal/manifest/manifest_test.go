package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/croplab/agrogen/internal/dataset"
	"github.com/croplab/agrogen/internal/defects"
)

func sampleReport() *defects.Report {
	r := &defects.Report{}
	r.Add(defects.Entry{Rule: defects.RuleNullYield, Dataset: "crop_yield", Year: 2023, FipsCD: "01001", CropName: "corn", LandID: "PARCEL-00000001"})
	r.Add(defects.Entry{Rule: defects.RuleNullYield, Dataset: "crop_yield", Year: 2024, FipsCD: "01002", CropName: "wheat", LandID: "PARCEL-00000002"})
	r.Add(defects.Entry{Rule: defects.RuleMissingAbandonment, Dataset: "county_crop_abandonment", Year: 2024, FipsCD: "01003", CropName: "soybeans"})
	return r
}

func TestBuild(t *testing.T) {
	yield := dataset.YieldPopulation{2023: make([]dataset.YieldRecord, 5), 2024: make([]dataset.YieldRecord, 7)}
	abandonment := dataset.AbandonmentPopulation{2023: make([]dataset.AbandonmentRecord, 3)}

	m := Build(42, sampleReport(), yield, abandonment)

	assert.Equal(t, int64(42), m.Seed)
	assert.Equal(t, map[int]int{2023: 5, 2024: 7}, m.YieldRows)
	assert.Equal(t, map[int]int{2023: 3}, m.AbandonRows)
	assert.Equal(t, 2, m.Counts[defects.RuleNullYield])
	assert.Equal(t, 1, m.Counts[defects.RuleMissingAbandonment])
	assert.Len(t, m.Defects, 3)
}

func TestWriteLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	yield := dataset.YieldPopulation{2023: make([]dataset.YieldRecord, 2)}
	m := Build(7, sampleReport(), yield, dataset.AbandonmentPopulation{})
	require.NoError(t, m.Write(dir))

	got, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, m.Seed, got.Seed)
	assert.Equal(t, m.Counts, got.Counts)
	assert.Equal(t, m.Defects, got.Defects)
	assert.Equal(t, m.YieldRows, got.YieldRows)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}
