package parquetio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/croplab/agrogen/internal/dataset"
)

func sampleYield() dataset.YieldPopulation {
	return dataset.YieldPopulation{
		2023: {
			{CropName: "corn", LandID: "PARCEL-AAAA0001", FipsCD: "01001", Yield: dataset.Float(182.5), YieldUnits: "bushels", LandArea: 120.25, PlantedArea: 100.5, AreaUnits: "acres"},
			{CropName: "wheat", LandID: "PARCEL-AAAA0002", FipsCD: "01002", Yield: nil, YieldUnits: "bushels", LandArea: 300, PlantedArea: 250, AreaUnits: "acres"},
		},
		2024: {
			{CropName: "soybeans", LandID: "PARCEL-AAAA0003", FipsCD: "01003", Yield: dataset.Float(52.1), YieldUnits: "bushels", LandArea: 90, PlantedArea: 75, AreaUnits: "acres"},
		},
		2025: {}, // must produce no partition
	}
}

func TestWriteDatasetLayout(t *testing.T) {
	root := filepath.Join(t.TempDir(), "crop_yield")
	require.NoError(t, WriteDataset(root, sampleYield()))

	for _, year := range []int{2023, 2024} {
		path := filepath.Join(root, PartitionDir(year), DataFileName)
		_, err := os.Stat(path)
		assert.NoError(t, err, "partition file for %d should exist", year)
	}

	_, err := os.Stat(filepath.Join(root, PartitionDir(2025)))
	assert.True(t, os.IsNotExist(err), "empty year must not produce a partition directory")
}

func TestRoundTripRowCounts(t *testing.T) {
	pop := sampleYield()
	root := filepath.Join(t.TempDir(), "crop_yield")
	require.NoError(t, WriteDataset(root, pop))

	parts, err := Partitions(root)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	for _, part := range parts {
		rows, err := CountRows(part.Dir)
		require.NoError(t, err)
		assert.Equal(t, int64(len(pop[part.Year])), rows)
	}
}

func TestRoundTripRecords(t *testing.T) {
	pop := sampleYield()
	root := filepath.Join(t.TempDir(), "crop_yield")
	require.NoError(t, WriteDataset(root, pop))

	got, err := ReadPartition[dataset.YieldRecord](filepath.Join(root, PartitionDir(2023)))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, pop[2023], got, "records survive the round trip, null yield included")
	assert.Nil(t, got[1].Yield)
}

func TestWriteDatasetOverwrites(t *testing.T) {
	root := filepath.Join(t.TempDir(), "crop_yield")
	require.NoError(t, WriteDataset(root, sampleYield()))

	smaller := dataset.YieldPopulation{
		2023: sampleYield()[2023][:1],
	}
	require.NoError(t, WriteDataset(root, smaller))

	rows, err := CountRows(filepath.Join(root, PartitionDir(2023)))
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows, "rewrite replaces the partition, no append")
}

func TestPartitionsIgnoresStrays(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "harvest_year=2023"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "not_a_partition"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "harvest_year=zzz"), nil, 0644))

	parts, err := Partitions(root)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, 2023, parts[0].Year)
}

func TestPartitionsMissingRoot(t *testing.T) {
	_, err := Partitions(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
