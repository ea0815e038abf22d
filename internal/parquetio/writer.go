package parquetio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/parquet-go/parquet-go"
)

// DataFileName is the single parquet file written inside each partition
// directory.
const DataFileName = "data.parquet"

// PartitionKey is the hive-style partition key embedded in directory names.
const PartitionKey = "harvest_year"

// PartitionDir returns the directory name for one year's partition, e.g.
// "harvest_year=2023".
func PartitionDir(year int) string {
	return fmt.Sprintf("%s=%d", PartitionKey, year)
}

// WriteDataset persists a per-year population under root as
// root/harvest_year=<year>/data.parquet, one file per partition, column
// order following T's field order. Years with no records produce no
// directory. Existing files are overwritten; there is no append.
func WriteDataset[T any](root string, pop map[int][]T) error {
	years := make([]int, 0, len(pop))
	for year := range pop {
		years = append(years, year)
	}
	sort.Ints(years)

	for _, year := range years {
		rows := pop[year]
		if len(rows) == 0 {
			continue
		}
		if err := writePartition(filepath.Join(root, PartitionDir(year)), rows); err != nil {
			return fmt.Errorf("failed to write partition %s=%d: %w", PartitionKey, year, err)
		}
	}

	return nil
}

func writePartition[T any](dir string, rows []T) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create partition directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, DataFileName))
	if err != nil {
		return fmt.Errorf("failed to create data file: %w", err)
	}

	w := parquet.NewGenericWriter[T](f)
	if _, err := w.Write(rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write rows: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}

	return f.Close()
}
