package parquetio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// Partition is one year's physical partition under a dataset root.
type Partition struct {
	Year int
	Dir  string
}

// Partitions lists the harvest_year=* directories under root in ascending
// year order. Directories whose names do not parse are ignored.
func Partitions(root string) ([]Partition, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset root %s: %w", root, err)
	}

	var parts []Partition
	prefix := PartitionKey + "="
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		year, err := strconv.Atoi(strings.TrimPrefix(e.Name(), prefix))
		if err != nil {
			continue
		}
		parts = append(parts, Partition{Year: year, Dir: filepath.Join(root, e.Name())})
	}

	sort.Slice(parts, func(i, j int) bool { return parts[i].Year < parts[j].Year })
	return parts, nil
}

// CountRows returns the row count of one partition's data file from the
// parquet footer, without decoding any rows.
func CountRows(dir string) (int64, error) {
	path := filepath.Join(dir, DataFileName)

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return 0, fmt.Errorf("failed to open parquet file %s: %w", path, err)
	}

	return pf.NumRows(), nil
}

// ReadPartition decodes all rows of one partition's data file.
func ReadPartition[T any](dir string) ([]T, error) {
	rows, err := parquet.ReadFile[T](filepath.Join(dir, DataFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to read partition %s: %w", dir, err)
	}
	return rows, nil
}
