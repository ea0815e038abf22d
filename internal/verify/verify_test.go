package verify

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/croplab/agrogen/internal/config"
	"github.com/croplab/agrogen/internal/generator"
)

func TestDatasetCounts(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()

	summary, err := generator.NewQuiet(cfg).Run()
	require.NoError(t, err)

	res := Dataset(filepath.Join(cfg.DataDir, generator.YieldDir))
	require.NoError(t, res.Err)
	assert.Equal(t, len(cfg.Years), res.Partitions)
	assert.Equal(t, int64(summary.YieldRows), res.Rows)
}

func TestDatasetMissingRoot(t *testing.T) {
	res := Dataset(filepath.Join(t.TempDir(), "crop_yield"))
	assert.Error(t, res.Err)
}

func TestRunReportsFailureWithoutError(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = filepath.Join(t.TempDir(), "never_generated")

	var out bytes.Buffer
	Run(cfg, &out) // must not panic or exit

	assert.Contains(t, out.String(), "could not read")
	assert.Contains(t, out.String(), "agrogen generate")
}

func TestRunReportsCounts(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()

	_, err := generator.NewQuiet(cfg).Run()
	require.NoError(t, err)

	var out bytes.Buffer
	Run(cfg, &out)

	assert.Contains(t, out.String(), "crop_yield")
	assert.Contains(t, out.String(), "county_crop_abandonment")
	assert.Contains(t, out.String(), "ground truth")
	assert.Contains(t, out.String(), "null_yield")
}
