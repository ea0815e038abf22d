// Package verify is the environment smoke test: it opens the partitioned
// datasets a previous run wrote, counts rows partition by partition, and
// reports what it finds. It performs no validation beyond being able to read
// the files; read failures are reported, never fatal.
package verify

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/croplab/agrogen/internal/config"
	"github.com/croplab/agrogen/internal/defects"
	"github.com/croplab/agrogen/internal/generator"
	"github.com/croplab/agrogen/internal/manifest"
	"github.com/croplab/agrogen/internal/parquetio"
)

// Result summarizes one dataset's read-back.
type Result struct {
	Dataset    string
	Partitions int
	Rows       int64
	Err        error
}

// Run reads both datasets back and writes a human-readable report to out.
// It always returns normally; any failure is part of the report.
func Run(cfg *config.Config, out io.Writer) {
	fmt.Fprintln(out, "Verifying generated datasets...")

	for _, ds := range []string{generator.YieldDir, generator.AbandonmentDir} {
		res := Dataset(filepath.Join(cfg.DataDir, ds))
		res.Dataset = ds

		if res.Err != nil {
			fmt.Fprintf(out, "%s could not read %s: %v\n", color.RedString("✗"), ds, res.Err)
			fmt.Fprintln(out, "  run 'agrogen generate' first if data is missing")
			continue
		}

		fmt.Fprintf(out, "%s %s: %s rows across %d partitions\n",
			color.GreenString("✓"), ds, humanize.Comma(res.Rows), res.Partitions)
	}

	if m, err := manifest.Load(cfg.DataDir); err == nil {
		rules := make([]string, 0, len(m.Counts))
		for rule := range m.Counts {
			rules = append(rules, string(rule))
		}
		sort.Strings(rules)

		fmt.Fprintln(out, "\nExpected data quality issues (ground truth):")
		for _, rule := range rules {
			fmt.Fprintf(out, "  %-30s %d\n", rule, m.Counts[defects.Rule(rule)])
		}
	}
}

// Dataset opens one dataset root and counts rows over all partitions.
func Dataset(root string) Result {
	parts, err := parquetio.Partitions(root)
	if err != nil {
		return Result{Err: err}
	}

	var res Result
	for _, part := range parts {
		rows, err := parquetio.CountRows(part.Dir)
		if err != nil {
			return Result{Err: err}
		}
		res.Partitions++
		res.Rows += rows
	}

	return res
}
