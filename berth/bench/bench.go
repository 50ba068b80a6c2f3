// Copyright 2025 go-berth Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-berth/berth"
	"github.com/ajroetker/go-berth/berth/sort"
)

// Result holds the measured durations for one manifest size.
type Result struct {
	Size      int
	Selection time.Duration
	Insertion time.Duration
	Quick     time.Duration
	Std       time.Duration
}

// Report is the outcome of a complete benchmark run.
type Report struct {
	// Loaded is the number of records in the input manifest.
	Loaded int

	// Results holds one entry per benchmarked size, in run order.
	Results []Result

	// Skipped lists configured sizes larger than the manifest.
	Skipped []int
}

// Runner executes benchmark runs. The zero value is ready to use.
type Runner struct {
	// Progress, when non-nil, is called after each size completes.
	Progress func(Result)
}

// Run loads the manifest named by cfg, benchmarks every feasible size, and
// writes the sorted outputs and the timings log. It aborts on an empty
// manifest before any sorting or timing happens.
func (r *Runner) Run(cfg Config) (*Report, error) {
	passengers, err := berth.Load(cfg.Input)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, errors.Wrapf(err, "creating output dir %s", cfg.OutputDir)
	}

	report := &Report{Loaded: len(passengers)}
	for _, size := range cfg.Sizes {
		if size > len(passengers) {
			report.Skipped = append(report.Skipped, size)
			continue
		}

		res, err := r.runSize(cfg, passengers[:size])
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, res)
		if r.Progress != nil {
			r.Progress(res)
		}
	}

	if err := writeTimings(cfg.TimingsFile, report.Results); err != nil {
		return nil, err
	}
	return report, nil
}

func (r *Runner) runSize(cfg Config, prefix []berth.Passenger) (Result, error) {
	size := len(prefix)
	res := Result{Size: size}

	// Each algorithm sorts its own private copy of the prefix so no run can
	// disturb another's input or timing.
	selSorted := slices.Clone(prefix)
	insSorted := slices.Clone(prefix)
	qckSorted := slices.Clone(prefix)
	stdSorted := slices.Clone(prefix)

	res.Selection = timeSort(sort.Selection, selSorted)
	res.Insertion = timeSort(sort.Insertion, insSorted)
	res.Quick = timeSort(sort.Quick, qckSorted)
	res.Std = timeSort(sort.Sort, stdSorted)

	outputs := []struct {
		prefix string
		data   []berth.Passenger
	}{
		{"ss", selSorted},
		{"is", insSorted},
		{"qs", qckSorted},
	}
	for _, out := range outputs {
		path := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_%d.csv", out.prefix, size))
		if err := berth.Save(path, out.data); err != nil {
			return res, err
		}
	}
	return res, nil
}

func timeSort(fn func([]berth.Passenger), data []berth.Passenger) time.Duration {
	start := time.Now()
	fn(data)
	return time.Since(start)
}

// writeTimings writes one row per size with whole-millisecond durations.
func writeTimings(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating timings log %s", path)
	}
	fmt.Fprintln(f, "Size,SelectionSort,InsertionSort,QuickSort,StdSort")
	for _, res := range results {
		fmt.Fprintf(f, "%d,%d,%d,%d,%d\n", res.Size,
			res.Selection.Milliseconds(), res.Insertion.Milliseconds(),
			res.Quick.Milliseconds(), res.Std.Milliseconds())
	}
	return errors.Wrapf(f.Close(), "closing timings log %s", path)
}
