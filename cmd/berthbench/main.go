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

// Command berthbench benchmarks the comparison sorts over a passenger
// manifest.
//
// Usage:
//
//	berthbench -input passengers.csv -output sorted -timings timings.csv
//	berthbench -config bench.yml
//	berthbench -input deck.csv -sizes 100,1000,10000
//
// For every configured size the tool sorts an independent copy of the
// manifest prefix with selection sort, insertion sort, quicksort and the
// stdlib baseline, writes the sorted manifests into the output directory
// (ss_<size>.csv, is_<size>.csv, qs_<size>.csv), and appends one row of
// whole-millisecond timings per size to the timings log.
//
// Explicit flags override values from the -config file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/ajroetker/go-berth/berth"
	"github.com/ajroetker/go-berth/berth/bench"
)

var (
	inputFile   = flag.String("input", "", "Input manifest file (default from config)")
	outputDir   = flag.String("output", "", "Directory for sorted manifests (default from config)")
	timingsFile = flag.String("timings", "", "Timings log file (default from config)")
	sizesFlag   = flag.String("sizes", "", "Comma-separated manifest sizes to benchmark (default from config)")
	configFile  = flag.String("config", "", "YAML config file")
)

func main() {
	flag.Parse()

	cfg, err := buildConfig()
	if err != nil {
		fatal(err)
	}

	bold := color.New(color.Bold)
	faint := color.New(color.FgCyan)

	bold.Printf("berthbench: %s\n", cfg.Input)

	runner := bench.Runner{Progress: func(res bench.Result) {
		faint.Printf("  %8s records  ", humanize.Comma(int64(res.Size)))
		fmt.Printf("selection=%dms  insertion=%dms  quick=%dms  std=%dms\n",
			res.Selection.Milliseconds(), res.Insertion.Milliseconds(),
			res.Quick.Milliseconds(), res.Std.Milliseconds())
	}}

	report, err := runner.Run(cfg)
	if err != nil {
		if errors.Is(err, berth.ErrNoData) {
			fatal(errors.Errorf("%s: no passenger data, nothing to benchmark", cfg.Input))
		}
		fatal(err)
	}

	for _, size := range report.Skipped {
		color.Yellow("  skipped size %s: manifest has only %s records",
			humanize.Comma(int64(size)), humanize.Comma(int64(report.Loaded)))
	}

	bold.Printf("done: %d sizes benchmarked, timings in %s, sorted manifests in %s\n",
		len(report.Results), cfg.TimingsFile, cfg.OutputDir)
}

// buildConfig layers explicit flags over the config file over the defaults.
func buildConfig() (bench.Config, error) {
	cfg := bench.DefaultConfig()

	if *configFile != "" {
		loaded, err := bench.LoadConfig(*configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["input"] {
		cfg.Input = *inputFile
	}
	if set["output"] {
		cfg.OutputDir = *outputDir
	}
	if set["timings"] {
		cfg.TimingsFile = *timingsFile
	}
	if set["sizes"] {
		sizes, err := parseSizes(*sizesFlag)
		if err != nil {
			return cfg, err
		}
		cfg.Sizes = sizes
	}
	return cfg, nil
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, errors.Errorf("invalid size %q", part)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, errors.New("-sizes must name at least one size")
	}
	return sizes, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
