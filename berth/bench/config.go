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
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Config drives a benchmark run.
type Config struct {
	// Input is the manifest file to load.
	Input string `yaml:"input"`

	// OutputDir receives one sorted manifest per (algorithm, size) pair.
	OutputDir string `yaml:"output"`

	// TimingsFile receives one timings row per size.
	TimingsFile string `yaml:"timings"`

	// Sizes are the manifest prefix lengths to benchmark, in run order.
	Sizes []int `yaml:"sizes"`
}

// DefaultConfig returns the stock size ladder and file locations.
func DefaultConfig() Config {
	return Config{
		Input:       "passengers.csv",
		OutputDir:   "sorted",
		TimingsFile: "timings.csv",
		Sizes:       []int{100, 1000, 3000, 5000, 7000, 10000, 20000, 30000, 50000, 70000, 100000},
	}
}

// LoadConfig reads a YAML config file. Fields absent from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}
