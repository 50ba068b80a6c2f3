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

// Package sort provides the comparison sorts benchmarked by berthbench.
//
// Three classic algorithms sort a passenger manifest in place, ascending by
// the berth ordering (cabin number, destination port, full name):
//
//   - Selection: O(N²) comparisons, at most one exchange per outer pass.
//     Not stable.
//   - Insertion: O(N²) worst case, O(N) on sorted input. Stable — only
//     strictly greater elements shift, so equal-key records keep their
//     relative order.
//   - Quick: recursive partition-exchange quicksort with a fixed middle
//     pivot and Hoare-style cursors. O(N log N) average, O(N²) worst case.
//     The pivot is never randomized, so pathological inputs behave the same
//     on every run. Not stable.
//
// Sort is the trusted baseline (stdlib slices.SortFunc over the same
// ordering); the benchmark harness times it alongside the three algorithms
// and the tests use it as the correctness oracle.
//
// All entry points are no-ops for slices of length 0 or 1 and may be called
// any number of times on independent data.
package sort
