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

// Package bench runs the sorting benchmark: for each configured size it
// takes a prefix of the loaded manifest, hands an independent copy to each
// algorithm, measures wall-clock time, writes the sorted outputs, and logs
// one timings row per size.
//
// Runs are strictly sequential; no two algorithms ever share a slice, so
// timings never interfere. Timings are recorded in whole milliseconds, the
// granularity of the timings log — sub-millisecond runs record as 0.
package bench
