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

// Package berth defines the passenger manifest record and its ordering.
//
// A Passenger carries four fields: full name, cabin number, cabin type and
// destination port. Passengers order by cabin number first, then by
// destination port, then by full name; cabin type never participates in
// ordering. Less is the single source of truth for that relation — Greater,
// LessEq, GreaterEq and Compare are all derived from it, so every consumer
// (the sorting algorithms in berth/sort, the stdlib baseline, tests) sees
// one consistent total order.
//
// The package also reads and writes manifests as comma-delimited text:
//
//	passengers, err := berth.Load("passengers.csv")
//	if err != nil {
//	    // a non-integer cabin number or an empty manifest is fatal
//	}
//	err = berth.Save("sorted.csv", passengers)
//
// The first line of a manifest file is a header and is ignored on input;
// output files always begin with one. Parsing is strict: a record with a bad
// cabin number or the wrong number of fields aborts the whole load.
package berth
