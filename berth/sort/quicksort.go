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

package sort

import "github.com/ajroetker/go-berth/berth"

// Quick sorts data in-place ascending using a recursive partition-exchange
// quicksort. The pivot is always the value at the middle index of the
// current sub-slice, and partitioning runs two Hoare-style cursors inward,
// exchanging out-of-place pairs.
//
// Recursion descends into sub-slices of the same backing array. The left
// recursion is guarded by j > 0 and the right by i < n; for this pivot and
// cursor scheme those guards never leave a one-element partition unsorted
// (TestQuickSmallPartitions exercises the boundary patterns exhaustively).
func Quick(data []berth.Passenger) {
	n := len(data)
	if n <= 1 {
		return
	}

	// The pivot is captured by value: exchanges below may move the element
	// it was read from.
	pivot := data[n/2]

	i, j := 0, n-1
	for {
		for data[i].Less(pivot) {
			i++
		}
		for data[j].Greater(pivot) {
			j--
		}
		if i <= j {
			data[i], data[j] = data[j], data[i]
			i++
			j--
		}
		if i > j {
			break
		}
	}

	if j > 0 {
		Quick(data[:j+1])
	}
	if i < n {
		Quick(data[i:])
	}
}
