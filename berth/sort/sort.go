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

import (
	"slices"

	"github.com/ajroetker/go-berth/berth"
)

// Selection sorts data in-place ascending using selection sort: each outer
// pass finds the minimum of the unsorted suffix and exchanges it into
// position.
func Selection(data []berth.Passenger) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		minIndex := i
		for j := i + 1; j < n; j++ {
			if data[j].Less(data[minIndex]) {
				minIndex = j
			}
		}
		if minIndex != i {
			data[i], data[minIndex] = data[minIndex], data[i]
		}
	}
}

// Insertion sorts data in-place ascending using insertion sort. Stable:
// only strictly greater elements are shifted right.
func Insertion(data []berth.Passenger) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j].Greater(key) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// Sort sorts data in-place ascending using the standard library. It is the
// trusted baseline the benchmark times the other algorithms against.
func Sort(data []berth.Passenger) {
	slices.SortFunc(data, berth.Passenger.Compare)
}

// IsSorted reports whether data is in ascending order.
func IsSorted(data []berth.Passenger) bool {
	for i := 1; i < len(data); i++ {
		if data[i].Less(data[i-1]) {
			return false
		}
	}
	return true
}
