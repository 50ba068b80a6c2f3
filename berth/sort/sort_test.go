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
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/ajroetker/go-berth/berth"
)

var algorithms = []struct {
	name string
	fn   func([]berth.Passenger)
}{
	{"Selection", Selection},
	{"Insertion", Insertion},
	{"Quick", Quick},
}

func pax(cabin int, port, name string) berth.Passenger {
	return berth.Passenger{FullName: name, CabinNumber: cabin, DestinationPort: port}
}

// sorted returns a copy of data ordered by the trusted stdlib baseline.
func sorted(data []berth.Passenger) []berth.Passenger {
	out := slices.Clone(data)
	Sort(out)
	return out
}

func generateManifest(n int, rng *rand.Rand) []berth.Passenger {
	ports := []string{"Lisbon", "Le Havre", "Southampton", "Cherbourg", "Queenstown"}
	types := []string{"Suite", "1", "2", "3"}
	data := make([]berth.Passenger, n)
	for i := range data {
		data[i] = berth.Passenger{
			FullName:        fmt.Sprintf("Passenger %04d", rng.Intn(n)),
			CabinNumber:     rng.Intn(n/2 + 1),
			CabinType:       types[rng.Intn(len(types))],
			DestinationPort: ports[rng.Intn(len(ports))],
		}
	}
	return data
}

// forEachPermutation visits every permutation of data in place (Heap's
// algorithm); visit must not modify its argument.
func forEachPermutation(data []berth.Passenger, k int, visit func([]berth.Passenger)) {
	if k <= 1 {
		visit(data)
		return
	}
	for i := 0; i < k; i++ {
		forEachPermutation(data, k-1, visit)
		if k%2 == 0 {
			data[i], data[k-1] = data[k-1], data[i]
		} else {
			data[0], data[k-1] = data[k-1], data[0]
		}
	}
}

// TestSortEmpty tests that a nil slice is left untouched by every algorithm
func TestSortEmpty(t *testing.T) {
	for _, alg := range algorithms {
		var empty []berth.Passenger
		alg.fn(empty)
		if len(empty) != 0 {
			t.Errorf("%s(empty) should not modify empty slice", alg.name)
		}
	}
}

// TestSortSingle tests sorting single element slices
func TestSortSingle(t *testing.T) {
	for _, alg := range algorithms {
		data := []berth.Passenger{pax(42, "Lisbon", "Ada")}
		alg.fn(data)
		if len(data) != 1 || data[0] != pax(42, "Lisbon", "Ada") {
			t.Errorf("%s([1 record]) = %v, want unchanged", alg.name, data)
		}
	}
}

// TestSortAlreadySorted tests idempotence on sorted input
func TestSortAlreadySorted(t *testing.T) {
	base := sorted(generateManifest(64, rand.New(rand.NewSource(7))))
	for _, alg := range algorithms {
		data := slices.Clone(base)
		alg.fn(data)
		if !slices.Equal(data, base) {
			t.Errorf("%s(sorted) changed an already sorted manifest", alg.name)
		}
	}
}

// TestSortAllPermutations exhausts every input order of small manifests,
// with and without duplicate keys, against the stdlib oracle.
func TestSortAllPermutations(t *testing.T) {
	cases := [][]berth.Passenger{
		{
			pax(3, "Lisbon", "Ada"),
			pax(1, "Odessa", "Brin"),
			pax(2, "Lisbon", "Cora"),
			pax(2, "Aarhus", "Dima"),
			pax(5, "Lisbon", "Elio"),
			pax(4, "Bergen", "Faye"),
		},
		{
			pax(1, "Lisbon", "Ada"),
			pax(1, "Lisbon", "Ada"),
			pax(1, "Lisbon", "Brin"),
			pax(2, "Lisbon", "Ada"),
			pax(1, "Odessa", "Ada"),
			pax(1, "Lisbon", "Ada"),
		},
	}
	for ci, base := range cases {
		want := sorted(base)
		for _, alg := range algorithms {
			input := slices.Clone(base)
			forEachPermutation(input, len(input), func(perm []berth.Passenger) {
				data := slices.Clone(perm)
				alg.fn(data)
				if !slices.Equal(data, want) {
					t.Fatalf("%s(case %d, perm %v) = %v, want %v", alg.name, ci, perm, data, want)
				}
			})
		}
	}
}

// TestSortLengthPreserved checks no record is dropped or duplicated,
// including by quicksort's sub-slice recursion.
func TestSortLengthPreserved(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, n := range []int{0, 1, 2, 3, 10, 100, 1000} {
		base := generateManifest(n, rng)
		for _, alg := range algorithms {
			data := slices.Clone(base)
			alg.fn(data)
			if len(data) != n {
				t.Errorf("%s(n=%d) returned %d records", alg.name, n, len(data))
			}
		}
	}
}

// TestInsertionStable checks insertion sort keeps the input order of records
// whose three ordering keys are fully equal (cabin type tells them apart).
func TestInsertionStable(t *testing.T) {
	data := []berth.Passenger{
		{FullName: "Ada", CabinNumber: 7, CabinType: "first", DestinationPort: "Lisbon"},
		{FullName: "Brin", CabinNumber: 2, CabinType: "a", DestinationPort: "Odessa"},
		{FullName: "Ada", CabinNumber: 7, CabinType: "second", DestinationPort: "Lisbon"},
		{FullName: "Brin", CabinNumber: 2, CabinType: "b", DestinationPort: "Odessa"},
		{FullName: "Ada", CabinNumber: 7, CabinType: "third", DestinationPort: "Lisbon"},
	}
	Insertion(data)

	var adaTypes, brinTypes []string
	for _, p := range data {
		switch p.FullName {
		case "Ada":
			adaTypes = append(adaTypes, p.CabinType)
		case "Brin":
			brinTypes = append(brinTypes, p.CabinType)
		}
	}
	if !slices.Equal(adaTypes, []string{"first", "second", "third"}) {
		t.Errorf("Insertion reordered equal-key records: %v", adaTypes)
	}
	if !slices.Equal(brinTypes, []string{"a", "b"}) {
		t.Errorf("Insertion reordered equal-key records: %v", brinTypes)
	}
}

// TestSortCabinOrder checks the primary key dominates the other two.
func TestSortCabinOrder(t *testing.T) {
	base := []berth.Passenger{
		pax(30, "B", "X"),
		pax(10, "A", "Y"),
		pax(20, "A", "Z"),
	}
	want := []berth.Passenger{
		pax(10, "A", "Y"),
		pax(20, "A", "Z"),
		pax(30, "B", "X"),
	}
	for _, alg := range algorithms {
		data := slices.Clone(base)
		alg.fn(data)
		if !slices.Equal(data, want) {
			t.Errorf("%s = %v, want %v", alg.name, data, want)
		}
	}
}

// TestSortNameTieBreak checks the full name breaks ties on cabin and port.
func TestSortNameTieBreak(t *testing.T) {
	for _, alg := range algorithms {
		data := []berth.Passenger{
			pax(12, "Lisbon", "Bob"),
			pax(12, "Lisbon", "Alice"),
		}
		alg.fn(data)
		if data[0].FullName != "Alice" || data[1].FullName != "Bob" {
			t.Errorf("%s: got %s before %s, want Alice before Bob",
				alg.name, data[0].FullName, data[1].FullName)
		}
	}
}

// TestSortLargeMatchesBaseline sorts a 5000-record manifest with each
// algorithm and requires full sequence equality with the stdlib baseline.
func TestSortLargeMatchesBaseline(t *testing.T) {
	base := generateManifest(5000, rand.New(rand.NewSource(42)))
	want := sorted(base)
	for _, alg := range algorithms {
		data := slices.Clone(base)
		alg.fn(data)
		if !slices.Equal(data, want) {
			t.Errorf("%s(5000 records) diverged from the stdlib baseline", alg.name)
		}
	}
}

// TestQuickSmallPartitions targets the boundary guards of the quicksort
// recursion: adversarial patterns across a sweep of small sizes, where a
// wrong guard would leave a leading or trailing record unsorted.
func TestQuickSmallPartitions(t *testing.T) {
	patterns := []struct {
		name string
		gen  func(n int) []berth.Passenger
	}{
		{"ascending", func(n int) []berth.Passenger {
			data := make([]berth.Passenger, n)
			for i := range data {
				data[i] = pax(i, "P", "N")
			}
			return data
		}},
		{"descending", func(n int) []berth.Passenger {
			data := make([]berth.Passenger, n)
			for i := range data {
				data[i] = pax(n-i, "P", "N")
			}
			return data
		}},
		{"allEqual", func(n int) []berth.Passenger {
			data := make([]berth.Passenger, n)
			for i := range data {
				data[i] = pax(5, "P", "N")
			}
			return data
		}},
		{"organPipe", func(n int) []berth.Passenger {
			data := make([]berth.Passenger, n)
			for i := range data {
				if i < n/2 {
					data[i] = pax(i, "P", "N")
				} else {
					data[i] = pax(n-i, "P", "N")
				}
			}
			return data
		}},
		{"minLast", func(n int) []berth.Passenger {
			data := make([]berth.Passenger, n)
			for i := range data {
				data[i] = pax(i+1, "P", "N")
			}
			if n > 0 {
				data[n-1] = pax(0, "P", "N")
			}
			return data
		}},
		{"maxFirst", func(n int) []berth.Passenger {
			data := make([]berth.Passenger, n)
			for i := range data {
				data[i] = pax(i, "P", "N")
			}
			if n > 0 {
				data[0] = pax(n, "P", "N")
			}
			return data
		}},
	}
	for _, pat := range patterns {
		for n := 0; n <= 40; n++ {
			data := pat.gen(n)
			want := sorted(data)
			Quick(data)
			if !slices.Equal(data, want) {
				t.Fatalf("Quick(%s, n=%d) = %v, want %v", pat.name, n, data, want)
			}
		}
	}
}

// TestQuickRandom sweeps random manifests across sizes, including sizes
// around the partition split points.
func TestQuickRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000} {
		base := generateManifest(n, rng)
		want := sorted(base)
		data := slices.Clone(base)
		Quick(data)
		if !slices.Equal(data, want) {
			t.Errorf("Quick(random, n=%d) diverged from the stdlib baseline", n)
		}
	}
}

// TestIsSorted tests the sortedness check itself
func TestIsSorted(t *testing.T) {
	if !IsSorted(nil) {
		t.Error("IsSorted(nil) = false, want true")
	}
	data := []berth.Passenger{pax(1, "A", "N"), pax(2, "A", "N")}
	if !IsSorted(data) {
		t.Errorf("IsSorted(%v) = false, want true", data)
	}
	data[0], data[1] = data[1], data[0]
	if IsSorted(data) {
		t.Errorf("IsSorted(%v) = true, want false", data)
	}
}
