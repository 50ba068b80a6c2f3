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

package berth

// Passenger is one manifest record. CabinType is descriptive only and takes
// no part in ordering.
type Passenger struct {
	FullName        string
	CabinNumber     int
	CabinType       string
	DestinationPort string
}

// Less reports whether p orders before o: by cabin number, then by
// destination port, then by full name.
func (p Passenger) Less(o Passenger) bool {
	if p.CabinNumber != o.CabinNumber {
		return p.CabinNumber < o.CabinNumber
	}
	if p.DestinationPort != o.DestinationPort {
		return p.DestinationPort < o.DestinationPort
	}
	return p.FullName < o.FullName
}

// Greater reports whether p orders after o.
func (p Passenger) Greater(o Passenger) bool { return o.Less(p) }

// LessEq reports whether p does not order after o.
func (p Passenger) LessEq(o Passenger) bool { return !o.Less(p) }

// GreaterEq reports whether p does not order before o.
func (p Passenger) GreaterEq(o Passenger) bool { return !p.Less(o) }

// Compare returns -1 if p orders before o, 1 if after, and 0 when all three
// ordering keys are equal. It exists so slices.SortFunc can consume the same
// relation as Less.
func (p Passenger) Compare(o Passenger) int {
	if p.Less(o) {
		return -1
	}
	if o.Less(p) {
		return 1
	}
	return 0
}
