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

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// ErrNoData is returned by Load and Read when the input yields no passenger
// records. Callers abort before any sorting happens.
var ErrNoData = errors.New("manifest contains no passenger records")

// Header is the column header written at the top of every output manifest.
var Header = []string{"FullName", "CabinNumber", "CabinType", "DestinationPort"}

const fieldsPerRecord = 4

// Read parses a manifest from r. The first line is a header and is
// discarded; every following line must hold exactly four comma-separated
// fields: name, cabin number, cabin type, destination port. Any record with
// a non-integer cabin number or the wrong field count fails the whole read.
func Read(r io.Reader) ([]Passenger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, ErrNoData
		}
		return nil, errors.Wrap(err, "reading manifest header")
	}

	var passengers []Passenger
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if len(rec) != fieldsPerRecord {
			return nil, errors.Errorf("line %d: expected %d fields, got %d", line, fieldsPerRecord, len(rec))
		}

		cabin, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: cabin number %q", line, rec[1])
		}

		passengers = append(passengers, Passenger{
			FullName:        rec[0],
			CabinNumber:     cabin,
			CabinType:       rec[2],
			DestinationPort: rec[3],
		})
	}

	if len(passengers) == 0 {
		return nil, ErrNoData
	}
	return passengers, nil
}

// Load reads the manifest file at path.
func Load(path string) ([]Passenger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening manifest %s", path)
	}
	defer f.Close()

	passengers, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "manifest %s", path)
	}
	return passengers, nil
}

// Write writes passengers to w as comma-delimited text, one record per line
// under a header line.
func Write(w io.Writer, passengers []Passenger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return errors.Wrap(err, "writing header")
	}
	for _, p := range passengers {
		rec := []string{p.FullName, strconv.Itoa(p.CabinNumber), p.CabinType, p.DestinationPort}
		if err := cw.Write(rec); err != nil {
			return errors.Wrap(err, "writing record")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing manifest")
}

// Save writes passengers to the file at path, replacing it if it exists.
func Save(path string, passengers []Passenger) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := Write(f, passengers); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
