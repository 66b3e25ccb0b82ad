// Package dashboard serves the occupation dataset behind the browse chart and
// search box.
package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/Ko-stant/outlook-map/internal/mapgen"
)

// Occupation holds the fields the chart and search read; the rest of the
// record is ignored.
type Occupation struct {
	Name       string   `json:"name"`
	Brief      string   `json:"brief,omitempty"`
	PayPerYear *float64 `json:"pay_per_year,omitempty"`
	PayPerHour *float64 `json:"pay_per_hour,omitempty"`
	TotalJobs  float64  `json:"total_jobs"`
	JobGrowth  float64  `json:"job_growth"`
}

// LoadFile loads occupations from a JSON file
func LoadFile(filepath string) ([]Occupation, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open occupations file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode accepts either a JSON array of occupations or a TinyDB document,
// {"_default": {"1": {...}, "2": {...}}}, flattened in numeric key order.
func Decode(r io.Reader) ([]Occupation, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read occupations: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var occs []Occupation
		if err := json.Unmarshal(data, &occs); err != nil {
			return nil, fmt.Errorf("failed to parse occupations JSON: %w", err)
		}
		return occs, nil
	}

	var doc struct {
		Default map[string]Occupation `json:"_default"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse occupations table: %w", err)
	}

	keys := make([]string, 0, len(doc.Default))
	for k := range doc.Default {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA != nil || errB != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})

	occs := make([]Occupation, 0, len(keys))
	for _, k := range keys {
		occs = append(occs, doc.Default[k])
	}
	return occs, nil
}

// PointsFromOccupations turns each occupation into a map point of interest,
// using the dataset position as its id.
func PointsFromOccupations(occs []Occupation) []mapgen.PointOfInterest {
	points := make([]mapgen.PointOfInterest, len(occs))
	for i, o := range occs {
		id := i
		points[i] = mapgen.PointOfInterest{Name: o.Name, ID: &id}
	}
	return points
}
