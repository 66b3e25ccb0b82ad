package mapgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrMalformedPoint = errors.New("point of interest has no name")

// PointOfInterest is a named destination connected to the hub.
//
// ID, ParentID and Relevance are accepted from input but reserved: the
// generator lays out a flat, unweighted map and never reads them.
type PointOfInterest struct {
	Name      string   `json:"name"`
	ID        *int     `json:"id,omitempty"`
	ParentID  *int     `json:"parent_id,omitempty"`
	Relevance *float64 `json:"relevance,omitempty"`
}

func (p PointOfInterest) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrMalformedPoint
	}
	return nil
}

// LoadPointsFromFile loads a JSON array of points of interest
func LoadPointsFromFile(filepath string) ([]PointOfInterest, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read points file: %w", err)
	}

	var points []PointOfInterest
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("failed to parse points JSON: %w", err)
	}

	return points, nil
}
