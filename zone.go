package co2explorer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	ZoneFirstFiveYears = "1st5yrs"
	ZoneLastFiveYears  = "last5yrs"
	ZoneAllData        = "alldata"
)

var (
	ErrZoneNoName     = errors.New("zone has no name")
	ErrZoneEmptyRange = errors.New("zone range min is not below max")
	ErrZoneDuplicate  = errors.New("duplicate zone name")
)

// Range is a closed axis interval.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

func (r Range) valid() bool {
	return r.Min < r.Max
}

// Zone is a named axis preset.
type Zone struct {
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label" yaml:"label"`
	X     Range  `json:"x" yaml:"x"`
	Y     *Range `json:"y,omitempty" yaml:"y,omitempty"`
}

// DefaultZones returns the first five years, last five years and all data presets.
func DefaultZones() []Zone {
	return []Zone{
		{
			Name:  ZoneFirstFiveYears,
			Label: "1st 5 years",
			X:     Range{Min: 1958, Max: 1963},
			Y:     &Range{Min: 312, Max: 322},
		},
		{
			Name:  ZoneLastFiveYears,
			Label: "last 5 years",
			X:     Range{Min: 2015, Max: 2020},
			Y:     &Range{Min: 395, Max: 415},
		},
		{
			Name:  ZoneAllData,
			Label: "All data",
			X:     Range{Min: 1955, Max: 2023},
			Y:     &Range{Min: 310, Max: 440},
		},
	}
}

func findZone(zones []Zone, name string) (Zone, bool) {
	for _, z := range zones {
		if z.Name == name {
			return z, true
		}
	}
	return Zone{}, false
}

// LoadZones decodes zone presets from YAML of the form
//
//	zones:
//	  - name: 1st5yrs
//	    label: 1st 5 years
//	    x: {min: 1958, max: 1963}
//	    y: {min: 312, max: 322}
func LoadZones(r io.Reader) ([]Zone, error) {
	var doc struct {
		Zones []Zone `yaml:"zones"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("unable to decode zones, %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Zones))
	for i, z := range doc.Zones {
		if z.Name == "" {
			return nil, fmt.Errorf("zone %d, %w", i, ErrZoneNoName)
		}
		if _, exists := seen[z.Name]; exists {
			return nil, fmt.Errorf("%s, %w", z.Name, ErrZoneDuplicate)
		}
		seen[z.Name] = struct{}{}
		if !z.X.valid() || (z.Y != nil && !z.Y.valid()) {
			return nil, fmt.Errorf("%s, %w", z.Name, ErrZoneEmptyRange)
		}
	}
	return doc.Zones, nil
}

// LoadZonesFile reads zone presets from a YAML file.
func LoadZonesFile(path string) ([]Zone, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open zones file, %w", err)
	}
	defer file.Close()

	return LoadZones(file)
}
