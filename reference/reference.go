// Package reference holds the static lookup tables of the dashboard: valid
// state codes and names, the region partition and capital-city coordinates.
package reference

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed reference.yaml
var embedded []byte

// State is a federative unit.
type State struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Region is a named group of state codes.
type Region struct {
	Name   string   `yaml:"name"`
	States []string `yaml:"states"`
}

// City is a map anchor for a state.
type City struct {
	Name   string  `yaml:"city"`
	State  string  `yaml:"state"`
	Lat    float64 `yaml:"lat"`
	Lng    float64 `yaml:"lng"`
	Region string  `yaml:"-"`
}

// Tables is the parsed, validated reference data. It is read-only after Load.
type Tables struct {
	States  []State  `yaml:"states"`
	Regions []Region `yaml:"regions"`
	Cities  []City   `yaml:"cities"`

	names    map[string]string
	regionOf map[string]string
}

// Load parses reference tables from YAML and checks that regions partition
// the state set exactly and that every city points at a known state.
func Load(data []byte) (*Tables, error) {
	t := &Tables{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("reference: parse: %w", err)
	}
	if len(t.States) == 0 {
		return nil, fmt.Errorf("reference: no states defined")
	}

	t.names = make(map[string]string, len(t.States))
	for _, s := range t.States {
		if _, dup := t.names[s.Code]; dup {
			return nil, fmt.Errorf("reference: duplicate state %s", s.Code)
		}
		t.names[s.Code] = s.Name
	}

	t.regionOf = make(map[string]string, len(t.States))
	for _, r := range t.Regions {
		if len(r.States) == 0 {
			return nil, fmt.Errorf("reference: region %s has no states", r.Name)
		}
		for _, code := range r.States {
			if _, ok := t.names[code]; !ok {
				return nil, fmt.Errorf("reference: region %s lists unknown state %s", r.Name, code)
			}
			if prev, dup := t.regionOf[code]; dup {
				return nil, fmt.Errorf("reference: state %s in both %s and %s", code, prev, r.Name)
			}
			t.regionOf[code] = r.Name
		}
	}
	if len(t.regionOf) != len(t.names) {
		return nil, fmt.Errorf("reference: %d states not assigned to a region", len(t.names)-len(t.regionOf))
	}
	if len(t.Regions) != RegionCount {
		return nil, fmt.Errorf("reference: want %d regions, got %d", RegionCount, len(t.Regions))
	}

	for i := range t.Cities {
		region, ok := t.regionOf[t.Cities[i].State]
		if !ok {
			return nil, fmt.Errorf("reference: city %s has unknown state %s", t.Cities[i].Name, t.Cities[i].State)
		}
		t.Cities[i].Region = region
	}

	return t, nil
}

// RegionCount is the number of macro-regions the states are partitioned into.
const RegionCount = 5

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the embedded Brazilian reference tables.
func Default() *Tables {
	defaultOnce.Do(func() {
		t, err := Load(embedded)
		if err != nil {
			panic(err)
		}
		defaultTables = t
	})
	return defaultTables
}

// IsValidState reports whether code is one of the known state codes.
func (t *Tables) IsValidState(code string) bool {
	_, ok := t.names[code]
	return ok
}

// StateName returns the display name of a state, or "" when unknown.
func (t *Tables) StateName(code string) string {
	return t.names[code]
}

// RegionOf returns the region a state belongs to, or "" when unknown.
func (t *Tables) RegionOf(code string) string {
	return t.regionOf[code]
}

// StateCodes lists every state code in table order.
func (t *Tables) StateCodes() []string {
	codes := make([]string, len(t.States))
	for i, s := range t.States {
		codes[i] = s.Code
	}
	return codes
}

// TotalStates is the size of the national state set.
func (t *Tables) TotalStates() int {
	return len(t.States)
}
