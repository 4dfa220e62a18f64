package pricing

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tables holds the pricing lookup tables. They are loaded once at startup
// and treated as immutable afterwards; alternate tables are supplied via a
// YAML file rather than code changes.
type Tables struct {
	BaseRate  float64            `yaml:"base_rate"`
	Materials map[string]float64 `yaml:"materials"`
	Hardware  map[string]float64 `yaml:"hardware"`
}

// DefaultTables returns the built-in pricing tables.
func DefaultTables() Tables {
	return Tables{
		BaseRate: 50.0,
		Materials: map[string]float64{
			"wood":       1.0,
			"steel":      1.5,
			"fiberglass": 1.2,
		},
		Hardware: map[string]float64{
			"hinges":  10,
			"handle":  25,
			"lockset": 40,
		},
	}
}

// LoadTables reads pricing tables from a YAML file. Lookup keys are
// lowercased so matching stays case-insensitive regardless of how the file
// spells them.
func LoadTables(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("failed to read tables file: %w", err)
	}

	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tables{}, fmt.Errorf("failed to parse tables file: %w", err)
	}
	if t.BaseRate <= 0 {
		return Tables{}, fmt.Errorf("base_rate must be positive, got %v", t.BaseRate)
	}

	t.Materials = lowerKeys(t.Materials)
	t.Hardware = lowerKeys(t.Hardware)

	return t, nil
}

// MaterialMultiplier resolves a material name case-insensitively.
// Unknown names resolve to the base multiplier 1.0.
func (t Tables) MaterialMultiplier(name string) float64 {
	if m, ok := t.Materials[strings.ToLower(name)]; ok {
		return m
	}
	return 1.0
}

// HardwareCost resolves a hardware name case-insensitively.
// Unknown names cost 0.
func (t Tables) HardwareCost(name string) float64 {
	return t.Hardware[strings.ToLower(name)]
}

// KnownMaterial reports whether the name matches the material table.
func (t Tables) KnownMaterial(name string) bool {
	_, ok := t.Materials[strings.ToLower(name)]
	return ok
}

// KnownHardware reports whether the name matches the hardware table.
func (t Tables) KnownHardware(name string) bool {
	_, ok := t.Hardware[strings.ToLower(name)]
	return ok
}

func lowerKeys(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[strings.ToLower(k)] = v
	}
	return out
}
