package bitvector

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning exposes the one search-strategy constant spec §4.6 calls out as
// implementer-adjustable: the super-block span below which select falls
// back to a linear scan instead of a binary search. The default matches
// the reference value; benchmark harnesses can load an alternative
// preset from YAML without recompiling.
type Tuning struct {
	// LinearScanThreshold is the super-block span (end-begin) at or
	// below which select linear-scans instead of binary-searching.
	LinearScanThreshold int `yaml:"linear_scan_threshold"`
}

// DefaultTuning returns the spec-pinned default: a linear scan threshold
// of 10 super-blocks.
func DefaultTuning() Tuning {
	return Tuning{LinearScanThreshold: 10}
}

// LoadTuningFile reads a Tuning preset from a YAML file.
func LoadTuningFile(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("bitvector: load tuning: %w", err)
	}
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("bitvector: parse tuning: %w", err)
	}
	if t.LinearScanThreshold < 0 {
		return Tuning{}, fmt.Errorf("bitvector: linear_scan_threshold must be non-negative, got %d", t.LinearScanThreshold)
	}
	return t, nil
}
