package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is the optional YAML play profile.
//
// Only driver-side conveniences live here. The gate's own constants -
// digits, keys, the elapsed-time floor - are compiled in; making them
// configurable would hand out the answer.
type Profile struct {
	Journal string `yaml:"journal"`
	Quiet   bool   `yaml:"quiet"`
}

// LoadProfile reads and parses a YAML play profile.
func LoadProfile(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &p, nil
}
