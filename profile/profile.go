// Package profile loads ISA profiles describing an annotation dialect.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultName      = "RISC240"
	defaultExtension = ".asm"
)

// ISAProfile represents the configuration for a specific instruction set.
// Templates are merged over the built-in catalog, so a profile can add
// mnemonics or override the stock comment for an existing one.
type ISAProfile struct {
	Name      string            `yaml:"name"`
	Extension string            `yaml:"extension"`
	Templates map[string]string `yaml:"templates"`
}

// Default returns the stock RISC240 profile.
func Default() *ISAProfile {
	return &ISAProfile{Name: defaultName, Extension: defaultExtension}
}

// LoadProfile loads an ISA profile from a YAML file. Missing fields fall
// back to the stock RISC240 values.
func LoadProfile(filename string) (*ISAProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}

	var profile ISAProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if profile.Name == "" {
		profile.Name = defaultName
	}
	if profile.Extension == "" {
		profile.Extension = defaultExtension
	}
	for mnemonic := range profile.Templates {
		if mnemonic == "" {
			return nil, fmt.Errorf("profile %s contains an empty mnemonic", filename)
		}
	}
	return &profile, nil
}
