// Package config loads YAML configuration files and republishes them on
// change. Environment variable references in the file are expanded before
// parsing, so secrets like the API bearer token can stay out of the file
// itself.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Validator is implemented by configuration types that check themselves
// after decoding. Load runs it when present.
type Validator interface {
	Validate() error
}

// Load reads filename, expands ${VAR} references against the process
// environment, and decodes the YAML into target. If target implements
// Validator the decoded value is validated before Load returns.
func Load[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", filename, err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), target); err != nil {
		return fmt.Errorf("parse config file %s: %w", filename, err)
	}

	if v, ok := any(target).(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("config file %s invalid: %w", filename, err)
		}
	}
	return nil
}
