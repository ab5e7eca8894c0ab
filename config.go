// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package iupacpal

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Config provides the parameters for the search of inverted repeats.
type Config struct {
	// MinLen is the minimum length of an arm.
	MinLen int `json:",omitzero"`
	// MaxLen is the maximum length of an arm. Longer arms are truncated.
	MaxLen int `json:",omitzero"`
	// MaxGap is the maximum length of the gap between the two arms.
	MaxGap int
	// Mismatches is the number of mismatching pairs allowed outside of
	// the gap.
	Mismatches int
	// Workers is the number of goroutines sweeping the centres.
	Workers int `json:",omitzero"`
}

// SetDefaults sets values that are zero to their defaults values. MaxGap and
// Mismatches are left alone, since zero is a meaningful value for them.
func (cfg *Config) SetDefaults() {
	if cfg.MinLen == 0 {
		cfg.MinLen = 10
	}
	if cfg.MaxLen == 0 {
		cfg.MaxLen = max(100, cfg.MinLen)
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
}

// Verify checks the configuration for correctness.
func (cfg *Config) Verify() error {
	if cfg.MinLen < 2 {
		return fmt.Errorf("%w: MinLen=%d; must be >= 2",
			ErrInvalidParameter, cfg.MinLen)
	}
	if cfg.MaxLen < cfg.MinLen {
		return fmt.Errorf("%w: MaxLen=%d; must be >= MinLen(%d)",
			ErrInvalidParameter, cfg.MaxLen, cfg.MinLen)
	}
	if cfg.MaxGap < 0 {
		return fmt.Errorf("%w: MaxGap=%d; must be >= 0",
			ErrInvalidParameter, cfg.MaxGap)
	}
	if !(0 <= cfg.Mismatches && cfg.Mismatches < cfg.MinLen) {
		return fmt.Errorf("%w: Mismatches=%d; must be 0..MinLen(%d)-1",
			ErrInvalidParameter, cfg.Mismatches, cfg.MinLen)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("%w: Workers=%d; must be >= 1",
			ErrInvalidParameter, cfg.Workers)
	}
	return nil
}

// ParseConfig decodes a configuration from JSON. Unknown members are
// rejected. Defaults are not applied.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := cfg.Decode(data); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode sets the members of cfg present in the JSON data. Fields without a
// member keep their values. Unknown members are rejected.
func (cfg *Config) Decode(data []byte) error {
	c := *cfg
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return fmt.Errorf("%w: json data unmarshal error: %w",
			ErrInvalidParameter, err)
	}
	*cfg = c
	return nil
}
