// Package script loads and saves YAML script files: the three ordered
// lists a run is built from.
package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyScript indicates a script file whose three lists are all empty.
var ErrEmptyScript = errors.New("script: no side dishes or captions")

// Script is one runnable performance.
type Script struct {
	SideDishes    []string `yaml:"side_dishes"`
	PreCaptions   []string `yaml:"pre_captions"`
	AfterCaptions []string `yaml:"after_captions"`
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script %s: %w", path, err)
	}
	return &sc, nil
}

// Save writes a script as YAML.
func Save(path string, sc *Script) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Example returns a filled sample script, used by script scaffolding.
func Example() *Script {
	return &Script{
		SideDishes:    []string{"からあげ", "コロッケ", "ハンバーグ"},
		PreCaptions:   []string{"きょうのおかず"},
		AfterCaptions: []string{"おしまい"},
	}
}

// Validate rejects scripts with nothing to show.
func (s *Script) Validate() error {
	if len(s.SideDishes) == 0 && len(s.PreCaptions) == 0 && len(s.AfterCaptions) == 0 {
		return ErrEmptyScript
	}
	return nil
}
