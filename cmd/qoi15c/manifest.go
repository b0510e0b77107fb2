package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes a batch of encode jobs for the --manifest flag: a list
// of raw 16-bit sample files to pack into frames in one invocation, each
// with its own geometry and optional per-job overrides.
type Manifest struct {
	Jobs []ManifestJob `yaml:"jobs"`
}

// ManifestJob is one entry of a Manifest.
type ManifestJob struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	Width       uint32 `yaml:"width"`
	Height      uint32 `yaml:"height"`
	Shift       *uint  `yaml:"shift,omitempty"`
	TableFirst  bool   `yaml:"table_first,omitempty"`
	Compression string `yaml:"compression,omitempty"`
}

// loadManifest reads and parses a YAML manifest file.
func loadManifest(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	return &m, nil
}
