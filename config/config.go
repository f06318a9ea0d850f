// Package config loads fly-scan planning parameters from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/AnkushinDaniil/flyscan/entity/format"
	"github.com/AnkushinDaniil/flyscan/entity/mode"
	"github.com/AnkushinDaniil/flyscan/entity/parameters"
)

const maxFileSize = 1 << 20

// Scan mirrors the YAML scan file.
type Scan struct {
	Mode         string  `yaml:"mode"`
	Format       string  `yaml:"format"`
	Output       string  `yaml:"output"`
	ExposureTime float64 `yaml:"exposure_time"` // s
	ReadoutTime  float64 `yaml:"readout_time"`  // s
	CameraSizeX  float64 `yaml:"camera_size_x"` // pixel
	AngularRange float64 `yaml:"angular_range"` // deg
	NumberOfProj int     `yaml:"number_of_proj"`
	BlurBudget   float64 `yaml:"blur_budget"` // pixel
	Sweep        Sweep   `yaml:"sweep"`
}

type Sweep struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Steps int     `yaml:"steps"`
}

// Default returns the reference 2048 px, 1500 projection half-turn scan.
func Default() *Scan {
	return &Scan{
		Mode:         mode.Blur.String(),
		Format:       format.Text.String(),
		ExposureTime: 0.4,
		ReadoutTime:  0.1,
		CameraSizeX:  2048,
		AngularRange: 180.0,
		NumberOfProj: 1500,
		BlurBudget:   0.00143736498376,
		Sweep: Sweep{
			Min:   0.05,
			Max:   1.0,
			Steps: 50,
		},
	}
}

// Load reads a scan file. Fields omitted from the file keep their
// Default values; unknown fields are rejected.
func Load(path string) (*Scan, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	scan := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(scan); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return scan, nil
}

// Parameters converts the scan into validated model parameters.
func (s *Scan) Parameters() (*parameters.Parameters, error) {
	m, err := mode.UnmarshalText(s.Mode)
	if err != nil {
		return nil, err
	}
	f, err := format.UnmarshalText(s.Format)
	if err != nil {
		return nil, err
	}
	params := &parameters.Parameters{
		Mode:         m,
		Format:       f,
		ExposureTime: s.ExposureTime,
		ReadoutTime:  s.ReadoutTime,
		CameraSizeX:  s.CameraSizeX,
		AngularRange: s.AngularRange,
		NumberOfProj: s.NumberOfProj,
		BlurBudget:   s.BlurBudget,
		Sweep: parameters.Sweep{
			Min:   s.Sweep.Min,
			Max:   s.Sweep.Max,
			Steps: s.Sweep.Steps,
		},
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return params, nil
}
