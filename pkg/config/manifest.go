package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kerbaras/appassets/pkg/data"
	"github.com/kerbaras/appassets/pkg/render"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrNoJobs = errors.New("no conversion jobs configured")

// Manifest is a user supplied list of conversion jobs.
//
// Relative job paths resolve against BaseDir; a relative BaseDir resolves
// against the directory holding the manifest file.
type Manifest struct {
	BaseDir     string      `toml:"base_dir" yaml:"base_dir"`
	Concurrency int         `toml:"concurrency" yaml:"concurrency"`
	Defaults    Defaults    `toml:"defaults" yaml:"defaults"`
	Jobs        []JobConfig `toml:"jobs" yaml:"jobs"`

	// dir is where the manifest was loaded from.
	dir string
}

// Defaults apply to every job that leaves the field empty
type Defaults struct {
	Fit     string `toml:"fit" yaml:"fit"`
	Format  string `toml:"format" yaml:"format"`
	Quality int    `toml:"quality" yaml:"quality"`
}

type JobConfig struct {
	Source      string `toml:"source" yaml:"source"`
	Destination string `toml:"destination" yaml:"destination"`
	Width       int    `toml:"width" yaml:"width"`
	Height      int    `toml:"height" yaml:"height"`
	Fit         string `toml:"fit" yaml:"fit"`
	Format      string `toml:"format" yaml:"format"`
}

// Load reads and validates a manifest. The decoder is chosen by extension:
// .toml, or .yaml/.yml.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m := &Manifest{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(m); err != nil {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(m); err != nil {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest type %q (use .toml, .yaml or .yml)", filepath.Ext(path))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest path: %w", err)
	}
	m.dir = filepath.Dir(abs)
	m.normalize()

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// FromPreset wraps a preset in a manifest rooted at the working directory
func FromPreset(preset Preset) *Manifest {
	m := &Manifest{}
	for _, job := range preset.Jobs {
		m.Jobs = append(m.Jobs, JobConfig{
			Source:      job.Source,
			Destination: job.Destination,
			Width:       job.Width,
			Height:      job.Height,
			Fit:         string(job.Fit),
			Format:      job.Format,
		})
	}
	m.normalize()
	return m
}

func (m *Manifest) normalize() {
	m.Defaults.Fit = strings.ToLower(strings.TrimSpace(m.Defaults.Fit))
	m.Defaults.Format = normalizeFormat(m.Defaults.Format)

	for i := range m.Jobs {
		job := &m.Jobs[i]
		job.Source = strings.TrimSpace(job.Source)
		job.Destination = strings.TrimSpace(job.Destination)
		job.Fit = strings.ToLower(strings.TrimSpace(job.Fit))
		job.Format = normalizeFormat(job.Format)
		if job.Fit == "" {
			job.Fit = m.Defaults.Fit
		}
		if job.Format == "" {
			job.Format = m.Defaults.Format
		}
	}
}

func normalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "jpg" {
		return data.FormatJPEG
	}
	return format
}

// ConversionJobs returns the jobs in manifest order with paths resolved
func (m *Manifest) ConversionJobs() []data.ConversionJob {
	base := m.BaseDir
	if m.dir != "" && !filepath.IsAbs(base) {
		base = filepath.Join(m.dir, base)
	}

	jobs := make([]data.ConversionJob, 0, len(m.Jobs))
	for _, job := range m.Jobs {
		jobs = append(jobs, data.ConversionJob{
			Source:      resolve(base, job.Source),
			Destination: resolve(base, job.Destination),
			Width:       job.Width,
			Height:      job.Height,
			Fit:         data.FitMode(job.Fit),
			Format:      job.Format,
		})
	}
	return jobs
}

func resolve(base, path string) string {
	if base == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// RenderSettings returns encoder settings with the manifest's quality applied
func (m *Manifest) RenderSettings() render.Settings {
	settings := render.DefaultSettings()
	if m.Defaults.Quality > 0 {
		settings.Quality = m.Defaults.Quality
	}
	return settings
}
