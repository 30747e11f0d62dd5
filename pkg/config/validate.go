package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/kerbaras/appassets/pkg/data"
	"github.com/kerbaras/appassets/pkg/render"
)

// Validate ensures the manifest is usable.
func (m *Manifest) Validate() error {
	if err := m.validateDefaults(); err != nil {
		return err
	}
	if m.Concurrency < 0 {
		return errors.New("concurrency must be zero or positive")
	}
	return m.validateJobs()
}

func (m *Manifest) validateDefaults() error {
	if !data.FitMode(m.Defaults.Fit).Valid() {
		return fmt.Errorf("defaults.fit: unsupported value %q", m.Defaults.Fit)
	}
	if !render.SupportedFormat(m.Defaults.Format) {
		return fmt.Errorf("defaults.format: unsupported value %q", m.Defaults.Format)
	}
	if m.Defaults.Quality != 0 && (m.Defaults.Quality < 1 || m.Defaults.Quality > 100) {
		return errors.New("defaults.quality must be between 1 and 100")
	}
	return nil
}

func (m *Manifest) validateJobs() error {
	if len(m.Jobs) == 0 {
		return ErrNoJobs
	}

	seen := make(map[string]int, len(m.Jobs))
	for i, job := range m.Jobs {
		if job.Source == "" {
			return fmt.Errorf("jobs[%d].source must be set", i)
		}
		if job.Destination == "" {
			return fmt.Errorf("jobs[%d].destination must be set", i)
		}
		if job.Width <= 0 || job.Height <= 0 {
			return fmt.Errorf("jobs[%d]: width and height must be positive, got %dx%d", i, job.Width, job.Height)
		}
		if job.Width > render.MaxDimension || job.Height > render.MaxDimension {
			return fmt.Errorf("jobs[%d]: width and height must not exceed %d, got %dx%d", i, render.MaxDimension, job.Width, job.Height)
		}
		if !data.FitMode(job.Fit).Valid() {
			return fmt.Errorf("jobs[%d].fit: unsupported value %q", i, job.Fit)
		}
		if !render.SupportedFormat(job.Format) {
			return fmt.Errorf("jobs[%d].format: unsupported value %q", i, job.Format)
		}

		dest := filepath.Clean(job.Destination)
		if prev, ok := seen[dest]; ok {
			return fmt.Errorf("jobs[%d].destination %q is already written by jobs[%d]", i, job.Destination, prev)
		}
		seen[dest] = i
	}
	return nil
}
