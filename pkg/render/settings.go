package render

import (
	"errors"
	"fmt"
	"image/png"

	"github.com/kerbaras/appassets/pkg/data"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidSize       = errors.New("invalid target size")
	ErrUnsupportedFit    = errors.New("unsupported fit mode")
)

// MaxDimension is the largest width or height a target may have
const MaxDimension = 16384

// Settings defines how rendered images are encoded
type Settings struct {
	Quality     int                  // JPEG quality (1-100)
	Compression png.CompressionLevel // PNG compression level
}

// DefaultSettings returns the encoder settings used when none are configured
func DefaultSettings() Settings {
	return Settings{
		Quality:     90,
		Compression: png.DefaultCompression,
	}
}

// Target describes the raster a source is rendered into
type Target struct {
	Width  int
	Height int
	Fit    data.FitMode
	Format string
}

// TargetFor builds the render target of a conversion job, applying defaults
func TargetFor(job data.ConversionJob) Target {
	return Target{
		Width:  job.Width,
		Height: job.Height,
		Fit:    job.FitOrDefault(),
		Format: job.FormatOrDefault(),
	}
}

func (t Target) validate() error {
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("%w %dx%d", ErrInvalidSize, t.Width, t.Height)
	}
	if t.Width > MaxDimension || t.Height > MaxDimension {
		return fmt.Errorf("%w %dx%d: exceeds %d", ErrInvalidSize, t.Width, t.Height, MaxDimension)
	}
	if !t.Fit.Valid() {
		return fmt.Errorf("%w: %s", ErrUnsupportedFit, t.Fit)
	}
	if !SupportedFormat(t.Format) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, t.Format)
	}
	return nil
}

// SupportedFormat reports whether format can be encoded. Empty means PNG.
func SupportedFormat(format string) bool {
	switch format {
	case "", data.FormatPNG, data.FormatJPEG, "jpg":
		return true
	}
	return false
}
