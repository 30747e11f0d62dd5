package data

import (
	"fmt"
	"time"
)

// FitMode controls how a source is mapped onto the target canvas.
// Every mode produces an image of exactly Width x Height.
type FitMode string

const (
	FitStretch FitMode = "stretch" // resize to the exact size, aspect ratio ignored
	FitContain FitMode = "contain" // fit inside, pad with transparency
	FitCover   FitMode = "cover"   // fill the canvas, center-crop the overflow
)

// Valid reports whether f is a known fit mode. The empty value counts as stretch.
func (f FitMode) Valid() bool {
	switch f {
	case "", FitStretch, FitContain, FitCover:
		return true
	}
	return false
}

// Output formats understood by the renderer.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

type ConversionJob struct {
	Source      string
	Destination string
	Width       int
	Height      int
	Fit         FitMode // defaults to FitStretch
	Format      string  // defaults to FormatPNG
}

func (j ConversionJob) String() string {
	return fmt.Sprintf("%s -> %s (%dx%d)", j.Source, j.Destination, j.Width, j.Height)
}

// FitOrDefault returns the job's fit mode, falling back to stretch.
func (j ConversionJob) FitOrDefault() FitMode {
	if j.Fit == "" {
		return FitStretch
	}
	return j.Fit
}

// FormatOrDefault returns the job's output format, falling back to PNG.
func (j ConversionJob) FormatOrDefault() string {
	if j.Format == "" {
		return FormatPNG
	}
	return j.Format
}

// JobResult is the outcome of one conversion job. Err is nil on success.
type JobResult struct {
	Job      ConversionJob
	Err      error
	Duration time.Duration
}

func (r JobResult) OK() bool {
	return r.Err == nil
}

// BatchReport collects one result per submitted job, in submission order.
type BatchReport struct {
	RunID    string
	Results  []JobResult
	Started  time.Time
	Finished time.Time
}

func (b BatchReport) Failed() []JobResult {
	var failed []JobResult
	for _, r := range b.Results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}

func (b BatchReport) Succeeded() int {
	n := 0
	for _, r := range b.Results {
		if r.OK() {
			n++
		}
	}
	return n
}

// OK reports whether every job in the batch succeeded.
func (b BatchReport) OK() bool {
	return len(b.Failed()) == 0
}

func (b BatchReport) Elapsed() time.Duration {
	return b.Finished.Sub(b.Started)
}
