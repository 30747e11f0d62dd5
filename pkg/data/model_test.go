package data

import (
	"errors"
	"testing"
	"time"
)

func TestConversionJobDefaults(t *testing.T) {
	job := ConversionJob{
		Source:      "assets/icon.svg",
		Destination: "assets/icon.png",
		Width:       1024,
		Height:      1024,
	}

	if job.FitOrDefault() != FitStretch {
		t.Errorf("Expected default fit %q, got %q", FitStretch, job.FitOrDefault())
	}

	if job.FormatOrDefault() != FormatPNG {
		t.Errorf("Expected default format %q, got %q", FormatPNG, job.FormatOrDefault())
	}

	job.Fit = FitCover
	job.Format = FormatJPEG
	if job.FitOrDefault() != FitCover {
		t.Errorf("Expected fit %q, got %q", FitCover, job.FitOrDefault())
	}
	if job.FormatOrDefault() != FormatJPEG {
		t.Errorf("Expected format %q, got %q", FormatJPEG, job.FormatOrDefault())
	}
}

func TestConversionJobString(t *testing.T) {
	job := ConversionJob{Source: "a.svg", Destination: "a.png", Width: 48, Height: 48}

	want := "a.svg -> a.png (48x48)"
	if got := job.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFitModeValid(t *testing.T) {
	tests := []struct {
		fit  FitMode
		want bool
	}{
		{"", true},
		{FitStretch, true},
		{FitContain, true},
		{FitCover, true},
		{"tile", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.fit), func(t *testing.T) {
			if got := tt.fit.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBatchReport(t *testing.T) {
	start := time.Now()
	report := BatchReport{
		Results: []JobResult{
			{Job: ConversionJob{Source: "a.svg"}},
			{Job: ConversionJob{Source: "b.svg"}, Err: errors.New("missing")},
			{Job: ConversionJob{Source: "c.svg"}},
		},
		Started:  start,
		Finished: start.Add(2 * time.Second),
	}

	if report.OK() {
		t.Error("Expected report with a failure not to be OK")
	}

	if report.Succeeded() != 2 {
		t.Errorf("Expected 2 succeeded, got %d", report.Succeeded())
	}

	failed := report.Failed()
	if len(failed) != 1 || failed[0].Job.Source != "b.svg" {
		t.Errorf("Expected b.svg as the only failure, got %+v", failed)
	}

	if report.Elapsed() != 2*time.Second {
		t.Errorf("Expected elapsed 2s, got %v", report.Elapsed())
	}

	empty := BatchReport{}
	if !empty.OK() {
		t.Error("Expected empty report to be OK")
	}
}
