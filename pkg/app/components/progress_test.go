package components

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kerbaras/appassets/pkg/data"
	"github.com/kerbaras/appassets/pkg/services"
)

var testJob = data.ConversionJob{
	Source:      "assets/icon.svg",
	Destination: "assets/icon.png",
	Width:       1024,
	Height:      1024,
}

func TestNoticeComplete(t *testing.T) {
	line := Notice(services.ConversionProgress{Job: testJob, Status: services.StatusComplete})

	if !strings.Contains(line, "assets/icon.svg") || !strings.Contains(line, "assets/icon.png") {
		t.Errorf("Expected source and destination in %q", line)
	}
}

func TestNoticeError(t *testing.T) {
	line := Notice(services.ConversionProgress{
		Job:    testJob,
		Status: services.StatusError,
		Err:    errors.New("open assets/icon.svg: no such file or directory"),
	})

	if !strings.Contains(line, "assets/icon.svg") {
		t.Errorf("Expected source in %q", line)
	}
	if !strings.Contains(line, "no such file or directory") {
		t.Errorf("Expected error description in %q", line)
	}
	if strings.Contains(line, "assets/icon.png") {
		t.Errorf("Failure line should not claim a destination: %q", line)
	}
}

func TestNoticeConvertingIsSilent(t *testing.T) {
	line := Notice(services.ConversionProgress{Job: testJob, Status: services.StatusConverting})
	if line != "" {
		t.Errorf("Expected no line while converting, got %q", line)
	}
}

func TestNoticeDone(t *testing.T) {
	report := &data.BatchReport{
		Results: []data.JobResult{
			{Job: testJob},
			{Job: testJob, Err: errors.New("boom")},
		},
	}

	line := Notice(services.ConversionProgress{Status: services.StatusDone, Report: report})
	if !strings.Contains(line, "Done: 1 converted, 1 failed") {
		t.Errorf("Unexpected completion line %q", line)
	}

	if got := CompletionLine(nil); !strings.Contains(got, "Done") {
		t.Errorf("Expected bare completion line, got %q", got)
	}
}

func TestSummary(t *testing.T) {
	report := data.BatchReport{
		Results: []data.JobResult{
			{Job: testJob, Duration: 12 * time.Millisecond},
			{Job: data.ConversionJob{Source: "missing.svg", Destination: "out.png", Width: 48, Height: 48}, Err: errors.New("missing")},
		},
	}

	view := Summary(report)

	for _, want := range []string{"Status", "assets/icon.svg", "1024x1024", "ok", "failed", "missing.svg", "48x48", "12ms"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected summary to contain %q\n%s", want, view)
		}
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"short", 10, "short"},
		{"assets/very/long/icon.svg", 10, "…/icon.svg"},
	}

	for _, tt := range tests {
		if got := truncateString(tt.input, tt.max); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}
