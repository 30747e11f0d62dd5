package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kerbaras/appassets/pkg/data"
	"github.com/kerbaras/appassets/pkg/logging"
	"github.com/kerbaras/appassets/pkg/render"
)

// ConversionStatus is the lifecycle stage reported in a ConversionProgress
type ConversionStatus string

const (
	StatusConverting ConversionStatus = "converting"
	StatusComplete   ConversionStatus = "complete"
	StatusError      ConversionStatus = "error"
	StatusDone       ConversionStatus = "done" // whole batch attempted
)

// ConversionProgress represents one notice emitted while a batch runs.
// Every job gets exactly one complete or error notice; every run ends with
// exactly one done notice carrying the report.
type ConversionProgress struct {
	RunID  string
	Job    data.ConversionJob
	Index  int
	Total  int
	Status ConversionStatus
	Err    error
	Report *data.BatchReport
}

// Renderer interface needed by converter
type Renderer interface {
	ProcessFile(path string, target render.Target) ([]byte, error)
}

// Converter runs conversion jobs and writes their outputs
type Converter struct {
	renderer    Renderer
	logger      *slog.Logger
	concurrency int
	onProgress  func(ConversionProgress)

	mu sync.Mutex
}

type Option func(*Converter)

// WithConcurrency sets how many jobs may run at once. Values below 2 keep
// the batch fully sequential.
func WithConcurrency(n int) Option {
	return func(c *Converter) {
		c.concurrency = n
	}
}

// WithProgress registers a callback for conversion notices. Calls are
// serialized, so the callback needs no locking of its own.
func WithProgress(fn func(ConversionProgress)) Option {
	return func(c *Converter) {
		c.onProgress = fn
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewConverter creates a new Converter instance
func NewConverter(renderer Renderer, opts ...Option) *Converter {
	c := &Converter{
		renderer:    renderer,
		logger:      logging.Discard(),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run attempts every job and returns one result per job, in job order.
// A failing job never stops the batch.
func (c *Converter) Run(ctx context.Context, jobs []data.ConversionJob) data.BatchReport {
	report := data.BatchReport{
		RunID:   uuid.NewString(),
		Results: make([]data.JobResult, len(jobs)),
		Started: time.Now(),
	}
	logger := c.logger.With("run", report.RunID)
	logger.Debug("conversion batch started", "jobs", len(jobs), "concurrency", max(c.concurrency, 1))

	if c.concurrency <= 1 {
		for i, job := range jobs {
			report.Results[i] = c.convert(ctx, logger, report.RunID, i, len(jobs), job)
		}
	} else {
		var wg sync.WaitGroup
		semaphore := make(chan struct{}, c.concurrency)

		for i, job := range jobs {
			wg.Add(1)
			go func(i int, job data.ConversionJob) {
				defer wg.Done()
				semaphore <- struct{}{}
				defer func() { <-semaphore }()

				report.Results[i] = c.convert(ctx, logger, report.RunID, i, len(jobs), job)
			}(i, job)
		}

		wg.Wait()
	}

	report.Finished = time.Now()

	failed := len(report.Failed())
	logger.Debug("conversion batch finished",
		"succeeded", report.Succeeded(),
		"failed", failed,
		"elapsed", report.Elapsed().Round(time.Millisecond),
	)

	c.sendProgress(ConversionProgress{
		RunID:  report.RunID,
		Total:  len(jobs),
		Status: StatusDone,
		Report: &report,
	})

	return report
}

// convert runs a single job and reports its outcome
func (c *Converter) convert(ctx context.Context, logger *slog.Logger, runID string, index, total int, job data.ConversionJob) data.JobResult {
	start := time.Now()
	progress := ConversionProgress{
		RunID: runID,
		Job:   job,
		Index: index,
		Total: total,
	}

	err := ctx.Err()
	if err == nil {
		progress.Status = StatusConverting
		c.sendProgress(progress)

		err = c.ConvertJob(job)
	}

	result := data.JobResult{
		Job:      job,
		Err:      err,
		Duration: time.Since(start),
	}

	if err != nil {
		// The progress notice already reports the failure on the console
		logger.Debug("conversion failed", "source", job.Source, "destination", job.Destination, "error", err)
		progress.Status = StatusError
		progress.Err = err
	} else {
		logger.Debug("conversion complete", "source", job.Source, "destination", job.Destination, "duration", result.Duration)
		progress.Status = StatusComplete
	}
	c.sendProgress(progress)

	return result
}

// ConvertJob renders one job and writes the output file
func (c *Converter) ConvertJob(job data.ConversionJob) error {
	output, err := c.renderer.ProcessFile(job.Source, render.TargetFor(job))
	if err != nil {
		return err
	}

	if err := writeFileAtomic(job.Destination, output); err != nil {
		return fmt.Errorf("failed to write %s: %w", job.Destination, err)
	}
	return nil
}

// writeFileAtomic writes through a temp file in the destination directory so
// a failed write never leaves a truncated image behind.
func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// sendProgress delivers a notice to the registered callback, one at a time
func (c *Converter) sendProgress(progress ConversionProgress) {
	if c.onProgress == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.onProgress(progress)
}
