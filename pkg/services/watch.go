package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/kerbaras/appassets/pkg/data"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher re-runs conversion jobs whenever one of their sources changes
type Watcher struct {
	converter *Converter
	jobs      []data.ConversionJob
	bySource  map[string][]int

	// Debounce is how long a source must stay quiet before it is converted.
	Debounce time.Duration
}

// NewWatcher creates a watcher for the given jobs
func NewWatcher(converter *Converter, jobs []data.ConversionJob) *Watcher {
	bySource := make(map[string][]int)
	for i, job := range jobs {
		key := sourceKey(job.Source)
		bySource[key] = append(bySource[key], i)
	}

	return &Watcher{
		converter: converter,
		jobs:      jobs,
		bySource:  bySource,
		Debounce:  defaultDebounce,
	}
}

// Run converts every job once, then keeps converting the jobs of changed
// sources until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer fsWatcher.Close()

	// Directories are watched instead of files so editors that replace the
	// file on save keep triggering events.
	watched := make(map[string]bool)
	for source := range w.bySource {
		dir := filepath.Dir(source)
		if watched[dir] {
			continue
		}
		if err := fsWatcher.Add(dir); err != nil {
			w.converter.logger.Warn("cannot watch source directory", "dir", dir, "error", err)
			continue
		}
		watched[dir] = true
		w.converter.logger.Debug("watching source directory", "dir", dir)
	}

	w.converter.Run(ctx, w.jobs)

	if len(watched) == 0 {
		return fmt.Errorf("no source directory could be watched")
	}

	fired := make(chan string)
	timers := make(map[string]*time.Timer)
	defer func() {
		for _, timer := range timers {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			key := sourceKey(event.Name)
			if _, ok := w.bySource[key]; !ok {
				continue
			}

			if timer, exists := timers[key]; exists {
				timer.Stop()
			}
			timers[key] = time.AfterFunc(w.Debounce, func() {
				select {
				case fired <- key:
				case <-ctx.Done():
				}
			})

		case key := <-fired:
			delete(timers, key)
			w.converter.Run(ctx, w.jobsFor(key))

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.converter.logger.Warn("watcher error", "error", err)
		}
	}
}

func (w *Watcher) jobsFor(key string) []data.ConversionJob {
	indexes := w.bySource[key]
	jobs := make([]data.ConversionJob, 0, len(indexes))
	for _, i := range indexes {
		jobs = append(jobs, w.jobs[i])
	}
	return jobs
}

func sourceKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
