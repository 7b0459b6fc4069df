package janitor

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/GoSim-25-26J-441/project-submissions/internal/submissions/repository"
	"github.com/GoSim-25-26J-441/project-submissions/internal/submissions/uploads"
)

// Janitor removes uploads no project record refers to. Uploads younger than
// grace are kept so an in-flight submission never loses its file.
type Janitor struct {
	store    repository.Store
	uploader *uploads.Uploader
	grace    time.Duration
	now      func() time.Time
	cron     *cron.Cron
}

// MinGrace is the smallest grace period New accepts; shorter values are raised to it.
const MinGrace = time.Minute

func New(store repository.Store, uploader *uploads.Uploader, grace time.Duration) *Janitor {
	if grace < MinGrace {
		grace = MinGrace
	}
	return &Janitor{
		store:    store,
		uploader: uploader,
		grace:    grace,
		now:      time.Now,
	}
}

// Sweep deletes orphaned uploads and returns how many were removed.
func (j *Janitor) Sweep(ctx context.Context) (int, error) {
	projects, err := j.store.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load projects: %w", err)
	}

	referenced := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		if name, ok := uploads.FilenameFromURL(p.FileURL); ok {
			referenced[name] = struct{}{}
		}
		if p.File != "" {
			referenced[filepath.Base(p.File)] = struct{}{}
		}
	}

	entries, err := j.uploader.List()
	if err != nil {
		return 0, err
	}

	cutoff := j.now().Add(-j.grace)
	removed := 0
	for _, e := range entries {
		if _, ok := referenced[e.Filename]; ok {
			continue
		}
		if e.ModTime.After(cutoff) {
			continue
		}
		if err := j.uploader.Remove(e.Filename); err != nil {
			return removed, fmt.Errorf("remove %s: %w", e.Filename, err)
		}
		removed++
	}
	return removed, nil
}

// Start schedules Sweep on spec (standard five-field cron or @every descriptors).
func (j *Janitor) Start(spec string) error {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		removed, err := j.Sweep(ctx)
		if err != nil {
			log.Printf("[error] operation=janitor error=%v", err)
			return
		}
		if removed > 0 {
			log.Printf("[info] operation=janitor removed=%d", removed)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule janitor: %w", err)
	}

	j.cron = c
	c.Start()
	log.Printf("Upload janitor started (schedule %q, grace %s)", spec, j.grace)
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (j *Janitor) Stop() {
	if j.cron == nil {
		return
	}
	<-j.cron.Stop().Done()
}
