// Package jobmgr runs named background jobs with cancellation and in-memory
// tracking. A name can only run once at a time, which the playback engine
// relies on to keep a single prefetch in flight per guild.
//
//	jm := jobmgr.NewManager(func(msg string) {
//	    log.Println("[Job]", msg)
//	})
//
//	err := jm.StartAsync("prefetch:1234", func(ctx context.Context) error {
//	    // do work until ctx is cancelled
//	    return nil
//	})
//
//	// later...
//	_ = jm.Stop("prefetch:1234")
//
// Intentionally minimal: no retries, no worker pools, no persistence. Jobs
// run in their own goroutine and are removed automatically on completion.
package jobmgr

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Job is a running unit of work, tracked by Manager.
type Job struct {
	Name   string
	Cancel context.CancelFunc
}

// StatusReporter receives lifecycle messages such as "running:prefetch:1234",
// "error:prefetch:1234:deadline exceeded" or "done:prefetch:1234".
type StatusReporter func(string)

// Manager starts, stops and tracks jobs. Safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	jobs     map[string]*Job
	Reporter StatusReporter
}

// NewManager creates a Manager. The reporter may be nil.
func NewManager(reporter StatusReporter) *Manager {
	return &Manager{
		jobs:     make(map[string]*Job),
		Reporter: reporter,
	}
}

// StartAsync runs a job in a separate goroutine and returns immediately.
// If a job with the same name is already running, an error is returned.
// Jobs are removed automatically after completion (success or failure).
func (m *Manager) StartAsync(name string, runner func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(context.Background())
	job := &Job{Name: name, Cancel: cancel}

	m.mu.Lock()
	if _, exists := m.jobs[name]; exists {
		m.mu.Unlock()
		cancel()
		return fmt.Errorf("job '%s' is already running", name)
	}
	m.jobs[name] = job
	m.mu.Unlock()

	go func() {
		m.report("running:" + name)

		if err := runner(ctx); err != nil {
			m.report("error:" + name + ":" + err.Error())
		} else {
			m.report("done:" + name)
		}

		m.mu.Lock()
		delete(m.jobs, name)
		m.mu.Unlock()
	}()

	return nil
}

// Stop cancels a running job by name. Returns an error when it is not
// running.
func (m *Manager) Stop(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[name]
	if !ok {
		return fmt.Errorf("job '%s' not running", name)
	}

	job.Cancel()
	delete(m.jobs, name)
	return nil
}

// IsRunning reports whether the named job is still active.
func (m *Manager) IsRunning(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.jobs[name]
	return ok
}

// List returns the active job names.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.jobs))
	for k := range m.jobs {
		out = append(out, k)
	}
	return out
}

// Status returns a human-readable summary of active jobs.
func (m *Manager) Status() string {
	active := m.List()
	if len(active) == 0 {
		return "No jobs are running."
	}
	return fmt.Sprintf("Running jobs: %s", strings.Join(active, ", "))
}

func (m *Manager) report(s string) {
	if m.Reporter != nil {
		m.Reporter(s)
	}
}
