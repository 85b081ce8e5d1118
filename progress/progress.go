// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package progress

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// DefaultInterval is the default number of completed subdomains between two
// consecutive status updates.
const DefaultInterval = 100

// Terminal is where status lines get rendered to. After rendering a status
// line, Flush gets called so that the terminal can replace the previous
// status line with the new one. [github.com/gosuri/uilive.Writer] is a
// Terminal.
type Terminal interface {
	io.Writer
	Flush() error
}

// Estimate returns the estimated remaining time, based on the elapsed time for
// the subdomains processed so far. Estimate returns false if no subdomains
// have been processed yet.
func Estimate(processed, total int, elapsed time.Duration) (time.Duration, bool) {
	if processed <= 0 {
		return 0, false
	}
	remaining := total - processed
	if remaining < 0 {
		remaining = 0
	}
	return time.Duration(float64(elapsed) / float64(processed) * float64(remaining)), true
}

// Status returns the status line for the specified progress, or false if no
// subdomains have been processed yet.
func Status(processed, total int, elapsed time.Duration) (string, bool) {
	eta, ok := Estimate(processed, total, elapsed)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("Processed %d/%d subdomains. Estimated time to completion: %.2f seconds",
		processed, total, eta.Seconds()), true
}

// Reporter keeps track of how many subdomains out of a total have been
// processed and renders status lines to a [Terminal]: every time the count
// of processed subdomains reaches a multiple of the interval, as well as
// after each completed batch.
type Reporter struct {
	term     Terminal
	interval int
	now      func() time.Time

	mu        sync.Mutex
	total     int
	processed int
	start     time.Time
	err       error // first terminal rendering error.
}

// Option can be passed to New when creating new Reporter objects.
type Option func(*Reporter)

// New returns a new Reporter rendering to the specified terminal.
func New(term Terminal, options ...Option) *Reporter {
	r := &Reporter{
		term:     term,
		interval: DefaultInterval,
		now:      time.Now,
	}
	for _, opt := range options {
		opt(r)
	}
	r.start = r.now()
	return r
}

// WithInterval sets the number of processed subdomains between status
// updates. Intervals less than 1 are ignored.
func WithInterval(interval int) Option {
	return func(r *Reporter) {
		if interval >= 1 {
			r.interval = interval
		}
	}
}

// WithClock sets the function returning the current time.
func WithClock(now func() time.Time) Option {
	return func(r *Reporter) {
		r.now = now
	}
}

// Start tracking the progress of a new run of total subdomains, resetting
// the count of processed subdomains and the start time.
func (r *Reporter) Start(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total = total
	r.processed = 0
	r.start = r.now()
}

// Tick counts another processed subdomain, rendering a status update if the
// count has reached a multiple of the interval. Tick is safe for concurrent
// use.
func (r *Reporter) Tick() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.processed++
	if r.processed%r.interval == 0 {
		r.render()
	}
}

// BatchDone renders a status update, regardless of the interval.
func (r *Reporter) BatchDone() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.render()
}

// Processed returns the number of processed subdomains since Start.
func (r *Reporter) Processed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.processed
}

// Err returns the first error encountered while rendering to the terminal,
// if any.
func (r *Reporter) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// render the current status to the terminal; the caller must hold the lock.
func (r *Reporter) render() {
	status, ok := Status(r.processed, r.total, r.now().Sub(r.start))
	if !ok {
		return
	}
	_, err := fmt.Fprintln(r.term, status)
	if err == nil {
		err = r.term.Flush()
	}
	if err != nil && r.err == nil {
		r.err = err
	}
}
