// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/siemens/subdig/dig"
	"github.com/siemens/subdig/output"
	"github.com/siemens/subdig/progress"
	"github.com/siemens/subdig/resolver"
	"github.com/siemens/subdig/scope"

	"github.com/thediveo/lxkns/log"
)

// Summary sums up a completed pipeline run.
type Summary struct {
	Files         int           // input files processed.
	Subdomains    int           // subdomains processed, including duplicates.
	Rows          int           // rows written to the primary results file.
	InScope       int           // rows written to the in-scope results file.
	Cached        int           // unique subdomains resolved.
	CacheHits     int           // resolutions served from the cache.
	Output        string        // path of the primary results file.
	InScopeOutput string        // path of the in-scope results file, if written to.
	Elapsed       time.Duration // duration of the whole run.
}

// Option can be passed to Run.
type Option func(*runner)

type runner struct {
	lookup resolver.Lookuper
	term   progress.Terminal
}

// WithLookuper resolves subdomains using the specified Lookuper instead of
// the platform resolver.
func WithLookuper(l resolver.Lookuper) Option {
	return func(r *runner) {
		r.lookup = l
	}
}

// WithTerminal renders progress status lines to the specified terminal. By
// default, progress isn't shown.
func WithTerminal(term progress.Terminal) Option {
	return func(r *runner) {
		r.term = term
	}
}

// Run the pipeline: after validating the configuration and loading the scope
// file (if any), process the input files one after another in the order
// given, appending the results to the output files.
//
// Run returns a [*ConfigError] for configuration problems, including missing
// or unreadable input and scope files, and an [*OutputError] when failing to
// write results.
func Run(ctx context.Context, cfg Config, options ...Option) (Summary, error) {
	start := time.Now()
	r := &runner{}
	for _, opt := range options {
		opt(r)
	}
	if r.term == nil {
		r.term = nopTerminal{}
	}

	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	scopeSet, err := scope.Load(cfg.Scope)
	if err != nil {
		return Summary{}, &ConfigError{Err: err}
	}
	if cfg.Scope != "" && scopeSet.Len() == 0 {
		log.Warnf("scope file %s doesn't list any IP addresses", cfg.Scope)
	}
	log.Debugf("%d IP addresses in scope", scopeSet.Len())

	writerOpts := []output.Option{}
	if cfg.Plain {
		writerOpts = append(writerOpts, output.WithoutDomain())
	}
	if cfg.InScopeOutput != "" {
		writerOpts = append(writerOpts, output.WithInScopePath(cfg.InScopeOutput))
	}
	w, err := output.NewWriter(cfg.Output, writerOpts...)
	if err != nil {
		return Summary{}, &OutputError{Err: err}
	}

	cache := resolver.NewCache()
	resolverOpts := []resolver.Option{resolver.WithCache(cache)}
	if r.lookup != nil {
		resolverOpts = append(resolverOpts, resolver.WithLookuper(r.lookup))
	}
	reporter := progress.New(r.term, progress.WithInterval(cfg.ReportEvery))
	digOpts := []dig.Option{
		dig.WithBatchSize(cfg.BatchSize),
		dig.WithWorkers(cfg.Workers),
		dig.WithScope(scopeSet),
		dig.WithProgress(reporter),
	}
	if cfg.Plain {
		digOpts = append(digOpts, dig.WithDomainExtractor(nil))
	}
	digger := dig.New(resolver.New(resolverOpts...), w, digOpts...)

	summary := Summary{Output: w.Path()}
	summary.Files, err = digInputs(ctx, cfg.Inputs, digger, reporter)
	if cerr := w.Close(); cerr != nil && err == nil {
		err = &OutputError{Err: cerr}
	}
	if rerr := reporter.Err(); rerr != nil {
		log.Warnf("cannot render progress: %s", rerr.Error())
	}
	stats := digger.Stats()
	summary.Subdomains = stats.Subdomains
	summary.Rows = stats.Rows
	summary.InScope = stats.InScope
	if stats.InScope > 0 {
		summary.InScopeOutput = w.InScopePath()
	}
	summary.Cached = cache.Len()
	summary.CacheHits = cache.Hits()
	summary.Elapsed = time.Since(start)
	return summary, err
}

// digInputs digs the subdomains of the input files one after another,
// returning the number of input files completely processed.
func digInputs(ctx context.Context, inputs []string, digger *dig.Digger, reporter *progress.Reporter) (int, error) {
	for idx, input := range inputs {
		subdomains, err := ReadSubdomains(input)
		if err != nil {
			return idx, &ConfigError{Err: err}
		}
		log.Debugf("digging %d subdomains from %s", len(subdomains), input)
		reporter.Start(len(subdomains))
		if err := digger.DigFQDNs(ctx, subdomains); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return idx, err
			}
			return idx, &OutputError{Err: fmt.Errorf("%s: %w", input, err)}
		}
	}
	return len(inputs), nil
}

// String returns the human-readable completion message.
func (s Summary) String() string {
	msg := fmt.Sprintf("Subdomain resolution completed. %d subdomains from %d file(s) in %.2f seconds, %d rows written to %s",
		s.Subdomains, s.Files, s.Elapsed.Seconds(), s.Rows, s.Output)
	if s.InScopeOutput != "" {
		msg += fmt.Sprintf(", %d in-scope rows written to %s", s.InScope, s.InScopeOutput)
	}
	return msg
}

type nopTerminal struct{}

func (nopTerminal) Write(p []byte) (int, error) { return len(p), nil }
func (nopTerminal) Flush() error                { return nil }
