// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dig

import (
	"context"
	"fmt"

	"github.com/siemens/subdig/dnsworker"
	"github.com/siemens/subdig/output"
	"github.com/siemens/subdig/resolver"
	"github.com/siemens/subdig/scope"
	"github.com/siemens/subdig/types"

	"github.com/thediveo/lxkns/log"
)

// DefaultBatchSize is the default maximum number of subdomains per batch.
const DefaultBatchSize = 500

// Sink consumes the output records of a batch, returning the number of
// in-scope records written. [output.Writer] is a Sink.
type Sink interface {
	Write(records []output.Record) (int, error)
}

// Progress gets told about each resolved subdomain as well as each completed
// batch. [progress.Reporter] is a Progress.
type Progress interface {
	Tick()
	BatchDone()
}

// Stats counts what a Digger has dug so far.
type Stats struct {
	Subdomains int // subdomains processed, including duplicates.
	Batches    int // batches processed.
	Rows       int // unique rows written.
	InScope    int // unique in-scope rows written.
}

// Digger digs the IP addresses of subdomains, batch by batch. Within a batch,
// the lookups run concurrently, limited by the number of workers. Batches are
// strictly processed one after another: the next batch only starts after all
// results of the previous batch have been written and reported.
type Digger struct {
	resolver  *resolver.Resolver
	scope     scope.Set
	sink      Sink
	progress  Progress
	extract   output.DomainExtractor
	batchSize int
	workers   int
	stats     Stats
}

// Option can be passed to New when creating new Digger objects.
type Option func(*Digger)

// New returns a new Digger resolving subdomains using the specified resolver
// and writing the results to the specified sink. By default, a Digger uses
// [DefaultBatchSize] and [dnsworker.MaxWorkers], no scope, no progress
// reporting, and extracts registrable domains with
// [output.RegisteredDomain].
func New(r *resolver.Resolver, sink Sink, options ...Option) *Digger {
	d := &Digger{
		resolver:  r,
		sink:      sink,
		extract:   output.RegisteredDomain,
		batchSize: DefaultBatchSize,
		workers:   dnsworker.MaxWorkers,
	}
	for _, opt := range options {
		opt(d)
	}
	if d.progress == nil {
		d.progress = nopProgress{}
	}
	return d
}

// WithBatchSize sets the maximum number of subdomains per batch. Sizes less
// than 1 are ignored.
func WithBatchSize(size int) Option {
	return func(d *Digger) {
		if size >= 1 {
			d.batchSize = size
		}
	}
}

// WithWorkers sets the maximum number of concurrent lookups, which gets
// clamped into [dnsworker.MinWorkers..dnsworker.MaxWorkers].
func WithWorkers(workers int) Option {
	return func(d *Digger) {
		d.workers = dnsworker.ClampSize(workers)
	}
}

// WithScope sets the IP addresses considered to be in scope.
func WithScope(s scope.Set) Option {
	return func(d *Digger) {
		d.scope = s
	}
}

// WithProgress sets the progress reporter.
func WithProgress(p Progress) Option {
	return func(d *Digger) {
		d.progress = p
	}
}

// WithDomainExtractor sets the function for extracting registrable domains;
// nil leaves the domain column empty.
func WithDomainExtractor(extract output.DomainExtractor) Option {
	return func(d *Digger) {
		d.extract = extract
	}
}

// Workers returns the (clamped) maximum number of concurrent lookups.
func (d *Digger) Workers() int { return d.workers }

// Stats returns the statistics for all batches dug so far.
func (d *Digger) Stats() Stats { return d.stats }

// Batches partitions the subdomains into contiguous batches of at most size
// subdomains each, keeping the order of subdomains. The batches share their
// backing array with subdomains.
func Batches(subdomains []string, size int) [][]string {
	if size < 1 {
		size = 1
	}
	batches := make([][]string, 0, (len(subdomains)+size-1)/size)
	for len(subdomains) > size {
		batches = append(batches, subdomains[:size:size])
		subdomains = subdomains[size:]
	}
	if len(subdomains) > 0 {
		batches = append(batches, subdomains)
	}
	return batches
}

// DigFQDNs digs the given list of subdomains batch by batch, writing the
// deduplicated results of each batch to the sink before starting with the
// next batch. Please note that duplicates are only removed within the same
// batch, but not across batches.
//
// DigFQDNs returns only when failing to write results, or when the context
// gets cancelled; resolution failures are results, not errors.
func (d *Digger) DigFQDNs(ctx context.Context, subdomains []string) error {
	for idx, batch := range Batches(subdomains, d.batchSize) {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Debugf("digging batch #%d with %d subdomains", idx+1, len(batch))
		if err := d.digBatch(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

// digBatch resolves a single batch of subdomains using a fresh pool of DNS
// workers, waits for all lookups to complete, and then writes and reports the
// batch results.
func (d *Digger) digBatch(ctx context.Context, batch []string) error {
	results := NewResultSet()
	workers := dnsworker.New(d.workers)
	for _, subdomain := range batch {
		subdomain := subdomain
		workers.Submit(func() {
			results.Add(types.Result{
				Subdomain: subdomain,
				Outcome:   d.resolver.Resolve(ctx, subdomain),
			})
			d.progress.Tick()
		})
	}
	workers.StopWait()

	records := make([]output.Record, 0, results.Len())
	for _, result := range results.Get() {
		records = append(records, output.NewRecord(
			result, scope.IsInScope(result.Outcome, d.scope), d.extract))
	}
	output.SortRecords(records)
	inScope, err := d.sink.Write(records)
	if err != nil {
		return fmt.Errorf("cannot write batch results: %w", err)
	}
	d.stats.Subdomains += len(batch)
	d.stats.Batches++
	d.stats.Rows += len(records)
	d.stats.InScope += inScope
	d.progress.BatchDone()
	return nil
}

type nopProgress struct{}

func (nopProgress) Tick()      {}
func (nopProgress) BatchDone() {}
