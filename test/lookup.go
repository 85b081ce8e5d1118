// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package test

import (
	"context"
	"net"
	"sync"
	"time"
)

// Lookup is a fake platform resolver serving canned answers, so that tests
// never need to hit the network. Hosts without canned answers or errors are
// reported as not found, just like the platform resolver would do.
type Lookup struct {
	mu          sync.Mutex
	answers     map[string][]string
	errs        map[string]error
	calls       map[string]int
	delay       time.Duration
	inflight    int
	maxInflight int
}

// NewLookup returns a new fake resolver without any canned answers.
func NewLookup() *Lookup {
	return &Lookup{
		answers: map[string][]string{},
		errs:    map[string]error{},
		calls:   map[string]int{},
	}
}

// WithAnswer adds a canned answer for the specified host.
func (l *Lookup) WithAnswer(host string, addrs ...string) *Lookup {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.answers[host] = addrs
	return l
}

// WithError lets lookups of the specified host fail with err.
func (l *Lookup) WithError(host string, err error) *Lookup {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs[host] = err
	return l
}

// WithDelay lets each lookup take (at least) the specified duration.
func (l *Lookup) WithDelay(d time.Duration) *Lookup {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.delay = d
	return l
}

// LookupHost returns the canned answer for host.
func (l *Lookup) LookupHost(ctx context.Context, host string) ([]string, error) {
	l.mu.Lock()
	l.calls[host]++
	l.inflight++
	if l.inflight > l.maxInflight {
		l.maxInflight = l.inflight
	}
	delay := l.delay
	addrs, hasAddrs := l.answers[host]
	err := l.errs[host]
	l.mu.Unlock()
	defer func() {
		l.mu.Lock()
		l.inflight--
		l.mu.Unlock()
	}()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	if !hasAddrs {
		return nil, &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}
	}
	return append([]string(nil), addrs...), nil
}

// Calls returns the number of lookups for the specified host so far.
func (l *Lookup) Calls(host string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[host]
}

// TotalCalls returns the number of lookups for all hosts so far.
func (l *Lookup) TotalCalls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	total := 0
	for _, n := range l.calls {
		total += n
	}
	return total
}

// MaxInflight returns the highest number of concurrent lookups seen so far.
func (l *Lookup) MaxInflight() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.maxInflight
}
